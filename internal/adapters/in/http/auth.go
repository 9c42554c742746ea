package http

import (
	"fmt"
	"net/http"
	"strings"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalContextKey is where the auth middleware stores the authenticated
// principal on the request context.
const principalContextKey = "principal"

// accessClaims is the JWT payload the shop's identity provider issues.
// Subject carries the user ID; technicians additionally carry the technician
// entity they work as.
type accessClaims struct {
	jwt.RegisteredClaims
	Role         string `json:"role"`
	TechnicianID string `json:"technicianId,omitempty"`
}

func (c *accessClaims) principal() (kernel.Principal, error) {
	userID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return kernel.Principal{}, errs.NewValueIsInvalidErrorWithCause("sub", err)
	}

	role, err := kernel.RoleFromString(c.Role)
	if err != nil {
		return kernel.Principal{}, err
	}

	if role == kernel.RoleTechnician {
		technicianID, err := kernel.UUIDFromString(c.TechnicianID)
		if err != nil {
			return kernel.Principal{}, errs.NewValueIsInvalidErrorWithCause("technicianId", err)
		}
		return kernel.NewTechnicianPrincipal(userID, technicianID)
	}

	return kernel.NewPrincipal(userID, role)
}

// AuthMiddleware validates the Bearer token on every request and stores the
// resulting principal on the context. Requests without a valid token get 401.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			token, err := jwt.ParseWithClaims(raw, &accessClaims{}, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid token")
			}

			claims, ok := token.Claims.(*accessClaims)
			if !ok {
				return unauthorized(ctx, "invalid token")
			}

			principal, err := claims.principal()
			if err != nil {
				return unauthorized(ctx, "invalid token claims: "+err.Error())
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// requireRoles rejects with 403 any principal not acting in one of the given
// roles. Must run after AuthMiddleware.
func requireRoles(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := principalFrom(ctx)
			if err != nil {
				return unauthorized(ctx, "missing principal")
			}
			if !principal.HasRole(roles...) {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: fmt.Sprintf("role %s may not perform this operation", principal.Role()),
				})
			}
			return next(ctx)
		}
	}
}

// principalFrom returns the authenticated principal stored by AuthMiddleware.
func principalFrom(ctx echo.Context) (kernel.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(kernel.Principal)
	if !ok {
		return kernel.Principal{}, errs.ErrUnauthorized
	}
	return principal, nil
}

// technicianFrom returns the technician entity the authenticated principal
// works as. Non-technician principals fail with ErrUnauthorized.
func technicianFrom(ctx echo.Context) (kernel.UUID, error) {
	principal, err := principalFrom(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	technicianID := principal.TechnicianID()
	if technicianID == nil {
		return kernel.UUID{}, errs.ErrUnauthorized
	}
	return *technicianID, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
