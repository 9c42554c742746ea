package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func signToken(t *testing.T, claims accessClaims) string {
	t.Helper()

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func invoke(token string, middleware ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, kernel.Principal) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var captured kernel.Principal
	handler := func(ctx echo.Context) error {
		captured, _ = principalFrom(ctx)
		return ctx.NoContent(http.StatusOK)
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	_ = handler(ctx)

	return rec, captured
}

func Test_AuthMiddleware(t *testing.T) {
	userID := kernel.NewUUID()
	technicianID := kernel.NewUUID()

	t.Run("should authenticate advisor token", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Advisor",
		})

		rec, principal := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, principal.UserID().IsEqual(userID))
		assert.Equal(t, kernel.RoleAdvisor, principal.Role())
		assert.Nil(t, principal.TechnicianID())
	})

	t.Run("should link technician token to its technician", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Technician",
			TechnicianID:     technicianID.String(),
		})

		rec, principal := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, principal.TechnicianID())
		assert.True(t, principal.TechnicianID().IsEqual(technicianID))
	})

	t.Run("should reject technician token without technician id", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Technician",
		})

		rec, _ := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject request without token", func(t *testing.T) {
		rec, _ := invoke("", AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject token signed with a different secret", func(t *testing.T) {
		claims := &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: "Advisor",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		rec, _ := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject expired token", func(t *testing.T) {
		claims := &accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			Role: "Advisor",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)

		rec, _ := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Janitor",
		})

		rec, _ := invoke(token, AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func Test_RequireRoles(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("should pass matching role", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Cashier",
		})

		rec, _ := invoke(token, AuthMiddleware(testSecret),
			requireRoles(kernel.RoleCashier, kernel.RoleAccounting))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should forbid mismatched role", func(t *testing.T) {
		token := signToken(t, accessClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			Role:             "Advisor",
		})

		rec, _ := invoke(token, AuthMiddleware(testSecret), requireRoles(kernel.RoleSecurity))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should reject when auth middleware did not run", func(t *testing.T) {
		rec, _ := invoke("", requireRoles(kernel.RoleAdvisor))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
