package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RequestPartsRequest asks the warehouse for parts needed on an order.
type RequestPartsRequest struct {
	OrderID  string `json:"orderId"`
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

// RequestParts handles POST /api/v1/parts-requests.
//
// @Summary File a parts request against an order
// @Tags parts
// @Accept json
// @Produce json
// @Param request body RequestPartsRequest true "parts request"
// @Success 201 {object} IDResponse
// @Failure 403 {object} Error
// @Failure 404 {object} Error
// @Security BearerAuth
// @Router /parts-requests [post]
func (s *Server) RequestParts(ctx echo.Context) error {
	var req RequestPartsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := bodyUUID(req.OrderID, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}
	partID, err := bodyUUID(req.PartID, "partId")
	if err != nil {
		return respondError(ctx, err)
	}

	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestPartsCommand(requestID, orderID, technicianID, partID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.RequestParts.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: requestID.String()})
}

// PrepareParts handles POST /api/v1/parts-requests/:requestID/prepare. The
// warehouse reserves stock against the request and opens an issuance record.
//
// @Summary Confirm stock and prepare a parts request
// @Tags parts
// @Produce json
// @Param requestID path string true "parts request id"
// @Success 201 {object} IDResponse
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /parts-requests/{requestID}/prepare [post]
func (s *Server) PrepareParts(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return respondError(ctx, err)
	}

	issuanceID := kernel.NewUUID()
	cmd, err := commands.NewPreparePartsCommand(requestID, issuanceID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.PrepareParts.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: issuanceID.String()})
}

// MarkPartsReady handles POST /api/v1/parts-requests/:requestID/ready.
//
// @Summary Mark prepared parts ready for release
// @Tags parts
// @Param requestID path string true "parts request id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /parts-requests/{requestID}/ready [post]
func (s *Server) MarkPartsReady(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPartsReadyCommand(requestID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.MarkPartsReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IssueParts handles POST /api/v1/parts-requests/:requestID/issue. The
// authenticated warehouse staff member signs the issuance.
//
// @Summary Issue prepared parts and debit inventory
// @Tags parts
// @Param requestID path string true "parts request id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /parts-requests/{requestID}/issue [post]
func (s *Server) IssueParts(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewIssuePartsCommand(requestID, principal.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.IssueParts.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignForIssuedParts handles POST /api/v1/parts-requests/:requestID/sign. The
// receiving technician counter-signs the issuance.
//
// @Summary Acknowledge receipt of issued parts
// @Tags parts
// @Param requestID path string true "parts request id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /parts-requests/{requestID}/sign [post]
func (s *Server) SignForIssuedParts(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return respondError(ctx, err)
	}

	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSignForIssuedPartsCommand(requestID, technicianID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.SignForIssuedParts.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
