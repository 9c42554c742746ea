package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GenerateBillingRequest carries the adjustments applied when the bill is
// computed from the order's labor and issued parts.
type GenerateBillingRequest struct {
	Discount          float64 `json:"discount"`
	WarrantyDeduction float64 `json:"warrantyDeduction"`
}

// GenerateBilling handles POST /api/v1/orders/:orderID/billing.
//
// @Summary Generate the bill for a passed order
// @Tags billing
// @Accept json
// @Produce json
// @Param orderID path string true "order id"
// @Param request body GenerateBillingRequest true "adjustments"
// @Success 201 {object} IDResponse
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/billing [post]
func (s *Server) GenerateBilling(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req GenerateBillingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	billingID := kernel.NewUUID()
	cmd, err := commands.NewGenerateBillingCommand(billingID, orderID, req.Discount, req.WarrantyDeduction)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.GenerateBilling.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: billingID.String()})
}

// MarkOrderForPayment handles POST /api/v1/orders/:orderID/for-payment.
//
// @Summary Hand a billed order to the cashier
// @Tags billing
// @Param orderID path string true "order id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/for-payment [post]
func (s *Server) MarkOrderForPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderForPaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.MarkOrderForPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPaymentRequest carries how the customer settled the bill.
type RecordPaymentRequest struct {
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

// RecordPayment handles POST /api/v1/orders/:orderID/payment. Settling the
// bill opens the gatepass whose identifier is returned.
//
// @Summary Record payment and open the gatepass
// @Tags billing
// @Accept json
// @Produce json
// @Param orderID path string true "order id"
// @Param request body RecordPaymentRequest true "payment details"
// @Success 201 {object} IDResponse
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/payment [post]
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	gatepassID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(orderID, gatepassID,
		req.Method, req.Reference, principal.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: gatepassID.String()})
}

// SignGatepassRequest names the signature slot being signed.
type SignGatepassRequest struct {
	Slot string `json:"slot"`
}

// SignGatepass handles POST /api/v1/orders/:orderID/gatepass/sign. The
// principal's role must match the slot it signs.
//
// @Summary Sign one gatepass clearance slot
// @Tags gatepass
// @Accept json
// @Param orderID path string true "order id"
// @Param request body SignGatepassRequest true "slot to sign"
// @Success 204
// @Failure 403 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/gatepass/sign [post]
func (s *Server) SignGatepass(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SignGatepassRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	slot, err := gatepass.SlotFromString(req.Slot)
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSignGatepassCommand(orderID, slot, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.SignGatepass.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseVehicle handles POST /api/v1/orders/:orderID/release. Security
// validates the fully signed gatepass and lets the vehicle leave.
//
// @Summary Validate the gatepass and release the vehicle
// @Tags gatepass
// @Param orderID path string true "order id"
// @Success 204
// @Failure 403 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/release [post]
func (s *Server) ReleaseVehicle(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReleaseVehicleCommand(orderID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.ReleaseVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
