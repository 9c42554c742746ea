package http

import (
	"net/http"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateAppointmentOrderRequest is the intake slip for a scheduled visit.
type CreateAppointmentOrderRequest struct {
	CustomerID        string    `json:"customerId"`
	VehicleID         string    `json:"vehicleId"`
	AppointmentID     string    `json:"appointmentId"`
	AppointmentDate   time.Time `json:"appointmentDate"`
	SlipNumber        string    `json:"slipNumber"`
	ServicesRequested []string  `json:"servicesRequested"`
	CustomerNotes     string    `json:"customerNotes"`
	IsWarranty        bool      `json:"isWarranty"`
	WarrantyType      string    `json:"warrantyType"`
}

// CreateAppointmentOrder handles POST /api/v1/orders/appointment.
//
// @Summary Convert an appointment into a scheduled service order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateAppointmentOrderRequest true "intake slip"
// @Success 201 {object} IDResponse
// @Failure 400 {object} Error
// @Failure 403 {object} Error
// @Security BearerAuth
// @Router /orders/appointment [post]
func (s *Server) CreateAppointmentOrder(ctx echo.Context) error {
	var req CreateAppointmentOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := bodyUUID(req.CustomerID, "customerId")
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := bodyUUID(req.VehicleID, "vehicleId")
	if err != nil {
		return respondError(ctx, err)
	}
	appointmentID, err := bodyUUID(req.AppointmentID, "appointmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAppointmentOrderCommand(orderID, customerID, vehicleID,
		appointmentID, req.AppointmentDate, req.SlipNumber, req.ServicesRequested,
		req.CustomerNotes, req.IsWarranty, req.WarrantyType)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CreateAppointmentOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// CreateWalkInOrderRequest is the intake slip for a customer arriving without
// an appointment.
type CreateWalkInOrderRequest struct {
	CustomerID        string   `json:"customerId"`
	VehicleID         string   `json:"vehicleId"`
	SlipNumber        string   `json:"slipNumber"`
	ServicesRequested []string `json:"servicesRequested"`
	CustomerNotes     string   `json:"customerNotes"`
}

// CreateWalkInOrder handles POST /api/v1/orders/walk-in.
//
// @Summary Open a service order for a walk-in customer
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateWalkInOrderRequest true "intake slip"
// @Success 201 {object} IDResponse
// @Failure 400 {object} Error
// @Failure 403 {object} Error
// @Security BearerAuth
// @Router /orders/walk-in [post]
func (s *Server) CreateWalkInOrder(ctx echo.Context) error {
	var req CreateWalkInOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := bodyUUID(req.CustomerID, "customerId")
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := bodyUUID(req.VehicleID, "vehicleId")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWalkInOrderCommand(orderID, customerID, vehicleID,
		req.SlipNumber, req.ServicesRequested, req.CustomerNotes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CreateWalkInOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// CheckInOrder handles POST /api/v1/orders/:orderID/check-in.
//
// @Summary Record the customer's arrival
// @Tags orders
// @Param orderID path string true "order id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/check-in [post]
func (s *Server) CheckInOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCheckInOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CheckInOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderRequest carries the cancellation reason recorded on the order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
//
// @Summary Cancel a service order
// @Tags orders
// @Accept json
// @Param orderID path string true "order id"
// @Param request body CancelOrderRequest true "cancellation reason"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnToAdvisor handles POST /api/v1/orders/:orderID/return. It moves a
// worked order into quality check with its billable hours.
//
// @Summary Hand a worked order over to quality check
// @Tags orders
// @Param orderID path string true "order id"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/return [post]
func (s *Server) ReturnToAdvisor(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReturnToAdvisorCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.ReturnToAdvisor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
