package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AssignTechnicianRequest dispatches a technician to a checked-in order.
type AssignTechnicianRequest struct {
	OrderID        string  `json:"orderId"`
	TechnicianID   string  `json:"technicianId"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// AssignTechnician handles POST /api/v1/assignments.
//
// @Summary Dispatch a technician to a checked-in order
// @Tags labor
// @Accept json
// @Produce json
// @Param request body AssignTechnicianRequest true "assignment"
// @Success 201 {object} IDResponse
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /assignments [post]
func (s *Server) AssignTechnician(ctx echo.Context) error {
	var req AssignTechnicianRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := bodyUUID(req.OrderID, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}
	technicianID, err := bodyUUID(req.TechnicianID, "technicianId")
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignTechnicianCommand(assignmentID, orderID, technicianID,
		principal.UserID(), req.EstimatedHours)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.AssignTechnician.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: assignmentID.String()})
}

// ClockIn handles POST /api/v1/labor/clock-in. The technician is taken from
// the authenticated principal.
//
// @Summary Clock in on the active assignment
// @Tags labor
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /labor/clock-in [post]
func (s *Server) ClockIn(ctx echo.Context) error {
	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClockInCommand(technicianID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.ClockIn.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClockOutRequest carries the work performed during the closing session.
type ClockOutRequest struct {
	WorkPerformed string `json:"workPerformed"`
}

// ClockOut handles POST /api/v1/labor/clock-out.
//
// @Summary Clock out of the active work session
// @Tags labor
// @Accept json
// @Param request body ClockOutRequest true "work performed"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /labor/clock-out [post]
func (s *Server) ClockOut(ctx echo.Context) error {
	var req ClockOutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClockOutCommand(technicianID, req.WorkPerformed)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.ClockOut.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAssignmentRequest closes the technician's active assignment with
// the hours actually spent.
type CompleteAssignmentRequest struct {
	ActualHours float64 `json:"actualHours"`
}

// CompleteAssignment handles POST /api/v1/labor/complete.
//
// @Summary Close the technician's active assignment
// @Tags labor
// @Accept json
// @Param request body CompleteAssignmentRequest true "actual hours"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /labor/complete [post]
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	var req CompleteAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteAssignmentCommand(technicianID, req.ActualHours)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CompleteAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
