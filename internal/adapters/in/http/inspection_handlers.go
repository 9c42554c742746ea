package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// InspectionItemRequest is one checklist line the foreman fills in.
type InspectionItemRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// RecordInspectionRequest carries the itemized results and the overall
// verdict of a quality inspection.
type RecordInspectionRequest struct {
	Items   []InspectionItemRequest `json:"items"`
	Overall string                  `json:"overall"`
}

// RecordInspection handles POST /api/v1/orders/:orderID/inspection. A fresh
// quality check is opened when the order has no open check yet.
//
// @Summary Record inspection results for an order
// @Tags inspection
// @Accept json
// @Param orderID path string true "order id"
// @Param request body RecordInspectionRequest true "checklist and verdict"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/inspection [post]
func (s *Server) RecordInspection(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordInspectionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	overall, err := inspection.OverallStatusFromString(req.Overall)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.InspectionItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		status, err := inspection.ItemStatusFromString(item.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, commands.InspectionItemInput{
			Name:   item.Name,
			Status: status,
			Notes:  item.Notes,
		})
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	checkID := kernel.NewUUID()
	cmd, err := commands.NewRecordInspectionCommand(checkID, orderID, principal.UserID(), items, overall)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.RecordInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignQualityCheck handles POST /api/v1/quality-checks/:checkID/sign.
//
// @Summary Sign a quality check as the owning foreman
// @Tags inspection
// @Param checkID path string true "quality check id"
// @Success 204
// @Failure 403 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /quality-checks/{checkID}/sign [post]
func (s *Server) SignQualityCheck(ctx echo.Context) error {
	checkID, err := pathUUID(ctx, "checkID")
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSignQualityCheckCommand(checkID, principal.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.SignQualityCheck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CounterSignQualityCheck handles POST /api/v1/quality-checks/:checkID/counter-sign.
//
// @Summary Counter-sign a quality check as the technician
// @Tags inspection
// @Param checkID path string true "quality check id"
// @Success 204
// @Failure 403 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /quality-checks/{checkID}/counter-sign [post]
func (s *Server) CounterSignQualityCheck(ctx echo.Context) error {
	checkID, err := pathUUID(ctx, "checkID")
	if err != nil {
		return respondError(ctx, err)
	}

	technicianID, err := technicianFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCounterSignQualityCheckCommand(checkID, technicianID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.CounterSignQualityCheck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AuthorizeRoadTest handles POST /api/v1/quality-checks/:checkID/road-test/authorize.
//
// @Summary Authorize a road test for a quality check
// @Tags inspection
// @Produce json
// @Param checkID path string true "quality check id"
// @Success 201 {object} IDResponse
// @Failure 403 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /quality-checks/{checkID}/road-test/authorize [post]
func (s *Server) AuthorizeRoadTest(ctx echo.Context) error {
	checkID, err := pathUUID(ctx, "checkID")
	if err != nil {
		return respondError(ctx, err)
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	roadTestID := kernel.NewUUID()
	cmd, err := commands.NewAuthorizeRoadTestCommand(roadTestID, checkID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.AuthorizeRoadTest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: roadTestID.String()})
}

// LogRoadTestRequest carries the outcome of a completed road test.
type LogRoadTestRequest struct {
	RouteCompliant bool   `json:"routeCompliant"`
	Results        string `json:"results"`
}

// LogRoadTest handles POST /api/v1/quality-checks/:checkID/road-test.
//
// @Summary Log the outcome of an authorized road test
// @Tags inspection
// @Accept json
// @Param checkID path string true "quality check id"
// @Param request body LogRoadTestRequest true "road test outcome"
// @Success 204
// @Failure 404 {object} Error
// @Failure 409 {object} Error
// @Security BearerAuth
// @Router /quality-checks/{checkID}/road-test [post]
func (s *Server) LogRoadTest(ctx echo.Context) error {
	checkID, err := pathUUID(ctx, "checkID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req LogRoadTestRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	testerID := principal.UserID()
	if technicianID := principal.TechnicianID(); technicianID != nil {
		testerID = *technicianID
	}

	cmd, err := commands.NewLogRoadTestCommand(checkID, testerID, req.RouteCompliant, req.Results)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commandHandlers.LogRoadTest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
