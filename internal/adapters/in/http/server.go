package http

import (
	"errors"
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/domain/model/technician"
	"autoshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandlers bundles every command handler the server dispatches to.
type CommandHandlers struct {
	CreateAppointmentOrder  commands.CreateAppointmentOrderCommandHandler
	CreateWalkInOrder       commands.CreateWalkInOrderCommandHandler
	CheckInOrder            commands.CheckInOrderCommandHandler
	CancelOrder             commands.CancelOrderCommandHandler
	ReturnToAdvisor         commands.ReturnToAdvisorCommandHandler
	AssignTechnician        commands.AssignTechnicianCommandHandler
	ClockIn                 commands.ClockInCommandHandler
	ClockOut                commands.ClockOutCommandHandler
	CompleteAssignment      commands.CompleteAssignmentCommandHandler
	RequestParts            commands.RequestPartsCommandHandler
	PrepareParts            commands.PreparePartsCommandHandler
	MarkPartsReady          commands.MarkPartsReadyCommandHandler
	IssueParts              commands.IssuePartsCommandHandler
	SignForIssuedParts      commands.SignForIssuedPartsCommandHandler
	RecordInspection        commands.RecordInspectionCommandHandler
	SignQualityCheck        commands.SignQualityCheckCommandHandler
	CounterSignQualityCheck commands.CounterSignQualityCheckCommandHandler
	AuthorizeRoadTest       commands.AuthorizeRoadTestCommandHandler
	LogRoadTest             commands.LogRoadTestCommandHandler
	GenerateBilling         commands.GenerateBillingCommandHandler
	MarkOrderForPayment     commands.MarkOrderForPaymentCommandHandler
	RecordPayment           commands.RecordPaymentCommandHandler
	SignGatepass            commands.SignGatepassCommandHandler
	ReleaseVehicle          commands.ReleaseVehicleCommandHandler
}

// QueryHandlers bundles the read-side handlers.
type QueryHandlers struct {
	GetOrdersByStatus   queries.GetOrdersByStatusQueryHandler
	GetOrderDetail      queries.GetOrderDetailQueryHandler
	GetBillingDetail    queries.GetBillingDetailQueryHandler
	GetInspectionDetail queries.GetInspectionDetailQueryHandler
}

// Server exposes the service order lifecycle over HTTP. It coordinates
// between HTTP handlers and application use cases; every route runs behind
// JWT authentication and a per-route role check.
type Server struct {
	commandHandlers CommandHandlers
	queryHandlers   QueryHandlers
	stream          http.Handler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. stream serves the floor event socket at GET /ws.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, stream http.Handler) *Server {
	return &Server{
		commandHandlers: commandHandlers,
		queryHandlers:   queryHandlers,
		stream:          stream,
	}
}

// RegisterRoutes mounts every route on the given echo instance. The event
// socket at /ws stays outside the authenticated group so floor displays can
// subscribe without a token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws", echo.WrapHandler(s.stream))

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	advisor := requireRoles(kernel.RoleAdvisor)
	technicianOnly := requireRoles(kernel.RoleTechnician)
	warehouse := requireRoles(kernel.RoleWarehouse)
	foreman := requireRoles(kernel.RoleForeman)

	api.POST("/orders/appointment", s.CreateAppointmentOrder, advisor)
	api.POST("/orders/walk-in", s.CreateWalkInOrder, advisor)
	api.POST("/orders/:orderID/check-in", s.CheckInOrder, advisor)
	api.POST("/orders/:orderID/cancel", s.CancelOrder,
		requireRoles(kernel.RoleAdvisor, kernel.RoleServiceManager))
	api.POST("/orders/:orderID/return", s.ReturnToAdvisor,
		requireRoles(kernel.RoleTechnician, kernel.RoleJobController))
	api.POST("/orders/:orderID/inspection", s.RecordInspection, foreman)
	api.POST("/orders/:orderID/billing", s.GenerateBilling, advisor)
	api.POST("/orders/:orderID/for-payment", s.MarkOrderForPayment, advisor)
	api.POST("/orders/:orderID/payment", s.RecordPayment, requireRoles(kernel.RoleCashier))
	api.POST("/orders/:orderID/gatepass/sign", s.SignGatepass,
		requireRoles(kernel.RoleCashier, kernel.RoleAccounting,
			kernel.RoleWarrantyOfficer, kernel.RoleServiceManager))
	api.POST("/orders/:orderID/release", s.ReleaseVehicle, requireRoles(kernel.RoleSecurity))

	api.POST("/assignments", s.AssignTechnician, requireRoles(kernel.RoleJobController))
	api.POST("/labor/clock-in", s.ClockIn, technicianOnly)
	api.POST("/labor/clock-out", s.ClockOut, technicianOnly)
	api.POST("/labor/complete", s.CompleteAssignment, technicianOnly)

	api.POST("/parts-requests", s.RequestParts, technicianOnly)
	api.POST("/parts-requests/:requestID/prepare", s.PrepareParts, warehouse)
	api.POST("/parts-requests/:requestID/ready", s.MarkPartsReady, warehouse)
	api.POST("/parts-requests/:requestID/issue", s.IssueParts, warehouse)
	api.POST("/parts-requests/:requestID/sign", s.SignForIssuedParts, technicianOnly)

	api.POST("/quality-checks/:checkID/sign", s.SignQualityCheck, foreman)
	api.POST("/quality-checks/:checkID/counter-sign", s.CounterSignQualityCheck, technicianOnly)
	api.POST("/quality-checks/:checkID/road-test/authorize", s.AuthorizeRoadTest,
		requireRoles(kernel.RoleAdvisor, kernel.RoleServiceManager))
	api.POST("/quality-checks/:checkID/road-test", s.LogRoadTest,
		requireRoles(kernel.RoleTechnician, kernel.RoleForeman))

	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:orderID", s.GetOrderDetail)
	api.GET("/orders/:orderID/billing", s.GetBillingDetail)
	api.GET("/orders/:orderID/inspection", s.GetInspectionDetail)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a freshly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// respondError translates application and domain errors into HTTP statuses.
// Anything not recognized is a 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, part.ErrInsufficientStock),
		errors.Is(err, partsflow.ErrAlreadyIssued),
		errors.Is(err, partsflow.ErrNotReadyForRelease),
		errors.Is(err, billing.ErrAlreadyBilled),
		errors.Is(err, gatepass.ErrAlreadyReleased),
		errors.Is(err, gatepass.ErrGatepassNotValid),
		errors.Is(err, technician.ErrTechnicianUnavailable),
		errors.Is(err, assignment.ErrAlreadyClockedIn),
		errors.Is(err, assignment.ErrNotClockedIn),
		errors.Is(err, inspection.ErrOutOfOrder),
		errors.Is(err, serviceorder.ErrTechnicianAlreadyAssigned),
		errors.Is(err, serviceorder.ErrBillingAlreadyAttached),
		errors.Is(err, commands.ErrNoCompletedWork):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a named path parameter as a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bodyUUID parses a UUID carried as a string in a request body field.
func bodyUUID(value, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
