package cmd

import (
	"log/slog"
	"net/http"

	httpin "autoshop/internal/adapters/in/http"
	"autoshop/internal/adapters/out/postgres"
	"autoshop/internal/adapters/out/ws"
	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/services"
	"autoshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator services.BillingCalculator
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewBillingCalculator(config.LaborRate),
		hub:        ws.NewHub(logger),
		logger:     logger,
	}
}

// Hub returns the floor event broadcaster, also wired into every command
// handler as the event publisher.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) laborUoWFactory() commands.LaborUoWFactory {
	return FuncLaborUoWFactory(func() commands.LaborUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) partsUoWFactory() commands.PartsUoWFactory {
	return FuncPartsUoWFactory(func() commands.PartsUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) inspectionUoWFactory() commands.InspectionUoWFactory {
	return FuncInspectionUoWFactory(func() commands.InspectionUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) gatepassUoWFactory() commands.GatepassUoWFactory {
	return FuncGatepassUoWFactory(func() commands.GatepassUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) cancelUoWFactory() commands.CancelUoWFactory {
	return FuncCancelUoWFactory(func() commands.CancelUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateCreateAppointmentOrderCommandHandler() commands.CreateAppointmentOrderCommandHandler {
	return commands.NewCreateAppointmentOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateCreateWalkInOrderCommandHandler() commands.CreateWalkInOrderCommandHandler {
	return commands.NewCreateWalkInOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateCheckInOrderCommandHandler() commands.CheckInOrderCommandHandler {
	return commands.NewCheckInOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.cancelUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateReturnToAdvisorCommandHandler() commands.ReturnToAdvisorCommandHandler {
	return commands.NewReturnToAdvisorCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	return commands.NewAssignTechnicianCommandHandler(c.laborUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateClockInCommandHandler() commands.ClockInCommandHandler {
	return commands.NewClockInCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateClockOutCommandHandler() commands.ClockOutCommandHandler {
	return commands.NewClockOutCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	return commands.NewCompleteAssignmentCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateRequestPartsCommandHandler() commands.RequestPartsCommandHandler {
	return commands.NewRequestPartsCommandHandler(c.partsUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreatePreparePartsCommandHandler() commands.PreparePartsCommandHandler {
	return commands.NewPreparePartsCommandHandler(c.partsUoWFactory())
}

func (c *CompositionRoot) CreateMarkPartsReadyCommandHandler() commands.MarkPartsReadyCommandHandler {
	return commands.NewMarkPartsReadyCommandHandler(c.partsUoWFactory())
}

func (c *CompositionRoot) CreateIssuePartsCommandHandler() commands.IssuePartsCommandHandler {
	return commands.NewIssuePartsCommandHandler(c.partsUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateSignForIssuedPartsCommandHandler() commands.SignForIssuedPartsCommandHandler {
	return commands.NewSignForIssuedPartsCommandHandler(c.partsUoWFactory())
}

func (c *CompositionRoot) CreateRecordInspectionCommandHandler() commands.RecordInspectionCommandHandler {
	return commands.NewRecordInspectionCommandHandler(c.inspectionUoWFactory())
}

func (c *CompositionRoot) CreateSignQualityCheckCommandHandler() commands.SignQualityCheckCommandHandler {
	return commands.NewSignQualityCheckCommandHandler(c.inspectionUoWFactory())
}

func (c *CompositionRoot) CreateCounterSignQualityCheckCommandHandler() commands.CounterSignQualityCheckCommandHandler {
	return commands.NewCounterSignQualityCheckCommandHandler(c.inspectionUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateAuthorizeRoadTestCommandHandler() commands.AuthorizeRoadTestCommandHandler {
	return commands.NewAuthorizeRoadTestCommandHandler(c.inspectionUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateLogRoadTestCommandHandler() commands.LogRoadTestCommandHandler {
	return commands.NewLogRoadTestCommandHandler(c.inspectionUoWFactory())
}

func (c *CompositionRoot) CreateGenerateBillingCommandHandler() commands.GenerateBillingCommandHandler {
	return commands.NewGenerateBillingCommandHandler(c.billingUoWFactory(), c.calculator, c.hub)
}

func (c *CompositionRoot) CreateMarkOrderForPaymentCommandHandler() commands.MarkOrderForPaymentCommandHandler {
	return commands.NewMarkOrderForPaymentCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.billingUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateSignGatepassCommandHandler() commands.SignGatepassCommandHandler {
	return commands.NewSignGatepassCommandHandler(c.gatepassUoWFactory())
}

func (c *CompositionRoot) CreateReleaseVehicleCommandHandler() commands.ReleaseVehicleCommandHandler {
	return commands.NewReleaseVehicleCommandHandler(c.gatepassUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillingDetailQueryHandler() queries.GetBillingDetailQueryHandler {
	return queries.NewGetBillingDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInspectionDetailQueryHandler() queries.GetInspectionDetailQueryHandler {
	return queries.NewGetInspectionDetailQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		CreateAppointmentOrder:  c.CreateCreateAppointmentOrderCommandHandler(),
		CreateWalkInOrder:       c.CreateCreateWalkInOrderCommandHandler(),
		CheckInOrder:            c.CreateCheckInOrderCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		ReturnToAdvisor:         c.CreateReturnToAdvisorCommandHandler(),
		AssignTechnician:        c.CreateAssignTechnicianCommandHandler(),
		ClockIn:                 c.CreateClockInCommandHandler(),
		ClockOut:                c.CreateClockOutCommandHandler(),
		CompleteAssignment:      c.CreateCompleteAssignmentCommandHandler(),
		RequestParts:            c.CreateRequestPartsCommandHandler(),
		PrepareParts:            c.CreatePreparePartsCommandHandler(),
		MarkPartsReady:          c.CreateMarkPartsReadyCommandHandler(),
		IssueParts:              c.CreateIssuePartsCommandHandler(),
		SignForIssuedParts:      c.CreateSignForIssuedPartsCommandHandler(),
		RecordInspection:        c.CreateRecordInspectionCommandHandler(),
		SignQualityCheck:        c.CreateSignQualityCheckCommandHandler(),
		CounterSignQualityCheck: c.CreateCounterSignQualityCheckCommandHandler(),
		AuthorizeRoadTest:       c.CreateAuthorizeRoadTestCommandHandler(),
		LogRoadTest:             c.CreateLogRoadTestCommandHandler(),
		GenerateBilling:         c.CreateGenerateBillingCommandHandler(),
		MarkOrderForPayment:     c.CreateMarkOrderForPaymentCommandHandler(),
		RecordPayment:           c.CreateRecordPaymentCommandHandler(),
		SignGatepass:            c.CreateSignGatepassCommandHandler(),
		ReleaseVehicle:          c.CreateReleaseVehicleCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		GetOrdersByStatus:   c.CreateGetOrdersByStatusQueryHandler(),
		GetOrderDetail:      c.CreateGetOrderDetailQueryHandler(),
		GetBillingDetail:    c.CreateGetBillingDetailQueryHandler(),
		GetInspectionDetail: c.CreateGetInspectionDetailQueryHandler(),
	}

	return httpin.NewServer(commandHandlers, queryHandlers, http.HandlerFunc(c.hub.Handle))
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		&c.uowFactory,
		c.CreateCancelOrderCommandHandler(),
		c.config.SweepSchedule,
		c.config.SweepMaxAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLaborUoWFactory func() commands.LaborUoW

func (f FuncLaborUoWFactory) Create() commands.LaborUoW {
	return f()
}

type FuncPartsUoWFactory func() commands.PartsUoW

func (f FuncPartsUoWFactory) Create() commands.PartsUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncGatepassUoWFactory func() commands.GatepassUoW

func (f FuncGatepassUoWFactory) Create() commands.GatepassUoW {
	return f()
}

type FuncCancelUoWFactory func() commands.CancelUoW

func (f FuncCancelUoWFactory) Create() commands.CancelUoW {
	return f()
}
