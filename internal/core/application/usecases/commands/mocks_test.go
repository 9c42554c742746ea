package commands_test

import (
	"context"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/domain/model/technician"
	"autoshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Repository mocks shared by the handler tests in this package. Each unit of
// work mock embeds MockTx so transaction expectations read the same way
// everywhere.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *serviceorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *serviceorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status serviceorder.Status) ([]*serviceorder.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serviceorder.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllScheduledBefore(ctx context.Context, cutoff time.Time) ([]*serviceorder.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serviceorder.Order), args.Error(1)
}

type MockPartRepository struct{ mock.Mock }

func (m *MockPartRepository) Add(ctx context.Context, p *part.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartRepository) Update(ctx context.Context, p *part.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*part.Part), args.Error(1)
}

func (m *MockPartRepository) DebitOnHand(ctx context.Context, id kernel.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockPartsRequestRepository struct{ mock.Mock }

func (m *MockPartsRequestRepository) Add(ctx context.Context, r *partsflow.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPartsRequestRepository) Update(ctx context.Context, r *partsflow.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPartsRequestRepository) Get(ctx context.Context, id kernel.UUID) (*partsflow.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partsflow.Request), args.Error(1)
}

func (m *MockPartsRequestRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*partsflow.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partsflow.Request), args.Error(1)
}

type MockTechnicianRepository struct{ mock.Mock }

func (m *MockTechnicianRepository) Add(ctx context.Context, tech *technician.Technician) error {
	args := m.Called(ctx, tech)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, tech *technician.Technician) error {
	args := m.Called(ctx, tech)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*technician.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) GetAllAvailable(ctx context.Context) ([]*technician.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*technician.Technician), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByTechnician(ctx context.Context, technicianID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockQualityCheckRepository struct{ mock.Mock }

func (m *MockQualityCheckRepository) Add(ctx context.Context, qc *inspection.QualityCheck) error {
	args := m.Called(ctx, qc)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Update(ctx context.Context, qc *inspection.QualityCheck) error {
	args := m.Called(ctx, qc)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.QualityCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.QualityCheck), args.Error(1)
}

func (m *MockQualityCheckRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*inspection.QualityCheck, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.QualityCheck), args.Error(1)
}

type MockRoadTestRepository struct{ mock.Mock }

func (m *MockRoadTestRepository) Add(ctx context.Context, rt *inspection.RoadTest) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRoadTestRepository) Update(ctx context.Context, rt *inspection.RoadTest) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRoadTestRepository) GetByCheck(ctx context.Context, checkID kernel.UUID) (*inspection.RoadTest, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.RoadTest), args.Error(1)
}

type MockBillingRepository struct{ mock.Mock }

func (m *MockBillingRepository) Add(ctx context.Context, b *billing.Billing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillingRepository) Update(ctx context.Context, b *billing.Billing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillingRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Billing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Billing), args.Error(1)
}

func (m *MockBillingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Billing, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Billing), args.Error(1)
}

func (m *MockBillingRepository) NextSequence(ctx context.Context, at time.Time) (int, error) {
	args := m.Called(ctx, at)
	return args.Int(0), args.Error(1)
}

type MockGatepassRepository struct{ mock.Mock }

func (m *MockGatepassRepository) Add(ctx context.Context, gp *gatepass.Gatepass) error {
	args := m.Called(ctx, gp)
	return args.Error(0)
}

func (m *MockGatepassRepository) Update(ctx context.Context, gp *gatepass.Gatepass) error {
	args := m.Called(ctx, gp)
	return args.Error(0)
}

func (m *MockGatepassRepository) Get(ctx context.Context, id kernel.UUID) (*gatepass.Gatepass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatepass.Gatepass), args.Error(1)
}

func (m *MockGatepassRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*gatepass.Gatepass, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatepass.Gatepass), args.Error(1)
}

// MockTx carries the transaction expectations common to every unit of work
// mock.
type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTx) PartRepository() ports.PartRepository {
	args := m.Called()
	return args.Get(0).(ports.PartRepository)
}

func (m *MockTx) PartsRequestRepository() ports.PartsRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PartsRequestRepository)
}

func (m *MockTx) TechnicianRepository() ports.TechnicianRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnicianRepository)
}

func (m *MockTx) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockTx) QualityCheckRepository() ports.QualityCheckRepository {
	args := m.Called()
	return args.Get(0).(ports.QualityCheckRepository)
}

func (m *MockTx) RoadTestRepository() ports.RoadTestRepository {
	args := m.Called()
	return args.Get(0).(ports.RoadTestRepository)
}

func (m *MockTx) BillingRepository() ports.BillingRepository {
	args := m.Called()
	return args.Get(0).(ports.BillingRepository)
}

func (m *MockTx) GatepassRepository() ports.GatepassRepository {
	args := m.Called()
	return args.Get(0).(ports.GatepassRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLaborUoWFactory struct{ mock.Mock }

func (m *MockLaborUoWFactory) Create() commands.LaborUoW {
	args := m.Called()
	return args.Get(0).(commands.LaborUoW)
}

type MockPartsUoWFactory struct{ mock.Mock }

func (m *MockPartsUoWFactory) Create() commands.PartsUoW {
	args := m.Called()
	return args.Get(0).(commands.PartsUoW)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockGatepassUoWFactory struct{ mock.Mock }

func (m *MockGatepassUoWFactory) Create() commands.GatepassUoW {
	args := m.Called()
	return args.Get(0).(commands.GatepassUoW)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.CancelUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelUoW)
}

// NoopEventPublisher satisfies ports.EventPublisher for handlers whose
// notifications are not under test.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(context.Context, ports.Event) {}

// RecordingEventPublisher captures published events for assertions.
type RecordingEventPublisher struct {
	Events []ports.Event
}

func (p *RecordingEventPublisher) Publish(_ context.Context, event ports.Event) {
	p.Events = append(p.Events, event)
}
