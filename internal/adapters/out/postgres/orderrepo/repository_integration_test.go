package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE service_orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createWalkInOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	appointmentDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	appointmentID := kernel.NewUUID()
	testOrder, err := serviceorder.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		&appointmentID,
		false,
		serviceorder.Intake{
			SlipNumber:        "SLIP-4711",
			AppointmentDate:   &appointmentDate,
			ServicesRequested: []string{"brake pads", "coolant flush"},
			CustomerNotes:     "squeal on braking",
		},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.FlagWarranty("powertrain"))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(loaded.ID()))
	suite.True(testOrder.CustomerID().IsEqual(loaded.CustomerID()))
	suite.True(testOrder.VehicleID().IsEqual(loaded.VehicleID()))
	suite.Equal(serviceorder.Scheduled, loaded.Status())
	suite.Require().NotNil(loaded.AppointmentID())
	suite.True(appointmentID.IsEqual(*loaded.AppointmentID()))
	suite.False(loaded.IsWalkIn())
	suite.True(loaded.IsWarranty())
	suite.Equal("powertrain", loaded.WarrantyType())
	suite.Equal("SLIP-4711", loaded.Intake().SlipNumber)
	suite.Equal([]string{"brake pads", "coolant flush"}, loaded.Intake().ServicesRequested)
	suite.Equal("squeal on braking", loaded.Intake().CustomerNotes)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()

	testOrder := suite.createWalkInOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.CheckIn(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(serviceorder.CheckedIn, loaded.Status())
	suite.NotNil(loaded.CheckedInAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	testOrder := suite.createWalkInOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	testOrder := suite.createWalkInOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// The advisor and the sweep both load the same scheduled order
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.CheckIn(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel())
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionConflict)

	// The first write wins; the order stays checked in
	fresh, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(serviceorder.CheckedIn, fresh.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	scheduled := suite.createWalkInOrder()
	suite.Require().NoError(suite.repository.Add(ctx, scheduled))

	checkedIn := suite.createWalkInOrder()
	suite.Require().NoError(checkedIn.CheckIn(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, checkedIn))

	result, err := suite.repository.GetAllInStatus(ctx, serviceorder.CheckedIn)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(checkedIn.ID().IsEqual(result[0].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllScheduledBefore_SkipsWalkInsAndFutureAppointments() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	// Walk-in: no appointment date, never swept
	walkIn := suite.createWalkInOrder()
	suite.Require().NoError(suite.repository.Add(ctx, walkIn))

	// Stale appointment
	stale := suite.createAppointmentOrder(time.Now().UTC().Add(-48 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	// Upcoming appointment
	upcoming := suite.createAppointmentOrder(time.Now().UTC().Add(48 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, upcoming))

	result, err := suite.repository.GetAllScheduledBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(stale.ID().IsEqual(result[0].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) createWalkInOrder() *serviceorder.Order {
	testOrder, err := serviceorder.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		true,
		serviceorder.Intake{
			SlipNumber:        "SLIP-0001",
			ServicesRequested: []string{"oil change"},
		},
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createAppointmentOrder(appointmentDate time.Time) *serviceorder.Order {
	appointmentID := kernel.NewUUID()
	testOrder, err := serviceorder.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		&appointmentID,
		false,
		serviceorder.Intake{
			SlipNumber:        "SLIP-0002",
			AppointmentDate:   &appointmentDate,
			ServicesRequested: []string{"inspection"},
		},
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
