package partrepo_test

import (
	"context"
	"testing"
	"time"

	"autoshop/internal/adapters/out/postgres/partrepo"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
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

// PartRepositoryIntegrationTestSuite provides integration tests for the
// inventory ledger, most importantly the atomic stock debit.
type PartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partrepo.GormPartRepository
	tracker    *MockAggregateTracker
}

func (suite *PartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partrepo.PartDTO{}))
}

func (suite *PartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = partrepo.NewGormPartRepository(suite.db, suite.tracker)
}

func (suite *PartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartRepositoryIntegrationTestSuite) TestAddGet_RoundTrip() {
	ctx := context.Background()

	testPart := suite.createBrakePads(8)
	suite.tracker.On("TrackAggregate", testPart.ID(), testPart).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testPart))

	loaded, err := suite.repository.Get(ctx, testPart.ID())
	suite.Require().NoError(err)
	suite.Equal("Brake Pads", loaded.Name())
	suite.Equal("BP-2044", loaded.SKU())
	suite.Equal(8, loaded.OnHand())
	suite.InDelta(45.50, loaded.Price(), 0.001)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartRepositoryIntegrationTestSuite) TestDebitOnHand_SufficientStock_Decrements() {
	ctx := context.Background()

	testPart := suite.createBrakePads(8)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testPart))

	suite.Require().NoError(suite.repository.DebitOnHand(ctx, testPart.ID(), 3))

	loaded, err := suite.repository.Get(ctx, testPart.ID())
	suite.Require().NoError(err)
	suite.Equal(5, loaded.OnHand())
}

func (suite *PartRepositoryIntegrationTestSuite) TestDebitOnHand_InsufficientStock_FailsWithoutChange() {
	ctx := context.Background()

	testPart := suite.createBrakePads(2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testPart))

	err := suite.repository.DebitOnHand(ctx, testPart.ID(), 3)
	suite.Require().Error(err)
	suite.ErrorIs(err, part.ErrInsufficientStock)

	loaded, err := suite.repository.Get(ctx, testPart.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.OnHand())
}

func (suite *PartRepositoryIntegrationTestSuite) TestDebitOnHand_ExactStock_DrainsToZero() {
	ctx := context.Background()

	testPart := suite.createBrakePads(2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testPart))

	suite.Require().NoError(suite.repository.DebitOnHand(ctx, testPart.ID(), 2))

	loaded, err := suite.repository.Get(ctx, testPart.ID())
	suite.Require().NoError(err)
	suite.Equal(0, loaded.OnHand())

	// The next unit is no longer there
	err = suite.repository.DebitOnHand(ctx, testPart.ID(), 1)
	suite.ErrorIs(err, part.ErrInsufficientStock)
}

func (suite *PartRepositoryIntegrationTestSuite) TestDebitOnHand_ConcurrentDebits_OnlyOneWinsLastUnits() {
	ctx := context.Background()

	testPart := suite.createBrakePads(3)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testPart))

	results := make(chan error, 2)
	for range 2 {
		go func() {
			results <- suite.repository.DebitOnHand(ctx, testPart.ID(), 2)
		}()
	}

	var failures int
	for range 2 {
		if err := <-results; err != nil {
			suite.ErrorIs(err, part.ErrInsufficientStock)
			failures++
		}
	}
	suite.Equal(1, failures)

	loaded, err := suite.repository.Get(ctx, testPart.ID())
	suite.Require().NoError(err)
	suite.Equal(1, loaded.OnHand())
}

func (suite *PartRepositoryIntegrationTestSuite) TestDebitOnHand_UnknownPart_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.DebitOnHand(ctx, kernel.NewUUID(), 1)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartRepositoryIntegrationTestSuite) createBrakePads(onHand int) *part.Part {
	testPart, err := part.NewPart(
		kernel.NewUUID(),
		"Brake Pads",
		"BP-2044",
		onHand,
		45.50,
		"OEM Supply Co",
	)
	suite.Require().NoError(err)
	return testPart
}

func TestPartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartRepositoryIntegrationTestSuite))
}
