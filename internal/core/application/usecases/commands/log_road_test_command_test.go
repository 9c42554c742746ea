package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogRoadTestCommandHandler_Handle_ReturnsOrderToQualityCheck(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	testOrder := newQualityCheckOrder(t, techID)
	require.NoError(t, testOrder.AttachQualityCheck(kernel.NewUUID()))
	require.NoError(t, testOrder.RequireRoadTest())

	check, err := inspection.NewQualityCheck(
		*testOrder.QualityCheck(), testOrder.ID(), techID, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, check.RecordResults(
		[]inspection.Item{inspection.RestoreItem("shift points", inspection.ItemStatusNeedsAttention, "")},
		inspection.OverallRequiresRoadTest))

	roadTest, err := inspection.NewRoadTest(
		kernel.NewUUID(), check.ID(), testOrder.ID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	testerID := kernel.NewUUID()
	cmd, err := commands.NewLogRoadTestCommand(check.ID(), testerID, true, "shifts cleanly under load")
	require.NoError(t, err)

	roadTestRepo := new(MockRoadTestRepository)
	checkRepo := new(MockQualityCheckRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("RoadTestRepository").Return(roadTestRepo)
	uow.On("QualityCheckRepository").Return(checkRepo)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		roadTestRepo.On("GetByCheck", ctx, check.ID()).Return(roadTest, nil).Once(),
		checkRepo.On("Get", ctx, check.ID()).Return(check, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		roadTestRepo.On("Update", ctx, mock.AnythingOfType("*inspection.RoadTest")).Return(nil).Once(),
		checkRepo.On("Update", ctx, mock.AnythingOfType("*inspection.QualityCheck")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogRoadTestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, roadTest.IsCompleted())
	assert.True(t, roadTest.RouteCompliant())
	require.NotNil(t, roadTest.TesterID())
	assert.True(t, roadTest.TesterID().IsEqual(testerID))

	// The check goes back to the foreman for a fresh verdict.
	assert.False(t, check.RoadTestRequired())
	assert.Equal(t, inspection.OverallUnknown, check.OverallStatus())
	assert.Equal(t, serviceorder.QualityCheck, testOrder.Status())
}

func TestLogRoadTestCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()

	checkID := kernel.NewUUID()
	cmd, err := commands.NewLogRoadTestCommand(checkID, kernel.NewUUID(), true, "done")
	require.NoError(t, err)

	roadTestRepo := new(MockRoadTestRepository)
	uow := new(MockTx)
	uow.On("RoadTestRepository").Return(roadTestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		roadTestRepo.On("GetByCheck", ctx, checkID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogRoadTestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRoadTestNotAuthorized)
}
