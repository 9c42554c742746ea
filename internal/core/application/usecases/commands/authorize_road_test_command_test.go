package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoadTestPendingCheck(t *testing.T) *inspection.QualityCheck {
	t.Helper()
	check, err := inspection.NewQualityCheck(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, check.RecordResults(
		[]inspection.Item{inspection.RestoreItem("shift points", inspection.ItemStatusNeedsAttention, "")},
		inspection.OverallRequiresRoadTest))
	return check
}

func TestAuthorizeRoadTestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	check := newRoadTestPendingCheck(t)
	manager, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleServiceManager)
	require.NoError(t, err)

	roadTestID := kernel.NewUUID()
	cmd, err := commands.NewAuthorizeRoadTestCommand(roadTestID, check.ID(), manager)
	require.NoError(t, err)

	checkRepo := new(MockQualityCheckRepository)
	roadTestRepo := new(MockRoadTestRepository)
	uow := new(MockTx)
	uow.On("QualityCheckRepository").Return(checkRepo)
	uow.On("RoadTestRepository").Return(roadTestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		checkRepo.On("Get", ctx, check.ID()).Return(check, nil).Once(),
		roadTestRepo.On("Add", ctx, mock.AnythingOfType("*inspection.RoadTest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingEventPublisher{}
	handler := commands.NewAuthorizeRoadTestCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := roadTestRepo.Calls[0].Arguments[1].(*inspection.RoadTest)
	assert.True(t, added.ID().IsEqual(roadTestID))
	assert.True(t, added.CheckID().IsEqual(check.ID()))
	assert.True(t, added.AuthorizedBy().IsEqual(manager.UserID()))
	assert.False(t, added.IsCompleted())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, ports.EventRoadTestAuthorized, publisher.Events[0].Name)
}

func TestAuthorizeRoadTestCommandHandler_Handle_TechnicianMayNotAuthorize(t *testing.T) {
	ctx := t.Context()

	check := newRoadTestPendingCheck(t)
	tech, err := kernel.NewTechnicianPrincipal(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewAuthorizeRoadTestCommand(kernel.NewUUID(), check.ID(), tech)
	require.NoError(t, err)

	factory := new(MockInspectionUoWFactory)
	handler := commands.NewAuthorizeRoadTestCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestAuthorizeRoadTestCommandHandler_Handle_NoRoadTestNeeded(t *testing.T) {
	ctx := t.Context()

	check, err := inspection.NewQualityCheck(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, check.RecordResults(
		[]inspection.Item{inspection.RestoreItem("brakes", inspection.ItemStatusPass, "")},
		inspection.OverallPass))

	advisor, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleAdvisor)
	require.NoError(t, err)

	cmd, err := commands.NewAuthorizeRoadTestCommand(kernel.NewUUID(), check.ID(), advisor)
	require.NoError(t, err)

	checkRepo := new(MockQualityCheckRepository)
	uow := new(MockTx)
	uow.On("QualityCheckRepository").Return(checkRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		checkRepo.On("Get", ctx, check.ID()).Return(check, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAuthorizeRoadTestCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
