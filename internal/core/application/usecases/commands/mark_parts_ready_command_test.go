package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPartsReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	request, err := partsflow.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, time.Now())
	require.NoError(t, err)
	require.NoError(t, request.Prepare(kernel.NewUUID(), 45.50))

	cmd, err := commands.NewMarkPartsReadyCommand(request.ID())
	require.NoError(t, err)

	requestRepo := new(MockPartsRequestRepository)
	uow := new(MockTx)
	uow.On("PartsRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*partsflow.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPartsReadyCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, partsflow.StatusReadyForRelease, request.Status())
}

func TestMarkPartsReadyCommandHandler_Handle_NotPrepared(t *testing.T) {
	ctx := t.Context()

	request, err := partsflow.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewMarkPartsReadyCommand(request.ID())
	require.NoError(t, err)

	requestRepo := new(MockPartsRequestRepository)
	uow := new(MockTx)
	uow.On("PartsRequestRepository").Return(requestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPartsReadyCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
