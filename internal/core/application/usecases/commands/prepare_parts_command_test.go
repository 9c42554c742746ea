package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreparePartsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	testOrder := newInProgressOrder(t, techID)

	partID := kernel.NewUUID()
	request, err := partsflow.NewRequest(
		kernel.NewUUID(), testOrder.ID(), techID, partID, 2, time.Now())
	require.NoError(t, err)

	stocked, err := part.NewPart(partID, "Brake Pad Set", "BP-2201", 8, 45.50, "OEM Supply")
	require.NoError(t, err)

	issuanceID := kernel.NewUUID()
	cmd, err := commands.NewPreparePartsCommand(request.ID(), issuanceID)
	require.NoError(t, err)

	requestRepo := new(MockPartsRequestRepository)
	partRepo := new(MockPartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("PartsRequestRepository").Return(requestRepo)
	uow.On("PartRepository").Return(partRepo)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		partRepo.On("Get", ctx, partID).Return(stocked, nil).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*partsflow.Request")).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPreparePartsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, partsflow.StatusPrepared, request.Status())
	assert.Equal(t, serviceorder.WaitingParts, testOrder.Status())
	require.NotNil(t, request.Issuance())
	// The issuance captures the ledger price at preparation time.
	assert.InDelta(t, 45.50, request.Issuance().UnitPrice(), 0.001)
	assert.InDelta(t, 91.00, request.Issuance().Total(), 0.001)
}

func TestPreparePartsCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	testOrder := newInProgressOrder(t, techID)

	partID := kernel.NewUUID()
	request, err := partsflow.NewRequest(
		kernel.NewUUID(), testOrder.ID(), techID, partID, 10, time.Now())
	require.NoError(t, err)

	stocked, err := part.NewPart(partID, "Brake Pad Set", "BP-2201", 3, 45.50, "OEM Supply")
	require.NoError(t, err)

	cmd, err := commands.NewPreparePartsCommand(request.ID(), kernel.NewUUID())
	require.NoError(t, err)

	requestRepo := new(MockPartsRequestRepository)
	partRepo := new(MockPartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("PartsRequestRepository").Return(requestRepo)
	uow.On("PartRepository").Return(partRepo)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		partRepo.On("Get", ctx, partID).Return(stocked, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPreparePartsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, part.ErrInsufficientStock)
	assert.Equal(t, partsflow.StatusRequested, request.Status())
	// A failed preparation leaves the order working.
	assert.Equal(t, serviceorder.InProgress, testOrder.Status())
	requestRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
