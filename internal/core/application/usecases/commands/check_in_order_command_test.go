package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckInOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newScheduledOrder(t)
	cmd, err := commands.NewCheckInOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingEventPublisher{}
	handler := commands.NewCheckInOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.CheckedIn, testOrder.Status())
	assert.NotNil(t, testOrder.ArrivedAt())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, ports.EventOrderCheckedIn, publisher.Events[0].Name)
}

func TestCheckInOrderCommandHandler_Handle_AlreadyCheckedIn(t *testing.T) {
	ctx := t.Context()
	testOrder := newCheckedInOrder(t)
	cmd, err := commands.NewCheckInOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckInOrderCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCheckInOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	testOrder := newScheduledOrder(t)
	cmd, err := commands.NewCheckInOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckInOrderCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
