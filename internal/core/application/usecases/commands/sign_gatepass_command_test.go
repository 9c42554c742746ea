package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignGatepassCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	pass, err := gatepass.NewGatepass(kernel.NewUUID(), orderID, kernel.NewUUID(), false)
	require.NoError(t, err)

	cashier, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleCashier)
	require.NoError(t, err)

	cmd, err := commands.NewSignGatepassCommand(orderID, gatepass.SlotCashier, cashier)
	require.NoError(t, err)

	gatepassRepo := new(MockGatepassRepository)
	uow := new(MockTx)
	uow.On("GatepassRepository").Return(gatepassRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		gatepassRepo.On("GetByOrder", ctx, orderID).Return(pass, nil).Once(),
		gatepassRepo.On("Update", ctx, mock.AnythingOfType("*gatepass.Gatepass")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGatepassUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSignGatepassCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, pass.Signature(gatepass.SlotCashier).IsSigned())
	assert.False(t, pass.IsValid()) // other slots still open
}

func TestSignGatepassCommandHandler_Handle_WrongRoleForSlot(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	pass, err := gatepass.NewGatepass(kernel.NewUUID(), orderID, kernel.NewUUID(), false)
	require.NoError(t, err)

	cashier, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleCashier)
	require.NoError(t, err)

	// A cashier may not fill the accounting slot.
	cmd, err := commands.NewSignGatepassCommand(orderID, gatepass.SlotAccounting, cashier)
	require.NoError(t, err)

	gatepassRepo := new(MockGatepassRepository)
	uow := new(MockTx)
	uow.On("GatepassRepository").Return(gatepassRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		gatepassRepo.On("GetByOrder", ctx, orderID).Return(pass, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGatepassUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSignGatepassCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, pass.Signature(gatepass.SlotAccounting).IsSigned())
}

func TestSignGatepassCommandHandler_Handle_DoubleSign(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	pass, err := gatepass.NewGatepass(kernel.NewUUID(), orderID, kernel.NewUUID(), false)
	require.NoError(t, err)

	cashier, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleCashier)
	require.NoError(t, err)
	require.NoError(t, pass.Sign(gatepass.SlotCashier, cashier.UserID(), cashier.Role(), time.Now()))

	cmd, err := commands.NewSignGatepassCommand(orderID, gatepass.SlotCashier, cashier)
	require.NoError(t, err)

	gatepassRepo := new(MockGatepassRepository)
	uow := new(MockTx)
	uow.On("GatepassRepository").Return(gatepassRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		gatepassRepo.On("GetByOrder", ctx, orderID).Return(pass, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGatepassUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSignGatepassCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
