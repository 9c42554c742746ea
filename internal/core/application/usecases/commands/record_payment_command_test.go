package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentCommandHandler_Handle_OpensGatepass(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	billingID := kernel.NewUUID()
	testOrder := newForPaymentOrder(t, techID, billingID, 120)
	bill := newGeneratedBill(t, testOrder.ID(), billingID)
	require.NoError(t, bill.MarkForPayment())

	gatepassID := kernel.NewUUID()
	cashierID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		testOrder.ID(), gatepassID, "cash", "OR-5521", cashierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	gatepassRepo := new(MockGatepassRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BillingRepository").Return(billingRepo)
	uow.On("GatepassRepository").Return(gatepassRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		billingRepo.On("GetByOrder", ctx, testOrder.ID()).Return(bill, nil).Once(),
		billingRepo.On("Update", ctx, mock.AnythingOfType("*billing.Billing")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		gatepassRepo.On("Add", ctx, mock.AnythingOfType("*gatepass.Gatepass")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingEventPublisher{}
	handler := commands.NewRecordPaymentCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.Paid, testOrder.Status())
	assert.Equal(t, billing.StatusPaid, bill.Status())

	require.NotNil(t, bill.Payment())
	assert.Equal(t, "cash", bill.Payment().Method())
	// The settled amount is always the billing total.
	assert.InDelta(t, bill.Total(), bill.Payment().Amount(), 0.001)

	pass := gatepassRepo.Calls[0].Arguments[1].(*gatepass.Gatepass)
	assert.True(t, pass.ID().IsEqual(gatepassID))
	assert.False(t, pass.WarrantyRequired())
	assert.False(t, pass.Released())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, ports.EventPaymentRecorded, publisher.Events[0].Name)
}

func TestRecordPaymentCommandHandler_Handle_BillNotForPayment(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	billingID := kernel.NewUUID()
	testOrder := newForPaymentOrder(t, techID, billingID, 120)
	bill := newGeneratedBill(t, testOrder.ID(), billingID) // still Generated

	cmd, err := commands.NewRecordPaymentCommand(
		testOrder.ID(), kernel.NewUUID(), "cash", "", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BillingRepository").Return(billingRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		billingRepo.On("GetByOrder", ctx, testOrder.ID()).Return(bill, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, serviceorder.ForPayment, testOrder.Status())
}

func TestNewRecordPaymentCommand_RequiresMethod(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "", kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
