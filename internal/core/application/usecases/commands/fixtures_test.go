package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/require"
)

// Order fixtures drive the aggregate through its real transitions so the
// handlers under test see the same state they would in production.

func newScheduledOrder(t *testing.T) *serviceorder.Order {
	t.Helper()
	order, err := serviceorder.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, true,
		serviceorder.Intake{
			SlipNumber:        "SLIP-001",
			ServicesRequested: []string{"oil change"},
		})
	require.NoError(t, err)
	return order
}

func newCheckedInOrder(t *testing.T) *serviceorder.Order {
	t.Helper()
	order := newScheduledOrder(t)
	require.NoError(t, order.CheckIn(time.Now()))
	return order
}

func newInProgressOrder(t *testing.T, technicianID kernel.UUID) *serviceorder.Order {
	t.Helper()
	order := newCheckedInOrder(t)
	require.NoError(t, order.AssignTechnician(technicianID))
	return order
}

func newQualityCheckOrder(t *testing.T, technicianID kernel.UUID) *serviceorder.Order {
	t.Helper()
	order := newInProgressOrder(t, technicianID)
	require.NoError(t, order.SendToQualityCheck(2.5))
	return order
}

func newQCPassedOrder(t *testing.T, technicianID kernel.UUID) *serviceorder.Order {
	t.Helper()
	order := newQualityCheckOrder(t, technicianID)
	require.NoError(t, order.AttachQualityCheck(kernel.NewUUID()))
	require.NoError(t, order.PassQualityCheck(time.Now()))
	return order
}

func newForPaymentOrder(t *testing.T, technicianID, billingID kernel.UUID, total float64) *serviceorder.Order {
	t.Helper()
	order := newQCPassedOrder(t, technicianID)
	require.NoError(t, order.AttachBilling(billingID, total))
	require.NoError(t, order.MarkForPayment())
	return order
}

func newPaidOrder(t *testing.T, technicianID, billingID kernel.UUID, total float64) *serviceorder.Order {
	t.Helper()
	order := newForPaymentOrder(t, technicianID, billingID, total)
	require.NoError(t, order.Pay())
	return order
}
