package serviceorder_test

import (
	"testing"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *serviceorder.Order {
	t.Helper()
	order, err := serviceorder.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, true,
		serviceorder.Intake{ServicesRequested: []string{"PMS"}, CustomerNotes: "rattling noise"},
	)
	require.NoError(t, err)
	return order
}

func advanceToInProgress(t *testing.T, order *serviceorder.Order, techID kernel.UUID) {
	t.Helper()
	require.NoError(t, order.CheckIn(time.Now()))
	require.NoError(t, order.AssignTechnician(techID))
}

func TestNewOrder(t *testing.T) {
	t.Run("walk-in starts Scheduled without appointment", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Equal(t, serviceorder.Scheduled, order.Status())
		assert.True(t, order.IsWalkIn())
		assert.Nil(t, order.AppointmentID())
		assert.Nil(t, order.Technician())
		assert.NoError(t, order.Validate())
	})

	t.Run("appointment conversion keeps slip data", func(t *testing.T) {
		appointmentID := kernel.NewUUID()
		when := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

		order, err := serviceorder.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&appointmentID, false,
			serviceorder.Intake{SlipNumber: "CIS-1042", AppointmentDate: &when},
		)

		require.NoError(t, err)
		require.NotNil(t, order.AppointmentID())
		assert.True(t, order.AppointmentID().IsEqual(appointmentID))
		assert.Equal(t, "CIS-1042", order.Intake().SlipNumber)
	})

	t.Run("walk-in with appointment is rejected", func(t *testing.T) {
		appointmentID := kernel.NewUUID()
		_, err := serviceorder.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&appointmentID, true, serviceorder.Intake{},
		)

		require.Error(t, err)
	})

	t.Run("zero ids are rejected", func(t *testing.T) {
		_, err := serviceorder.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil, true, serviceorder.Intake{},
		)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var order serviceorder.Order
		require.ErrorIs(t, order.Validate(), serviceorder.ErrOrderIsNotConstructed)
	})
}

func TestOrder_CheckIn(t *testing.T) {
	t.Run("records arrival and flips status", func(t *testing.T) {
		order := newTestOrder(t)
		at := time.Now()

		require.NoError(t, order.CheckIn(at))

		assert.Equal(t, serviceorder.CheckedIn, order.Status())
		require.NotNil(t, order.ArrivedAt())
		assert.Equal(t, at, *order.ArrivedAt())
	})

	t.Run("double check-in fails", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.CheckIn(time.Now()))

		require.ErrorIs(t, order.CheckIn(time.Now()), errs.ErrInvalidState)
	})
}

func TestOrder_AssignTechnician(t *testing.T) {
	t.Run("binds technician and starts work", func(t *testing.T) {
		order := newTestOrder(t)
		techID := kernel.NewUUID()
		require.NoError(t, order.CheckIn(time.Now()))

		require.NoError(t, order.AssignTechnician(techID))

		assert.Equal(t, serviceorder.InProgress, order.Status())
		require.NotNil(t, order.Technician())
		assert.True(t, order.Technician().IsEqual(techID))
	})

	t.Run("fails before check-in", func(t *testing.T) {
		order := newTestOrder(t)

		require.ErrorIs(t, order.AssignTechnician(kernel.NewUUID()), errs.ErrInvalidState)
	})

	t.Run("second technician is rejected", func(t *testing.T) {
		order := newTestOrder(t)
		advanceToInProgress(t, order, kernel.NewUUID())

		require.ErrorIs(t, order.AssignTechnician(kernel.NewUUID()), serviceorder.ErrTechnicianAlreadyAssigned)
	})
}

func TestOrder_PartsLoop(t *testing.T) {
	order := newTestOrder(t)
	advanceToInProgress(t, order, kernel.NewUUID())

	require.NoError(t, order.WaitForParts())
	assert.Equal(t, serviceorder.WaitingParts, order.Status())
	assert.NotNil(t, order.Technician(), "technician stays bound while waiting for parts")

	require.NoError(t, order.ResumeWork())
	assert.Equal(t, serviceorder.InProgress, order.Status())
}

func TestOrder_SendToQualityCheck(t *testing.T) {
	t.Run("copies hours and clears technician", func(t *testing.T) {
		order := newTestOrder(t)
		advanceToInProgress(t, order, kernel.NewUUID())

		require.NoError(t, order.SendToQualityCheck(3.25))

		assert.Equal(t, serviceorder.QualityCheck, order.Status())
		assert.InDelta(t, 3.25, order.LaborHours(), 1e-9)
		assert.Nil(t, order.Technician())
	})

	t.Run("negative hours rejected", func(t *testing.T) {
		order := newTestOrder(t)
		advanceToInProgress(t, order, kernel.NewUUID())

		require.Error(t, order.SendToQualityCheck(-1))
		assert.Equal(t, serviceorder.InProgress, order.Status(), "failed operation must not mutate")
	})
}

func TestOrder_RoadTestLoop(t *testing.T) {
	order := newTestOrder(t)
	advanceToInProgress(t, order, kernel.NewUUID())
	require.NoError(t, order.SendToQualityCheck(2))

	require.NoError(t, order.RequireRoadTest())
	assert.Equal(t, serviceorder.WaitingRoadTest, order.Status())

	require.NoError(t, order.ReturnFromRoadTest())
	assert.Equal(t, serviceorder.QualityCheck, order.Status())
}

func TestOrder_BillingAndRelease(t *testing.T) {
	order := newTestOrder(t)
	advanceToInProgress(t, order, kernel.NewUUID())
	require.NoError(t, order.SendToQualityCheck(2))
	require.NoError(t, order.PassQualityCheck(time.Now()))

	billingID := kernel.NewUUID()
	require.NoError(t, order.AttachBilling(billingID, 480.50))
	assert.Equal(t, serviceorder.Completed, order.Status())
	assert.InDelta(t, 480.50, order.TotalCost(), 1e-9)
	require.NotNil(t, order.Billing())

	t.Run("second billing record is rejected", func(t *testing.T) {
		err := order.AttachBilling(kernel.NewUUID(), 100)
		require.ErrorIs(t, err, serviceorder.ErrBillingAlreadyAttached)
	})

	require.NoError(t, order.MarkForPayment())
	require.NoError(t, order.Pay())
	require.NoError(t, order.Release())
	assert.Equal(t, serviceorder.Released, order.Status())

	t.Run("release is terminal", func(t *testing.T) {
		require.ErrorIs(t, order.Cancel(), errs.ErrInvalidState)
	})
}

func TestOrder_FlagWarranty(t *testing.T) {
	t.Run("allowed during intake", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.FlagWarranty("Powertrain"))

		assert.True(t, order.IsWarranty())
		assert.Equal(t, "Powertrain", order.WarrantyType())
	})

	t.Run("rejected after work starts", func(t *testing.T) {
		order := newTestOrder(t)
		advanceToInProgress(t, order, kernel.NewUUID())

		require.ErrorIs(t, order.FlagWarranty("Powertrain"), errs.ErrInvalidState)
	})
}

func TestOrder_Cancel(t *testing.T) {
	order := newTestOrder(t)
	advanceToInProgress(t, order, kernel.NewUUID())

	require.NoError(t, order.Cancel())

	assert.Equal(t, serviceorder.Cancelled, order.Status())
	assert.Nil(t, order.Technician())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips a mid-flight order", func(t *testing.T) {
		id := kernel.NewUUID()
		techID := kernel.NewUUID()
		arrived := time.Now().Add(-2 * time.Hour)

		order, err := serviceorder.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			serviceorder.InProgress,
			nil, true, serviceorder.Intake{},
			&arrived, &arrived,
			true, "Extended",
			&techID,
			0, 0, nil, nil, nil, 3,
		)

		require.NoError(t, err)
		assert.Equal(t, serviceorder.InProgress, order.Status())
		assert.True(t, order.IsWarranty())
		assert.Equal(t, 3, order.Version())
		require.NotNil(t, order.Technician())
	})

	t.Run("rejects technician outside active work", func(t *testing.T) {
		techID := kernel.NewUUID()

		_, err := serviceorder.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			serviceorder.QualityCheck,
			nil, true, serviceorder.Intake{},
			nil, nil, false, "",
			&techID,
			0, 0, nil, nil, nil, 0,
		)

		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := serviceorder.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			serviceorder.Unknown,
			nil, true, serviceorder.Intake{},
			nil, nil, false, "", nil,
			0, 0, nil, nil, nil, 0,
		)

		require.Error(t, err)
	})
}
