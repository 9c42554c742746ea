package assignment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

func newTestAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2.5, time.Now())
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	techID := kernel.NewUUID()
	assignerID := kernel.NewUUID()
	at := time.Now()

	a, err := assignment.NewAssignment(id, orderID, techID, assignerID, 2.5, at)
	require.NoError(t, err)

	assert.NoError(t, a.Validate())
	assert.Equal(t, id, a.ID())
	assert.Equal(t, orderID, a.OrderID())
	assert.Equal(t, techID, a.TechnicianID())
	assert.Equal(t, assignerID, a.AssignedBy())
	assert.Equal(t, assignment.StatusAssigned, a.Status())
	assert.Equal(t, 2.5, a.EstimatedHours())
	assert.True(t, a.IsActive())
	assert.Empty(t, a.Sessions())
}

func TestNewAssignmentRejectsNegativeEstimate(t *testing.T) {
	_, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		-1, time.Now())
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAssignmentClockIn(t *testing.T) {
	a := newTestAssignment(t)
	at := time.Now()

	require.NoError(t, a.ClockIn(at))

	assert.Equal(t, assignment.StatusInProgress, a.Status())
	require.Len(t, a.Sessions(), 1)
	assert.Equal(t, at, a.Sessions()[0].ClockIn())
	assert.True(t, a.Sessions()[0].IsOpen())

	assert.ErrorIs(t, a.ClockIn(at.Add(time.Minute)), assignment.ErrAlreadyClockedIn)
}

func TestAssignmentClockOut(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, a.ClockOut(in, "nothing"), assignment.ErrNotClockedIn)

	require.NoError(t, a.ClockIn(in))
	out := in.Add(90 * time.Minute)
	require.NoError(t, a.ClockOut(out, "replaced brake pads"))

	require.Len(t, a.Sessions(), 1)
	assert.False(t, a.Sessions()[0].IsOpen())
	assert.Equal(t, 1.5, a.Sessions()[0].Hours())
	assert.Equal(t, []string{"replaced brake pads"}, a.WorkPerformed())
}

func TestAssignmentClockOutBeforeClockInFails(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Now()
	require.NoError(t, a.ClockIn(in))

	assert.ErrorIs(t, a.ClockOut(in.Add(-time.Minute), ""), errs.ErrValueIsInvalid)
}

func TestAssignmentTrackedHoursRounding(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	require.NoError(t, a.ClockIn(in))
	// 10 minutes = 0.16666... hours, rounds to 0.17.
	require.NoError(t, a.ClockOut(in.Add(10*time.Minute), "diagnosis"))

	assert.Equal(t, 0.17, a.TrackedHours())
}

func TestAssignmentMultipleSessions(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	require.NoError(t, a.ClockIn(in))
	require.NoError(t, a.ClockOut(in.Add(time.Hour), "first pass"))
	require.NoError(t, a.ClockIn(in.Add(2*time.Hour)))
	require.NoError(t, a.ClockOut(in.Add(2*time.Hour+30*time.Minute), "second pass"))

	assert.Equal(t, 1.5, a.TrackedHours())
	assert.Len(t, a.Sessions(), 2)
}

func TestAssignmentComplete(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, a.ClockIn(in))

	done := in.Add(2 * time.Hour)
	require.NoError(t, a.Complete(done, 1.5))

	assert.Equal(t, assignment.StatusCompleted, a.Status())
	assert.False(t, a.IsActive())
	assert.Equal(t, 1.5, a.ActualHours())
	require.NotNil(t, a.CompletedAt())
	assert.Equal(t, done, *a.CompletedAt())
	// Open session was auto-closed at completion time.
	require.Len(t, a.Sessions(), 1)
	assert.False(t, a.Sessions()[0].IsOpen())
	assert.Equal(t, 2.0, a.TrackedHours())
}

func TestAssignmentBillableHoursTakesLarger(t *testing.T) {
	a := newTestAssignment(t)
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, a.ClockIn(in))
	require.NoError(t, a.Complete(in.Add(2*time.Hour), 1.5))

	assert.Equal(t, 2.0, a.BillableHours())
}

func TestAssignmentCompleteBeforeStartFails(t *testing.T) {
	a := newTestAssignment(t)

	assert.ErrorIs(t, a.Complete(time.Now(), 1), errs.ErrInvalidState)
}

func TestAssignmentCancel(t *testing.T) {
	a := newTestAssignment(t)
	require.NoError(t, a.ClockIn(time.Now()))

	require.NoError(t, a.Cancel())

	assert.Equal(t, assignment.StatusCancelled, a.Status())
	assert.Empty(t, a.Sessions())
	assert.ErrorIs(t, a.Cancel(), errs.ErrInvalidState)
}

func TestRestoreAssignment(t *testing.T) {
	id := kernel.NewUUID()
	in := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour)
	completed := out.Add(time.Minute)

	a, err := assignment.RestoreAssignment(
		id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		assignment.StatusCompleted, 2.0, 1.25, in, &completed,
		[]assignment.Session{assignment.RestoreSession(in, &out, 1.0)},
		[]string{"oil change"})
	require.NoError(t, err)

	assert.Equal(t, assignment.StatusCompleted, a.Status())
	assert.Equal(t, 1.25, a.ActualHours())
	assert.Equal(t, 1.0, a.TrackedHours())
	assert.Equal(t, 1.25, a.BillableHours())
	assert.Equal(t, []string{"oil change"}, a.WorkPerformed())
}
