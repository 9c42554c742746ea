package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/technician"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	record, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), techID, kernel.NewUUID(), 2, time.Now())
	require.NoError(t, err)
	require.NoError(t, record.ClockIn(time.Now().Add(-time.Hour)))

	tech, err := technician.NewTechnician(techID, "Ben Ocampo", []string{"engine"})
	require.NoError(t, err)
	require.NoError(t, tech.TakeAssignment())

	cmd, err := commands.NewCompleteAssignmentCommand(techID, 1.75)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockTx)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("TechnicianRepository").Return(technicianRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		assignmentRepo.On("GetActiveByTechnician", ctx, techID).Return(record, nil).Once(),
		technicianRepo.On("Get", ctx, techID).Return(tech, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteAssignmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.StatusCompleted, record.Status())
	assert.InDelta(t, 1.75, record.ActualHours(), 0.001)
	assert.NotNil(t, record.CompletedAt())
	assert.Equal(t, technician.StatusAvailable, tech.Status())
	assert.Equal(t, 1, tech.CompletedJobs())
}
