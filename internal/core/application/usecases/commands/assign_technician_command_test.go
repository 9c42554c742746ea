package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/domain/model/technician"
	"autoshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	testOrder := newCheckedInOrder(t)
	tech, err := technician.NewTechnician(techID, "Ben Ocampo", []string{"engine", "brakes"})
	require.NoError(t, err)

	cmd, err := commands.NewAssignTechnicianCommand(
		kernel.NewUUID(), testOrder.ID(), techID, kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TechnicianRepository").Return(technicianRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		technicianRepo.On("Get", ctx, techID).Return(tech, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingEventPublisher{}
	handler := commands.NewAssignTechnicianCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.InProgress, testOrder.Status())
	assert.Equal(t, technician.StatusBusy, tech.Status())
	require.NotNil(t, testOrder.Technician())
	assert.True(t, testOrder.Technician().IsEqual(techID))

	added := assignmentRepo.Calls[0].Arguments[1].(*assignment.Assignment)
	assert.Equal(t, assignment.StatusAssigned, added.Status())
	assert.InDelta(t, 2.5, added.EstimatedHours(), 0.001)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, ports.EventTechnicianAssigned, publisher.Events[0].Name)
}

func TestAssignTechnicianCommandHandler_Handle_TechnicianBusy(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	testOrder := newCheckedInOrder(t)
	tech, err := technician.NewTechnician(techID, "Ben Ocampo", []string{"engine"})
	require.NoError(t, err)
	require.NoError(t, tech.TakeAssignment()) // already working another order

	cmd, err := commands.NewAssignTechnicianCommand(
		kernel.NewUUID(), testOrder.ID(), techID, kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TechnicianRepository").Return(technicianRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		technicianRepo.On("Get", ctx, techID).Return(tech, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTechnicianCommandHandler(factory, NoopEventPublisher{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, technician.ErrTechnicianUnavailable)
	assert.Equal(t, serviceorder.CheckedIn, testOrder.Status())
}
