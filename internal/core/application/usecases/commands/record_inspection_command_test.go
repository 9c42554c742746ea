package commands_test

import (
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordInspectionCommandHandler_Handle_OpensCheckOnFirstRecord(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	foremanID := kernel.NewUUID()
	testOrder := newQualityCheckOrder(t, techID)

	completed, err := assignment.NewAssignment(
		kernel.NewUUID(), testOrder.ID(), techID, kernel.NewUUID(), 2, time.Now())
	require.NoError(t, err)
	require.NoError(t, completed.Complete(time.Now(), 1.5))

	checkID := kernel.NewUUID()
	cmd, err := commands.NewRecordInspectionCommand(
		checkID, testOrder.ID(), foremanID,
		[]commands.InspectionItemInput{
			{Name: "brake function", Status: inspection.ItemStatusPass},
			{Name: "fluid levels", Status: inspection.ItemStatusPass},
		},
		inspection.OverallPass)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	checkRepo := new(MockQualityCheckRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("QualityCheckRepository").Return(checkRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		checkRepo.On("GetByOrder", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		assignmentRepo.On("GetAllByOrder", ctx, testOrder.ID()).
			Return([]*assignment.Assignment{completed}, nil).
			Once(),
		checkRepo.On("Add", ctx, mock.AnythingOfType("*inspection.QualityCheck")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordInspectionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.QualityCheck())
	assert.True(t, testOrder.QualityCheck().IsEqual(checkID))

	added := checkRepo.Calls[1].Arguments[1].(*inspection.QualityCheck)
	assert.Equal(t, inspection.OverallPass, added.OverallStatus())
	assert.Len(t, added.Items(), 2)
	assert.True(t, added.TechnicianID().IsEqual(techID))
}

func TestRecordInspectionCommandHandler_Handle_RoadTestRequiredParksOrder(t *testing.T) {
	ctx := t.Context()

	techID := kernel.NewUUID()
	foremanID := kernel.NewUUID()
	testOrder := newQualityCheckOrder(t, techID)
	require.NoError(t, testOrder.AttachQualityCheck(kernel.NewUUID()))

	check, err := inspection.NewQualityCheck(
		*testOrder.QualityCheck(), testOrder.ID(), techID, foremanID, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewRecordInspectionCommand(
		check.ID(), testOrder.ID(), foremanID,
		[]commands.InspectionItemInput{
			{Name: "transmission shift points", Status: inspection.ItemStatusNeedsAttention, Notes: "verify under load"},
		},
		inspection.OverallRequiresRoadTest)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	checkRepo := new(MockQualityCheckRepository)
	uow := new(MockTx)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("QualityCheckRepository").Return(checkRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		checkRepo.On("GetByOrder", ctx, testOrder.ID()).Return(check, nil).Once(),
		checkRepo.On("Update", ctx, mock.AnythingOfType("*inspection.QualityCheck")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*serviceorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordInspectionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, check.RoadTestRequired())
	assert.Equal(t, serviceorder.WaitingRoadTest, testOrder.Status())
}
