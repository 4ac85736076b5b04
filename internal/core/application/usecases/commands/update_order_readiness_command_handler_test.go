package commands_test

import (
	"testing"

	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderReadinessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoredOrder(t, id, workflow.StatusSurgeryCompleted, workflow.Readiness{})

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once()
	repo.On("UpdateReadiness", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewUpdateOrderReadinessCommandHandler(repo)
	cmd, err := commands.NewUpdateOrderReadinessCommand(id, workflow.Readiness{EvidenceUploaded: true})
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.Readiness().EvidenceUploaded)
	// Readiness changes never move status by themselves.
	assert.Equal(t, workflow.StatusSurgeryCompleted, updated.Status())
	repo.AssertExpectations(t)
}

func TestUpdateOrderReadinessCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderReadinessCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewUpdateOrderReadinessCommandHandler(repo)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Get")
}

func TestUpdateOrderReadinessCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(nil, assert.AnError).Once()

	h := commands.NewUpdateOrderReadinessCommandHandler(repo)
	cmd, err := commands.NewUpdateOrderReadinessCommand(id, workflow.Readiness{})
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}
