package commands_test

import (
	"errors"
	"testing"

	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "Ada Roman", "knee replacement")

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, aggregate.ID().IsEqual(id))
	assert.Equal(t, workflow.StatusCreated, aggregate.Status())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Add")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Ada Roman", "knee replacement")

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
}
