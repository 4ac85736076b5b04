package queries_test

import (
	"context"
	"testing"
	"time"

	"medlogistics/internal/core/application/usecases/queries"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, next, expected workflow.Status) error {
	args := m.Called(ctx, id, next, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateReadiness(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status workflow.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newValidator(t *testing.T) *workflow.Validator {
	t.Helper()

	graph, err := workflow.DefaultGraph(true)
	require.NoError(t, err)
	return workflow.NewValidator(graph, workflow.DefaultConditions())
}

func TestGetValidTransitionsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("lists edges for the role with precondition standing", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, "Ada Roman", "knee replacement",
			workflow.StatusPendingApproval, workflow.Readiness{}, time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once()

		h := queries.NewGetValidTransitionsQueryHandler(repo, newValidator(t))
		query, err := queries.NewGetValidTransitionsQuery(id, workflow.RoleOperationsManager)
		require.NoError(t, err)

		responses, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 3)

		byTarget := make(map[workflow.Status]queries.GetValidTransitionsQueryResponse, len(responses))
		for _, resp := range responses {
			byTarget[resp.ToStatus] = resp
		}

		approve, ok := byTarget[workflow.StatusApproved]
		require.True(t, ok)
		assert.False(t, approve.Available)
		assert.Contains(t, approve.RequiredActions, "Verify resource availability")
		assert.Equal(t, 60, approve.EstimatedDurationMinutes)

		reject, ok := byTarget[workflow.StatusRejected]
		require.True(t, ok)
		assert.True(t, reject.Available)
		assert.Empty(t, reject.RequiredActions)

		cancel, ok := byTarget[workflow.StatusCancelled]
		require.True(t, ok)
		assert.True(t, cancel.Available)
	})

	t.Run("readiness unlocks guarded edges", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, "Ada Roman", "knee replacement",
			workflow.StatusPendingApproval, workflow.Readiness{ResourcesVerified: true}, time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once()

		h := queries.NewGetValidTransitionsQueryHandler(repo, newValidator(t))
		query, err := queries.NewGetValidTransitionsQuery(id, workflow.RoleOperationsManager)
		require.NoError(t, err)

		responses, err := h.Handle(ctx, query)

		require.NoError(t, err)
		for _, resp := range responses {
			assert.True(t, resp.Available, "edge to %s", resp.ToStatus)
		}
	})

	t.Run("role without edges gets an empty list", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, "Ada Roman", "knee replacement",
			workflow.StatusPendingApproval, workflow.Readiness{}, time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once()

		h := queries.NewGetValidTransitionsQueryHandler(repo, newValidator(t))
		query, err := queries.NewGetValidTransitionsQuery(id, workflow.RoleDoctor)
		require.NoError(t, err)

		responses, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("billed is terminal for every role", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, "Ada Roman", "knee replacement",
			workflow.StatusBilled, workflow.Readiness{}, time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once()

		h := queries.NewGetValidTransitionsQueryHandler(repo, newValidator(t))
		query, err := queries.NewGetValidTransitionsQuery(id, workflow.RoleAdministrator)
		require.NoError(t, err)

		responses, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		id := kernel.NewUUID()

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).Return(nil, assert.AnError).Once()

		h := queries.NewGetValidTransitionsQueryHandler(repo, newValidator(t))
		query, err := queries.NewGetValidTransitionsQuery(id, workflow.RoleOperationsManager)
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		require.Error(t, err)
	})

	t.Run("unconstructed query fails validation", func(t *testing.T) {
		h := queries.NewGetValidTransitionsQueryHandler(new(MockOrderRepository), newValidator(t))

		_, err := h.Handle(ctx, queries.GetValidTransitionsQuery{})

		require.ErrorIs(t, err, queries.ErrGetValidTransitionsQueryIsNotConstructed)
	})
}
