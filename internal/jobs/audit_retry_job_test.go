package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"medlogistics/internal/adapters/out/memqueue"
	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

func (m *MockHistoryRepository) GetAll(ctx context.Context) ([]*audit.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

func newEntry(t *testing.T) *audit.Entry {
	t.Helper()

	entry, err := audit.NewEntry(kernel.NewUUID(),
		workflow.StatusCreated, workflow.StatusPendingApproval,
		"user-1", workflow.RoleCommercial, "", audit.Metadata{})
	require.NoError(t, err)
	return entry
}

func TestAuditRetryJob_RunOnce(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("re-appends buffered entries", func(t *testing.T) {
		queue := memqueue.NewAuditQueue()
		queue.Enqueue(newEntry(t))
		queue.Enqueue(newEntry(t))

		history := new(MockHistoryRepository)
		history.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Twice()

		job := jobs.NewAuditRetryJob(queue, history, logger)
		job.RunOnce(t.Context())

		assert.Zero(t, queue.Len())
		history.AssertExpectations(t)
	})

	t.Run("re-enqueues entries that fail again", func(t *testing.T) {
		queue := memqueue.NewAuditQueue()
		queue.Enqueue(newEntry(t))

		history := new(MockHistoryRepository)
		history.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).
			Return(assert.AnError).Once()

		job := jobs.NewAuditRetryJob(queue, history, logger)
		job.RunOnce(t.Context())

		assert.Equal(t, 1, queue.Len())
		history.AssertExpectations(t)
	})

	t.Run("empty queue is a no-op", func(t *testing.T) {
		queue := memqueue.NewAuditQueue()
		history := new(MockHistoryRepository)

		job := jobs.NewAuditRetryJob(queue, history, logger)
		job.RunOnce(t.Context())

		history.AssertNotCalled(t, "Append")
	})
}
