package commands_test

import (
	"context"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/mock"
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

type MockAuditQueue struct{ mock.Mock }

func (m *MockAuditQueue) Enqueue(entry *audit.Entry) {
	m.Called(entry)
}

func (m *MockAuditQueue) Drain() []*audit.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*audit.Entry)
}

func (m *MockAuditQueue) Len() int {
	args := m.Called()
	return args.Int(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, o *order.Order, entry *audit.Entry) error {
	args := m.Called(ctx, o, entry)
	return args.Error(0)
}
