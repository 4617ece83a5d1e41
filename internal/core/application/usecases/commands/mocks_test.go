package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetOrCreate(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) All(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockRouteEstimator struct{ mock.Mock }

func (m *MockRouteEstimator) Estimate(ctx context.Context, location string) (int, error) {
	args := m.Called(ctx, location)
	return args.Int(0), args.Error(1)
}

type MockProgressionScheduler struct{ mock.Mock }

func (m *MockProgressionScheduler) Start(o *order.Order) {
	m.Called(o)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(orderID kernel.UUID, newStatus order.Status) {
	m.Called(orderID, newStatus)
}

type MockFeedbackLog struct{ mock.Mock }

func (m *MockFeedbackLog) Record(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockFeedbackLog) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustUser(t *testing.T, name string) *user.User {
	t.Helper()
	u, err := user.NewUser(name)
	require.NoError(t, err)
	return u
}

func mustStandard(t *testing.T) pizza.Pizza {
	t.Helper()
	pz, err := pizza.NewStandard("Pepperoni", pizza.Small, true, 1500)
	require.NoError(t, err)
	return pz
}

func mustCustomized(t *testing.T) pizza.Pizza {
	t.Helper()
	pz, err := pizza.NewCustomized("My Special", pizza.Small, true,
		"Thin Crust", "Pesto Sauce", "Mushrooms")
	require.NoError(t, err)
	return pz
}
