package queries_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/domain/model/discount"
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

func mustUser(t *testing.T, name string) *user.User {
	t.Helper()
	u, err := user.NewUser(name)
	require.NoError(t, err)
	return u
}

func mustStandard(t *testing.T) pizza.Pizza {
	t.Helper()
	pz, err := pizza.NewStandard("Pepperoni", pizza.Medium, true, 1500)
	require.NoError(t, err)
	return pz
}

func mustPlace(t *testing.T, u *user.User, pz pizza.Pizza, option order.DeliveryOption, location string) *order.Order {
	t.Helper()
	o, err := u.PlaceOrder(pz, option, location, discount.Zero())
	require.NoError(t, err)
	return o
}
