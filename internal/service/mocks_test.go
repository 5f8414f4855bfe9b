package service

import (
	"context"

	"github.com/nvales/watchdex/internal/domain"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockWatchRepository mocks the WatchRepository interface
type MockWatchRepository struct {
	mock.Mock
}

func (m *MockWatchRepository) Create(ctx context.Context, watch *domain.Watch) error {
	args := m.Called(ctx, watch)
	return args.Error(0)
}

func (m *MockWatchRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Watch), args.Error(1)
}

func (m *MockWatchRepository) List(ctx context.Context, filter domain.WatchFilter) ([]domain.Watch, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Watch), args.Get(1).(int64), args.Error(2)
}

func (m *MockWatchRepository) Update(ctx context.Context, watch *domain.Watch) error {
	args := m.Called(ctx, watch)
	return args.Error(0)
}

func (m *MockWatchRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Watch), args.Error(1)
}

func (m *MockWatchRepository) PushReview(ctx context.Context, id primitive.ObjectID, review domain.Review) (*domain.Watch, error) {
	args := m.Called(ctx, id, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Watch), args.Error(1)
}

// MockWatchCache mocks the WatchCache interface
type MockWatchCache struct {
	mock.Mock
}

func (m *MockWatchCache) Get(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Watch), args.Error(1)
}

func (m *MockWatchCache) Set(ctx context.Context, watch *domain.Watch) error {
	args := m.Called(ctx, watch)
	return args.Error(0)
}

func (m *MockWatchCache) Invalidate(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
