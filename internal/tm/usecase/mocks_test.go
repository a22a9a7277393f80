package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"localization-srv/internal/tm/repository"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Name() string { return "mock" }

func (m *mockStore) Search(ctx context.Context, opt repository.SearchOptions) ([]repository.RawMatch, error) {
	args := m.Called(ctx, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RawMatch), args.Error(1)
}

func (m *mockStore) Index(ctx context.Context, opt repository.IndexOptions) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetMatches(ctx context.Context, key string) ([]repository.RawMatch, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RawMatch), args.Error(1)
}

func (m *mockCache) SaveMatches(ctx context.Context, opt repository.SaveMatchesOptions) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
