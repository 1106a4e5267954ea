package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

// LinkRepoMock мок репозитория ссылок для тестов сервисного слоя.
type LinkRepoMock struct {
	mock.Mock
}

func (m *LinkRepoMock) Create(ctx context.Context, link *models.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0) //nolint:wrapcheck
}

func (m *LinkRepoMock) Exists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck
}

func (m *LinkRepoMock) GetByCode(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) GetActiveByCode(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) RecordClick(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) Deactivate(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) List(
	ctx context.Context,
	page repositories.Page,
) ([]models.Link, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Link), args.Get(1).(int64), args.Error(2) //nolint:wrapcheck,errcheck
}

// GeneratorMock мок генератора кодов.
type GeneratorMock struct {
	mock.Mock
}

func (m *GeneratorMock) Generate() string {
	args := m.Called()
	return args.String(0)
}
