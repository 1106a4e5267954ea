package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/services"
)

// LinkServiceMock мок реестра ссылок для тестов контроллеров.
type LinkServiceMock struct {
	mock.Mock
}

func (m *LinkServiceMock) Create(
	ctx context.Context,
	params services.CreateParams,
) (*models.Link, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) GetStats(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) List(ctx context.Context, offset, limit int) ([]models.Link, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Link), args.Get(1).(int64), args.Error(2) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) Deactivate(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

// RedirectServiceMock мок диспетчера переходов для тестов контроллеров.
type RedirectServiceMock struct {
	mock.Mock
}

func (m *RedirectServiceMock) Resolve(ctx context.Context, code string) (*models.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}
