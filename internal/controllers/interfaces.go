package controllers

import (
	"context"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/services"
)

// LinkStore операции реестра ссылок.
type LinkStore interface {
	Create(ctx context.Context, params services.CreateParams) (*models.Link, error)
	GetStats(ctx context.Context, code string) (*models.Link, error)
	List(ctx context.Context, offset, limit int) ([]models.Link, int64, error)
	Deactivate(ctx context.Context, code string) (*models.Link, error)
}

// RedirectStore операции диспетчера переходов.
type RedirectStore interface {
	Resolve(ctx context.Context, code string) (*models.Link, error)
}
