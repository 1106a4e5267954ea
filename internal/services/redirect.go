package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

// RedirectService диспетчер переходов: находит активную ссылку и регистрирует переход
// одной атомарной операцией хранилища.
type RedirectService struct {
	linkRepo LinkRepository
}

func NewRedirectService(linkRepo LinkRepository) *RedirectService {
	return &RedirectService{linkRepo: linkRepo}
}

// Resolve регистрирует переход и возвращает запись с целевой ссылкой.
// Неактивный и отсутствующий код дают одинаковый ErrRecordNotFound:
// перебором кодов нельзя выяснить, существовала ли деактивированная ссылка.
func (s *RedirectService) Resolve(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.linkRepo.RecordClick(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code `%s` not found", code)
		}
		return nil, ErrUnknown
	}
	return link, nil
}
