package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
	"github.com/workpent/shortlink/internal/shortcode"
)

// createAttempts ограничение цикла генерации кода. Вероятность коллизии при 62^7
// вариантов мала, но цикл обязан быть конечным на случай вырожденного состояния
// хранилища.
const createAttempts = 10

// CreateParams параметры создания короткой ссылки.
type CreateParams struct {
	TargetURL  string
	CustomCode string
	Note       *string
}

// LinkService оркестратор жизненного цикла ссылок: выдача кодов, статистика,
// постраничный список, деактивация.
type LinkService struct {
	linkRepo LinkRepository
	gen      CodeGenerator
}

func NewLinkService(linkRepo LinkRepository, gen CodeGenerator) *LinkService {
	return &LinkService{linkRepo: linkRepo, gen: gen}
}

// Create создает запись ссылки.
//
// Если задан пользовательский код - одна попытка вставки после проверки формата,
// занятый код дает ErrCodeTaken. Иначе код подбирается генератором: сгенерировать,
// попытаться вставить, при конфликте повторить с новым кандидатом. Хранилище ничего
// не знает о "зарезервированных" кодах - уникальность обеспечивает только атомарная
// вставка.
func (s *LinkService) Create(ctx context.Context, params CreateParams) (*models.Link, error) {
	if params.CustomCode != "" {
		return s.createCustom(ctx, params)
	}
	return s.createGenerated(ctx, params)
}

func (s *LinkService) createCustom(ctx context.Context, params CreateParams) (*models.Link, error) {
	if err := shortcode.ValidateCustom(params.CustomCode); err != nil {
		return nil, errors.Wrapf(ErrInvalidCode, "%s", err.Error())
	}

	link := models.Link{
		Code:      params.CustomCode,
		TargetURL: params.TargetURL,
		Active:    true,
		Note:      params.Note,
	}
	if err := s.linkRepo.Create(ctx, &link); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrCodeTaken, "code `%s`", params.CustomCode)
		}
		return nil, ErrUnknown
	}
	return &link, nil
}

func (s *LinkService) createGenerated(ctx context.Context, params CreateParams) (*models.Link, error) {
	for range createAttempts {
		link := models.Link{
			Code:      s.gen.Generate(),
			TargetURL: params.TargetURL,
			Active:    true,
			Note:      params.Note,
		}
		createErr := s.linkRepo.Create(ctx, &link)
		if createErr == nil {
			return &link, nil
		}
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			continue
		}
		return nil, ErrUnknown
	}
	return nil, errors.Wrapf(ErrCodeExhausted, "after %d attempts", createAttempts)
}

// GetStats возвращает запись по коду независимо от флага active: деактивированная
// ссылка скрыта от переходов, но остается видимой для аудита.
func (s *LinkService) GetStats(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.linkRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code `%s` not found", code)
		}
		return nil, ErrUnknown
	}
	return link, nil
}

// List возвращает страницу записей (created_at по убыванию) и общее количество
// записей без учета страницы.
func (s *LinkService) List(ctx context.Context, offset, limit int) ([]models.Link, int64, error) {
	links, total, err := s.linkRepo.List(ctx, repositories.Page{Offset: offset, Limit: limit})
	if err != nil {
		return nil, 0, ErrUnknown
	}
	return links, total, nil
}

// Deactivate навсегда выводит ссылку из-под переходов. Обратного перехода нет,
// повторная деактивация не является ошибкой.
func (s *LinkService) Deactivate(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.linkRepo.Deactivate(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code `%s` not found", code)
		}
		return nil, ErrUnknown
	}
	return link, nil
}
