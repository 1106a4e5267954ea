package services

import (
	"context"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

// LinkRepository описывает хранилище ссылок. Все операции атомарны относительно
// конкурентных вызовов.
type LinkRepository interface {
	// Create вставляет запись. Если код уже существует - repositories.ErrDuplicateKey.
	Create(ctx context.Context, link *models.Link) error
	// Exists проверяет наличие записи с заданным кодом.
	Exists(ctx context.Context, code string) (bool, error)
	// GetByCode находит запись по коду независимо от флага active.
	GetByCode(ctx context.Context, code string) (*models.Link, error)
	// GetActiveByCode находит запись по коду среди активных.
	GetActiveByCode(ctx context.Context, code string) (*models.Link, error)
	// RecordClick атомарно инкрементирует счетчик переходов активной записи.
	// Для неактивной или отсутствующей записи - repositories.ErrNotFound.
	RecordClick(ctx context.Context, code string) (*models.Link, error)
	// Deactivate выставляет active=false. Идемпотентна.
	Deactivate(ctx context.Context, code string) (*models.Link, error)
	// List возвращает страницу записей (created_at по убыванию) и общее количество.
	List(ctx context.Context, page repositories.Page) ([]models.Link, int64, error)
}

// CodeGenerator генерирует кандидатов коротких кодов.
type CodeGenerator interface {
	Generate() string
}
