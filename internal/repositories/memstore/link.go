package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/workpent/shortlink/internal/db"
	"github.com/workpent/shortlink/internal/db/memory"
	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

// LinkRepo представляет собой репозиторий для работы со ссылками в памяти.
// Составные операции (чтение-изменение-запись) выполняются под общим мьютексом
// репозитория, одиночные записи полагаются на атомарность memory.Set.
type LinkRepo struct {
	s   *db.MemoryStorage
	mu  sync.Mutex
	seq uint
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *LinkRepo: инициализированный репозиторий
func NewLinkRepo(store *db.MemoryStorage) *LinkRepo {
	return &LinkRepo{
		s: store,
	}
}

// Create создает новую запись. Ключом выступает код ссылки: при конкурентных вставках
// одного кода ровно одна завершится успехом, остальные получат ErrDuplicateKey.
func (r *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Работаем с копией: при конфликте структура вызывающей стороны
	// остается нетронутой, ID не выделяется.
	candidate := *link
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}
	candidate.ID = r.seq + 1

	if err := memory.Set[models.Link](ctx, candidate.Code, &candidate, r.s.MStorage); err != nil {
		return convertErrorType(err)
	}
	r.seq++
	*link = candidate
	return nil
}

// Exists проверяет наличие записи с заданным кодом независимо от флага active.
func (r *LinkRepo) Exists(_ context.Context, code string) (bool, error) {
	return r.s.IsExist(code), nil
}

// GetByCode получает запись по коду независимо от флага active.
func (r *LinkRepo) GetByCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, code, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by code %s: %w",
			code, convertErrorType(err),
		)
	}
	return link, nil
}

// GetActiveByCode получает запись по коду среди активных.
// Неактивная запись неотличима от отсутствующей.
func (r *LinkRepo) GetActiveByCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !link.Active {
		return nil, repositories.ErrNotFound
	}
	return link, nil
}

// RecordClick атомарно регистрирует переход: инкремент счетчика и отметка времени
// происходят под мьютексом и только для активной записи.
func (r *LinkRepo) RecordClick(ctx context.Context, code string) (*models.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, err := memory.Get[models.Link](ctx, code, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to record click for code %s: %w",
			code, convertErrorType(err),
		)
	}
	if !link.Active {
		return nil, repositories.ErrNotFound
	}

	now := time.Now().UTC()
	link.ClickCount++
	link.LastClickedAt = &now

	if setErr := memory.Set[models.Link](ctx, code, link, r.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return nil, fmt.Errorf(
			"failed to record click for code %s: %w",
			code, convertErrorType(setErr),
		)
	}
	return link, nil
}

// Deactivate атомарно выставляет active=false. Повторная деактивация не является
// ошибкой и возвращает текущее состояние записи.
func (r *LinkRepo) Deactivate(ctx context.Context, code string) (*models.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, err := memory.Get[models.Link](ctx, code, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to deactivate record by code %s: %w",
			code, convertErrorType(err),
		)
	}
	if !link.Active {
		return link, nil
	}

	link.Active = false
	if setErr := memory.Set[models.Link](ctx, code, link, r.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return nil, fmt.Errorf(
			"failed to deactivate record by code %s: %w",
			code, convertErrorType(setErr),
		)
	}
	return link, nil
}

// List возвращает страницу записей, отсортированных по created_at по убыванию,
// и общее количество записей без учета страницы.
func (r *LinkRepo) List(ctx context.Context, page repositories.Page) ([]models.Link, int64, error) {
	data, err := memory.GetAll[models.Link](ctx, r.s.MStorage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", convertErrorType(err))
	}

	slices.SortFunc(data, func(a, b models.Link) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		// При равных created_at позже созданная запись идет первой.
		return int(b.ID) - int(a.ID)
	})

	total := int64(len(data))

	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}

	// Семантика лимита как у LIMIT в gorm: ноль дает пустую страницу,
	// отрицательное значение снимает ограничение.
	end := len(data)
	if page.Limit >= 0 && offset+page.Limit < end {
		end = offset + page.Limit
	}
	return data[offset:end], total, nil
}
