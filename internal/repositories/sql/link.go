package sql

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/repositories"
)

type LinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewLinkRepo(db *gorm.DB, logger *logrus.Logger) *LinkRepo {
	return &LinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/link"),
	}
}

// Create вставляет новую запись. Атомарность insert-if-absent обеспечивает уникальный
// индекс по колонке code: из двух конкурентных вставок одного кода ровно одна получит
// ErrDuplicateKey.
func (r *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateKey
		}
		r.logger.WithError(err).Errorf("failed to create record %+v", *link)
		return repositories.ErrUnknown
	}
	return nil
}

func (r *LinkRepo) Exists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		r.logger.WithError(err).Errorf("failed to count records by code %s", code)
		return false, repositories.ErrUnknown
	}
	return count > 0, nil
}

// GetByCode находит запись по коду независимо от флага active.
func (r *LinkRepo) GetByCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get record by code %s", code)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

// GetActiveByCode находит запись по коду среди активных.
func (r *LinkRepo) GetActiveByCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).
		Where("code = ? AND active = ?", code, true).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get active record by code %s", code)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

// RecordClick атомарно регистрирует переход: условный UPDATE инкрементирует счетчик
// только если запись существует и активна. Неактивный и отсутствующий код
// неразличимы - оба дают ErrNotFound, счетчик не меняется.
func (r *LinkRepo) RecordClick(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&models.Link{}).
			Where("code = ? AND active = ?", code, true).
			Updates(map[string]any{
				"click_count":     gorm.Expr("click_count + 1"),
				"last_clicked_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("code = ?", code).First(&link).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to record click for code %s", code)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

// Deactivate атомарно выставляет active=false. Операция идемпотентна: повторная
// деактивация не является ошибкой и возвращает текущее состояние записи.
func (r *LinkRepo) Deactivate(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if findErr := tx.Where("code = ?", code).First(&link).Error; findErr != nil {
			return findErr
		}
		if !link.Active {
			return nil
		}
		if updErr := tx.Model(&link).Update("active", false).Error; updErr != nil {
			return updErr
		}
		link.Active = false
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to deactivate record by code %s", code)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

// List возвращает страницу записей, отсортированных по created_at по убыванию,
// и общее количество записей без учета страницы.
func (r *LinkRepo) List(ctx context.Context, page repositories.Page) ([]models.Link, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Count(&total).Error; err != nil {
		r.logger.WithError(err).Error("failed to count records")
		return nil, 0, repositories.ErrUnknown
	}

	var links []models.Link
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&links).Error
	if err != nil {
		r.logger.WithError(err).Error("failed to list records")
		return nil, 0, repositories.ErrUnknown
	}
	return links, total, nil
}
