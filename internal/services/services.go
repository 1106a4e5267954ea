package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/workpent/shortlink/internal/db"
	"github.com/workpent/shortlink/internal/repositories/memstore"
	"github.com/workpent/shortlink/internal/repositories/sql"
	"github.com/workpent/shortlink/internal/shortcode"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	LinkService     *LinkService
	RedirectService *RedirectService
}

func Factory(conn any, sType ServiceType, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQLite, ServiceTypePostgres:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger) *Services {
	linkRepo := sql.NewLinkRepo(conn, logger)
	return &Services{
		LinkService:     NewLinkService(linkRepo, shortcode.NewGenerator()),
		RedirectService: NewRedirectService(linkRepo),
	}
}

func getInMemoryServices(store *db.MemoryStorage) *Services {
	linkRepo := memstore.NewLinkRepo(store)
	return &Services{
		LinkService:     NewLinkService(linkRepo, shortcode.NewGenerator()),
		RedirectService: NewRedirectService(linkRepo),
	}
}
