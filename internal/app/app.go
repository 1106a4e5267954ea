package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/workpent/shortlink/internal/config"
	"github.com/workpent/shortlink/internal/controllers"
	"github.com/workpent/shortlink/internal/db"
	"github.com/workpent/shortlink/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	dbServices, servicesErr := initServices(conf)

	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Logger:     conf.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		LinkService:     a.dbServices.LinkService,
		RedirectService: a.dbServices.RedirectService,
		BaseURL:         a.config.BaseURL,
		Logger:          a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}

	return serverErr
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(appConf config.Config) (*services.Services, error) {
	storageType := whatIsDBStorageType(&appConf)

	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  &appConf.DatabaseDSN,
		SQLiteDBPath: &appConf.SQLitePath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(storageType), appConf.Logger)
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	// Явно заданный DSN перевешивает тип хранилища из конфига.
	if appConf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	switch appConf.DBType {
	case config.DBTypeSQLite:
		return db.StorageTypeSQLite
	case config.DBTypePostgres:
		return db.StorageTypePostgres
	default:
		return db.StorageTypeInMemory
	}
}

func whatIsServiceType(storageType db.StorageType) services.ServiceType {
	switch storageType {
	case db.StorageTypeSQLite:
		return services.ServiceTypeSQLite
	case db.StorageTypePostgres:
		return services.ServiceTypePostgres
	default:
		return services.ServiceTypeInMemory
	}
}
