package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/intecsa-dev/productos-backend/internal/cfg"
	v1Http "github.com/intecsa-dev/productos-backend/internal/delivery/v1/http"
	"github.com/intecsa-dev/productos-backend/internal/repository/pgdb"
	"github.com/intecsa-dev/productos-backend/internal/repository/pgdb/converter"
	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/closer"
	"github.com/intecsa-dev/productos-backend/pkg/e"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
	"github.com/intecsa-dev/productos-backend/pkg/postgres"
	"github.com/jimlawless/whereami"
)

// App связывает конфигурацию, базу данных и HTTP-сервер приложения.
type App struct {
	cfg     *cfg.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(config *cfg.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, config)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	prConv := converter.NewProductoConverterImpl()
	productoRepo := pgdb.NewProductoRepo(db.Pool, prConv)
	productoUC := usecase.NewProductoUC(productoRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productoUC, db)

	httpSrv := v1Http.NewServer(r, config.Http)

	// Закрытие в порядке LIFO: сначала HTTP-сервер, затем пул БД.
	c := closer.NewCloser(0)
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	c.Add(httpSrv.Stop)

	return &App{
		cfg:     config,
		logger:  log,
		httpSrv: httpSrv,
		closer:  c,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, config *cfg.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(config.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
