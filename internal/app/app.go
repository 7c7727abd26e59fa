// Package app wires configuration, the selected counter store, usecases and
// the HTTP server, and owns their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/likeboard/internal/handler/http"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/cache"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/config"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/database"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/logger"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/repository/jsonfile"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/store"
	"github.com/mikiasgoitom/likeboard/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// App is a fully wired likeboard instance.
type App struct {
	cfg         usecasecontract.IConfigProvider
	logger      *logger.ZapLogger
	registry    *prometheus.Registry
	likeUsecase *usecase.LikeUsecase
	engine      *gin.Engine
	closers     []func() error
}

// New connects the configured store, initializes the counter and builds the router.
func New(ctx context.Context, cfg usecasecontract.IConfigProvider, appLogger *logger.ZapLogger) (*App, error) {
	a := &App{
		cfg:      cfg,
		logger:   appLogger,
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	likeRepo, err := a.openRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := likeRepo.EnsureInitialized(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize like counter: %w", err)
	}

	a.likeUsecase = usecase.NewLikeUsecase(likeRepo, appLogger, metrics.NewLikeMetrics(a.registry))

	gin.SetMode(cfg.GetGinMode())
	a.engine = gin.New()
	handlerHttp.NewRouter(a.likeUsecase, handlerHttp.RouterOptions{
		Logger:         appLogger.Zap(),
		Registry:       a.registry,
		AllowedOrigins: cfg.GetCORSAllowedOrigins(),
		StaticDir:      cfg.GetStaticDir(),
	}).SetupRoutes(a.engine)

	return a, nil
}

func (a *App) openRepository(ctx context.Context) (contract.ILikeCounterRepository, error) {
	switch a.cfg.GetStoreBackend() {
	case config.StoreBackendRedis:
		rdb, err := cache.NewRedisFromURL(ctx, a.cfg.GetRedisURL())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { return cache.Close(rdb) })
		a.logger.Infof("using redis like counter at key %s", a.cfg.GetRedisKey())
		return store.NewLikeCounterStore(rdb, a.cfg.GetRedisKey()), nil
	case config.StoreBackendMongo:
		client, err := database.NewMongoDBClient(a.cfg.GetMongoURI())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		a.logger.Infof("using mongodb like counter in %s.%s", a.cfg.GetMongoDBName(), a.cfg.GetMongoCollection())
		db := client.Client.Database(a.cfg.GetMongoDBName())
		return mongodb.NewLikeCounterRepository(db, a.cfg.GetMongoCollection()), nil
	case config.StoreBackendFile, "":
		a.logger.Infof("using file like counter at %s", a.cfg.GetLikesFilePath())
		return jsonfile.NewLikeCounterRepository(a.cfg.GetLikesFilePath()), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", a.cfg.GetStoreBackend())
	}
}

// Handler returns the HTTP handler.
func (a *App) Handler() http.Handler {
	return a.engine
}

// LikeUsecase exposes the usecase for non-HTTP entrypoints.
func (a *App) LikeUsecase() usecasecontract.ILikeUseCase {
	return a.likeUsecase
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.GetPort(),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	eg, groupCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a.logger.Infof("server running on port %s", a.cfg.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-groupCtx.Done()
		a.logger.Infof("server stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GetShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	a.logger.Infof("server stopped")
	return nil
}

// Close releases store connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
