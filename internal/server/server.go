// Package server boots the application: configuration, Mongo, cache,
// storage, queue workers, the route table and the HTTP listener.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/routes"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/pkg/billing"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/database"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/queue"
	"github.com/shashiranjanraj/bistro/pkg/reqid"
	"github.com/shashiranjanraj/bistro/pkg/router"
	"github.com/shashiranjanraj/bistro/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots every subsystem and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	middleware.TrustProxyHeader = config.TrustProxy()

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelBoot()

	db, err := database.Connect(bootCtx)
	if err != nil {
		return err
	}
	defer db.Disconnect()

	var mongoLogs *logger.MongoHandler
	if config.IsProduction() {
		mongoLogs = logger.NewMongoHandler(db.Collection(database.ColLogs))
		logger.UseHandler(logger.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, nil),
			mongoLogs,
		))
		defer mongoLogs.Close()
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}
	storage.Connect()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	services.RegisterJobs()
	queue.StartWorkers(workerCtx, 2)

	r := NewRouter(repositories.New(db), billing.NewStripeClient())

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// NewRouter builds the full middleware stack and route table. Split out of
// Start so tests and the route:list command can build it without listening.
func NewRouter(repos *repositories.Repositories, intents billing.IntentCreator) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, repos, intents)
	return r
}
