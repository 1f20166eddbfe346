package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/assets/drivers/minio"
	"github.com/BishowDevkota/trekking-company/internal/trek/assets/drivers/s3"
	httpapi "github.com/BishowDevkota/trekking-company/internal/trek/http"
	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/search/drivers/elastic"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/internal/trek/store/drivers/sqlite"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// startupTimeout bounds connecting to the asset host and search cluster.
const startupTimeout = 30 * time.Second

// Application encapsulates the trekking service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	assets assets.Host
	index  search.Index // Optional: nil without SEARCH_URLS

	// Services
	tokenService   *service.TokenService
	sessionService *service.SessionService
	regionService  *service.RegionService
	trekService    *service.TrekService
	imageService   *service.ImageService
	reindexService *service.ReindexService // Optional: only with a search index

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "trekd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Secrets are checked before anything is opened so a misconfigured
	// process exits without side effects.
	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  []byte(cfg.AccessSecret),
		RefreshSecret: []byte(cfg.RefreshSecret),
		Issuer:        cfg.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := app.initAssets(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initSearch(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.reindexService != nil {
		app.reindexService.Start()
	}

	app.logger.Info("trek service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down trek service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.reindexService != nil {
		app.reindexService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("trek service stopped")
	return nil
}

// initDatabase opens the store and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initAssets connects to the object store selected by ASSET_DRIVER
func (app *Application) initAssets(ctx context.Context) error {
	c := app.cfg.Assets
	cfg := assets.Config{
		Endpoint:  c.Endpoint,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Bucket:    c.Bucket,
		Region:    c.Region,
		UseSSL:    c.UseSSL,
		PublicURL: c.PublicURL,
	}

	var (
		host assets.Host
		err  error
	)
	switch c.Driver {
	case "minio":
		host, err = minio.New(ctx, cfg)
	case "s3":
		host, err = s3.New(ctx, cfg)
	default:
		return fmt.Errorf("unknown asset driver %q", c.Driver)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize asset host: %w", err)
	}

	app.assets = host
	app.logger.Info("asset host ready", "driver", c.Driver, "bucket", c.Bucket)
	return nil
}

// initSearch connects to Elasticsearch when SEARCH_URLS is set. Without it
// search runs against the database.
func (app *Application) initSearch(ctx context.Context) error {
	c := app.cfg.Search
	if len(c.URLs) == 0 {
		app.logger.Info("search index disabled, using database search")
		return nil
	}

	index, err := elastic.New(ctx, elastic.Config{
		Addresses: c.URLs,
		Username:  c.Username,
		Password:  c.Password,
		Index:     c.Index,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize search index: %w", err)
	}

	app.index = index
	app.logger.Info("search index ready", "index", c.Index)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:        app.db,
		Tokens:       app.tokenService,
		StoreTimeout: app.cfg.StoreTimeout,
		MaxAdmins:    app.cfg.MaxAdmins,
	}
	app.regionService = &service.RegionService{
		Store:  app.db,
		Assets: app.assets,
	}
	app.trekService = &service.TrekService{
		Store:  app.db,
		Assets: app.assets,
		Index:  app.index,
	}
	app.imageService = &service.ImageService{Assets: app.assets}

	if app.index != nil {
		app.reindexService = service.NewReindexService(
			app.db,
			app.index,
			app.logger,
			app.cfg.Search.ReindexInterval,
		)
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.assets,
		app.index,
		app.cfg.RequestTimeout,
		app.logger,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.SessionService = app.sessionService
	router.RegionService = app.regionService
	router.TrekService = app.trekService
	router.ImageService = app.imageService
	router.SecureCookies = app.cfg.Production()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
