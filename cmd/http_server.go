package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/recognition/internal"
	"github.com/frahmantamala/recognition/internal/auth"
	authPostgres "github.com/frahmantamala/recognition/internal/auth/postgres"
	"github.com/frahmantamala/recognition/internal/core/events"
	"github.com/frahmantamala/recognition/internal/metrics"
	metricsPostgres "github.com/frahmantamala/recognition/internal/metrics/postgres"
	"github.com/frahmantamala/recognition/internal/recognition"
	recognitionPostgres "github.com/frahmantamala/recognition/internal/recognition/postgres"
	"github.com/frahmantamala/recognition/internal/transport/rest"
	"github.com/frahmantamala/recognition/internal/user"
	userPostgres "github.com/frahmantamala/recognition/internal/user/postgres"
	"github.com/frahmantamala/recognition/internal/value"
	valuePostgres "github.com/frahmantamala/recognition/internal/value/postgres"
	"github.com/frahmantamala/recognition/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr, "driver", deps.Config.Database.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Setup(config.Observability.Logging.Level, config.Observability.Logging.Format)

	gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}

	if err := ensureSchema(sqlDB, config.Database.Driver); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		GormDB: gormDB,
		SQLDB:  sqlDB,
		Router: chi.NewRouter(),
	}, nil
}

func setupRoutes(deps *Dependencies) error {
	lg := deps.Logger

	eventBus := events.NewEventBus(lg)
	subscribeActivityLog(eventBus, lg)

	userRepo := userPostgres.NewUserRepository(deps.GormDB)
	userService := user.NewService(userRepo, lg)
	userHandler := user.NewHandler(userService)

	valueRepo := valuePostgres.NewValueRepository(deps.GormDB)
	valueService := value.NewService(valueRepo, lg)
	valueHandler := value.NewHandler(valueService)
	if err := valueService.EnsureSeeded(); err != nil {
		return fmt.Errorf("failed to seed values: %w", err)
	}

	authRepo := authPostgres.NewRepository(deps.GormDB)
	authService := auth.NewService(
		authRepo,
		authRepo,
		userRepo,
		deps.Config.Security.EffectiveBCryptCost(),
		deps.Config.Security.EffectiveSessionTTL(),
		lg,
	)
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		MaxAge: deps.Config.Security.EffectiveSessionTTL(),
		Secure: deps.Config.Security.SecureCookies,
	})

	recognitionRepo := recognitionPostgres.NewRecognitionRepository(deps.GormDB)
	recognitionService := recognition.NewService(recognitionRepo, userRepo, valueService, eventBus, lg)
	recognitionHandler := recognition.NewHandler(recognitionService)

	metricsDB := sqlx.NewDb(deps.SQLDB, sqlxDriverName(deps.Config.Database.Driver))
	metricsRepo := metricsPostgres.NewMetricsRepository(metricsDB)
	metricsService := metrics.NewService(metricsRepo, lg)
	metricsHandler := metrics.NewHandler(metricsService)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.SQLDB,
		deps.Config.Database.Driver,
		deps.Config.Server.AllowedOrigins,
		authHandler,
		userHandler,
		valueHandler,
		recognitionHandler,
		metricsHandler,
		lg,
	)
	return nil
}

// subscribeActivityLog wires the in-process events onto the activity log.
func subscribeActivityLog(bus *events.EventBus, lg *slog.Logger) {
	logEvent := func(ctx context.Context, event events.Event) error {
		lg.Info("activity",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	}
	bus.Subscribe(events.RecognitionCreated, logEvent)
	bus.Subscribe(events.InteractionAdded, logEvent)
}

// initDB opens the configured database through gorm. TranslateError is on so
// unique violations surface as gorm.ErrDuplicatedKey on both drivers.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case internal.DriverPostgres:
		dialector = gormPostgres.New(gormPostgres.Config{DSN: cfg.Source})
	default:
		dialector = gormSqlite.Open(cfg.Source)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, nil
}

// sqlxDriverName maps the configured driver to the registered database/sql
// driver, which sqlx uses to pick placeholder binding.
func sqlxDriverName(driver string) string {
	if driver == internal.DriverPostgres {
		return "pgx"
	}
	return "sqlite3"
}
