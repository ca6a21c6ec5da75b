package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/frahmantamala/employee-portal/internal/attendance"
	attendancePostgres "github.com/frahmantamala/employee-portal/internal/attendance/postgres"
	"github.com/frahmantamala/employee-portal/internal/auth"
	authPostgres "github.com/frahmantamala/employee-portal/internal/auth/postgres"
	"github.com/frahmantamala/employee-portal/internal/core/events"
	"github.com/frahmantamala/employee-portal/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/employee-portal/internal/dashboard/postgres"
	"github.com/frahmantamala/employee-portal/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-portal/internal/employee/postgres"
	"github.com/frahmantamala/employee-portal/internal/salary"
	salaryPostgres "github.com/frahmantamala/employee-portal/internal/salary/postgres"
	"github.com/frahmantamala/employee-portal/internal/transport/rest"
	"github.com/frahmantamala/employee-portal/internal/transport/swagger"
	"github.com/frahmantamala/employee-portal/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
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
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler       *auth.Handler
	EmployeeHandler   *employee.Handler
	AttendanceHandler *attendance.Handler
	SalaryHandler     *salary.Handler
	DashboardHandler  *dashboard.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
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
		if err := deps.DB.Close(); err != nil {
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

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		deps.AuthHandler,
		deps.EmployeeHandler,
		deps.AttendanceHandler,
		deps.SalaryHandler,
		deps.DashboardHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		appLogger.Warn("openapi spec validation failed", "error", err)
	}

	eventBus := events.NewEventBus(appLogger)
	registerEventHandlers(eventBus, appLogger)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.SecretKey, config.Security.SessionDuration)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, eventBus, appLogger)
	employeeService := employee.NewService(employeePostgres.NewRepository(gormDB), eventBus, appLogger)
	attendanceService := attendance.NewService(attendancePostgres.NewRepository(gormDB), eventBus, appLogger)
	salaryService := salary.NewService(salaryPostgres.NewRepository(gormDB), appLogger)
	dashboardService := dashboard.NewService(dashboardPostgres.NewRepository(gormDB), appLogger)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		AuthHandler:       auth.NewHandler(authService),
		EmployeeHandler:   employee.NewHandler(employeeService),
		AttendanceHandler: attendance.NewHandler(attendanceService),
		SalaryHandler:     salary.NewHandler(salaryService),
		DashboardHandler:  dashboard.NewHandler(dashboardService),
	}, nil
}

// registerEventHandlers attaches the audit log subscribers. Every domain
// event lands in the structured log with its payload.
func registerEventHandlers(bus *events.EventBus, lg *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		lg.Info("audit event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		events.EventTypeUserRegistered,
		events.EventTypeAttendanceMarked,
		events.EventTypeEmployeeCreated,
		events.EventTypeEmployeeUpdated,
		events.EventTypeEmployeeDeleted,
	} {
		bus.Subscribe(eventType, audit)
	}
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
