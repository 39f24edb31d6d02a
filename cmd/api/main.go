package main

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

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/defaults"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/repository/postgresql"
	allowanceService "github.com/cmlabs-hris/hr-budget-backend-go/internal/service/allowance"
	serviceAuth "github.com/cmlabs-hris/hr-budget-backend-go/internal/service/auth"
	budgetItemService "github.com/cmlabs-hris/hr-budget-backend-go/internal/service/budgetitem"
	employeeService "github.com/cmlabs-hris/hr-budget-backend-go/internal/service/employee"
	ledgerService "github.com/cmlabs-hris/hr-budget-backend-go/internal/service/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/service/master"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("error applying migrations: %w", err)
		}
	}

	seed, err := defaults.Load(cfg.Budget.DefaultsFile)
	if err != nil {
		return fmt.Errorf("error loading defaults: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	specialAssistRepo := postgresql.NewSpecialAssistRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	budgetItemRepo := postgresql.NewBudgetItemRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	rateService := master.NewRateService(rateRepo, transactor, seed.MasterRates)
	holidayService := master.NewHolidayService(holidayRepo)
	ledgerSvc := ledgerService.NewLedgerService(specialAssistRepo, overtimeRepo, seed)
	budgetItemSvc := budgetItemService.NewBudgetItemService(budgetItemRepo, transactor, seed.BudgetItems)
	budgetService := allowanceService.NewBudgetService(
		employeeRepo,
		rateRepo,
		holidayRepo,
		ledgerSvc,
		allowanceService.TripSettings{
			Destination: cfg.Budget.TripDestination,
			BusFare:     cfg.Budget.TripBusFare,
		},
	)

	if created, err := authService.EnsureAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		slog.Warn("Admin account not seeded", "username", cfg.Seed.AdminUsername, "error", err)
	} else if created {
		slog.Info("Admin account created", "username", cfg.Seed.AdminUsername)
	}

	if cfg.Seed.DefaultRates {
		if _, err := rateService.SeedDefaults(ctx); err != nil {
			return fmt.Errorf("error seeding master rates: %w", err)
		}
		if _, err := budgetItemSvc.SeedDefaults(ctx); err != nil {
			return fmt.Errorf("error seeding budget items: %w", err)
		}
	}

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(rateService, holidayService)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	budgetItemHandler := appHTTP.NewBudgetItemHandler(budgetItemSvc)
	calculationHandler := appHTTP.NewCalculationHandler(budgetService)
	dashboardHandler := appHTTP.NewDashboardHandler(budgetService)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		db,
		authHandler,
		employeeHandler,
		masterHandler,
		ledgerHandler,
		budgetItemHandler,
		calculationHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
