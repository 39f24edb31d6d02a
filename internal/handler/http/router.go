package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	db Pinger,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	ledgerHandler LedgerHandler,
	budgetItemHandler BudgetItemHandler,
	calculationHandler CalculationHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-budget"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slog.Error("Health check failed", "error", err)
			response.ServiceUnavailable(w, "Database unreachable")
			return
		}
		response.Success(w, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Post("/bulk", employeeHandler.BulkSave)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/master-rates", func(r chi.Router) {
				r.Get("/", masterHandler.ListRates)
				r.Get("/{level}", masterHandler.GetRate)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.SaveRate)
					r.Post("/bulk", masterHandler.BulkSaveRates)
					r.Put("/{level}", masterHandler.SaveRate)
					r.Delete("/{level}", masterHandler.DeleteRate)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", masterHandler.ListHolidayYears)
				r.Route("/{year}", func(r chi.Router) {
					r.Get("/", masterHandler.ListHolidays)
					r.Get("/stats", dashboardHandler.GetHolidayStats)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", masterHandler.CreateHoliday)
						r.Put("/{id}", masterHandler.UpdateHoliday)
						r.Delete("/{id}", masterHandler.DeleteHoliday)
					})
				})
			})

			r.Route("/special-assist/{year}", func(r chi.Router) {
				r.Get("/", ledgerHandler.GetSpecialAssist)
				r.With(middleware.AdminOnly).Put("/", ledgerHandler.SetSpecialAssist)
			})

			r.Route("/overtime/{year}", func(r chi.Router) {
				r.Get("/", ledgerHandler.GetOvertime)
				r.With(middleware.AdminOnly).Put("/", ledgerHandler.SetOvertime)
			})

			r.Route("/budget-items", func(r chi.Router) {
				r.Get("/", budgetItemHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", budgetItemHandler.Save)
					r.Delete("/{id}", budgetItemHandler.Delete)
				})
			})

			r.Route("/calculations/{year}", func(r chi.Router) {
				r.Get("/travel", calculationHandler.Travel)
				r.Get("/special-assist", calculationHandler.SpecialAssist)
				r.Get("/family-visit", calculationHandler.FamilyVisit)
				r.Get("/company-trip", calculationHandler.CompanyTrip)
				r.Get("/manager-rotation", calculationHandler.ManagerRotation)
				r.Get("/overtime", calculationHandler.Overtime)
				r.Get("/workdays", calculationHandler.WorkDays)
			})

			r.Get("/dashboard/{year}", dashboardHandler.GetDashboard)
		})
	})
	return r
}
