package server

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/billing"
	"fsadmin/internal/domain/expense"
	"fsadmin/internal/domain/hr"
	"fsadmin/internal/domain/payroll"
	"fsadmin/internal/platform/config"
	"fsadmin/internal/platform/seed"
	authhandler "fsadmin/internal/transport/http/handlers/auth"
	billinghandler "fsadmin/internal/transport/http/handlers/billing"
	employeehandler "fsadmin/internal/transport/http/handlers/employees"
	expensehandler "fsadmin/internal/transport/http/handlers/expenses"
	payrollhandler "fsadmin/internal/transport/http/handlers/payroll"
	"fsadmin/internal/transport/http/middleware"
)

// NewRouter builds the fully wired application: stores, services, seed data
// and the HTTP surface. Everything lives in process memory.
func NewRouter(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	userStore := auth.NewStore()
	employeeStore := hr.NewStore()
	payrollStore := payroll.NewStore()
	billingStore := billing.NewStore()
	expenseStore := expense.NewStore()

	userService := auth.NewService(userStore)
	payrollService := payroll.NewService(payrollStore, employeeStore)
	employeeService := hr.NewService(employeeStore, payrollStore)
	billingService := billing.NewService(billingStore)
	expenseService := expense.NewService(expenseStore)

	if err := seed.Run(cfg, seed.Services{
		Users:     userService,
		Employees: employeeService,
		Payroll:   payrollService,
		Billing:   billingService,
		Expenses:  expenseService,
	}, logger); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	authHandler := authhandler.NewHandler(userService, userStore, cfg.JWTSecret, cfg.TokenTTL)

	router.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))

			authHandler.RegisterProtectedRoutes(r)
			employeehandler.NewHandler(employeeService).RegisterRoutes(r)
			payrollhandler.NewHandler(payrollService, cfg.PayslipDir).RegisterRoutes(r)
			billinghandler.NewHandler(billingService).RegisterRoutes(r)
			expensehandler.NewHandler(expenseService).RegisterRoutes(r)
		})
	})

	return router, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	router, err := NewRouter(cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	logger.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
