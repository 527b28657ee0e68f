package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payme/internal/config"
	"payme/internal/database"
	"payme/internal/handlers"
	"payme/internal/middleware"
	"payme/internal/repositories"
	"payme/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	monthRepo := repositories.NewMonthRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	budgetRepo := repositories.NewMonthlyBudgetRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	fixedRepo := repositories.NewFixedExpenseRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(userRepo)
	authService := services.NewAuthService(userRepo, preferenceRepo, tokenService, passwordService, metrics)
	varianceService := services.NewVarianceService()
	monthService := services.NewMonthService(monthRepo, categoryRepo, budgetRepo, incomeRepo, fixedRepo, itemRepo, varianceService, metrics)
	categoryService := services.NewCategoryService(categoryRepo, monthRepo, budgetRepo)
	budgetService := services.NewBudgetService(budgetRepo, monthRepo, categoryRepo)
	incomeService := services.NewIncomeService(incomeRepo, monthRepo)
	fixedExpenseService := services.NewFixedExpenseService(fixedRepo)
	itemService := services.NewItemService(itemRepo, monthRepo, categoryRepo, metrics)
	savingsService := services.NewSavingsService(userRepo, monthService, varianceService)
	currencyService := services.NewCurrencyService(preferenceRepo, cfg.Currency.DefaultLocale, metrics)
	demoDataService := services.NewDemoDataService(monthService, categoryRepo, incomeRepo, fixedRepo, itemRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, passwordService)
	monthHandler := handlers.NewMonthHandler(monthService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	fixedExpenseHandler := handlers.NewFixedExpenseHandler(fixedExpenseService)
	itemHandler := handlers.NewItemHandler(itemService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	requireAuth := middleware.RequireAuth(tokenService)
	auth.GET("/me", authHandler.Profile, requireAuth)
	auth.PUT("/password", authHandler.ChangePassword, requireAuth)

	protected := api.Group("", requireAuth)

	protected.POST("/months", monthHandler.Open)
	protected.GET("/months", monthHandler.List)
	protected.GET("/months/:id", monthHandler.Get)
	protected.POST("/months/:id/close", monthHandler.Close)
	protected.GET("/months/:id/summary", monthHandler.Summary)
	protected.GET("/months/:id/variance", monthHandler.Variance)
	protected.GET("/months/:id/projected-savings", savingsHandler.ProjectedSavings)

	protected.POST("/months/:id/budgets", budgetHandler.Create)
	protected.GET("/months/:id/budgets", budgetHandler.List)
	protected.PUT("/budgets/:id", budgetHandler.Update)
	protected.DELETE("/budgets/:id", budgetHandler.Delete)

	protected.POST("/months/:id/income", incomeHandler.Create)
	protected.GET("/months/:id/income", incomeHandler.List)
	protected.PUT("/income/:id", incomeHandler.Update)
	protected.DELETE("/income/:id", incomeHandler.Delete)

	protected.POST("/months/:id/items", itemHandler.Create)
	protected.GET("/months/:id/items", itemHandler.List)
	protected.PUT("/items/:id", itemHandler.Update)
	protected.DELETE("/items/:id", itemHandler.Delete)

	protected.POST("/categories", categoryHandler.Create)
	protected.GET("/categories", categoryHandler.List)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	protected.POST("/fixed-expenses", fixedExpenseHandler.Create)
	protected.GET("/fixed-expenses", fixedExpenseHandler.List)
	protected.PUT("/fixed-expenses/:id", fixedExpenseHandler.Update)
	protected.DELETE("/fixed-expenses/:id", fixedExpenseHandler.Delete)

	protected.GET("/currencies", currencyHandler.List)
	protected.GET("/currencies/active", currencyHandler.Active)
	protected.PUT("/currencies/active", currencyHandler.Select)

	protected.PUT("/savings", savingsHandler.UpdateSavings)
	protected.PUT("/savings/retirement", savingsHandler.UpdateRetirementSavings)

	// Demo seeding is only mounted outside production
	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(demoDataService)
		protected.POST("/dev/seed-demo-data", devHandler.SeedDemoData)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	}

	slog.Info("Server stopped gracefully")
}
