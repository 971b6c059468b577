package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"DoceGestor/app/api"
	"DoceGestor/app/config"
	"DoceGestor/app/database"
	"DoceGestor/app/logger"
	"DoceGestor/app/scheduler"
	"DoceGestor/app/services"
	"DoceGestor/app/websocket"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	if err := database.Initialize(cfg.Database); err != nil {
		baseLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			baseLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	hub := websocket.NewHub(logger.Named(baseLogger, "websocket"))
	go hub.Run()

	ingredientSvc := services.NewIngredientService()
	recipeSvc := services.NewRecipeService(cfg.Pricing, hub)
	productSvc := services.NewProductService(cfg.Pricing)
	salesSvc := services.NewSalesService(hub)
	customerSvc := services.NewCustomerService()
	resellerSvc := services.NewResellerService()
	expenseSvc := services.NewExpenseService()
	quoteSvc := services.NewQuoteService(salesSvc)
	scheduleSvc := services.NewScheduleService(recipeSvc)
	dashboardSvc := services.NewDashboardService(customerSvc)

	handlers := &api.Handlers{
		Ingredients: ingredientSvc,
		Recipes:     recipeSvc,
		Products:    productSvc,
		Sales:       salesSvc,
		Customers:   customerSvc,
		Resellers:   resellerSvc,
		Expenses:    expenseSvc,
		Quotes:      quoteSvc,
		Schedule:    scheduleSvc,
		Dashboard:   dashboardSvc,
	}

	engine := api.New(handlers, hub, logger.Named(baseLogger, "router"))

	sched := scheduler.NewScheduler(cfg.Schedule, scheduleSvc, hub, logger.Named(baseLogger, "scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
