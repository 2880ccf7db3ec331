package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tokoku/go-storefront-api/internal/config"
	"github.com/tokoku/go-storefront-api/internal/handler"
	"github.com/tokoku/go-storefront-api/internal/middleware"
	"github.com/tokoku/go-storefront-api/internal/service"
	"github.com/tokoku/go-storefront-api/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	st := store.New(cfg.Store.Path)
	if err := st.Ping(); err != nil {
		log.Error("open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	log.Info("document store ready", "path", cfg.Store.Path)

	// Services
	authSvc := service.NewAuthService(st)
	productSvc := service.NewProductService(st)
	orderSvc := service.NewOrderService(st)
	dashboardSvc := service.NewDashboardService(st)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	healthH := handler.NewHealthHandler(st)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(cors.Default())

	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	api := router.Group("/api")
	{
		api.POST("/register", authH.Register)
		api.POST("/login", authH.Login)
		api.PATCH("/users/:id", authH.UpdateUser)

		api.GET("/dashboard/stats", dashboardH.Stats)
		api.GET("/dashboard/chart", dashboardH.Chart)

		products := api.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)
		products.POST("", productH.Create)
		products.PATCH("/:id", productH.Update)
		products.DELETE("/:id", productH.Delete)

		orders := api.Group("/orders")
		orders.GET("", orderH.List)
		orders.POST("", orderH.Create)
		orders.PATCH("/:id", orderH.UpdateStatus)
		orders.DELETE("/:id", orderH.Delete)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	log.Info("server stopped")
}
