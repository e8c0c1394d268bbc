package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopcore/ecommerce-api/docs"
	"github.com/shopcore/ecommerce-api/internal/api/handler"
	"github.com/shopcore/ecommerce-api/internal/core/service"
	mongodb "github.com/shopcore/ecommerce-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// corsOrigin is the single front-end origin allowed cross-origin access.
func NewRouter(db *mongo.Database, corsOrigin string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	userHandler := handler.NewUserHandler(userService)

	// --- Product routes ---
	e.GET("/product", productHandler.List)
	e.GET("/product/id/:id", productHandler.GetByID)
	e.GET("/product/category/:category", productHandler.ListByCategory)
	e.POST("/product", productHandler.Create)
	e.PUT("/product/:id", productHandler.Update)
	e.DELETE("/product/:id", productHandler.Delete)

	// --- User routes ---
	e.GET("/user", userHandler.List)
	e.GET("/user/email/:email", userHandler.GetByEmail)
	e.GET("/user/:id", userHandler.GetByID)
	e.POST("/user", userHandler.Create)
	e.PUT("/user/:id", userHandler.Update)
	e.DELETE("/user/:id", userHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?

	return e
}
