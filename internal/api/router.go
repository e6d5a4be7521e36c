package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/urbanova/storefront/docs"
	"github.com/urbanova/storefront/internal/api/handler"
	"github.com/urbanova/storefront/internal/api/middleware"
	"github.com/urbanova/storefront/internal/core/ports"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	Accounts  ports.AccountService
	Carts     ports.CartService
	Catalog   ports.Catalog
	Store     ports.KV
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Accounts, deps.JWTSecret, deps.TokenTTL)
	cartHandler := handler.NewCartHandler(deps.Carts)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/session", authHandler.Session, authMiddleware)

	// --- Cart routes ---
	e.POST("/v1/carts", cartHandler.Create)
	e.GET("/v1/carts/:id", cartHandler.Get)
	e.POST("/v1/carts/:id/items", cartHandler.AddItem)
	e.PUT("/v1/carts/:id/items/:product_id", cartHandler.UpdateQuantity)
	e.DELETE("/v1/carts/:id/items/:product_id", cartHandler.RemoveItem)

	// --- Catalog routes ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:id", catalogHandler.Get)
	e.GET("/v1/categories", catalogHandler.Categories)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
