package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Mtaasisi/NEON-POS-sub021/internal/app"
	"github.com/Mtaasisi/NEON-POS-sub021/internal/http/middleware"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes (require authentication and tenant context)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))
	protected.Use(middleware.RequireTenant())

	// Catalog
	catalogHandler := NewCatalogHandler(services.CatalogRepo)
	products := protected.Group("/products")
	products.GET("", catalogHandler.List)
	products.POST("", catalogHandler.Create)
	products.GET("/:id", catalogHandler.GetByID)

	// Bulk reconciliation import
	reconcileHandler := NewReconcileHandler(services.ReconcileService)
	rec := protected.Group("/reconcile")
	rec.POST("/import", reconcileHandler.Import)
	rec.GET("/import/template", reconcileHandler.Template)
}
