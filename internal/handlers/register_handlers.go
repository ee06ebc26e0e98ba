package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stocklane/inventory_backend/cmd/docs"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/middleware"
	"github.com/stocklane/inventory_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dbPool *pgxpool.Pool,
) {
	registerHomeRoutes(r, dbPool)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything under /api requires a valid token
	setupAPIRoutes(r, cfg, services)

	// PDF generation lives at the root path for client compatibility but is
	// token protected all the same.
	pdfGroup := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerPDFRoutes(pdfGroup)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterInventoryRoutes(api, services.Inventory)
	registerPurchaseRoutes(api, services.Transaction)
	RegisterSalesRoutes(api, services.Transaction)
	registerReferenceRoutes(api, services.Report)
	registerStatementRoutes(api, services.Report)
	registerUserRoutes(api, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
