package handlers

import (
	"strings"
	"time"

	"github.com/chargewatch/pricetrack/cmd/docs"
	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
	"github.com/chargewatch/pricetrack/internal/middleware"
	"github.com/chargewatch/pricetrack/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Read side is public
	registerPricingRoutes(v1, services.PricingLedger)

	// Write side is collector-only: API key plus a rate limit per client IP
	writes := v1.Group("", middleware.CollectorAuthMiddleware(cfg.CollectorAPIKeyHash), middleware.RateLimit(newIngestLimiter(cfg)))
	registerObservationRoutes(writes, services.Ingestion)
	registerAdminRoutes(writes, services.PricingLedger)
}

// newIngestLimiter builds an in-memory rate limiter for the write endpoints.
// One collector posts a handful of batches per run, so the ceiling is low.
func newIngestLimiter(cfg *config.Config) *limiter.Limiter {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.IngestRatePerMinute,
	}
	return limiter.New(limitermem.NewStore(), rate)
}

// registerCustomValidations wires the binding-tag validations the DTOs use.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("billing_period", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
			case "per month", "per year":
				return true
			default:
				return false
			}
		})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
