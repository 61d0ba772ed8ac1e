package handler

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"region-directory/internal/directory"
	"region-directory/internal/metrics"
	"region-directory/internal/middleware"
	"region-directory/internal/validation"
)

// RouterConfig holds the HTTP options that come from configuration
type RouterConfig struct {
	AllowedOrigins []string

	// LegacyRouteStatus answers unknown routes with 500 instead of 404
	LegacyRouteStatus bool
}

// NewRouter wires the region API, health and metrics endpoints
func NewRouter(cfg RouterConfig, service *directory.Service, store Pinger, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	validation.Install()

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(m),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Error("panic recovered",
				zap.Any("panic", recovered),
				zap.String("request_id", middleware.GetRequestID(c)),
			)
			abortWithMessage(c, http.StatusInternalServerError, msgInternal)
		}),
		cors.New(corsConfig(cfg.AllowedOrigins)),
	)

	routeStatus := http.StatusNotFound
	if cfg.LegacyRouteStatus {
		routeStatus = http.StatusInternalServerError
	}
	router.NoRoute(func(c *gin.Context) {
		abortWithMessage(c, routeStatus, msgRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithMessage(c, http.StatusMethodNotAllowed,
			fmt.Sprintf("Request method '%s' not supported", c.Request.Method))
	})

	regionHandler := NewRegionHandler(service, logger)
	healthHandler := NewHealthHandler(store, logger)

	regions := router.Group("/v1/regions")
	{
		regions.POST("", regionHandler.AddRegion)
		regions.GET("", regionHandler.GetRegions)
		regions.GET("/:id", regionHandler.GetRegion)
		regions.PUT("/:id", regionHandler.UpdateRegion)
		regions.DELETE("/:id", regionHandler.DeleteRegion)
	}

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		MaxAge:        86400,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
