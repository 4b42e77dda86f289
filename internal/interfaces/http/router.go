// Package http wires the gin engine: middleware, routes, and handler
// construction from the application layer.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgercloud/ledgercloud/internal/interfaces/http/handlers"
	"github.com/ledgercloud/ledgercloud/internal/interfaces/http/middleware"
	sharedConfig "github.com/ledgercloud/ledgercloud/internal/shared/config"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// Router holds the gin engine and the handlers served by it.
type Router struct {
	engine              *gin.Engine
	healthHandler       *handlers.HealthHandler
	subscriptionHandler *handlers.SubscriptionHandler
	webhookHandler      *handlers.BillingWebhookHandler
	serverCfg           *sharedConfig.ServerConfig
	logger              logger.Interface
}

// NewRouter builds the router around already-constructed handlers.
func NewRouter(
	subscriptionHandler *handlers.SubscriptionHandler,
	webhookHandler *handlers.BillingWebhookHandler,
	serverCfg *sharedConfig.ServerConfig,
	log logger.Interface,
) *Router {
	return &Router{
		engine:              gin.New(),
		healthHandler:       handlers.NewHealthHandler(),
		subscriptionHandler: subscriptionHandler,
		webhookHandler:      webhookHandler,
		serverCfg:           serverCfg,
		logger:              log,
	}
}

// SetupRoutes registers middleware and routes on the engine.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	if len(r.serverCfg.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.serverCfg.AllowedOrigins))
	}

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	api := r.engine.Group("/api")
	{
		api.POST("/subscriptions", r.subscriptionHandler.CreateSubscription)
		api.POST("/webhooks/payment", r.webhookHandler.HandleEvent)
	}
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
