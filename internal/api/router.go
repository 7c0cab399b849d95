package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/ai"
	"github.com/jafarshop/storeconnect/internal/api/handlers"
	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/messaging"
	"github.com/jafarshop/storeconnect/internal/orders"
	"github.com/jafarshop/storeconnect/internal/settings"
	"github.com/jafarshop/storeconnect/internal/template"
)

// Deps groups everything the router wires into handlers
type Deps struct {
	Orders    *orders.Service
	Templates *template.Store
	Generator *template.Generator
	Settings  *settings.Service
	Senders   handlers.NotifySenders
	SendLog   *messaging.RecordLog
	Assistant *ai.Assistant
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/orders", handlers.HandleListOrders(deps.Orders, logger))
		v1.POST("/orders/:id/status", handlers.HandleUpdateOrderStatus(deps.Orders, logger))
		v1.GET("/orders/:id/message", handlers.HandlePreviewMessage(deps.Orders, deps.Generator, logger))
		v1.POST("/orders/:id/notify", handlers.HandleSendNotification(
			deps.Orders, deps.Generator, deps.Settings, deps.Senders, deps.SendLog, logger))
		v1.GET("/notifications", handlers.HandleListNotifications(deps.SendLog, logger))

		v1.GET("/templates", handlers.HandleGetTemplates(deps.Templates, logger))
		v1.POST("/templates/reset", handlers.HandleResetAllTemplates(deps.Templates, logger))
		v1.PUT("/templates/:status", handlers.HandleUpdateTemplate(deps.Templates, logger))
		v1.POST("/templates/:status/reset", handlers.HandleResetTemplate(deps.Templates, logger))

		settingsRoutes := v1.Group("/settings")
		{
			settingsRoutes.GET("/shopify", handlers.HandleGetShopifySettings(deps.Settings, logger))
			settingsRoutes.PUT("/shopify", handlers.HandleSaveShopifySettings(deps.Settings, logger))
			settingsRoutes.POST("/shopify/test", handlers.HandleTestShopifyConnection(logger))
			settingsRoutes.GET("/woocommerce", handlers.HandleGetWooCommerceSettings(deps.Settings, logger))
			settingsRoutes.PUT("/woocommerce", handlers.HandleSaveWooCommerceSettings(deps.Settings, logger))
			settingsRoutes.POST("/woocommerce/test", handlers.HandleTestWooCommerceConnection(logger))
			settingsRoutes.GET("/pushflow", handlers.HandleGetPushflowSettings(deps.Settings, logger))
			settingsRoutes.PUT("/pushflow", handlers.HandleSavePushflowSettings(deps.Settings, logger))
			settingsRoutes.GET("/brandvoice", handlers.HandleGetBrandVoice(deps.Settings, logger))
			settingsRoutes.PUT("/brandvoice", handlers.HandleSaveBrandVoice(deps.Settings, logger))
		}

		aiRoutes := v1.Group("/ai")
		{
			aiRoutes.POST("/templates/draft", handlers.HandleDraftTemplate(deps.Assistant, logger))
			aiRoutes.POST("/critique", handlers.HandleCritiqueMessage(deps.Assistant, logger))
			aiRoutes.POST("/tone", handlers.HandleAdjustTone(deps.Assistant, logger))
			aiRoutes.POST("/chat", handlers.HandleChat(deps.Assistant, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
