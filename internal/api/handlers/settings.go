package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/platform/shopify"
	"github.com/jafarshop/storeconnect/internal/platform/woocommerce"
	"github.com/jafarshop/storeconnect/internal/settings"
)

// HandleGetShopifySettings handles GET /v1/settings/shopify
func HandleGetShopifySettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := cfg.Shopify()
		c.JSON(http.StatusOK, gin.H{
			"shop_domain": current.ShopDomain,
			"configured":  current.IsConfigured(),
		})
	}
}

// HandleSaveShopifySettings handles PUT /v1/settings/shopify
func HandleSaveShopifySettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.ShopifyConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := cfg.SaveShopify(req); err != nil {
			logger.Error("Failed to save Shopify settings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": req.IsConfigured()})
	}
}

// HandleTestShopifyConnection handles POST /v1/settings/shopify/test. The
// submitted credentials are tested as-is, without being saved.
func HandleTestShopifyConnection(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.ShopifyConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		client := shopify.NewClient(func() config.ShopifyConfig { return req }, logger)
		if err := client.TestConnection(c.Request.Context()); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// HandleGetWooCommerceSettings handles GET /v1/settings/woocommerce
func HandleGetWooCommerceSettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := cfg.WooCommerce()
		c.JSON(http.StatusOK, gin.H{
			"site_url":     current.SiteURL,
			"consumer_key": current.ConsumerKey,
			"configured":   current.IsConfigured(),
		})
	}
}

// HandleSaveWooCommerceSettings handles PUT /v1/settings/woocommerce
func HandleSaveWooCommerceSettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.WooCommerceConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := cfg.SaveWooCommerce(req); err != nil {
			logger.Error("Failed to save WooCommerce settings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": req.IsConfigured()})
	}
}

// HandleTestWooCommerceConnection handles POST /v1/settings/woocommerce/test
func HandleTestWooCommerceConnection(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.WooCommerceConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		client := woocommerce.NewClient(func() config.WooCommerceConfig { return req }, logger)
		if err := client.TestConnection(c.Request.Context()); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// HandleGetPushflowSettings handles GET /v1/settings/pushflow
func HandleGetPushflowSettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := cfg.Pushflow()
		c.JSON(http.StatusOK, gin.H{
			"instance_id":          current.InstanceID,
			"default_phone_number": current.DefaultPhoneNumber,
			"configured":           current.IsConfigured(),
		})
	}
}

// HandleSavePushflowSettings handles PUT /v1/settings/pushflow
func HandleSavePushflowSettings(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.PushflowConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := cfg.SavePushflow(req); err != nil {
			logger.Error("Failed to save Pushflow settings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": req.IsConfigured()})
	}
}

// HandleGetBrandVoice handles GET /v1/settings/brandvoice
func HandleGetBrandVoice(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.BrandVoice())
	}
}

// HandleSaveBrandVoice handles PUT /v1/settings/brandvoice
func HandleSaveBrandVoice(cfg *settings.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req config.BrandVoiceConfig
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := cfg.SaveBrandVoice(req); err != nil {
			logger.Error("Failed to save brand voice", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, req)
	}
}
