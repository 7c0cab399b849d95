package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/template"
)

// HandleGetTemplates handles GET /v1/templates
func HandleGetTemplates(store *template.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"templates": store.GetAll()})
	}
}

// HandleUpdateTemplate handles PUT /v1/templates/:status
func HandleUpdateTemplate(store *template.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := domain.OrderStatus(c.Param("status"))
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var patch domain.TemplatePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		updated, err := store.Update(status, patch)
		if err != nil {
			logger.Error("Failed to save template", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save template"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// HandleResetTemplate handles POST /v1/templates/:status/reset
func HandleResetTemplate(store *template.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := domain.OrderStatus(c.Param("status"))
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		if err := store.ResetOne(status); err != nil {
			logger.Error("Failed to reset template", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset template"})
			return
		}

		c.JSON(http.StatusOK, store.Get(status))
	}
}

// HandleResetAllTemplates handles POST /v1/templates/reset
func HandleResetAllTemplates(store *template.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		set, err := store.ResetAll()
		if err != nil {
			logger.Error("Failed to reset templates", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset templates"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"templates": set})
	}
}
