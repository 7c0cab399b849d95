package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// writeError maps the error taxonomy onto HTTP statuses. Everything else
// is treated as an upstream transport failure: recoverable, dismissible,
// no state changed.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrNotConfigured:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case *errors.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	default:
		logger.Error("Upstream operation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// platformFromQuery reads and validates the platform discriminator
func platformFromQuery(c *gin.Context) (domain.Platform, bool) {
	p := domain.Platform(c.Query("platform"))
	if !p.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform must be shopify or woocommerce"})
		return "", false
	}
	return p, true
}
