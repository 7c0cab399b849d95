package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/messaging"
	"github.com/jafarshop/storeconnect/internal/orders"
	"github.com/jafarshop/storeconnect/internal/settings"
	"github.com/jafarshop/storeconnect/internal/template"
)

const defaultPageSize = 5

// HandleListOrders handles GET /v1/orders
func HandleListOrders(svc *orders.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := platformFromQuery(c)
		if !ok {
			return
		}

		statusFilter := domain.OrderStatus(c.Query("status"))
		if statusFilter != "" && !statusFilter.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
		refresh := c.Query("refresh") == "true"

		query := orders.Query{
			SearchTerm:   c.Query("search"),
			StatusFilter: statusFilter,
			Page:         page,
			PageSize:     pageSize,
		}

		result, err := svc.List(c.Request.Context(), p, query, refresh)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateStatusRequest represents a status-update request
type UpdateStatusRequest struct {
	Platform domain.Platform    `json:"platform" binding:"required"`
	Status   domain.OrderStatus `json:"status" binding:"required"`
}

// HandleUpdateOrderStatus handles POST /v1/orders/:id/status
func HandleUpdateOrderStatus(svc *orders.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !req.Platform.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "platform must be shopify or woocommerce"})
			return
		}

		order, err := svc.UpdateStatus(c.Request.Context(), req.Platform, c.Param("id"), req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// HandlePreviewMessage handles GET /v1/orders/:id/message
func HandlePreviewMessage(svc *orders.Service, gen *template.Generator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := platformFromQuery(c)
		if !ok {
			return
		}

		order, err := svc.Get(c.Request.Context(), p, c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		message := gen.Generate(order)
		if message == nil {
			// Missing or disabled template is a normal "no message" signal
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "no message template enabled for status " + string(order.Status),
			})
			return
		}

		c.JSON(http.StatusOK, message)
	}
}

// NotifyRequest represents a send-notification request
type NotifyRequest struct {
	Platform domain.Platform  `json:"platform" binding:"required"`
	Method   messaging.Method `json:"method" binding:"required"`
}

// NotifySenders groups the delivery channels available to the send flow
type NotifySenders struct {
	Email messaging.Sender
	SMS   messaging.Sender
}

// HandleSendNotification handles POST /v1/orders/:id/notify
func HandleSendNotification(
	svc *orders.Service,
	gen *template.Generator,
	cfg *settings.Service,
	senders NotifySenders,
	log *messaging.RecordLog,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !req.Platform.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "platform must be shopify or woocommerce"})
			return
		}

		order, err := svc.Get(c.Request.Context(), req.Platform, c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		message := gen.Generate(order)
		if message == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "no message template enabled for status " + string(order.Status),
			})
			return
		}

		var sender messaging.Sender
		var target string
		switch req.Method {
		case messaging.MethodEmail:
			sender = senders.Email
			target = order.CustomerEmail
		case messaging.MethodSMS:
			sender = senders.SMS
			target = messaging.ResolveSMSTarget(order, cfg.Pushflow().DefaultPhoneNumber)
			if target == "" {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "no phone number available for SMS",
				})
				return
			}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "method must be email or sms"})
			return
		}

		if err := sender.Send(c.Request.Context(), target, message.Subject, message.Body); err != nil {
			writeError(c, logger, err)
			return
		}

		record, err := log.Append(messaging.SendRecord{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Method:      req.Method,
			Target:      target,
			Subject:     message.Subject,
		})
		if err != nil {
			logger.Error("Failed to record sent notification", zap.Error(err))
		}

		c.JSON(http.StatusOK, record)
	}
}

// HandleListNotifications handles GET /v1/notifications
func HandleListNotifications(log *messaging.RecordLog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"notifications": log.All()})
	}
}
