package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/ai"
	"github.com/jafarshop/storeconnect/internal/domain"
)

// DraftTemplateRequest asks the AI for a template draft
type DraftTemplateRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
	Intent string             `json:"intent" binding:"required"`
}

// HandleDraftTemplate handles POST /v1/ai/templates/draft
func HandleDraftTemplate(assistant *ai.Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DraftTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !req.Status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		draft, err := assistant.DraftTemplate(c.Request.Context(), req.Status, req.Intent)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// CritiqueRequest asks the AI to review a message
type CritiqueRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// HandleCritiqueMessage handles POST /v1/ai/critique
func HandleCritiqueMessage(assistant *ai.Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CritiqueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		critique, err := assistant.CritiqueMessage(c.Request.Context(), req.Subject, req.Body)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, critique)
	}
}

// ToneAdjustRequest asks the AI to rewrite a message in another tone
type ToneAdjustRequest struct {
	Subject string       `json:"subject" binding:"required"`
	Body    string       `json:"body" binding:"required"`
	Tone    ai.ToneStyle `json:"tone" binding:"required"`
}

// HandleAdjustTone handles POST /v1/ai/tone
func HandleAdjustTone(assistant *ai.Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToneAdjustRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !req.Tone.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported tone style"})
			return
		}

		rewritten, err := assistant.AdjustTone(c.Request.Context(), req.Subject, req.Body, req.Tone)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, rewritten)
	}
}

// ChatRequest continues the AI help chat
type ChatRequest struct {
	History []ai.ChatMessage `json:"history"`
	Message string           `json:"message" binding:"required"`
}

// HandleChat handles POST /v1/ai/chat
func HandleChat(assistant *ai.Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		reply, err := assistant.Chat(c.Request.Context(), req.History, req.Message)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
