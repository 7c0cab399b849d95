package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// ToneStyle is one of the supported rewrite tones
type ToneStyle string

const (
	ToneFriendly       ToneStyle = "Friendly"
	ToneFormal         ToneStyle = "Formal"
	ToneEmpathetic     ToneStyle = "Empathetic"
	ToneUrgent         ToneStyle = "Urgent"
	TonePlayful        ToneStyle = "Playful"
	ToneConcise        ToneStyle = "More Concise"
	ToneDetailed       ToneStyle = "More Detailed"
	ToneActionOriented ToneStyle = "Action-Oriented"
)

// IsValid checks if the tone is one of the supported styles
func (t ToneStyle) IsValid() bool {
	switch t {
	case ToneFriendly, ToneFormal, ToneEmpathetic, ToneUrgent,
		TonePlayful, ToneConcise, ToneDetailed, ToneActionOriented:
		return true
	default:
		return false
	}
}

// DraftedTemplate is an AI-drafted subject/body pair
type DraftedTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Critique is an AI review of a message
type Critique struct {
	Score       string   `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Assistant implements the AI-assist features over a TextGenerator. Brand
// voice is read per call so saved edits apply immediately.
type Assistant struct {
	gen        TextGenerator
	brandVoice func() string
	logger     *zap.Logger
}

// NewAssistant creates a new template assistant
func NewAssistant(gen TextGenerator, brandVoice func() string, logger *zap.Logger) *Assistant {
	return &Assistant{
		gen:        gen,
		brandVoice: brandVoice,
		logger:     logger,
	}
}

// DraftTemplate asks the model for a subject/body draft matching the
// user's intent for one order status.
func (a *Assistant) DraftTemplate(ctx context.Context, status domain.OrderStatus, intent string) (DraftedTemplate, error) {
	prompt := draftTemplatePrompt(status.Label(), intent)
	raw, err := a.gen.GenerateText(ctx, prompt, instructionCopywriter, a.brandVoice(), true)
	if err != nil {
		return DraftedTemplate{}, err
	}

	var draft DraftedTemplate
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		a.logger.Warn("AI draft was not the expected shape", zap.Error(err))
		return DraftedTemplate{}, fmt.Errorf("failed to parse AI draft: %w", err)
	}
	return draft, nil
}

// CritiqueMessage asks the model to score a message and suggest fixes
func (a *Assistant) CritiqueMessage(ctx context.Context, subject, body string) (Critique, error) {
	raw, err := a.gen.GenerateText(ctx, critiquePrompt(subject, body), instructionCritique, a.brandVoice(), true)
	if err != nil {
		return Critique{}, err
	}

	var critique Critique
	if err := json.Unmarshal([]byte(raw), &critique); err != nil {
		a.logger.Warn("AI critique was not the expected shape", zap.Error(err))
		return Critique{}, fmt.Errorf("failed to parse AI critique: %w", err)
	}
	return critique, nil
}

// AdjustTone rewrites a message in the requested tone
func (a *Assistant) AdjustTone(ctx context.Context, subject, body string, tone ToneStyle) (DraftedTemplate, error) {
	prompt := toneAdjustPrompt(subject, body, string(tone))
	raw, err := a.gen.GenerateText(ctx, prompt, instructionToneAdjuster, a.brandVoice(), true)
	if err != nil {
		return DraftedTemplate{}, err
	}

	var rewritten DraftedTemplate
	if err := json.Unmarshal([]byte(raw), &rewritten); err != nil {
		a.logger.Warn("AI rewrite was not the expected shape", zap.Error(err))
		return DraftedTemplate{}, fmt.Errorf("failed to parse AI rewrite: %w", err)
	}
	return rewritten, nil
}

// Chat continues the help-chat conversation
func (a *Assistant) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	return a.gen.GenerateChatResponse(ctx, history, message, instructionHelpChat, a.brandVoice())
}
