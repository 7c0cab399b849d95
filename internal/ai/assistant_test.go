package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// canned implements TextGenerator with a fixed response
type canned struct {
	response   string
	lastPrompt string
	lastBrand  string
}

func (c *canned) GenerateText(ctx context.Context, prompt, systemInstruction, brandVoice string, expectJSON bool) (string, error) {
	c.lastPrompt = prompt
	c.lastBrand = brandVoice
	return c.response, nil
}

func (c *canned) GenerateChatResponse(ctx context.Context, history []ChatMessage, newMessage, systemInstruction, brandVoice string) (string, error) {
	c.lastPrompt = newMessage
	c.lastBrand = brandVoice
	return c.response, nil
}

func newTestAssistant(response string) (*Assistant, *canned) {
	gen := &canned{response: response}
	return NewAssistant(gen, func() string { return "Warm and direct." }, zap.NewNop()), gen
}

func TestDraftTemplate(t *testing.T) {
	assistant, gen := newTestAssistant(`{"subject":"Your Order {{orderNumber}}","body":"Hi {{customerName}}!"}`)

	draft, err := assistant.DraftTemplate(context.Background(), domain.OrderStatusShipped, "let them know it shipped")
	require.NoError(t, err)
	assert.Equal(t, "Your Order {{orderNumber}}", draft.Subject)
	assert.Equal(t, "Hi {{customerName}}!", draft.Body)

	// The prompt names the status label and the user's intent
	assert.Contains(t, gen.lastPrompt, "Shipped")
	assert.Contains(t, gen.lastPrompt, "let them know it shipped")
	assert.Equal(t, "Warm and direct.", gen.lastBrand)
}

func TestDraftTemplateUnexpectedShape(t *testing.T) {
	assistant, _ := newTestAssistant(`["not","an","object"]`)

	_, err := assistant.DraftTemplate(context.Background(), domain.OrderStatusShipped, "intent")
	require.Error(t, err)
}

func TestCritiqueMessage(t *testing.T) {
	assistant, _ := newTestAssistant(`{"score":"Good","suggestions":["Shorter subject"]}`)

	critique, err := assistant.CritiqueMessage(context.Background(), "Subject", "Body")
	require.NoError(t, err)
	assert.Equal(t, "Good", critique.Score)
	assert.Equal(t, []string{"Shorter subject"}, critique.Suggestions)
}

func TestAdjustTone(t *testing.T) {
	assistant, gen := newTestAssistant(`{"subject":"s","body":"b"}`)

	_, err := assistant.AdjustTone(context.Background(), "Old subject", "Old body", ToneEmpathetic)
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "Empathetic")
	assert.Contains(t, gen.lastPrompt, "Old subject")
}

func TestToneStyleIsValid(t *testing.T) {
	assert.True(t, ToneFriendly.IsValid())
	assert.True(t, ToneActionOriented.IsValid())
	assert.False(t, ToneStyle("Sarcastic").IsValid())
}
