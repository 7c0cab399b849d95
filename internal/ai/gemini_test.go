package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"plain fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"fence inline", "```json{\"a\":1}```", `{"a":1}`},
		{"not fenced", "some prose", "some prose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFences(tt.in))
		})
	}
}

func geminiTestServer(t *testing.T, text string) (*httptest.Server, *geminiRequest) {
	t.Helper()
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	return server, &captured
}

func geminiCfg(baseURL string) func() config.GeminiConfig {
	return func() config.GeminiConfig {
		return config.GeminiConfig{APIKey: "key", Model: "gemini-2.0-flash", BaseURL: baseURL}
	}
}

func TestGenerateTextPlain(t *testing.T) {
	server, captured := geminiTestServer(t, "hello there")
	defer server.Close()

	client := NewGeminiClient(geminiCfg(server.URL), zap.NewNop())
	got, err := client.GenerateText(context.Background(), "say hi", "be brief", "We are cheerful.", false)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)

	// Brand voice is prepended to the system instruction
	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "We are cheerful.\n\nbe brief", captured.SystemInstruction.Parts[0].Text)
	assert.Nil(t, captured.GenerationConfig)
}

func TestGenerateTextExpectJSONStripsFences(t *testing.T) {
	server, captured := geminiTestServer(t, "```json\n{\"subject\":\"s\",\"body\":\"b\"}\n```")
	defer server.Close()

	client := NewGeminiClient(geminiCfg(server.URL), zap.NewNop())
	got, err := client.GenerateText(context.Background(), "draft", "", "", true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject":"s","body":"b"}`, got)

	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
}

func TestGenerateTextExpectJSONMalformed(t *testing.T) {
	server, _ := geminiTestServer(t, "this is not json at all")
	defer server.Close()

	client := NewGeminiClient(geminiCfg(server.URL), zap.NewNop())
	_, err := client.GenerateText(context.Background(), "draft", "", "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON")
}

func TestGenerateTextNotConfigured(t *testing.T) {
	client := NewGeminiClient(func() config.GeminiConfig { return config.GeminiConfig{} }, zap.NewNop())

	_, err := client.GenerateText(context.Background(), "prompt", "", "", false)
	require.Error(t, err)
	assert.IsType(t, &errors.ErrNotConfigured{}, err)
}

func TestGenerateChatResponseMapsHistory(t *testing.T) {
	server, captured := geminiTestServer(t, "chat reply")
	defer server.Close()

	client := NewGeminiClient(geminiCfg(server.URL), zap.NewNop())
	history := []ChatMessage{
		{Role: "user", Text: "first question"},
		{Role: "model", Text: "first answer"},
	}
	got, err := client.GenerateChatResponse(context.Background(), history, "second question", "help the user", "")
	require.NoError(t, err)
	assert.Equal(t, "chat reply", got)

	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
	assert.Equal(t, "second question", captured.Contents[2].Parts[0].Text)
}
