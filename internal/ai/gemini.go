package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// ChatMessage is one turn of an AI help-chat conversation
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// TextGenerator is the generative-text collaborator. Implementations may
// fail or return malformed output; callers treat both as recoverable.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt, systemInstruction, brandVoice string, expectJSON bool) (string, error)
	GenerateChatResponse(ctx context.Context, history []ChatMessage, newMessage, systemInstruction, brandVoice string) (string, error)
}

// GeminiClient calls the Google Generative Language REST API
type GeminiClient struct {
	cfgFn      func() config.GeminiConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeminiClient creates a new Gemini text generator
func NewGeminiClient(cfgFn func() config.GeminiConfig, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		cfgFn: cfgFn,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// fullSystemInstruction prepends the brand voice to the system instruction
func fullSystemInstruction(systemInstruction, brandVoice string) string {
	if brandVoice == "" {
		return strings.TrimSpace(systemInstruction)
	}
	return strings.TrimSpace(brandVoice + "\n\n" + systemInstruction)
}

func (c *GeminiClient) generate(ctx context.Context, req geminiRequest) (string, error) {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return "", &errors.ErrNotConfigured{Integration: "Gemini"}
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(cfg.BaseURL, "/"), cfg.Model, cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// GenerateText generates a single completion for the prompt. When
// expectJSON is set the model is asked for JSON output, fences are
// stripped and the payload is validated; malformed output is an error the
// caller can surface and retry.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt, systemInstruction, brandVoice string, expectJSON bool) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}
	if instruction := fullSystemInstruction(systemInstruction, brandVoice); instruction != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: instruction}}}
	}
	if expectJSON {
		req.GenerationConfig = &geminiGenerationConfig{ResponseMimeType: "application/json"}
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", err
	}

	if expectJSON {
		cleaned := StripJSONFences(text)
		if !json.Valid([]byte(cleaned)) {
			c.logger.Warn("AI response was not valid JSON", zap.String("response", cleaned))
			return "", fmt.Errorf("AI response was not in the expected JSON format")
		}
		return cleaned, nil
	}
	return text, nil
}

// GenerateChatResponse continues a chat conversation with one new user
// message.
func (c *GeminiClient) GenerateChatResponse(ctx context.Context, history []ChatMessage, newMessage, systemInstruction, brandVoice string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, msg := range history {
		role := msg.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: newMessage}},
	})

	req := geminiRequest{Contents: contents}
	if instruction := fullSystemInstruction(systemInstruction, brandVoice); instruction != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: instruction}}}
	}

	return c.generate(ctx, req)
}

var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?\\s*```$")

// StripJSONFences removes a surrounding Markdown code fence, which models
// add around JSON output despite the response mime type.
func StripJSONFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}
