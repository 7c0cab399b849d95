package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// PushflowClient sends SMS messages through the Pushflow gateway API
type PushflowClient struct {
	cfgFn      func() config.PushflowConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPushflowClient creates a new Pushflow SMS client
func NewPushflowClient(cfgFn func() config.PushflowConfig, logger *zap.Logger) *PushflowClient {
	return &PushflowClient{
		cfgFn: cfgFn,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type pushflowSendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type pushflowSendResponse struct {
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// Send delivers body to the phone number as a single SMS. The subject is
// folded into the message since SMS has no subject line.
func (c *PushflowClient) Send(ctx context.Context, phoneNumber, subject, body string) error {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return &errors.ErrNotConfigured{Integration: "Pushflow"}
	}

	message := body
	if subject != "" {
		message = subject + "\n" + body
	}

	payload := pushflowSendRequest{To: phoneNumber, Message: message}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/instances/%s/messages",
		strings.TrimSuffix(cfg.BaseURL, "/"), cfg.InstanceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("pushflow API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result pushflowSendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if !result.Sent {
		return fmt.Errorf("pushflow refused message: %s", result.Error)
	}

	c.logger.Info("Sent SMS via Pushflow", zap.String("to", phoneNumber))
	return nil
}
