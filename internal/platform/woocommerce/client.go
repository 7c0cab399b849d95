package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// Client talks to the WooCommerce REST API (wc/v3). Credentials are read
// through cfgFn on every call so saved settings edits apply immediately.
type Client struct {
	cfgFn      func() config.WooCommerceConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new WooCommerce order source
func NewClient(cfgFn func() config.WooCommerceConfig, logger *zap.Logger) *Client {
	return &Client{
		cfgFn: cfgFn,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformWooCommerce
}

func (c *Client) endpoint(cfg config.WooCommerceConfig, path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("consumer_key", cfg.ConsumerKey)
	query.Set("consumer_secret", cfg.ConsumerSecret)
	base := strings.TrimSuffix(cfg.SiteURL, "/")
	return fmt.Sprintf("%s/wp-json/wc/v3/%s?%s", base, path, query.Encode())
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		return fmt.Errorf("woocommerce API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// FetchOrders fetches the current order list from WooCommerce
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return nil, &errors.ErrNotConfigured{Integration: "WooCommerce"}
	}

	query := url.Values{}
	query.Set("per_page", "50")

	var wooOrders []wooOrder
	if err := c.do(ctx, http.MethodGet, c.endpoint(cfg, "orders", query), nil, &wooOrders); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(wooOrders))
	for _, wo := range wooOrders {
		orders = append(orders, mapOrder(wo))
	}
	return orders, nil
}

// UpdateOrderStatus sets the WooCommerce order status
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return &errors.ErrNotConfigured{Integration: "WooCommerce"}
	}

	payload := map[string]string{"status": toWooStatus(status)}
	endpoint := c.endpoint(cfg, "orders/"+orderID, nil)
	if err := c.do(ctx, http.MethodPut, endpoint, payload, nil); err != nil {
		c.logger.Error("Failed to update WooCommerce order status",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// TestConnection verifies the given credentials with a minimal list call
func (c *Client) TestConnection(ctx context.Context) error {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return &errors.ErrNotConfigured{Integration: "WooCommerce"}
	}

	query := url.Values{}
	query.Set("per_page", "1")
	return c.do(ctx, http.MethodGet, c.endpoint(cfg, "orders", query), nil, nil)
}
