package shopify

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
	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

const apiVersion = "2024-01"

// Client talks to the Shopify Admin REST API. Credentials are read through
// cfgFn on every call so edits saved in the settings store take effect
// without restarting.
type Client struct {
	cfgFn      func() config.ShopifyConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Shopify order source
func NewClient(cfgFn func() config.ShopifyConfig, logger *zap.Logger) *Client {
	return &Client{
		cfgFn: cfgFn,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformShopify
}

// normalizeDomain removes the scheme and trailing slashes from a shop domain
func normalizeDomain(shopDomain string) string {
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	return strings.TrimSuffix(shopDomain, "/")
}

func (c *Client) url(cfg config.ShopifyConfig, path string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/%s", normalizeDomain(cfg.ShopDomain), apiVersion, path)
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}, out interface{}) error {
	cfg := c.cfgFn()

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", cfg.AccessToken)

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
		return fmt.Errorf("shopify API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// FetchOrders fetches the current order list from Shopify
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return nil, &errors.ErrNotConfigured{Integration: "Shopify"}
	}

	var result struct {
		Orders []shopifyOrder `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, c.url(cfg, "orders.json?status=any&limit=50"), nil, &result); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(result.Orders))
	for _, so := range result.Orders {
		orders = append(orders, mapOrder(so))
	}
	return orders, nil
}

// UpdateOrderStatus writes the dashboard-managed status tag back to the
// Shopify order.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return &errors.ErrNotConfigured{Integration: "Shopify"}
	}

	payload := map[string]interface{}{
		"order": map[string]interface{}{
			"id":   orderID,
			"tags": fmt.Sprintf("status:%s", status),
		},
	}

	url := c.url(cfg, fmt.Sprintf("orders/%s.json", orderID))
	if err := c.do(ctx, http.MethodPut, url, payload, nil); err != nil {
		c.logger.Error("Failed to update Shopify order status",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// TestConnection verifies the given credentials against the shop endpoint
func (c *Client) TestConnection(ctx context.Context) error {
	cfg := c.cfgFn()
	if !cfg.IsConfigured() {
		return &errors.ErrNotConfigured{Integration: "Shopify"}
	}
	return c.do(ctx, http.MethodGet, c.url(cfg, "shop.json"), nil, nil)
}
