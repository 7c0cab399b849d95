package domain

import "time"

// Platform identifies which storefront an order came from
type Platform string

const (
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
)

// IsValid checks if the platform tag is known
func (p Platform) IsValid() bool {
	return p == PlatformShopify || p == PlatformWooCommerce
}

// OrderItem represents a single line item in an order
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order represents a single customer order fetched from a storefront.
// Orders are ephemeral: they live in the per-session cache and are only
// ever mutated through the status-update path.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Status          OrderStatus `json:"status"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	OrderDate       time.Time   `json:"order_date"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	PaymentMethod   string      `json:"payment_method"`
	Currency        string      `json:"currency"`
	Platform        Platform    `json:"platform"`
}

// GeneratedMessage is the customer-ready notification content produced
// from an order and its status template. Never persisted.
type GeneratedMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
