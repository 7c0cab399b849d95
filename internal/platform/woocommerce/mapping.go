package woocommerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/jafarshop/storeconnect/internal/domain"
)

type wooOrder struct {
	ID                 int64         `json:"id"`
	Number             string        `json:"number"`
	Status             string        `json:"status"`
	Currency           string        `json:"currency"`
	DateCreated        string        `json:"date_created"`
	Total              string        `json:"total"`
	PaymentMethodTitle string        `json:"payment_method_title"`
	Billing            wooAddress    `json:"billing"`
	Shipping           wooAddress    `json:"shipping"`
	LineItems          []wooLineItem `json:"line_items"`
}

type wooAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type wooLineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    any    `json:"price"`
	Subtotal string `json:"subtotal"`
}

func mapOrder(wo wooOrder) domain.Order {
	items := make([]domain.OrderItem, 0, len(wo.LineItems))
	for _, li := range wo.LineItems {
		items = append(items, domain.OrderItem{
			ID:       strconv.FormatInt(li.ID, 10),
			Name:     li.Name,
			Quantity: li.Quantity,
			Price:    itemPrice(li),
		})
	}

	total, _ := strconv.ParseFloat(wo.Total, 64)

	// WooCommerce emits local time without an offset for date_created.
	orderDate, err := time.Parse("2006-01-02T15:04:05", wo.DateCreated)
	if err != nil {
		if t, rfcErr := time.Parse(time.RFC3339, wo.DateCreated); rfcErr == nil {
			orderDate = t
		}
	}

	return domain.Order{
		ID:              strconv.FormatInt(wo.ID, 10),
		OrderNumber:     wo.Number,
		Status:          fromWooStatus(wo.Status),
		CustomerName:    strings.TrimSpace(wo.Billing.FirstName + " " + wo.Billing.LastName),
		CustomerEmail:   wo.Billing.Email,
		OrderDate:       orderDate,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: formatAddress(wo.Shipping),
		BillingAddress:  formatAddress(wo.Billing),
		PaymentMethod:   wo.PaymentMethodTitle,
		Currency:        wo.Currency,
		Platform:        domain.PlatformWooCommerce,
	}
}

// itemPrice tolerates the price field arriving as a number or a string,
// falling back to the subtotal when both are unusable.
func itemPrice(li wooLineItem) float64 {
	switch v := li.Price.(type) {
	case float64:
		return v
	case string:
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			return p
		}
	}
	if p, err := strconv.ParseFloat(li.Subtotal, 64); err == nil {
		return p
	}
	return 0
}

// fromWooStatus maps a WooCommerce status slug onto the dashboard set.
// "completed" arrives as delivered; unknown slugs fall back to pending.
func fromWooStatus(status string) domain.OrderStatus {
	if status == "completed" {
		return domain.OrderStatusDelivered
	}
	if s := domain.OrderStatus(status); s.IsValid() {
		return s
	}
	return domain.OrderStatusPending
}

// toWooStatus is the inverse mapping used on status update
func toWooStatus(status domain.OrderStatus) string {
	if status == domain.OrderStatusDelivered {
		return "completed"
	}
	return string(status)
}

func formatAddress(addr wooAddress) string {
	parts := []string{addr.Address1, addr.Address2, addr.City, addr.State, addr.Postcode, addr.Country}
	nonEmpty := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if addr.Phone != "" {
		nonEmpty = append(nonEmpty, addr.Phone)
	}
	return strings.Join(nonEmpty, ", ")
}
