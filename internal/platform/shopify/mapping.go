package shopify

import (
	"strconv"
	"strings"
	"time"

	"github.com/jafarshop/storeconnect/internal/domain"
)

type shopifyOrder struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	CreatedAt         string            `json:"created_at"`
	CancelledAt       *string           `json:"cancelled_at"`
	FinancialStatus   string            `json:"financial_status"`
	FulfillmentStatus *string           `json:"fulfillment_status"`
	Tags              string            `json:"tags"`
	Currency          string            `json:"currency"`
	TotalPrice        string            `json:"total_price"`
	Gateway           string            `json:"gateway"`
	Customer          shopifyCustomer   `json:"customer"`
	ShippingAddress   *shopifyAddress   `json:"shipping_address"`
	BillingAddress    *shopifyAddress   `json:"billing_address"`
	LineItems         []shopifyLineItem `json:"line_items"`
}

type shopifyCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type shopifyAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

type shopifyLineItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func mapOrder(so shopifyOrder) domain.Order {
	items := make([]domain.OrderItem, 0, len(so.LineItems))
	for _, li := range so.LineItems {
		price, _ := strconv.ParseFloat(li.Price, 64)
		items = append(items, domain.OrderItem{
			ID:       strconv.FormatInt(li.ID, 10),
			Name:     li.Title,
			Quantity: li.Quantity,
			Price:    price,
		})
	}

	total, _ := strconv.ParseFloat(so.TotalPrice, 64)

	orderDate, err := time.Parse(time.RFC3339, so.CreatedAt)
	if err != nil {
		orderDate = time.Time{}
	}

	email := so.Email
	if email == "" {
		email = so.Customer.Email
	}

	return domain.Order{
		ID:              strconv.FormatInt(so.ID, 10),
		OrderNumber:     so.Name,
		Status:          deriveStatus(so),
		CustomerName:    strings.TrimSpace(so.Customer.FirstName + " " + so.Customer.LastName),
		CustomerEmail:   email,
		OrderDate:       orderDate,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: formatAddress(so.ShippingAddress),
		BillingAddress:  formatAddress(so.BillingAddress),
		PaymentMethod:   so.Gateway,
		Currency:        so.Currency,
		Platform:        domain.PlatformShopify,
	}
}

// deriveStatus maps Shopify order state onto the dashboard status set. A
// dashboard-written "status:<key>" tag wins over the derived value so
// round-trips through UpdateOrderStatus are stable.
func deriveStatus(so shopifyOrder) domain.OrderStatus {
	for _, tag := range strings.Split(so.Tags, ",") {
		tag = strings.TrimSpace(tag)
		if key, ok := strings.CutPrefix(tag, "status:"); ok {
			if status := domain.OrderStatus(key); status.IsValid() {
				return status
			}
		}
	}

	if so.CancelledAt != nil && *so.CancelledAt != "" {
		return domain.OrderStatusCancelled
	}

	switch so.FinancialStatus {
	case "refunded", "partially_refunded":
		return domain.OrderStatusRefunded
	case "voided":
		return domain.OrderStatusFailed
	case "pending":
		return domain.OrderStatusPending
	}

	if so.FulfillmentStatus != nil {
		switch *so.FulfillmentStatus {
		case "fulfilled":
			return domain.OrderStatusShipped
		}
	}

	if so.FinancialStatus == "paid" {
		return domain.OrderStatusProcessing
	}
	return domain.OrderStatusPending
}

func formatAddress(addr *shopifyAddress) string {
	if addr == nil {
		return ""
	}
	parts := []string{addr.Address1, addr.Address2, addr.City, addr.Province, addr.Zip, addr.Country}
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
