package template

import (
	"fmt"
	"math"
	"strings"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// Resolve substitutes every recognized {{placeholder}} token in tmpl with
// the matching order field. Replacement is global and case-sensitive;
// tokens outside the fixed set are left verbatim so a typo in a saved
// template never breaks message generation.
//
// Note: {{status}} substitutes the raw status key ("processing"), not the
// display label. Saved templates rely on this, so it stays that way.
func Resolve(tmpl string, order domain.Order) string {
	replacements := []struct {
		token string
		value string
	}{
		{"{{orderNumber}}", order.OrderNumber},
		{"{{customerName}}", order.CustomerName},
		{"{{customerEmail}}", order.CustomerEmail},
		{"{{orderDate}}", formatOrderDate(order)},
		{"{{totalAmount}}", formatAmount(order.TotalAmount)},
		{"{{currency}}", order.Currency},
		{"{{status}}", string(order.Status)},
		{"{{shippingAddress}}", order.ShippingAddress},
		{"{{billingAddress}}", order.BillingAddress},
		{"{{paymentMethod}}", order.PaymentMethod},
		{"{{itemsSummary}}", itemsSummary(order.Items)},
	}

	result := tmpl
	for _, r := range replacements {
		result = strings.ReplaceAll(result, r.token, r.value)
	}
	return result
}

// formatAmount renders an amount with exactly two decimal places, rounding
// half-up at the second decimal.
func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", math.Round(amount*100)/100)
}

// formatOrderDate renders the order date as a short en-US date (M/D/YYYY)
func formatOrderDate(order domain.Order) string {
	return order.OrderDate.Format("1/2/2006")
}

// itemsSummary renders line items as "Name (Qty: N)" joined by commas
func itemsSummary(items []domain.OrderItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (Qty: %d)", item.Name, item.Quantity)
	}
	return strings.Join(parts, ", ")
}
