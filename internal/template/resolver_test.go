package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storeconnect/internal/domain"
)

func testOrder() domain.Order {
	return domain.Order{
		ID:            "shopify-order-1",
		OrderNumber:   "#1001",
		Status:        domain.OrderStatusProcessing,
		CustomerName:  "John Doe",
		CustomerEmail: "john.doe@example.com",
		OrderDate:     time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{ID: "i1", Name: "Widget", Quantity: 2, Price: 10},
			{ID: "i2", Name: "Gadget", Quantity: 1, Price: 15},
		},
		TotalAmount:     35,
		ShippingAddress: "123 Main St, Anytown, USA",
		BillingAddress:  "456 Commerce Rd, Shopville, USA",
		PaymentMethod:   "Shopify Payments",
		Currency:        "USD",
		Platform:        domain.PlatformShopify,
	}
}

func TestResolveReplacesKnownAndKeepsUnknownTokens(t *testing.T) {
	got := Resolve("Hi {{customerName}}, order {{orderNumber}} ready. {{unknownToken}}", testOrder())
	assert.Equal(t, "Hi John Doe, order #1001 ready. {{unknownToken}}", got)
}

func TestResolveAllPlaceholders(t *testing.T) {
	tmpl := "{{orderNumber}}|{{customerName}}|{{customerEmail}}|{{orderDate}}|{{totalAmount}}|" +
		"{{currency}}|{{status}}|{{shippingAddress}}|{{billingAddress}}|{{paymentMethod}}|{{itemsSummary}}"

	got := Resolve(tmpl, testOrder())
	assert.Equal(t,
		"#1001|John Doe|john.doe@example.com|3/5/2024|35.00|USD|processing|"+
			"123 Main St, Anytown, USA|456 Commerce Rd, Shopville, USA|Shopify Payments|"+
			"Widget (Qty: 2), Gadget (Qty: 1)",
		got)
}

func TestResolveTotalAmountTwoDecimals(t *testing.T) {
	order := testOrder()

	order.TotalAmount = 35
	assert.Equal(t, "35.00", Resolve("{{totalAmount}}", order))

	order.TotalAmount = 19.999
	assert.Equal(t, "20.00", Resolve("{{totalAmount}}", order))

	// Half-up at the second decimal
	order.TotalAmount = 0.125
	assert.Equal(t, "0.13", Resolve("{{totalAmount}}", order))
}

func TestResolveStatusUsesRawKey(t *testing.T) {
	order := testOrder()
	order.Status = domain.OrderStatusOnHold

	// The raw key, not the "On Hold" label
	assert.Equal(t, "on-hold", Resolve("{{status}}", order))
}

func TestResolveItemsSummary(t *testing.T) {
	order := testOrder()
	assert.Equal(t, "Widget (Qty: 2), Gadget (Qty: 1)", Resolve("{{itemsSummary}}", order))

	order.Items = nil
	assert.Equal(t, "", Resolve("{{itemsSummary}}", order))
}

func TestResolveRepeatedTokens(t *testing.T) {
	got := Resolve("{{orderNumber}} {{orderNumber}} {{orderNumber}}", testOrder())
	assert.Equal(t, "#1001 #1001 #1001", got)
}

func TestResolveIdempotentWithoutPlaceholders(t *testing.T) {
	plain := "Thanks for shopping with us."
	assert.Equal(t, plain, Resolve(plain, testOrder()))
	assert.Equal(t, plain, Resolve(Resolve(plain, testOrder()), testOrder()))
}
