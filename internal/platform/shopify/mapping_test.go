package shopify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storeconnect/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestMapOrder(t *testing.T) {
	so := shopifyOrder{
		ID:              450789469,
		Name:            "#1001",
		Email:           "bob@example.com",
		CreatedAt:       "2024-03-05T10:30:00-05:00",
		FinancialStatus: "paid",
		Currency:        "USD",
		TotalPrice:      "35.00",
		Gateway:         "shopify_payments",
		Customer: shopifyCustomer{
			FirstName: "Bob",
			LastName:  "Norman",
			Email:     "bob+customer@example.com",
		},
		ShippingAddress: &shopifyAddress{
			Address1: "123 Main St",
			City:     "Springfield",
			Province: "IL",
			Zip:      "62704",
			Country:  "US",
			Phone:    "+1 555-123-4567",
		},
		LineItems: []shopifyLineItem{
			{ID: 1, Title: "Widget", Quantity: 2, Price: "10.00"},
			{ID: 2, Title: "Gadget", Quantity: 1, Price: "15.00"},
		},
	}

	order := mapOrder(so)

	assert.Equal(t, "450789469", order.ID)
	assert.Equal(t, "#1001", order.OrderNumber)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, "Bob Norman", order.CustomerName)
	assert.Equal(t, "bob@example.com", order.CustomerEmail, "order-level email wins over the customer record")
	assert.Equal(t, 35.0, order.TotalAmount)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "shopify_payments", order.PaymentMethod)
	assert.Equal(t, domain.PlatformShopify, order.Platform)
	assert.Equal(t, "123 Main St, Springfield, IL, 62704, US, +1 555-123-4567", order.ShippingAddress)
	assert.Equal(t, "", order.BillingAddress)

	wantDate, _ := time.Parse(time.RFC3339, "2024-03-05T10:30:00-05:00")
	assert.True(t, order.OrderDate.Equal(wantDate))

	assert.Len(t, order.Items, 2)
	assert.Equal(t, domain.OrderItem{ID: "1", Name: "Widget", Quantity: 2, Price: 10}, order.Items[0])
}

func TestMapOrderFallsBackToCustomerEmail(t *testing.T) {
	order := mapOrder(shopifyOrder{Customer: shopifyCustomer{Email: "only@example.com"}})
	assert.Equal(t, "only@example.com", order.CustomerEmail)
}

func TestDeriveStatus(t *testing.T) {
	fulfilled := "fulfilled"
	tests := []struct {
		name  string
		order shopifyOrder
		want  domain.OrderStatus
	}{
		{
			"status tag wins over everything",
			shopifyOrder{Tags: "vip, status:on-hold", FinancialStatus: "paid", FulfillmentStatus: &fulfilled},
			domain.OrderStatusOnHold,
		},
		{
			"invalid status tag is ignored",
			shopifyOrder{Tags: "status:nonsense", FinancialStatus: "paid"},
			domain.OrderStatusProcessing,
		},
		{
			"cancelled_at set",
			shopifyOrder{CancelledAt: strPtr("2024-03-06T00:00:00Z"), FinancialStatus: "paid"},
			domain.OrderStatusCancelled,
		},
		{
			"refunded",
			shopifyOrder{FinancialStatus: "refunded"},
			domain.OrderStatusRefunded,
		},
		{
			"partially refunded",
			shopifyOrder{FinancialStatus: "partially_refunded"},
			domain.OrderStatusRefunded,
		},
		{
			"voided",
			shopifyOrder{FinancialStatus: "voided"},
			domain.OrderStatusFailed,
		},
		{
			"payment pending",
			shopifyOrder{FinancialStatus: "pending"},
			domain.OrderStatusPending,
		},
		{
			"fulfilled",
			shopifyOrder{FinancialStatus: "paid", FulfillmentStatus: &fulfilled},
			domain.OrderStatusShipped,
		},
		{
			"paid but unfulfilled",
			shopifyOrder{FinancialStatus: "paid"},
			domain.OrderStatusProcessing,
		},
		{
			"nothing known",
			shopifyOrder{},
			domain.OrderStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(tt.order))
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "my-store.myshopify.com", normalizeDomain("https://my-store.myshopify.com/"))
	assert.Equal(t, "my-store.myshopify.com", normalizeDomain("my-store.myshopify.com"))
}
