package platform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// FixtureSource is a deterministic in-memory order source used for demo
// mode and tests. Every call with the same platform tag yields the same
// order set, so listings and generated messages are reproducible.
type FixtureSource struct {
	platform domain.Platform

	mu     sync.Mutex
	orders []domain.Order
}

// NewFixtureSource creates a fixture source for the given platform tag
func NewFixtureSource(platform domain.Platform) *FixtureSource {
	return &FixtureSource{
		platform: platform,
		orders:   FixtureOrders(platform),
	}
}

func (s *FixtureSource) Platform() domain.Platform {
	return s.platform
}

func (s *FixtureSource) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *FixtureSource) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "order", ID: orderID}
}

func (s *FixtureSource) TestConnection(ctx context.Context) error {
	return nil
}

// FixtureOrders builds the deterministic demo order set for a platform
func FixtureOrders(platform domain.Platform) []domain.Order {
	prefix := "S"
	payment := "Shopify Payments"
	if platform == domain.PlatformWooCommerce {
		prefix = "W"
		payment = "Credit Card (Stripe)"
	}

	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	statuses := domain.AllOrderStatuses

	orders := make([]domain.Order, 0, 12)
	for i := 1; i <= 12; i++ {
		status := statuses[(i-1)%len(statuses)]
		items := []domain.OrderItem{
			{
				ID:       fmt.Sprintf("item-%s-%d-1", platform, i),
				Name:     fmt.Sprintf("Product %c", 'A'+(i-1)%26),
				Quantity: 1 + (i % 3),
				Price:    9.99 + float64(i),
			},
		}
		if i%2 == 0 {
			items = append(items, domain.OrderItem{
				ID:       fmt.Sprintf("item-%s-%d-2", platform, i),
				Name:     fmt.Sprintf("Accessory %c", 'A'+(i-1)%26),
				Quantity: 1,
				Price:    4.50,
			})
		}

		total := 0.0
		for _, item := range items {
			total += item.Price * float64(item.Quantity)
		}

		shipping := fmt.Sprintf("%d Main St, Anytown, USA", 100+i)
		if i%3 == 0 {
			shipping = fmt.Sprintf("%d Main St, Anytown, USA, +1 555-123-45%02d", 100+i, 10+i)
		}

		orders = append(orders, domain.Order{
			ID:              fmt.Sprintf("%s-order-%d", platform, i),
			OrderNumber:     fmt.Sprintf("#%s%d", prefix, 1000+i),
			Status:          status,
			CustomerName:    fmt.Sprintf("Customer %c %c", 'A'+(i-1)%10, 'a'+(i-1)%10),
			CustomerEmail:   fmt.Sprintf("customer%d@example.com", i),
			OrderDate:       base.AddDate(0, 0, -i),
			Items:           items,
			TotalAmount:     total,
			ShippingAddress: shipping,
			BillingAddress:  fmt.Sprintf("%d Commerce Rd, Shopville, USA", 200+i),
			PaymentMethod:   payment,
			Currency:        "USD",
			Platform:        platform,
		})
	}
	return orders
}
