package platform

import (
	"context"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// OrderSource is the order side of a storefront integration. The core only
// ever sees the domain.Order shape; which platform produced it is carried
// by the Platform discriminator.
type OrderSource interface {
	Platform() domain.Platform
	// FetchOrders returns the current order list for this storefront
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateOrderStatus sets the status of one order on the platform
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	// TestConnection verifies the stored credentials without side effects
	TestConnection(ctx context.Context) error
}
