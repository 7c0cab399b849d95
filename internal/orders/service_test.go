package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/platform"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

// flakySource counts fetches and can be told to fail status updates
type flakySource struct {
	platform    domain.Platform
	orders      []domain.Order
	fetchCalls  int
	failUpdates bool
}

func (s *flakySource) Platform() domain.Platform { return s.platform }

func (s *flakySource) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	s.fetchCalls++
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *flakySource) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if s.failUpdates {
		return fmt.Errorf("upstream unavailable")
	}
	return nil
}

func (s *flakySource) TestConnection(ctx context.Context) error { return nil }

func newTestService(src platform.OrderSource) *Service {
	return NewService([]platform.OrderSource{src}, zap.NewNop())
}

func TestListFetchesOnceAndCaches(t *testing.T) {
	src := &flakySource{platform: domain.PlatformShopify, orders: makeOrders(3)}
	svc := newTestService(src)
	ctx := context.Background()

	_, err := svc.List(ctx, domain.PlatformShopify, Query{Page: 1, PageSize: 10}, false)
	require.NoError(t, err)
	_, err = svc.List(ctx, domain.PlatformShopify, Query{Page: 1, PageSize: 10}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, src.fetchCalls)

	// Forced refresh replaces the session list
	_, err = svc.List(ctx, domain.PlatformShopify, Query{Page: 1, PageSize: 10}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, src.fetchCalls)
}

func TestListUnknownPlatform(t *testing.T) {
	svc := newTestService(&flakySource{platform: domain.PlatformShopify})

	_, err := svc.List(context.Background(), domain.PlatformWooCommerce, Query{Page: 1, PageSize: 10}, false)
	require.Error(t, err)
	assert.IsType(t, &errors.ErrNotFound{}, err)
}

func TestUpdateStatusReplacesCachedCopy(t *testing.T) {
	src := &flakySource{platform: domain.PlatformShopify, orders: makeOrders(3)}
	svc := newTestService(src)
	ctx := context.Background()

	_, err := svc.List(ctx, domain.PlatformShopify, Query{Page: 1, PageSize: 10}, false)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, domain.PlatformShopify, "order-2", domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, updated.Status)

	got, err := svc.Get(ctx, domain.PlatformShopify, "order-2")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, got.Status)

	// Only the status field changed
	assert.Equal(t, "#1002", got.OrderNumber)
	assert.Equal(t, 1, src.fetchCalls, "update must not trigger a refetch")
}

func TestUpdateStatusTransportFailureLeavesCacheUntouched(t *testing.T) {
	src := &flakySource{platform: domain.PlatformShopify, orders: makeOrders(3), failUpdates: true}
	svc := newTestService(src)
	ctx := context.Background()

	_, err := svc.List(ctx, domain.PlatformShopify, Query{Page: 1, PageSize: 10}, false)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, domain.PlatformShopify, "order-1", domain.OrderStatusDelivered)
	require.Error(t, err)

	got, err := svc.Get(ctx, domain.PlatformShopify, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status, "failed update must not change state")
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	svc := newTestService(&flakySource{platform: domain.PlatformShopify, orders: makeOrders(1)})

	_, err := svc.UpdateStatus(context.Background(), domain.PlatformShopify, "order-1", "bogus")
	require.Error(t, err)
	assert.IsType(t, &errors.ErrInvalidStatus{}, err)
}

func TestFixtureSourceIsDeterministic(t *testing.T) {
	a, err := platform.NewFixtureSource(domain.PlatformShopify).FetchOrders(context.Background())
	require.NoError(t, err)
	b, err := platform.NewFixtureSource(domain.PlatformShopify).FetchOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
}
