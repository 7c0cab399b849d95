package orders

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/platform"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

const sessionTTL = gocache.NoExpiration

// Service holds the per-platform session order list. Orders are fetched
// once per platform selection and replaced wholesale on refresh; the only
// in-place mutation is the status field, via UpdateStatus.
type Service struct {
	sources map[domain.Platform]platform.OrderSource
	cache   *gocache.Cache
	mu      sync.Mutex
	logger  *zap.Logger
}

// NewService creates a new order service over the given sources
func NewService(sources []platform.OrderSource, logger *zap.Logger) *Service {
	m := make(map[domain.Platform]platform.OrderSource, len(sources))
	for _, src := range sources {
		m[src.Platform()] = src
	}
	return &Service{
		sources: m,
		cache:   gocache.New(sessionTTL, 0),
		logger:  logger,
	}
}

// Source returns the order source for a platform
func (s *Service) Source(p domain.Platform) (platform.OrderSource, error) {
	src, ok := s.sources[p]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "platform", ID: string(p)}
	}
	return src, nil
}

// sessionOrders returns the cached order list for the platform, fetching
// when nothing is cached or refresh is forced. The fetched list replaces
// the cache entry as a whole; a fetch failure leaves the prior state
// untouched.
func (s *Service) sessionOrders(ctx context.Context, p domain.Platform, refresh bool) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !refresh {
		if cached, ok := s.cache.Get(string(p)); ok {
			return cached.([]domain.Order), nil
		}
	}

	src, err := s.Source(p)
	if err != nil {
		return nil, err
	}

	fetched, err := src.FetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(string(p), fetched, sessionTTL)
	s.logger.Info("Fetched orders",
		zap.String("platform", string(p)),
		zap.Int("count", len(fetched)),
	)
	return fetched, nil
}

// List fetches (or reuses) the session order list for the platform and
// applies search, status filter, sort and pagination.
func (s *Service) List(ctx context.Context, p domain.Platform, q Query, refresh bool) (Page, error) {
	all, err := s.sessionOrders(ctx, p, refresh)
	if err != nil {
		return Page{}, err
	}
	return FilterSortPaginate(all, q), nil
}

// Get returns one order from the session list
func (s *Service) Get(ctx context.Context, p domain.Platform, orderID string) (domain.Order, error) {
	all, err := s.sessionOrders(ctx, p, false)
	if err != nil {
		return domain.Order{}, err
	}
	for _, order := range all {
		if order.ID == orderID {
			return order, nil
		}
	}
	return domain.Order{}, &errors.ErrNotFound{Resource: "order", ID: orderID}
}

// UpdateStatus pushes the new status to the platform and, only on
// success, replaces the status of the cached copy. Nothing else on the
// order is touched.
func (s *Service) UpdateStatus(ctx context.Context, p domain.Platform, orderID string, status domain.OrderStatus) (domain.Order, error) {
	if !status.IsValid() {
		return domain.Order{}, &errors.ErrInvalidStatus{Status: string(status)}
	}

	// Resolve the order first so an unknown ID never reaches the platform.
	// This also populates the session when nothing was listed yet.
	if _, err := s.Get(ctx, p, orderID); err != nil {
		return domain.Order{}, err
	}

	src, err := s.Source(p)
	if err != nil {
		return domain.Order{}, err
	}

	if err := src.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.cache.Get(string(p))
	if !ok {
		return domain.Order{}, &errors.ErrNotFound{Resource: "order", ID: orderID}
	}

	all := cached.([]domain.Order)
	updated := make([]domain.Order, len(all))
	copy(updated, all)

	var result domain.Order
	found := false
	for i := range updated {
		if updated[i].ID == orderID {
			updated[i].Status = status
			result = updated[i]
			found = true
			break
		}
	}
	if !found {
		return domain.Order{}, &errors.ErrNotFound{Resource: "order", ID: orderID}
	}

	s.cache.Set(string(p), updated, sessionTTL)
	s.logger.Info("Updated order status",
		zap.String("platform", string(p)),
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)
	return result, nil
}
