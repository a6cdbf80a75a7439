package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/report"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
)

// InMemoryReportStore implements report.StatsRepository, user.Repository
// and order.Repository against in-memory state, mirroring the aggregate
// semantics of the SQL repository: window population by signup instant,
// order/item aggregates scoped by population membership only.
type InMemoryReportStore struct {
	mu         sync.RWMutex
	users      []*user.User
	orders     []*order.Order
	items      []*order.Item
	placements []*order.Placement
	orderUser  map[string]string
}

// NewInMemoryReportStore creates a new in-memory report store
func NewInMemoryReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{
		orderUser: make(map[string]string),
	}
}

// Clear removes all stored data.
func (s *InMemoryReportStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.orders = nil
	s.items = nil
	s.placements = nil
	s.orderUser = make(map[string]string)
}

// BulkCreate implements user.Repository.
func (s *InMemoryReportStore) BulkCreate(_ context.Context, users []*user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return err
		}
		s.users = append(s.users, u)
	}
	return nil
}

// Count implements user.Repository.
func (s *InMemoryReportStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// BulkCreateOrders implements order.Repository.
func (s *InMemoryReportStore) BulkCreateOrders(_ context.Context, orders []*order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		s.orders = append(s.orders, o)
		s.orderUser[o.ID] = o.UserID
	}
	return nil
}

// BulkCreateItems implements order.Repository.
func (s *InMemoryReportStore) BulkCreateItems(_ context.Context, items []*order.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if _, ok := s.orderUser[it.OrderID]; !ok {
			return ierr.NewError("order not found for item").
				WithReportableDetails(map[string]interface{}{
					"order_id": it.OrderID,
				}).
				Mark(ierr.ErrNotFound)
		}
		s.items = append(s.items, it)
	}
	return nil
}

// BulkCreatePlacements implements order.Repository.
func (s *InMemoryReportStore) BulkCreatePlacements(_ context.Context, placements []*order.Placement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range placements {
		if _, ok := s.orderUser[p.OrderID]; !ok {
			return ierr.NewError("order not found for placement").
				WithReportableDetails(map[string]interface{}{
					"order_id": p.OrderID,
				}).
				Mark(ierr.ErrNotFound)
		}
		s.placements = append(s.placements, p)
	}
	return nil
}

// GetWindowStats implements report.StatsRepository.
func (s *InMemoryReportStore) GetWindowStats(_ context.Context, windowStart, windowEnd time.Time) (*report.WindowStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	population := make(map[string]bool)
	stats := report.NewWindowStats()

	for _, u := range s.users {
		if inWindow(u.CreatedAt, windowStart, windowEnd) {
			population[u.ID] = true
			stats.NewUsers++
			if u.IsActive {
				stats.ActivatedUsers++
			}
		}
	}

	for _, o := range s.orders {
		if population[o.UserID] {
			stats.OrdersCount++
		}
	}

	for _, it := range s.items {
		if population[s.orderUser[it.OrderID]] {
			stats.ItemCount++
			stats.ItemAmount = stats.ItemAmount.Add(it.Amount())
		}
	}

	for _, p := range s.placements {
		if population[s.orderUser[p.OrderID]] {
			stats.PlacementCount++
			stats.PlacementAmount = stats.PlacementAmount.Add(p.Amount())
		}
	}

	return stats, nil
}

// inWindow implements the half-open [start, end) population predicate.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
