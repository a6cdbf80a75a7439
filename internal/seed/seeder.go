package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/types"

	"github.com/shopspring/decimal"
)

// Params controls the volume of generated data.
type Params struct {
	Users         int
	OrdersPerUser int
	ItemsPerOrder int
	DaysBack      int
	Seed          int64
}

// DefaultParams mirrors the volumes used for load testing: 1000 users,
// 50 orders each, 10 items of each kind per order.
func DefaultParams() Params {
	return Params{
		Users:         1000,
		OrdersPerUser: 50,
		ItemsPerOrder: 10,
		DaysBack:      365,
		Seed:          time.Now().UnixNano(),
	}
}

// Summary reports what was written.
type Summary struct {
	Users      int
	Orders     int
	Items      int
	Placements int
	Elapsed    time.Duration
}

// Seeder populates the store with random users, orders and items for
// pressure-testing report generation.
type Seeder struct {
	logger    *logger.Logger
	userRepo  user.Repository
	orderRepo order.Repository
}

// NewSeeder creates a new seeder
func NewSeeder(log *logger.Logger, userRepo user.Repository, orderRepo order.Repository) *Seeder {
	return &Seeder{
		logger:    log,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// Run generates and inserts the configured volume of data. Signup and
// creation instants are spread uniformly over the trailing DaysBack days;
// prices are random two-decimal amounts.
func (s *Seeder) Run(ctx context.Context, params Params) (*Summary, error) {
	if params.Users <= 0 || params.OrdersPerUser < 0 || params.ItemsPerOrder < 0 {
		return nil, ierr.NewError("invalid seed parameters").
			WithHint("users must be positive; orders and items must be non-negative").
			Mark(ierr.ErrValidation)
	}

	rng := rand.New(rand.NewSource(params.Seed))
	now := time.Now().UTC()
	started := time.Now()

	randInstant := func() time.Time {
		return now.AddDate(0, 0, -rng.Intn(params.DaysBack+1))
	}
	randMoney := func(min, max int) decimal.Decimal {
		v := float64(min) + rng.Float64()*float64(max-min)
		return decimal.NewFromFloat(v).Round(2)
	}

	s.logger.Infow("seeding users", "count", params.Users)
	users := make([]*user.User, 0, params.Users)
	for i := 0; i < params.Users; i++ {
		users = append(users, &user.User{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
			Username:  fmt.Sprintf("user_%d", i),
			Email:     fmt.Sprintf("user_%d@example.com", i),
			IsActive:  true,
			CreatedAt: randInstant(),
		})
	}
	if err := s.userRepo.BulkCreate(ctx, users); err != nil {
		return nil, err
	}

	s.logger.Infow("seeding orders", "count", params.Users*params.OrdersPerUser)
	orders := make([]*order.Order, 0, params.Users*params.OrdersPerUser)
	for _, u := range users {
		for j := 0; j < params.OrdersPerUser; j++ {
			orders = append(orders, &order.Order{
				ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
				UserID:    u.ID,
				CreatedAt: randInstant(),
			})
		}
	}
	if err := s.orderRepo.BulkCreateOrders(ctx, orders); err != nil {
		return nil, err
	}

	s.logger.Infow("seeding order items and placements",
		"per_order", params.ItemsPerOrder,
		"orders", len(orders),
	)
	items := make([]*order.Item, 0, len(orders)*params.ItemsPerOrder)
	placements := make([]*order.Placement, 0, len(orders)*params.ItemsPerOrder)
	for _, o := range orders {
		for k := 0; k < params.ItemsPerOrder; k++ {
			ts := randInstant()
			items = append(items, &order.Item{
				ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_ITEM),
				OrderID:   o.ID,
				Price:     randMoney(1, 500),
				CreatedAt: ts,
			})
			placements = append(placements, &order.Placement{
				ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_PLACEMENT),
				OrderID:        o.ID,
				PlacementPrice: randMoney(10, 300),
				ArticlePrice:   randMoney(5, 200),
				CreatedAt:      ts,
			})
		}
	}
	if err := s.orderRepo.BulkCreateItems(ctx, items); err != nil {
		return nil, err
	}
	if err := s.orderRepo.BulkCreatePlacements(ctx, placements); err != nil {
		return nil, err
	}

	summary := &Summary{
		Users:      len(users),
		Orders:     len(orders),
		Items:      len(items),
		Placements: len(placements),
		Elapsed:    time.Since(started),
	}
	s.logger.Infow("database fully seeded",
		"users", summary.Users,
		"orders", summary.Orders,
		"items", summary.Items,
		"placements", summary.Placements,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}
