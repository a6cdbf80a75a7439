package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingUserRepo struct {
	users []*user.User
}

func (r *capturingUserRepo) BulkCreate(_ context.Context, users []*user.User) error {
	r.users = append(r.users, users...)
	return nil
}

func (r *capturingUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

type capturingOrderRepo struct {
	orders     []*order.Order
	items      []*order.Item
	placements []*order.Placement
}

func (r *capturingOrderRepo) BulkCreateOrders(_ context.Context, orders []*order.Order) error {
	r.orders = append(r.orders, orders...)
	return nil
}

func (r *capturingOrderRepo) BulkCreateItems(_ context.Context, items []*order.Item) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *capturingOrderRepo) BulkCreatePlacements(_ context.Context, placements []*order.Placement) error {
	r.placements = append(r.placements, placements...)
	return nil
}

func newTestSeeder(t *testing.T) (*Seeder, *capturingUserRepo, *capturingOrderRepo) {
	t.Helper()
	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)

	userRepo := &capturingUserRepo{}
	orderRepo := &capturingOrderRepo{}
	return NewSeeder(log, userRepo, orderRepo), userRepo, orderRepo
}

func TestSeederRun(t *testing.T) {
	seeder, userRepo, orderRepo := newTestSeeder(t)

	summary, err := seeder.Run(context.Background(), Params{
		Users:         10,
		OrdersPerUser: 4,
		ItemsPerOrder: 3,
		DaysBack:      30,
		Seed:          1,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Users)
	assert.Equal(t, 40, summary.Orders)
	assert.Equal(t, 120, summary.Items)
	assert.Equal(t, 120, summary.Placements)

	require.Len(t, userRepo.users, 10)
	require.Len(t, orderRepo.orders, 40)
	require.Len(t, orderRepo.items, 120)
	require.Len(t, orderRepo.placements, 120)

	earliest := time.Now().UTC().AddDate(0, 0, -31)
	for _, u := range userRepo.users {
		assert.True(t, strings.HasPrefix(u.ID, "user_"), "user id %q", u.ID)
		assert.NoError(t, u.Validate())
		assert.True(t, u.CreatedAt.After(earliest))
	}
	for _, o := range orderRepo.orders {
		assert.True(t, strings.HasPrefix(o.ID, "ord_"), "order id %q", o.ID)
	}
	for _, it := range orderRepo.items {
		assert.True(t, strings.HasPrefix(it.ID, "item_"), "item id %q", it.ID)
		assert.True(t, it.Price.IsPositive())
		assert.LessOrEqual(t, int32(-it.Price.Exponent()), int32(2), "price %s has more than 2 decimals", it.Price)
	}
	for _, p := range orderRepo.placements {
		assert.True(t, strings.HasPrefix(p.ID, "plc_"), "placement id %q", p.ID)
		assert.True(t, p.Amount().IsPositive())
	}
}

func TestSeederRunInvalidParams(t *testing.T) {
	seeder, _, _ := newTestSeeder(t)

	_, err := seeder.Run(context.Background(), Params{Users: 0})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
