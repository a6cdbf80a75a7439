package postgres

import (
	"context"
	"fmt"
	"strings"

	domainOrder "github.com/orderpulse/orderpulse/internal/domain/order"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"

	"github.com/samber/lo"
)

type orderRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(client postgres.IClient, logger *logger.Logger) domainOrder.Repository {
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

// BulkCreateOrders inserts orders in chunked multi-row statements.
func (r *orderRepository) BulkCreateOrders(ctx context.Context, orders []*domainOrder.Order) error {
	for _, chunk := range lo.Chunk(orders, insertBatchSize) {
		var (
			sb   strings.Builder
			args []interface{}
		)
		sb.WriteString("INSERT INTO orders (id, user_id, created_at) VALUES ")
		for i, o := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 3
			fmt.Fprintf(&sb, "($%d, $%d, $%d)", base+1, base+2, base+3)
			args = append(args, o.ID, o.UserID, o.CreatedAt)
		}

		if _, err := r.client.ExecContext(ctx, sb.String(), args...); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to bulk insert orders").
				WithReportableDetails(map[string]interface{}{
					"batch_size": len(chunk),
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	r.logger.Debugw("bulk created orders", "count", len(orders))
	return nil
}

// BulkCreateItems inserts single-price line items in chunked multi-row statements.
func (r *orderRepository) BulkCreateItems(ctx context.Context, items []*domainOrder.Item) error {
	for _, chunk := range lo.Chunk(items, insertBatchSize) {
		var (
			sb   strings.Builder
			args []interface{}
		)
		sb.WriteString("INSERT INTO order_items (id, order_id, price, created_at) VALUES ")
		for i, it := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 4
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
			args = append(args, it.ID, it.OrderID, it.Price, it.CreatedAt)
		}

		if _, err := r.client.ExecContext(ctx, sb.String(), args...); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to bulk insert order items").
				WithReportableDetails(map[string]interface{}{
					"batch_size": len(chunk),
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	r.logger.Debugw("bulk created order items", "count", len(items))
	return nil
}

// BulkCreatePlacements inserts two-component line items in chunked multi-row statements.
func (r *orderRepository) BulkCreatePlacements(ctx context.Context, placements []*domainOrder.Placement) error {
	for _, chunk := range lo.Chunk(placements, insertBatchSize) {
		var (
			sb   strings.Builder
			args []interface{}
		)
		sb.WriteString("INSERT INTO order_placements (id, order_id, placement_price, article_price, created_at) VALUES ")
		for i, p := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 5
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
			args = append(args, p.ID, p.OrderID, p.PlacementPrice, p.ArticlePrice, p.CreatedAt)
		}

		if _, err := r.client.ExecContext(ctx, sb.String(), args...); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to bulk insert order placements").
				WithReportableDetails(map[string]interface{}{
					"batch_size": len(chunk),
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	r.logger.Debugw("bulk created order placements", "count", len(placements))
	return nil
}
