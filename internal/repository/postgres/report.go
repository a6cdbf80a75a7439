package postgres

import (
	"context"
	"time"

	"github.com/orderpulse/orderpulse/internal/domain/report"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"

	"github.com/shopspring/decimal"
)

type reportStatsRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewReportStatsRepository creates a new report stats repository
func NewReportStatsRepository(client postgres.IClient, logger *logger.Logger) report.StatsRepository {
	return &reportStatsRepository{
		client: client,
		logger: logger,
	}
}

// windowStatsQuery aggregates everything a report row needs in a single
// server-side pass: the user population is filtered by signup instant,
// and per-user order/item aggregates are joined laterally and summed.
// Order and item rows are intentionally not filtered by their own
// timestamps; membership of the owning user in the window population is
// the only scope.
const windowStatsQuery = `
SELECT
	COUNT(*)::bigint                                        AS new_users,
	COUNT(*) FILTER (WHERE u.is_active)::bigint             AS activated_users,
	COALESCE(SUM(o.orders_count), 0)::bigint                AS orders_count,
	COALESCE(SUM(li.item_count), 0)::bigint                 AS item_count,
	COALESCE(SUM(li.item_amount), 0)                        AS item_amount,
	COALESCE(SUM(pl.placement_count), 0)::bigint            AS placement_count,
	COALESCE(SUM(pl.placement_amount), 0)                   AS placement_amount
FROM users u
LEFT JOIN LATERAL (
	SELECT COUNT(*) AS orders_count
	FROM orders
	WHERE orders.user_id = u.id
) o ON TRUE
LEFT JOIN LATERAL (
	SELECT COUNT(*) AS item_count,
	       COALESCE(SUM(oi.price), 0) AS item_amount
	FROM order_items oi
	JOIN orders ord ON ord.id = oi.order_id
	WHERE ord.user_id = u.id
) li ON TRUE
LEFT JOIN LATERAL (
	SELECT COUNT(*) AS placement_count,
	       COALESCE(SUM(op.placement_price + op.article_price), 0) AS placement_amount
	FROM order_placements op
	JOIN orders ord ON ord.id = op.order_id
	WHERE ord.user_id = u.id
) pl ON TRUE
WHERE u.created_at >= $1 AND u.created_at < $2`

// GetWindowStats computes the aggregates for one window in a single
// round trip.
func (r *reportStatsRepository) GetWindowStats(ctx context.Context, windowStart, windowEnd time.Time) (*report.WindowStats, error) {
	r.logger.Debugw("computing window stats",
		"window_start", windowStart,
		"window_end", windowEnd,
	)

	var (
		newUsers        int64
		activatedUsers  int64
		ordersCount     int64
		itemCount       int64
		itemAmount      string
		placementCount  int64
		placementAmount string
	)

	row := r.client.QueryRowContext(ctx, windowStatsQuery, windowStart, windowEnd)
	if err := row.Scan(
		&newUsers,
		&activatedUsers,
		&ordersCount,
		&itemCount,
		&itemAmount,
		&placementCount,
		&placementAmount,
	); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to compute window stats").
			WithReportableDetails(map[string]interface{}{
				"window_start": windowStart.Format(time.RFC3339),
				"window_end":   windowEnd.Format(time.RFC3339),
			}).
			Mark(ierr.ErrDatabase)
	}

	itemSum, err := decimal.NewFromString(itemAmount)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid item amount returned by aggregate query").
			Mark(ierr.ErrDatabase)
	}
	placementSum, err := decimal.NewFromString(placementAmount)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid placement amount returned by aggregate query").
			Mark(ierr.ErrDatabase)
	}

	return &report.WindowStats{
		NewUsers:        int(newUsers),
		ActivatedUsers:  int(activatedUsers),
		OrdersCount:     int(ordersCount),
		ItemCount:       int(itemCount),
		ItemAmount:      itemSum,
		PlacementCount:  int(placementCount),
		PlacementAmount: placementSum,
	}, nil
}
