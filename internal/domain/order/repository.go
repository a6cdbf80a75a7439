package order

import "context"

// Repository defines the interface for order persistence operations
type Repository interface {
	// BulkCreateOrders inserts orders in chunked batches.
	BulkCreateOrders(ctx context.Context, orders []*Order) error

	// BulkCreateItems inserts single-price line items in chunked batches.
	BulkCreateItems(ctx context.Context, items []*Item) error

	// BulkCreatePlacements inserts two-component line items in chunked batches.
	BulkCreatePlacements(ctx context.Context, placements []*Placement) error
}
