package user

import "context"

// Repository defines the interface for user persistence operations
type Repository interface {
	// BulkCreate inserts users in chunked batches.
	BulkCreate(ctx context.Context, users []*User) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}
