package report

import (
	"context"
	"time"
)

// StatsRepository computes the per-window aggregates for a report.
//
// The population of a window is the set of users whose signup instant
// satisfies windowStart <= created_at < windowEnd. Order and item
// aggregates are scoped by population membership only: every order and
// item ever placed by a population user counts, regardless of the order
// or item's own creation instant.
//
// activated_users applies the active flag's current value to the
// historically-defined population, so re-running the same report later
// can return different activation counts for the same window. This is
// accepted behavior, not a defect.
type StatsRepository interface {
	// GetWindowStats executes one server-side aggregate pass for the
	// window. Implementations must not materialize individual rows.
	GetWindowStats(ctx context.Context, windowStart, windowEnd time.Time) (*WindowStats, error)
}
