package report

import (
	"github.com/shopspring/decimal"
)

// WindowStats holds the aggregates computed for a single window's user
// population. Counts default to zero and amounts to decimal zero when the
// window has no matching rows; none of the fields is ever absent.
type WindowStats struct {
	NewUsers        int
	ActivatedUsers  int
	OrdersCount     int
	ItemCount       int
	ItemAmount      decimal.Decimal
	PlacementCount  int
	PlacementAmount decimal.Decimal
}

// NewWindowStats returns a zero-valued WindowStats with exact decimal
// zeros for the monetary fields.
func NewWindowStats() *WindowStats {
	return &WindowStats{
		ItemAmount:      decimal.Zero,
		PlacementAmount: decimal.Zero,
	}
}

// ReportRow is the per-window result of a user orders report. It is a
// plain value: constructed once per window, consumed by the caller, never
// persisted.
type ReportRow struct {
	Period          string
	NewUsers        int
	ActivatedUsers  int
	OrdersCount     int
	ItemCount       int
	ItemAmount      decimal.Decimal
	PlacementCount  int
	PlacementAmount decimal.Decimal
}

// NewReportRow builds a row for the given window from its stats.
func NewReportRow(w Window, stats *WindowStats) *ReportRow {
	return &ReportRow{
		Period:          w.Label(),
		NewUsers:        stats.NewUsers,
		ActivatedUsers:  stats.ActivatedUsers,
		OrdersCount:     stats.OrdersCount,
		ItemCount:       stats.ItemCount,
		ItemAmount:      stats.ItemAmount,
		PlacementCount:  stats.PlacementCount,
		PlacementAmount: stats.PlacementAmount,
	}
}

// TotalAmount returns the summed amount of both item kinds, exact.
func (r *ReportRow) TotalAmount() decimal.Decimal {
	return r.ItemAmount.Add(r.PlacementAmount)
}
