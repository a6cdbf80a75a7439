package types

import (
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"
)

// Period is the granularity used to size report windows.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// DefaultPeriod is used when a report request does not specify one.
const DefaultPeriod = PeriodWeekly

// Validate rejects any period outside the supported set. Unknown values
// are never silently defaulted.
func (p Period) Validate() error {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return nil
	default:
		return ierr.NewErrorf("unknown period: %s", p).
			WithHint("period must be one of daily, weekly, monthly").
			WithReportableDetails(map[string]interface{}{
				"period": string(p),
			}).
			Mark(ierr.ErrValidation)
	}
}

// Step advances t by one period using calendar arithmetic. Monthly steps
// clamp to the end of the target month: adding a month to Jan 31 lands
// on Feb 29 (Feb 28 in non-leap years), never in March.
func (p Period) Step(t time.Time) (time.Time, error) {
	switch p {
	case PeriodDaily:
		return t.AddDate(0, 0, 1), nil
	case PeriodWeekly:
		return t.AddDate(0, 0, 7), nil
	case PeriodMonthly:
		return addMonthClamped(t), nil
	default:
		return time.Time{}, p.Validate()
	}
}

// addMonthClamped adds one calendar month with end-of-month clamping.
// time.Time.AddDate would normalize the overflow instead (Jan 31 + 1
// month = Mar 2/3), which splits February across two windows.
func addMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	// Day 0 of the month after next is the last day of the target month.
	if lastDay := time.Date(y, m+2, 0, 0, 0, 0, 0, t.Location()).Day(); d > lastDay {
		d = lastDay
	}
	return time.Date(y, m+1, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (p Period) String() string {
	return string(p)
}
