package report

import (
	"fmt"
	"iter"
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/types"
)

// Window is a half-open aggregation bucket [Start, End). The final window
// of a range is clipped to the range end and may be shorter than a full
// period.
type Window struct {
	Start time.Time
	End   time.Time
}

// Label formats the window as "{start_date} - {end_date}".
func (w Window) Label() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

// Windows returns a lazy, one-shot sequence of contiguous, non-overlapping
// windows covering [start, end]. The sequence is finite: the cursor
// strictly increases by one period per step.
//
// start is required. A zero end defaults to the current instant, which
// makes the sequence non-deterministic; callers wanting reproducible
// output should pass end explicitly. end < start is a validation error.
// start == end yields a single zero-length window.
func Windows(start, end time.Time, period types.Period) (iter.Seq[Window], error) {
	if start.IsZero() {
		return nil, ierr.NewError("start date is required").
			WithHint("A start date must be provided to generate report windows").
			Mark(ierr.ErrValidation)
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if end.Before(start) {
		return nil, ierr.NewError("end must be >= start").
			WithHint("The end date must not be before the start date").
			WithReportableDetails(map[string]interface{}{
				"start": start.Format(time.RFC3339),
				"end":   end.Format(time.RFC3339),
			}).
			Mark(ierr.ErrValidation)
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(Window) bool) {
		for cursor := start; !cursor.After(end); {
			next, err := period.Step(cursor)
			if err != nil {
				// Unreachable: period is validated above.
				return
			}
			windowEnd := next
			if windowEnd.After(end) {
				windowEnd = end
			}
			if !yield(Window{Start: cursor, End: windowEnd}) {
				return
			}
			cursor = next
		}
	}, nil
}
