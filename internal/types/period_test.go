package types

import (
	"testing"
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodValidate(t *testing.T) {
	assert.NoError(t, PeriodDaily.Validate())
	assert.NoError(t, PeriodWeekly.Validate())
	assert.NoError(t, PeriodMonthly.Validate())

	err := Period("hourly").Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	err = Period("").Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPeriodStep(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	next, err := PeriodDaily.Step(base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), next)

	next, err = PeriodWeekly.Step(base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), next)

	next, err = PeriodMonthly.Step(base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), next)

	_, err = Period("bogus").Step(base)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPeriodStep_MonthEndClamping(t *testing.T) {
	// A month past Jan 31 is the last day of February, not a spillover
	// into March.
	cases := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "Jan 31 leap year clamps to Feb 29",
			from: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Jan 31 non-leap year clamps to Feb 28",
			from: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Mar 31 clamps to Apr 30",
			from: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Feb 29 keeps its day when it fits",
			from: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Dec 31 rolls the year",
			from: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "time of day is preserved",
			from: time.Date(2024, 1, 31, 13, 45, 30, 7, time.UTC),
			want: time.Date(2024, 2, 29, 13, 45, 30, 7, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := PeriodMonthly.Step(tc.from)
			require.NoError(t, err)
			assert.Equal(t, tc.want, next)
		})
	}
}
