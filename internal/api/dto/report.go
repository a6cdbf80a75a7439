package dto

import (
	"fmt"
	"iter"
	"time"

	"github.com/orderpulse/orderpulse/internal/domain/report"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/types"
	"github.com/orderpulse/orderpulse/internal/validator"
)

// calendarDateFormat is the wire format for start_date and end_date.
const calendarDateFormat = "2006-01-02"

// GenerateReportRequest carries the query parameters of the user orders
// report endpoint. Validate must be called before the accessors.
type GenerateReportRequest struct {
	StartDate string       `form:"start_date" validate:"required"`
	EndDate   string       `form:"end_date" validate:"omitempty"`
	Period    types.Period `form:"period" validate:"omitempty,oneof=daily weekly monthly"`
	Page      int          `form:"page" validate:"omitempty,min=1"`

	start        time.Time
	end          time.Time
	endDefaulted bool
	period       types.Period
	page         int
}

// Validate parses and validates the raw query parameters. It runs
// synchronously before any store access; an invalid range never reaches
// the aggregator.
func (r *GenerateReportRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.StartDate == "" {
		return ierr.NewError("start date is required").
			WithHint("start_date is a required query parameter").
			Mark(ierr.ErrValidation)
	}

	start, err := time.ParseInLocation(calendarDateFormat, r.StartDate, time.UTC)
	if err != nil {
		return ierr.WithError(err).
			WithHint("start_date must be a calendar date (YYYY-MM-DD)").
			WithReportableDetails(map[string]interface{}{
				"start_date": r.StartDate,
			}).
			Mark(ierr.ErrValidation)
	}
	r.start = start

	if r.EndDate != "" {
		end, err := time.ParseInLocation(calendarDateFormat, r.EndDate, time.UTC)
		if err != nil {
			return ierr.WithError(err).
				WithHint("end_date must be a calendar date (YYYY-MM-DD)").
				WithReportableDetails(map[string]interface{}{
					"end_date": r.EndDate,
				}).
				Mark(ierr.ErrValidation)
		}
		if end.Before(start) {
			return ierr.NewError("end must be >= start").
				WithHint("end_date must not be before start_date").
				WithReportableDetails(map[string]interface{}{
					"start_date": r.StartDate,
					"end_date":   r.EndDate,
				}).
				Mark(ierr.ErrValidation)
		}
		// Normalize to the end-of-day instant so the final window fully
		// includes the requested end date.
		r.end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	} else {
		r.end = time.Now().UTC()
		r.endDefaulted = true
	}

	r.period = r.Period
	if r.period == "" {
		r.period = types.DefaultPeriod
	}
	if err := r.period.Validate(); err != nil {
		return err
	}

	r.page = r.Page
	if r.page == 0 {
		r.page = types.DefaultPage
	}
	if r.page < 1 {
		return ierr.NewError("page must be >= 1").
			WithHint("page must be a positive integer").
			WithReportableDetails(map[string]interface{}{
				"page": r.Page,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// StartTime returns the parsed start instant.
func (r *GenerateReportRequest) StartTime() time.Time { return r.start }

// EndTime returns the parsed, end-of-day-normalized end instant.
func (r *GenerateReportRequest) EndTime() time.Time { return r.end }

// GetPeriod returns the validated period, defaulted to weekly.
func (r *GenerateReportRequest) GetPeriod() types.Period { return r.period }

// GetPage returns the validated page number, defaulted to 1.
func (r *GenerateReportRequest) GetPage() int { return r.page }

// CacheKey derives a cache key from the validated request parameters.
// A defaulted end keys on "now" rather than the resolved instant, so
// repeated open-ended requests share an entry within the cache TTL.
func (r *GenerateReportRequest) CacheKey() string {
	endKey := "now"
	if !r.endDefaulted {
		endKey = r.end.Format(calendarDateFormat)
	}
	return fmt.Sprintf("report:user-orders:%s:%s:%s:page=%d",
		r.start.Format(calendarDateFormat),
		endKey,
		r.period,
		r.page,
	)
}

// ReportRowResponse is the wire representation of a single report row.
// Monetary amounts serialize as decimal strings with two fractional
// digits.
type ReportRowResponse struct {
	Period            string `json:"period"`
	NewUsers          int    `json:"new_users"`
	ActivatedUsers    int    `json:"activated_users"`
	OrdersCount       int    `json:"orders_count"`
	OrderItem1Count   int    `json:"orderitem1_count"`
	OrderItem1Amount  string `json:"orderitem1_amount"`
	OrderItem2Count   int    `json:"orderitem2_count"`
	OrderItem2Amount  string `json:"orderitem2_amount"`
	OrdersTotalAmount string `json:"orders_total_amount"`
}

// NewReportRowResponse converts a domain row to its wire representation.
func NewReportRowResponse(row *report.ReportRow) *ReportRowResponse {
	return &ReportRowResponse{
		Period:            row.Period,
		NewUsers:          row.NewUsers,
		ActivatedUsers:    row.ActivatedUsers,
		OrdersCount:       row.OrdersCount,
		OrderItem1Count:   row.ItemCount,
		OrderItem1Amount:  row.ItemAmount.StringFixed(2),
		OrderItem2Count:   row.PlacementCount,
		OrderItem2Amount:  row.PlacementAmount.StringFixed(2),
		OrdersTotalAmount: row.TotalAmount().StringFixed(2),
	}
}

// PaginatedReportResponse is the paginated envelope returned by the
// report endpoint.
type PaginatedReportResponse struct {
	Count    int                  `json:"count"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	HasMore  bool                 `json:"has_more"`
	Results  []*ReportRowResponse `json:"results"`
}

// PaginateReportRows consumes the lazy row sequence just far enough to
// fill the requested page, plus one row to detect whether more pages
// exist. Rows beyond that are never computed.
func PaginateReportRows(rows iter.Seq2[*report.ReportRow, error], page, pageSize int) (*PaginatedReportResponse, error) {
	skip := (page - 1) * pageSize
	resp := &PaginatedReportResponse{
		Page:     page,
		PageSize: pageSize,
		Results:  make([]*ReportRowResponse, 0, pageSize),
	}

	idx := 0
	for row, err := range rows {
		if err != nil {
			return nil, err
		}
		if idx >= skip+pageSize {
			resp.HasMore = true
			break
		}
		if idx >= skip {
			resp.Results = append(resp.Results, NewReportRowResponse(row))
		}
		idx++
	}

	resp.Count = len(resp.Results)
	return resp, nil
}
