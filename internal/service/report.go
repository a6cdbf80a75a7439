package service

import (
	"context"
	"iter"

	"github.com/orderpulse/orderpulse/internal/api/dto"
	"github.com/orderpulse/orderpulse/internal/domain/report"
)

// ReportService generates user signup and order activity reports.
type ReportService interface {
	// GenerateUserOrdersReport validates the request and returns a lazy
	// sequence of report rows in ascending window order. Rows are
	// computed one store round trip at a time as the sequence is
	// consumed; a caller that stops consuming stops the computation. A
	// window aggregation failure is yielded once and terminates the
	// sequence.
	GenerateUserOrdersReport(ctx context.Context, req *dto.GenerateReportRequest) (iter.Seq2[*report.ReportRow, error], error)
}

type reportService struct {
	ServiceParams
}

// NewReportService creates a new report service
func NewReportService(params ServiceParams) ReportService {
	return &reportService{
		ServiceParams: params,
	}
}

func (s *reportService) GenerateUserOrdersReport(ctx context.Context, req *dto.GenerateReportRequest) (iter.Seq2[*report.ReportRow, error], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	windows, err := report.Windows(req.StartTime(), req.EndTime(), req.GetPeriod())
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("generating user orders report",
		"start", req.StartTime(),
		"end", req.EndTime(),
		"period", req.GetPeriod(),
	)

	return func(yield func(*report.ReportRow, error) bool) {
		for w := range windows {
			stats, err := s.StatsRepo.GetWindowStats(ctx, w.Start, w.End)
			if err != nil {
				s.Logger.Errorw("window aggregation failed",
					"window_start", w.Start,
					"window_end", w.End,
					"error", err,
				)
				yield(nil, err)
				return
			}
			if !yield(report.NewReportRow(w, stats), nil) {
				return
			}
		}
	}, nil
}
