package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orderpulse/orderpulse/internal/api/dto"
	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/report"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/seed"
	"github.com/orderpulse/orderpulse/internal/testutil"
	"github.com/orderpulse/orderpulse/internal/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ReportService
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewReportService(ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		StatsRepo: stores.ReportStore,
		UserRepo:  stores.ReportStore,
		OrderRepo: stores.ReportStore,
	})
}

// scenarioTotals carries the expected aggregate over the whole range.
type scenarioTotals struct {
	users           int
	activated       int
	orders          int
	items           int
	itemAmount      decimal.Decimal
	placements      int
	placementAmount decimal.Decimal
}

// seedScenario populates the store with 50 users signed up over roughly
// four months starting 2024-01-01, each with orders, items and
// placements. Order timestamps are deliberately placed far outside the
// report range: aggregates are scoped by who placed them, not when.
func (s *ReportServiceSuite) seedScenario() scenarioTotals {
	ctx := context.Background()
	stores := s.GetStores()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	totals := scenarioTotals{
		itemAmount:      decimal.Zero,
		placementAmount: decimal.Zero,
	}

	var users []*user.User
	var orders []*order.Order
	var items []*order.Item
	var placements []*order.Placement

	for i := 0; i < 50; i++ {
		u := &user.User{
			ID:        fmt.Sprintf("user_%03d", i),
			Username:  fmt.Sprintf("user%03d", i),
			Email:     fmt.Sprintf("user%03d@example.com", i),
			IsActive:  i%5 != 0,
			CreatedAt: start.AddDate(0, 0, i*2).Add(time.Duration(i%24) * time.Hour),
		}
		users = append(users, u)
		totals.users++
		if u.IsActive {
			totals.activated++
		}

		for j := 0; j < 1+i%3; j++ {
			o := &order.Order{
				ID:        fmt.Sprintf("ord_%03d_%d", i, j),
				UserID:    u.ID,
				CreatedAt: time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			orders = append(orders, o)
			totals.orders++

			for k := 0; k < 2; k++ {
				price := decimal.NewFromInt(int64(i%7 + 1)).Mul(decimal.RequireFromString("0.25"))
				items = append(items, &order.Item{
					ID:        fmt.Sprintf("item_%03d_%d_%d", i, j, k),
					OrderID:   o.ID,
					Price:     price,
					CreatedAt: o.CreatedAt,
				})
				totals.items++
				totals.itemAmount = totals.itemAmount.Add(price)
			}

			p := &order.Placement{
				ID:             fmt.Sprintf("plc_%03d_%d", i, j),
				OrderID:        o.ID,
				PlacementPrice: decimal.RequireFromString("1.10"),
				ArticlePrice:   decimal.RequireFromString("0.40"),
				CreatedAt:      o.CreatedAt,
			}
			placements = append(placements, p)
			totals.placements++
			totals.placementAmount = totals.placementAmount.Add(p.Amount())
		}
	}

	s.Require().NoError(stores.ReportStore.BulkCreate(ctx, users))
	s.Require().NoError(stores.ReportStore.BulkCreateOrders(ctx, orders))
	s.Require().NoError(stores.ReportStore.BulkCreateItems(ctx, items))
	s.Require().NoError(stores.ReportStore.BulkCreatePlacements(ctx, placements))

	return totals
}

func (s *ReportServiceSuite) collectRows(req *dto.GenerateReportRequest) []*report.ReportRow {
	seq, err := s.service.GenerateUserOrdersReport(context.Background(), req)
	s.Require().NoError(err)

	var rows []*report.ReportRow
	for row, err := range seq {
		s.Require().NoError(err)
		rows = append(rows, row)
	}
	return rows
}

// Every user lands in exactly one window, so per-window rows must sum
// back to the range totals for each period granularity.
func (s *ReportServiceSuite) TestAdditivityAcrossPeriods() {
	totals := s.seedScenario()

	for _, period := range []types.Period{types.PeriodDaily, types.PeriodWeekly, types.PeriodMonthly} {
		rows := s.collectRows(&dto.GenerateReportRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-04-30",
			Period:    period,
		})
		s.Require().NotEmpty(rows, "period %s", period)

		sum := scenarioTotals{itemAmount: decimal.Zero, placementAmount: decimal.Zero}
		for _, row := range rows {
			sum.users += row.NewUsers
			sum.activated += row.ActivatedUsers
			sum.orders += row.OrdersCount
			sum.items += row.ItemCount
			sum.itemAmount = sum.itemAmount.Add(row.ItemAmount)
			sum.placements += row.PlacementCount
			sum.placementAmount = sum.placementAmount.Add(row.PlacementAmount)
		}

		s.Equal(totals.users, sum.users, "period %s", period)
		s.Equal(totals.activated, sum.activated, "period %s", period)
		s.Equal(totals.orders, sum.orders, "period %s", period)
		s.Equal(totals.items, sum.items, "period %s", period)
		s.True(totals.itemAmount.Equal(sum.itemAmount), "period %s: want %s got %s", period, totals.itemAmount, sum.itemAmount)
		s.Equal(totals.placements, sum.placements, "period %s", period)
		s.True(totals.placementAmount.Equal(sum.placementAmount), "period %s: want %s got %s", period, totals.placementAmount, sum.placementAmount)
	}
}

// Load-shaped fixture: 50 users x 50 orders x 10 items of each kind,
// seeded over the trailing 120 days, reported daily. The daily rows must
// sum to the seeded volumes exactly, and the amounts must match a single
// whole-range aggregation to the cent.
func (s *ReportServiceSuite) TestDailyAdditivityAtVolume() {
	ctx := context.Background()
	store := s.GetStores().ReportStore

	seeder := seed.NewSeeder(s.GetLogger(), store, store)
	summary, err := seeder.Run(ctx, seed.Params{
		Users:         50,
		OrdersPerUser: 50,
		ItemsPerOrder: 10,
		DaysBack:      120,
		Seed:          20240131,
	})
	s.Require().NoError(err)
	s.Require().Equal(50, summary.Users)
	s.Require().Equal(2500, summary.Orders)
	s.Require().Equal(25000, summary.Items)
	s.Require().Equal(25000, summary.Placements)

	whole, err := store.GetWindowStats(ctx,
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	s.Require().Equal(50, whole.NewUsers)

	now := time.Now().UTC()
	rows := s.collectRows(&dto.GenerateReportRequest{
		StartDate: now.AddDate(0, 0, -121).Format("2006-01-02"),
		EndDate:   now.Format("2006-01-02"),
		Period:    types.PeriodDaily,
	})
	s.Require().NotEmpty(rows)

	sum := scenarioTotals{itemAmount: decimal.Zero, placementAmount: decimal.Zero}
	for _, row := range rows {
		sum.users += row.NewUsers
		sum.activated += row.ActivatedUsers
		sum.orders += row.OrdersCount
		sum.items += row.ItemCount
		sum.itemAmount = sum.itemAmount.Add(row.ItemAmount)
		sum.placements += row.PlacementCount
		sum.placementAmount = sum.placementAmount.Add(row.PlacementAmount)
	}

	s.Equal(50, sum.users)
	s.Equal(50, sum.activated)
	s.Equal(2500, sum.orders)
	s.Equal(25000, sum.items)
	s.Equal(25000, sum.placements)
	s.True(whole.ItemAmount.Equal(sum.itemAmount), "item amount: want %s got %s", whole.ItemAmount, sum.itemAmount)
	s.True(whole.PlacementAmount.Equal(sum.placementAmount), "placement amount: want %s got %s", whole.PlacementAmount, sum.placementAmount)
}

func (s *ReportServiceSuite) TestEmptyRangeYieldsZeroRows() {
	s.seedScenario()

	// A range with no signups still emits one row per window, all zero.
	rows := s.collectRows(&dto.GenerateReportRequest{
		StartDate: "2020-01-01",
		EndDate:   "2020-01-21",
		Period:    types.PeriodWeekly,
	})
	s.Require().Len(rows, 3)
	for _, row := range rows {
		s.Zero(row.NewUsers)
		s.Zero(row.ActivatedUsers)
		s.Zero(row.OrdersCount)
		s.Zero(row.ItemCount)
		s.True(row.ItemAmount.IsZero())
		s.Zero(row.PlacementCount)
		s.True(row.PlacementAmount.IsZero())
	}
}

func (s *ReportServiceSuite) TestRowsAscendingAndLabeled() {
	s.seedScenario()

	rows := s.collectRows(&dto.GenerateReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-03-01",
		Period:    types.PeriodWeekly,
	})
	s.Require().NotEmpty(rows)

	var prev string
	for i, row := range rows {
		s.NotEmpty(row.Period)
		if i > 0 {
			s.Greater(row.Period, prev, "labels not ascending at %d", i)
		}
		prev = row.Period
	}
}

func (s *ReportServiceSuite) TestValidationErrorBeforeSequence() {
	_, err := s.service.GenerateUserOrdersReport(context.Background(), &dto.GenerateReportRequest{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-01",
	})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

// countingStatsRepo wraps a stats repository and counts round trips,
// optionally failing from a given call onward.
type countingStatsRepo struct {
	inner  report.StatsRepository
	calls  int
	failAt int
}

func (r *countingStatsRepo) GetWindowStats(ctx context.Context, windowStart, windowEnd time.Time) (*report.WindowStats, error) {
	r.calls++
	if r.failAt > 0 && r.calls >= r.failAt {
		return nil, ierr.NewError("aggregation failed").Mark(ierr.ErrDatabase)
	}
	return r.inner.GetWindowStats(ctx, windowStart, windowEnd)
}

func (s *ReportServiceSuite) serviceWithStatsRepo(repo report.StatsRepository) ReportService {
	stores := s.GetStores()
	return NewReportService(ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		StatsRepo: repo,
		UserRepo:  stores.ReportStore,
		OrderRepo: stores.ReportStore,
	})
}

func (s *ReportServiceSuite) TestLazyEvaluation() {
	s.seedScenario()
	counting := &countingStatsRepo{inner: s.GetStores().ReportStore}
	svc := s.serviceWithStatsRepo(counting)

	seq, err := svc.GenerateUserOrdersReport(context.Background(), &dto.GenerateReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Period:    types.PeriodDaily,
	})
	s.Require().NoError(err)
	s.Zero(counting.calls, "no round trips before consumption")

	consumed := 0
	for _, err := range seq {
		s.Require().NoError(err)
		consumed++
		if consumed == 3 {
			break
		}
	}
	s.Equal(3, counting.calls, "one round trip per consumed row")
}

func (s *ReportServiceSuite) TestStoreErrorTerminatesSequence() {
	s.seedScenario()
	counting := &countingStatsRepo{inner: s.GetStores().ReportStore, failAt: 3}
	svc := s.serviceWithStatsRepo(counting)

	seq, err := svc.GenerateUserOrdersReport(context.Background(), &dto.GenerateReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Period:    types.PeriodDaily,
	})
	s.Require().NoError(err)

	var rows int
	var seqErr error
	for row, err := range seq {
		if err != nil {
			seqErr = err
			continue
		}
		s.NotNil(row)
		rows++
	}
	s.Equal(2, rows)
	s.Require().Error(seqErr)
	s.True(ierr.IsDatabase(seqErr))
	s.Equal(3, counting.calls, "sequence stops after the failing round trip")
}
