// Package summary computes period financial summaries: income, expenses
// and remaining balance for a date range, compared against the previous
// period of equal length, plus a per-day series for charting.
package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// DefaultPeriod is the last 30 days ending at now.
func DefaultPeriod(now time.Time) Period {
	end := now.Truncate(24 * time.Hour)
	return Period{Start: end.AddDate(0, 0, -30), End: end}
}

// Previous returns the period of equal length immediately before p.
func (p Period) Previous() Period {
	length := p.End.Sub(p.Start)
	prevEnd := p.Start.AddDate(0, 0, -1)

	return Period{Start: prevEnd.Add(-length), End: prevEnd}
}

// Totals holds miliunit sums for a period. Expenses is the (negative)
// sum of negative amounts; Remaining is Income + Expenses.
type Totals struct {
	Income   int64
	Expenses int64
}

func (t Totals) Remaining() int64 {
	return t.Income + t.Expenses
}

// DayTotals is one day of the chart series.
type DayTotals struct {
	Date     time.Time
	Income   int64
	Expenses int64
}

// CategorySpend is one slice of the spending breakdown. Amount is the
// positive miliunit total spent under the category.
type CategorySpend struct {
	Name   string
	Amount int64
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=summary
type Repository interface {
	Totals(ctx context.Context, accountID *uuid.UUID, period Period) (Totals, error)
	ActiveDays(ctx context.Context, accountID *uuid.UUID, period Period) ([]DayTotals, error)
	SpendingByCategory(ctx context.Context, accountID *uuid.UUID, period Period) ([]CategorySpend, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary is the dashboard payload for one period.
type Summary struct {
	Period          Period
	Totals          Totals
	IncomeChange    float64
	ExpensesChange  float64
	RemainingChange float64
	Days            []DayTotals
	Categories      []CategorySpend
}

// topCategoryCount is how many categories the breakdown names before
// folding the rest into "Other".
const topCategoryCount = 3

func (s *Service) Get(ctx context.Context, accountID *uuid.UUID, period Period) (*Summary, error) {
	current, err := s.repo.Totals(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	previous, err := s.repo.Totals(ctx, accountID, period.Previous())
	if err != nil {
		return nil, err
	}

	days, err := s.repo.ActiveDays(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.SpendingByCategory(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Period:          period,
		Totals:          current,
		IncomeChange:    PercentageChange(current.Income, previous.Income),
		ExpensesChange:  PercentageChange(current.Expenses, previous.Expenses),
		RemainingChange: PercentageChange(current.Remaining(), previous.Remaining()),
		Days:            FillMissingDays(days, period),
		Categories:      TopCategories(categories, topCategoryCount),
	}, nil
}

// TopCategories keeps the limit biggest spenders and folds the rest
// into a single "Other" entry. The input is expected sorted by amount
// descending, which is how the repository returns it.
func TopCategories(categories []CategorySpend, limit int) []CategorySpend {
	if len(categories) <= limit {
		return categories
	}

	top := make([]CategorySpend, limit, limit+1)
	copy(top, categories[:limit])

	var other int64
	for _, c := range categories[limit:] {
		other += c.Amount
	}

	return append(top, CategorySpend{Name: "Other", Amount: other})
}

// PercentageChange returns the percent change from previous to current.
// A zero previous value yields 0 when current is also zero, 100 otherwise.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}

		return 100
	}

	return float64(current-previous) / abs(float64(previous)) * 100
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}

// FillMissingDays expands a sparse day series to cover every day of the
// period, inserting zero rows for days without transactions. An empty
// input stays empty.
func FillMissingDays(days []DayTotals, period Period) []DayTotals {
	if len(days) == 0 {
		return nil
	}

	byDay := make(map[string]DayTotals, len(days))
	for _, d := range days {
		byDay[d.Date.Format(time.DateOnly)] = d
	}

	var filled []DayTotals

	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		if d, ok := byDay[day.Format(time.DateOnly)]; ok {
			filled = append(filled, d)
			continue
		}

		filled = append(filled, DayTotals{Date: day})
	}

	return filled
}
