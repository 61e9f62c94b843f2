package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarques/centavo/internal/summary"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPercentageChange(t *testing.T) {
	type args struct {
		current  int64
		previous int64
	}

	type testCase struct {
		name string
		args args
		want float64
	}

	tests := []testCase{
		{
			name: "Growth",
			args: args{current: 150, previous: 100},
			want: 50,
		},
		{
			name: "Decline",
			args: args{current: 50, previous: 100},
			want: -50,
		},
		{
			name: "BothZero",
			args: args{current: 0, previous: 0},
			want: 0,
		},
		{
			name: "FromZero",
			args: args{current: 42, previous: 0},
			want: 100,
		},
		{
			// Expenses are negative; a smaller negative is an improvement.
			name: "NegativePrevious",
			args: args{current: -50, previous: -100},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summary.PercentageChange(tt.args.current, tt.args.previous)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestPeriod_Previous(t *testing.T) {
	p := summary.Period{Start: day(2024, 3, 1), End: day(2024, 3, 30)}

	prev := p.Previous()
	assert.Equal(t, day(2024, 2, 29), prev.End)
	assert.Equal(t, day(2024, 1, 31), prev.Start)
	assert.Equal(t, p.End.Sub(p.Start), prev.End.Sub(prev.Start))
}

func TestFillMissingDays(t *testing.T) {
	period := summary.Period{Start: day(2024, 3, 1), End: day(2024, 3, 5)}

	t.Run("FillsGapsWithZeroRows", func(t *testing.T) {
		sparse := []summary.DayTotals{
			{Date: day(2024, 3, 2), Income: 1000},
			{Date: day(2024, 3, 4), Expenses: -500},
		}

		got := summary.FillMissingDays(sparse, period)
		require.Len(t, got, 5)

		assert.Equal(t, summary.DayTotals{Date: day(2024, 3, 1)}, got[0])
		assert.Equal(t, int64(1000), got[1].Income)
		assert.Equal(t, summary.DayTotals{Date: day(2024, 3, 3)}, got[2])
		assert.Equal(t, int64(-500), got[3].Expenses)
		assert.Equal(t, summary.DayTotals{Date: day(2024, 3, 5)}, got[4])
	})

	t.Run("EmptyInputStaysEmpty", func(t *testing.T) {
		got := summary.FillMissingDays(nil, period)
		assert.Empty(t, got)
	})
}

func TestTotals_Remaining(t *testing.T) {
	totals := summary.Totals{Income: 250000, Expenses: -100000}
	assert.Equal(t, int64(150000), totals.Remaining())
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := summary.NewMockRepository(ctrl)
	svc := summary.NewService(repo)

	period := summary.Period{Start: day(2024, 3, 1), End: day(2024, 3, 30)}

	repo.EXPECT().
		Totals(gomock.Any(), gomock.Nil(), period).
		Return(summary.Totals{Income: 200000, Expenses: -50000}, nil)
	repo.EXPECT().
		Totals(gomock.Any(), gomock.Nil(), period.Previous()).
		Return(summary.Totals{Income: 100000, Expenses: -100000}, nil)
	repo.EXPECT().
		ActiveDays(gomock.Any(), gomock.Nil(), period).
		Return([]summary.DayTotals{{Date: day(2024, 3, 10), Income: 200000}}, nil)
	repo.EXPECT().
		SpendingByCategory(gomock.Any(), gomock.Nil(), period).
		Return([]summary.CategorySpend{
			{Name: "Rent", Amount: 30000},
			{Name: "Groceries", Amount: 20000},
		}, nil)

	got, err := svc.Get(context.Background(), nil, period)
	require.NoError(t, err)

	assert.Equal(t, int64(150000), got.Totals.Remaining())
	assert.InDelta(t, 100, got.IncomeChange, 0.0001)
	assert.InDelta(t, 50, got.ExpensesChange, 0.0001)
	assert.Len(t, got.Days, 30)
	assert.Len(t, got.Categories, 2)
}

func TestTopCategories(t *testing.T) {
	type args struct {
		categories []summary.CategorySpend
		limit      int
	}

	type testCase struct {
		name string
		args args
		want []summary.CategorySpend
	}

	tests := []testCase{
		{
			name: "FoldsTailIntoOther",
			args: args{
				categories: []summary.CategorySpend{
					{Name: "Rent", Amount: 50000},
					{Name: "Groceries", Amount: 30000},
					{Name: "Transport", Amount: 10000},
					{Name: "Coffee", Amount: 4000},
					{Name: "Books", Amount: 1000},
				},
				limit: 3,
			},
			want: []summary.CategorySpend{
				{Name: "Rent", Amount: 50000},
				{Name: "Groceries", Amount: 30000},
				{Name: "Transport", Amount: 10000},
				{Name: "Other", Amount: 5000},
			},
		},
		{
			name: "AtLimitStaysUntouched",
			args: args{
				categories: []summary.CategorySpend{
					{Name: "Rent", Amount: 50000},
					{Name: "Groceries", Amount: 30000},
					{Name: "Transport", Amount: 10000},
				},
				limit: 3,
			},
			want: []summary.CategorySpend{
				{Name: "Rent", Amount: 50000},
				{Name: "Groceries", Amount: 30000},
				{Name: "Transport", Amount: 10000},
			},
		},
		{
			name: "Empty",
			args: args{limit: 3},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summary.TopCategories(tt.args.categories, tt.args.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Get_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := summary.NewMockRepository(ctrl)
	svc := summary.NewService(repo)

	period := summary.DefaultPeriod(time.Now())

	repo.EXPECT().
		Totals(gomock.Any(), gomock.Nil(), period).
		Return(summary.Totals{}, errors.New("db error"))

	got, err := svc.Get(context.Background(), nil, period)
	assert.Error(t, err)
	assert.Nil(t, got)
}
