package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/summary"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Totals(ctx context.Context, accountID *uuid.UUID, period summary.Period) (summary.Totals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN amount ELSE 0 END), 0) AS expenses
		FROM transactions
		WHERE deleted_at IS NULL AND date >= $1 AND date <= $2
	`

	args := []any{period.Start, period.End}

	if accountID != nil {
		query += " AND account_id = $3"

		args = append(args, *accountID)
	}

	var t summary.Totals
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&t.Income, &t.Expenses); err != nil {
		return summary.Totals{}, fmt.Errorf("summing period: %w", err)
	}

	return t, nil
}

func (s *Store) ActiveDays(ctx context.Context, accountID *uuid.UUID, period summary.Period) ([]summary.DayTotals, error) {
	query := `
		SELECT
			date,
			COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN amount ELSE 0 END), 0) AS expenses
		FROM transactions
		WHERE deleted_at IS NULL AND date >= $1 AND date <= $2
	`

	args := []any{period.Start, period.End}

	if accountID != nil {
		query += " AND account_id = $3"

		args = append(args, *accountID)
	}

	query += " GROUP BY date ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing active days: %w", err)
	}
	defer rows.Close()

	var days []summary.DayTotals

	for rows.Next() {
		var d summary.DayTotals
		if err := rows.Scan(&d.Date, &d.Income, &d.Expenses); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}

		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}

	return days, nil
}

// SpendingByCategory sums absolute expense amounts per category over
// the period, largest first. Uncategorized spending is one bucket.
func (s *Store) SpendingByCategory(ctx context.Context, accountID *uuid.UUID, period summary.Period) ([]summary.CategorySpend, error) {
	query := `
		SELECT
			COALESCE(c.name, 'Uncategorized') AS name,
			SUM(ABS(t.amount)) AS spent
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id AND c.deleted_at IS NULL
		WHERE t.deleted_at IS NULL AND t.amount < 0 AND t.date >= $1 AND t.date <= $2
	`

	args := []any{period.Start, period.End}

	if accountID != nil {
		query += " AND t.account_id = $3"

		args = append(args, *accountID)
	}

	query += " GROUP BY name ORDER BY spent DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing categories: %w", err)
	}
	defer rows.Close()

	var categories []summary.CategorySpend

	for rows.Next() {
		var c summary.CategorySpend
		if err := rows.Scan(&c.Name, &c.Amount); err != nil {
			return nil, fmt.Errorf("scanning category spend: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category spend: %w", err)
	}

	return categories, nil
}
