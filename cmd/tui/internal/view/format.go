package view

import (
	"context"
	"time"

	"github.com/dmarques/centavo/internal/importer"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats a miliunit amount into a human-readable string.
func FormatAmount(miliunits int64) string {
	return importer.FromMiliunits(miliunits).StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
