package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction represents a financial transaction on an account.
// Amounts are stored as signed miliunits (value * 1000); negative
// amounts are expenses, positive amounts income.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Amount     int64
	Payee      string
	Notes      string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
