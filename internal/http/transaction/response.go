package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/transaction"
)

type transactionResponse struct {
	ID         uuid.UUID  `json:"id"`
	AccountID  uuid.UUID  `json:"account_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Amount     int64      `json:"amount"`
	Payee      string     `json:"payee"`
	Notes      string     `json:"notes,omitempty"`
	Date       string     `json:"date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		CategoryID: tx.CategoryID,
		Amount:     tx.Amount,
		Payee:      tx.Payee,
		Notes:      tx.Notes,
		Date:       tx.Date.Format(time.DateOnly),
		CreatedAt:  tx.CreatedAt,
		UpdatedAt:  tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
