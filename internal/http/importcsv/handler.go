package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/importer"
	"github.com/dmarques/centavo/internal/transaction"
)

const maxUploadSize = 10 << 20

type Handler struct {
	txSvc *transaction.Service
}

func NewHandler(txSvc *transaction.Service) *Handler {
	return &Handler{txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Post("/submit", h.submit)
}

type tableResponse struct {
	Header []string   `json:"header"`
	Body   [][]string `json:"body"`
}

// upload parses a statement file and returns the raw table so the
// client can present the column-mapping step. Nothing is persisted.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	table, err := importer.ReadTable(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(tableResponse{
		Header: table.Header,
		Body:   table.Body,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type submitRequest struct {
	Header []string   `json:"header"`
	Body   [][]string `json:"body"`
	// Mapping is keyed by 0-based column index.
	Mapping   map[string]importer.Field `json:"mapping"`
	AccountID uuid.UUID                 `json:"account_id"`
}

type submitResponse struct {
	Imported     int                 `json:"imported"`
	Skipped      int                 `json:"skipped"`
	Transactions []importedTxPayload `json:"transactions"`
}

type importedTxPayload struct {
	ID     uuid.UUID `json:"id"`
	Payee  string    `json:"payee"`
	Date   string    `json:"date"`
	Amount int64     `json:"amount"`
	Notes  string    `json:"notes,omitempty"`
}

// submit runs the import pipeline on a mapped table and bulk creates
// the resulting batch against the chosen account.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.AccountID == uuid.Nil {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	fields := make(map[int]importer.Field, len(req.Mapping))
	cols := make([]int, 0, len(req.Mapping))

	for key, field := range req.Mapping {
		col, err := strconv.Atoi(key)
		if err != nil || col < 0 {
			http.Error(w, "invalid mapping column: "+key, http.StatusBadRequest)
			return
		}

		fields[col] = field
		cols = append(cols, col)
	}

	// Assign in column order so a field claimed twice resolves the same
	// way on every request, the highest column winning.
	sort.Ints(cols)

	mapping := importer.NewMapping()

	for _, col := range cols {
		mapping.Assign(col, fields[col])
	}

	if mapping.Progress() < len(importer.RequiredFields) {
		http.Error(w, importer.ErrMappingIncomplete.Error(), http.StatusUnprocessableEntity)
		return
	}

	table := importer.RawTable{Header: req.Header, Body: req.Body}

	batch, skipped := importer.Submit(table, mapping)

	params := make([]transaction.CreateParams, len(batch))

	for i, tx := range batch {
		date, err := time.Parse(time.DateOnly, tx.Date)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		params[i] = transaction.CreateParams{
			AccountID: req.AccountID,
			Amount:    tx.Amount,
			Payee:     tx.Payee,
			Notes:     tx.Notes,
			Date:      date,
		}
	}

	created, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := submitResponse{
		Imported:     len(created),
		Skipped:      skipped,
		Transactions: make([]importedTxPayload, 0, len(created)),
	}

	for _, tx := range created {
		resp.Transactions = append(resp.Transactions, importedTxPayload{
			ID:     tx.ID,
			Payee:  tx.Payee,
			Date:   tx.Date.Format(time.DateOnly),
			Amount: tx.Amount,
			Notes:  tx.Notes,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
