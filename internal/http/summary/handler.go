package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type dayResponse struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

type categorySpendResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type summaryResponse struct {
	From            string                  `json:"from"`
	To              string                  `json:"to"`
	Income          int64                   `json:"income"`
	Expenses        int64                   `json:"expenses"`
	Remaining       int64                   `json:"remaining"`
	IncomeChange    float64                 `json:"income_change"`
	ExpensesChange  float64                 `json:"expenses_change"`
	RemainingChange float64                 `json:"remaining_change"`
	Days            []dayResponse           `json:"days"`
	Categories      []categorySpendResponse `json:"categories"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	period := summary.DefaultPeriod(time.Now())

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}

		period.Start = t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}

		period.End = t
	}

	var accountID *uuid.UUID

	if s := r.URL.Query().Get("account_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid account_id", http.StatusBadRequest)
			return
		}

		accountID = new(id)
	}

	sum, err := h.svc.Get(r.Context(), accountID, period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		From:            sum.Period.Start.Format(time.DateOnly),
		To:              sum.Period.End.Format(time.DateOnly),
		Income:          sum.Totals.Income,
		Expenses:        sum.Totals.Expenses,
		Remaining:       sum.Totals.Remaining(),
		IncomeChange:    sum.IncomeChange,
		ExpensesChange:  sum.ExpensesChange,
		RemainingChange: sum.RemainingChange,
		Days:            make([]dayResponse, 0, len(sum.Days)),
		Categories:      make([]categorySpendResponse, 0, len(sum.Categories)),
	}

	for _, c := range sum.Categories {
		resp.Categories = append(resp.Categories, categorySpendResponse{
			Name:   c.Name,
			Amount: c.Amount,
		})
	}

	for _, d := range sum.Days {
		resp.Days = append(resp.Days, dayResponse{
			Date:     d.Date.Format(time.DateOnly),
			Income:   d.Income,
			Expenses: d.Expenses,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
