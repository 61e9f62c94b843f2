package importer

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// dateFormatDayFirst is tried before the ISO form. Ambiguous strings
	// like "03/04/2024" are therefore read day-first (3 April), never
	// month-first. This mirrors the statement exports we ingest; see the
	// pinned cases in normalize_test.go before changing the order.
	dateFormatDayFirst = "02/01/2006"
	dateFormatISO      = "2006-01-02"
)

// NormalizeDate parses a statement date as DD/MM/YYYY, falling back to
// YYYY-MM-DD, and returns the canonical YYYY-MM-DD form. Strings that
// match neither format (or name an impossible calendar date) return
// ErrNoDateMatch.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(dateFormatDayFirst, s)
	if err != nil {
		t, err = time.Parse(dateFormatISO, s)
	}

	if err != nil {
		return "", ErrNoDateMatch
	}

	return t.Format(dateFormatISO), nil
}

var thousand = decimal.NewFromInt(1000)

// ToMiliunits parses a decimal amount string into signed miliunits
// (value times 1000), rounding half away from zero: "12.345" -> 12345,
// "-7.5" -> -7500. The input must already use '.' as the decimal
// separator. Non-numeric input returns ErrNoAmountMatch.
func ToMiliunits(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNoAmountMatch
	}

	return d.Mul(thousand).Round(0).IntPart(), nil
}

// FromMiliunits converts a miliunit amount back to its decimal value.
// FromMiliunits(ToMiliunits(x)) round-trips for any integer miliunit x.
func FromMiliunits(v int64) decimal.Decimal {
	return decimal.NewFromInt(v).Div(thousand)
}
