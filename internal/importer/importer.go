// Package importer turns loosely structured bank statement tables into
// validated transaction batches. The user maps raw columns to semantic
// fields, the pipeline projects and normalizes each row, and rows that
// fail validation are dropped rather than imported half-formed.
package importer

import "errors"

// Field is a semantic transaction field a raw column can be mapped to.
type Field string

const (
	FieldAmount Field = "amount"
	FieldDate   Field = "date"
	FieldPayee  Field = "payee"
	FieldNotes  Field = "notes"

	// FieldSkip is the sentinel a UI sends to unmap a column.
	FieldSkip Field = "skip"
)

// RequiredFields must all be present and non-empty for a row to be importable.
var RequiredFields = []Field{FieldAmount, FieldDate, FieldPayee}

// Record is a single body row folded into field-named form.
// Blank and unmapped cells are absent.
type Record map[Field]string

// ImportedTransaction is a fully validated, normalized row ready for
// bulk persistence. Date is canonical YYYY-MM-DD; Amount is in
// miliunits (value times 1000, signed).
type ImportedTransaction struct {
	Payee  string
	Date   string
	Amount int64
	Notes  string
}

var (
	ErrNoDateMatch       = errors.New("no date format matched")
	ErrNoAmountMatch     = errors.New("amount is not a number")
	ErrMappingIncomplete = errors.New("required columns are not mapped")
	ErrNoAccountSelected = errors.New("no account selected")
	ErrNoImport          = errors.New("no import in progress")
)
