package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarques/centavo/internal/transaction"
)

// State is the session's position in the import flow.
type State int

const (
	// StateList is the idle state: no statement is being reviewed.
	StateList State = iota
	// StateImport means an uploaded table is being mapped and reviewed.
	StateImport
)

// AccountSelector prompts the user to pick the account the whole batch
// will be booked against. The second return value is false when the
// user dismisses the prompt without choosing.
type AccountSelector interface {
	SelectAccount(ctx context.Context) (uuid.UUID, bool, error)
}

// BulkCreator persists a validated batch. The batch is atomic: on error
// nothing was written.
type BulkCreator interface {
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

//go:generate mockgen -source=session.go -destination=session_mock.go -package=importer

// Session owns one import flow at a time: upload, column mapping,
// confirmation. All mutable state (the table and the mapping) lives
// here; the pipeline itself is pure and re-run from scratch on every
// confirm.
type Session struct {
	creator  BulkCreator
	accounts AccountSelector

	state   State
	table   RawTable
	mapping *Mapping
}

func NewSession(creator BulkCreator, accounts AccountSelector) *Session {
	return &Session{
		creator:  creator,
		accounts: accounts,
		mapping:  NewMapping(),
	}
}

func (s *Session) State() State { return s.state }

// Table returns the statement currently under review.
func (s *Session) Table() RawTable { return s.table }

// Begin stores an uploaded table and moves the session into the import
// state with a fresh mapping. Uploading over an active import replaces it.
func (s *Session) Begin(table RawTable) {
	s.table = table
	s.mapping = NewMapping()
	s.state = StateImport
}

// Cancel discards the table and mapping and returns to the list state.
func (s *Session) Cancel() {
	s.table = RawTable{}
	s.mapping = NewMapping()
	s.state = StateList
}

// AssignColumn maps a raw column to a semantic field (or FieldSkip to
// unmap it). Only valid while an import is in progress.
func (s *Session) AssignColumn(col int, f Field) error {
	if s.state != StateImport {
		return ErrNoImport
	}

	s.mapping.Assign(col, f)

	return nil
}

// Field reports the field currently assigned to a column.
func (s *Session) Field(col int) (Field, bool) {
	return s.mapping.Field(col)
}

// Progress returns the number of mapped columns and the number needed
// before Confirm is allowed.
func (s *Session) Progress() (mapped, needed int) {
	return s.mapping.Progress(), len(RequiredFields)
}

// CanConfirm reports whether enough columns are mapped to proceed.
// It only guarantees the required slots are claimed; rows without
// content are still dropped during Confirm.
func (s *Session) CanConfirm() bool {
	return s.mapping.Progress() >= len(RequiredFields)
}

// Preview re-runs the pipeline on the current table and mapping
// without touching any collaborator. The pipeline is pure, so calling
// this after every mapping change is safe and cheap.
func (s *Session) Preview() ([]ImportedTransaction, int) {
	return Submit(s.table, s.mapping)
}

// Result reports the outcome of a confirmed import.
type Result struct {
	Created []*transaction.Transaction
	Skipped int
}

// Confirm runs the pipeline on the stored table, asks the account
// selector for the target account, stamps it on every record and
// forwards the batch as one atomic bulk create.
//
// Every failure leaves the session in StateImport with the table and
// mapping intact so the user can retry without re-uploading: a
// dismissed account prompt returns ErrNoAccountSelected, a persistence
// error is returned wrapped. Only a successful create clears the
// session and returns it to StateList.
func (s *Session) Confirm(ctx context.Context) (*Result, error) {
	if s.state != StateImport {
		return nil, ErrNoImport
	}

	if !s.CanConfirm() {
		return nil, ErrMappingIncomplete
	}

	batch, skipped := Submit(s.table, s.mapping)

	accountID, chosen, err := s.accounts.SelectAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}

	if !chosen {
		return nil, ErrNoAccountSelected
	}

	params := make([]transaction.CreateParams, len(batch))

	for i, tx := range batch {
		// Normalized dates are canonical by construction.
		date, err := time.Parse(dateFormatISO, tx.Date)
		if err != nil {
			return nil, fmt.Errorf("parse normalized date %q: %w", tx.Date, err)
		}

		params[i] = transaction.CreateParams{
			AccountID: accountID,
			Amount:    tx.Amount,
			Payee:     tx.Payee,
			Notes:     tx.Notes,
			Date:      date,
		}
	}

	created, err := s.creator.CreateBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}

	s.Cancel()

	return &Result{Created: created, Skipped: skipped}, nil
}
