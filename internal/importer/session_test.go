package importer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarques/centavo/internal/importer"
	"github.com/dmarques/centavo/internal/transaction"
)

func testTable() importer.RawTable {
	return importer.RawTable{
		Header: []string{"Date", "Desc", "Amt"},
		Body: [][]string{
			{"04/03/2024", "Coffee", "-3.50"},
			{"invalid", "Rent", "-1200"},
		},
	}
}

func mapRequired(t *testing.T, s *importer.Session) {
	t.Helper()

	require.NoError(t, s.AssignColumn(0, importer.FieldDate))
	require.NoError(t, s.AssignColumn(1, importer.FieldPayee))
	require.NoError(t, s.AssignColumn(2, importer.FieldAmount))
}

func TestSession_BeginAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := importer.NewSession(importer.NewMockBulkCreator(ctrl), importer.NewMockAccountSelector(ctrl))
	assert.Equal(t, importer.StateList, s.State())

	s.Begin(testTable())
	assert.Equal(t, importer.StateImport, s.State())
	assert.Len(t, s.Table().Body, 2)

	s.Cancel()
	assert.Equal(t, importer.StateList, s.State())
	assert.Empty(t, s.Table().Header)
}

func TestSession_BeginReplacesActiveImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := importer.NewSession(importer.NewMockBulkCreator(ctrl), importer.NewMockAccountSelector(ctrl))

	s.Begin(testTable())
	mapRequired(t, s)

	s.Begin(importer.RawTable{Header: []string{"A"}, Body: [][]string{{"x"}}})

	mapped, _ := s.Progress()
	assert.Equal(t, 0, mapped)
	assert.Equal(t, []string{"A"}, s.Table().Header)
}

func TestSession_AssignColumnRequiresImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := importer.NewSession(importer.NewMockBulkCreator(ctrl), importer.NewMockAccountSelector(ctrl))

	err := s.AssignColumn(0, importer.FieldDate)
	assert.ErrorIs(t, err, importer.ErrNoImport)
}

func TestSession_CanConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := importer.NewSession(importer.NewMockBulkCreator(ctrl), importer.NewMockAccountSelector(ctrl))
	s.Begin(testTable())

	assert.False(t, s.CanConfirm())

	require.NoError(t, s.AssignColumn(0, importer.FieldDate))
	require.NoError(t, s.AssignColumn(1, importer.FieldPayee))
	assert.False(t, s.CanConfirm())

	require.NoError(t, s.AssignColumn(2, importer.FieldAmount))
	assert.True(t, s.CanConfirm())
}

func TestSession_Confirm(t *testing.T) {
	type testCase struct {
		name       string
		setup      func(t *testing.T, s *importer.Session)
		setupMocks func(sel *importer.MockAccountSelector, cr *importer.MockBulkCreator)
		wantErr    error
		wantState  importer.State
		verify     func(t *testing.T, s *importer.Session, res *importer.Result)
	}

	accountID := uuid.New()

	tests := []testCase{
		{
			name: "NoImportInProgress",
			setup: func(t *testing.T, s *importer.Session) {
			},
			wantErr:   importer.ErrNoImport,
			wantState: importer.StateList,
		},
		{
			name: "MappingIncomplete",
			setup: func(t *testing.T, s *importer.Session) {
				s.Begin(testTable())
				require.NoError(t, s.AssignColumn(0, importer.FieldDate))
			},
			wantErr:   importer.ErrMappingIncomplete,
			wantState: importer.StateImport,
		},
		{
			name: "AccountPromptDismissed",
			setup: func(t *testing.T, s *importer.Session) {
				s.Begin(testTable())
				mapRequired(t, s)
			},
			setupMocks: func(sel *importer.MockAccountSelector, cr *importer.MockBulkCreator) {
				sel.EXPECT().
					SelectAccount(gomock.Any()).
					Return(uuid.Nil, false, nil)
			},
			wantErr:   importer.ErrNoAccountSelected,
			wantState: importer.StateImport,
			verify: func(t *testing.T, s *importer.Session, _ *importer.Result) {
				// Table and mapping survive for retry.
				assert.Len(t, s.Table().Body, 2)
				assert.True(t, s.CanConfirm())
			},
		},
		{
			name: "SelectorError",
			setup: func(t *testing.T, s *importer.Session) {
				s.Begin(testTable())
				mapRequired(t, s)
			},
			setupMocks: func(sel *importer.MockAccountSelector, cr *importer.MockBulkCreator) {
				sel.EXPECT().
					SelectAccount(gomock.Any()).
					Return(uuid.Nil, false, errors.New("prompt failed"))
			},
			wantErr:   nil,
			wantState: importer.StateImport,
			verify: func(t *testing.T, s *importer.Session, _ *importer.Result) {
				assert.True(t, s.CanConfirm())
			},
		},
		{
			name: "PersistenceFailure",
			setup: func(t *testing.T, s *importer.Session) {
				s.Begin(testTable())
				mapRequired(t, s)
			},
			setupMocks: func(sel *importer.MockAccountSelector, cr *importer.MockBulkCreator) {
				sel.EXPECT().
					SelectAccount(gomock.Any()).
					Return(accountID, true, nil)
				cr.EXPECT().
					CreateBatch(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			wantErr:   nil,
			wantState: importer.StateImport,
			verify: func(t *testing.T, s *importer.Session, _ *importer.Result) {
				assert.Len(t, s.Table().Body, 2)
				assert.True(t, s.CanConfirm())
			},
		},
		{
			name: "Success",
			setup: func(t *testing.T, s *importer.Session) {
				s.Begin(testTable())
				mapRequired(t, s)
			},
			setupMocks: func(sel *importer.MockAccountSelector, cr *importer.MockBulkCreator) {
				sel.EXPECT().
					SelectAccount(gomock.Any()).
					Return(accountID, true, nil)
				cr.EXPECT().
					CreateBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
						require.Len(t, params, 1)
						assert.Equal(t, accountID, params[0].AccountID)
						assert.Equal(t, int64(-3500), params[0].Amount)
						assert.Equal(t, "Coffee", params[0].Payee)
						assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), params[0].Date)

						return []*transaction.Transaction{{ID: uuid.New()}}, nil
					})
			},
			wantErr:   nil,
			wantState: importer.StateList,
			verify: func(t *testing.T, s *importer.Session, res *importer.Result) {
				require.NotNil(t, res)
				assert.Len(t, res.Created, 1)
				assert.Equal(t, 1, res.Skipped)
				assert.Empty(t, s.Table().Header)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sel := importer.NewMockAccountSelector(ctrl)
			cr := importer.NewMockBulkCreator(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(sel, cr)
			}

			s := importer.NewSession(cr, sel)
			tt.setup(t, s)

			res, err := s.Confirm(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantState == importer.StateImport {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantState, s.State())

			if tt.verify != nil {
				tt.verify(t, s, res)
			}
		})
	}
}

func TestSession_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := importer.NewSession(importer.NewMockBulkCreator(ctrl), importer.NewMockAccountSelector(ctrl))
	s.Begin(testTable())
	mapRequired(t, s)

	ready, skipped := s.Preview()
	assert.Len(t, ready, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, importer.StateImport, s.State())
}
