package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dmarques/centavo/internal/account"
)

func TestService_Create(t *testing.T) {
	type args struct {
		name string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *account.MockRepository)
		wantName  string
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{name: "Checking"},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *account.Account) error {
						a.ID = uuid.New()
						return nil
					})
			},
			wantName: "Checking",
		},
		{
			name: "TrimsWhitespace",
			args: args{name: "  Savings  "},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantName: "Savings",
		},
		{
			name:    "EmptyName",
			args:    args{name: "   "},
			wantErr: account.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.name)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	id := uuid.New()

	repo.EXPECT().RenameAccount(gomock.Any(), id, "Everyday").Return(nil)

	assert.NoError(t, svc.Rename(context.Background(), id, " Everyday "))
	assert.ErrorIs(t, svc.Rename(context.Background(), id, ""), account.ErrEmptyName)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().
		ListAccounts(gomock.Any()).
		Return([]*account.Account{{Name: "Checking"}, {Name: "Savings"}}, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().
		ListAccounts(gomock.Any()).
		Return(nil, errors.New("list error"))

	got, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}
