package storeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	storedb "github.com/xw1nchester/hisba-backend/internal/market/store/db"
	mockstorerepo "github.com/xw1nchester/hisba-backend/internal/market/store/service/mocks/repo"
	mockuserservice "github.com/xw1nchester/hisba-backend/internal/market/store/service/mocks/user"
	mocktransactor "github.com/xw1nchester/hisba-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	ErrUnexpected = errors.New("unexpected error")

	Farm = store.Store{UserID: 2, Name: "Green Farm", StoreType: store.TypeFarm}
)

func newTestService(ctrl *gomock.Controller) (*service, *mockstorerepo.MockRepository, *mockuserservice.MockUserService, *mocktransactor.MockManager) {
	repo := mockstorerepo.NewMockRepository(ctrl)
	users := mockuserservice.NewMockUserService(ctrl)
	tx := mocktransactor.NewMockManager(ctrl)

	return New(repo, users, tx, zap.NewNop()), repo, users, tx
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		mockBehavior  func(ctx context.Context, repo *mockstorerepo.MockRepository)
		expectedError error
	}{
		{
			name: "success",
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByUserID(ctx, 2).Return(nil, storedb.ErrStoreNotFound)
				created := Farm
				created.ID = 10
				repo.EXPECT().Create(ctx, Farm).Return(&created, nil)
			},
		},
		{
			name: "user already owns a store",
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByUserID(ctx, 2).Return(&store.Store{ID: 3, UserID: 2}, nil)
			},
			expectedError: ErrStoreAlreadyExists,
		},
		{
			name: "concurrent insert hits unique constraint",
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByUserID(ctx, 2).Return(nil, storedb.ErrStoreNotFound)
				repo.EXPECT().Create(ctx, Farm).Return(nil, storedb.ErrStoreAlreadyExists)
			},
			expectedError: ErrStoreAlreadyExists,
		},
		{
			name: "owner missing",
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByUserID(ctx, 2).Return(nil, storedb.ErrStoreNotFound)
				repo.EXPECT().Create(ctx, Farm).Return(nil, storedb.ErrOwnerNotFound)
			},
			expectedError: ErrOwnerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _, _ := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, repo)

			created, err := svc.Create(ctx, Farm)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 10, created.ID)
		})
	}
}

func TestCreateForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, users, tx := newTestService(ctrl)
	ctx := context.Background()

	tx.EXPECT().WithinTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			repo.EXPECT().GetByUserID(ctx, 2).Return(nil, storedb.ErrStoreNotFound)
			repo.EXPECT().Create(ctx, Farm).Return(&store.Store{ID: 10, UserID: 2}, nil)
			users.EXPECT().SetSeller(ctx, 2, true).Return(ErrUnexpected)
			return fn(ctx)
		},
	)

	created, err := svc.CreateForUser(ctx, Farm)
	require.ErrorIs(t, err, ErrUnexpected)
	require.Nil(t, created)
}

func TestUpdate(t *testing.T) {
	name := "Renamed"
	update := store.Update{Name: &name}

	tests := []struct {
		name          string
		actor         access.Actor
		mockBehavior  func(ctx context.Context, repo *mockstorerepo.MockRepository)
		expectedError error
	}{
		{
			name:  "owner",
			actor: access.Actor{UserID: 2, Seller: true, StoreID: 5},
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().Update(ctx, 5, update).Return(&store.Store{ID: 5, Name: name}, nil)
			},
		},
		{
			name:  "admin",
			actor: access.Actor{UserID: 1, Admin: true},
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().Update(ctx, 5, update).Return(&store.Store{ID: 5, Name: name}, nil)
			},
		},
		{
			name:  "other seller",
			actor: access.Actor{UserID: 3, Seller: true, StoreID: 6},
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(&store.Store{ID: 5}, nil)
			},
			expectedError: apperror.ErrForbidden,
		},
		{
			name:  "missing store",
			actor: access.Actor{UserID: 3},
			mockBehavior: func(ctx context.Context, repo *mockstorerepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(nil, storedb.ErrStoreNotFound)
			},
			expectedError: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _, _ := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, repo)

			updated, err := svc.Update(ctx, tt.actor, 5, update)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, name, updated.Name)
		})
	}
}

func TestGetOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newTestService(ctrl)
	ctx := context.Background()

	_, err := svc.GetOwn(ctx, access.Actor{UserID: 4})
	require.ErrorIs(t, err, ErrNoStore)

	repo.EXPECT().GetByID(ctx, 8).Return(&store.Store{ID: 8, UserID: 4}, nil)

	own, err := svc.GetOwn(ctx, access.Actor{UserID: 4, Seller: true, StoreID: 8})
	require.NoError(t, err)
	require.Equal(t, 8, own.ID)
}

func TestApproveAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newTestService(ctrl)
	ctx := context.Background()

	repo.EXPECT().SetApproved(ctx, 5, true).Return(&store.Store{ID: 5, IsApproved: true}, nil)
	approved, err := svc.Approve(ctx, 5)
	require.NoError(t, err)
	require.True(t, approved.IsApproved)

	repo.EXPECT().Delete(ctx, 6).Return(storedb.ErrStoreNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 6), apperror.ErrNotFound)
}
