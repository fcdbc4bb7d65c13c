package productservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	productdb "github.com/xw1nchester/hisba-backend/internal/market/product/db"
	mockproductrepo "github.com/xw1nchester/hisba-backend/internal/market/product/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	ErrUnexpected = errors.New("unexpected error")

	Tomatoes = product.Product{
		ID:       5,
		StoreID:  3,
		Name:     "Tomatoes",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 40,
	}
)

func TestCreate(t *testing.T) {
	input := product.Product{Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Quantity: 40, IsApproved: true}
	stored := product.Product{StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Quantity: 40}

	tests := []struct {
		name          string
		actor         access.Actor
		mockBehavior  func(ctx context.Context, repo *mockproductrepo.MockRepository)
		expectedError error
	}{
		{
			name:  "owner creates an unapproved product in own store",
			actor: access.Actor{UserID: 2, Seller: true, StoreID: 3},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().Create(ctx, stored).Return(&Tomatoes, nil)
			},
		},
		{
			name:          "caller without store",
			actor:         access.Actor{UserID: 2},
			mockBehavior:  func(ctx context.Context, repo *mockproductrepo.MockRepository) {},
			expectedError: ErrNoStore,
		},
		{
			name:  "unexpected error",
			actor: access.Actor{UserID: 2, Seller: true, StoreID: 3},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().Create(ctx, stored).Return(nil, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mockproductrepo.NewMockRepository(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, repo)

			created, err := New(repo, zap.NewNop()).Create(ctx, tt.actor, input)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, Tomatoes, *created)
		})
	}
}

func TestCreateForStoreUnknownStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockproductrepo.NewMockRepository(ctrl)
	ctx := context.Background()
	data := product.Product{StoreID: 99, Name: "Milk", Price: decimal.RequireFromString("2.50")}
	repo.EXPECT().Create(ctx, data).Return(nil, productdb.ErrStoreNotFound)

	_, err := New(repo, zap.NewNop()).CreateForStore(ctx, data)
	require.ErrorIs(t, err, ErrStoreNotFound)
}

func TestUpdate(t *testing.T) {
	price := decimal.RequireFromString("12.00")
	update := product.Update{Price: &price}

	tests := []struct {
		name          string
		actor         access.Actor
		mockBehavior  func(ctx context.Context, repo *mockproductrepo.MockRepository)
		expectedError error
	}{
		{
			name:  "owner",
			actor: access.Actor{UserID: 2, Seller: true, StoreID: 3},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
				repo.EXPECT().Update(ctx, 5, update).Return(&Tomatoes, nil)
			},
		},
		{
			name:  "admin",
			actor: access.Actor{UserID: 1, Admin: true},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
				repo.EXPECT().Update(ctx, 5, update).Return(&Tomatoes, nil)
			},
		},
		{
			name:  "seller of another store",
			actor: access.Actor{UserID: 7, Seller: true, StoreID: 8},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
			},
			expectedError: apperror.ErrForbidden,
		},
		{
			name:  "product not found",
			actor: access.Actor{UserID: 2, Seller: true, StoreID: 3},
			mockBehavior: func(ctx context.Context, repo *mockproductrepo.MockRepository) {
				repo.EXPECT().GetByID(ctx, 5).Return(nil, productdb.ErrProductNotFound)
			},
			expectedError: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mockproductrepo.NewMockRepository(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, repo)

			_, err := New(repo, zap.NewNop()).Update(ctx, tt.actor, 5, update)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDeleteForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockproductrepo.NewMockRepository(ctrl)
	ctx := context.Background()
	repo.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)

	err := New(repo, zap.NewNop()).Delete(ctx, access.Actor{UserID: 9}, 5)
	require.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockproductrepo.NewMockRepository(ctrl)
	ctx := context.Background()
	repo.EXPECT().GetByIDs(ctx, []int{5, 6}).Return([]product.Product{Tomatoes}, nil)

	byID, err := New(repo, zap.NewNop()).GetByIDs(ctx, []int{5, 6})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	require.Equal(t, Tomatoes, byID[5])

	_, ok := byID[6]
	require.False(t, ok)
}

func TestApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockproductrepo.NewMockRepository(ctrl)
	ctx := context.Background()
	repo.EXPECT().SetApproved(ctx, 5, true).Return(nil, productdb.ErrProductNotFound)

	_, err := New(repo, zap.NewNop()).Approve(ctx, 5)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
