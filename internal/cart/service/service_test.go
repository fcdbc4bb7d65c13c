package cartservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	cartdb "github.com/xw1nchester/hisba-backend/internal/cart/db"
	mockproductservice "github.com/xw1nchester/hisba-backend/internal/cart/service/mocks/product"
	mockcartrepo "github.com/xw1nchester/hisba-backend/internal/cart/service/mocks/repo"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	mocktransactor "github.com/xw1nchester/hisba-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	userID = 6
	cartID = 11
)

var (
	ErrUnexpected = errors.New("unexpected error")

	Tomatoes = product.Product{ID: 5, StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Quantity: 40}

	TomatoLine = cart.Item{ProductID: 5, StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Stock: 40, Quantity: 2}
)

type mocks struct {
	repo     *mockcartrepo.MockRepository
	products *mockproductservice.MockProductService
	tx       *mocktransactor.MockManager
}

func newTestService(ctrl *gomock.Controller) (*service, mocks) {
	m := mocks{
		repo:     mockcartrepo.NewMockRepository(ctrl),
		products: mockproductservice.NewMockProductService(ctrl),
		tx:       mocktransactor.NewMockManager(ctrl),
	}

	return New(m.repo, m.products, m.tx, zap.NewNop()), m
}

func inTransaction(ctx context.Context, m mocks, expectations func()) {
	m.tx.EXPECT().
		WithinTransaction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			expectations()
			return fn(ctx)
		})
}

func TestGetCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	ctx := context.Background()

	m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
	m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{TomatoLine}, nil)

	c, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, cartID, c.ID)
	require.Equal(t, "20.00", c.Total.StringFixed(2))
}

func TestAddItem(t *testing.T) {
	otherStoreLine := cart.Item{ProductID: 9, StoreID: 4, Price: decimal.NewFromInt(1), Stock: 5, Quantity: 1}

	tests := []struct {
		name          string
		quantity      int
		mockBehavior  func(ctx context.Context, m mocks)
		expectedError error
	}{
		{
			name:     "first line",
			quantity: 2,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.products.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
				inTransaction(ctx, m, func() {
					gomock.InOrder(
						m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil),
						m.repo.EXPECT().GetItems(ctx, cartID).Return(nil, nil),
						m.repo.EXPECT().AddItem(ctx, cartID, 5, 2).Return(nil),
						m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{TomatoLine}, nil),
					)
				})
			},
		},
		{
			name:     "merge with same store line",
			quantity: 1,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.products.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
					m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{TomatoLine}, nil).Times(2)
					m.repo.EXPECT().AddItem(ctx, cartID, 5, 1).Return(nil)
				})
			},
		},
		{
			name:     "product from another store",
			quantity: 1,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.products.EXPECT().GetByID(ctx, 5).Return(&Tomatoes, nil)
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
					m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{otherStoreLine}, nil)
				})
			},
			expectedError: ErrMixedStores,
		},
		{
			name:     "product not found",
			quantity: 1,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.products.EXPECT().GetByID(ctx, 5).Return(nil, apperror.ErrNotFound)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name:          "non positive quantity",
			quantity:      0,
			mockBehavior:  func(ctx context.Context, m mocks) {},
			expectedError: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			c, err := svc.AddItem(ctx, userID, 5, tt.quantity)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, c.Items, 1)
		})
	}
}

func TestSetItemQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		mockBehavior  func(ctx context.Context, m mocks)
		expectedError error
	}{
		{
			name:     "within stock",
			quantity: 40,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
				m.repo.EXPECT().GetItem(ctx, cartID, 5).Return(&TomatoLine, nil)
				m.repo.EXPECT().SetItemQuantity(ctx, cartID, 5, 40).Return(nil)
				line := TomatoLine
				line.Quantity = 40
				m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{line}, nil)
			},
		},
		{
			name:     "above stock leaves line unchanged",
			quantity: 41,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
				m.repo.EXPECT().GetItem(ctx, cartID, 5).Return(&TomatoLine, nil)
			},
			expectedError: ErrStockExceeded,
		},
		{
			name:     "line missing",
			quantity: 1,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
				m.repo.EXPECT().GetItem(ctx, cartID, 5).Return(nil, cartdb.ErrItemNotFound)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name:          "negative quantity",
			quantity:      -1,
			mockBehavior:  func(ctx context.Context, m mocks) {},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:     "unexpected error",
			quantity: 1,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetOrCreate(ctx, userID).Return(0, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			c, err := svc.SetItemQuantity(ctx, userID, 5, tt.quantity)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.quantity, c.Items[0].Quantity)
		})
	}
}

func TestRemoveItemMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	ctx := context.Background()

	m.repo.EXPECT().GetOrCreate(ctx, userID).Return(cartID, nil)
	m.repo.EXPECT().RemoveItem(ctx, cartID, 5).Return(cartdb.ErrItemNotFound)

	_, err := svc.RemoveItem(ctx, userID, 5)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestLockForCheckout(t *testing.T) {
	t.Run("no cart yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)
		ctx := context.Background()
		m.repo.EXPECT().GetForUpdate(ctx, userID).Return(0, cartdb.ErrCartNotFound)

		c, err := svc.LockForCheckout(ctx, userID)
		require.NoError(t, err)
		require.True(t, c.IsEmpty())
	})

	t.Run("locked cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)
		ctx := context.Background()
		m.repo.EXPECT().GetForUpdate(ctx, userID).Return(cartID, nil)
		m.repo.EXPECT().GetItems(ctx, cartID).Return([]cart.Item{TomatoLine}, nil)

		c, err := svc.LockForCheckout(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, cartID, c.ID)
		require.Equal(t, 3, c.StoreID())
	})
}
