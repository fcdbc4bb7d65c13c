package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/order"
	orderdb "github.com/xw1nchester/hisba-backend/internal/order/db"
	mockcartservice "github.com/xw1nchester/hisba-backend/internal/order/service/mocks/cart"
	mockmetrics "github.com/xw1nchester/hisba-backend/internal/order/service/mocks/metrics"
	mockproductservice "github.com/xw1nchester/hisba-backend/internal/order/service/mocks/product"
	mockorderrepo "github.com/xw1nchester/hisba-backend/internal/order/service/mocks/repo"
	mockstoreservice "github.com/xw1nchester/hisba-backend/internal/order/service/mocks/store"
	mocktransactor "github.com/xw1nchester/hisba-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	ErrUnexpected = errors.New("unexpected error")

	buyer  = access.Actor{UserID: 6}
	seller = access.Actor{UserID: 2, Seller: true, StoreID: 3}
	admin  = access.Actor{UserID: 1, Admin: true}

	cash = order.Delivery{Address: "Main st. 1", Phone: "+100", Payment: order.Payment{Method: order.PaymentCash}}

	Tomatoes = product.Product{ID: 5, StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Quantity: 40}
)

type mocks struct {
	repo     *mockorderrepo.MockRepository
	stores   *mockstoreservice.MockStoreService
	products *mockproductservice.MockProductService
	carts    *mockcartservice.MockCartService
	metrics  *mockmetrics.MockMetrics
	tx       *mocktransactor.MockManager
}

func newTestService(ctrl *gomock.Controller) (*service, mocks) {
	m := mocks{
		repo:     mockorderrepo.NewMockRepository(ctrl),
		stores:   mockstoreservice.NewMockStoreService(ctrl),
		products: mockproductservice.NewMockProductService(ctrl),
		carts:    mockcartservice.NewMockCartService(ctrl),
		metrics:  mockmetrics.NewMockMetrics(ctrl),
		tx:       mocktransactor.NewMockManager(ctrl),
	}

	svc := New(m.repo, m.stores, m.products, m.carts, m.metrics, m.tx, decimal.RequireFromString("5.00"), zap.NewNop())

	return svc, m
}

func inTransaction(ctx context.Context, m mocks, expectations func()) {
	m.tx.EXPECT().
		WithinTransaction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			expectations()
			return fn(ctx)
		})
}

// returnCreated echoes the order passed to Create back with an id.
func returnCreated(ctx context.Context, data order.Order) (*order.Order, error) {
	data.ID = 100
	return &data, nil
}

func TestCheckout(t *testing.T) {
	tomatoLine := cart.Item{ProductID: 5, StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Stock: 40, Quantity: 2}
	otherStoreLine := cart.Item{ProductID: 9, StoreID: 4, Price: decimal.NewFromInt(1), Stock: 5, Quantity: 1}

	tests := []struct {
		name          string
		delivery      order.Delivery
		mockBehavior  func(ctx context.Context, m mocks)
		expectedError error
	}{
		{
			name:     "two tomatoes with flat fee",
			delivery: cash,
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					gomock.InOrder(
						m.carts.EXPECT().LockForCheckout(ctx, 6).Return(cart.New(11, 6, []cart.Item{tomatoLine}), nil),
						m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(returnCreated),
						m.carts.EXPECT().Clear(ctx, 11).Return(nil),
					)
				})
				m.metrics.EXPECT().OrderCreated(SourceCheckout)
			},
		},
		{
			name:     "empty cart",
			delivery: cash,
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.carts.EXPECT().LockForCheckout(ctx, 6).Return(cart.New(0, 6, nil), nil)
				})
			},
			expectedError: ErrEmptyCart,
		},
		{
			name:     "mixed stores",
			delivery: cash,
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.carts.EXPECT().
						LockForCheckout(ctx, 6).
						Return(cart.New(11, 6, []cart.Item{tomatoLine, otherStoreLine}), nil)
				})
			},
			expectedError: ErrMixedStores,
		},
		{
			name:          "incomplete visa",
			delivery:      order.Delivery{Address: "a", Phone: "p", Payment: order.Payment{Method: order.PaymentVisa, VisaNumber: "4111111111111111"}},
			mockBehavior:  func(ctx context.Context, m mocks) {},
			expectedError: ErrIncompleteVisa,
		},
		{
			name:     "clearing the cart fails",
			delivery: cash,
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.carts.EXPECT().LockForCheckout(ctx, 6).Return(cart.New(11, 6, []cart.Item{tomatoLine}), nil)
					m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(returnCreated)
					m.carts.EXPECT().Clear(ctx, 11).Return(ErrUnexpected)
				})
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

			created, err := svc.Checkout(ctx, buyer, tt.delivery)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 6, created.UserID)
			require.Equal(t, 3, created.StoreID)
			require.Equal(t, "20.00", created.TotalAmount.StringFixed(2))
			require.Equal(t, "5.00", created.DeliveryFee.StringFixed(2))
			require.Equal(t, "25.00", created.TotalWithDelivery.StringFixed(2))
			require.Len(t, created.Items, 1)
			require.Equal(t, "20.00", created.Items[0].TotalPrice.StringFixed(2))
			require.Equal(t, order.StatusPending, created.Status)
		})
	}
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	ctx := context.Background()

	lines := []cart.Item{
		{ProductID: 5, StoreID: 3, Price: decimal.RequireFromString("10.00"), Stock: 40, Quantity: 2},
		{ProductID: 6, StoreID: 3, Price: decimal.RequireFromString("2.25"), Stock: 40, Quantity: 4},
	}

	inTransaction(ctx, m, func() {
		m.carts.EXPECT().LockForCheckout(ctx, 6).Return(cart.New(11, 6, lines), nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(returnCreated)
		m.carts.EXPECT().Clear(ctx, 11).Return(nil)
	})
	m.metrics.EXPECT().OrderCreated(SourceCheckout)

	created, err := svc.Checkout(ctx, buyer, cash)
	require.NoError(t, err)

	lines[0].Price = decimal.RequireFromString("99.00")

	sum := decimal.Zero
	for _, item := range created.Items {
		require.True(t, item.TotalPrice.Equal(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))))
		sum = sum.Add(item.TotalPrice)
	}

	require.Len(t, created.Items, 2)
	require.True(t, created.TotalAmount.Equal(sum))
	require.Equal(t, "29.00", created.TotalAmount.StringFixed(2))
	require.Equal(t, "10.00", created.Items[0].Price.StringFixed(2))
}

func TestCreate(t *testing.T) {
	input := order.DirectInput{
		StoreID: 3,
		Items: []order.DirectItem{
			{ProductID: 5, Quantity: 2, Price: decimal.RequireFromString("9.50")},
		},
		Delivery: cash,
	}

	tests := []struct {
		name            string
		actor           access.Actor
		input           func() order.DirectInput
		mockBehavior    func(ctx context.Context, m mocks)
		expectedError   error
		expectedMessage string
		expectedBuyer   int
	}{
		{
			name:  "client price is used",
			actor: buyer,
			input: func() order.DirectInput { return input },
			mockBehavior: func(ctx context.Context, m mocks) {
				m.stores.EXPECT().GetByID(ctx, 3).Return(&store.Store{ID: 3}, nil)
				m.products.EXPECT().GetByIDs(ctx, []int{5}).Return(map[int]product.Product{5: Tomatoes}, nil)
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(returnCreated)
				})
				m.metrics.EXPECT().OrderCreated(SourceDirect)
			},
			expectedBuyer: 6,
		},
		{
			name:  "admin on behalf of another user",
			actor: admin,
			input: func() order.DirectInput {
				in := input
				in.UserID = 6
				return in
			},
			mockBehavior: func(ctx context.Context, m mocks) {
				m.stores.EXPECT().GetByID(ctx, 3).Return(&store.Store{ID: 3}, nil)
				m.products.EXPECT().GetByIDs(ctx, []int{5}).Return(map[int]product.Product{5: Tomatoes}, nil)
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(returnCreated)
				})
				m.metrics.EXPECT().OrderCreated(SourceDirect)
			},
			expectedBuyer: 6,
		},
		{
			name:  "customer on behalf of another user",
			actor: buyer,
			input: func() order.DirectInput {
				in := input
				in.UserID = 7
				return in
			},
			mockBehavior:  func(ctx context.Context, m mocks) {},
			expectedError: apperror.ErrForbidden,
		},
		{
			name:  "store missing",
			actor: buyer,
			input: func() order.DirectInput { return input },
			mockBehavior: func(ctx context.Context, m mocks) {
				m.stores.EXPECT().GetByID(ctx, 3).Return(nil, apperror.ErrNotFound)
			},
			expectedError: ErrStoreNotFound,
		},
		{
			name:  "product missing aborts everything",
			actor: buyer,
			input: func() order.DirectInput {
				in := input
				in.Items = append([]order.DirectItem{}, input.Items...)
				in.Items = append(in.Items, order.DirectItem{ProductID: 7, Quantity: 1, Price: decimal.NewFromInt(1)})
				return in
			},
			mockBehavior: func(ctx context.Context, m mocks) {
				m.stores.EXPECT().GetByID(ctx, 3).Return(&store.Store{ID: 3}, nil)
				m.products.EXPECT().GetByIDs(ctx, []int{5, 7}).Return(map[int]product.Product{5: Tomatoes}, nil)
			},
			expectedMessage: "product with id 7 not found",
		},
		{
			name:  "product of another store",
			actor: buyer,
			input: func() order.DirectInput { return input },
			mockBehavior: func(ctx context.Context, m mocks) {
				foreign := Tomatoes
				foreign.StoreID = 4
				m.stores.EXPECT().GetByID(ctx, 3).Return(&store.Store{ID: 3}, nil)
				m.products.EXPECT().GetByIDs(ctx, []int{5}).Return(map[int]product.Product{5: foreign}, nil)
			},
			expectedMessage: "product with id 5 does not belong to store 3",
		},
		{
			name:  "no items",
			actor: buyer,
			input: func() order.DirectInput {
				in := input
				in.Items = nil
				return in
			},
			mockBehavior:  func(ctx context.Context, m mocks) {},
			expectedError: ErrNoItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			created, err := svc.Create(ctx, tt.actor, tt.input())
			switch {
			case tt.expectedError != nil:
				require.ErrorIs(t, err, tt.expectedError)
				return
			case tt.expectedMessage != "":
				require.EqualError(t, err, tt.expectedMessage)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedBuyer, created.UserID)
			require.Equal(t, "19.00", created.TotalAmount.StringFixed(2))
			require.True(t, created.DeliveryFee.IsZero())
			require.Equal(t, "19.00", created.TotalWithDelivery.StringFixed(2))
		})
	}
}

func TestApprove(t *testing.T) {
	pending := order.Order{ID: 100, UserID: 6, StoreID: 3}

	tests := []struct {
		name          string
		actor         access.Actor
		mockBehavior  func(ctx context.Context, m mocks)
		expectedError error
	}{
		{
			name:  "store owner",
			actor: seller,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(&pending, nil)
				m.repo.EXPECT().Approve(ctx, 100, true, false).Return(&order.Order{ID: 100, IsStoreApproved: true}, nil)
			},
		},
		{
			name:  "admin",
			actor: admin,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(&pending, nil)
				m.repo.EXPECT().Approve(ctx, 100, false, true).Return(&order.Order{ID: 100, IsAdminApproved: true}, nil)
			},
		},
		{
			name:  "admin owning the store",
			actor: access.Actor{UserID: 1, Admin: true, Seller: true, StoreID: 3},
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(&pending, nil)
				m.repo.EXPECT().Approve(ctx, 100, true, true).Return(&order.Order{ID: 100, IsStoreApproved: true, IsAdminApproved: true}, nil)
			},
		},
		{
			name:  "seller of another store",
			actor: access.Actor{UserID: 7, Seller: true, StoreID: 8},
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(&pending, nil)
			},
			expectedError: apperror.ErrForbidden,
		},
		{
			name:  "buyer",
			actor: buyer,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(&pending, nil)
			},
			expectedError: apperror.ErrForbidden,
		},
		{
			name:  "unknown order",
			actor: admin,
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().GetByID(ctx, 100).Return(nil, orderdb.ErrOrderNotFound)
			},
			expectedError: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			_, err := svc.Approve(ctx, tt.actor, 100)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGetVisibility(t *testing.T) {
	existing := order.Order{ID: 100, UserID: 6, StoreID: 3}

	tests := []struct {
		name          string
		actor         access.Actor
		expectedError error
	}{
		{name: "buyer", actor: buyer},
		{name: "store owner", actor: seller},
		{name: "admin", actor: admin},
		{name: "stranger", actor: access.Actor{UserID: 9}, expectedError: apperror.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			m.repo.EXPECT().GetByID(ctx, 100).Return(&existing, nil)

			_, err := svc.Get(ctx, tt.actor, 100)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestListForStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	ctx := context.Background()

	_, err := svc.ListForStore(ctx, buyer)
	require.ErrorIs(t, err, ErrNoStore)

	m.repo.EXPECT().GetAll(ctx, order.Filter{StoreID: 3}).Return([]order.Order{}, nil)

	orders, err := svc.ListForStore(ctx, seller)
	require.NoError(t, err)
	require.Empty(t, orders)
}
