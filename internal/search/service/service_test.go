package searchservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	mockproductservice "github.com/xw1nchester/hisba-backend/internal/search/service/mocks/product"
	mockstoreservice "github.com/xw1nchester/hisba-backend/internal/search/service/mocks/store"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSearch(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name          string
		query         string
		mockBehavior  func(ctx context.Context, p *mockproductservice.MockProductService, s *mockstoreservice.MockStoreService)
		expectedError error
		products      int
		stores        int
	}{
		{
			name:  "matches both",
			query: "  Green ",
			mockBehavior: func(ctx context.Context, p *mockproductservice.MockProductService, s *mockstoreservice.MockStoreService) {
				p.EXPECT().
					GetAll(ctx, product.Filter{ApprovedOnly: true, Search: "Green", Limit: 20}).
					Return([]product.Product{{ID: 1, Name: "green tea"}, {ID: 2, Name: "Greens"}}, nil)
				s.EXPECT().
					GetAll(ctx, store.Filter{ApprovedOnly: true, Search: "Green", Limit: 20}).
					Return([]store.Store{{ID: 4, Name: "Evergreen"}}, nil)
			},
			products: 2,
			stores:   1,
		},
		{
			name:          "blank query",
			query:         "   ",
			mockBehavior:  func(ctx context.Context, p *mockproductservice.MockProductService, s *mockstoreservice.MockStoreService) {},
			expectedError: ErrEmptyQuery,
		},
		{
			name:  "product lookup fails",
			query: "tea",
			mockBehavior: func(ctx context.Context, p *mockproductservice.MockProductService, s *mockstoreservice.MockStoreService) {
				p.EXPECT().GetAll(ctx, gomock.Any()).Return(nil, dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			products := mockproductservice.NewMockProductService(ctrl)
			stores := mockstoreservice.NewMockStoreService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, products, stores)

			result, err := New(products, stores, zap.NewNop()).Search(ctx, tt.query, 20)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, result.Products, tt.products)
			require.Len(t, result.Stores, tt.stores)
		})
	}
}
