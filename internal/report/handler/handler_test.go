package reporthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/report"
	mockreportservice "github.com/xw1nchester/hisba-backend/internal/report/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRouter(service Service, actor access.Actor) http.Handler {
	router := chi.NewRouter()
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(access.WithActor(r.Context(), actor)))
		})
	}
	New(service, auth, "http://cdn", zap.NewNop()).Register(router)
	return router
}

func TestDashboardHandler(t *testing.T) {
	admin := access.Actor{UserID: 1, Admin: true}

	tests := []struct {
		name               string
		actor              access.Actor
		mockBehavior       func(s *mockreportservice.MockService)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:  "ok",
			actor: admin,
			mockBehavior: func(s *mockreportservice.MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(&report.Dashboard{
					Users:      3,
					Stores:     1,
					Products:   4,
					Orders:     2,
					TotalSales: decimal.RequireFromString("45.50"),
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"dashboard":{"users":3,"stores":1,"products":4,"orders":2,"pendingStoreRequests":0,"totalSales":"45.5"}}`,
		},
		{
			name:               "not admin",
			actor:              access.Actor{UserID: 2, Seller: true, StoreID: 5},
			mockBehavior:       func(s *mockreportservice.MockService) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:  "service error",
			actor: admin,
			mockBehavior: func(s *mockreportservice.MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockreportservice.NewMockService(ctrl)
			tt.mockBehavior(service)

			rec := httptest.NewRecorder()
			newRouter(service, tt.actor).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports/dashboard", nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestSalesHandlerLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockreportservice.NewMockService(ctrl)
	service.EXPECT().SalesByStore(gomock.Any(), maxLimit).Return([]report.StoreSales{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales?limit=500", nil)
	newRouter(service, access.Actor{UserID: 1, Admin: true}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sales":[]}`, rec.Body.String())
}

func TestTopStoresHandlerExpandsCover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockreportservice.NewMockService(ctrl)
	service.EXPECT().TopStores(gomock.Any(), defaultRecentLimit).Return([]store.Store{
		{ID: 2, Name: "Green", CoverImage: "store_covers/a.png", AverageRating: 4.5},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(service, access.Actor{UserID: 1, Admin: true}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports/top-stores", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coverImage":"http://cdn/store_covers/a.png"`)
}

func TestMostOrderedHandlerExpandsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockreportservice.NewMockService(ctrl)
	service.EXPECT().MostOrdered(gomock.Any(), 3).Return([]product.Popular{
		{Product: product.Product{ID: 7, Image: "products/p.png"}, OrderedQuantity: 9},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(service, access.Actor{UserID: 1, Admin: true}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports/most-ordered?limit=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image":"http://cdn/products/p.png"`)
	assert.Contains(t, rec.Body.String(), `"orderedQuantity":9`)
}
