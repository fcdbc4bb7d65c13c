package carthandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	mockcartservice "github.com/xw1nchester/hisba-backend/internal/cart/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const staticURL = "http://localhost:9000/hisba-media"

var (
	actor = access.Actor{UserID: 6}

	ErrStockExceeded = apperror.NewAppError("requested quantity exceeds available stock")
)

func newRouter(service Service) http.Handler {
	router := chi.NewRouter()
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(access.WithActor(r.Context(), actor)))
		})
	}
	New(service, auth, staticURL, zap.NewNop()).Register(router)
	return router
}

func TestGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockcartservice.NewMockService(ctrl)
	service.EXPECT().GetCart(gomock.Any(), 6).Return(cart.New(11, 6, []cart.Item{
		{ProductID: 5, StoreID: 3, Name: "Tomatoes", Price: decimal.RequireFromString("10.00"), Stock: 40, Image: "products/t.png", Quantity: 2},
	}), nil)

	rec := httptest.NewRecorder()
	newRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"20"`)
	assert.Contains(t, rec.Body.String(), staticURL+"/products/t.png")
}

func TestAddItemHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		mockBehavior       func(s *mockcartservice.MockService)
		expectedStatusCode int
	}{
		{
			name: "quantity defaults to one",
			body: `{"productId":5}`,
			mockBehavior: func(s *mockcartservice.MockService) {
				s.EXPECT().AddItem(gomock.Any(), 6, 5, 1).Return(cart.New(11, 6, nil), nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "explicit quantity as string",
			body: `{"productId":"5","quantity":"3"}`,
			mockBehavior: func(s *mockcartservice.MockService) {
				s.EXPECT().AddItem(gomock.Any(), 6, 5, 3).Return(cart.New(11, 6, nil), nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "zero quantity",
			body:               `{"productId":5,"quantity":0}`,
			mockBehavior:       func(s *mockcartservice.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "other store",
			body: `{"productId":5}`,
			mockBehavior: func(s *mockcartservice.MockService) {
				s.EXPECT().AddItem(gomock.Any(), 6, 5, 1).Return(nil, apperror.NewConflictErr("cart contains products from another store"))
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockcartservice.NewMockService(ctrl)
			tt.mockBehavior(service)

			rec := httptest.NewRecorder()
			newRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

func TestSetQuantityHandlerStockExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockcartservice.NewMockService(ctrl)
	service.EXPECT().SetItemQuantity(gomock.Any(), 6, 5, 41).Return(nil, ErrStockExceeded)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cart/items/5", strings.NewReader(`{"quantity":41}`))
	newRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"requested quantity exceeds available stock"}`, rec.Body.String())
}

func TestRemoveItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockcartservice.NewMockService(ctrl)
	service.EXPECT().RemoveItem(gomock.Any(), 6, 5).Return(cart.New(11, 6, nil), nil)

	rec := httptest.NewRecorder()
	newRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/items/5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
