package orderhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/order"
	mockorderservice "github.com/xw1nchester/hisba-backend/internal/order/handler/mocks"
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
	New(service, auth, zap.NewNop()).Register(router)
	return router
}

func TestCheckoutHandler(t *testing.T) {
	buyer := access.Actor{UserID: 6}

	tests := []struct {
		name                 string
		body                 string
		mockBehavior         func(s *mockorderservice.MockService)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name: "cash",
			body: `{"address":"Main st. 1","phone":"+100","paymentMethod":"cash"}`,
			mockBehavior: func(s *mockorderservice.MockService) {
				s.EXPECT().
					Checkout(gomock.Any(), buyer, order.Delivery{
						Address: "Main st. 1",
						Phone:   "+100",
						Payment: order.Payment{Method: order.PaymentCash},
					}).
					Return(&order.Order{
						ID:                100,
						UserID:            6,
						StoreID:           3,
						TotalAmount:       decimal.RequireFromString("20.00"),
						DeliveryFee:       decimal.RequireFromString("5.00"),
						TotalWithDelivery: decimal.RequireFromString("25.00"),
						PaymentMethod:     order.PaymentCash,
						Status:            order.StatusPending,
						Items:             []order.Item{},
					}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:                 "visa without card",
			body:                 `{"address":"Main st. 1","phone":"+100","paymentMethod":"visa","visaNumber":"4111111111111111","visaExpiry":"12/2030"}`,
			mockBehavior:         func(s *mockorderservice.MockService) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"message":"field VisaCVC is required when PaymentMethod visa"}`,
		},
		{
			name:               "unknown payment method",
			body:               `{"address":"Main st. 1","phone":"+100","paymentMethod":"cheque"}`,
			mockBehavior:       func(s *mockorderservice.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "empty cart",
			body: `{"address":"Main st. 1","phone":"+100","paymentMethod":"cash"}`,
			mockBehavior: func(s *mockorderservice.MockService) {
				s.EXPECT().Checkout(gomock.Any(), buyer, gomock.Any()).Return(nil, apperror.NewAppError("cart is empty"))
			},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"message":"cart is empty"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockorderservice.NewMockService(ctrl)
			tt.mockBehavior(service)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/orders/checkout", strings.NewReader(tt.body))
			newRouter(service, buyer).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.expectedResponseBody != "" {
				assert.JSONEq(t, tt.expectedResponseBody, rec.Body.String())
			}
			if tt.expectedStatusCode == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"totalWithDelivery":"25"`)
				assert.Contains(t, rec.Body.String(), `"status":"pending"`)
				assert.NotContains(t, rec.Body.String(), "visa")
			}
		})
	}
}

func TestCreateHandler(t *testing.T) {
	admin := access.Actor{UserID: 1, Admin: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockorderservice.NewMockService(ctrl)
	service.EXPECT().
		Create(gomock.Any(), admin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ access.Actor, input order.DirectInput) (*order.Order, error) {
			assert.Equal(t, 6, input.UserID)
			assert.Equal(t, 3, input.StoreID)
			assert.Len(t, input.Items, 1)
			assert.Equal(t, "9.5", input.Items[0].Price.String())
			assert.Equal(t, order.PaymentCash, input.Delivery.Payment.Method)
			return &order.Order{ID: 100, UserID: 6, StoreID: 3}, nil
		})

	body := `{
		"userId": 6,
		"storeId": "3",
		"items": [{"productId": 5, "quantity": 2, "price": "9.50"}],
		"address": "Main st. 1",
		"phone": "+100",
		"paymentMethod": "cash"
	}`

	rec := httptest.NewRecorder()
	newRouter(service, admin).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateHandlerRequiresItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockorderservice.NewMockService(ctrl)

	body := `{"storeId":3,"items":[],"address":"a","phone":"p","paymentMethod":"cash"}`

	rec := httptest.NewRecorder()
	newRouter(service, access.Actor{UserID: 6}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveHandler(t *testing.T) {
	stranger := access.Actor{UserID: 9}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mockorderservice.NewMockService(ctrl)
	service.EXPECT().Approve(gomock.Any(), stranger, 100).Return(nil, apperror.ErrForbidden)

	rec := httptest.NewRecorder()
	newRouter(service, stranger).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/orders/100/approve", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListAllHandler(t *testing.T) {
	tests := []struct {
		name               string
		actor              access.Actor
		expectCall         bool
		expectedStatusCode int
	}{
		{name: "admin", actor: access.Actor{UserID: 1, Admin: true}, expectCall: true, expectedStatusCode: http.StatusOK},
		{name: "seller", actor: access.Actor{UserID: 2, Seller: true, StoreID: 3}, expectedStatusCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mockorderservice.NewMockService(ctrl)
			if tt.expectCall {
				service.EXPECT().
					ListAll(gomock.Any(), order.Filter{StoreID: 3, Limit: 100}).
					Return([]order.Order{}, nil)
			}

			rec := httptest.NewRecorder()
			newRouter(service, tt.actor).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders?storeId=3", nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}
