package access_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/access"
	mockaccess "github.com/xw1nchester/hisba-backend/internal/access/mocks"
	jwtauth "github.com/xw1nchester/hisba-backend/internal/auth/jwt"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMiddleware(t *testing.T) {
	type mockBehavior func(resolver *mockaccess.MockResolver)

	tests := []struct {
		name               string
		userID             *int
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedActor      *access.Actor
	}{
		{
			name:               "no user id in context",
			mockBehavior:       func(resolver *mockaccess.MockResolver) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "user was deleted",
			userID: ptr(4),
			mockBehavior: func(resolver *mockaccess.MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 4).Return(access.Actor{}, access.ErrActorNotFound)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "storage error",
			userID: ptr(4),
			mockBehavior: func(resolver *mockaccess.MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 4).Return(access.Actor{}, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:   "resolved",
			userID: ptr(4),
			mockBehavior: func(resolver *mockaccess.MockResolver) {
				resolver.EXPECT().Resolve(gomock.Any(), 4).Return(access.Actor{UserID: 4, Seller: true, StoreID: 9}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedActor:      &access.Actor{UserID: 4, Seller: true, StoreID: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := mockaccess.NewMockResolver(ctrl)
			tt.mockBehavior(resolver)

			var actual *access.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if actor, ok := access.ActorFromContext(r.Context()); ok {
					actual = &actor
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.userID != nil {
				req = req.WithContext(context.WithValue(req.Context(), jwtauth.UserIDContextKey{}, *tt.userID))
			}
			rec := httptest.NewRecorder()

			access.NewMiddleware(zap.NewNop(), resolver)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedActor, actual)
		})
	}
}

func TestRequireAdminAndModerator(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		actor      *access.Actor
		middleware func(http.Handler) http.Handler
		want       int
	}{
		{name: "admin passes admin gate", actor: &access.Actor{UserID: 1, Admin: true}, middleware: access.RequireAdmin, want: http.StatusNoContent},
		{name: "seller is forbidden", actor: &access.Actor{UserID: 2, Seller: true, StoreID: 3}, middleware: access.RequireAdmin, want: http.StatusForbidden},
		{name: "editor moderates", actor: &access.Actor{UserID: 3, Editor: true}, middleware: access.RequireModerator, want: http.StatusNoContent},
		{name: "editor is not admin", actor: &access.Actor{UserID: 3, Editor: true}, middleware: access.RequireAdmin, want: http.StatusForbidden},
		{name: "anonymous", middleware: access.RequireModerator, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/admin", nil)
			if tt.actor != nil {
				req = req.WithContext(access.WithActor(req.Context(), *tt.actor))
			}
			rec := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
