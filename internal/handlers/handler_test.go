package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
)

func TestIDParam(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectedID  int
		expectedErr error
	}{
		{name: "valid", path: "/items/42", expectedID: 42},
		{name: "not a number", path: "/items/abc", expectedErr: apperror.ErrInvalidID},
		{name: "zero", path: "/items/0", expectedErr: apperror.ErrInvalidID},
		{name: "negative", path: "/items/-3", expectedErr: apperror.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				id  int
				err error
			)

			router := chi.NewRouter()
			router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
				id, err = IDParam(r, "id")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestLimitQuery(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{query: "", expected: 10},
		{query: "?limit=3", expected: 3},
		{query: "?limit=-1", expected: 10},
		{query: "?limit=500", expected: 100},
		{query: "?limit=ten", expected: 10},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/reports"+tt.query, nil)
		assert.Equal(t, tt.expected, LimitQuery(r, 10, 100), tt.query)
	}
}
