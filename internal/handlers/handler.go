package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
)

type Handler interface {
	Register(router chi.Router)
}

// IDParam reads a positive integer URL parameter.
func IDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, apperror.ErrInvalidID
	}

	return id, nil
}

// LimitQuery reads the optional "limit" query parameter, falling back to def.
func LimitQuery(r *http.Request, def, max int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return def
	}

	if limit > max {
		return max
	}

	return limit
}
