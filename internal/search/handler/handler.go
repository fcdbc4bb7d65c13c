package searchhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/search"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocksearchservice
type Service interface {
	Search(ctx context.Context, query string, limit int) (*search.Result, error)
}

type handler struct {
	service   Service
	staticURL string
	logger    *zap.Logger
}

func New(service Service, staticURL string, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:   service,
		staticURL: staticURL,
		logger:    logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/search", apperror.Middleware(h.searchHandler))
}

// @Tags		search
// @Param		q		query		string	true	"name substring"
// @Param		limit	query		int		false	"max results per kind"
// @Success	200		{object}	searchhandler.SearchResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/search [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.Search(
		r.Context(),
		r.URL.Query().Get("q"),
		handlers.LimitQuery(r, defaultLimit, maxLimit),
	)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewSearchResponse(*result, h.staticURL))

	return nil
}
