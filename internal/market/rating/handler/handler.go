package ratinghandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/market/rating"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockratingservice
type Service interface {
	Create(ctx context.Context, actor access.Actor, data rating.Rating) (*rating.Rating, error)
	GetByStoreID(ctx context.Context, storeID int) (*rating.Summary, error)
	Delete(ctx context.Context, id int) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/stores/{id}/ratings", apperror.Middleware(h.getByStoreHandler))
	router.With(h.authMiddleware).Post("/stores/{id}/ratings", apperror.Middleware(h.createHandler))
	router.With(h.authMiddleware, access.RequireAdmin).Delete("/admin/ratings/{id}", apperror.Middleware(h.deleteHandler))
}

// @Tags		rating
// @Param		id	path		int	true	"store id"
// @Success	200	{object}	rating.Summary
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id}/ratings [get]
func (h *handler) getByStoreHandler(w http.ResponseWriter, r *http.Request) error {
	storeID, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	summary, err := h.service.GetByStoreID(r.Context(), storeID)
	if err != nil {
		return err
	}

	render.JSON(w, r, summary)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		rating
// @Param		id		path		int								true	"store id"
// @Param		request	body		ratinghandler.CreateRatingRequest	true	"request body"
// @Success	201		{object}	ratinghandler.RatingResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/stores/{id}/ratings [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	storeID, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	var dto CreateRatingRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdRating, err := h.service.Create(r.Context(), access.FromContext(r.Context()), dto.ToDomain(storeID))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RatingResponse{Rating: *createdRating})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path	int	true	"rating id"
// @Success	204
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/ratings/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
