package storehandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"go.uber.org/zap"
)

const (
	topRatedLimit = 5
	maxListLimit  = 100
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstoreservice
type Service interface {
	GetByID(ctx context.Context, id int) (*store.Store, error)
	GetOwn(ctx context.Context, actor access.Actor) (*store.Store, error)
	GetAll(ctx context.Context, filter store.Filter) ([]store.Store, error)
	TopRated(ctx context.Context, limit int) ([]store.Store, error)
	CreateForUser(ctx context.Context, data store.Store) (*store.Store, error)
	Update(ctx context.Context, actor access.Actor, id int, data store.Update) (*store.Store, error)
	Approve(ctx context.Context, id int) (*store.Store, error)
	Delete(ctx context.Context, id int) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	staticURL      string
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	staticURL string,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		staticURL:      staticURL,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/stores", apperror.Middleware(h.getAllHandler))
	router.Get("/stores/top-rated", apperror.Middleware(h.topRatedHandler))
	router.Get("/stores/{id}", apperror.Middleware(h.getByIDHandler))

	router.Group(func(privateStoreRouter chi.Router) {
		privateStoreRouter.Use(h.authMiddleware)

		privateStoreRouter.Get("/stores/me", apperror.Middleware(h.getOwnHandler))
		privateStoreRouter.Patch("/stores/{id}", apperror.Middleware(h.updateHandler))
	})

	router.Group(func(adminStoreRouter chi.Router) {
		adminStoreRouter.Use(h.authMiddleware, access.RequireAdmin)

		adminStoreRouter.Get("/admin/stores", apperror.Middleware(h.adminGetAllHandler))
		adminStoreRouter.Post("/admin/stores", apperror.Middleware(h.createHandler))
		adminStoreRouter.Patch("/admin/stores/{id}/approve", apperror.Middleware(h.approveHandler))
		adminStoreRouter.Delete("/admin/stores/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Tags		store
// @Param		search	query		string	false	"name substring"
// @Param		limit	query		int		false	"max stores"
// @Success	200		{object}	storehandler.StoresResponse
// @Failure	500		{object}	apperror.AppError
// @Router		/stores [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.GetAll(r.Context(), store.Filter{
		ApprovedOnly: true,
		Search:       r.URL.Query().Get("search"),
		Limit:        handlers.LimitQuery(r, maxListLimit, maxListLimit),
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoresResponse(stores, h.staticURL))

	return nil
}

// @Tags		store
// @Success	200	{object}	storehandler.StoresResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/stores/top-rated [get]
func (h *handler) topRatedHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.TopRated(r.Context(), handlers.LimitQuery(r, topRatedLimit, maxListLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoresResponse(stores, h.staticURL))

	return nil
}

// @Tags		store
// @Param		id	path		int	true	"store id"
// @Success	200	{object}	storehandler.StoreResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id} [get]
func (h *handler) getByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	existingStore, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoreResponse(*existingStore, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store
// @Success	200	{object}	storehandler.StoreResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/stores/me [get]
func (h *handler) getOwnHandler(w http.ResponseWriter, r *http.Request) error {
	own, err := h.service.GetOwn(r.Context(), access.FromContext(r.Context()))
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoreResponse(*own, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store
// @Param		id		path		int								true	"store id"
// @Param		request	body		storehandler.UpdateStoreRequest	true	"request body"
// @Success	200		{object}	storehandler.StoreResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/stores/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	var dto UpdateStoreRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedStore, err := h.service.Update(r.Context(), access.FromContext(r.Context()), id, dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoreResponse(*updatedStore, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Success	200	{object}	storehandler.StoresResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/stores [get]
func (h *handler) adminGetAllHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.GetAll(r.Context(), store.Filter{Search: r.URL.Query().Get("search")})
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoresResponse(stores, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		request	body		storehandler.CreateStoreRequest	true	"request body"
// @Success	201		{object}	storehandler.StoreResponse
// @Failure	400,401,403,404,409,500	{object}	apperror.AppError
// @Router		/admin/stores [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateStoreRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdStore, err := h.service.CreateForUser(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewStoreResponse(*createdStore, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path		int	true	"store id"
// @Success	200	{object}	storehandler.StoreResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/stores/{id}/approve [patch]
func (h *handler) approveHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	approvedStore, err := h.service.Approve(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewStoreResponse(*approvedStore, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path	int	true	"store id"
// @Success	204
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/stores/{id} [delete]
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
