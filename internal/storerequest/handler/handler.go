package storerequesthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/storerequest"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstorerequestservice
type Service interface {
	Create(ctx context.Context, userID int, data storerequest.Request) (*storerequest.Request, error)
	GetByID(ctx context.Context, id int) (*storerequest.Request, error)
	GetByUserID(ctx context.Context, userID int) (*storerequest.Request, error)
	GetStatus(ctx context.Context, actor access.Actor, userID int) (storerequest.Status, error)
	GetAll(ctx context.Context, status storerequest.Status) ([]storerequest.Request, error)
	Approve(ctx context.Context, id int) (*storerequest.Request, error)
	Reject(ctx context.Context, id int, reason string) (*storerequest.Request, error)
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
	router.Route("/store-requests", func(requestRouter chi.Router) {
		requestRouter.Use(h.authMiddleware)

		requestRouter.Post("/", apperror.Middleware(h.createHandler))
		requestRouter.Get("/me", apperror.Middleware(h.getOwnHandler))
		requestRouter.Get("/status/{userId}", apperror.Middleware(h.getStatusHandler))
	})

	router.Route("/admin/store-requests", func(adminRouter chi.Router) {
		adminRouter.Use(h.authMiddleware, access.RequireAdmin)

		adminRouter.Get("/", apperror.Middleware(h.getAllHandler))
		adminRouter.Get("/{id}", apperror.Middleware(h.getByIDHandler))
		adminRouter.Patch("/{id}/approve", apperror.Middleware(h.approveHandler))
		adminRouter.Patch("/{id}/reject", apperror.Middleware(h.rejectHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		store-request
// @Param		request	body		storerequesthandler.CreateRequest	true	"request body"
// @Success	201		{object}	storerequesthandler.StoreRequestResponse
// @Failure	400,401,409,500	{object}	apperror.AppError
// @Router		/store-requests [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdRequest, err := h.service.Create(r.Context(), access.FromContext(r.Context()).UserID, dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, StoreRequestResponse{Request: *createdRequest})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store-request
// @Success	200	{object}	storerequesthandler.StoreRequestResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/store-requests/me [get]
func (h *handler) getOwnHandler(w http.ResponseWriter, r *http.Request) error {
	request, err := h.service.GetByUserID(r.Context(), access.FromContext(r.Context()).UserID)
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreRequestResponse{Request: *request})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store-request
// @Param		userId	path		int	true	"user id"
// @Success	200		{object}	storerequesthandler.StatusResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/store-requests/status/{userId} [get]
func (h *handler) getStatusHandler(w http.ResponseWriter, r *http.Request) error {
	userID, err := handlers.IDParam(r, "userId")
	if err != nil {
		return err
	}

	status, err := h.service.GetStatus(r.Context(), access.FromContext(r.Context()), userID)
	if err != nil {
		return err
	}

	render.JSON(w, r, StatusResponse{Status: status})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		status	query		string	false	"Pending, Approved, Duplicate or Rejected"
// @Success	200		{object}	storerequesthandler.StoreRequestsResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/store-requests [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	requests, err := h.service.GetAll(r.Context(), storerequest.Status(r.URL.Query().Get("status")))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreRequestsResponse{Requests: requests})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path		int	true	"store request id"
// @Success	200	{object}	storerequesthandler.StoreRequestResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/store-requests/{id} [get]
func (h *handler) getByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	request, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreRequestResponse{Request: *request})

	return nil
}

// A Duplicate outcome is committed but answered with 409 and the request body.
//
// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path		int	true	"store request id"
// @Success	200	{object}	storerequesthandler.StoreRequestResponse
// @Failure	409	{object}	storerequesthandler.StoreRequestResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/store-requests/{id}/approve [patch]
func (h *handler) approveHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	request, err := h.service.Approve(r.Context(), id)
	if err != nil {
		return err
	}

	if request.Status == storerequest.StatusDuplicate {
		render.Status(r, http.StatusConflict)
	}
	render.JSON(w, r, StoreRequestResponse{Request: *request})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id		path		int								true	"store request id"
// @Param		request	body		storerequesthandler.RejectRequest	true	"request body"
// @Success	200		{object}	storerequesthandler.StoreRequestResponse
// @Failure	400,401,403,404,409,500	{object}	apperror.AppError
// @Router		/admin/store-requests/{id}/reject [patch]
func (h *handler) rejectHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	var dto RejectRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	request, err := h.service.Reject(r.Context(), id, dto.Reason)
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreRequestResponse{Request: *request})

	return nil
}
