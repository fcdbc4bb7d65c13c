package orderhandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/order"
	"go.uber.org/zap"
)

const maxListLimit = 100

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockorderservice
type Service interface {
	Create(ctx context.Context, actor access.Actor, input order.DirectInput) (*order.Order, error)
	Checkout(ctx context.Context, actor access.Actor, delivery order.Delivery) (*order.Order, error)
	Get(ctx context.Context, actor access.Actor, id int) (*order.Order, error)
	ListForUser(ctx context.Context, actor access.Actor) ([]order.Order, error)
	ListForStore(ctx context.Context, actor access.Actor) ([]order.Order, error)
	ListAll(ctx context.Context, filter order.Filter) ([]order.Order, error)
	Approve(ctx context.Context, actor access.Actor, id int) (*order.Order, error)
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
	router.Group(func(orderRouter chi.Router) {
		orderRouter.Use(h.authMiddleware)

		orderRouter.Post("/orders", apperror.Middleware(h.createHandler))
		orderRouter.Post("/orders/checkout", apperror.Middleware(h.checkoutHandler))
		orderRouter.Get("/orders", apperror.Middleware(h.listOwnHandler))
		orderRouter.Get("/orders/{id}", apperror.Middleware(h.getHandler))
		orderRouter.Patch("/orders/{id}/approve", apperror.Middleware(h.approveHandler))
		orderRouter.Get("/stores/me/orders", apperror.Middleware(h.listStoreHandler))

		orderRouter.With(access.RequireAdmin).Get("/admin/orders", apperror.Middleware(h.listAllHandler))
	})
}

func (h *handler) decode(r *http.Request, dto any) error {
	if err := render.DecodeJSON(r.Body, dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return nil
}

func created(w http.ResponseWriter, r *http.Request, o *order.Order) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, OrderResponse{Order: *o})
}

// @Security	ApiKeyAuth
// @Tags		order
// @Param		request	body		orderhandler.CreateOrderRequest	true	"request body"
// @Success	201		{object}	orderhandler.OrderResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/orders [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateOrderRequest
	if err := h.decode(r, &dto); err != nil {
		return err
	}

	createdOrder, err := h.service.Create(r.Context(), access.FromContext(r.Context()), dto.ToDomain())
	if err != nil {
		return err
	}

	created(w, r, createdOrder)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		order
// @Param		request	body		orderhandler.DeliveryRequest	true	"request body"
// @Success	201		{object}	orderhandler.OrderResponse
// @Failure	400,401,409,500	{object}	apperror.AppError
// @Router		/orders/checkout [post]
func (h *handler) checkoutHandler(w http.ResponseWriter, r *http.Request) error {
	var dto DeliveryRequest
	if err := h.decode(r, &dto); err != nil {
		return err
	}

	createdOrder, err := h.service.Checkout(r.Context(), access.FromContext(r.Context()), dto.ToDomain())
	if err != nil {
		return err
	}

	created(w, r, createdOrder)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		order
// @Success	200	{object}	orderhandler.OrdersResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/orders [get]
func (h *handler) listOwnHandler(w http.ResponseWriter, r *http.Request) error {
	orders, err := h.service.ListForUser(r.Context(), access.FromContext(r.Context()))
	if err != nil {
		return err
	}

	render.JSON(w, r, OrdersResponse{Orders: orders})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		order
// @Param		id	path		int	true	"order id"
// @Success	200	{object}	orderhandler.OrderResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	existingOrder, err := h.service.Get(r.Context(), access.FromContext(r.Context()), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *existingOrder})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		order
// @Param		id	path		int	true	"order id"
// @Success	200	{object}	orderhandler.OrderResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/orders/{id}/approve [patch]
func (h *handler) approveHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	approvedOrder, err := h.service.Approve(r.Context(), access.FromContext(r.Context()), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *approvedOrder})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store
// @Success	200	{object}	orderhandler.OrdersResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/stores/me/orders [get]
func (h *handler) listStoreHandler(w http.ResponseWriter, r *http.Request) error {
	orders, err := h.service.ListForStore(r.Context(), access.FromContext(r.Context()))
	if err != nil {
		return err
	}

	render.JSON(w, r, OrdersResponse{Orders: orders})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		userId	query		int	false	"buyer id"
// @Param		storeId	query		int	false	"store id"
// @Param		limit	query		int	false	"max orders"
// @Success	200		{object}	orderhandler.OrdersResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/orders [get]
func (h *handler) listAllHandler(w http.ResponseWriter, r *http.Request) error {
	userID, _ := strconv.Atoi(r.URL.Query().Get("userId"))
	storeID, _ := strconv.Atoi(r.URL.Query().Get("storeId"))

	orders, err := h.service.ListAll(r.Context(), order.Filter{
		UserID:  userID,
		StoreID: storeID,
		Limit:   handlers.LimitQuery(r, maxListLimit, maxListLimit),
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, OrdersResponse{Orders: orders})

	return nil
}
