package carthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcartservice
type Service interface {
	GetCart(ctx context.Context, userID int) (*cart.Cart, error)
	AddItem(ctx context.Context, userID, productID, quantity int) (*cart.Cart, error)
	SetItemQuantity(ctx context.Context, userID, productID, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int) (*cart.Cart, error)
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
	router.Route("/cart", func(cartRouter chi.Router) {
		cartRouter.Use(h.authMiddleware)

		cartRouter.Get("/", apperror.Middleware(h.getHandler))
		cartRouter.Post("/items", apperror.Middleware(h.addItemHandler))
		cartRouter.Put("/items/{productId}", apperror.Middleware(h.setQuantityHandler))
		cartRouter.Delete("/items/{productId}", apperror.Middleware(h.removeItemHandler))
	})
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, c *cart.Cart) {
	render.JSON(w, r, NewCartResponse(*c, h.staticURL))
}

// @Security	ApiKeyAuth
// @Tags		cart
// @Success	200	{object}	carthandler.CartResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/cart [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	c, err := h.service.GetCart(r.Context(), access.FromContext(r.Context()).UserID)
	if err != nil {
		return err
	}

	h.respond(w, r, c)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		cart
// @Param		request	body		carthandler.AddItemRequest	true	"request body"
// @Success	200		{object}	carthandler.CartResponse
// @Failure	400,401,404,409,500	{object}	apperror.AppError
// @Router		/cart/items [post]
func (h *handler) addItemHandler(w http.ResponseWriter, r *http.Request) error {
	var dto AddItemRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	c, err := h.service.AddItem(
		r.Context(),
		access.FromContext(r.Context()).UserID,
		int(dto.ProductID),
		dto.QuantityOrDefault(),
	)
	if err != nil {
		return err
	}

	h.respond(w, r, c)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		cart
// @Param		productId	path		int								true	"product id"
// @Param		request		body		carthandler.SetQuantityRequest	true	"request body"
// @Success	200			{object}	carthandler.CartResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/cart/items/{productId} [put]
func (h *handler) setQuantityHandler(w http.ResponseWriter, r *http.Request) error {
	productID, err := handlers.IDParam(r, "productId")
	if err != nil {
		return err
	}

	var dto SetQuantityRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	c, err := h.service.SetItemQuantity(
		r.Context(),
		access.FromContext(r.Context()).UserID,
		productID,
		int(dto.Quantity),
	)
	if err != nil {
		return err
	}

	h.respond(w, r, c)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		cart
// @Param		productId	path		int	true	"product id"
// @Success	200			{object}	carthandler.CartResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/cart/items/{productId} [delete]
func (h *handler) removeItemHandler(w http.ResponseWriter, r *http.Request) error {
	productID, err := handlers.IDParam(r, "productId")
	if err != nil {
		return err
	}

	c, err := h.service.RemoveItem(r.Context(), access.FromContext(r.Context()).UserID, productID)
	if err != nil {
		return err
	}

	h.respond(w, r, c)

	return nil
}
