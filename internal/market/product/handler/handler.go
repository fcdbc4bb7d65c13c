package producthandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"go.uber.org/zap"
)

const (
	mostOrderedLimit = 5
	maxListLimit     = 100
)

var (
	validate = validator.New()

	ErrNegativePrice = apperror.NewAppError("field price must not be negative")
	ErrInvalidStore  = apperror.NewAppError("invalid storeId")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproductservice
type Service interface {
	GetByID(ctx context.Context, id int) (*product.Product, error)
	GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error)
	MostOrdered(ctx context.Context, limit int) ([]product.Popular, error)
	Create(ctx context.Context, actor access.Actor, data product.Product) (*product.Product, error)
	CreateForStore(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, actor access.Actor, id int, data product.Update) (*product.Product, error)
	Delete(ctx context.Context, actor access.Actor, id int) error
	Approve(ctx context.Context, id int) (*product.Product, error)
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
	router.Get("/products", apperror.Middleware(h.getAllHandler))
	router.Get("/products/most-ordered", apperror.Middleware(h.mostOrderedHandler))
	router.Get("/products/{id}", apperror.Middleware(h.getByIDHandler))

	router.Group(func(privateProductRouter chi.Router) {
		privateProductRouter.Use(h.authMiddleware)

		privateProductRouter.Post("/products", apperror.Middleware(h.createHandler))
		privateProductRouter.Patch("/products/{id}", apperror.Middleware(h.updateHandler))
		privateProductRouter.Delete("/products/{id}", apperror.Middleware(h.deleteHandler))
		privateProductRouter.With(access.RequireModerator).
			Patch("/products/{id}/approve", apperror.Middleware(h.approveHandler))
	})

	router.Group(func(adminProductRouter chi.Router) {
		adminProductRouter.Use(h.authMiddleware, access.RequireAdmin)

		adminProductRouter.Get("/admin/products", apperror.Middleware(h.adminGetAllHandler))
		adminProductRouter.Post("/admin/products", apperror.Middleware(h.adminCreateHandler))
	})
}

func storeIDQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("storeId")
	if raw == "" {
		return 0, nil
	}

	storeID, err := strconv.Atoi(raw)
	if err != nil || storeID <= 0 {
		return 0, ErrInvalidStore
	}

	return storeID, nil
}

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}

	return nil
}

// @Tags		product
// @Param		storeId	query		int		false	"store id"
// @Param		search	query		string	false	"name substring"
// @Param		limit	query		int		false	"max products"
// @Success	200		{object}	producthandler.ProductsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/products [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	storeID, err := storeIDQuery(r)
	if err != nil {
		return err
	}

	products, err := h.service.GetAll(r.Context(), product.Filter{
		StoreID:      storeID,
		ApprovedOnly: true,
		Search:       r.URL.Query().Get("search"),
		Limit:        handlers.LimitQuery(r, maxListLimit, maxListLimit),
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductsResponse(products, h.staticURL))

	return nil
}

// @Tags		product
// @Success	200	{object}	producthandler.PopularProductsResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/products/most-ordered [get]
func (h *handler) mostOrderedHandler(w http.ResponseWriter, r *http.Request) error {
	products, err := h.service.MostOrdered(r.Context(), handlers.LimitQuery(r, mostOrderedLimit, maxListLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, NewPopularProductsResponse(products, h.staticURL))

	return nil
}

// @Tags		product
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	producthandler.ProductResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	existingProduct, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductResponse(*existingProduct, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		product
// @Param		request	body		producthandler.CreateProductRequest	true	"request body"
// @Success	201		{object}	producthandler.ProductResponse
// @Failure	400,401,403,500	{object}	apperror.AppError
// @Router		/products [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := checkPrice(dto.Price); err != nil {
		return err
	}

	createdProduct, err := h.service.Create(r.Context(), access.FromContext(r.Context()), dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewProductResponse(*createdProduct, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		product
// @Param		id		path		int									true	"product id"
// @Param		request	body		producthandler.UpdateProductRequest	true	"request body"
// @Success	200		{object}	producthandler.ProductResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/products/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	var dto UpdateProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if dto.Price != nil {
		if err := checkPrice(*dto.Price); err != nil {
			return err
		}
	}

	updatedProduct, err := h.service.Update(r.Context(), access.FromContext(r.Context()), id, dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductResponse(*updatedProduct, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		product
// @Param		id	path	int	true	"product id"
// @Success	204
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/products/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), access.FromContext(r.Context()), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		product
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	producthandler.ProductResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/products/{id}/approve [patch]
func (h *handler) approveHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	approvedProduct, err := h.service.Approve(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductResponse(*approvedProduct, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		storeId	query		int		false	"store id"
// @Param		search	query		string	false	"name substring"
// @Success	200		{object}	producthandler.ProductsResponse
// @Failure	400,401,403,500	{object}	apperror.AppError
// @Router		/admin/products [get]
func (h *handler) adminGetAllHandler(w http.ResponseWriter, r *http.Request) error {
	storeID, err := storeIDQuery(r)
	if err != nil {
		return err
	}

	products, err := h.service.GetAll(r.Context(), product.Filter{
		StoreID: storeID,
		Search:  r.URL.Query().Get("search"),
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductsResponse(products, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		request	body		producthandler.AdminCreateProductRequest	true	"request body"
// @Success	201		{object}	producthandler.ProductResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/products [post]
func (h *handler) adminCreateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto AdminCreateProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := checkPrice(dto.Price); err != nil {
		return err
	}

	createdProduct, err := h.service.CreateForStore(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewProductResponse(*createdProduct, h.staticURL))

	return nil
}
