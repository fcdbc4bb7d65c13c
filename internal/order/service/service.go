package orderservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/order"
	orderdb "github.com/xw1nchester/hisba-backend/internal/order/db"
	"github.com/xw1nchester/hisba-backend/pkg/transactor"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
	"go.uber.org/zap"
)

const (
	SourceDirect   = "direct"
	SourceCheckout = "checkout"
)

var (
	ErrEmptyCart            = apperror.NewAppError("cart is empty")
	ErrMixedStores          = apperror.NewConflictErr("cart contains products from another store")
	ErrNoItems              = apperror.NewAppError("order must contain at least one item")
	ErrInvalidItem          = apperror.NewAppError("item quantity must be greater than 0 and price must not be negative")
	ErrNegativeDeliveryFee  = apperror.NewAppError("delivery fee must not be negative")
	ErrInvalidPaymentMethod = apperror.NewAppError(order.ErrInvalidPaymentMethod.Error())
	ErrIncompleteVisa       = apperror.NewAppError(order.ErrIncompleteVisa.Error())
	ErrStoreNotFound        = apperror.NewNotFoundErr("store not found")
	ErrBuyerNotFound        = apperror.NewNotFoundErr("user not found")
	ErrNoStore              = apperror.NewNotFoundErr("you do not have a store")
)

func productNotFound(id int) error {
	return apperror.NewNotFoundErr(fmt.Sprintf("product with id %d not found", id))
}

func foreignProduct(productID, storeID int) error {
	return apperror.NewAppError(fmt.Sprintf("product with id %d does not belong to store %d", productID, storeID))
}

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockorderrepo . Repository
type Repository interface {
	Create(ctx context.Context, data order.Order) (*order.Order, error)
	GetByID(ctx context.Context, id int) (*order.Order, error)
	GetAll(ctx context.Context, filter order.Filter) ([]order.Order, error)
	Approve(ctx context.Context, id int, storeApproval, adminApproval bool) (*order.Order, error)
}

//go:generate mockgen -destination=mocks/store/mock.go -package=mockstoreservice . StoreService
type StoreService interface {
	GetByID(ctx context.Context, id int) (*store.Store, error)
}

//go:generate mockgen -destination=mocks/product/mock.go -package=mockproductservice . ProductService
type ProductService interface {
	GetByIDs(ctx context.Context, ids []int) (map[int]product.Product, error)
}

//go:generate mockgen -destination=mocks/cart/mock.go -package=mockcartservice . CartService
type CartService interface {
	LockForCheckout(ctx context.Context, userID int) (*cart.Cart, error)
	Clear(ctx context.Context, cartID int) error
}

//go:generate mockgen -destination=mocks/metrics/mock.go -package=mockmetrics . Metrics
type Metrics interface {
	OrderCreated(source string)
}

type service struct {
	repository     Repository
	storeService   StoreService
	productService ProductService
	cartService    CartService
	metrics        Metrics
	txManager      transactor.Manager
	deliveryFee    decimal.Decimal
	logger         *zap.Logger
}

func New(
	repository Repository,
	storeService StoreService,
	productService ProductService,
	cartService CartService,
	metrics Metrics,
	txManager transactor.Manager,
	deliveryFee decimal.Decimal,
	logger *zap.Logger,
) *service {
	return &service{
		repository:     repository,
		storeService:   storeService,
		productService: productService,
		cartService:    cartService,
		metrics:        metrics,
		txManager:      txManager,
		deliveryFee:    deliveryFee,
		logger:         logger,
	}
}

func normalizePayment(payment order.Payment) (order.Payment, error) {
	normalized, err := payment.Normalize()
	switch {
	case errors.Is(err, order.ErrIncompleteVisa):
		return order.Payment{}, ErrIncompleteVisa
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		return order.Payment{}, ErrInvalidPaymentMethod
	}

	return normalized, nil
}

func (s *service) insert(ctx context.Context, data order.Order) (*order.Order, error) {
	createdOrder, err := s.repository.Create(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, orderdb.ErrUserNotFound):
			return nil, ErrBuyerNotFound
		case errors.Is(err, orderdb.ErrStoreNotFound):
			return nil, ErrStoreNotFound
		case errors.Is(err, orderdb.ErrProductNotFound):
			return nil, apperror.NewNotFoundErr("product not found")
		}

		s.logger.Error("unexpected error when creating order", zap.Error(err))

		return nil, err
	}

	return createdOrder, nil
}

// Create places an order from an explicit item list. Unit prices are taken from the input.
// Admins may place it on behalf of input.UserID.
func (s *service) Create(ctx context.Context, actor access.Actor, input order.DirectInput) (*order.Order, error) {
	buyerID := actor.UserID
	if input.UserID != 0 && input.UserID != actor.UserID {
		if !actor.IsAdmin() {
			return nil, apperror.ErrForbidden
		}
		buyerID = input.UserID
	}

	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, ErrInvalidItem
		}
	}

	if input.DeliveryFee.IsNegative() {
		return nil, ErrNegativeDeliveryFee
	}

	payment, err := normalizePayment(input.Delivery.Payment)
	if err != nil {
		return nil, err
	}
	input.Delivery.Payment = payment

	if _, err := s.storeService.GetByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	ids := utils.RemoveDuplicates(utils.Map(input.Items, func(item order.DirectItem) int {
		return item.ProductID
	}))

	products, err := s.productService.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(input.Items))
	for _, item := range input.Items {
		p, ok := products[item.ProductID]
		if !ok {
			return nil, productNotFound(item.ProductID)
		}

		if p.StoreID != input.StoreID {
			return nil, foreignProduct(item.ProductID, input.StoreID)
		}

		items = append(items, order.NewItem(item.ProductID, item.Quantity, item.Price))
	}

	data := order.Build(buyerID, input.StoreID, items, input.DeliveryFee, input.Delivery)

	var createdOrder *order.Order

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		createdOrder, err = s.insert(ctx, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.OrderCreated(SourceDirect)

	return createdOrder, nil
}

// Checkout turns the caller's cart into an order priced from the live catalog
// and empties the cart. The cart row stays locked until the transaction ends.
func (s *service) Checkout(ctx context.Context, actor access.Actor, delivery order.Delivery) (*order.Order, error) {
	payment, err := normalizePayment(delivery.Payment)
	if err != nil {
		return nil, err
	}
	delivery.Payment = payment

	var createdOrder *order.Order

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.cartService.LockForCheckout(ctx, actor.UserID)
		if err != nil {
			return err
		}

		if c.IsEmpty() {
			return ErrEmptyCart
		}

		if !c.SingleStore() {
			return ErrMixedStores
		}

		items := make([]order.Item, 0, len(c.Items))
		for _, line := range c.Items {
			items = append(items, order.NewItem(line.ProductID, line.Quantity, line.Price))
		}

		createdOrder, err = s.insert(ctx, order.Build(actor.UserID, c.StoreID(), items, s.deliveryFee, delivery))
		if err != nil {
			return err
		}

		return s.cartService.Clear(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.OrderCreated(SourceCheckout)

	return createdOrder, nil
}

func (s *service) getByID(ctx context.Context, id int) (*order.Order, error) {
	existingOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderdb.ErrOrderNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching order by id", zap.Error(err))

		return nil, err
	}

	return existingOrder, nil
}

// Get returns an order visible to its buyer, the owner of its store and admins.
// Anyone else gets ErrNotFound.
func (s *service) Get(ctx context.Context, actor access.Actor, id int) (*order.Order, error) {
	existingOrder, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existingOrder.UserID != actor.UserID && !actor.OwnsStore(existingOrder.StoreID) && !actor.IsAdmin() {
		return nil, apperror.ErrNotFound
	}

	return existingOrder, nil
}

func (s *service) list(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching orders", zap.Error(err))
		return nil, err
	}

	return orders, nil
}

func (s *service) ListForUser(ctx context.Context, actor access.Actor) ([]order.Order, error) {
	return s.list(ctx, order.Filter{UserID: actor.UserID})
}

func (s *service) ListForStore(ctx context.Context, actor access.Actor) ([]order.Order, error) {
	if !actor.HasStore() {
		return nil, ErrNoStore
	}

	return s.list(ctx, order.Filter{StoreID: actor.StoreID})
}

func (s *service) ListAll(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	return s.list(ctx, filter)
}

// Approve records the caller's approval. The store owner approves for the store,
// an admin for the platform, an admin owning the store for both.
func (s *service) Approve(ctx context.Context, actor access.Actor, id int) (*order.Order, error) {
	existingOrder, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	storeApproval := actor.OwnsStore(existingOrder.StoreID)
	adminApproval := actor.IsAdmin()

	if !storeApproval && !adminApproval {
		return nil, apperror.ErrForbidden
	}

	approvedOrder, err := s.repository.Approve(ctx, id, storeApproval, adminApproval)
	if err != nil {
		if errors.Is(err, orderdb.ErrOrderNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when approving order", zap.Error(err))

		return nil, err
	}

	return approvedOrder, nil
}
