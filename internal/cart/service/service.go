package cartservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	cartdb "github.com/xw1nchester/hisba-backend/internal/cart/db"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/pkg/transactor"
	"go.uber.org/zap"
)

var (
	ErrItemNotFound    = apperror.NewNotFoundErr("product is not in the cart")
	ErrProductNotFound = apperror.NewNotFoundErr("product not found")
	ErrInvalidQuantity = apperror.NewAppError("quantity must be greater than 0")
	ErrStockExceeded   = apperror.NewAppError("requested quantity exceeds available stock")
	ErrMixedStores     = apperror.NewConflictErr("cart contains products from another store")
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockcartrepo . Repository
type Repository interface {
	GetOrCreate(ctx context.Context, userID int) (int, error)
	GetForUpdate(ctx context.Context, userID int) (int, error)
	GetItems(ctx context.Context, cartID int) ([]cart.Item, error)
	GetItem(ctx context.Context, cartID, productID int) (*cart.Item, error)
	AddItem(ctx context.Context, cartID, productID, quantity int) error
	SetItemQuantity(ctx context.Context, cartID, productID, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int) error
	Clear(ctx context.Context, cartID int) error
}

//go:generate mockgen -destination=mocks/product/mock.go -package=mockproductservice . ProductService
type ProductService interface {
	GetByID(ctx context.Context, id int) (*product.Product, error)
}

type service struct {
	repository     Repository
	productService ProductService
	txManager      transactor.Manager
	logger         *zap.Logger
}

func New(
	repository Repository,
	productService ProductService,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:     repository,
		productService: productService,
		txManager:      txManager,
		logger:         logger,
	}
}

func (s *service) unexpected(err error, msg string) error {
	s.logger.Error(msg, zap.Error(err))
	return err
}

func (s *service) load(ctx context.Context, cartID, userID int) (*cart.Cart, error) {
	items, err := s.repository.GetItems(ctx, cartID)
	if err != nil {
		return nil, s.unexpected(err, "unexpected error when fetching cart items")
	}

	return cart.New(cartID, userID, items), nil
}

func (s *service) GetCart(ctx context.Context, userID int) (*cart.Cart, error) {
	cartID, err := s.repository.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, s.unexpected(err, "unexpected error when fetching cart")
	}

	return s.load(ctx, cartID, userID)
}

// AddItem puts quantity units of a product into the user's cart, merging with an existing line.
func (s *service) AddItem(ctx context.Context, userID, productID, quantity int) (*cart.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	existingProduct, err := s.productService.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	var updatedCart *cart.Cart

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		cartID, err := s.repository.GetOrCreate(ctx, userID)
		if err != nil {
			return s.unexpected(err, "unexpected error when fetching cart")
		}

		current, err := s.load(ctx, cartID, userID)
		if err != nil {
			return err
		}

		if !current.IsEmpty() && current.StoreID() != existingProduct.StoreID {
			return ErrMixedStores
		}

		if err := s.repository.AddItem(ctx, cartID, productID, quantity); err != nil {
			if errors.Is(err, cartdb.ErrProductNotFound) {
				return ErrProductNotFound
			}

			return s.unexpected(err, "unexpected error when adding cart item")
		}

		updatedCart, err = s.load(ctx, cartID, userID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updatedCart, nil
}

// SetItemQuantity replaces the quantity of an existing line. The line is left untouched
// when quantity exceeds the product stock.
func (s *service) SetItemQuantity(ctx context.Context, userID, productID, quantity int) (*cart.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cartID, err := s.repository.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, s.unexpected(err, "unexpected error when fetching cart")
	}

	item, err := s.repository.GetItem(ctx, cartID, productID)
	if err != nil {
		if errors.Is(err, cartdb.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, s.unexpected(err, "unexpected error when fetching cart item")
	}

	if quantity > item.Stock {
		return nil, ErrStockExceeded
	}

	if err := s.repository.SetItemQuantity(ctx, cartID, productID, quantity); err != nil {
		if errors.Is(err, cartdb.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, s.unexpected(err, "unexpected error when updating cart item")
	}

	return s.load(ctx, cartID, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID int) (*cart.Cart, error) {
	cartID, err := s.repository.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, s.unexpected(err, "unexpected error when fetching cart")
	}

	if err := s.repository.RemoveItem(ctx, cartID, productID); err != nil {
		if errors.Is(err, cartdb.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, s.unexpected(err, "unexpected error when removing cart item")
	}

	return s.load(ctx, cartID, userID)
}

// LockForCheckout locks the user's cart and returns it with live prices.
// It must run inside a transaction. A user without a cart gets an empty one.
func (s *service) LockForCheckout(ctx context.Context, userID int) (*cart.Cart, error) {
	cartID, err := s.repository.GetForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, cartdb.ErrCartNotFound) {
			return cart.New(0, userID, nil), nil
		}

		return nil, s.unexpected(err, "unexpected error when locking cart")
	}

	return s.load(ctx, cartID, userID)
}

func (s *service) Clear(ctx context.Context, cartID int) error {
	if err := s.repository.Clear(ctx, cartID); err != nil {
		return s.unexpected(err, "unexpected error when clearing cart")
	}

	return nil
}
