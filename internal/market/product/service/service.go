package productservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	productdb "github.com/xw1nchester/hisba-backend/internal/market/product/db"
	"go.uber.org/zap"
)

var (
	ErrNoStore       = apperror.NewForbiddenErr("you need a store to add products")
	ErrStoreNotFound = apperror.NewNotFoundErr("store not found")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductrepo
type Repository interface {
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	GetByIDs(ctx context.Context, ids []int) ([]product.Product, error)
	GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error)
	MostOrdered(ctx context.Context, limit int) ([]product.Popular, error)
	Update(ctx context.Context, id int, data product.Update) (*product.Product, error)
	SetApproved(ctx context.Context, id int, approved bool) (*product.Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) translate(err error, msg string) error {
	switch {
	case errors.Is(err, productdb.ErrProductNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, productdb.ErrStoreNotFound):
		return ErrStoreNotFound
	}

	s.logger.Error(msg, zap.Error(err))

	return err
}

func (s *service) GetByID(ctx context.Context, id int) (*product.Product, error) {
	existingProduct, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching product by id")
	}

	return existingProduct, nil
}

// GetByIDs returns the products found for ids keyed by id. Missing ids are absent from the map.
func (s *service) GetByIDs(ctx context.Context, ids []int) (map[int]product.Product, error) {
	products, err := s.repository.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("unexpected error when fetching products by ids", zap.Error(err))
		return nil, err
	}

	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return byID, nil
}

func (s *service) GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	products, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (s *service) MostOrdered(ctx context.Context, limit int) ([]product.Popular, error) {
	products, err := s.repository.MostOrdered(ctx, limit)
	if err != nil {
		s.logger.Error("unexpected error when fetching most ordered products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

// Create adds a product to the caller's own store. It stays unapproved until moderated.
func (s *service) Create(ctx context.Context, actor access.Actor, data product.Product) (*product.Product, error) {
	if !actor.HasStore() {
		return nil, ErrNoStore
	}

	data.StoreID = actor.StoreID
	data.IsApproved = false

	createdProduct, err := s.repository.Create(ctx, data)
	if err != nil {
		return nil, s.translate(err, "unexpected error when creating product")
	}

	return createdProduct, nil
}

// CreateForStore is the admin variant of Create, targeting data.StoreID.
func (s *service) CreateForStore(ctx context.Context, data product.Product) (*product.Product, error) {
	createdProduct, err := s.repository.Create(ctx, data)
	if err != nil {
		return nil, s.translate(err, "unexpected error when creating product")
	}

	return createdProduct, nil
}

func (s *service) authorize(ctx context.Context, actor access.Actor, id int) error {
	existingProduct, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.OwnsStore(existingProduct.StoreID) && !actor.IsAdmin() {
		return apperror.ErrForbidden
	}

	return nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id int, data product.Update) (*product.Product, error) {
	if err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	updatedProduct, err := s.repository.Update(ctx, id, data)
	if err != nil {
		return nil, s.translate(err, "unexpected error when updating product")
	}

	return updatedProduct, nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id int) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return s.translate(err, "unexpected error when deleting product")
	}

	return nil
}

func (s *service) Approve(ctx context.Context, id int) (*product.Product, error) {
	approvedProduct, err := s.repository.SetApproved(ctx, id, true)
	if err != nil {
		return nil, s.translate(err, "unexpected error when approving product")
	}

	return approvedProduct, nil
}
