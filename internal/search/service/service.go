package searchservice

import (
	"context"
	"strings"

	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/search"
	"go.uber.org/zap"
)

var ErrEmptyQuery = apperror.NewAppError("search query must not be empty")

//go:generate mockgen -destination=mocks/product/mock.go -package=mockproductservice . ProductService
type ProductService interface {
	GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error)
}

//go:generate mockgen -destination=mocks/store/mock.go -package=mockstoreservice . StoreService
type StoreService interface {
	GetAll(ctx context.Context, filter store.Filter) ([]store.Store, error)
}

type service struct {
	productService ProductService
	storeService   StoreService
	logger         *zap.Logger
}

func New(productService ProductService, storeService StoreService, logger *zap.Logger) *service {
	return &service{
		productService: productService,
		storeService:   storeService,
		logger:         logger,
	}
}

func (s *service) Search(ctx context.Context, query string, limit int) (*search.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	products, err := s.productService.GetAll(ctx, product.Filter{
		ApprovedOnly: true,
		Search:       query,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	stores, err := s.storeService.GetAll(ctx, store.Filter{
		ApprovedOnly: true,
		Search:       query,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	return &search.Result{
		Query:    query,
		Products: products,
		Stores:   stores,
	}, nil
}
