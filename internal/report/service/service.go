package reportservice

import (
	"context"
	"strconv"

	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/report"
	"go.uber.org/zap"
)

const (
	overviewTopStores   = 5
	overviewMostOrdered = 5
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockreportrepo . Repository
type Repository interface {
	Dashboard(ctx context.Context) (*report.Dashboard, error)
	SalesByStore(ctx context.Context, limit int) ([]report.StoreSales, error)
	UserActivity(ctx context.Context, limit int) ([]report.UserActivity, error)
	RecentOrders(ctx context.Context, limit int) ([]report.RecentOrder, error)
	RecentUsers(ctx context.Context, limit int) ([]report.RecentUser, error)
	RecentStoreRequests(ctx context.Context, limit int) ([]report.RecentStoreRequest, error)
}

//go:generate mockgen -destination=mocks/store/mock.go -package=mockstoreservice . StoreService
type StoreService interface {
	TopRated(ctx context.Context, limit int) ([]store.Store, error)
}

//go:generate mockgen -destination=mocks/product/mock.go -package=mockproductservice . ProductService
type ProductService interface {
	MostOrdered(ctx context.Context, limit int) ([]product.Popular, error)
}

//go:generate mockgen -destination=mocks/cache/mock.go -package=mockreportcache . Cache
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type service struct {
	repository     Repository
	storeService   StoreService
	productService ProductService
	cache          Cache
	logger         *zap.Logger
}

func New(
	repository Repository,
	storeService StoreService,
	productService ProductService,
	cache Cache,
	logger *zap.Logger,
) *service {
	return &service{
		repository:     repository,
		storeService:   storeService,
		productService: productService,
		cache:          cache,
		logger:         logger,
	}
}

// cached serves key from the cache or loads and stores it. Cache failures only degrade to a fresh load.
func cached[T any](ctx context.Context, s *service, key string, load func() (T, error)) (T, error) {
	var value T

	found, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		s.logger.Warn("failed to read report cache", zap.String("key", key), zap.Error(err))
	}
	if found {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("failed to write report cache", zap.String("key", key), zap.Error(err))
	}

	return value, nil
}

func (s *service) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	dashboard, err := cached(ctx, s, "dashboard", func() (report.Dashboard, error) {
		d, err := s.repository.Dashboard(ctx)
		if err != nil {
			return report.Dashboard{}, err
		}

		return *d, nil
	})
	if err != nil {
		s.logger.Error("unexpected error when building dashboard", zap.Error(err))
		return nil, err
	}

	return &dashboard, nil
}

func (s *service) Overview(ctx context.Context) (*report.Overview, error) {
	dashboard, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	topStores, err := s.TopStores(ctx, overviewTopStores)
	if err != nil {
		return nil, err
	}

	mostOrdered, err := s.MostOrdered(ctx, overviewMostOrdered)
	if err != nil {
		return nil, err
	}

	return &report.Overview{
		Dashboard:   *dashboard,
		TopStores:   topStores,
		MostOrdered: mostOrdered,
	}, nil
}

func (s *service) SalesByStore(ctx context.Context, limit int) ([]report.StoreSales, error) {
	key := "sales:" + strconv.Itoa(limit)

	sales, err := cached(ctx, s, key, func() ([]report.StoreSales, error) {
		return s.repository.SalesByStore(ctx, limit)
	})
	if err != nil {
		s.logger.Error("unexpected error when fetching sales by store", zap.Error(err))
		return nil, err
	}

	return sales, nil
}

func (s *service) UserActivity(ctx context.Context, limit int) ([]report.UserActivity, error) {
	key := "activity:" + strconv.Itoa(limit)

	activity, err := cached(ctx, s, key, func() ([]report.UserActivity, error) {
		return s.repository.UserActivity(ctx, limit)
	})
	if err != nil {
		s.logger.Error("unexpected error when fetching user activity", zap.Error(err))
		return nil, err
	}

	return activity, nil
}

// Recent is never cached.
func (s *service) Recent(ctx context.Context, limit int) (*report.Recent, error) {
	orders, err := s.repository.RecentOrders(ctx, limit)
	if err != nil {
		s.logger.Error("unexpected error when fetching recent orders", zap.Error(err))
		return nil, err
	}

	users, err := s.repository.RecentUsers(ctx, limit)
	if err != nil {
		s.logger.Error("unexpected error when fetching recent users", zap.Error(err))
		return nil, err
	}

	requests, err := s.repository.RecentStoreRequests(ctx, limit)
	if err != nil {
		s.logger.Error("unexpected error when fetching recent store requests", zap.Error(err))
		return nil, err
	}

	return &report.Recent{
		Orders:        orders,
		Users:         users,
		StoreRequests: requests,
	}, nil
}

func (s *service) TopStores(ctx context.Context, limit int) ([]store.Store, error) {
	return cached(ctx, s, "top-stores:"+strconv.Itoa(limit), func() ([]store.Store, error) {
		return s.storeService.TopRated(ctx, limit)
	})
}

func (s *service) MostOrdered(ctx context.Context, limit int) ([]product.Popular, error) {
	return cached(ctx, s, "most-ordered:"+strconv.Itoa(limit), func() ([]product.Popular, error) {
		return s.productService.MostOrdered(ctx, limit)
	})
}
