package ratingservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/rating"
	ratingdb "github.com/xw1nchester/hisba-backend/internal/market/rating/db"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"go.uber.org/zap"
)

var (
	ErrStoreNotFound = apperror.NewNotFoundErr("store not found")
	ErrInvalidValue  = apperror.NewAppError("rating value must be between 1 and 5")
	ErrInvalidWeight = apperror.NewAppError("rating weight must be greater than 0")
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockratingrepo . Repository
type Repository interface {
	Create(ctx context.Context, data rating.Rating) (*rating.Rating, error)
	GetByStoreID(ctx context.Context, storeID int) ([]rating.Rating, error)
	Delete(ctx context.Context, id int) error
}

//go:generate mockgen -destination=mocks/store/mock.go -package=mockstoreservice . StoreService
type StoreService interface {
	GetByID(ctx context.Context, id int) (*store.Store, error)
}

type service struct {
	repository   Repository
	storeService StoreService
	logger       *zap.Logger
}

func New(repository Repository, storeService StoreService, logger *zap.Logger) *service {
	return &service{
		repository:   repository,
		storeService: storeService,
		logger:       logger,
	}
}

// Create records the caller's rating of a store. Only admins may set a custom weight.
func (s *service) Create(ctx context.Context, actor access.Actor, data rating.Rating) (*rating.Rating, error) {
	if data.Value < 1 || data.Value > 5 {
		return nil, ErrInvalidValue
	}

	if !actor.IsAdmin() || data.Weight == 0 {
		data.Weight = rating.DefaultWeight
	}

	if data.Weight < 0 {
		return nil, ErrInvalidWeight
	}

	data.UserID = actor.UserID

	createdRating, err := s.repository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, ratingdb.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}

		s.logger.Error("unexpected error when creating rating", zap.Error(err))

		return nil, err
	}

	return createdRating, nil
}

func (s *service) GetByStoreID(ctx context.Context, storeID int) (*rating.Summary, error) {
	if _, err := s.storeService.GetByID(ctx, storeID); err != nil {
		return nil, err
	}

	ratings, err := s.repository.GetByStoreID(ctx, storeID)
	if err != nil {
		s.logger.Error("unexpected error when fetching store ratings", zap.Error(err))
		return nil, err
	}

	return &rating.Summary{
		Ratings: ratings,
		Average: rating.Average(ratings),
	}, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, ratingdb.ErrRatingNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting rating", zap.Error(err))

		return err
	}

	return nil
}
