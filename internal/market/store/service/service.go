package storeservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	storedb "github.com/xw1nchester/hisba-backend/internal/market/store/db"
	"github.com/xw1nchester/hisba-backend/pkg/transactor"
	"go.uber.org/zap"
)

var (
	ErrStoreAlreadyExists = apperror.NewConflictErr("the user already owns a store")
	ErrOwnerNotFound      = apperror.NewNotFoundErr("user not found")
	ErrNoStore            = apperror.NewNotFoundErr("you do not have a store")
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockstorerepo . Repository
type Repository interface {
	Create(ctx context.Context, data store.Store) (*store.Store, error)
	GetByID(ctx context.Context, id int) (*store.Store, error)
	GetByUserID(ctx context.Context, userID int) (*store.Store, error)
	GetAll(ctx context.Context, filter store.Filter) ([]store.Store, error)
	TopRated(ctx context.Context, limit int) ([]store.Store, error)
	Update(ctx context.Context, id int, data store.Update) (*store.Store, error)
	SetApproved(ctx context.Context, id int, approved bool) (*store.Store, error)
	Delete(ctx context.Context, id int) error
}

//go:generate mockgen -destination=mocks/user/mock.go -package=mockuserservice . UserService
type UserService interface {
	SetSeller(ctx context.Context, id int, isSeller bool) error
}

type service struct {
	repository  Repository
	userService UserService
	txManager   transactor.Manager
	logger      *zap.Logger
}

func New(
	repository Repository,
	userService UserService,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *service) notFound(err error, msg string) error {
	if errors.Is(err, storedb.ErrStoreNotFound) {
		return apperror.ErrNotFound
	}

	s.logger.Error(msg, zap.Error(err))

	return err
}

func (s *service) GetByID(ctx context.Context, id int) (*store.Store, error) {
	existingStore, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, "unexpected error when fetching store by id")
	}

	return existingStore, nil
}

func (s *service) GetByUserID(ctx context.Context, userID int) (*store.Store, error) {
	existingStore, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.notFound(err, "unexpected error when fetching store by user id")
	}

	return existingStore, nil
}

func (s *service) GetOwn(ctx context.Context, actor access.Actor) (*store.Store, error) {
	if !actor.HasStore() {
		return nil, ErrNoStore
	}

	return s.GetByID(ctx, actor.StoreID)
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]store.Store, error) {
	stores, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching stores", zap.Error(err))
		return nil, err
	}

	return stores, nil
}

func (s *service) TopRated(ctx context.Context, limit int) ([]store.Store, error) {
	stores, err := s.repository.TopRated(ctx, limit)
	if err != nil {
		s.logger.Error("unexpected error when fetching top rated stores", zap.Error(err))
		return nil, err
	}

	return stores, nil
}

// Create inserts a store for data.UserID, refusing a second store per user.
func (s *service) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	_, err := s.repository.GetByUserID(ctx, data.UserID)
	if err == nil {
		return nil, ErrStoreAlreadyExists
	}
	if !errors.Is(err, storedb.ErrStoreNotFound) {
		s.logger.Error("unexpected error when fetching store by user id", zap.Error(err))
		return nil, err
	}

	createdStore, err := s.repository.Create(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, storedb.ErrStoreAlreadyExists):
			return nil, ErrStoreAlreadyExists
		case errors.Is(err, storedb.ErrOwnerNotFound):
			return nil, ErrOwnerNotFound
		}

		s.logger.Error("unexpected error when creating store", zap.Error(err))

		return nil, err
	}

	return createdStore, nil
}

// CreateForUser creates a store on behalf of a user and marks the user as a seller.
func (s *service) CreateForUser(ctx context.Context, data store.Store) (*store.Store, error) {
	var createdStore *store.Store

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		createdStore, err = s.Create(ctx, data)
		if err != nil {
			return err
		}

		return s.userService.SetSeller(ctx, data.UserID, true)
	})
	if err != nil {
		return nil, err
	}

	return createdStore, nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id int, data store.Update) (*store.Store, error) {
	if !actor.OwnsStore(id) && !actor.IsAdmin() {
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, apperror.ErrForbidden
	}

	updatedStore, err := s.repository.Update(ctx, id, data)
	if err != nil {
		return nil, s.notFound(err, "unexpected error when updating store")
	}

	return updatedStore, nil
}

func (s *service) Approve(ctx context.Context, id int) (*store.Store, error) {
	approvedStore, err := s.repository.SetApproved(ctx, id, true)
	if err != nil {
		return nil, s.notFound(err, "unexpected error when approving store")
	}

	return approvedStore, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return s.notFound(err, "unexpected error when deleting store")
	}

	return nil
}
