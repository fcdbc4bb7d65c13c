package storerequestservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/storerequest"
	storerequestdb "github.com/xw1nchester/hisba-backend/internal/storerequest/db"
	"github.com/xw1nchester/hisba-backend/pkg/transactor"
	"go.uber.org/zap"
)

var (
	ErrDuplicateRequest = apperror.NewConflictErr("you already have a pending or approved store request")
	ErrNotPending       = apperror.NewConflictErr("store request is no longer pending")
	ErrNoRequest        = apperror.NewNotFoundErr("store request not found")
	ErrUserNotFound     = apperror.NewNotFoundErr("user not found")
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockstorerequestrepo . Repository
type Repository interface {
	Create(ctx context.Context, data storerequest.Request) (*storerequest.Request, error)
	GetByID(ctx context.Context, id int) (*storerequest.Request, error)
	GetByIDForUpdate(ctx context.Context, id int) (*storerequest.Request, error)
	GetByUserID(ctx context.Context, userID int) (*storerequest.Request, error)
	GetAll(ctx context.Context, status storerequest.Status) ([]storerequest.Request, error)
	SetStatus(ctx context.Context, id int, status storerequest.Status, rejectReason string) (*storerequest.Request, error)
}

//go:generate mockgen -destination=mocks/store/mock.go -package=mockstoreservice . StoreService
type StoreService interface {
	GetByUserID(ctx context.Context, userID int) (*store.Store, error)
	Create(ctx context.Context, data store.Store) (*store.Store, error)
}

//go:generate mockgen -destination=mocks/user/mock.go -package=mockuserservice . UserService
type UserService interface {
	SetSeller(ctx context.Context, id int, isSeller bool) error
}

//go:generate mockgen -destination=mocks/metrics/mock.go -package=mockmetrics . Metrics
type Metrics interface {
	StoreRequestResolved(outcome string)
}

type service struct {
	repository   Repository
	storeService StoreService
	userService  UserService
	metrics      Metrics
	txManager    transactor.Manager
	logger       *zap.Logger
}

func New(
	repository Repository,
	storeService StoreService,
	userService UserService,
	metrics Metrics,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:   repository,
		storeService: storeService,
		userService:  userService,
		metrics:      metrics,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *service) translate(err error, msg string) error {
	if errors.Is(err, storerequestdb.ErrRequestNotFound) {
		return ErrNoRequest
	}

	s.logger.Error(msg, zap.Error(err))

	return err
}

// Create files a request for the caller. Only one pending or approved request per user is allowed.
func (s *service) Create(ctx context.Context, userID int, data storerequest.Request) (*storerequest.Request, error) {
	data.UserID = userID

	createdRequest, err := s.repository.Create(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, storerequestdb.ErrActiveRequestExists):
			return nil, ErrDuplicateRequest
		case errors.Is(err, storerequestdb.ErrUserNotFound):
			return nil, ErrUserNotFound
		}

		s.logger.Error("unexpected error when creating store request", zap.Error(err))

		return nil, err
	}

	return createdRequest, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*storerequest.Request, error) {
	request, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching store request by id")
	}

	return request, nil
}

func (s *service) GetByUserID(ctx context.Context, userID int) (*storerequest.Request, error) {
	request, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching store request by user id")
	}

	return request, nil
}

// GetStatus returns the request status of userID to that user or an admin.
func (s *service) GetStatus(ctx context.Context, actor access.Actor, userID int) (storerequest.Status, error) {
	if actor.UserID != userID && !actor.IsAdmin() {
		return "", apperror.ErrForbidden
	}

	request, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	return request.Status, nil
}

func (s *service) GetAll(ctx context.Context, status storerequest.Status) ([]storerequest.Request, error) {
	requests, err := s.repository.GetAll(ctx, status)
	if err != nil {
		s.logger.Error("unexpected error when fetching store requests", zap.Error(err))
		return nil, err
	}

	return requests, nil
}

// Approve provisions an approved store for the requester and marks them as a seller.
// When the requester already owns a store the request becomes Duplicate and is returned
// without an error. Reviewing an Approved or Duplicate request again returns it unchanged.
func (s *service) Approve(ctx context.Context, id int) (*storerequest.Request, error) {
	var (
		resolved *storerequest.Request
		changed  bool
	)

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return s.translate(err, "unexpected error when locking store request")
		}

		if request.Status.Final() {
			resolved = request
			return nil
		}

		if request.Status == storerequest.StatusRejected {
			return ErrNotPending
		}

		_, err = s.storeService.GetByUserID(ctx, request.UserID)
		switch {
		case err == nil:
			resolved, err = s.repository.SetStatus(ctx, id, storerequest.StatusDuplicate, "")
			if err != nil {
				return s.translate(err, "unexpected error when marking store request as duplicate")
			}
			changed = true
			return nil
		case !errors.Is(err, apperror.ErrNotFound):
			return err
		}

		if _, err := s.storeService.Create(ctx, request.Store()); err != nil {
			return err
		}

		resolved, err = s.repository.SetStatus(ctx, id, storerequest.StatusApproved, "")
		if err != nil {
			return s.translate(err, "unexpected error when approving store request")
		}

		if err := s.userService.SetSeller(ctx, request.UserID, true); err != nil {
			return err
		}

		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.StoreRequestResolved(string(resolved.Status))
	}

	return resolved, nil
}

func (s *service) Reject(ctx context.Context, id int, reason string) (*storerequest.Request, error) {
	var rejected *storerequest.Request

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return s.translate(err, "unexpected error when locking store request")
		}

		if request.Status != storerequest.StatusPending {
			return ErrNotPending
		}

		rejected, err = s.repository.SetStatus(ctx, id, storerequest.StatusRejected, reason)
		if err != nil {
			return s.translate(err, "unexpected error when rejecting store request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.StoreRequestResolved(string(rejected.Status))

	return rejected, nil
}
