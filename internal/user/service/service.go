package userservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/user"
	userdb "github.com/xw1nchester/hisba-backend/internal/user/db"
	"go.uber.org/zap"
)

var (
	ErrUserAlreadyExists     = apperror.NewConflictErr("the user with this username or email already exists")
	ErrIDNumberAlreadyExists = apperror.NewConflictErr("the user with this id number already exists")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockuserrepo
type Repository interface {
	Create(ctx context.Context, data user.User) (*user.User, error)
	GetByID(ctx context.Context, id int) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetAll(ctx context.Context) ([]user.User, error)
	UpdateProfile(ctx context.Context, id int, data user.Profile) (*user.User, error)
	SetSeller(ctx context.Context, id int, isSeller bool) error
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
	if errors.Is(err, userdb.ErrUserNotFound) {
		return apperror.ErrNotFound
	}

	s.logger.Error(msg, zap.Error(err))

	return err
}

func (s *service) GetByID(ctx context.Context, id int) (*user.User, error) {
	existingUser, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching user by id")
	}

	return existingUser, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	existingUser, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching user by username")
	}

	return existingUser, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	existingUser, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.translate(err, "unexpected error when fetching user by email")
	}

	return existingUser, nil
}

func (s *service) Create(ctx context.Context, data user.User) (*user.User, error) {
	createdUser, err := s.repository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, userdb.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}

		s.logger.Error("unexpected error when creating user", zap.Error(err))

		return nil, err
	}

	return createdUser, nil
}

func (s *service) GetAll(ctx context.Context) ([]user.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching users", zap.Error(err))
		return nil, err
	}

	return users, nil
}

func (s *service) UpdateProfile(ctx context.Context, id int, data user.Profile) (*user.User, error) {
	updatedUser, err := s.repository.UpdateProfile(ctx, id, data)
	if err != nil {
		if errors.Is(err, userdb.ErrIDNumberAlreadyExists) {
			return nil, ErrIDNumberAlreadyExists
		}

		return nil, s.translate(err, "unexpected error when updating user profile")
	}

	return updatedUser, nil
}

func (s *service) SetSeller(ctx context.Context, id int, isSeller bool) error {
	if err := s.repository.SetSeller(ctx, id, isSeller); err != nil {
		return s.translate(err, "unexpected error when setting seller flag")
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return s.translate(err, "unexpected error when deleting user")
	}

	return nil
}
