package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/auth"
	authdb "github.com/xw1nchester/hisba-backend/internal/auth/db"
	"github.com/xw1nchester/hisba-backend/internal/user"
	"github.com/xw1nchester/hisba-backend/pkg/transactor"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials    = apperror.NewAppError("invalid credentials")
	ErrEmailAlreadyExists    = apperror.NewConflictErr("the user with this email already exists")
	ErrUsernameAlreadyExists = apperror.NewConflictErr("the user with this username already exists")
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockauthrepo . Repository
type Repository interface {
	CreateSession(ctx context.Context, token string, userAgent string, userID int, expiryDate time.Time) error
	DeleteNotExpirySessionByToken(ctx context.Context, token string) (int, error)
}

//go:generate mockgen -destination=mocks/user/mock.go -package=mockuserservice . UserService
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, data user.User) (*user.User, error)
}

//go:generate mockgen -destination=mocks/token/mock.go -package=mocktoken . TokenManager
type TokenManager interface {
	GenerateToken(userID int) (string, error)
	GetRefreshTokenTTL() time.Duration
}

//go:generate mockgen -destination=mocks/password/mock.go -package=mockpassword . PasswordManager
type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	authRepository  Repository
	userService     UserService
	tokenManager    TokenManager
	passwordManager PasswordManager
	txManager       transactor.Manager
	logger          *zap.Logger
}

func New(
	authRepository Repository,
	userService UserService,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		authRepository:  authRepository,
		userService:     userService,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *service) generateTokens(ctx context.Context, userAgent string, userID int) (*auth.Tokens, error) {
	accessToken, err := s.tokenManager.GenerateToken(userID)
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))

		return nil, err
	}

	refreshToken := uuid.New().String()
	expiryDate := time.Now().Add(s.tokenManager.GetRefreshTokenTTL())

	err = s.authRepository.CreateSession(ctx, refreshToken, userAgent, userID, expiryDate)
	if err != nil {
		s.logger.Error("unexpected error when generating refresh token", zap.Error(err))
		return nil, err
	}

	return &auth.Tokens{
		JwtToken:     auth.JwtToken{AccessToken: accessToken},
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) Signup(ctx context.Context, dto auth.SignupRequest, userAgent string) (*auth.AuthFullResponse, error) {
	_, err := s.userService.GetByUsername(ctx, dto.Username)
	if err == nil {
		return nil, ErrUsernameAlreadyExists
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	_, err = s.userService.GetByEmail(ctx, dto.Email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	passHash, err := s.passwordManager.GenerateHashFromPassword([]byte(dto.Password))
	if err != nil {
		return nil, err
	}

	data := user.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: passHash,
		Phone:        dto.Phone,
	}

	if dto.Age != nil {
		age := int(*dto.Age)
		data.Age = &age
	}

	if dto.IDNumber != "" {
		data.IDNumber = &dto.IDNumber
	}

	var (
		createdUser *user.User
		tokens      *auth.Tokens
	)

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		createdUser, err = s.userService.Create(ctx, data)
		if err != nil {
			return err
		}

		tokens, err = s.generateTokens(ctx, userAgent, createdUser.ID)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &auth.AuthFullResponse{
		UserResponse: user.UserResponse{User: *createdUser},
		Tokens:       *tokens,
		Role:         access.RoleFor(createdUser.IsAdmin, createdUser.IsSeller),
	}, nil
}

func (s *service) Login(ctx context.Context, dto auth.LoginRequest, userAgent string) (*auth.AuthFullResponse, error) {
	existingUser, err := s.userService.GetByUsername(ctx, dto.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := s.passwordManager.CompareHashAndPassword(existingUser.PasswordHash, []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(ctx, userAgent, existingUser.ID)
	if err != nil {
		return nil, err
	}

	return &auth.AuthFullResponse{
		UserResponse: user.UserResponse{User: *existingUser},
		Tokens:       *tokens,
		Role:         access.RoleFor(existingUser.IsAdmin, existingUser.IsSeller),
	}, nil
}

func (s *service) Refresh(ctx context.Context, token string, userAgent string) (*auth.Tokens, error) {
	var tokens *auth.Tokens

	if err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		userID, err := s.authRepository.DeleteNotExpirySessionByToken(ctx, token)
		if err != nil {
			if !errors.Is(err, authdb.ErrSessionNotFound) {
				s.logger.Error("unexpected error when deleting refresh token", zap.Error(err))
			}
			return err
		}

		tokens, err = s.generateTokens(ctx, userAgent, userID)
		if err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return tokens, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	_, err := s.authRepository.DeleteNotExpirySessionByToken(ctx, token)
	if err != nil && !errors.Is(err, authdb.ErrSessionNotFound) {
		s.logger.Error("unexpected error when deleting refresh token", zap.Error(err))
		return err
	}

	return nil
}
