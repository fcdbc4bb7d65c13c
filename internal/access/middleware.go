package access

import (
	"context"
	"errors"
	"net/http"

	"github.com/xw1nchester/hisba-backend/internal/apperror"
	jwtauth "github.com/xw1nchester/hisba-backend/internal/auth/jwt"
	"go.uber.org/zap"
)

var ErrActorNotFound = errors.New("actor not found")

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mockaccess
type Resolver interface {
	Resolve(ctx context.Context, userID int) (Actor, error)
}

// NewMiddleware resolves the authenticated user id into an Actor.
// It must run after the jwt middleware.
func NewMiddleware(logger *zap.Logger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return apperror.Middleware(func(w http.ResponseWriter, r *http.Request) error {
			userID, ok := r.Context().Value(jwtauth.UserIDContextKey{}).(int)
			if !ok {
				return apperror.ErrUnauthorized
			}

			actor, err := resolver.Resolve(r.Context(), userID)
			if err != nil {
				if errors.Is(err, ErrActorNotFound) {
					return apperror.ErrUnauthorized
				}

				logger.Error("unexpected error when resolving actor", zap.Int("user_id", userID), zap.Error(err))

				return err
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))

			return nil
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return require(next, Actor.IsAdmin)
}

func RequireModerator(next http.Handler) http.Handler {
	return require(next, Actor.CanModerate)
}

func require(next http.Handler, allowed func(Actor) bool) http.Handler {
	return apperror.Middleware(func(w http.ResponseWriter, r *http.Request) error {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			return apperror.ErrUnauthorized
		}

		if !allowed(actor) {
			return apperror.ErrForbidden
		}

		next.ServeHTTP(w, r)

		return nil
	})
}
