package userhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/user"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuserservice
type Service interface {
	GetByID(ctx context.Context, id int) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetAll(ctx context.Context) ([]user.User, error)
	UpdateProfile(ctx context.Context, id int, data user.Profile) (*user.User, error)
	Delete(ctx context.Context, id int) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	staticURL      string
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	staticURL string,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		staticURL:      staticURL,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/users", func(userRouter chi.Router) {
		userRouter.With(h.authMiddleware).Get("/me", apperror.Middleware(h.meHandler))
		userRouter.With(h.authMiddleware).Patch("/me", apperror.Middleware(h.updateProfileHandler))
		userRouter.Get("/{username}", apperror.Middleware(h.publicProfileHandler))
	})

	router.Route("/admin/users", func(adminRouter chi.Router) {
		adminRouter.Use(h.authMiddleware, access.RequireAdmin)

		adminRouter.Get("/", apperror.Middleware(h.getAllHandler))
		adminRouter.Get("/{id}", apperror.Middleware(h.getByIDHandler))
		adminRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		user
// @Success	200		{object}	user.UserResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/users/me [get]
func (h *handler) meHandler(w http.ResponseWriter, r *http.Request) error {
	actor := access.FromContext(r.Context())

	existingUser, err := h.service.GetByID(r.Context(), actor.UserID)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewUserResponse(*existingUser, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		user
// @Param		request	body		userhandler.ProfileRequest	true	"request body"
// @Success	200		{object}	user.UserResponse
// @Failure	400,409,500	{object}	apperror.AppError
// @Router		/users/me [patch]
func (h *handler) updateProfileHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProfileRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	actor := access.FromContext(r.Context())

	updatedUser, err := h.service.UpdateProfile(r.Context(), actor.UserID, dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewUserResponse(*updatedUser, h.staticURL))

	return nil
}

// @Tags		user
// @Param		username	path		string	true	"username"
// @Success	200			{object}	user.PublicProfileResponse
// @Failure	404,500		{object}	apperror.AppError
// @Router		/users/{username} [get]
func (h *handler) publicProfileHandler(w http.ResponseWriter, r *http.Request) error {
	existingUser, err := h.service.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		return err
	}

	render.JSON(w, r, NewPublicProfileResponse(*existingUser, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Success	200		{object}	user.UsersResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/users [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewUsersResponse(users, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path		int	true	"user id"
// @Success	200	{object}	user.UserResponse
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/users/{id} [get]
func (h *handler) getByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	existingUser, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewUserResponse(*existingUser, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Param		id	path	int	true	"user id"
// @Success	204
// @Failure	400,401,403,404,500	{object}	apperror.AppError
// @Router		/admin/users/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := handlers.IDParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
