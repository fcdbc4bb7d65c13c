package authhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/auth"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"go.uber.org/zap"
)

const (
	RefreshTokenCookieName = "refresh-token"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockauthservice
type Service interface {
	Signup(ctx context.Context, dto auth.SignupRequest, userAgent string) (*auth.AuthFullResponse, error)
	Login(ctx context.Context, dto auth.LoginRequest, userAgent string) (*auth.AuthFullResponse, error)
	Refresh(ctx context.Context, token string, userAgent string) (*auth.Tokens, error)
	Logout(ctx context.Context, token string) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/signup", apperror.Middleware(h.signupHandler))
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))
		authRouter.Get("/refresh", apperror.Middleware(h.refreshHandler))
		authRouter.Get("/logout", apperror.Middleware(h.logoutHandler))
	})
}

func (h *handler) setRefreshTokenToCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func (h *handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (h *handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, resp *auth.AuthFullResponse) {
	h.setRefreshTokenToCookie(w, resp.RefreshToken)

	render.JSON(w, r, auth.AuthResponse{
		UserResponse: resp.UserResponse,
		JwtToken:     resp.JwtToken,
		Role:         resp.Role,
	})
}

// @Tags		auth
// @Param		request	body		auth.SignupRequest	true	"request body"
// @Success	201		{object}	auth.AuthResponse
// @Failure	400,409,500	{object}	apperror.AppError
// @Router		/auth/signup [post]
func (h *handler) signupHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.SignupRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	resp, err := h.service.Signup(r.Context(), dto, r.Header.Get("User-Agent"))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	h.writeAuthResponse(w, r, resp)

	return nil
}

// @Tags		auth
// @Param		request	body		auth.LoginRequest	true	"request body"
// @Success	200		{object}	auth.AuthResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/auth/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	resp, err := h.service.Login(r.Context(), dto, r.Header.Get("User-Agent"))
	if err != nil {
		return err
	}

	h.writeAuthResponse(w, r, resp)

	return nil
}

// @Tags		auth
// @Success	200		{object}	auth.JwtToken
// @Failure	401,500	{object}	apperror.AppError
// @Router		/auth/refresh [get]
func (h *handler) refreshHandler(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(RefreshTokenCookieName)
	if err != nil {
		return apperror.ErrUnauthorized
	}

	tokens, err := h.service.Refresh(r.Context(), cookie.Value, r.Header.Get("User-Agent"))
	if err != nil {
		return apperror.ErrUnauthorized
	}

	h.setRefreshTokenToCookie(w, tokens.RefreshToken)

	render.JSON(w, r, auth.JwtToken{AccessToken: tokens.AccessToken})

	return nil
}

// @Tags		auth
// @Success	200
// @Router		/auth/logout [get]
func (h *handler) logoutHandler(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(RefreshTokenCookieName)
	if err != nil {
		return nil
	}

	h.clearCookie(w)

	return h.service.Logout(r.Context(), cookie.Value)
}
