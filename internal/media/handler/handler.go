package mediahandler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/media"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockmediaservice
type Service interface {
	Upload(ctx context.Context, folder media.Folder, reader io.Reader, size int64, fileName, contentType string) (*media.File, error)
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/uploads", apperror.Middleware(h.uploadHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		media
// @Accept		multipart/form-data
// @Param		folder	query		string	true	"profile_images, store_covers or products"
// @Param		file	formData	file	true	"image"
// @Success	201		{object}	media.File
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/uploads [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to read file: %s", err.Error()))
	}
	defer file.Close()

	uploaded, err := h.service.Upload(
		r.Context(),
		media.Folder(r.URL.Query().Get("folder")),
		file,
		header.Size,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, uploaded)

	return nil
}
