package mediaservice

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/media"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrInvalidFolder    = apperror.NewAppError("folder must be one of [profile_images store_covers products]")
	ErrInvalidExtension = apperror.NewAppError("only jpg, jpeg, png, webp and gif images are allowed")
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
}

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockobjectstorage
type ObjectStorage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type service struct {
	storage   ObjectStorage
	bucket    string
	staticURL string
	logger    *zap.Logger
}

func New(storage ObjectStorage, bucket, staticURL string, logger *zap.Logger) *service {
	return &service{
		storage:   storage,
		bucket:    bucket,
		staticURL: staticURL,
		logger:    logger,
	}
}

// Upload stores the file under folder with a random name that keeps the original extension.
func (s *service) Upload(
	ctx context.Context,
	folder media.Folder,
	reader io.Reader,
	size int64,
	fileName, contentType string,
) (*media.File, error) {
	if !folder.Valid() {
		return nil, ErrInvalidFolder
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !allowedExtensions[extension] {
		return nil, ErrInvalidExtension
	}

	key := fmt.Sprintf("%s/%s.%s", folder, uuid.NewString(), extension)

	info, err := s.storage.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("error when uploading object", zap.Error(err))
		return nil, err
	}

	s.logger.Info("uploaded object",
		zap.String("bucket", info.Bucket),
		zap.String("key", info.Key),
		zap.String("etag", info.ETag),
		zap.Int64("size", info.Size),
	)

	return &media.File{
		Key:         key,
		URL:         utils.MediaURL(s.staticURL, key),
		ContentType: contentType,
		Size:        size,
	}, nil
}
