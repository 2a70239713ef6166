package impl

import (
	"context"
	"io"
	"strings"

	"localfy/internal/domain/service"
	"localfy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrMediaDisabled is returned when no media bucket is configured.
	ErrMediaDisabled = errors.New("media storage not configured")
	// ErrNotAnImage is returned for uploads without an image content type.
	ErrNotAnImage = errors.New("only image uploads are accepted")
)

type mediaService struct {
	storage       service.MediaStorage
	qrcodeService service.QRCodeService
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage       service.MediaStorage `optional:"true"`
	QRCodeService service.QRCodeService
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage:       params.Storage,
		qrcodeService: params.QRCodeService,
	}
}

// UploadBusinessImage stores an image and returns its public URL.
func (s *mediaService) UploadBusinessImage(ctx context.Context, businessID, contentType string, r io.Reader) (string, error) {
	if s.storage == nil {
		return "", errors.WithStack(ErrMediaDisabled)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.WithStack(ErrNotAnImage)
	}

	ext := extensionFor(contentType)
	key := "businesses/" + businessID + "/images/" + uuid.New().String() + ext

	url, err := s.storage.Store(ctx, key, contentType, r)
	if err != nil {
		return "", errors.Wrap(err, "failed to store business image")
	}

	return url, nil
}

// RemoveBusinessImage deletes a previously uploaded image by its key.
func (s *mediaService) RemoveBusinessImage(ctx context.Context, key string) error {
	if s.storage == nil {
		return errors.WithStack(ErrMediaDisabled)
	}
	if err := s.storage.Remove(ctx, key); err != nil {
		return errors.Wrap(err, "failed to remove business image")
	}

	return nil
}

// ShareQR renders a QR code image referencing the business profile.
func (s *mediaService) ShareQR(_ context.Context, businessID string) ([]byte, error) {
	png, err := s.qrcodeService.GenerateBusinessQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
