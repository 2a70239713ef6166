package usecase

import (
	"context"
	"io"
)

// MediaUsecase manages uploaded business media.
type MediaUsecase interface {
	// UploadBusinessImage stores an image for a business and returns its
	// public URL. Only image content types are accepted.
	UploadBusinessImage(ctx context.Context, businessID, contentType string, r io.Reader) (string, error)

	// RemoveBusinessImage deletes a previously uploaded image by its key.
	RemoveBusinessImage(ctx context.Context, key string) error

	// ShareQR renders a QR code image referencing the business profile.
	ShareQR(ctx context.Context, businessID string) ([]byte, error)
}
