package impl

import (
	"context"
	"strings"
	"testing"

	"localfy/internal/infra/qrcode"
	mockSvc "localfy/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadBusinessImage(t *testing.T) {
	storage := mockSvc.NewMockMediaStorage(t)
	svc := NewMediaService(MediaServiceParams{
		Storage:       storage,
		QRCodeService: qrcode.NewQRCodeService(128, "M"),
	})

	ctx := context.Background()
	body := strings.NewReader("fake-png-bytes")

	storage.EXPECT().
		Store(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "businesses/b1/images/") &&
				strings.HasSuffix(key, ".png")
		}), "image/png", body).
		Return("https://cdn.example.com/businesses/b1/images/x.png", nil)

	url, err := svc.UploadBusinessImage(ctx, "b1", "image/png", body)
	require.NoError(t, err)
	assert.Contains(t, url, "businesses/b1/images/")
}

func TestMediaService_UploadBusinessImage_RejectsNonImage(t *testing.T) {
	svc := NewMediaService(MediaServiceParams{
		Storage:       mockSvc.NewMockMediaStorage(t),
		QRCodeService: qrcode.NewQRCodeService(128, "M"),
	})

	_, err := svc.UploadBusinessImage(context.Background(), "b1", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestMediaService_UploadBusinessImage_Disabled(t *testing.T) {
	svc := NewMediaService(MediaServiceParams{
		QRCodeService: qrcode.NewQRCodeService(128, "M"),
	})

	_, err := svc.UploadBusinessImage(context.Background(), "b1", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrMediaDisabled)
}

func TestMediaService_ShareQR(t *testing.T) {
	svc := NewMediaService(MediaServiceParams{
		QRCodeService: qrcode.NewQRCodeService(128, "M"),
	})

	png, err := svc.ShareQR(context.Background(), "b1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
