package handler

import (
	"net/http"

	"localfy/internal/delivery/http/response"
	"localfy/internal/usecase"
	"localfy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for media-related handlers.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// UploadImage stores a business image from a multipart form upload.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Form field image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uc.UploadBusinessImage(c.Request().Context(), c.Param("id"), contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, impl.ErrNotAnImage):
			return response.BadRequest(c, "UNSUPPORTED_MEDIA_TYPE", "Only image uploads are accepted")
		case errors.Is(err, impl.ErrMediaDisabled):
			return response.Error(c, http.StatusServiceUnavailable,
				"MEDIA_DISABLED", "Media storage not configured", "")
		default:
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}

// ShareQR streams a PNG QR code referencing the business profile.
func (h *MediaHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
