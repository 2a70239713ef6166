package handler

import (
	"net/http"

	"localfy/internal/delivery/http/response"
	"localfy/internal/usecase"
	"localfy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type exchangeInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// Exchange trades a hosted-identity ID token for a first-party session.
func (h *SessionHandler) Exchange(c echo.Context) error {
	var input exchangeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "idToken is required")
	}

	session, err := h.uc.ExchangeIDToken(c.Request().Context(), input.IDToken)
	if err != nil {
		if errors.Is(err, impl.ErrIdentityUnavailable) {
			return response.Error(c, http.StatusServiceUnavailable,
				"IDENTITY_UNAVAILABLE", "Identity provider not configured", "")
		}

		return response.Unauthorized(c, "IDENTITY_TOKEN_INVALID", "Identity token rejected")
	}

	return response.Success(c, http.StatusOK, session, "Session created")
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh issues a new session from a refresh token.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var input refreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "refreshToken is required")
	}

	session, err := h.uc.RefreshSession(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "REFRESH_TOKEN_INVALID", "Refresh token rejected")
	}

	return response.Success(c, http.StatusOK, session, "Session refreshed")
}
