package middleware

import (
	"net/http"
	"strings"

	"localfy/config"
	deliverycontext "localfy/internal/delivery/context"
	"localfy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer access token and stores the user ID on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.userIDFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user when a valid token is present and
// lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, err := m.userIDFromRequest(c); err == nil {
			c.Set(string(deliverycontext.KeyUserID), userID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) userIDFromRequest(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errAuthHeaderMissing
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", errNotBearerToken
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return "", errTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return "", errTokenInvalid
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", errTokenInvalid
	}

	return userID, nil
}

var (
	errAuthHeaderMissing = errors.New("Authorization header is missing")
	errNotBearerToken    = errors.New("Invalid token format, must be Bearer token")
	errTokenInvalid      = errors.New("Invalid or expired token")
)
