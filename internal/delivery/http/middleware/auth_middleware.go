package middleware

import (
	"strings"

	"tutorhub/internal/delivery/http/response"
	"tutorhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	// KeyUserID holds the authenticated user's uuid.UUID.
	KeyUserID = "userID"

	// KeyClaims holds the full *service.Claims of the validated token.
	KeyClaims = "claims"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the claims on the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyClaims, claims)

		return next(c)
	}
}
