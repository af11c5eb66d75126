package middleware

import (
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"simsure/internal/delivery/http/response"
)

const (
	// ContextAccountID is the echo context key holding the caller's account ID.
	ContextAccountID = "accountID"

	// ContextDistributor is the echo context key flagging a distributor caller.
	ContextDistributor = "distributor"
)

// AuthMiddleware validates Firebase ID tokens and exposes the caller's
// identity to handlers.
type AuthMiddleware struct {
	authClient *firebaseauth.Client
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authClient *firebaseauth.Client) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient}
}

// Authenticate verifies the Bearer ID token and sets the account ID and
// distributor flag on the context. The account ID lives in the token's
// "account_id" custom claim, set when the account document is created.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		accountIDStr, _ := token.Claims["account_id"].(string)
		if accountIDStr != "" {
			accountID, err := uuid.Parse(accountIDStr)
			if err != nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
			}
			c.Set(ContextAccountID, accountID)
		}

		distributor, _ := token.Claims[ContextDistributor].(bool)
		c.Set(ContextDistributor, distributor)

		return next(c)
	}
}

// RequireDistributor gates the back-office routes. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireDistributor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		distributor, ok := c.Get(ContextDistributor).(bool)
		if !ok || !distributor {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: distributor access required")
		}

		return next(c)
	}
}

// RequireAccountMatch rejects requests whose :id path parameter does not
// match the authenticated account. Distributors may act on any account.
func (m *AuthMiddleware) RequireAccountMatch(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if distributor, ok := c.Get(ContextDistributor).(bool); ok && distributor {
			return next(c)
		}

		accountID, ok := c.Get(ContextAccountID).(uuid.UUID)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
		}

		pathID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
		}

		if pathID != accountID {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: account mismatch")
		}

		return next(c)
	}
}
