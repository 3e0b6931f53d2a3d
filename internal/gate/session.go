package gate

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ticklist/ticklist/internal/result"
	"github.com/ticklist/ticklist/internal/token"
)

const (
	// CookieName is the cookie the signed session token travels in.
	CookieName = "token"
	// UserIDKey is the header-equivalent context field carrying the
	// authenticated subject id for downstream handlers.
	UserIDKey = "x-user-id"
)

// Identity is the subject resolved from a verified session token. It
// lives for the duration of one request.
type Identity struct {
	ID string `json:"id"`
}

// TokenVerifier is the narrow codec surface the resolver depends on.
type TokenVerifier interface {
	Verify(raw string) *token.Claims
}

// Resolver turns a session cookie value into an Identity. It has no side
// effects; cookie clearing is the gate's job.
type Resolver struct {
	tokens TokenVerifier
}

// NewResolver creates a session resolver backed by the given codec.
func NewResolver(tokens TokenVerifier) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve verifies the raw cookie value. A missing cookie yields
// TOKEN_NOT_PROVIDED; a token that fails verification or carries no
// subject yields INVALID_TOKEN.
func (r *Resolver) Resolve(raw string) result.Result[Identity] {
	if raw == "" {
		return result.Fail[Identity]("Token not provided", result.TokenNotProvided)
	}

	claims := r.tokens.Verify(raw)
	if claims == nil || claims.UserID() == "" {
		return result.Fail[Identity]("Invalid token", result.InvalidToken)
	}

	return result.Ok(Identity{ID: claims.UserID()})
}

// SetSessionCookie stores a signed session token on the response.
func SetSessionCookie(c *fiber.Ctx, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * 24 * 365),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// UserID returns the subject id the gate attached for this request, or
// "" when the request reached the handler without authentication, which
// only happens on public and auth-API paths.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}
