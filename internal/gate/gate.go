// Package gate implements the per-request authorization middleware:
// classify the path, resolve the session cookie, then pass through,
// redirect, or attach the resolved identity to the request.
package gate

import "github.com/gofiber/fiber/v2"

// Logger is the minimal logging surface the gate needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// Gate enforces the authentication policy in front of every route.
type Gate struct {
	resolver *Resolver
	logger   Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the gate logger.
func WithLogger(logger Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a request gate backed by the given session resolver.
func New(resolver *Resolver, opts ...Option) *Gate {
	g := &Gate{
		resolver: resolver,
		logger:   nopLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Middleware returns the fiber handler that runs once per inbound
// request, before any resource router.
//
// The session is resolved even for public and auth pages: the auth-page
// branch needs the outcome to decide between rendering and redirecting,
// and public pages keep the same order for consistency.
func (g *Gate) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		class := Classify(c.Path(), c.OriginalURL())
		if class == ClassAuthAPI {
			return c.Next()
		}

		session := g.resolver.Resolve(c.Cookies(CookieName))

		switch class {
		case ClassPublic:
			return c.Next()

		case ClassAuthPage:
			if session.Failed() {
				ClearSessionCookie(c)
				return c.Next()
			}
			// Already authenticated users skip the login/signup pages.
			return c.Redirect("/", fiber.StatusFound)

		default:
			if session.Failed() {
				g.logger.Debug("unauthenticated request",
					"path", c.OriginalURL(),
					"code", session.Code,
				)
				ClearSessionCookie(c)
				return c.Redirect("/login", fiber.StatusFound)
			}

			c.Locals(UserIDKey, session.Data.ID)
			c.Request().Header.Set(UserIDKey, session.Data.ID)
			return c.Next()
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
