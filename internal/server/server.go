// Package server assembles the HTTP application: the fiber app, the
// middleware chain with the request gate, the page routes, and the
// mounted resource routers.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/goliatone/go-errors"

	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/result"
	"github.com/ticklist/ticklist/internal/todos"
	"github.com/ticklist/ticklist/internal/users"
)

// Logger is the minimal logging surface the server needs.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options bundles everything New needs to assemble the app.
type Options struct {
	Gate   *gate.Gate
	Auth   *auth.Handler
	Users  *users.Handler
	Todos  *todos.Handler
	Logger Logger
}

// New builds the fiber application with the full middleware chain and
// all routes mounted. The caller owns Listen and Shutdown.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ticklist",
		ReadTimeout:  5 * time.Second,
		ErrorHandler: errorHandler(opts.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return result.Error(c, result.RateLimitExceeded, "Too many requests")
		},
	}))
	app.Use(opts.Gate.Middleware())

	registerPages(app)

	api := app.Group("/api")
	auth.RegisterRoutes(api, opts.Auth)
	users.RegisterRoutes(api.Group("/users"), opts.Users)
	todos.RegisterRoutes(api.Group("/todos"), opts.Todos)

	return app
}

// registerPages mounts the public and auth pages. They are JSON
// descriptors rather than rendered views; the interesting behavior is
// how the gate treats their paths.
func registerPages(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": "ticklist", "status": "ok"})
	})

	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name": "ticklist",
			"endpoints": []string{
				"POST /api/signup",
				"POST /api/login",
				"POST /api/logout",
				"GET|PUT|DELETE /api/users",
				"GET|POST /api/todos",
				"PUT|DELETE /api/todos/:id",
			},
		})
	})

	app.Get("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "login"})
	})

	app.Get("/signup", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "signup"})
	})
}

// errorHandler is the last line of defense: anything a handler returns
// as a Go error, including fiber's own routing errors, is translated
// into the standard failure envelope.
func errorHandler(log Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := classifyError(err)

		if result.StatusFor(code) >= fiber.StatusInternalServerError && log != nil {
			log.Error("unhandled request error",
				"error", err,
				"path", c.Path(),
				"method", c.Method(),
			)
		}

		return result.Error(c, code, message)
	}
}

func classifyError(err error) (result.ErrorCode, string) {
	var rich *errors.Error
	if errors.As(err, &rich) {
		switch rich.Category {
		case errors.CategoryAuth:
			return result.Unauthorized, rich.Message
		case errors.CategoryAuthz:
			return result.Forbidden, rich.Message
		case errors.CategoryBadInput, errors.CategoryValidation:
			return result.BadRequest, rich.Message
		}
		return result.ServerError, "Internal server error"
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return result.NotFound, "Not found"
		case fiber.StatusMethodNotAllowed:
			return result.MethodNotAllowed, "Method not allowed"
		case fiber.StatusUnsupportedMediaType:
			return result.UnsupportedMediaType, "Unsupported media type"
		case fiber.StatusRequestEntityTooLarge:
			return result.FileTooLarge, "Request entity too large"
		case fiber.StatusTooManyRequests:
			return result.RateLimitExceeded, "Too many requests"
		}
	}

	return result.ServerError, "Internal server error"
}
