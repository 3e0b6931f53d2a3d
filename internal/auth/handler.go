package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/result"
)

// Handler exposes the auth flows over HTTP. Successful signup and login
// set the session cookie; logout clears it.
type Handler struct {
	svc       *Service
	cookieTTL time.Duration
	log       Logger
}

// NewHandler creates the auth HTTP handler. The cookie lifetime should
// match the token lifetime so the cookie does not outlive its content.
func NewHandler(svc *Service, cookieTTL time.Duration, logger Logger) *Handler {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Handler{svc: svc, cookieTTL: cookieTTL, log: logger}
}

// Signup handles POST /api/signup.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return result.Error(c, result.BadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return result.ValidationFailed(c, err.Error())
	}

	res := h.svc.Signup(c.UserContext(), req.Username, req.Email, req.Password)
	if res.Failed() {
		return result.Respond(c, res)
	}

	gate.SetSessionCookie(c, res.Data.Token, h.cookieTTL)
	return c.SendStatus(fiber.StatusCreated)
}

// Login handles POST /api/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return result.Error(c, result.BadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return result.ValidationFailed(c, err.Error())
	}

	res := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if res.Failed() {
		return result.Respond(c, res)
	}

	gate.SetSessionCookie(c, res.Data.Token, h.cookieTTL)
	return c.SendStatus(fiber.StatusOK)
}

// Logout handles POST /api/logout. It always succeeds; clearing an
// absent cookie is a no-op.
func (h *Handler) Logout(c *fiber.Ctx) error {
	gate.ClearSessionCookie(c)
	return c.SendStatus(fiber.StatusOK)
}
