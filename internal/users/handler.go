package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/result"
)

// Handler exposes the account endpoints over HTTP. All of them operate
// on the identity the request gate attached; there is no admin surface.
type Handler struct {
	svc *Service
}

// NewHandler creates the users HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get handles GET /api/users.
func (h *Handler) Get(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}
	return result.Respond(c, h.svc.Get(c.UserContext(), id))
}

// Update handles PUT /api/users.
func (h *Handler) Update(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return result.Error(c, result.BadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return result.ValidationFailed(c, err.Error())
	}

	return result.Respond(c, h.svc.UpdateUsername(c.UserContext(), id, req.Username), fiber.StatusNoContent)
}

// Delete handles DELETE /api/users. A successful delete also ends the
// session; the cookie would only name a user that no longer exists.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}

	res := h.svc.Delete(c.UserContext(), id)
	if res.Failed() {
		return result.Respond(c, res)
	}

	gate.ClearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
