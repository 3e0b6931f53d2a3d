package todos

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/result"
)

// Handler exposes the todo endpoints over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the todos HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/todos.
func (h *Handler) List(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}
	return result.Respond(c, h.svc.List(c.UserContext(), id))
}

// Create handles POST /api/todos.
func (h *Handler) Create(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return result.Error(c, result.BadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return result.ValidationFailed(c, err.Error())
	}

	return result.Respond(c, h.svc.Create(c.UserContext(), id, req.Title), fiber.StatusCreated)
}

// Update handles PUT /api/todos/:id.
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

	res := h.svc.Update(c.UserContext(), id, c.Params("id"), req.Patch())
	return result.Respond(c, res, fiber.StatusNoContent)
}

// Delete handles DELETE /api/todos/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := gate.UserID(c)
	if id == "" {
		return result.Error(c, result.Unauthorized, "Unauthorized")
	}

	res := h.svc.Delete(c.UserContext(), id, c.Params("id"))
	return result.Respond(c, res, fiber.StatusNoContent)
}
