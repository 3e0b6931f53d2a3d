package users

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the account endpoints on the given router, which
// is expected to be the /api/users group.
func RegisterRoutes(router fiber.Router, h *Handler) {
	router.Get("/", h.Get)
	router.Put("/", h.Update)
	router.Delete("/", h.Delete)
}
