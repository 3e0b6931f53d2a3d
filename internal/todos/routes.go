package todos

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the todo endpoints on the given router, which is
// expected to be the /api/todos group.
func RegisterRoutes(router fiber.Router, h *Handler) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}
