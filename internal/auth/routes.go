package auth

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the auth endpoints on the given router, which is
// expected to be the /api group.
func RegisterRoutes(router fiber.Router, h *Handler) {
	router.Post("/signup", h.Signup)
	router.Post("/login", h.Login)
	router.Post("/logout", h.Logout)
}
