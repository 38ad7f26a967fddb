package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/signup", h.Signup)
	group.Post("/verify-email", h.VerifyEmail)
	group.Post("/resend-code", h.ResendCode)
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/change-password", authRequired, h.ChangePassword)
}
