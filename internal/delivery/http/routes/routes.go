package routes

import (
	"careercatalyst/internal/delivery/http/handler"
	"careercatalyst/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	profile *handler.ProfileHandler
	career  *handler.CareerHandler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	profile *handler.ProfileHandler,
	career *handler.CareerHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:  health,
		auth:    auth,
		profile: profile,
		career:  career,
		authMw:  authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.auth.RegisterRoutes(api.Group("/auth"), r.authMw)

	career := api.Group("/career", r.authMw.Middleware())
	r.profile.RegisterRoutes(career)
	r.career.RegisterRoutes(career)
}
