package app

import (
	"fmt"
	"log/slog"
	"strings"

	"careercatalyst/internal/config"
	"careercatalyst/internal/delivery/http/handler"
	"careercatalyst/internal/delivery/http/middleware"
	"careercatalyst/internal/delivery/http/routes"
	persistence "careercatalyst/internal/infrastructure/persistence/postgres"
	"careercatalyst/internal/pkg/jwt"
	"careercatalyst/internal/usecase"
	ucauth "careercatalyst/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{})

	users := persistence.NewUserRepository(c.DB)
	students := persistence.NewStudentRepository(c.DB)
	freshers := persistence.NewFresherRepository(c.DB)
	experienced := persistence.NewExperiencedRepository(c.DB)

	tokens := jwt.NewHMACService(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)

	completionUC := usecase.NewCompletionUsecase(users, students, freshers, experienced)
	authUC := usecase.NewAuthUsecase(ucauth.NewService(users, students), tokens, completionUC, users)
	profileUC := usecase.NewProfileUsecase(users, students, freshers, experienced, completionUC)
	careerUC := usecase.NewCareerUsecase(users, students, freshers, experienced, c.Generator, c.Searcher, c.Cache)

	authMw := middleware.NewAuthMiddleware(tokens)

	registerGlobalMiddleware(f)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(authUC, profileUC),
		handler.NewProfileHandler(profileUC),
		handler.NewCareerHandler(careerUC, profileUC),
		authMw,
	)
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(slog.Default()).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
