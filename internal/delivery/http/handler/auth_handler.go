package handler

import (
	"careercatalyst/internal/delivery/http/middleware"
	"careercatalyst/internal/pkg/response"
	"careercatalyst/internal/usecase"
	ucauth "careercatalyst/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc      *usecase.AuthUsecase
	profile *usecase.ProfileUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase, profile *usecase.ProfileUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, profile: profile}
}

type registerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	UserType string   `json:"userType"`
	Skills   []string `json:"skills,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Skills []string `json:"skills"`
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	protected := r.Group("", auth.Middleware())
	protected.Get("/profile", h.Profile)
	protected.Post("/update-profile", h.UpdateProfile)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	result, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		UserType:      req.UserType,
		InitialSkills: req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusCreated, fiber.Map{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	result, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *AuthHandler) Profile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	u, err := h.uc.CurrentUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{"user": u})
}

func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	u, err := h.profile.UpdateUserSkills(c.Context(), userID, req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
		"user":    u,
	})
}
