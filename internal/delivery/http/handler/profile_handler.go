package handler

import (
	"careercatalyst/internal/delivery/http/middleware"
	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/pkg/response"
	"careercatalyst/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/student-profile", h.GetStudent)
	r.Post("/student-profile", h.UpsertStudent)
	r.Get("/fresher-profile", h.GetFresher)
	r.Post("/fresher-profile", h.UpsertFresher)
	r.Get("/experienced-profile", h.GetExperienced)
	r.Post("/experienced-profile", h.UpsertExperienced)
}

type studentProfileRequest struct {
	Skills           []string                    `json:"skills"`
	CurrentEducation profile.Education           `json:"currentEducation"`
	Interests        []string                    `json:"interests"`
	Academic         profile.AcademicPerformance `json:"academicPerformance"`
	LearningProgress []profile.LearningProgress  `json:"learningProgress"`
}

type fresherProfileRequest struct {
	Skills           []string `json:"skills"`
	InterestedRoles  []string `json:"interestedRoles"`
	SalaryPreference int64    `json:"salaryPreferences"`
	WorkMode         string   `json:"workMode"`
}

type experiencedProfileRequest struct {
	Skills           []string `json:"skills"`
	ReasonForSwitch  string   `json:"reasonForSwitch"`
	SalaryPreference int64    `json:"salaryPreferences"`
	ExperienceYears  int      `json:"experienceYears"`
	WorkMode         string   `json:"workMode"`
	Achievements     string   `json:"additionalAchievements"`
}

func (h *ProfileHandler) GetStudent(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetStudentProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"profile": p})
}

func (h *ProfileHandler) UpsertStudent(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req studentProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	p, err := h.uc.UpsertStudentProfile(c.Context(), userID, usecase.StudentProfileInput{
		Skills:           req.Skills,
		Education:        req.CurrentEducation,
		Interests:        req.Interests,
		Academic:         req.Academic,
		LearningProgress: req.LearningProgress,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Profile saved successfully",
		"profile": p,
	})
}

func (h *ProfileHandler) GetFresher(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetFresherProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"profile": p})
}

func (h *ProfileHandler) UpsertFresher(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req fresherProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	p, err := h.uc.UpsertFresherProfile(c.Context(), userID, usecase.FresherProfileInput{
		Skills:           req.Skills,
		InterestedRoles:  req.InterestedRoles,
		SalaryPreference: req.SalaryPreference,
		WorkMode:         req.WorkMode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Profile saved successfully",
		"profile": p,
	})
}

func (h *ProfileHandler) GetExperienced(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetExperiencedProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"profile": p})
}

func (h *ProfileHandler) UpsertExperienced(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req experiencedProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	p, err := h.uc.UpsertExperiencedProfile(c.Context(), userID, usecase.ExperiencedProfileInput{
		Skills:           req.Skills,
		ReasonForSwitch:  req.ReasonForSwitch,
		SalaryPreference: req.SalaryPreference,
		ExperienceYears:  req.ExperienceYears,
		WorkMode:         req.WorkMode,
		Achievements:     req.Achievements,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Profile saved successfully",
		"profile": p,
	})
}
