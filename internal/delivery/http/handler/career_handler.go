package handler

import (
	"net/url"
	"strings"

	"careercatalyst/internal/delivery/http/middleware"
	"careercatalyst/internal/pkg/response"
	"careercatalyst/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	career  *usecase.CareerUsecase
	profile *usecase.ProfileUsecase
}

func NewCareerHandler(career *usecase.CareerUsecase, profile *usecase.ProfileUsecase) *CareerHandler {
	return &CareerHandler{career: career, profile: profile}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/recommendations", h.Recommendations)
	r.Get("/skill-gaps/:targetRole", h.SkillGaps)
	r.Post("/roadmap", h.Roadmap)
	r.Get("/linkedin-profiles/:role", h.SearchProfiles)

	r.Get("/fresher-recommendations", h.FresherRecommendations)
	r.Get("/fresher/skill-gaps/:targetRole", h.SkillGapsWithRoadmap)
	r.Get("/fresher/roadmap-pdf/:targetRole", h.RoadmapPDF)
	r.Post("/fresher/skill-development", h.SkillDevelopment)
	r.Post("/fresher/save-profile", h.SaveProfile)
	r.Delete("/fresher/remove-profile/:profileUrl", h.RemoveSavedProfile)
	r.Get("/fresher/saved-profiles", h.SavedProfiles)

	r.Get("/student/skill-gaps/:targetRole", h.SkillGapsWithRoadmap)
	r.Get("/student/roadmap-pdf/:targetRole", h.RoadmapPDF)
	r.Post("/student/skill-development", h.SkillDevelopment)

	r.Post("/experienced/recommendations", h.ExperiencedRecommendations)
	r.Get("/experienced/skill-gaps/:targetRole", h.SkillGapsWithRoadmap)
	r.Get("/experienced/roadmap-pdf/:targetRole", h.RoadmapPDF)
}

func (h *CareerHandler) Recommendations(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.career.Recommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CareerHandler) FresherRecommendations(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.career.FresherRecommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CareerHandler) ExperiencedRecommendations(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.career.ExperiencedRecommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CareerHandler) SkillGaps(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.career.SkillGaps(c.Context(), userID, pathParam(c, "targetRole"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"analysis": out})
}

// SkillGapsWithRoadmap serves the per-role dashboard endpoints: gap
// analysis chained into a roadmap over the missing skills.
func (h *CareerHandler) SkillGapsWithRoadmap(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.career.SkillGapsWithRoadmap(c.Context(), userID, pathParam(c, "targetRole"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

type roadmapRequest struct {
	TargetSkills []string `json:"targetSkills"`
}

func (h *CareerHandler) Roadmap(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req roadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	out, err := h.career.Roadmap(c.Context(), userID, req.TargetSkills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"roadmap": out})
}

func (h *CareerHandler) RoadmapPDF(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	doc, err := h.career.RoadmapPDF(c.Context(), userID, pathParam(c, "targetRole"))
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename=`+doc.Filename)
	return c.Status(fiber.StatusOK).Send(doc.Content)
}

func (h *CareerHandler) SearchProfiles(c fiber.Ctx) error {
	if _, err := userIDFromCtx(c); err != nil {
		return err
	}

	role := pathParam(c, "role")
	var skills []string
	if raw := c.Query("skills"); raw != "" {
		skills = strings.Split(raw, ",")
	}

	hits, err := h.career.SearchProfiles(c.Context(), role, skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"profiles": hits})
}

type skillDevelopmentRequest struct {
	Skills []string `json:"skills"`
}

// SkillDevelopment returns a roadmap toward the posted skills together
// with expert profiles to follow for each one.
func (h *CareerHandler) SkillDevelopment(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req skillDevelopmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	out, err := h.career.SkillDevelopment(c.Context(), userID, req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

type saveProfileRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	ProfileURL   string `json:"profileUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Role         string `json:"role"`
}

func (h *CareerHandler) SaveProfile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	list, err := h.profile.SaveProfile(c.Context(), userID, usecase.SaveProfileInput{
		Name:         req.Name,
		Title:        req.Title,
		Company:      req.Company,
		ProfileURL:   req.ProfileURL,
		ThumbnailURL: req.ThumbnailURL,
		Role:         req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message":       "Profile saved successfully",
		"savedProfiles": list,
	})
}

func (h *CareerHandler) RemoveSavedProfile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	list, err := h.profile.RemoveSavedProfile(c.Context(), userID, pathParam(c, "profileUrl"))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message":       "Profile removed",
		"savedProfiles": list,
	})
}

func (h *CareerHandler) SavedProfiles(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	list, err := h.profile.ListSavedProfiles(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"savedProfiles": list})
}

// pathParam decodes percent-encoded path segments, which matter for
// profile URLs passed as parameters.
func pathParam(c fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
