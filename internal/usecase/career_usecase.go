package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careercatalyst/internal/domain/career"
	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"
	"careercatalyst/internal/export"
	careerprompt "careercatalyst/internal/usecase/career"

	"github.com/google/uuid"
)

// Generator produces one completion per call. Implemented by the Groq
// client; no retries happen above or below this interface.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Searcher interface {
	FindProfiles(ctx context.Context, query string) ([]career.ProfileHit, error)
}

// SearchCache is optional. A nil cache or one that errors silently
// degrades to calling the search API every time.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const searchCacheTTL = 10 * time.Minute

// GapWithRoadmap is the combined dashboard payload: analysis first, then
// the roadmap generated from the analysis's missing skills.
type GapWithRoadmap struct {
	SkillGapAnalysis career.GapAnalysis `json:"skillGapAnalysis"`
	LearningRoadmap  career.Roadmap     `json:"learningRoadmap"`
}

// RoadmapDocument is a rendered PDF attachment.
type RoadmapDocument struct {
	Filename string
	Content  []byte
}

type CareerUsecase struct {
	users       user.Repository
	students    profile.StudentRepository
	freshers    profile.FresherRepository
	experienced profile.ExperiencedRepository

	generator Generator
	searcher  Searcher
	cache     SearchCache
}

func NewCareerUsecase(
	users user.Repository,
	students profile.StudentRepository,
	freshers profile.FresherRepository,
	experienced profile.ExperiencedRepository,
	generator Generator,
	searcher Searcher,
	cache SearchCache,
) *CareerUsecase {
	return &CareerUsecase{
		users:       users,
		students:    students,
		freshers:    freshers,
		experienced: experienced,
		generator:   generator,
		searcher:    searcher,
		cache:       cache,
	}
}

// Recommendations is the generic skill-based path driven by the flat skill
// list on the user row.
func (uc *CareerUsecase) Recommendations(ctx context.Context, userID uuid.UUID) (career.RecommendationSet, error) {
	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return career.RecommendationSet{}, err
	}
	skills := uc.currentSkills(ctx, u)
	if len(skills) == 0 {
		return career.RecommendationSet{}, fmt.Errorf("%w: no skills on profile", ErrValidation)
	}

	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, careerprompt.RecommendationPrompt(skills))
	if err != nil {
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	out, err := careerprompt.ParseRecommendations(raw)
	if err != nil {
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	return out, nil
}

// FresherRecommendations weighs the fresher's interested roles and
// preferences into the match scoring.
func (uc *CareerUsecase) FresherRecommendations(ctx context.Context, userID uuid.UUID) (career.RecommendationSet, error) {
	p, err := uc.freshers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return career.RecommendationSet{}, fmt.Errorf("%w: fresher profile", ErrNotFound)
		}
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if len(p.Skills) == 0 {
		return career.RecommendationSet{}, fmt.Errorf("%w: no skills on profile", ErrValidation)
	}

	prompt := careerprompt.FresherRecommendationPrompt(p.Skills, p.InterestedRoles, p.SalaryPreference, p.WorkMode)
	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, prompt)
	if err != nil {
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	out, err := careerprompt.ParseRecommendations(raw)
	if err != nil {
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	return out, nil
}

// ExperiencedRecommendations suggests career transitions rather than
// entry-level matches.
func (uc *CareerUsecase) ExperiencedRecommendations(ctx context.Context, userID uuid.UUID) (career.TransitionSet, error) {
	p, err := uc.experienced.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return career.TransitionSet{}, fmt.Errorf("%w: experienced profile", ErrNotFound)
		}
		return career.TransitionSet{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if len(p.Skills) == 0 {
		return career.TransitionSet{}, fmt.Errorf("%w: no skills on profile", ErrValidation)
	}

	prompt := careerprompt.TransitionPrompt(p.Skills, p.ExperienceYears, p.ReasonForSwitch, p.WorkMode)
	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, prompt)
	if err != nil {
		return career.TransitionSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	out, err := careerprompt.ParseTransitions(raw)
	if err != nil {
		return career.TransitionSet{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	return out, nil
}

// SkillGaps analyzes the distance between the user's current skills and a
// target role. The target role is validated before any upstream call.
func (uc *CareerUsecase) SkillGaps(ctx context.Context, userID uuid.UUID, targetRole string) (career.GapAnalysis, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return career.GapAnalysis{}, fmt.Errorf("%w: target role is required", ErrValidation)
	}

	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return career.GapAnalysis{}, err
	}
	// Current skills may legitimately be empty here; only the target role
	// gates the call.
	skills := uc.currentSkills(ctx, u)

	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, careerprompt.GapAnalysisPrompt(skills, targetRole))
	if err != nil {
		return career.GapAnalysis{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	out, err := careerprompt.ParseGapAnalysis(raw)
	if err != nil {
		return career.GapAnalysis{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	return out, nil
}

// Roadmap builds a phased learning plan toward a target skill set.
func (uc *CareerUsecase) Roadmap(ctx context.Context, userID uuid.UUID, targetSkills []string) (career.Roadmap, error) {
	targets := cleanList(targetSkills)
	if len(targets) == 0 {
		return career.Roadmap{}, fmt.Errorf("%w: target skills are required", ErrValidation)
	}

	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return career.Roadmap{}, err
	}
	current := uc.currentSkills(ctx, u)

	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, careerprompt.RoadmapPrompt(current, targets))
	if err != nil {
		return career.Roadmap{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	out, err := careerprompt.ParseRoadmap(raw)
	if err != nil {
		return career.Roadmap{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	return out, nil
}

// SkillGapsWithRoadmap chains the two generations: the gap analysis first,
// then a roadmap targeting exactly the missing skills it found.
func (uc *CareerUsecase) SkillGapsWithRoadmap(ctx context.Context, userID uuid.UUID, targetRole string) (GapWithRoadmap, error) {
	gap, err := uc.SkillGaps(ctx, userID, targetRole)
	if err != nil {
		return GapWithRoadmap{}, err
	}

	targets := make([]string, 0, len(gap.MissingSkills))
	for _, ms := range gap.MissingSkills {
		if ms.Skill != "" {
			targets = append(targets, ms.Skill)
		}
	}
	if len(targets) == 0 {
		return GapWithRoadmap{}, fmt.Errorf("%w: gap analysis returned no missing skills", ErrUpstreamGeneration)
	}

	roadmap, err := uc.Roadmap(ctx, userID, targets)
	if err != nil {
		return GapWithRoadmap{}, err
	}

	return GapWithRoadmap{SkillGapAnalysis: gap, LearningRoadmap: roadmap}, nil
}

// RoadmapPDF renders the combined gap-plus-roadmap result as a PDF
// attachment named after the target role.
func (uc *CareerUsecase) RoadmapPDF(ctx context.Context, userID uuid.UUID, targetRole string) (RoadmapDocument, error) {
	combined, err := uc.SkillGapsWithRoadmap(ctx, userID, targetRole)
	if err != nil {
		return RoadmapDocument{}, err
	}

	content, err := export.RenderRoadmap(combined.LearningRoadmap, combined.SkillGapAnalysis)
	if err != nil {
		return RoadmapDocument{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	prefix := "career-roadmap-"
	if u, err := uc.getUser(ctx, userID); err == nil && u.Role == user.RoleStudent {
		prefix = "student-roadmap-"
	}

	return RoadmapDocument{
		Filename: prefix + slugify(targetRole) + ".pdf",
		Content:  content,
	}, nil
}

// SearchProfiles finds public professional profiles matching a role and
// optional skill filters. Results are cached briefly; cache failures never
// fail the request.
func (uc *CareerUsecase) SearchProfiles(ctx context.Context, role string, skills []string) ([]career.ProfileHit, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", ErrValidation)
	}
	return uc.findProfilesCached(ctx, careerSearchQuery(role, cleanList(skills)))
}

// SkillExperts pairs one target skill with profiles of people who already
// practice it.
type SkillExperts struct {
	Skill          string              `json:"skill"`
	ExpertProfiles []career.ProfileHit `json:"expertProfiles"`
}

// SkillDevelopmentPlan combines a roadmap toward the posted skills with
// per-skill expert profiles to learn from.
type SkillDevelopmentPlan struct {
	DevelopmentPath career.Roadmap `json:"developmentPath"`
	SkillExperts    []SkillExperts `json:"skillExperts"`
}

const expertProfilesPerSkill = 3

// SkillDevelopment builds a learning roadmap from the role profile's
// current skills toward the posted target skills, then attaches up to
// three expert profiles per skill. A failed expert lookup degrades to an
// empty list for that skill rather than failing the plan.
func (uc *CareerUsecase) SkillDevelopment(ctx context.Context, userID uuid.UUID, skills []string) (SkillDevelopmentPlan, error) {
	targets := cleanList(skills)
	if len(targets) == 0 {
		return SkillDevelopmentPlan{}, fmt.Errorf("%w: target skills are required", ErrValidation)
	}

	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return SkillDevelopmentPlan{}, err
	}
	current, err := uc.roleProfileSkills(ctx, u)
	if err != nil {
		return SkillDevelopmentPlan{}, err
	}

	raw, err := uc.generator.Complete(ctx, careerprompt.SystemPrompt, careerprompt.RoadmapPrompt(current, targets))
	if err != nil {
		return SkillDevelopmentPlan{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	roadmap, err := careerprompt.ParseRoadmap(raw)
	if err != nil {
		return SkillDevelopmentPlan{}, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}

	experts := make([]SkillExperts, 0, len(targets))
	for _, skill := range targets {
		hits, err := uc.findProfilesCached(ctx, skill+" expert")
		if err != nil {
			slog.Warn("expert profile lookup failed",
				"component", "career",
				"skill", skill,
				"error", err)
			hits = []career.ProfileHit{}
		}
		if len(hits) > expertProfilesPerSkill {
			hits = hits[:expertProfilesPerSkill]
		}
		experts = append(experts, SkillExperts{Skill: skill, ExpertProfiles: hits})
	}

	return SkillDevelopmentPlan{DevelopmentPath: roadmap, SkillExperts: experts}, nil
}

func (uc *CareerUsecase) findProfilesCached(ctx context.Context, query string) ([]career.ProfileHit, error) {
	key := searchCacheKey(query)

	if uc.cache != nil {
		var cached []career.ProfileHit
		hit, err := uc.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			slog.Warn("search cache read failed", "component", "career", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	hits, err := uc.searcher.FindProfiles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSearch, err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, hits, searchCacheTTL); err != nil {
			slog.Warn("search cache write failed", "component", "career", "error", err)
		}
	}
	return hits, nil
}

func (uc *CareerUsecase) getUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: user", ErrNotFound)
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return u, nil
}

// roleProfileSkills reads skills off the role profile document and fails
// with not-found when the document does not exist yet.
func (uc *CareerUsecase) roleProfileSkills(ctx context.Context, u user.User) ([]string, error) {
	var (
		skills []string
		err    error
	)
	switch u.Role {
	case user.RoleStudent:
		var p profile.Student
		p, err = uc.students.GetByUserID(ctx, u.ID)
		skills = p.Skills
	case user.RoleFresher:
		var p profile.Fresher
		p, err = uc.freshers.GetByUserID(ctx, u.ID)
		skills = p.Skills
	case user.RoleExperienced:
		var p profile.Experienced
		p, err = uc.experienced.GetByUserID(ctx, u.ID)
		skills = p.Skills
	}
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s profile", ErrNotFound, strings.ToLower(string(u.Role)))
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return skills, nil
}

// currentSkills prefers the role profile document and falls back to the
// legacy flat list on the user row.
func (uc *CareerUsecase) currentSkills(ctx context.Context, u user.User) []string {
	var fromProfile []string
	switch u.Role {
	case user.RoleStudent:
		if p, err := uc.students.GetByUserID(ctx, u.ID); err == nil {
			fromProfile = p.Skills
		}
	case user.RoleFresher:
		if p, err := uc.freshers.GetByUserID(ctx, u.ID); err == nil {
			fromProfile = p.Skills
		}
	case user.RoleExperienced:
		if p, err := uc.experienced.GetByUserID(ctx, u.ID); err == nil {
			fromProfile = p.Skills
		}
	}
	if len(fromProfile) > 0 {
		return fromProfile
	}
	return u.Skills
}

func careerSearchQuery(role string, skills []string) string {
	if len(skills) > 3 {
		skills = skills[:3]
	}
	parts := append([]string{role}, skills...)
	return strings.Join(parts, " ")
}

// searchCacheKey hashes the normalized query so arbitrary user input never
// lands raw in a cache key.
func searchCacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "search:profiles:" + hex.EncodeToString(sum[:])
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
