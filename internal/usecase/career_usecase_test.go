package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careercatalyst/internal/domain/career"
	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
)

const recommendationsJSON = `{"careerMatches": [{"role": "Backend Developer", "matchPercentage": "85%"}]}`

const gapJSON = `{
  "analysis": {
    "role": "Backend Developer",
    "currentSkillsAssessment": {"strengths": ["SQL"], "relevance": "solid"},
    "missingSkills": [{"skill": "Go", "priority": "High", "timeToAcquire": "2 months", "impact": "core"}]
  }
}`

const roadmapJSON = `{
  "roadmap": {
    "estimatedTotalDuration": "3 months",
    "phases": [{"phase": 1, "title": "Foundations", "duration": "1 month"}]
  }
}`

func newCareerFixture(u user.User) (*CareerUsecase, *fakeUserRepo, *fakeStudentRepo, *fakeFresherRepo, *fakeExperiencedRepo, *fakeGenerator, *fakeSearcher, *fakeSearchCache) {
	users := newFakeUserRepo(u)
	students := newFakeStudentRepo()
	freshers := newFakeFresherRepo()
	experienced := newFakeExperiencedRepo()
	gen := &fakeGenerator{}
	searcher := &fakeSearcher{}
	cache := newFakeSearchCache()
	uc := NewCareerUsecase(users, students, freshers, experienced, gen, searcher, cache)
	return uc, users, students, freshers, experienced, gen, searcher, cache
}

func TestCareerUsecase_Recommendations_EmptySkills(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.Recommendations(context.Background(), u.ID)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no upstream call expected on validation failure, got %d", gen.calls)
	}
}

func TestCareerUsecase_Recommendations_Success(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"Go", "SQL"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)
	gen.responses = []string{recommendationsJSON}

	out, err := uc.Recommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.CareerMatches) != 1 || out.CareerMatches[0].Role != "Backend Developer" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if !strings.Contains(gen.prompts[0], "Go, SQL") {
		t.Fatalf("prompt must carry the skills, got %q", gen.prompts[0])
	}
}

func TestCareerUsecase_Recommendations_MalformedUpstream(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"Go"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)
	gen.responses = []string{"I am not JSON"}

	_, err := uc.Recommendations(context.Background(), u.ID)
	if !errors.Is(err, ErrUpstreamGeneration) {
		t.Fatalf("expected ErrUpstreamGeneration, got %v", err)
	}
}

func TestCareerUsecase_FresherRecommendations_NoProfile(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.FresherRecommendations(context.Background(), u.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no upstream call expected, got %d", gen.calls)
	}
}

func TestCareerUsecase_ExperiencedRecommendations(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleExperienced}
	uc, _, _, _, experienced, gen, _, _ := newCareerFixture(u)
	experienced.docs[u.ID] = profile.Experienced{
		UserID:          u.ID,
		Skills:          []string{"Java"},
		ExperienceYears: 7,
		ReasonForSwitch: "growth",
		WorkMode:        profile.WorkModeRemote,
	}
	gen.responses = []string{`{"recommendations": [{"role": "Engineering Manager", "compatibilityScore": "80"}]}`}

	out, err := uc.ExperiencedRecommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].Role != "Engineering Manager" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestCareerUsecase_SkillGaps_BlankTargetRole(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"Go"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.SkillGaps(context.Background(), u.ID, "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("blank target role must short-circuit before upstream")
	}
}

func TestCareerUsecase_SkillGaps_PrefersProfileSkills(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"legacy"}}
	uc, _, students, _, _, gen, _, _ := newCareerFixture(u)
	students.docs[u.ID] = profile.Student{UserID: u.ID, Skills: []string{"Python", "SQL"}}
	gen.responses = []string{gapJSON}

	_, err := uc.SkillGaps(context.Background(), u.ID, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "Python, SQL") {
		t.Fatalf("expected profile skills in prompt, got %q", gen.prompts[0])
	}
}

func TestCareerUsecase_Roadmap_EmptyTargets(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"Go"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.Roadmap(context.Background(), u.ID, []string{" ", ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no upstream call expected")
	}
}

func TestCareerUsecase_SkillGapsWithRoadmap(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"SQL"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)
	gen.responses = []string{gapJSON, roadmapJSON}

	out, err := uc.SkillGapsWithRoadmap(context.Background(), u.ID, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("expected 2 generation calls, got %d", gen.calls)
	}
	if len(out.SkillGapAnalysis.MissingSkills) != 1 {
		t.Fatalf("unexpected gap: %+v", out.SkillGapAnalysis)
	}
	if out.LearningRoadmap.EstimatedTotalDuration != "3 months" {
		t.Fatalf("unexpected roadmap: %+v", out.LearningRoadmap)
	}
	// The roadmap prompt targets exactly the gap's missing skills.
	if !strings.Contains(gen.prompts[1], "Go") {
		t.Fatalf("roadmap prompt must target missing skills, got %q", gen.prompts[1])
	}
}

func TestCareerUsecase_RoadmapPDF(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, Skills: []string{"SQL"}}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)
	gen.responses = []string{gapJSON, roadmapJSON}

	doc, err := uc.RoadmapPDF(context.Background(), u.ID, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.Filename != "student-roadmap-backend-developer.pdf" {
		t.Fatalf("unexpected filename: %q", doc.Filename)
	}
	if len(doc.Content) == 0 {
		t.Fatalf("expected PDF bytes")
	}
}

func TestCareerUsecase_SearchProfiles(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, _, searcher, _ := newCareerFixture(u)
	searcher.hits = []career.ProfileHit{{Name: "Jane Doe", ProfileURL: "https://linkedin.com/in/janedoe"}}

	hits, err := uc.SearchProfiles(context.Background(), "Backend Developer", []string{"Go", "SQL", "Docker", "K8s"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	// Only the first three skills make it into the query.
	if searcher.queries[0] != "Backend Developer Go SQL Docker" {
		t.Fatalf("unexpected query: %q", searcher.queries[0])
	}

	// Second identical call is served from cache.
	if _, err := uc.SearchProfiles(context.Background(), "Backend Developer", []string{"Go", "SQL", "Docker", "K8s"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if searcher.calls != 1 {
		t.Fatalf("expected cache hit on repeat query, got %d searcher calls", searcher.calls)
	}
}

func TestCareerUsecase_SearchProfiles_CacheFailureBypassed(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, _, searcher, cache := newCareerFixture(u)
	searcher.hits = []career.ProfileHit{{Name: "Jane Doe"}}
	cache.err = errors.New("redis down")

	hits, err := uc.SearchProfiles(context.Background(), "Backend Developer", nil)
	if err != nil {
		t.Fatalf("cache failure must not fail the request, got %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected searcher result, got %d", len(hits))
	}
}

func TestCareerUsecase_SkillDevelopment(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, freshers, _, gen, searcher, _ := newCareerFixture(u)
	freshers.docs[u.ID] = profile.Fresher{UserID: u.ID, Skills: []string{"Python", "SQL"}}
	gen.responses = []string{roadmapJSON}
	searcher.hits = []career.ProfileHit{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
	}

	out, err := uc.SkillDevelopment(context.Background(), u.ID, []string{"Go", "Kubernetes"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.DevelopmentPath.EstimatedTotalDuration != "3 months" {
		t.Fatalf("unexpected roadmap: %+v", out.DevelopmentPath)
	}
	if !strings.Contains(gen.prompts[0], "Python, SQL") || !strings.Contains(gen.prompts[0], "Go, Kubernetes") {
		t.Fatalf("roadmap prompt must carry current and target skills, got %q", gen.prompts[0])
	}

	if len(out.SkillExperts) != 2 {
		t.Fatalf("expected one expert group per skill, got %d", len(out.SkillExperts))
	}
	if searcher.queries[0] != "Go expert" || searcher.queries[1] != "Kubernetes expert" {
		t.Fatalf("unexpected expert queries: %v", searcher.queries)
	}
	for _, group := range out.SkillExperts {
		if len(group.ExpertProfiles) != 3 {
			t.Fatalf("expert profiles must be capped at 3, got %d for %s", len(group.ExpertProfiles), group.Skill)
		}
	}
}

func TestCareerUsecase_SkillDevelopment_NoProfile(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.SkillDevelopment(context.Background(), u.ID, []string{"Go"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no upstream call expected without a profile document, got %d", gen.calls)
	}
}

func TestCareerUsecase_SkillDevelopment_SearchFailureDegrades(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent}
	uc, _, students, _, _, gen, searcher, _ := newCareerFixture(u)
	students.docs[u.ID] = profile.Student{UserID: u.ID, Skills: []string{"SQL"}}
	gen.responses = []string{roadmapJSON}
	searcher.err = errors.New("403 forbidden")

	out, err := uc.SkillDevelopment(context.Background(), u.ID, []string{"Go"})
	if err != nil {
		t.Fatalf("a failed expert lookup must not fail the plan, got %v", err)
	}
	if len(out.SkillExperts) != 1 || len(out.SkillExperts[0].ExpertProfiles) != 0 {
		t.Fatalf("expected an empty expert list for the skill, got %+v", out.SkillExperts)
	}
}

func TestCareerUsecase_SkillDevelopment_EmptySkills(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, gen, _, _ := newCareerFixture(u)

	_, err := uc.SkillDevelopment(context.Background(), u.ID, []string{" ", ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no upstream call expected")
	}
}

func TestCareerUsecase_SearchProfiles_UpstreamError(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc, _, _, _, _, _, searcher, _ := newCareerFixture(u)
	searcher.err = errors.New("403 forbidden")

	_, err := uc.SearchProfiles(context.Background(), "Backend Developer", nil)
	if !errors.Is(err, ErrUpstreamSearch) {
		t.Fatalf("expected ErrUpstreamSearch, got %v", err)
	}
}
