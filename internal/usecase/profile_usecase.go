package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileUsecase struct {
	users       user.Repository
	students    profile.StudentRepository
	freshers    profile.FresherRepository
	experienced profile.ExperiencedRepository
	completion  *CompletionUsecase

	now func() time.Time
}

func NewProfileUsecase(
	users user.Repository,
	students profile.StudentRepository,
	freshers profile.FresherRepository,
	experienced profile.ExperiencedRepository,
	completion *CompletionUsecase,
) *ProfileUsecase {
	return &ProfileUsecase{
		users:       users,
		students:    students,
		freshers:    freshers,
		experienced: experienced,
		completion:  completion,
		now:         time.Now,
	}
}

func (uc *ProfileUsecase) GetStudentProfile(ctx context.Context, userID uuid.UUID) (profile.Student, error) {
	p, err := uc.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Student{}, fmt.Errorf("%w: student profile", ErrNotFound)
		}
		return profile.Student{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return p, nil
}

func (uc *ProfileUsecase) GetFresherProfile(ctx context.Context, userID uuid.UUID) (profile.Fresher, error) {
	p, err := uc.freshers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Fresher{}, fmt.Errorf("%w: fresher profile", ErrNotFound)
		}
		return profile.Fresher{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return p, nil
}

func (uc *ProfileUsecase) GetExperiencedProfile(ctx context.Context, userID uuid.UUID) (profile.Experienced, error) {
	p, err := uc.experienced.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Experienced{}, fmt.Errorf("%w: experienced profile", ErrNotFound)
		}
		return profile.Experienced{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return p, nil
}

type StudentProfileInput struct {
	Skills           []string
	Education        profile.Education
	Interests        []string
	Academic         profile.AcademicPerformance
	LearningProgress []profile.LearningProgress
}

func (uc *ProfileUsecase) UpsertStudentProfile(ctx context.Context, userID uuid.UUID, in StudentProfileInput) (profile.Student, error) {
	if in.Skills == nil {
		return profile.Student{}, fmt.Errorf("%w: skills are required", ErrValidation)
	}

	// An omitted learningProgress field keeps whatever is stored; only an
	// explicit list replaces it.
	if in.LearningProgress == nil {
		if existing, err := uc.students.GetByUserID(ctx, userID); err == nil {
			in.LearningProgress = existing.LearningProgress
		}
	}

	p, err := uc.students.Upsert(ctx, profile.Student{
		UserID:           userID,
		Skills:           cleanList(in.Skills),
		Education:        in.Education,
		Interests:        cleanList(in.Interests),
		Academic:         in.Academic,
		LearningProgress: in.LearningProgress,
	})
	if err != nil {
		return profile.Student{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.reconcileAfterWrite(ctx, userID)
	return p, nil
}

type FresherProfileInput struct {
	Skills           []string
	InterestedRoles  []string
	SalaryPreference int64
	WorkMode         string
}

func (uc *ProfileUsecase) UpsertFresherProfile(ctx context.Context, userID uuid.UUID, in FresherProfileInput) (profile.Fresher, error) {
	skills := cleanList(in.Skills)
	roles := cleanList(in.InterestedRoles)
	if len(skills) == 0 {
		return profile.Fresher{}, fmt.Errorf("%w: skills are required", ErrValidation)
	}
	if len(roles) == 0 {
		return profile.Fresher{}, fmt.Errorf("%w: interested roles are required", ErrValidation)
	}
	if in.SalaryPreference <= 0 {
		return profile.Fresher{}, fmt.Errorf("%w: salary preference must be positive", ErrValidation)
	}
	mode, ok := profile.ParseWorkMode(in.WorkMode)
	if !ok {
		return profile.Fresher{}, fmt.Errorf("%w: work mode must be remote, hybrid or onsite", ErrValidation)
	}

	p, err := uc.freshers.Upsert(ctx, profile.Fresher{
		UserID:           userID,
		Skills:           skills,
		InterestedRoles:  roles,
		SalaryPreference: in.SalaryPreference,
		WorkMode:         mode,
	})
	if err != nil {
		return profile.Fresher{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.reconcileAfterWrite(ctx, userID)
	return p, nil
}

type ExperiencedProfileInput struct {
	Skills           []string
	ReasonForSwitch  string
	SalaryPreference int64
	ExperienceYears  int
	WorkMode         string
	Achievements     string
}

func (uc *ProfileUsecase) UpsertExperiencedProfile(ctx context.Context, userID uuid.UUID, in ExperiencedProfileInput) (profile.Experienced, error) {
	skills := cleanList(in.Skills)
	if len(skills) == 0 {
		return profile.Experienced{}, fmt.Errorf("%w: skills are required", ErrValidation)
	}
	if strings.TrimSpace(in.ReasonForSwitch) == "" {
		return profile.Experienced{}, fmt.Errorf("%w: reason for switch is required", ErrValidation)
	}
	if in.SalaryPreference <= 0 {
		return profile.Experienced{}, fmt.Errorf("%w: salary preference must be positive", ErrValidation)
	}
	if in.ExperienceYears <= 0 {
		return profile.Experienced{}, fmt.Errorf("%w: experience years must be positive", ErrValidation)
	}
	mode, ok := profile.ParseWorkMode(in.WorkMode)
	if !ok {
		return profile.Experienced{}, fmt.Errorf("%w: work mode must be remote, hybrid or onsite", ErrValidation)
	}

	p, err := uc.experienced.Upsert(ctx, profile.Experienced{
		UserID:           userID,
		Skills:           skills,
		ReasonForSwitch:  strings.TrimSpace(in.ReasonForSwitch),
		SalaryPreference: in.SalaryPreference,
		ExperienceYears:  in.ExperienceYears,
		WorkMode:         mode,
		Achievements:     strings.TrimSpace(in.Achievements),
	})
	if err != nil {
		return profile.Experienced{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.reconcileAfterWrite(ctx, userID)
	return p, nil
}

// UpdateUserSkills is the legacy Student dashboard path: it writes the flat
// skill list on the user row and mirrors it into the Student profile
// document so both completion views agree.
func (uc *ProfileUsecase) UpdateUserSkills(ctx context.Context, userID uuid.UUID, skills []string) (user.User, error) {
	cleaned := cleanList(skills)
	if len(cleaned) == 0 {
		return user.User{}, fmt.Errorf("%w: skills are required", ErrValidation)
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: user", ErrNotFound)
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if u.Role == user.RoleStudent {
		existing, err := uc.students.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, profile.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		existing.UserID = userID
		existing.Skills = cleaned
		if _, err := uc.students.Upsert(ctx, existing); err != nil {
			return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	complete, err := uc.completion.Evaluate(ctx, u)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := uc.users.UpdateSkills(ctx, userID, cleaned, complete); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: user", ErrNotFound)
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u.Skills = cleaned
	u.IsProfileComplete = complete
	u.PasswordHash = ""
	return u, nil
}

type SaveProfileInput struct {
	Name         string
	Title        string
	Company      string
	ProfileURL   string
	ThumbnailURL string
	Role         string
}

// SaveProfile pins a search hit onto the fresher profile document. The
// document must already exist; saving never creates one, since document
// existence is what marks a fresher profile complete.
func (uc *ProfileUsecase) SaveProfile(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (profile.SavedProfileList, error) {
	if strings.TrimSpace(in.ProfileURL) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name and profile url are required", ErrValidation)
	}

	p, err := uc.freshers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, fmt.Errorf("%w: fresher profile", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	list, err := p.SavedProfiles.Add(profile.SavedProfile{
		Name:         strings.TrimSpace(in.Name),
		Title:        strings.TrimSpace(in.Title),
		Company:      strings.TrimSpace(in.Company),
		ProfileURL:   strings.TrimSpace(in.ProfileURL),
		ThumbnailURL: strings.TrimSpace(in.ThumbnailURL),
		Role:         strings.TrimSpace(in.Role),
		SavedAt:      uc.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: profile already saved", ErrDuplicate)
	}

	if err := uc.freshers.UpdateSavedProfiles(ctx, userID, list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return list, nil
}

// RemoveSavedProfile is idempotent: removing an absent URL or operating on
// a user with no fresher document succeeds with the current list.
func (uc *ProfileUsecase) RemoveSavedProfile(ctx context.Context, userID uuid.UUID, profileURL string) (profile.SavedProfileList, error) {
	if strings.TrimSpace(profileURL) == "" {
		return nil, fmt.Errorf("%w: profile url is required", ErrValidation)
	}

	p, err := uc.freshers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.SavedProfileList{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	list := p.SavedProfiles.Remove(strings.TrimSpace(profileURL))
	if len(list) == len(p.SavedProfiles) {
		return list, nil
	}
	if err := uc.freshers.UpdateSavedProfiles(ctx, userID, list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return list, nil
}

func (uc *ProfileUsecase) ListSavedProfiles(ctx context.Context, userID uuid.UUID) (profile.SavedProfileList, error) {
	p, err := uc.freshers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.SavedProfileList{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if p.SavedProfiles == nil {
		return profile.SavedProfileList{}, nil
	}
	return p.SavedProfiles, nil
}

func (uc *ProfileUsecase) reconcileAfterWrite(ctx context.Context, userID uuid.UUID) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		slog.Warn("completion reconcile skipped after profile write",
			"component", "profile",
			"user_id", userID,
			"error", err)
		return
	}
	if _, err := uc.completion.Reconcile(ctx, u); err != nil {
		slog.Warn("completion reconcile failed after profile write",
			"component", "profile",
			"user_id", userID,
			"error", err)
	}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
