package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

func ParseWorkMode(s string) (WorkMode, bool) {
	switch WorkMode(strings.ToLower(strings.TrimSpace(s))) {
	case WorkModeRemote:
		return WorkModeRemote, true
	case WorkModeHybrid:
		return WorkModeHybrid, true
	case WorkModeOnsite:
		return WorkModeOnsite, true
	default:
		return "", false
	}
}

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "Not Started"
	ProgressInProgress ProgressStatus = "In Progress"
	ProgressCompleted  ProgressStatus = "Completed"
)

type Education struct {
	Level          string `json:"level,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

type AcademicPerformance struct {
	GPA          float64  `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type LearningProgress struct {
	Skill       string         `json:"skill"`
	Status      ProgressStatus `json:"status"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

type Student struct {
	ID               uuid.UUID           `json:"id"`
	UserID           uuid.UUID           `json:"userId"`
	Skills           []string            `json:"skills"`
	Education        Education           `json:"currentEducation"`
	Interests        []string            `json:"interests"`
	Academic         AcademicPerformance `json:"academicPerformance"`
	SavedProfiles    SavedProfileList    `json:"savedProfiles"`
	LearningProgress []LearningProgress  `json:"learningProgress"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type Fresher struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"userId"`
	Skills           []string         `json:"skills"`
	InterestedRoles  []string         `json:"interestedRoles"`
	SalaryPreference int64            `json:"salaryPreferences"`
	WorkMode         WorkMode         `json:"workMode"`
	SavedProfiles    SavedProfileList `json:"savedProfiles"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type Experienced struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Skills           []string  `json:"skills"`
	ReasonForSwitch  string    `json:"reasonForSwitch"`
	SalaryPreference int64     `json:"salaryPreferences"`
	ExperienceYears  int       `json:"experienceYears"`
	WorkMode         WorkMode  `json:"workMode"`
	Achievements     string    `json:"additionalAchievements,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
