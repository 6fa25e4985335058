package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is fixed at registration and never changes afterwards.
type Role string

const (
	RoleStudent     Role = "Student"
	RoleFresher     Role = "Fresher"
	RoleExperienced Role = "Experienced"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.TrimSpace(s)) {
	case RoleStudent:
		return RoleStudent, true
	case RoleFresher:
		return RoleFresher, true
	case RoleExperienced:
		return RoleExperienced, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"userType"`

	// IsProfileComplete is derived from the role-profile store and
	// reconciled on login and profile reads.
	IsProfileComplete bool `json:"isProfileComplete"`

	// Skills is the legacy flat list used by the Student dashboard path.
	Skills []string `json:"skills,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
