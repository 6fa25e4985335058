package profile

import "careercatalyst/internal/domain/user"

// CompletionInput carries whichever role profile was found for the user.
// A nil pointer means no document exists for that role.
type CompletionInput struct {
	Student     *Student
	Fresher     *Fresher
	Experienced *Experienced
}

// completionRules is the single source of truth for "is this profile usable
// for recommendations", one predicate per role kind.
var completionRules = map[user.Role]func(CompletionInput) bool{
	user.RoleStudent: func(in CompletionInput) bool {
		return in.Student != nil && len(in.Student.Skills) > 0
	},
	// A Fresher counts as complete as soon as the document exists,
	// regardless of field population.
	user.RoleFresher: func(in CompletionInput) bool {
		return in.Fresher != nil
	},
	user.RoleExperienced: func(in CompletionInput) bool {
		p := in.Experienced
		return p != nil &&
			len(p.Skills) > 0 &&
			p.ReasonForSwitch != "" &&
			p.SalaryPreference > 0 &&
			p.ExperienceYears > 0 &&
			p.WorkMode != ""
	},
}

func IsComplete(role user.Role, in CompletionInput) bool {
	rule, ok := completionRules[role]
	if !ok {
		return false
	}
	return rule(in)
}
