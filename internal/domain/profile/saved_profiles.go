package profile

import (
	"errors"
	"time"
)

var ErrDuplicateSavedProfile = errors.New("profile already saved")

// SavedProfile is an external public profile pinned by the user. The
// profile URL is the dedup key inside a single list.
type SavedProfile struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	ProfileURL   string    `json:"profileUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Role         string    `json:"role"`
	SavedAt      time.Time `json:"savedAt"`
}

// SavedProfileList preserves insertion order.
type SavedProfileList []SavedProfile

func (l SavedProfileList) Contains(profileURL string) bool {
	for _, p := range l {
		if p.ProfileURL == profileURL {
			return true
		}
	}
	return false
}

func (l SavedProfileList) Add(p SavedProfile) (SavedProfileList, error) {
	if l.Contains(p.ProfileURL) {
		return l, ErrDuplicateSavedProfile
	}
	return append(l, p), nil
}

// Remove is idempotent: removing an absent URL returns the list unchanged.
func (l SavedProfileList) Remove(profileURL string) SavedProfileList {
	out := make(SavedProfileList, 0, len(l))
	for _, p := range l {
		if p.ProfileURL == profileURL {
			continue
		}
		out = append(out, p)
	}
	return out
}
