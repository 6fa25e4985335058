package usecase

import (
	"context"
	"encoding/json"
	"time"

	"careercatalyst/internal/domain/career"
	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
	err   error

	setCompleteCalls int
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	m := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if r.err != nil {
		return user.User{}, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) UpdateSkills(_ context.Context, id uuid.UUID, skills []string, complete bool) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Skills = skills
	u.IsProfileComplete = complete
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) SetProfileComplete(_ context.Context, id uuid.UUID, complete bool) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.IsProfileComplete = complete
	r.users[id] = u
	r.setCompleteCalls++
	return nil
}

type fakeStudentRepo struct {
	docs map[uuid.UUID]profile.Student
	err  error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{docs: map[uuid.UUID]profile.Student{}}
}

func (r *fakeStudentRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Student, error) {
	if r.err != nil {
		return profile.Student{}, r.err
	}
	p, ok := r.docs[userID]
	if !ok {
		return profile.Student{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeStudentRepo) Upsert(_ context.Context, p profile.Student) (profile.Student, error) {
	if r.err != nil {
		return profile.Student{}, r.err
	}
	if existing, ok := r.docs[p.UserID]; ok {
		p.SavedProfiles = existing.SavedProfiles
	}
	if p.LearningProgress == nil {
		p.LearningProgress = []profile.LearningProgress{}
	}
	r.docs[p.UserID] = p
	return p, nil
}

type fakeFresherRepo struct {
	docs map[uuid.UUID]profile.Fresher
	err  error
}

func newFakeFresherRepo() *fakeFresherRepo {
	return &fakeFresherRepo{docs: map[uuid.UUID]profile.Fresher{}}
}

func (r *fakeFresherRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Fresher, error) {
	if r.err != nil {
		return profile.Fresher{}, r.err
	}
	p, ok := r.docs[userID]
	if !ok {
		return profile.Fresher{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeFresherRepo) Upsert(_ context.Context, p profile.Fresher) (profile.Fresher, error) {
	if r.err != nil {
		return profile.Fresher{}, r.err
	}
	if existing, ok := r.docs[p.UserID]; ok {
		p.SavedProfiles = existing.SavedProfiles
	}
	r.docs[p.UserID] = p
	return p, nil
}

func (r *fakeFresherRepo) UpdateSavedProfiles(_ context.Context, userID uuid.UUID, list profile.SavedProfileList) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.docs[userID]
	if !ok {
		return profile.ErrNotFound
	}
	p.SavedProfiles = list
	r.docs[userID] = p
	return nil
}

type fakeExperiencedRepo struct {
	docs map[uuid.UUID]profile.Experienced
	err  error
}

func newFakeExperiencedRepo() *fakeExperiencedRepo {
	return &fakeExperiencedRepo{docs: map[uuid.UUID]profile.Experienced{}}
}

func (r *fakeExperiencedRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Experienced, error) {
	if r.err != nil {
		return profile.Experienced{}, r.err
	}
	p, ok := r.docs[userID]
	if !ok {
		return profile.Experienced{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeExperiencedRepo) Upsert(_ context.Context, p profile.Experienced) (profile.Experienced, error) {
	if r.err != nil {
		return profile.Experienced{}, r.err
	}
	r.docs[p.UserID] = p
	return p, nil
}

type fakeGenerator struct {
	responses []string
	err       error

	calls   int
	prompts []string
}

func (g *fakeGenerator) Complete(_ context.Context, _, userPrompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, userPrompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", nil
	}
	resp := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return resp, nil
}

type fakeSearcher struct {
	hits []career.ProfileHit
	err  error

	calls   int
	queries []string
}

func (s *fakeSearcher) FindProfiles(_ context.Context, query string) ([]career.ProfileHit, error) {
	s.calls++
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.hits, nil
}

type fakeSearchCache struct {
	store map[string][]byte
	err   error
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{store: map[string][]byte{}}
}

func (c *fakeSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
