package usecase

import (
	"context"
	"errors"
	"testing"

	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
)

func TestCompletionUsecase_Evaluate_MissingDocument(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	uc := NewCompletionUsecase(newFakeUserRepo(u), newFakeStudentRepo(), newFakeFresherRepo(), newFakeExperiencedRepo())

	complete, err := uc.Evaluate(context.Background(), u)
	if err != nil {
		t.Fatalf("missing document is a valid state, got %v", err)
	}
	if complete {
		t.Fatalf("expected incomplete")
	}
}

func TestCompletionUsecase_Evaluate_FresherDocumentExists(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleFresher}
	freshers := newFakeFresherRepo()
	freshers.docs[u.ID] = profile.Fresher{UserID: u.ID}
	uc := NewCompletionUsecase(newFakeUserRepo(u), newFakeStudentRepo(), freshers, newFakeExperiencedRepo())

	complete, err := uc.Evaluate(context.Background(), u)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !complete {
		t.Fatalf("fresher document existence means complete")
	}
}

func TestCompletionUsecase_Reconcile_RepairsStaleFlag(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, IsProfileComplete: false}
	users := newFakeUserRepo(u)
	students := newFakeStudentRepo()
	students.docs[u.ID] = profile.Student{UserID: u.ID, Skills: []string{"Go"}}
	uc := NewCompletionUsecase(users, students, newFakeFresherRepo(), newFakeExperiencedRepo())

	out, err := uc.Reconcile(context.Background(), u)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.IsProfileComplete {
		t.Fatalf("expected repaired flag true")
	}
	if users.setCompleteCalls != 1 {
		t.Fatalf("expected one persist call, got %d", users.setCompleteCalls)
	}

	stored, _ := users.GetByID(context.Background(), u.ID)
	if !stored.IsProfileComplete {
		t.Fatalf("repaired flag must be persisted")
	}
}

func TestCompletionUsecase_Reconcile_NoWriteWhenUnchanged(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, IsProfileComplete: true}
	users := newFakeUserRepo(u)
	students := newFakeStudentRepo()
	students.docs[u.ID] = profile.Student{UserID: u.ID, Skills: []string{"Go"}}
	uc := NewCompletionUsecase(users, students, newFakeFresherRepo(), newFakeExperiencedRepo())

	if _, err := uc.Reconcile(context.Background(), u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if users.setCompleteCalls != 0 {
		t.Fatalf("flag already correct, expected no persist, got %d", users.setCompleteCalls)
	}
}

func TestCompletionUsecase_Reconcile_StoreUnavailable(t *testing.T) {
	u := user.User{ID: uuid.New(), Role: user.RoleStudent, IsProfileComplete: true}
	students := newFakeStudentRepo()
	students.err = errors.New("connection refused")
	uc := NewCompletionUsecase(newFakeUserRepo(u), students, newFakeFresherRepo(), newFakeExperiencedRepo())

	out, err := uc.Reconcile(context.Background(), u)
	if err == nil {
		t.Fatalf("expected error when profile store is unreachable")
	}
	if out.IsProfileComplete != u.IsProfileComplete {
		t.Fatalf("stored flag must stay untouched on failure")
	}
}
