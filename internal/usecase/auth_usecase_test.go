package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/pkg/jwt"
	ucauth "careercatalyst/internal/usecase/auth"

	"github.com/google/uuid"
)

func newAuthFixture() (*AuthUsecase, *fakeUserRepo, *fakeStudentRepo, *fakeFresherRepo) {
	users := newFakeUserRepo()
	students := newFakeStudentRepo()
	freshers := newFakeFresherRepo()
	experienced := newFakeExperiencedRepo()
	completion := NewCompletionUsecase(users, students, freshers, experienced)
	tokens := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(ucauth.NewService(users, students), tokens, completion, users)
	return uc, users, students, freshers
}

func TestAuthUsecase_Register(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	result, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		UserType: "Fresher",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if result.User.IsProfileComplete {
		t.Fatalf("fresh registration must start incomplete")
	}
}

func TestAuthUsecase_Register_Duplicate(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	in := ucauth.RegisterInput{Name: "A", Email: "a@b.c", Password: "x", UserType: "Student"}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestAuthUsecase_Register_InvalidInput(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.c"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthUsecase_Login_ReconcilesCompletion(t *testing.T) {
	uc, users, _, freshers := newAuthFixture()

	result, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name: "A", Email: "a@b.c", Password: "secret", UserType: "Fresher",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// A fresher document appears between registration and login; the
	// stored flag is stale until login repairs it.
	freshers.docs[result.User.ID] = profile.Fresher{UserID: result.User.ID}

	out, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.User.IsProfileComplete {
		t.Fatalf("login must serve the reconciled flag")
	}

	stored, _ := users.GetByID(context.Background(), result.User.ID)
	if !stored.IsProfileComplete {
		t.Fatalf("reconciled flag must be persisted")
	}
}

func TestAuthUsecase_Login_DegradesWhenProfileStoreDown(t *testing.T) {
	uc, _, students, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name: "A", Email: "a@b.c", Password: "secret", UserType: "Student",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	students.err = errors.New("connection refused")

	out, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("login must degrade, not fail, got %v", err)
	}
	if out.User.IsProfileComplete {
		t.Fatalf("stored flag must be served unchanged")
	}
	if out.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name: "A", Email: "a@b.c", Password: "secret", UserType: "Student",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "a@b.c", Password: "wrong"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthUsecase_CurrentUser_NotFound(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.CurrentUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
