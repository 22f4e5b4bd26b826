package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
)

const testSignupSecret = "letmein-admin"

func TestSignup(t *testing.T) {
	t.Run("valid signup hashes password and hides hash", func(t *testing.T) {
		var created *models.AdminUser
		repo := &fakeAdminUserRepo{
			createFunc: func(ctx context.Context, u *models.AdminUser) error {
				u.ID = 1
				created = u
				return nil
			},
		}
		svc := NewAuthService(repo, testSignupSecret)

		user, err := svc.Signup(context.Background(), SignupInput{
			Email:        "Admin@Example.COM",
			Password:     "correct horse battery staple",
			SignupSecret: testSignupSecret,
		})
		if err != nil {
			t.Fatalf("Signup: %v", err)
		}
		if user.Email != "admin@example.com" {
			t.Errorf("email = %q, want lowercased %q", user.Email, "admin@example.com")
		}
		if user.PasswordHash != "" {
			t.Error("returned user must not carry the password hash")
		}
		if created == nil {
			t.Fatal("repo.Create was not called")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse battery staple")); err != nil {
			t.Errorf("stored hash does not match the password: %v", err)
		}
	})

	t.Run("wrong signup secret", func(t *testing.T) {
		repo := &fakeAdminUserRepo{
			createFunc: func(ctx context.Context, u *models.AdminUser) error {
				t.Fatal("repo.Create must not be called")
				return nil
			},
		}
		svc := NewAuthService(repo, testSignupSecret)

		_, err := svc.Signup(context.Background(), SignupInput{
			Email:        "admin@example.com",
			Password:     "longenoughpassword",
			SignupSecret: "guess",
		})
		if !errors.Is(err, ErrSignupNotAllowed) {
			t.Fatalf("error = %v, want ErrSignupNotAllowed", err)
		}
	})

	t.Run("empty configured secret closes signup entirely", func(t *testing.T) {
		svc := NewAuthService(&fakeAdminUserRepo{}, "")

		_, err := svc.Signup(context.Background(), SignupInput{
			Email:        "admin@example.com",
			Password:     "longenoughpassword",
			SignupSecret: "",
		})
		if !errors.Is(err, ErrSignupNotAllowed) {
			t.Fatalf("error = %v, want ErrSignupNotAllowed", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAuthService(&fakeAdminUserRepo{}, testSignupSecret)

		_, err := svc.Signup(context.Background(), SignupInput{
			Email:        "admin@example.com",
			Password:     "short",
			SignupSecret: testSignupSecret,
		})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("error = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeAdminUserRepo{
			createFunc: func(ctx context.Context, u *models.AdminUser) error {
				return repositories.ErrAdminUserEmailConflict
			},
		}
		svc := NewAuthService(repo, testSignupSecret)

		_, err := svc.Signup(context.Background(), SignupInput{
			Email:        "admin@example.com",
			Password:     "longenoughpassword",
			SignupSecret: testSignupSecret,
		})
		if !errors.Is(err, ErrAdminEmailConflict) {
			t.Fatalf("error = %v, want ErrAdminEmailConflict", err)
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longenoughpassword"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	repo := &fakeAdminUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*models.AdminUser, error) {
			if email != "admin@example.com" {
				return nil, repositories.ErrAdminUserNotFound
			}
			return &models.AdminUser{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, testSignupSecret)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), LoginInput{
			Email:    "ADMIN@example.com",
			Password: "longenoughpassword",
		})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("user ID = %d, want 1", user.ID)
		}
		if user.PasswordHash != "" {
			t.Error("returned user must not carry the password hash")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "admin@example.com",
			Password: "wrongpassword",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "longenoughpassword",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})
}
