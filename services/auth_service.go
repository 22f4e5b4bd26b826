package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
)

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.AdminUser, error)
	Login(ctx context.Context, input LoginInput) (*models.AdminUser, error)
}

type SignupInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	SignupSecret string `json:"signup_secret"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	adminRepo    repositories.AdminUserRepository
	signupSecret string
}

func NewAuthService(adminRepo repositories.AdminUserRepository, signupSecret string) AuthService {
	return &authService{
		adminRepo:    adminRepo,
		signupSecret: signupSecret,
	}
}

// Signup creates an admin account. Registration is closed behind a shared
// secret: without it, the panel has no self-service signup.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.AdminUser, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if s.signupSecret == "" ||
		subtle.ConstantTimeCompare([]byte(input.SignupSecret), []byte(s.signupSecret)) != 1 {
		return nil, ErrSignupNotAllowed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.adminRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrAdminUserEmailConflict) {
			return nil, ErrAdminEmailConflict
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.AdminUser, error) {
	email := normalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
