package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/roomies-app/roomies-api/internal/constants"
	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
	"github.com/roomies-app/roomies-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields        = errors.New("name and email are required")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrPasswordNeedsLetter  = errors.New("password must contain at least one letter")
	ErrPasswordNeedsNumber  = errors.New("password must contain at least one number")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidToken         = errors.New("invalid verification token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, login, and email verification.
type AuthService struct {
	userRepo repository.UserRepository
	baseURL  string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, baseURL string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		baseURL:  baseURL,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user with an unverified email and a pending
// verification token, and logs the verification link. Email delivery itself
// is an external collaborator; the link log is the development path.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	token, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Name:              name,
		Email:             email,
		PasswordHash:      string(hashedPassword),
		EmailVerified:     false,
		VerificationToken: &token,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Verification email for %s (no SMTP configured): %s/api/auth/verify-email?token=%s",
		user.Email, s.baseURL, token)

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// VerifyEmail resolves a verification token, marks the account verified, and
// clears the token.
func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to find user by token: %w", err)
	}

	if err := s.userRepo.MarkEmailVerified(user.ID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func validatePassword(password string) error {
	if len(password) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}
	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}
	if !hasLetter {
		return ErrPasswordNeedsLetter
	}
	if !hasNumber {
		return ErrPasswordNeedsNumber
	}
	return nil
}
