package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/repository"
	"github.com/cbda-academy/exam-api/internal/verification"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCodeRejected       = errors.New("invalid or expired verification code")
)

type AuthService interface {
	Login(email, password string) (*dto.UserResponse, error)
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	ChangeEmail(ctx context.Context, req dto.ChangeEmailRequest) error
	SeedDefaults() error
}

type authService struct {
	userRepo repository.UserRepository
	verifier *verification.Service
}

func NewAuthService(userRepo repository.UserRepository, verifier *verification.Service) AuthService {
	return &authService{userRepo: userRepo, verifier: verifier}
}

func (s *authService) Login(email, password string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return toUserResponse(user)
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		Verified:     req.Verified,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("Student registered")
	return toUserResponse(user)
}

// ChangeEmail swaps a user's email after the new address has proven control
// via a verification code.
func (s *authService) ChangeEmail(ctx context.Context, req dto.ChangeEmailRequest) error {
	ok, err := s.verifier.Verify(ctx, req.NewEmail, req.Code)
	if err != nil {
		return fmt.Errorf("verification check failed: %w", err)
	}
	if !ok {
		return ErrCodeRejected
	}

	if existing, err := s.userRepo.FindByEmail(req.NewEmail); err == nil && existing.ID != req.UserID {
		return ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking existing email: %w", err)
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error looking up user: %w", err)
	}
	if err := s.userRepo.UpdateEmail(req.UserID, req.NewEmail); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	log.Info().Str("user_id", req.UserID).Msg("User email changed")
	return nil
}

// SeedDefaults creates the initial admin and demo student accounts when the
// users table is empty.
func (s *authService) SeedDefaults() error {
	n, err := s.userRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []struct {
		name, email, password, role string
	}{
		{"Admin User", "admin@example.com", "admin123", model.RoleAdmin},
		{"Demo Student", "student@example.com", "student123", model.RoleStudent},
	}
	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		user := &model.User{
			ID:           uuid.NewString(),
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
			Verified:     true,
		}
		if err := s.userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", d.email, err)
		}
	}
	log.Info().Msg("Default users seeded")
	return nil
}

func toUserResponse(user *model.User) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
