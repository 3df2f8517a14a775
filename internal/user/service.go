package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
)

const (
	TokenTTL    = 7 * 24 * time.Hour
	defaultRole = "user"
)

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*Profile, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         defaultRole,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.WithError(err).Error("Failed to create user")
		}
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("User registered")
	return s.issue(u, &Progress{InterviewScores: []InterviewScore{}, SkillsImproved: []string{}})
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		config.WithContext(ctx).WithError(err).Error("Failed to load user for login")
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	progress, err := s.repo.GetProgress(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(u, progress)
}

func (s *userService) issue(u *User, progress *Progress) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), u.Role, TokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toUserResponse(u, progress)}, nil
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.GetProgress(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(u, progress)
	return &resp, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := normalizeProfile(u.Profile)
	return &p, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	p, err := s.repo.UpdateProfile(ctx, id, dto)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to update profile")
		}
		return nil, err
	}
	normalized := normalizeProfile(*p)
	return &normalized, nil
}
