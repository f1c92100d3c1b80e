package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/repositories"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
	"github.com/frolicdev/frolic/internal/pkg/auth"
	"github.com/frolicdev/frolic/internal/pkg/logger"
)

// AuthService handles registration, login and profile lookups
type AuthService struct {
	userRepo   userRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo userRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user account and returns it with a fresh access token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.RoleType(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("Invalid role")
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking existing users: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("User already exists")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two racing registrations can both pass the exists check; the
		// unique constraints decide the loser.
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewValidationError("User already exists")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Token:    token,
	}, nil
}

// Login verifies credentials and returns the user with a fresh access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, invalidCredentials()
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Token:    token,
	}, nil
}

// Profile returns the account of the authenticated user
func (s *AuthService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}
	return user, nil
}

func invalidCredentials() error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrInvalidCredentials,
		Message: "Invalid email or password",
	}
}
