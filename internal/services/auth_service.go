package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cafedirectory/backend/internal/models"
	"github.com/cafedirectory/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database and assigns its ID.
	//
	// If some error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username.
	//
	// If a user with such username does not exist, repositories.ErrNotFound
	// will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// authService implements registration and credential verification
type authService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new user account. The new user is not logged in
// automatically; the caller is expected to go through Login.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if req.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	usernameExists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if usernameExists {
		return ErrUsernameTaken
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return ErrEmailTaken
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return nil
}

// Login verifies credentials and returns the authenticated user
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
