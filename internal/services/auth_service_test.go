package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cafedirectory/backend/internal/models"
	"github.com/cafedirectory/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user                   *models.User
	getErr                 error
	createErr              error
	createdUser            *models.User
	existsByUsernameResult bool
	existsByUsernameError  error
	existsByEmailResult    bool
	existsByEmailError     error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.createdUser = user
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameError != nil {
		return false, m.existsByUsernameError
	}
	return m.existsByUsernameResult, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailError != nil {
		return false, m.existsByEmailError
	}
	return m.existsByEmailResult, nil
}

func TestNewAuthService(t *testing.T) {
	logger := zap.NewNop()
	userRepo := &mockUserRepository{}

	svc := NewAuthService(userRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, userRepo, svc.userRepo)
	assert.Equal(t, logger, svc.logger)
}

func TestAuthService_Register(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		req           *models.RegisterRequest
		userRepo      *mockUserRepository
		expectedError error
	}{
		{
			name: "success",
			req: &models.RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			userRepo: &mockUserRepository{},
		},
		{
			name: "username already exists",
			req: &models.RegisterRequest{
				Username: "taken",
				Email:    "test@example.com",
				Password: "password123",
			},
			userRepo:      &mockUserRepository{existsByUsernameResult: true},
			expectedError: ErrUsernameTaken,
		},
		{
			name: "email already exists",
			req: &models.RegisterRequest{
				Username: "testuser",
				Email:    "taken@example.com",
				Password: "password123",
			},
			userRepo:      &mockUserRepository{existsByEmailResult: true},
			expectedError: ErrEmailTaken,
		},
		{
			name: "empty username",
			req: &models.RegisterRequest{
				Username: "   ",
				Email:    "test@example.com",
				Password: "password123",
			},
			userRepo:      &mockUserRepository{},
			expectedError: errors.New("username cannot be empty"),
		},
		{
			name: "empty password",
			req: &models.RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "",
			},
			userRepo:      &mockUserRepository{},
			expectedError: errors.New("password cannot be empty"),
		},
		{
			name: "username check fails",
			req: &models.RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			userRepo:      &mockUserRepository{existsByUsernameError: errors.New("database error")},
			expectedError: errors.New("failed to check username"),
		},
		{
			name: "create fails",
			req: &models.RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			userRepo:      &mockUserRepository{createErr: errors.New("database error")},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, logger)

			err := svc.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrUsernameTaken) || errors.Is(tt.expectedError, ErrEmailTaken) {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewAuthService(userRepo, zap.NewNop())

	err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "testuser",
		Email:    "Test@Example.COM",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, userRepo.createdUser)

	// Plaintext is never stored; the hash verifies against the original password
	assert.NotEqual(t, "password123", userRepo.createdUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(userRepo.createdUser.PasswordHash), []byte("password123")))

	// Email is normalized to lower case
	assert.Equal(t, "test@example.com", userRepo.createdUser.Email)
}

func TestAuthService_Login(t *testing.T) {
	logger := zap.NewNop()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           1,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: string(passwordHash),
	}

	tests := []struct {
		name          string
		req           *models.LoginRequest
		userRepo      *mockUserRepository
		expectedError error
		expectedUser  *models.User
	}{
		{
			name: "success",
			req: &models.LoginRequest{
				Username: "testuser",
				Password: "correct-password",
			},
			userRepo:     &mockUserRepository{user: storedUser},
			expectedUser: storedUser,
		},
		{
			name: "wrong password",
			req: &models.LoginRequest{
				Username: "testuser",
				Password: "wrong-password",
			},
			userRepo:      &mockUserRepository{user: storedUser},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "user not found",
			req: &models.LoginRequest{
				Username: "nonexistent",
				Password: "correct-password",
			},
			userRepo:      &mockUserRepository{getErr: repositories.ErrNotFound},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "empty username",
			req: &models.LoginRequest{
				Username: "",
				Password: "correct-password",
			},
			userRepo:      &mockUserRepository{user: storedUser},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "empty password",
			req: &models.LoginRequest{
				Username: "testuser",
				Password: "",
			},
			userRepo:      &mockUserRepository{user: storedUser},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "database error",
			req: &models.LoginRequest{
				Username: "testuser",
				Password: "correct-password",
			},
			userRepo:      &mockUserRepository{getErr: errors.New("database error")},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, logger)

			user, err := svc.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, ErrInvalidCredentials) {
					assert.ErrorIs(t, err, ErrInvalidCredentials)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}
