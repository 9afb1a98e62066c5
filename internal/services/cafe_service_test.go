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
)

// mockCafeRepository is a mock implementation of CafeRepository
type mockCafeRepository struct {
	cafes       []models.Cafe
	cafe        *models.Cafe
	createErr   error
	getAllErr   error
	getByIDErr  error
	deleteErr   error
	deletedID   int
	createdCafe *models.Cafe
}

func (m *mockCafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	if m.createErr != nil {
		return m.createErr
	}
	cafe.ID = 1
	m.createdCafe = cafe
	return nil
}

func (m *mockCafeRepository) GetAll(ctx context.Context) ([]models.Cafe, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.cafes, nil
}

func (m *mockCafeRepository) GetByID(ctx context.Context, cafeID int) (*models.Cafe, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.cafe, nil
}

func (m *mockCafeRepository) Delete(ctx context.Context, cafeID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = cafeID
	return nil
}

// validCreateRequest builds a request with all required fields present
func validCreateRequest() *models.CreateCafeRequest {
	name := "Central Perk"
	mapURL := "https://maps.example.com/central-perk"
	location := "Manhattan"
	boolTrue := true
	boolFalse := false
	return &models.CreateCafeRequest{
		Name:         &name,
		MapURL:       &mapURL,
		Location:     &location,
		HasSockets:   &boolTrue,
		HasToilet:    &boolTrue,
		HasWifi:      &boolTrue,
		CanTakeCalls: &boolFalse,
	}
}

func TestNewCafeService(t *testing.T) {
	logger := zap.NewNop()
	cafeRepo := &mockCafeRepository{}

	svc := NewCafeService(cafeRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, cafeRepo, svc.cafeRepo)
	assert.Equal(t, logger, svc.logger)
}

func TestCafeService_GetAll(t *testing.T) {
	logger := zap.NewNop()

	t.Run("success", func(t *testing.T) {
		expected := []models.Cafe{
			{ID: 1, Name: "Central Perk"},
			{ID: 2, Name: "Corner Cafe"},
		}
		svc := NewCafeService(&mockCafeRepository{cafes: expected}, logger)

		cafes, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, cafes)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := NewCafeService(&mockCafeRepository{getAllErr: errors.New("database error")}, logger)

		cafes, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Nil(t, cafes)
	})
}

func TestCafeService_Create(t *testing.T) {
	logger := zap.NewNop()

	t.Run("success", func(t *testing.T) {
		repo := &mockCafeRepository{}
		svc := NewCafeService(repo, logger)

		cafe, err := svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, cafe)
		assert.Equal(t, 1, cafe.ID)
		assert.Equal(t, "Central Perk", cafe.Name)
		assert.True(t, cafe.HasWifi)
		assert.False(t, cafe.CanTakeCalls)
		assert.Nil(t, cafe.Seats)
		assert.Nil(t, cafe.CoffeePrice)
	})

	t.Run("explicit false counts as present", func(t *testing.T) {
		req := validCreateRequest()
		boolFalse := false
		req.HasSockets = &boolFalse
		req.HasToilet = &boolFalse
		req.HasWifi = &boolFalse
		svc := NewCafeService(&mockCafeRepository{}, logger)

		cafe, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, cafe.HasSockets)
		assert.False(t, cafe.HasToilet)
		assert.False(t, cafe.HasWifi)
	})

	t.Run("missing single required field", func(t *testing.T) {
		req := validCreateRequest()
		req.MapURL = nil
		svc := NewCafeService(&mockCafeRepository{}, logger)

		cafe, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Contains(t, err.Error(), "map_url")
		assert.Nil(t, cafe)
	})

	t.Run("missing all required fields", func(t *testing.T) {
		svc := NewCafeService(&mockCafeRepository{}, logger)

		cafe, err := svc.Create(context.Background(), &models.CreateCafeRequest{})

		assert.ErrorIs(t, err, ErrMissingFields)
		for _, field := range []string{"name", "map_url", "location", "has_sockets", "has_toilet", "has_wifi", "can_take_calls"} {
			assert.Contains(t, err.Error(), field)
		}
		assert.Nil(t, cafe)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := NewCafeService(&mockCafeRepository{createErr: errors.New("database error")}, logger)

		cafe, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingFields)
		assert.Nil(t, cafe)
	})
}

func TestCafeService_Delete(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		userID        int
		cafeID        int
		cafeRepo      *mockCafeRepository
		expectedError error
	}{
		{
			name:     "success as administrator",
			userID:   models.AdminUserID,
			cafeID:   5,
			cafeRepo: &mockCafeRepository{},
		},
		{
			name:          "forbidden for non-administrator",
			userID:        2,
			cafeID:        5,
			cafeRepo:      &mockCafeRepository{},
			expectedError: ErrForbidden,
		},
		{
			name:          "cafe not found",
			userID:        models.AdminUserID,
			cafeID:        999,
			cafeRepo:      &mockCafeRepository{deleteErr: repositories.ErrNotFound},
			expectedError: repositories.ErrNotFound,
		},
		{
			name:          "repository error",
			userID:        models.AdminUserID,
			cafeID:        5,
			cafeRepo:      &mockCafeRepository{deleteErr: errors.New("database error")},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCafeService(tt.cafeRepo, logger)

			err := svc.Delete(context.Background(), tt.userID, tt.cafeID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrForbidden) || errors.Is(tt.expectedError, repositories.ErrNotFound) {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.cafeID, tt.cafeRepo.deletedID)
			}
		})
	}
}

func TestCafeService_Delete_NonAdminNeverReachesRepository(t *testing.T) {
	repo := &mockCafeRepository{}
	svc := NewCafeService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), 42, 5)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.deletedID)
}
