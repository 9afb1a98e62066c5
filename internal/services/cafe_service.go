package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafedirectory/backend/internal/models"
	"go.uber.org/zap"
)

// CafeRepository is the interface that wraps methods for Cafe table data access
type CafeRepository interface {
	// Method Create inserts a new cafe into the database and assigns its ID.
	//
	// If some error occurs during cafe creation, the error will be returned.
	Create(ctx context.Context, cafe *models.Cafe) error
	// Method GetAll retrieves all cafes in insertion order.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Cafe, error)
	// Method GetByID retrieves a cafe by ID.
	//
	// If a cafe with such ID does not exist, repositories.ErrNotFound
	// will be returned together with "nil" value.
	GetByID(ctx context.Context, cafeID int) (*models.Cafe, error)
	// Method Delete removes a cafe by ID.
	//
	// If a cafe with such ID does not exist, repositories.ErrNotFound will be returned.
	Delete(ctx context.Context, cafeID int) error
}

// cafeService implements the cafe directory business logic
type cafeService struct {
	cafeRepo CafeRepository
	logger   *zap.Logger
}

// NewCafeService creates a new cafe service
func NewCafeService(cafeRepo CafeRepository, logger *zap.Logger) *cafeService {
	return &cafeService{
		cafeRepo: cafeRepo,
		logger:   logger,
	}
}

// GetAll retrieves all cafes
func (s *cafeService) GetAll(ctx context.Context) ([]models.Cafe, error) {
	return s.cafeRepo.GetAll(ctx)
}

// Create validates a cafe creation request and persists the new cafe,
// returning the stored record including its assigned ID
func (s *cafeService) Create(ctx context.Context, req *models.CreateCafeRequest) (*models.Cafe, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	cafe := req.ToCafe()
	if err := s.cafeRepo.Create(ctx, cafe); err != nil {
		return nil, err
	}

	s.logger.Info("cafe created", zap.Int("cafe_id", cafe.ID), zap.String("name", cafe.Name))
	return cafe, nil
}

// Delete removes a cafe. Only the administrator may delete cafes;
// any other identity gets ErrForbidden.
func (s *cafeService) Delete(ctx context.Context, userID, cafeID int) error {
	if userID != models.AdminUserID {
		return ErrForbidden
	}

	if err := s.cafeRepo.Delete(ctx, cafeID); err != nil {
		return err
	}

	s.logger.Info("cafe deleted", zap.Int("cafe_id", cafeID), zap.Int("user_id", userID))
	return nil
}
