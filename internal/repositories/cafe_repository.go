package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cafedirectory/backend/internal/models"
	"go.uber.org/zap"
)

type cafeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCafeRepository creates a new cafe repository
func NewCafeRepository(db *sql.DB, logger *zap.Logger) *cafeRepository {
	return &cafeRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new cafe into the database and assigns its ID
func (r *cafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	query := `
		INSERT INTO cafes (name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		cafe.Name,
		cafe.MapURL,
		cafe.ImgURL,
		cafe.Location,
		cafe.HasSockets,
		cafe.HasToilet,
		cafe.HasWifi,
		cafe.CanTakeCalls,
		cafe.Seats,
		cafe.CoffeePrice,
	)
	if err != nil {
		r.logger.Error("failed to create cafe", zap.Error(err))
		return fmt.Errorf("failed to create cafe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cafe.ID = int(id)
	return nil
}

// GetAll retrieves all cafes in insertion order
func (r *cafeRepository) GetAll(ctx context.Context) ([]models.Cafe, error) {
	query := `
		SELECT id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price
		FROM cafes
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query cafes", zap.Error(err))
		return nil, fmt.Errorf("failed to query cafes: %w", err)
	}
	defer rows.Close()

	var cafes []models.Cafe
	for rows.Next() {
		var cafe models.Cafe
		if err := rows.Scan(
			&cafe.ID,
			&cafe.Name,
			&cafe.MapURL,
			&cafe.ImgURL,
			&cafe.Location,
			&cafe.HasSockets,
			&cafe.HasToilet,
			&cafe.HasWifi,
			&cafe.CanTakeCalls,
			&cafe.Seats,
			&cafe.CoffeePrice,
		); err != nil {
			r.logger.Error("failed to scan cafe", zap.Error(err))
			return nil, fmt.Errorf("failed to scan cafe: %w", err)
		}
		cafes = append(cafes, cafe)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cafes, nil
}

// GetByID retrieves a cafe by ID
func (r *cafeRepository) GetByID(ctx context.Context, cafeID int) (*models.Cafe, error) {
	query := `
		SELECT id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price
		FROM cafes
		WHERE id = ?
		LIMIT 1
	`

	cafe := &models.Cafe{}
	err := r.db.QueryRowContext(ctx, query, cafeID).Scan(
		&cafe.ID,
		&cafe.Name,
		&cafe.MapURL,
		&cafe.ImgURL,
		&cafe.Location,
		&cafe.HasSockets,
		&cafe.HasToilet,
		&cafe.HasWifi,
		&cafe.CanTakeCalls,
		&cafe.Seats,
		&cafe.CoffeePrice,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get cafe by id", zap.Error(err), zap.Int("cafe_id", cafeID))
		return nil, fmt.Errorf("failed to get cafe by id: %w", err)
	}

	return cafe, nil
}

// Delete removes a cafe by ID
func (r *cafeRepository) Delete(ctx context.Context, cafeID int) error {
	query := `DELETE FROM cafes WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, cafeID)
	if err != nil {
		r.logger.Error("failed to delete cafe", zap.Error(err), zap.Int("cafe_id", cafeID))
		return fmt.Errorf("failed to delete cafe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
