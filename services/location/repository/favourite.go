package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

const favouriteColumns = `id, user_id, name, address, latitude, longitude, geohash, created_at, updated_at`

// FavouriteRepo is the Postgres implementation of location.FavouriteRepo
type FavouriteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFavouriteRepository creates a favourite location repository
func NewFavouriteRepository(cfg *models.Config, db *sqlx.DB) *FavouriteRepo {
	return &FavouriteRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateFavourite inserts a favourite. Names are unique per user.
func (r *FavouriteRepo) CreateFavourite(ctx context.Context, fav *models.FavouriteLocation) error {
	query := `
		INSERT INTO favourite_locations (id, user_id, name, address, latitude, longitude, geohash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		fav.ID,
		fav.UserID,
		fav.Name,
		fav.Address,
		fav.Latitude,
		fav.Longitude,
		fav.Geohash,
		fav.CreatedAt,
		fav.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("favourite %q already exists: %w", fav.Name, models.ErrConflict)
		}
		return fmt.Errorf("failed to create favourite location: %w", err)
	}
	return nil
}

// GetFavourite returns a favourite by id regardless of its owner
func (r *FavouriteRepo) GetFavourite(ctx context.Context, id string) (*models.FavouriteLocation, error) {
	query := `SELECT ` + favouriteColumns + ` FROM favourite_locations WHERE id = $1`

	var fav models.FavouriteLocation
	if err := database.Conn(ctx, r.db).GetContext(ctx, &fav, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("favourite location %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get favourite location: %w", err)
	}
	return &fav, nil
}

// ListFavourites returns the user's favourites ordered by name
func (r *FavouriteRepo) ListFavourites(ctx context.Context, userID string) ([]*models.FavouriteLocation, error) {
	query := `
		SELECT ` + favouriteColumns + `
		FROM favourite_locations
		WHERE user_id = $1
		ORDER BY name ASC
	`
	result := []*models.FavouriteLocation{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favourite locations: %w", err)
	}
	return result, nil
}

// UpdateFavourite rewrites a favourite owned by fav.UserID. It reports false
// when no such row exists.
func (r *FavouriteRepo) UpdateFavourite(ctx context.Context, fav *models.FavouriteLocation) (bool, error) {
	query := `
		UPDATE favourite_locations
		SET name = $3, address = $4, latitude = $5, longitude = $6, geohash = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		fav.ID,
		fav.UserID,
		fav.Name,
		fav.Address,
		fav.Latitude,
		fav.Longitude,
		fav.Geohash,
		fav.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return false, fmt.Errorf("favourite %q already exists: %w", fav.Name, models.ErrConflict)
		}
		return false, fmt.Errorf("failed to update favourite location: %w", err)
	}
	return affectedOne(res)
}

// DeleteFavourite removes a favourite owned by userID
func (r *FavouriteRepo) DeleteFavourite(ctx context.Context, userID, id string) (bool, error) {
	query := `DELETE FROM favourite_locations WHERE id = $1 AND user_id = $2`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favourite location: %w", err)
	}
	return affectedOne(res)
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n == 1, nil
}
