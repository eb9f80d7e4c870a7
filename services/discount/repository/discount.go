package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// DiscountRepo is the Postgres implementation of discount.DiscountRepo
type DiscountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDiscountRepository creates a discount repository
func NewDiscountRepository(cfg *models.Config, db *sqlx.DB) *DiscountRepo {
	return &DiscountRepo{cfg: cfg, db: db}
}

// BookingOrdinal returns the 1-based position of bookingID among the owner's
// bookings ordered by (created_at, id). It is 0 when the booking is unknown.
func (r *DiscountRepo) BookingOrdinal(ctx context.Context, ownerID, bookingID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN bookings target ON target.id = $2 AND target.owner_id = $1
		WHERE b.owner_id = $1
		  AND (b.created_at, b.id) <= (target.created_at, target.id)
	`
	var ordinal int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &ordinal, query, ownerID, bookingID); err != nil {
		return 0, fmt.Errorf("failed to compute booking ordinal: %w", err)
	}
	return ordinal, nil
}

// GrantDiscount sets the flag for a user who has never been granted one
func (r *DiscountRepo) GrantDiscount(ctx context.Context, ownerID string) (bool, error) {
	query := `
		UPDATE users
		SET discount_available = TRUE, discount_granted_at = NOW()
		WHERE uid = $1 AND discount_granted_at IS NULL
	`
	return r.exec(ctx, "grant discount", query, ownerID)
}

// ConsumeDiscount clears the flag if it is set and reports whether it was
func (r *DiscountRepo) ConsumeDiscount(ctx context.Context, ownerID string) (bool, error) {
	query := `UPDATE users SET discount_available = FALSE WHERE uid = $1 AND discount_available = TRUE`
	return r.exec(ctx, "consume discount", query, ownerID)
}

// SaveDiscountNotification writes the discount inbox entry directly, keeping an
// existing one
func (r *DiscountRepo) SaveDiscountNotification(ctx context.Context, ownerID, message string) error {
	query := `
		INSERT INTO notifications (user_id, id, message, created_at, read)
		VALUES ($1, $2, $3, NOW(), FALSE)
		ON CONFLICT (user_id, id) DO NOTHING
	`
	if _, err := database.Conn(ctx, r.db).ExecContext(ctx, query, ownerID, models.DiscountNotificationID, message); err != nil {
		return fmt.Errorf("failed to save discount notification: %w", err)
	}
	return nil
}

// RemoveDiscountNotification deletes the user's discount inbox entry, if any
func (r *DiscountRepo) RemoveDiscountNotification(ctx context.Context, ownerID string) error {
	query := `DELETE FROM notifications WHERE user_id = $1 AND id = $2`
	if _, err := database.Conn(ctx, r.db).ExecContext(ctx, query, ownerID, models.DiscountNotificationID); err != nil {
		return fmt.Errorf("failed to remove discount notification: %w", err)
	}
	return nil
}

// IsAvailable reads the user's discount flag
func (r *DiscountRepo) IsAvailable(ctx context.Context, ownerID string) (bool, error) {
	var available bool
	query := `SELECT discount_available FROM users WHERE uid = $1`
	if err := database.Conn(ctx, r.db).GetContext(ctx, &available, query, ownerID); err != nil {
		return false, fmt.Errorf("failed to read discount flag: %w", err)
	}
	return available, nil
}

func (r *DiscountRepo) exec(ctx context.Context, op, query string, args ...interface{}) (bool, error) {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	return rows == 1, nil
}
