package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

const bookingColumns = `id, owner_id, start_location, end_location, scheduled_at,
	passenger_count, cab_class, paid, created_at`

// BookingRepo is the Postgres implementation of bookings.BookingRepo.
// Every statement joins the transaction carried by ctx, if any.
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{cfg: cfg, db: db}
}

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		b.ID,
		b.OwnerID,
		b.StartLocation,
		b.EndLocation,
		b.ScheduledAt,
		b.PassengerCount,
		b.CabClass,
		b.Paid,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b models.Booking
	if err := database.Conn(ctx, r.db).GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// ListUpcoming returns the owner's bookings scheduled at or after now, soonest first
func (r *BookingRepo) ListUpcoming(ctx context.Context, ownerID string, now time.Time) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE owner_id = $1 AND scheduled_at >= $2
		ORDER BY scheduled_at ASC, id ASC
	`
	return r.list(ctx, query, ownerID, now)
}

// ListPast returns the owner's bookings scheduled before now, latest first
func (r *BookingRepo) ListPast(ctx context.Context, ownerID string, now time.Time) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE owner_id = $1 AND scheduled_at < $2
		ORDER BY scheduled_at DESC, id DESC
	`
	return r.list(ctx, query, ownerID, now)
}

func (r *BookingRepo) list(ctx context.Context, query, ownerID string, now time.Time) ([]*models.Booking, error) {
	result := []*models.Booking{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &result, query, ownerID, now); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return result, nil
}

// MarkPaid flips paid from false to true for the owner's booking. It reports
// false when the booking is missing, belongs to someone else or is already paid.
func (r *BookingRepo) MarkPaid(ctx context.Context, ownerID, id string) (bool, error) {
	query := `UPDATE bookings SET paid = TRUE WHERE id = $1 AND owner_id = $2 AND paid = FALSE`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows == 1, nil
}
