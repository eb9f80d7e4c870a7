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

// PaymentRepo is the Postgres implementation of payments.PaymentRepo
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{cfg: cfg, db: db}
}

// CreatePayment inserts a payment. A second payment for the same booking is a conflict.
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, user_id, base_fare, cab_multiplier,
			time_multiplier, passenger_multiplier, discount_multiplier, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		p.ID,
		p.BookingID,
		p.UserID,
		p.BaseFare,
		p.CabMultiplier,
		p.TimeOfDayMultiplier,
		p.PassengerMultiplier,
		p.DiscountMultiplier,
		p.Total,
		p.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("booking %s already has a payment: %w", p.BookingID, models.ErrConflict)
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPayment returns one payment by id
func (r *PaymentRepo) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	query := `
		SELECT id, booking_id, user_id, base_fare, cab_multiplier, time_multiplier,
			passenger_multiplier, discount_multiplier, total, created_at
		FROM payments
		WHERE id = $1
	`
	var p models.Payment
	if err := database.Conn(ctx, r.db).GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// ListByUser returns the user's payments, newest first
func (r *PaymentRepo) ListByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	query := `
		SELECT id, booking_id, user_id, base_fare, cab_multiplier, time_multiplier,
			passenger_multiplier, discount_multiplier, total, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	result := []*models.Payment{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return result, nil
}
