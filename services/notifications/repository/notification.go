package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// NotificationRepo is the Postgres implementation of notifications.NotificationRepo
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{cfg: cfg, db: db}
}

// InsertIfAbsent writes n unless the user already has a notification with the same id
func (r *NotificationRepo) InsertIfAbsent(ctx context.Context, n *models.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (user_id, id, message, created_at, read)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, id) DO NOTHING
	`
	return r.insert(ctx, query, n)
}

// InsertDiscountIfEligible behaves like InsertIfAbsent but writes nothing when
// the user no longer holds the discount.
func (r *NotificationRepo) InsertDiscountIfEligible(ctx context.Context, n *models.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (user_id, id, message, created_at, read)
		SELECT $1, $2, $3, $4, $5
		WHERE EXISTS (SELECT 1 FROM users WHERE uid = $1 AND discount_available)
		ON CONFLICT (user_id, id) DO NOTHING
	`
	return r.insert(ctx, query, n)
}

func (r *NotificationRepo) insert(ctx context.Context, query string, n *models.Notification) (bool, error) {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, n.UserID, n.ID, n.Message, n.CreatedAt, n.Read)
	if err != nil {
		return false, fmt.Errorf("failed to insert notification: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows == 1, nil
}

// List returns the user's inbox, newest first
func (r *NotificationRepo) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, message, created_at, read
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	result := []*models.Notification{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return result, nil
}

// Delete removes one notification and reports whether it existed
func (r *NotificationRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	query := `DELETE FROM notifications WHERE user_id = $1 AND id = $2`
	return r.affectOne(ctx, "delete notification", query, userID, id)
}

// MarkRead flags one notification as read and reports whether it exists
func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	query := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND id = $2`
	return r.affectOne(ctx, "mark notification read", query, userID, id)
}

func (r *NotificationRepo) affectOne(ctx context.Context, op, query string, args ...interface{}) (bool, error) {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	return rows > 0, nil
}
