package users

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// InboxReader reads a user's notifications for the profile view
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/users InboxReader
type InboxReader interface {
	List(ctx context.Context, callerID, userID string) ([]*models.Notification, error)
}
