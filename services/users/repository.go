package users

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, uid string) (*models.User, error)
}
