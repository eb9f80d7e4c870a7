package users

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserUC defines the interface for user business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, callerID, uid string) (*models.Profile, error)
}
