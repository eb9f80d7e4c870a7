package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg        *models.Config
	repo       users.UserRepo
	inbox      users.InboxReader
	bcryptCost int
	now        func() time.Time
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo, inbox users.InboxReader) users.UserUC {
	return &userUC{
		cfg:        cfg,
		repo:       repo,
		inbox:      inbox,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register creates a customer account and signs them in
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := normaliseEmail(req.Email)
	username := strings.TrimSpace(req.Username)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", models.ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UID:               uuid.New().String(),
		Email:             email,
		Username:          username,
		PasswordHash:      string(hash),
		DiscountAvailable: false,
		CreatedAt:         uc.now().UTC(),
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.UID))

	return uc.issueToken(user)
}

// Login checks the credentials and issues a bearer token
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.repo.GetUserByEmail(ctx, normaliseEmail(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login rejected",
			logger.String("user_id", user.UID))
		return nil, errInvalidCredentials
	}

	return uc.issueToken(user)
}

// GetProfile returns the caller's account together with their inbox
func (uc *userUC) GetProfile(ctx context.Context, callerID, uid string) (*models.Profile, error) {
	if callerID != uid {
		return nil, fmt.Errorf("%w: profile belongs to another user", models.ErrForbidden)
	}

	user, err := uc.repo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	inbox, err := uc.inbox.List(ctx, callerID, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}

	return &models.Profile{
		User:          user,
		Notifications: inbox,
	}, nil
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.UID, user.Email, constants.RoleCustomer, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		UID:       user.UID,
		Email:     user.Email,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
