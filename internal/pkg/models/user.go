package models

import (
	"time"
)

// User represents a customer account
type User struct {
	UID               string    `json:"uid" db:"uid"`
	Email             string    `json:"email" db:"email"`
	Username          string    `json:"username" db:"username"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	DiscountAvailable bool      `json:"discountAvailable" db:"discount_available"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// RegisterRequest is the body of POST /users/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued bearer token
type AuthResponse struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Profile is a user together with their inbox
type Profile struct {
	User          *User           `json:"user"`
	Notifications []*Notification `json:"notifications"`
}
