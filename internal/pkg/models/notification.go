package models

import (
	"fmt"
	"strings"
	"time"
)

// NotificationCategory tells which pipeline produced an event
type NotificationCategory string

const (
	CategoryDiscount NotificationCategory = "discount"
	CategoryCabReady NotificationCategory = "cab_ready"
)

// DiscountNotificationID is the fixed inbox id of the discount notification
const DiscountNotificationID = "discount"

// DiscountEarnedMessage is the inbox text of the discount notification
const DiscountEarnedMessage = "User has made their 3rd booking."

// CabReadyNotificationID returns the inbox id of a booking's cab-ready notification
func CabReadyNotificationID(bookingID string) string {
	return "booking-" + bookingID
}

// CabReadyMessage formats the cab-ready inbox text
func CabReadyMessage(bookingID, start, end string) string {
	return fmt.Sprintf("Your cab is ready for pickup.\nBooking ID: %s\nFrom: %s\nTo: %s", bookingID, start, end)
}

// Notification is one document of a user's inbox
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
	Read      bool      `json:"read" db:"read"`
}

// AddNotificationRequest is the body of POST /users/:uid/notifications
type AddNotificationRequest struct {
	Message string `json:"message"`
}

// NotificationEvent is the payload carried on the discount and cab-ready channels
type NotificationEvent struct {
	UID       string               `json:"uid"`
	BookingID string               `json:"bookingId,omitempty"`
	Message   string               `json:"message"`
	Category  NotificationCategory `json:"category"`
	DeliverAt *time.Time           `json:"deliverAt,omitempty"`
}

// Validate checks the required fields of the event schema
func (e NotificationEvent) Validate() error {
	var missing []string
	if e.UID == "" {
		missing = append(missing, "uid")
	}
	if e.Message == "" {
		missing = append(missing, "message")
	}
	switch e.Category {
	case CategoryDiscount:
	case CategoryCabReady:
		if e.BookingID == "" {
			missing = append(missing, "bookingId")
		}
	default:
		return fmt.Errorf("%w: unknown notification category %q", ErrValidation, e.Category)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// NotificationID returns the deterministic inbox id for the event
func (e NotificationEvent) NotificationID() string {
	if e.Category == CategoryDiscount {
		return DiscountNotificationID
	}
	return CabReadyNotificationID(e.BookingID)
}
