package models

import (
	"time"
)

// Payment is the immutable record of a settled booking
type Payment struct {
	ID                  string    `json:"id" db:"id"`
	BookingID           string    `json:"bookingId" db:"booking_id"`
	UserID              string    `json:"userUid" db:"user_id"`
	BaseFare            float64   `json:"cabFare" db:"base_fare"`
	CabMultiplier       float64   `json:"cabMultiplier" db:"cab_multiplier"`
	TimeOfDayMultiplier float64   `json:"daytimeMultiplier" db:"time_multiplier"`
	PassengerMultiplier float64   `json:"passengersMultiplier" db:"passenger_multiplier"`
	DiscountMultiplier  float64   `json:"discountMultiplier" db:"discount_multiplier"`
	Total               float64   `json:"totalPrice" db:"total"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}

// PaymentRequest is the body of POST /payments
type PaymentRequest struct {
	BookingID string `json:"bookingId"`
}

// PaymentDTO is returned to the client after a successful payment
type PaymentDTO struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"bookingId"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Receipt is a rendered payment receipt
type Receipt struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ToDTO projects the payment into its client view
func (p *Payment) ToDTO() PaymentDTO {
	return PaymentDTO{
		ID:         p.ID,
		BookingID:  p.BookingID,
		TotalPrice: p.Total,
		CreatedAt:  p.CreatedAt,
	}
}
