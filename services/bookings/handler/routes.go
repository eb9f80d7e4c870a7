package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/services/bookings"
	httpHandler "github.com/piresc/cabbooking/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingsHTTP *httpHandler.BookingHandler
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC) *Handler {
	return &Handler{
		bookingsHTTP: httpHandler.NewBookingHandler(bookingUC),
	}
}

// RegisterRoutes registers all HTTP routes behind the auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/bookings", auth)
	group.POST("", h.bookingsHTTP.CreateBooking)
	group.GET("/current", h.bookingsHTTP.GetCurrent)
	group.GET("/past", h.bookingsHTTP.GetPast)
	group.GET("/:id", h.bookingsHTTP.GetBooking)
	group.PUT("/:id/mark-paid", h.bookingsHTTP.MarkPaid)
	group.POST("/:id/mark-paid", h.bookingsHTTP.MarkPaid)
}
