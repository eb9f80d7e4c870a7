package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CreateBooking")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	id, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create booking in handler",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "booking.id", id)
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", models.BookingCreated{ID: id})
}

// GetCurrent handles GET /bookings/current
func (h *BookingHandler) GetCurrent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetCurrent")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	list, err := h.bookingUC.GetCurrent(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Current bookings", list)
}

// GetPast handles GET /bookings/past
func (h *BookingHandler) GetPast(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetPast")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	list, err := h.bookingUC.GetPast(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Past bookings", list)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetBooking")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	id := c.Param("id")
	nrpkg.AddTransactionAttribute(txn, "booking.id", id)

	booking, err := h.bookingUC.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return hideForeign(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking found", booking)
}

// MarkPaid handles PUT|POST /bookings/:id/mark-paid
func (h *BookingHandler) MarkPaid(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.MarkPaid")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	nrpkg.AddTransactionAttribute(txn, "booking.id", id)

	changed, err := h.bookingUC.MarkPaid(ctx, userID, id)
	if err != nil {
		logger.Error("Failed to mark booking paid",
			logger.String("booking_id", id),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	if changed {
		return c.NoContent(http.StatusNoContent)
	}

	// nothing changed: either the booking is not the caller's or it is already paid
	if _, err := h.bookingUC.GetByID(ctx, userID, id); err != nil {
		return hideForeign(c, err)
	}
	return utils.ConflictResponse(c, "Booking is already paid")
}

// hideForeign answers 404 for bookings owned by someone else
func hideForeign(c echo.Context, err error) error {
	if errors.Is(err, models.ErrForbidden) || errors.Is(err, models.ErrNotFound) {
		return utils.NotFoundResponse(c, "Booking not found")
	}
	return utils.DomainErrorResponse(c, err)
}
