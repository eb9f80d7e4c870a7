package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Pay handles POST /payments
func (h *PaymentHandler) Pay(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Pay")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.BookingID = strings.TrimSpace(req.BookingID)
	if req.BookingID == "" {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}
	nrpkg.AddTransactionAttribute(txn, "booking.id", req.BookingID)

	logger.Info("Received payment request",
		logger.String("booking_id", req.BookingID),
		logger.String("user_id", userID),
		logger.String("client_ip", c.RealIP()))

	dto, err := h.paymentUC.Pay(c.Request().Context(), userID, req.BookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "payment.total", dto.TotalPrice)
	return utils.SuccessResponse(c, http.StatusOK, "Payment completed", dto)
}

// GetPayments handles GET /payments/:userId
func (h *PaymentHandler) GetPayments(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.GetPayments")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	list, err := h.paymentUC.GetPayments(c.Request().Context(), callerID, c.Param("userId"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payments", list)
}

// GetReceipt handles GET /payments/:userId/:paymentId/receipt
func (h *PaymentHandler) GetReceipt(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.GetReceipt")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	nrpkg.AddTransactionAttribute(txn, "payment.id", c.Param("paymentId"))

	receipt, err := h.paymentUC.GetReceipt(c.Request().Context(), callerID, c.Param("userId"), c.Param("paymentId"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", receipt.Filename))
	return c.Blob(http.StatusOK, receipt.ContentType, receipt.Content)
}
