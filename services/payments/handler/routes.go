package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/services/payments"
	httpHandler "github.com/piresc/cabbooking/services/payments/handler/http"
)

// Handler combines all handlers for the payments service
type Handler struct {
	paymentsHTTP *httpHandler.PaymentHandler
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payments.PaymentUC) *Handler {
	return &Handler{
		paymentsHTTP: httpHandler.NewPaymentHandler(paymentUC),
	}
}

// RegisterRoutes registers all HTTP routes behind the auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/payments", auth)
	group.POST("", h.paymentsHTTP.Pay)
	group.GET("/:userId", h.paymentsHTTP.GetPayments)
	group.GET("/:userId/:paymentId/receipt", h.paymentsHTTP.GetReceipt)
}
