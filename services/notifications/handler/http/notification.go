package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/notifications"
)

// NotificationHandler handles HTTP requests on a user's inbox
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// List handles GET /users/:uid/notifications
func (h *NotificationHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.List")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	list, err := h.notificationUC.List(c.Request().Context(), callerID, c.Param("uid"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications", list)
}

// Add handles POST /users/:uid/notifications
func (h *NotificationHandler) Add(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.Add")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.AddNotificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	n, err := h.notificationUC.Add(c.Request().Context(), callerID, c.Param("uid"), req.Message)
	if err != nil {
		logger.Warn("Failed to add notification",
			logger.String("user_id", callerID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Notification added", n)
}

// Delete handles DELETE /users/:uid/notifications/:id
func (h *NotificationHandler) Delete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.Delete")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.notificationUC.Delete(c.Request().Context(), callerID, c.Param("uid"), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkRead handles PATCH /users/:uid/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.MarkRead")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), callerID, c.Param("uid"), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
