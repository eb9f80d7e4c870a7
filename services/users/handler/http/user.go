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
	"github.com/piresc/cabbooking/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Register handles POST /users/register
func (h *UserHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		if !errors.Is(err, models.ErrValidation) && !errors.Is(err, models.ErrConflict) {
			logger.Error("Failed to register user", logger.ErrorField(err))
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "user.id", resp.UID)
	return utils.SuccessResponse(c, http.StatusCreated, "User registered", resp)
}

// Login handles POST /users/login
func (h *UserHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "user.id", resp.UID)
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// GetProfile handles GET /users/:uid
func (h *UserHandler) GetProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetProfile")

	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), callerID, c.Param("uid"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User profile", profile)
}
