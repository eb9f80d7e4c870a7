package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
)

// RequestIDMiddleware propagates X-Request-ID, generating one when the client sent none
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Set(constants.ContextKeyRequestID, requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), "request.id", requestID)

			return next(c)
		}
	}
}
