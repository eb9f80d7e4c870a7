package middleware

import (
	"errors"
	"fmt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/utils"
)

var errMissingUserID = errors.New("missing user_id claim")

// JWTAuthMiddleware creates a middleware for JWT authentication.
// The bearer scheme is matched case-insensitively.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtpkg.ValidateToken(auth, config.Secret)
			if err != nil {
				return nil, err
			}

			userID, ok := (*claims)["user_id"].(string)
			if !ok || userID == "" {
				return nil, errMissingUserID
			}

			role := constants.RoleCustomer
			if r, ok := (*claims)["role"]; ok {
				role = fmt.Sprintf("%v", r)
			}

			c.Set(constants.ContextKeyUserID, userID)
			c.Set(constants.ContextKeyUserRole, role)
			nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), "user.id", userID)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}
			if errors.Is(err, errMissingUserID) {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			return utils.UnauthorizedResponse(c, "Invalid token")
		},
	})
}

// UserID returns the authenticated caller set by JWTAuthMiddleware
func UserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(string)
	return userID, ok && userID != ""
}
