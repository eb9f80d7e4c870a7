package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/users"
	httpHandler "github.com/piresc/cabbooking/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	usersHTTP *httpHandler.UserHandler
	limiter   echo.MiddlewareFunc
}

// NewHandler creates a new combined handler. Register and login are rate
// limited per client IP through redisClient.
func NewHandler(userUC users.UserUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	period := time.Duration(cfg.RateLimit.Period) * time.Second
	return &Handler{
		usersHTTP: httpHandler.NewUserHandler(userUC),
		limiter:   middleware.IPRateLimiter(cfg.RateLimit.Limit, period, redisClient),
	}
}

// RegisterRoutes registers the anonymous auth routes and the profile route
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/users")
	group.POST("/register", h.usersHTTP.Register, h.limiter)
	group.POST("/login", h.usersHTTP.Login, h.limiter)
	group.GET("/:uid", h.usersHTTP.GetProfile, auth)
}
