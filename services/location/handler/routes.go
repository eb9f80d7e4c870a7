package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/services/location"
	httpHandler "github.com/piresc/cabbooking/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers all HTTP routes behind the auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/locations", auth)
	group.GET("/geocode", h.locationHTTP.Geocode)
	group.GET("/weather", h.locationHTTP.GetWeather)

	favourites := group.Group("/favourites")
	favourites.GET("", h.locationHTTP.ListFavourites)
	favourites.POST("", h.locationHTTP.CreateFavourite)
	favourites.GET("/:id", h.locationHTTP.GetFavourite)
	favourites.PUT("/:id", h.locationHTTP.UpdateFavourite)
	favourites.DELETE("/:id", h.locationHTTP.DeleteFavourite)
}
