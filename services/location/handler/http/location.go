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
	"github.com/piresc/cabbooking/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// Geocode handles GET /locations/geocode?q=
func (h *LocationHandler) Geocode(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.Geocode")

	q := c.QueryParam("q")
	nrpkg.AddTransactionAttribute(txn, "location.query", q)

	coords, err := h.locationUC.Geocode(c.Request().Context(), q)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", coords)
}

// GetWeather handles GET /locations/weather?q=
func (h *LocationHandler) GetWeather(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.GetWeather")

	q := c.QueryParam("q")
	nrpkg.AddTransactionAttribute(txn, "location.query", q)

	weather, err := h.locationUC.GetWeather(c.Request().Context(), q)
	if err != nil {
		if errors.Is(err, models.ErrUpstream) {
			logger.Error("Weather lookup failed",
				logger.String("location", q),
				logger.ErrorField(err))
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Weather found", weather)
}

// CreateFavourite handles POST /locations/favourites
func (h *LocationHandler) CreateFavourite(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.CreateFavourite")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.FavouriteLocationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	fav, err := h.locationUC.CreateFavourite(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "favourite.id", fav.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Favourite location created", fav)
}

// ListFavourites handles GET /locations/favourites
func (h *LocationHandler) ListFavourites(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.ListFavourites")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	list, err := h.locationUC.ListFavourites(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favourite locations", list)
}

// GetFavourite handles GET /locations/favourites/:id
func (h *LocationHandler) GetFavourite(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.GetFavourite")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	id := c.Param("id")
	nrpkg.AddTransactionAttribute(txn, "favourite.id", id)

	fav, err := h.locationUC.GetFavourite(c.Request().Context(), userID, id)
	if err != nil {
		return hideForeign(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favourite location found", fav)
}

// UpdateFavourite handles PUT /locations/favourites/:id
func (h *LocationHandler) UpdateFavourite(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.UpdateFavourite")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.FavouriteLocationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	id := c.Param("id")
	nrpkg.AddTransactionAttribute(txn, "favourite.id", id)

	fav, err := h.locationUC.UpdateFavourite(c.Request().Context(), userID, id, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return hideForeign(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favourite location updated", fav)
}

// DeleteFavourite handles DELETE /locations/favourites/:id
func (h *LocationHandler) DeleteFavourite(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.DeleteFavourite")

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	id := c.Param("id")
	nrpkg.AddTransactionAttribute(txn, "favourite.id", id)

	if err := h.locationUC.DeleteFavourite(c.Request().Context(), userID, id); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return hideForeign(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// hideForeign answers 404 for favourites owned by someone else
func hideForeign(c echo.Context, err error) error {
	if errors.Is(err, models.ErrForbidden) || errors.Is(err, models.ErrNotFound) {
		return utils.NotFoundResponse(c, "Favourite location not found")
	}
	return utils.DomainErrorResponse(c, err)
}
