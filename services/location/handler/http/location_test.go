package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.ContextKeyUserID, "u-1")
	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestLocationHandler_Geocode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "resolved", wantStatus: http.StatusOK},
		{name: "blank query", err: models.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "unknown place", err: models.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "provider down", err: models.ErrUpstream, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockLocationUC(ctrl)
			h := NewLocationHandler(uc)

			uc.EXPECT().Geocode(gomock.Any(), "valletta").
				Return(models.Coordinates{Latitude: 35.9, Longitude: 14.51}, tt.err)

			c, rec := newContext(http.MethodGet, "/locations/geocode?q=valletta", "")
			require.NoError(t, h.Geocode(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"lat":35.9`)
			}
		})
	}
}

func TestLocationHandler_GetWeather(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().GetWeather(gomock.Any(), "malta").
		Return(&models.Weather{Description: "Sunny", AvgTempC: 21.4, AvgHumidity: 68}, nil)

	c, rec := newContext(http.MethodGet, "/locations/weather?q=malta", "")
	require.NoError(t, h.GetWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weatherDesc":"Sunny"`)
}

func TestLocationHandler_CreateFavourite(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().CreateFavourite(gomock.Any(), "u-1", models.FavouriteLocationRequest{Name: "Home", Address: "Valletta"}).
		Return(&models.FavouriteLocation{ID: "f-1", UserID: "u-1", Name: "Home"}, nil)

	c, rec := newContext(http.MethodPost, "/locations/favourites", `{"name":"Home","address":"Valletta"}`)
	require.NoError(t, h.CreateFavourite(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"f-1"`)
}

func TestLocationHandler_ForeignFavouriteLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().GetFavourite(gomock.Any(), "u-1", "f-2").Return(nil, models.ErrForbidden)
	uc.EXPECT().DeleteFavourite(gomock.Any(), "u-1", "f-2").Return(models.ErrForbidden)

	c, rec := newContext(http.MethodGet, "/", "")
	require.NoError(t, h.GetFavourite(withID(c, "f-2")))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newContext(http.MethodDelete, "/", "")
	require.NoError(t, h.DeleteFavourite(withID(c, "f-2")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocationHandler_UpdateFavourite(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "name taken", err: models.ErrConflict, wantStatus: http.StatusConflict},
		{name: "blank name", err: models.ErrValidation, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockLocationUC(ctrl)
			h := NewLocationHandler(uc)

			var fav *models.FavouriteLocation
			if tt.err == nil {
				fav = &models.FavouriteLocation{ID: "f-1", Name: "Work"}
			}
			uc.EXPECT().UpdateFavourite(gomock.Any(), "u-1", "f-1", models.FavouriteLocationRequest{Name: "Work", Address: "Sliema"}).
				Return(fav, tt.err)

			c, rec := newContext(http.MethodPut, "/", `{"name":"Work","address":"Sliema"}`)
			require.NoError(t, h.UpdateFavourite(withID(c, "f-1")))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLocationHandler_ListFavourites(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().ListFavourites(gomock.Any(), "u-1").Return([]*models.FavouriteLocation{}, nil)

	c, rec := newContext(http.MethodGet, "/", "")
	require.NoError(t, h.ListFavourites(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
