package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/bookings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(constants.ContextKeyUserID, userID)
	}
	return c, rec
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	h := NewBookingHandler(uc)

	req := models.CreateBookingRequest{StartLocation: "A", EndLocation: "B", Passengers: 2, CabType: "Economic"}
	uc.EXPECT().CreateBooking(gomock.Any(), "u-1", req).Return("b-1", nil)

	c, rec := newContext(http.MethodPost, "/bookings",
		`{"startLocation":"A","endLocation":"B","passengers":2,"cabType":"Economic"}`, "u-1")

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    models.BookingCreated `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "b-1", body.Data.ID)
}

func TestBookingHandler_CreateBooking_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().CreateBooking(gomock.Any(), "u-1", gomock.Any()).Return("", models.ErrValidation)

	c, rec := newContext(http.MethodPost, "/bookings", `{"cabType":"Limo"}`, "u-1")

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewBookingHandler(mocks.NewMockBookingUC(ctrl))

	c, rec := newContext(http.MethodGet, "/bookings/current", "", "")

	require.NoError(t, h.GetCurrent(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_GetBooking_ForeignIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "u-2", "b-1").Return(nil, models.ErrForbidden)

	c, rec := newContext(http.MethodGet, "/bookings/b-1", "", "u-2")
	c.SetParamNames("id")
	c.SetParamValues("b-1")

	require.NoError(t, h.GetBooking(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandler_MarkPaid(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(uc *mocks.MockBookingUC)
		wantStatus int
	}{
		{
			name: "first transition",
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().MarkPaid(gomock.Any(), "u-1", "b-1").Return(true, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "already paid",
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().MarkPaid(gomock.Any(), "u-1", "b-1").Return(false, nil)
				uc.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(&models.Booking{ID: "b-1", OwnerID: "u-1", Paid: true}, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing booking",
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().MarkPaid(gomock.Any(), "u-1", "b-1").Return(false, nil)
				uc.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(nil, models.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockBookingUC(ctrl)
			tt.setup(uc)
			h := NewBookingHandler(uc)

			c, rec := newContext(http.MethodPut, "/bookings/b-1/mark-paid", "", "u-1")
			c.SetParamNames("id")
			c.SetParamValues("b-1")

			require.NoError(t, h.MarkPaid(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
