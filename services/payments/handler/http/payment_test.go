package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.ContextKeyUserID, "u-1")
	return c, rec
}

func TestPaymentHandler_Pay(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "paid", wantStatus: http.StatusOK},
		{name: "missing booking", err: models.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "already paid", err: models.ErrConflict, wantStatus: http.StatusConflict},
		{name: "fare api down", err: models.ErrUpstream, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockPaymentUC(ctrl)
			h := NewPaymentHandler(uc)

			var dto *models.PaymentDTO
			if tt.err == nil {
				dto = &models.PaymentDTO{ID: "p-1", BookingID: "b-1", TotalPrice: 28.8, CreatedAt: time.Now()}
			}
			uc.EXPECT().Pay(gomock.Any(), "u-1", "b-1").Return(dto, tt.err)

			c, rec := newContext(http.MethodPost, `{"bookingId":"b-1"}`)
			require.NoError(t, h.Pay(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"totalPrice":28.8`)
			}
		})
	}
}

func TestPaymentHandler_PayRequiresBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockPaymentUC(ctrl))

	c, rec := newContext(http.MethodPost, `{"bookingId":" "}`)
	require.NoError(t, h.Pay(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_GetPaymentsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().GetPayments(gomock.Any(), "u-1", "u-2").Return(nil, models.ErrForbidden)

	c, rec := newContext(http.MethodGet, "")
	c.SetParamNames("userId")
	c.SetParamValues("u-2")
	require.NoError(t, h.GetPayments(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentHandler_GetReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().GetReceipt(gomock.Any(), "u-1", "u-1", "p-1").Return(&models.Receipt{
		Filename:    "receipt-p-1.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.3"),
	}, nil)

	c, rec := newContext(http.MethodGet, "")
	c.SetParamNames("userId", "paymentId")
	c.SetParamValues("u-1", "p-1")
	require.NoError(t, h.GetReceipt(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "receipt-p-1.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestPaymentHandler_GetReceiptNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().GetReceipt(gomock.Any(), "u-1", "u-1", "p-x").Return(nil, models.ErrNotFound)

	c, rec := newContext(http.MethodGet, "")
	c.SetParamNames("userId", "paymentId")
	c.SetParamValues("u-1", "p-x")
	require.NoError(t, h.GetReceipt(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
