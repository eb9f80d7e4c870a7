package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	t.Run("recovers and answers 500", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/payments", nil), rec)

		handler := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
			panic("nil booking")
		})

		assert.NotPanics(t, func() {
			assert.NoError(t, handler(c))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "unexpected error")
	})

	t.Run("passes through without panic", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("requires logger", func(t *testing.T) {
		assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
	})
}
