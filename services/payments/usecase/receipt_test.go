package usecase

import (
	"bytes"
	"testing"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt_EncodesPlaceNamesForCoreFont(t *testing.T) {
	// Arrange
	gofpdf.SetDefaultCompression(false)
	defer gofpdf.SetDefaultCompression(true)

	booking := premiumNightBooking()
	booking.StartLocation = "Għargħur"
	booking.EndLocation = "Ħamrun"
	payment := &models.Payment{
		ID:        "p-1",
		BookingID: booking.ID,
		UserID:    "u-1",
		BaseFare:  10,
		Total:     10,
		CreatedAt: time.Date(2024, 5, 1, 2, 5, 0, 0, time.UTC),
	}
	tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")

	// Act
	out, err := renderReceipt(payment, booking, time.UTC)

	// Assert
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.NotContains(t, string(out), "Għargħur")
	assert.NotContains(t, string(out), "Ħamrun")
	assert.Contains(t, string(out), tr("From       : Għargħur"))
	assert.Contains(t, string(out), tr("To         : Ħamrun"))
}
