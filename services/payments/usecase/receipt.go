package usecase

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

func renderReceipt(p *models.Payment, b *models.Booking, loc *time.Location) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()
	// core fonts are cp1252; runes outside it are substituted
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("CAB RECEIPT"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Payment    : " + p.ID,
		"Booking    : " + p.BookingID,
		"Paid at    : " + p.CreatedAt.In(loc).Format("2006-01-02 15:04"),
		"",
		"From       : " + b.StartLocation,
		"To         : " + b.EndLocation,
		"Pickup     : " + b.ScheduledAt.In(loc).Format("2006-01-02 15:04"),
		fmt.Sprintf("Passengers : %d", b.PassengerCount),
		"Cab        : " + string(b.CabClass),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Fare breakdown"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Base fare", fmt.Sprintf("%.2f", p.BaseFare)},
		{"Cab class", fmt.Sprintf("x %.2f", p.CabMultiplier)},
		{"Time of day", fmt.Sprintf("x %.2f", p.TimeOfDayMultiplier)},
		{"Passengers", fmt.Sprintf("x %.2f", p.PassengerMultiplier)},
		{"Discount", fmt.Sprintf("x %.2f", p.DiscountMultiplier)},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(row[1]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, tr("Total"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, tr(fmt.Sprintf("%.2f", p.Total)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
