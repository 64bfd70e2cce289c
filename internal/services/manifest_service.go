package services

import (
	"bytes"
	"fmt"
	"strings"

	"busboard/internal/domain/models"
	"busboard/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ManifestService renders the optimized boarding order as a printable PDF
// for the driver/conductor clipboard.
type ManifestService struct {
	RequestID string
}

func (s ManifestService) GenerateManifest(date string, planned []models.PlannedBooking, est TimeEstimate) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "manifest", "generate", fmt.Sprintf("date=%s bookings=%d", date, len(planned)))
	return buildManifestPDF(date, planned, est)
}

func buildManifestPDF(date string, planned []models.PlannedBooking, est TimeEstimate) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boarding Manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOARDING MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Travel date : "+date)
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Bookings    : %d", len(planned)))
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, "Booking ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(32, 8, "Mobile", "1", 0, "L", false, 0, "")
	pdf.CellFormat(58, 8, "Seats", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range planned {
		seats := make([]string, 0, len(b.Seats))
		for _, seat := range b.SortedSeats() {
			seats = append(seats, string(seat))
		}
		status := "waiting"
		if b.BoardingStatus == models.StatusBoarded {
			status = "boarded"
		}
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", b.SequenceNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(48, 7, b.BookingID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 7, b.MobileNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(58, 7, strings.Join(seats, ", "), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, status, "1", 1, "C", false, 0, "")
	}

	if len(planned) > 0 {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf(
			"Back-to-front boarding saves an estimated %d time-units (%d%%) over unordered boarding.",
			est.TimeSavings, est.SavingsPercent,
		), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s.pdf", strings.ReplaceAll(date, "-", ""))
	return buf.Bytes(), filename, nil
}
