package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking invoices and owner payout statements as PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	ListingRepo repositories.ListingRepository
	PayoutRepo  repositories.PayoutRepository
	RequestID   string
}

// GenerateBookingInvoice renders the invoice for one booking.
func (s DocsService) GenerateBookingInvoice(bookingID int64) ([]byte, string, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	listing, err := s.ListingRepo.GetByID(booking.ListingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))

	nights := utils.NightsBetween(booking.CheckIn, booking.CheckOut)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice No : INV-%d", booking.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Property   : %s", safe(listing.Title, "-")),
		fmt.Sprintf("Location   : %s, %s", safe(listing.Location, "-"), safe(listing.Country, "-")),
		fmt.Sprintf("Check-in   : %s", utils.FormatDate(booking.CheckIn)),
		fmt.Sprintf("Check-out  : %s", utils.FormatDate(booking.CheckOut)),
		fmt.Sprintf("Guests     : %d", booking.Guests),
		fmt.Sprintf("Nights     : %d x %s", nights, utils.FormatINR(listing.Price)),
		fmt.Sprintf("Status     : %s / %s", booking.Status, booking.PaymentStatus),
	}
	for _, ln := range lines {
		pdf.Cell(0, 7, ln)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(booking.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment is confirmed once the booking status reads confirmed/paid.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%d.pdf", booking.ID)
	return buf.Bytes(), filename, nil
}

// GeneratePayoutStatement renders a statement of all payouts for one owner.
func (s DocsService) GeneratePayoutStatement(ownerID int64) ([]byte, string, error) {
	payouts, err := s.PayoutRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_statement", fmt.Sprintf("owner_id=%d items=%d", ownerID, len(payouts)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payout Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYOUT STATEMENT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(48, 7, "Reference", "1", 0, "", false, 0, "")
	pdf.CellFormat(28, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, "Fee", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, "Net", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "Status", "1", 0, "", false, 0, "")
	pdf.CellFormat(32, 7, "Scheduled", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	var totalNet int64
	for _, p := range payouts {
		pdf.CellFormat(48, 7, p.TransactionID, "1", 0, "", false, 0, "")
		pdf.CellFormat(28, 7, utils.FormatINR(p.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 7, utils.FormatINR(p.PlatformFee), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 7, utils.FormatINR(p.NetAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, p.Status, "1", 0, "", false, 0, "")
		pdf.CellFormat(32, 7, utils.FormatDate(p.ScheduledDate), "1", 1, "", false, 0, "")
		if p.Status == "completed" {
			totalNet += p.NetAmount
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total settled: "+utils.FormatINR(totalNet))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("PAYOUTS_%d_%s.pdf", ownerID, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
