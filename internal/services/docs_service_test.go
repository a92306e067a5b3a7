package services

import (
	"strings"
	"testing"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDocsServiceGenerate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 300))
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 100))
	mock.ExpectQuery("FROM payouts WHERE owner_id").WithArgs(int64(9)).
		WillReturnRows(payoutRow(1, 9, 900, models.PayoutCompleted, "POUT1"))

	svc := DocsService{}

	invoice, invName, err := svc.GenerateBookingInvoice(7)
	if err != nil {
		t.Fatalf("GenerateBookingInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName != "INVOICE_7.pdf" {
		t.Fatalf("GenerateBookingInvoice returned empty data or bad name %q", invName)
	}

	statement, stName, err := svc.GeneratePayoutStatement(9)
	if err != nil {
		t.Fatalf("GeneratePayoutStatement returned error: %v", err)
	}
	if len(statement) == 0 || !strings.HasPrefix(stName, "PAYOUTS_9_") {
		t.Fatalf("GeneratePayoutStatement returned empty data or bad name %q", stName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
