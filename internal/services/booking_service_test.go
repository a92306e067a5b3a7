package services

import (
	"testing"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)
	return BookingService{}, mock, func() { db.Close() }
}

func TestCreateBookingFreezesNightlyTotal(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 100))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))

	b, err := svc.Create(2, 3, BookingInput{
		CheckIn:  "2024-01-01",
		CheckOut: "2024-01-04",
		Guests:   2,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if b.TotalPrice != 300 {
		t.Fatalf("3 nights at 100 should total 300, got %d", b.TotalPrice)
	}
	if b.ID != 7 {
		t.Fatalf("unexpected booking id %d", b.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRejectsBadRanges(t *testing.T) {
	svc, _, done := newBookingService(t)
	defer done()

	cases := []BookingInput{
		{CheckIn: "2024-01-04", CheckOut: "2024-01-01", Guests: 2}, // inverted
		{CheckIn: "2024-01-01", CheckOut: "2024-01-01", Guests: 2}, // zero nights
		{CheckIn: "not-a-date", CheckOut: "2024-01-04", Guests: 2},
		{CheckIn: "2024-01-01", CheckOut: "2024-01-04", Guests: 0},
	}
	for _, in := range cases {
		if _, err := svc.Create(2, 3, in); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
}

func TestCreateBookingEnforcesCapacity(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// the listing sleeps 4
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 100))

	_, err := svc.Create(2, 3, BookingInput{
		CheckIn:  "2024-01-01",
		CheckOut: "2024-01-04",
		Guests:   6,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for over-capacity party, got %v", err)
	}
}

func TestCancelBookingChecksOwnership(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 300))

	if err := svc.Cancel(5, 7); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error for another guest's booking, got %v", err)
	}

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 300))
	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Cancel(2, 7); err != nil {
		t.Fatalf("cancel error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
