package repositories

import (
	"database/sql"
	"errors"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB { return sharedDB(r.DB) }

const bookingColumns = `id,
       COALESCE(listing_id,0),
       COALESCE(guest_id,0),
       check_in,
       check_out,
       COALESCE(guests,1),
       COALESCE(total_price,0),
       COALESCE(special_requests,''),
       COALESCE(status,'pending'),
       COALESCE(payment_status,'unpaid'),
       created_at`

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.ListingID,
		&b.GuestID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Guests,
		&b.TotalPrice,
		&b.SpecialRequests,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
	)
	return b, err
}

// Create inserts a booking in pending/unpaid state.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(listing_id, guest_id, check_in, check_out, guests, total_price, special_requests, status, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ListingID, b.GuestID, b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice,
		b.SpecialRequests, models.BookingPending, models.BookingUnpaid,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// ListByGuest returns the guest's bookings, newest first.
func (r BookingRepository) ListByGuest(guestID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings WHERE guest_id=? ORDER BY id DESC`, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// MarkPaidConfirmed flips payment_status and status in a single statement.
// It accepts an Execer so payment completion can commit it in the same
// transaction as the payment row.
func (r BookingRepository) MarkPaidConfirmed(ex Execer, id int64) error {
	if ex == nil {
		ex = r.db()
	}
	_, err := ex.Exec(`UPDATE bookings SET payment_status=?, status=? WHERE id=?`,
		models.BookingPaid, models.BookingConfirmed, id)
	return err
}

// Cancel sets status=cancelled. There is intentionally no guard against the
// booking being already paid; refunds are not modeled.
func (r BookingRepository) Cancel(id int64) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=?`, models.BookingCancelled, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
