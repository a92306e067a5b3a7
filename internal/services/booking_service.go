package services

import (
	"fmt"
	"strconv"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"
)

// BookingService creates reservations and freezes their price.
type BookingService struct {
	ListingRepo repositories.ListingRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

// BookingInput is the reservation request payload.
type BookingInput struct {
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

// Create validates the date range, computes nights x nightly rate, and
// persists a pending/unpaid booking. The total is a snapshot of the listing
// price at this moment; later price edits do not reprice the booking.
func (s BookingService) Create(guestID, listingID int64, in BookingInput) (models.Booking, error) {
	if listingID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "listing_id", Msg: "invalid id"}
	}
	if in.Guests < 1 {
		return models.Booking{}, domain.ValidationError{Field: "guests", Msg: "must be at least 1"}
	}

	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkIn", Msg: "expected YYYY-MM-DD", Err: err}
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "expected YYYY-MM-DD", Err: err}
	}

	nights := utils.NightsBetween(checkIn, checkOut)
	if nights == 0 {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "must be after check-in"}
	}

	listing, err := s.ListingRepo.GetByID(listingID)
	if err != nil {
		return models.Booking{}, err
	}
	if in.Guests > listing.Capacity && listing.Capacity > 0 {
		return models.Booking{}, domain.ValidationError{Field: "guests", Msg: fmt.Sprintf("listing sleeps at most %d", listing.Capacity)}
	}

	b := models.Booking{
		ListingID:       listingID,
		GuestID:         guestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		TotalPrice:      int64(nights) * listing.Price,
		SpecialRequests: utils.TrimOrEmpty(in.SpecialRequests),
		Status:          models.BookingPending,
		PaymentStatus:   models.BookingUnpaid,
	}
	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "booking", "create",
		"booking_id="+strconv.FormatInt(id, 10)+" nights="+strconv.Itoa(nights)+" total="+strconv.FormatInt(b.TotalPrice, 10))
	return b, nil
}

// Get fetches a booking.
func (s BookingService) Get(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}
	return s.BookingRepo.GetByID(id)
}

// ListByGuest returns the caller's bookings.
func (s BookingService) ListByGuest(guestID int64) ([]models.Booking, error) {
	return s.BookingRepo.ListByGuest(guestID)
}

// Cancel sets the booking to cancelled after an ownership check. A paid or
// confirmed booking can still be cancelled; there is no refund path, so the
// guard is deliberately absent pending product guidance.
func (s BookingService) Cancel(guestID, bookingID int64) error {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b.GuestID != guestID {
		return domain.ForbiddenError{Resource: "booking", Msg: "you can only cancel your own bookings"}
	}
	if err := s.BookingRepo.Cancel(bookingID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking_id="+strconv.FormatInt(bookingID, 10))
	return nil
}
