package models

import "time"

// Booking lifecycle statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking payment statuses.
const (
	BookingUnpaid = "unpaid"
	BookingPaid   = "paid"
)

// Booking is a guest's reservation against a listing for a date range.
// TotalPrice is frozen at creation from the listing's nightly price.
type Booking struct {
	ID              int64     `json:"id"`
	ListingID       int64     `json:"listing_id"`
	GuestID         int64     `json:"guest_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPrice      int64     `json:"total_price"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}
