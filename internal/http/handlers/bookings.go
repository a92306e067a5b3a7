package handlers

import (
	"net/http"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	Booking services.BookingInput `json:"booking"`
}

// POST /api/listings/:id/bookings
func CreateBooking(c *gin.Context) {
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).Create(middleware.CurrentUserID(c), listingID, req.Booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully! Please complete payment.",
		"booking": booking,
	})
}

// GET /api/bookings
func GetUserBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListByGuest(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:bookingId
func ShowBooking(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}
	booking, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// POST /api/bookings/:bookingId/cancel
func CancelBooking(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}
	if err := bookingService(c).Cancel(middleware.CurrentUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully!",
	})
}

// GET /api/bookings/:bookingId/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}

	// only the guest who booked may download the invoice
	booking, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.GuestID != middleware.CurrentUserID(c) {
		respondError(c, http.StatusForbidden, "forbidden", "you can only view your own bookings", nil)
		return
	}

	data, filename, err := docsService(c).GenerateBookingInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
