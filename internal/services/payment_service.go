package services

import (
	"database/sql"
	"strconv"
	"time"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/gateway"
	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"
)

// PaymentService drives a payment from pending to completed and hands the
// result to payout derivation. Completion and the booking update commit in
// one transaction; payout derivation runs after the commit and its failure
// never reaches the paying guest.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	ListingRepo repositories.ListingRepository
	PayoutSvc   PayoutService
	Gateway     gateway.Client
	DB          *sql.DB
	UPIDelay    time.Duration
	RequestID   string
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// IntentResult is returned from CreateIntent. ClientSecret is set only for
// card payments.
type IntentResult struct {
	PaymentID     int64  `json:"paymentId"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	ClientSecret  string `json:"clientSecret,omitempty"`
}

// CreateIntent records a pending payment for the booking with the amount
// frozen from the booking total. Card payments additionally register an
// intent with the gateway; the payment row survives a gateway failure so the
// attempt stays auditable.
func (s PaymentService) CreateIntent(guest models.User, bookingID int64, method string) (IntentResult, error) {
	if bookingID <= 0 {
		return IntentResult{}, domain.ValidationError{Field: "bookingId", Msg: "booking ID is required"}
	}
	if !models.ValidPaymentMethod(method) {
		return IntentResult{}, domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return IntentResult{}, err
	}

	listingTitle := ""
	if listing, err := s.ListingRepo.GetByID(booking.ListingID); err == nil {
		listingTitle = listing.Title
	}

	id, txid, err := s.PaymentRepo.Create(models.Payment{
		BookingID:    bookingID,
		Amount:       booking.TotalPrice,
		Currency:     models.DefaultCurrency,
		Method:       method,
		GuestName:    guest.Username,
		GuestEmail:   guest.Email,
		ListingTitle: listingTitle,
	})
	if err != nil {
		return IntentResult{}, err
	}
	utils.LogEvent(s.RequestID, "payment", "create_intent",
		"payment_id="+strconv.FormatInt(id, 10)+" booking_id="+strconv.FormatInt(bookingID, 10)+" method="+method)

	out := IntentResult{PaymentID: id, Amount: booking.TotalPrice, TransactionID: txid}
	if method != models.MethodCard {
		return out, nil
	}

	intent, err := s.Gateway.CreateIntent(booking.TotalPrice, models.DefaultCurrency, txid)
	if err != nil {
		// the pending payment row is kept; only the gateway handshake failed
		return IntentResult{}, domain.InternalError{Msg: "failed to create payment intent", Err: err}
	}
	if err := s.PaymentRepo.SetGatewayIntent(id, intent.ID); err != nil {
		return IntentResult{}, err
	}
	out.ClientSecret = intent.ClientSecret
	return out, nil
}

// Process completes a payment: stores the detail branch for the chosen
// method, flips the payment and its booking in one transaction, and then
// derives the payout. A payment that is already completed makes the call a
// safe no-op returning the original transaction id.
func (s PaymentService) Process(paymentID int64, method string, details models.PaymentDetails) (string, error) {
	if paymentID <= 0 {
		return "", domain.ValidationError{Field: "paymentId", Msg: "payment ID is required"}
	}

	payment, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return "", err
	}

	won, err := s.complete(payment, method, details)
	if err != nil {
		return "", err
	}
	if !won {
		// retried completion; nothing changed, nothing re-derived
		return payment.TransactionID, nil
	}

	s.derivePayout(paymentID)
	return payment.TransactionID, nil
}

// ProcessUPI is the dedicated UPI path: it rejects an already-completed
// payment outright and simulates the provider round trip before completing.
func (s PaymentService) ProcessUPI(paymentID int64, upiID string) (string, error) {
	if paymentID <= 0 {
		return "", domain.ValidationError{Field: "paymentId", Msg: "payment ID is required"}
	}
	if utils.TrimOrEmpty(upiID) == "" {
		return "", domain.ValidationError{Field: "upiId", Msg: "UPI ID is required"}
	}

	payment, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return "", err
	}
	if payment.Status == models.PaymentCompleted {
		return "", domain.ConflictError{Resource: "payment", Msg: "already completed"}
	}

	if s.UPIDelay > 0 {
		time.Sleep(s.UPIDelay)
	}

	won, err := s.complete(payment, models.MethodUPI, models.PaymentDetails{UPIID: upiID})
	if err != nil {
		return "", err
	}
	if !won {
		return "", domain.ConflictError{Resource: "payment", Msg: "already completed"}
	}

	s.derivePayout(paymentID)
	return payment.TransactionID, nil
}

// complete commits the status flip and the booking update atomically.
func (s PaymentService) complete(payment models.Payment, method string, details models.PaymentDetails) (bool, error) {
	tx, err := s.db().Begin()
	if err != nil {
		return false, err
	}

	won, err := s.PaymentRepo.MarkCompleted(tx, payment.ID, method, details)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if !won {
		_ = tx.Rollback()
		return false, nil
	}

	if err := s.BookingRepo.MarkPaidConfirmed(tx, payment.BookingID); err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// derivePayout swallows payout-side faults: the guest's payment already
// succeeded, and a failed derivation lands in the outbox for later retry.
func (s PaymentService) derivePayout(paymentID int64) {
	svc := s.PayoutSvc
	svc.RequestID = s.RequestID
	if _, err := svc.Derive(paymentID); err != nil {
		utils.LogEvent(s.RequestID, "payment", "payout_derivation",
			"payment_id="+strconv.FormatInt(paymentID, 10)+" failed: "+err.Error())
	}
}

// StatusResult is the read-only projection for the status endpoint.
type StatusResult struct {
	PaymentStatus string    `json:"paymentStatus"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transactionId"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Status projects one payment's current state.
func (s PaymentService) Status(paymentID int64) (StatusResult, error) {
	if paymentID <= 0 {
		return StatusResult{}, domain.ValidationError{Field: "paymentId", Msg: "invalid id"}
	}
	p, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return StatusResult{}, err
	}
	return StatusResult{
		PaymentStatus: p.Status,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		PaymentMethod: p.Method,
		CreatedAt:     p.CreatedAt,
	}, nil
}

// History lists recent payments.
func (s PaymentService) History(limit int) ([]models.Payment, error) {
	return s.PaymentRepo.History(limit)
}
