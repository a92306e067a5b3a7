package models

import "time"

// Payment methods accepted at checkout.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetbanking = "netbanking"
	MethodWallet     = "wallet"
)

// Payment statuses. Processing/failed/refunded are reserved for gateway
// webhooks; the in-process flow only moves pending -> completed.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
	PaymentRefunded   = "refunded"
)

// DefaultCurrency for all charges.
const DefaultCurrency = "inr"

// Payment is a charge attempt against one booking. Amount is copied from the
// booking at creation and never re-checked against the listing price.
// TransactionID is assigned at first insert and never rewritten.
type Payment struct {
	ID              int64     `json:"id"`
	BookingID       int64     `json:"booking_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Method          string    `json:"payment_method"`
	Status          string    `json:"payment_status"`
	TransactionID   string    `json:"transaction_id"`
	GatewayIntentID string    `json:"gateway_intent_id,omitempty"`
	CardLast4       string    `json:"card_last4,omitempty"`
	CardBrand       string    `json:"card_brand,omitempty"`
	UPIID           string    `json:"upi_id,omitempty"`
	BankName        string    `json:"bank_name,omitempty"`
	GuestName       string    `json:"guest_name,omitempty"`
	GuestEmail      string    `json:"guest_email,omitempty"`
	ListingTitle    string    `json:"listing_title,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ValidPaymentMethod reports whether the method is accepted.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCard, MethodUPI, MethodNetbanking, MethodWallet:
		return true
	}
	return false
}

// PaymentDetails carries the method-specific fields from the client. Only
// the branch matching the chosen method is persisted.
type PaymentDetails struct {
	Last4    string `json:"last4"`
	Brand    string `json:"brand"`
	UPIID    string `json:"upiId"`
	BankName string `json:"bankName"`
}
