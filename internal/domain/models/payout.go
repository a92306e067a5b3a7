package models

import "time"

// Payout statuses.
const (
	PayoutPending    = "pending"
	PayoutProcessing = "processing"
	PayoutCompleted  = "completed"
	PayoutFailed     = "failed"
	PayoutCancelled  = "cancelled"
)

// PayoutMethodBankTransfer is the only disbursement channel in use.
const PayoutMethodBankTransfer = "bank_transfer"

// PlatformFeeRate is the commission retained from every payment.
const PlatformFeeRate = 0.10

// Payout is a disbursement owed to a listing owner, derived from exactly one
// completed payment. NetAmount + PlatformFee always equals Amount.
type Payout struct {
	ID                int64      `json:"id"`
	OwnerID           int64      `json:"owner_id"`
	BookingID         int64      `json:"booking_id"`
	PaymentID         int64      `json:"payment_id"`
	BankAccountID     int64      `json:"bank_account_id"`
	Amount            int64      `json:"amount"`
	PlatformFee       int64      `json:"platform_fee"`
	NetAmount         int64      `json:"net_amount"`
	Status            string     `json:"status"`
	PayoutMethod      string     `json:"payout_method"`
	TransactionID     string     `json:"transaction_id"`
	ScheduledDate     time.Time  `json:"scheduled_date"`
	ProcessedDate     *time.Time `json:"processed_date,omitempty"`
	FailureReason     string     `json:"failure_reason,omitempty"`
	BankTransactionID string     `json:"bank_transaction_id,omitempty"`
	UTRNumber         string     `json:"utr_number,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// PayoutStat is one row of the per-status aggregation for an owner.
type PayoutStat struct {
	Status      string `json:"status"`
	Count       int    `json:"count"`
	TotalAmount int64  `json:"total_amount"`
}

// Outbox task reasons and statuses for payouts that could not be derived.
const (
	OutboxAwaitingBankAccount = "awaiting_bank_account"
	OutboxDerivationError     = "derivation_error"

	OutboxPending  = "pending"
	OutboxResolved = "resolved"
)

// PayoutTask records a payout that is owed but could not be created, so a
// later bank-account change or batch run can settle the debt.
type PayoutTask struct {
	ID         int64      `json:"id"`
	PaymentID  int64      `json:"payment_id"`
	OwnerID    int64      `json:"owner_id"`
	Reason     string     `json:"reason"`
	Detail     string     `json:"detail,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
