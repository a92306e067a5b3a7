package services

import (
	"fmt"
	"strconv"
	"time"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"
)

// payoutLeadTime is how far ahead a freshly derived payout is scheduled.
const payoutLeadTime = 24 * time.Hour

// PayoutService derives payouts from completed payments and settles due ones
// in batches. Derivation that cannot produce a payout records an outbox task
// instead of dropping the debt.
type PayoutService struct {
	PaymentRepo     repositories.PaymentRepository
	BookingRepo     repositories.BookingRepository
	ListingRepo     repositories.ListingRepository
	BankAccountRepo repositories.BankAccountRepository
	PayoutRepo      repositories.PayoutRepository
	OutboxRepo      repositories.OutboxRepository
	TransferDelay   time.Duration
	RequestID       string
}

// Derive creates the payout owed for one completed payment. It returns
// (nil, nil) when no payout is due right now: either one already exists for
// this payment, or the owner has no active bank account, in which case an
// outbox task keeps the debt on record.
func (s PayoutService) Derive(paymentID int64) (*models.Payout, error) {
	payment, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentCompleted {
		return nil, domain.ValidationError{Field: "payment", Msg: "not completed"}
	}

	if exists, err := s.PayoutRepo.ExistsForPayment(paymentID); err != nil {
		return nil, err
	} else if exists {
		return nil, nil
	}

	booking, err := s.BookingRepo.GetByID(payment.BookingID)
	if err != nil {
		return nil, err
	}
	listing, err := s.ListingRepo.GetByID(booking.ListingID)
	if err != nil {
		return nil, err
	}

	account, err := s.BankAccountRepo.FindActiveByOwner(listing.OwnerID)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "payout", "derive",
				"no active bank account for owner_id="+strconv.FormatInt(listing.OwnerID, 10))
			if err := s.OutboxRepo.Enqueue(paymentID, listing.OwnerID,
				models.OutboxAwaitingBankAccount, "owner has no active bank account"); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, err
	}

	fee := utils.PlatformFee(payment.Amount, models.PlatformFeeRate)
	payout := models.Payout{
		OwnerID:       listing.OwnerID,
		BookingID:     booking.ID,
		PaymentID:     payment.ID,
		BankAccountID: account.ID,
		Amount:        payment.Amount,
		PlatformFee:   fee,
		NetAmount:     payment.Amount - fee,
		Status:        models.PayoutPending,
		PayoutMethod:  models.PayoutMethodBankTransfer,
		ScheduledDate: time.Now().Add(payoutLeadTime),
	}

	id, txid, err := s.PayoutRepo.Create(payout)
	if err != nil {
		// keep the debt on record before surfacing the error
		_ = s.OutboxRepo.Enqueue(paymentID, listing.OwnerID, models.OutboxDerivationError, err.Error())
		return nil, err
	}
	payout.ID = id
	payout.TransactionID = txid

	utils.LogEvent(s.RequestID, "payout", "derive",
		"payout "+txid+" created, net="+strconv.FormatInt(payout.NetAmount, 10))
	return &payout, nil
}

// ItemResult is the per-payout outcome of a batch run.
type ItemResult struct {
	PayoutID          int64  `json:"payoutId"`
	TransactionID     string `json:"transactionId"`
	Status            string `json:"status"`
	BankTransactionID string `json:"bankTransactionId,omitempty"`
	Error             string `json:"error,omitempty"`
}

// BatchResult summarizes one ProcessPending run.
type BatchResult struct {
	Message string       `json:"message"`
	Results []ItemResult `json:"results"`
}

// ProcessPending settles every payout whose scheduled date has passed. Each
// item is claimed with a conditional pending->processing update first, so a
// second runner racing over the same rows skips instead of double-paying.
// One item failing is recorded and the batch moves on.
func (s PayoutService) ProcessPending() (BatchResult, error) {
	// settle owed-but-underived payouts first in case a bank account
	// appeared since the payment completed
	if _, err := s.RetryOutbox(0); err != nil {
		utils.LogEvent(s.RequestID, "payout", "process", "outbox retry failed: "+err.Error())
	}

	due, err := s.PayoutRepo.ListDue(time.Now())
	if err != nil {
		return BatchResult{}, err
	}

	results := make([]ItemResult, 0, len(due))
	settled := 0
	for _, p := range due {
		claimed, err := s.PayoutRepo.Claim(p.ID)
		if err != nil {
			results = append(results, ItemResult{PayoutID: p.ID, TransactionID: p.TransactionID, Status: models.PayoutFailed, Error: err.Error()})
			continue
		}
		if !claimed {
			// another runner holds this one
			results = append(results, ItemResult{PayoutID: p.ID, TransactionID: p.TransactionID, Status: "skipped"})
			continue
		}

		if s.TransferDelay > 0 {
			time.Sleep(s.TransferDelay)
		}

		bankTxn := utils.NewTransactionID("BANK")
		utr := utils.NewTransactionID("UTR")
		if err := s.PayoutRepo.MarkCompleted(p.ID, bankTxn, utr, time.Now()); err != nil {
			if ferr := s.PayoutRepo.MarkFailed(p.ID, err.Error()); ferr != nil {
				utils.LogEvent(s.RequestID, "payout", "process", "mark failed error: "+ferr.Error())
			}
			results = append(results, ItemResult{PayoutID: p.ID, TransactionID: p.TransactionID, Status: models.PayoutFailed, Error: err.Error()})
			continue
		}

		utils.LogEvent(s.RequestID, "payout", "process",
			"payout "+p.TransactionID+" completed, net="+strconv.FormatInt(p.NetAmount, 10))
		results = append(results, ItemResult{
			PayoutID:          p.ID,
			TransactionID:     p.TransactionID,
			Status:            models.PayoutCompleted,
			BankTransactionID: bankTxn,
		})
		settled++
	}

	return BatchResult{
		Message: fmt.Sprintf("Processed %d payouts", settled),
		Results: results,
	}, nil
}

// RetryOutbox re-attempts derivation for pending outbox tasks, resolving the
// ones that now produce a payout. ownerID <= 0 retries across all owners.
func (s PayoutService) RetryOutbox(ownerID int64) (int, error) {
	tasks, err := s.OutboxRepo.ListPending(ownerID)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, t := range tasks {
		payout, err := s.Derive(t.PaymentID)
		if err != nil {
			utils.LogEvent(s.RequestID, "payout", "outbox_retry",
				"task_id="+strconv.FormatInt(t.ID, 10)+" failed: "+err.Error())
			continue
		}
		done := payout != nil
		if !done {
			// Derive is a no-op when the payout already exists; resolve then too
			if exists, err := s.PayoutRepo.ExistsForPayment(t.PaymentID); err == nil && exists {
				done = true
			}
		}
		if done {
			if err := s.OutboxRepo.Resolve(t.ID, time.Now()); err != nil {
				return resolved, err
			}
			resolved++
		}
	}
	return resolved, nil
}

// StatsResult is the owner's payout aggregation.
type StatsResult struct {
	Stats        []models.PayoutStat `json:"stats"`
	TotalPayouts int                 `json:"totalPayouts"`
	TotalAmount  int64               `json:"totalAmount"`
}

// StatsForOwner groups the owner's payouts by status and totals completed
// net amounts.
func (s PayoutService) StatsForOwner(ownerID int64) (StatsResult, error) {
	stats, err := s.PayoutRepo.StatsByOwner(ownerID)
	if err != nil {
		return StatsResult{}, err
	}
	count, total, err := s.PayoutRepo.TotalsByOwner(ownerID)
	if err != nil {
		return StatsResult{}, err
	}
	if stats == nil {
		stats = []models.PayoutStat{}
	}
	return StatsResult{Stats: stats, TotalPayouts: count, TotalAmount: total}, nil
}

// ListForOwner returns the owner's payouts.
func (s PayoutService) ListForOwner(ownerID int64) ([]models.Payout, error) {
	return s.PayoutRepo.ListByOwner(ownerID)
}

// Get returns one payout after an ownership check.
func (s PayoutService) Get(ownerID, payoutID int64) (models.Payout, error) {
	p, err := s.PayoutRepo.GetByID(payoutID)
	if err != nil {
		return models.Payout{}, err
	}
	if p.OwnerID != ownerID {
		return models.Payout{}, domain.ForbiddenError{Resource: "payout", Msg: "you can only view your own payouts"}
	}
	return p, nil
}
