package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/utils"
)

type PayoutRepository struct {
	DB *sql.DB
}

func (r PayoutRepository) db() *sql.DB { return sharedDB(r.DB) }

const payoutColumns = `id,
       COALESCE(owner_id,0),
       COALESCE(booking_id,0),
       COALESCE(payment_id,0),
       COALESCE(bank_account_id,0),
       COALESCE(amount,0),
       COALESCE(platform_fee,0),
       COALESCE(net_amount,0),
       COALESCE(status,'pending'),
       COALESCE(payout_method,'bank_transfer'),
       COALESCE(transaction_id,''),
       scheduled_date,
       processed_date,
       COALESCE(failure_reason,''),
       COALESCE(bank_transaction_id,''),
       COALESCE(utr_number,''),
       created_at`

func scanPayout(row rowScanner) (models.Payout, error) {
	var (
		p         models.Payout
		processed sql.NullTime
	)
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.BookingID,
		&p.PaymentID,
		&p.BankAccountID,
		&p.Amount,
		&p.PlatformFee,
		&p.NetAmount,
		&p.Status,
		&p.PayoutMethod,
		&p.TransactionID,
		&p.ScheduledDate,
		&processed,
		&p.FailureReason,
		&p.BankTransactionID,
		&p.UTRNumber,
		&p.CreatedAt,
	)
	if processed.Valid {
		t := processed.Time
		p.ProcessedDate = &t
	}
	return p, err
}

// Create inserts a pending payout. The transaction id is assigned here,
// exactly once. The unique payment_id column makes a second derivation for
// the same payment fail rather than double-credit.
func (r PayoutRepository) Create(p models.Payout) (int64, string, error) {
	txid := strings.TrimSpace(p.TransactionID)
	if txid == "" {
		txid = utils.NewTransactionID("POUT")
	}
	method := p.PayoutMethod
	if method == "" {
		method = models.PayoutMethodBankTransfer
	}
	res, err := r.db().Exec(`
		INSERT INTO payouts
			(owner_id, booking_id, payment_id, bank_account_id, amount, platform_fee,
			 net_amount, status, payout_method, transaction_id, scheduled_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.OwnerID, p.BookingID, p.PaymentID, p.BankAccountID, p.Amount, p.PlatformFee,
		p.NetAmount, models.PayoutPending, method, txid, p.ScheduledDate,
	)
	if err != nil {
		return 0, "", err
	}
	id, err := res.LastInsertId()
	return id, txid, err
}

// GetByID fetches one payout.
func (r PayoutRepository) GetByID(id int64) (models.Payout, error) {
	row := r.db().QueryRow(`SELECT `+payoutColumns+` FROM payouts WHERE id=? LIMIT 1`, id)
	p, err := scanPayout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payout{}, domain.NotFoundError{Resource: "payout"}
	}
	return p, err
}

// ExistsForPayment reports whether a payout was already derived for the payment.
func (r PayoutRepository) ExistsForPayment(paymentID int64) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM payouts WHERE payment_id=?`, paymentID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByOwner returns the owner's payouts, newest first.
func (r PayoutRepository) ListByOwner(ownerID int64) ([]models.Payout, error) {
	rows, err := r.db().Query(`SELECT `+payoutColumns+` FROM payouts WHERE owner_id=? ORDER BY id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayouts(rows)
}

// ListDue returns pending payouts whose scheduled date has passed.
func (r PayoutRepository) ListDue(now time.Time) ([]models.Payout, error) {
	rows, err := r.db().Query(`
		SELECT `+payoutColumns+`
		FROM payouts
		WHERE status=? AND scheduled_date <= ?
		ORDER BY scheduled_date ASC`,
		models.PayoutPending, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayouts(rows)
}

func collectPayouts(rows *sql.Rows) ([]models.Payout, error) {
	var out []models.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Claim transitions pending -> processing for one payout. Two concurrent
// batch runners racing on the same row leave exactly one holding the claim;
// the other sees false and skips it.
func (r PayoutRepository) Claim(id int64) (bool, error) {
	res, err := r.db().Exec(`UPDATE payouts SET status=? WHERE id=? AND status=?`,
		models.PayoutProcessing, id, models.PayoutPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkCompleted finalizes a claimed payout with its bank references.
func (r PayoutRepository) MarkCompleted(id int64, bankTxnID, utr string, processedAt time.Time) error {
	_, err := r.db().Exec(`
		UPDATE payouts
		SET status=?, processed_date=?, bank_transaction_id=?, utr_number=?, failure_reason=''
		WHERE id=?`,
		models.PayoutCompleted, processedAt, bankTxnID, utr, id,
	)
	return err
}

// MarkFailed records a per-item failure without aborting the batch.
func (r PayoutRepository) MarkFailed(id int64, reason string) error {
	_, err := r.db().Exec(`UPDATE payouts SET status=?, failure_reason=? WHERE id=?`,
		models.PayoutFailed, reason, id)
	return err
}

// StatsByOwner aggregates payouts per status for one owner.
func (r PayoutRepository) StatsByOwner(ownerID int64) ([]models.PayoutStat, error) {
	rows, err := r.db().Query(`
		SELECT status, COUNT(*), COALESCE(SUM(net_amount),0)
		FROM payouts
		WHERE owner_id=?
		GROUP BY status`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PayoutStat
	for rows.Next() {
		var s models.PayoutStat
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TotalsByOwner returns the owner's payout count and completed net total.
func (r PayoutRepository) TotalsByOwner(ownerID int64) (int, int64, error) {
	var (
		count int
		total int64
	)
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM payouts WHERE owner_id=?`, ownerID).Scan(&count); err != nil {
		return 0, 0, err
	}
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(net_amount),0) FROM payouts WHERE owner_id=? AND status=?`,
		ownerID, models.PayoutCompleted,
	).Scan(&total)
	return count, total, err
}
