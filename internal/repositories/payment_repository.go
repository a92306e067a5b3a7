package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/utils"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB { return sharedDB(r.DB) }

const paymentColumns = `id,
       COALESCE(booking_id,0),
       COALESCE(amount,0),
       COALESCE(currency,'inr'),
       COALESCE(payment_method,''),
       COALESCE(payment_status,'pending'),
       COALESCE(transaction_id,''),
       COALESCE(gateway_intent_id,''),
       COALESCE(card_last4,''),
       COALESCE(card_brand,''),
       COALESCE(upi_id,''),
       COALESCE(bank_name,''),
       COALESCE(guest_name,''),
       COALESCE(guest_email,''),
       COALESCE(listing_title,''),
       created_at,
       updated_at`

func scanPayment(row rowScanner) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.Currency,
		&p.Method,
		&p.Status,
		&p.TransactionID,
		&p.GatewayIntentID,
		&p.CardLast4,
		&p.CardBrand,
		&p.UPIID,
		&p.BankName,
		&p.GuestName,
		&p.GuestEmail,
		&p.ListingTitle,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create inserts a pending payment. The transaction id is assigned here,
// exactly once; no update path ever touches that column again.
func (r PaymentRepository) Create(p models.Payment) (int64, string, error) {
	txid := strings.TrimSpace(p.TransactionID)
	if txid == "" {
		txid = utils.NewTransactionID("TXN")
	}
	currency := p.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	res, err := r.db().Exec(`
		INSERT INTO payments
			(booking_id, amount, currency, payment_method, payment_status, transaction_id,
			 guest_name, guest_email, listing_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.BookingID, p.Amount, currency, p.Method, models.PaymentPending, txid,
		p.GuestName, p.GuestEmail, p.ListingTitle,
	)
	if err != nil {
		return 0, "", err
	}
	id, err := res.LastInsertId()
	return id, txid, err
}

// GetByID fetches one payment.
func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	row := r.db().QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id=? LIMIT 1`, id)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	return p, err
}

// SetGatewayIntent stores the card gateway's intent reference.
func (r PaymentRepository) SetGatewayIntent(id int64, intentID string) error {
	_, err := r.db().Exec(`UPDATE payments SET gateway_intent_id=? WHERE id=?`, intentID, id)
	return err
}

// MarkCompleted transitions pending -> completed and stores the detail branch
// for the chosen method, guarded by the current status so a retried or
// concurrent completion is a no-op. Returns whether this call won the
// transition.
func (r PaymentRepository) MarkCompleted(ex Execer, id int64, method string, d models.PaymentDetails) (bool, error) {
	if ex == nil {
		ex = r.db()
	}

	var (
		cardLast4, cardBrand, upiID, bankName string
	)
	switch method {
	case models.MethodCard:
		cardLast4, cardBrand = d.Last4, d.Brand
	case models.MethodUPI:
		upiID = d.UPIID
	case models.MethodNetbanking:
		bankName = d.BankName
	}

	res, err := ex.Exec(`
		UPDATE payments
		SET payment_status=?, card_last4=?, card_brand=?, upi_id=?, bank_name=?
		WHERE id=? AND payment_status=?`,
		models.PaymentCompleted, cardLast4, cardBrand, upiID, bankName,
		id, models.PaymentPending,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// History returns recent payments, newest first.
func (r PaymentRepository) History(limit int) ([]models.Payment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db().Query(`SELECT `+paymentColumns+` FROM payments ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
