package repositories

import (
	"database/sql"
	"time"

	"wanderstay/internal/domain/models"
)

// OutboxRepository persists payout tasks: payouts that are owed but could not
// be derived (no active bank account, or a derivation error).
type OutboxRepository struct {
	DB *sql.DB
}

func (r OutboxRepository) db() *sql.DB { return sharedDB(r.DB) }

const outboxColumns = `id,
       COALESCE(payment_id,0),
       COALESCE(owner_id,0),
       COALESCE(reason,''),
       COALESCE(detail,''),
       COALESCE(status,'pending'),
       created_at,
       resolved_at`

func scanPayoutTask(row rowScanner) (models.PayoutTask, error) {
	var (
		t        models.PayoutTask
		resolved sql.NullTime
	)
	err := row.Scan(
		&t.ID,
		&t.PaymentID,
		&t.OwnerID,
		&t.Reason,
		&t.Detail,
		&t.Status,
		&t.CreatedAt,
		&resolved,
	)
	if resolved.Valid {
		at := resolved.Time
		t.ResolvedAt = &at
	}
	return t, err
}

// Enqueue records a pending task unless one is already pending for the same
// payment, so repeated failures do not pile up duplicates.
func (r OutboxRepository) Enqueue(paymentID, ownerID int64, reason, detail string) error {
	var existing int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM payout_outbox WHERE payment_id=? AND status=?`,
		paymentID, models.OutboxPending).Scan(&existing)
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	_, err = r.db().Exec(`
		INSERT INTO payout_outbox (payment_id, owner_id, reason, detail, status)
		VALUES (?, ?, ?, ?, ?)`,
		paymentID, ownerID, reason, detail, models.OutboxPending,
	)
	return err
}

// ListPending returns pending tasks, optionally narrowed to one owner
// (ownerID <= 0 means all owners).
func (r OutboxRepository) ListPending(ownerID int64) ([]models.PayoutTask, error) {
	query := `SELECT ` + outboxColumns + ` FROM payout_outbox WHERE status=?`
	args := []any{models.OutboxPending}
	if ownerID > 0 {
		query += ` AND owner_id=?`
		args = append(args, ownerID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PayoutTask
	for rows.Next() {
		t, err := scanPayoutTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Resolve marks a task done once its payout exists.
func (r OutboxRepository) Resolve(id int64, at time.Time) error {
	_, err := r.db().Exec(`UPDATE payout_outbox SET status=?, resolved_at=? WHERE id=?`,
		models.OutboxResolved, at, id)
	return err
}
