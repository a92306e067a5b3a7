package services

import (
	"strings"
	"testing"
	"time"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPayoutService(t *testing.T) (PayoutService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)
	return PayoutService{}, mock, func() { db.Close() }
}

func TestDeriveComputesPlatformFee(t *testing.T) {
	svc, mock, done := newPayoutService(t)
	defer done()

	mock.ExpectQuery("FROM payments WHERE id").WithArgs(int64(10)).
		WillReturnRows(paymentRow(10, 7, 1000, models.MethodCard, models.PaymentCompleted, "TXN1A"))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payouts").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 1000))
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 500))
	mock.ExpectQuery("FROM bank_accounts WHERE owner_id=. AND is_active=1").WithArgs(int64(9)).
		WillReturnRows(bankAccountRow(4, 9, true))
	mock.ExpectExec("INSERT INTO payouts").
		WillReturnResult(sqlmock.NewResult(11, 1))

	payout, err := svc.Derive(10)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	if payout == nil {
		t.Fatalf("expected a payout")
	}
	if payout.PlatformFee != 100 || payout.NetAmount != 900 {
		t.Fatalf("fee split wrong: fee=%d net=%d", payout.PlatformFee, payout.NetAmount)
	}
	if payout.OwnerID != 9 || payout.BankAccountID != 4 {
		t.Fatalf("payout routed wrong: owner=%d account=%d", payout.OwnerID, payout.BankAccountID)
	}
	if !strings.HasPrefix(payout.TransactionID, "POUT") {
		t.Fatalf("unexpected payout reference %q", payout.TransactionID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeriveSkipsWhenPayoutExists(t *testing.T) {
	svc, mock, done := newPayoutService(t)
	defer done()

	mock.ExpectQuery("FROM payments WHERE id").WithArgs(int64(10)).
		WillReturnRows(paymentRow(10, 7, 1000, models.MethodCard, models.PaymentCompleted, "TXN1A"))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payouts").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	payout, err := svc.Derive(10)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	if payout != nil {
		t.Fatalf("expected no new payout, got %+v", payout)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeriveQueuesOutboxTaskWithoutActiveBankAccount(t *testing.T) {
	svc, mock, done := newPayoutService(t)
	defer done()

	mock.ExpectQuery("FROM payments WHERE id").WithArgs(int64(10)).
		WillReturnRows(paymentRow(10, 7, 1000, models.MethodCard, models.PaymentCompleted, "TXN1A"))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payouts").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 1000))
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 500))
	mock.ExpectQuery("FROM bank_accounts WHERE owner_id=. AND is_active=1").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bankAccountCols))

	// the owed payout is parked in the outbox instead of dropped
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payout_outbox").WithArgs(int64(10), models.OutboxPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO payout_outbox").
		WillReturnResult(sqlmock.NewResult(1, 1))

	payout, err := svc.Derive(10)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}
	if payout != nil {
		t.Fatalf("expected no payout without an active bank account")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProcessPendingSkipsPayoutsClaimedElsewhere(t *testing.T) {
	svc, mock, done := newPayoutService(t)
	defer done()

	mock.ExpectQuery("FROM payout_outbox WHERE status").
		WillReturnRows(sqlmock.NewRows(outboxCols))

	due := payoutRows(payoutRow(1, 9, 900, models.PayoutPending, "POUT1"), 2, 9, 1800, models.PayoutPending, "POUT2")
	mock.ExpectQuery("scheduled_date <=").
		WillReturnRows(due)

	// payout 1 is claimed and settled
	mock.ExpectExec("UPDATE payouts SET status=. WHERE id=. AND status").
		WithArgs(models.PayoutProcessing, int64(1), models.PayoutPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("processed_date").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// payout 2 was claimed by another runner in the meantime
	mock.ExpectExec("UPDATE payouts SET status=. WHERE id=. AND status").
		WithArgs(models.PayoutProcessing, int64(2), models.PayoutPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	batch, err := svc.ProcessPending()
	if err != nil {
		t.Fatalf("process error: %v", err)
	}
	// only the payout we actually settled counts toward the summary
	if batch.Message != "Processed 1 payouts" {
		t.Fatalf("unexpected message %q", batch.Message)
	}
	if len(batch.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(batch.Results))
	}
	if batch.Results[0].Status != models.PayoutCompleted {
		t.Fatalf("first payout should complete, got %q", batch.Results[0].Status)
	}
	if !strings.HasPrefix(batch.Results[0].BankTransactionID, "BANK") {
		t.Fatalf("missing bank reference, got %q", batch.Results[0].BankTransactionID)
	}
	if batch.Results[1].Status != "skipped" {
		t.Fatalf("second payout should be skipped, got %q", batch.Results[1].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRetryOutboxResolvesOnceAccountAppears(t *testing.T) {
	svc, mock, done := newPayoutService(t)
	defer done()

	tasks := sqlmock.NewRows(outboxCols).
		AddRow(5, 10, 9, models.OutboxAwaitingBankAccount, "owner has no active bank account",
			models.OutboxPending, time.Now(), nil)
	mock.ExpectQuery("FROM payout_outbox WHERE status").WithArgs(models.OutboxPending, int64(9)).
		WillReturnRows(tasks)

	// derivation now succeeds
	mock.ExpectQuery("FROM payments WHERE id").WithArgs(int64(10)).
		WillReturnRows(paymentRow(10, 7, 1000, models.MethodCard, models.PaymentCompleted, "TXN1A"))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payouts").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 3, 2, 1000))
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(listingRow(3, 9, 500))
	mock.ExpectQuery("FROM bank_accounts WHERE owner_id=. AND is_active=1").WithArgs(int64(9)).
		WillReturnRows(bankAccountRow(4, 9, true))
	mock.ExpectExec("INSERT INTO payouts").
		WillReturnResult(sqlmock.NewResult(11, 1))

	mock.ExpectExec("UPDATE payout_outbox SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resolved, err := svc.RetryOutbox(9)
	if err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if resolved != 1 {
		t.Fatalf("expected 1 resolved task, got %d", resolved)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
