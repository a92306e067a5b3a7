package repositories

import (
	"testing"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOutboxEnqueueDeduplicatesPendingTasks(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	repo := OutboxRepository{}

	// first enqueue inserts
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payout_outbox").WithArgs(int64(10), models.OutboxPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO payout_outbox").
		WithArgs(int64(10), int64(9), models.OutboxAwaitingBankAccount, "owner has no active bank account", models.OutboxPending).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Enqueue(10, 9, models.OutboxAwaitingBankAccount, "owner has no active bank account"); err != nil {
		t.Fatalf("first enqueue error: %v", err)
	}

	// second enqueue sees the pending task and does not insert again
	mock.ExpectQuery("COUNT\\(\\*\\) FROM payout_outbox").WithArgs(int64(10), models.OutboxPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	if err := repo.Enqueue(10, 9, models.OutboxAwaitingBankAccount, "owner has no active bank account"); err != nil {
		t.Fatalf("second enqueue error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPayoutClaimIsConditional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	repo := PayoutRepository{}

	mock.ExpectExec("UPDATE payouts SET status").
		WithArgs(models.PayoutProcessing, int64(1), models.PayoutPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	claimed, err := repo.Claim(1)
	if err != nil {
		t.Fatalf("claim error: %v", err)
	}
	if !claimed {
		t.Fatalf("expected to claim a pending payout")
	}

	mock.ExpectExec("UPDATE payouts SET status").
		WithArgs(models.PayoutProcessing, int64(1), models.PayoutPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	claimed, err = repo.Claim(1)
	if err != nil {
		t.Fatalf("second claim error: %v", err)
	}
	if claimed {
		t.Fatalf("a processing payout must not be claimable again")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
