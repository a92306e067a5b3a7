package repositories

import (
	"strings"
	"testing"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaymentCreateAssignsTransactionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(10, 1))

	id, txid, err := PaymentRepository{}.Create(models.Payment{
		BookingID: 7,
		Amount:    1000,
		Method:    models.MethodCard,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 10 {
		t.Fatalf("unexpected id %d", id)
	}
	if !strings.HasPrefix(txid, "TXN") {
		t.Fatalf("unexpected transaction id %q", txid)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentMarkCompletedStoresOnlyMethodBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	// a UPI completion stores the UPI id and leaves card fields blank
	mock.ExpectExec("UPDATE payments").
		WithArgs(models.PaymentCompleted, "", "", "asha@okhdfc", "", int64(10), models.PaymentPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := PaymentRepository{}.MarkCompleted(nil, 10, models.MethodUPI, models.PaymentDetails{
		UPIID: "asha@okhdfc",
		Last4: "4242", // ignored for this method
	})
	if err != nil {
		t.Fatalf("mark completed error: %v", err)
	}
	if !won {
		t.Fatalf("expected to win the transition")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentMarkCompletedLosesWhenAlreadyCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := PaymentRepository{}.MarkCompleted(nil, 10, models.MethodCard, models.PaymentDetails{Last4: "4242"})
	if err != nil {
		t.Fatalf("mark completed error: %v", err)
	}
	if won {
		t.Fatalf("guarded update should not win on a completed payment")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
