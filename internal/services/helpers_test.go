package services

import (
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var paymentCols = []string{
	"id", "booking_id", "amount", "currency", "payment_method", "payment_status",
	"transaction_id", "gateway_intent_id", "card_last4", "card_brand", "upi_id",
	"bank_name", "guest_name", "guest_email", "listing_title", "created_at", "updated_at",
}

func paymentRow(id, bookingID, amount int64, method, status, txid string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(paymentCols).AddRow(
		id, bookingID, amount, "inr", method, status,
		txid, "", "", "", "",
		"", "Guest", "guest@example.com", "Sea View Villa", now, now,
	)
}

var bookingCols = []string{
	"id", "listing_id", "guest_id", "check_in", "check_out", "guests",
	"total_price", "special_requests", "status", "payment_status", "created_at",
}

func bookingRow(id, listingID, guestID, totalPrice int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bookingCols).AddRow(
		id, listingID, guestID, now, now.Add(72*time.Hour), 2,
		totalPrice, "", "pending", "unpaid", now,
	)
}

var listingCols = []string{
	"id", "owner_id", "title", "description", "image", "price", "location",
	"country", "category", "amenities", "capacity", "bedrooms", "bathrooms",
	"available_from", "available_to", "is_available", "average_rating",
	"total_reviews", "created_at",
}

func listingRow(id, ownerID, price int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(listingCols).AddRow(
		id, ownerID, "Sea View Villa", "", "", price, "Goa",
		"India", "Beachfront", "wifi, pool", 4, 2, 2,
		now, now.AddDate(1, 0, 0), true, 4.5,
		12, now,
	)
}

var bankAccountCols = []string{
	"id", "owner_id", "account_holder_name", "account_number", "ifsc_code",
	"bank_name", "branch_name", "account_type", "is_verified", "is_active",
	"created_at", "updated_at",
}

func bankAccountRow(id, ownerID int64, active bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bankAccountCols).AddRow(
		id, ownerID, "Asha Rao", "123456789012", "HDFC0001234",
		"HDFC Bank", "MG Road", "savings", true, active,
		now, now,
	)
}

var payoutCols = []string{
	"id", "owner_id", "booking_id", "payment_id", "bank_account_id", "amount",
	"platform_fee", "net_amount", "status", "payout_method", "transaction_id",
	"scheduled_date", "processed_date", "failure_reason", "bank_transaction_id",
	"utr_number", "created_at",
}

func payoutRow(id, ownerID, netAmount int64, status, txid string) *sqlmock.Rows {
	return payoutRows(nil, id, ownerID, netAmount, status, txid)
}

func payoutRows(rows *sqlmock.Rows, id, ownerID, netAmount int64, status, txid string) *sqlmock.Rows {
	if rows == nil {
		rows = sqlmock.NewRows(payoutCols)
	}
	now := time.Now()
	return rows.AddRow(
		id, ownerID, 7, 20+id, 4, netAmount+netAmount/9,
		netAmount/9, netAmount, status, "bank_transfer", txid,
		now.Add(-time.Hour), nil, "", "",
		"", now,
	)
}

var outboxCols = []string{
	"id", "payment_id", "owner_id", "reason", "detail", "status", "created_at", "resolved_at",
}
