package config

import (
	"database/sql"
	"log"
)

// schemaDDL creates the tables the application needs when they are absent.
// Column names follow the API payloads. bank_accounts carries a generated
// column so MySQL can enforce "at most one active account per owner" with a
// plain unique index (NULLs never collide).
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		username VARCHAR(80) NOT NULL UNIQUE,
		email VARCHAR(190) NOT NULL UNIQUE,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password_hash VARCHAR(120) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		owner_id BIGINT NOT NULL,
		title VARCHAR(190) NOT NULL,
		description TEXT,
		image VARCHAR(500) NOT NULL DEFAULT '',
		price BIGINT NOT NULL DEFAULT 0,
		location VARCHAR(190) NOT NULL DEFAULT '',
		country VARCHAR(120) NOT NULL DEFAULT '',
		category VARCHAR(40) NOT NULL DEFAULT 'Other',
		amenities TEXT,
		capacity INT NOT NULL DEFAULT 2,
		bedrooms INT NOT NULL DEFAULT 1,
		bathrooms INT NOT NULL DEFAULT 1,
		available_from DATETIME NULL,
		available_to DATETIME NULL,
		is_available TINYINT(1) NOT NULL DEFAULT 1,
		average_rating DOUBLE NOT NULL DEFAULT 0,
		total_reviews INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_listings_owner (owner_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		listing_id BIGINT NOT NULL,
		guest_id BIGINT NOT NULL,
		check_in DATETIME NOT NULL,
		check_out DATETIME NOT NULL,
		guests INT NOT NULL DEFAULT 1,
		total_price BIGINT NOT NULL DEFAULT 0,
		special_requests TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		payment_status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_bookings_guest (guest_id),
		KEY idx_bookings_listing (listing_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_id BIGINT NOT NULL,
		amount BIGINT NOT NULL,
		currency VARCHAR(8) NOT NULL DEFAULT 'inr',
		payment_method VARCHAR(20) NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		transaction_id VARCHAR(64) NOT NULL UNIQUE,
		gateway_intent_id VARCHAR(120) NOT NULL DEFAULT '',
		card_last4 VARCHAR(4) NOT NULL DEFAULT '',
		card_brand VARCHAR(40) NOT NULL DEFAULT '',
		upi_id VARCHAR(120) NOT NULL DEFAULT '',
		bank_name VARCHAR(120) NOT NULL DEFAULT '',
		guest_name VARCHAR(120) NOT NULL DEFAULT '',
		guest_email VARCHAR(190) NOT NULL DEFAULT '',
		listing_title VARCHAR(190) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_payments_booking (booking_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		owner_id BIGINT NOT NULL,
		booking_id BIGINT NOT NULL,
		payment_id BIGINT NOT NULL UNIQUE,
		bank_account_id BIGINT NOT NULL,
		amount BIGINT NOT NULL,
		platform_fee BIGINT NOT NULL DEFAULT 0,
		net_amount BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		payout_method VARCHAR(20) NOT NULL DEFAULT 'bank_transfer',
		transaction_id VARCHAR(64) NOT NULL UNIQUE,
		scheduled_date DATETIME NOT NULL,
		processed_date DATETIME NULL,
		failure_reason VARCHAR(500) NOT NULL DEFAULT '',
		bank_transaction_id VARCHAR(64) NOT NULL DEFAULT '',
		utr_number VARCHAR(64) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_payouts_owner (owner_id),
		KEY idx_payouts_due (status, scheduled_date)
	)`,
	`CREATE TABLE IF NOT EXISTS bank_accounts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		owner_id BIGINT NOT NULL,
		account_holder_name VARCHAR(120) NOT NULL,
		account_number VARCHAR(40) NOT NULL,
		ifsc_code VARCHAR(20) NOT NULL,
		bank_name VARCHAR(120) NOT NULL,
		branch_name VARCHAR(120) NOT NULL DEFAULT '',
		account_type VARCHAR(20) NOT NULL DEFAULT 'savings',
		is_verified TINYINT(1) NOT NULL DEFAULT 0,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		active_flag TINYINT AS (IF(is_active = 1, 1, NULL)) STORED,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_owner_active (owner_id, active_flag)
	)`,
	`CREATE TABLE IF NOT EXISTS payout_outbox (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		payment_id BIGINT NOT NULL,
		owner_id BIGINT NOT NULL,
		reason VARCHAR(40) NOT NULL,
		detail VARCHAR(500) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		resolved_at DATETIME NULL,
		KEY idx_outbox_owner (status, owner_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		listing_id BIGINT NOT NULL,
		author_id BIGINT NOT NULL,
		rating INT NOT NULL,
		comment TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_reviews_listing (listing_id)
	)`,
}

// EnsureSchema applies the DDL above. Statements use IF NOT EXISTS so the
// call is safe on every boot.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("database schema ensured")
	return nil
}
