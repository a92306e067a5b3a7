package repositories

import (
	"testing"
	"time"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListingGetByIDReturnsAvailabilityWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "title", "description", "image", "price", "location",
		"country", "category", "amenities", "capacity", "bedrooms", "bathrooms",
		"available_from", "available_to", "is_available", "average_rating",
		"total_reviews", "created_at",
	}).AddRow(
		3, 9, "Sea View Villa", "", "", 500, "Goa",
		"India", "Beachfront", "wifi,pool", 4, 2, 2,
		from, to, true, 4.5,
		12, time.Now(),
	)
	mock.ExpectQuery("FROM listings WHERE id").WithArgs(int64(3)).
		WillReturnRows(rows)

	listing, err := ListingRepository{}.GetByID(3)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !listing.AvailableFrom.Equal(from) || !listing.AvailableTo.Equal(to) {
		t.Fatalf("availability window not read back: from=%v to=%v", listing.AvailableFrom, listing.AvailableTo)
	}
	if got := len(listing.Amenities); got != 2 {
		t.Fatalf("expected 2 amenities, got %d", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListingUpdateWritesAvailabilityWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("available_from=., available_to=., is_available=.").
		WillReturnResult(sqlmock.NewResult(0, 1))

	listing := models.Listing{
		ID:            3,
		Title:         "Sea View Villa",
		Price:         500,
		Category:      "Beachfront",
		Capacity:      4,
		AvailableFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		IsAvailable:   true,
	}
	if err := (ListingRepository{}).Update(listing); err != nil {
		t.Fatalf("update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
