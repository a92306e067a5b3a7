package repositories

import (
	"database/sql"
	"errors"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB { return sharedDB(r.DB) }

const reviewColumns = `id,
       COALESCE(listing_id,0),
       COALESCE(author_id,0),
       COALESCE(rating,0),
       COALESCE(comment,''),
       created_at`

func scanReview(row rowScanner) (models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.ListingID, &rv.AuthorID, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	return rv, err
}

// Create inserts a review.
func (r ReviewRepository) Create(rv models.Review) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (listing_id, author_id, rating, comment)
		VALUES (?, ?, ?, ?)`,
		rv.ListingID, rv.AuthorID, rv.Rating, rv.Comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches one review.
func (r ReviewRepository) GetByID(id int64) (models.Review, error) {
	row := r.db().QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE id=? LIMIT 1`, id)
	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, domain.NotFoundError{Resource: "review"}
	}
	return rv, err
}

// ListByListing returns a listing's reviews, newest first.
func (r ReviewRepository) ListByListing(listingID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`SELECT `+reviewColumns+` FROM reviews WHERE listing_id=? ORDER BY id DESC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Delete removes one review.
func (r ReviewRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM reviews WHERE id=?`, id)
	return err
}
