package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/utils"
)

type ListingRepository struct {
	DB *sql.DB
}

func (r ListingRepository) db() *sql.DB { return sharedDB(r.DB) }

const listingColumns = `id,
       COALESCE(owner_id,0),
       COALESCE(title,''),
       COALESCE(description,''),
       COALESCE(image,''),
       COALESCE(price,0),
       COALESCE(location,''),
       COALESCE(country,''),
       COALESCE(category,'Other'),
       COALESCE(amenities,''),
       COALESCE(capacity,2),
       COALESCE(bedrooms,1),
       COALESCE(bathrooms,1),
       available_from,
       available_to,
       COALESCE(is_available,1),
       COALESCE(average_rating,0),
       COALESCE(total_reviews,0),
       created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		l         models.Listing
		amenities string
		from, to  sql.NullTime
	)
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Title,
		&l.Description,
		&l.Image,
		&l.Price,
		&l.Location,
		&l.Country,
		&l.Category,
		&amenities,
		&l.Capacity,
		&l.Bedrooms,
		&l.Bathrooms,
		&from,
		&to,
		&l.IsAvailable,
		&l.AverageRating,
		&l.TotalReviews,
		&l.CreatedAt,
	)
	l.Amenities = utils.SplitList(amenities)
	if from.Valid {
		l.AvailableFrom = from.Time
	}
	if to.Valid {
		l.AvailableTo = to.Time
	}
	return l, err
}

// Create inserts a listing; an empty image falls back to the default photo.
func (r ListingRepository) Create(l models.Listing) (int64, error) {
	image := strings.TrimSpace(l.Image)
	if image == "" {
		image = models.DefaultListingImage
	}
	res, err := r.db().Exec(`
		INSERT INTO listings
			(owner_id, title, description, image, price, location, country, category,
			 amenities, capacity, bedrooms, bathrooms, available_from, available_to, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.OwnerID, l.Title, l.Description, image, l.Price, l.Location, l.Country, l.Category,
		utils.JoinList(l.Amenities), l.Capacity, l.Bedrooms, l.Bathrooms,
		l.AvailableFrom, l.AvailableTo, l.IsAvailable,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches one listing.
func (r ListingRepository) GetByID(id int64) (models.Listing, error) {
	row := r.db().QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id=? LIMIT 1`, id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, domain.NotFoundError{Resource: "listing"}
	}
	return l, err
}

// List returns listings, optionally filtered by search text and category.
func (r ListingRepository) List(search, category string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	var (
		clauses []string
		args    []any
	)
	if s := strings.TrimSpace(search); s != "" {
		clauses = append(clauses, `(title LIKE ? OR location LIKE ? OR country LIKE ?)`)
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if c := strings.TrimSpace(category); c != "" {
		clauses = append(clauses, `category = ?`)
		args = append(args, c)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update rewrites editable fields on one listing.
func (r ListingRepository) Update(l models.Listing) error {
	image := strings.TrimSpace(l.Image)
	if image == "" {
		image = models.DefaultListingImage
	}
	res, err := r.db().Exec(`
		UPDATE listings SET
			title=?, description=?, image=?, price=?, location=?, country=?,
			category=?, amenities=?, capacity=?, bedrooms=?, bathrooms=?,
			available_from=?, available_to=?, is_available=?
		WHERE id=?`,
		l.Title, l.Description, image, l.Price, l.Location, l.Country,
		l.Category, utils.JoinList(l.Amenities), l.Capacity, l.Bedrooms, l.Bathrooms,
		l.AvailableFrom, l.AvailableTo, l.IsAvailable,
		l.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// id may still exist with identical values; verify before reporting
		if _, err := r.GetByID(l.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a listing and its reviews.
func (r ListingRepository) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM reviews WHERE listing_id=?`, id); err != nil {
		return err
	}
	_, err := r.db().Exec(`DELETE FROM listings WHERE id=?`, id)
	return err
}

// RefreshRatingStats recomputes average_rating and total_reviews from the
// reviews table in one statement.
func (r ListingRepository) RefreshRatingStats(listingID int64) error {
	_, err := r.db().Exec(`
		UPDATE listings l SET
			average_rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE listing_id = l.id), 0),
			total_reviews  = (SELECT COUNT(*) FROM reviews WHERE listing_id = l.id)
		WHERE l.id = ?`, listingID)
	return err
}
