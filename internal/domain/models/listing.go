package models

import "time"

// Listing categories offered in the UI.
const (
	CategoryApartment = "Apartment"
	CategoryHouse     = "House"
	CategoryVilla     = "Villa"
	CategoryCabin     = "Cabin"
	CategoryCondo     = "Condo"
	CategoryStudio    = "Studio"
	CategoryOther     = "Other"
)

// DefaultListingImage is used when a host does not upload a photo.
const DefaultListingImage = "https://images.unsplash.com/photo-1739866669727-8d75caed31a0?w=600&auto=format&fit=crop&q=60"

// Listing is a rentable property. Price is whole rupees per night.
type Listing struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Price         int64     `json:"price"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	Category      string    `json:"category"`
	Amenities     []string  `json:"amenities"`
	Capacity      int       `json:"capacity"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	AvailableFrom time.Time `json:"available_from"`
	AvailableTo   time.Time `json:"available_to"`
	IsAvailable   bool      `json:"is_available"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidCategory reports whether the category is one of the known values.
func ValidCategory(c string) bool {
	switch c {
	case CategoryApartment, CategoryHouse, CategoryVilla, CategoryCabin,
		CategoryCondo, CategoryStudio, CategoryOther:
		return true
	}
	return false
}
