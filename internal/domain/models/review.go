package models

import "time"

// Review is a guest's rating and comment on a listing.
type Review struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	AuthorID  int64     `json:"author_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
