package handlers

import (
	"net/http"
	"time"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"

	"github.com/gin-gonic/gin"
)

type listingInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Price         int64    `json:"price"`
	Location      string   `json:"location"`
	Country       string   `json:"country"`
	Category      string   `json:"category"`
	Amenities     []string `json:"amenities"`
	Capacity      int      `json:"capacity"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	AvailableFrom string   `json:"availableFrom"`
	AvailableTo   string   `json:"availableTo"`
	IsAvailable   *bool    `json:"isAvailable"`
}

type listingRequest struct {
	Listing listingInput `json:"listing"`
}

// GET /api/listings
func GetListings(c *gin.Context) {
	listings, err := repositories.ListingRepository{}.List(c.Query("search"), c.Query("category"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load listings", err)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// GET /api/listings/:id
func ShowListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	listing, err := repositories.ListingRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	reviews, err := repositories.ReviewRepository{}.ListByListing(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing, "reviews": reviews})
}

func listingFromInput(in listingInput, ownerID int64) models.Listing {
	category := in.Category
	if !models.ValidCategory(category) {
		category = models.CategoryOther
	}
	capacity := in.Capacity
	if capacity < 1 {
		capacity = 2
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	l := models.Listing{
		OwnerID:     ownerID,
		Title:       utils.NormalizeSpace(in.Title),
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Location:    utils.NormalizeSpace(in.Location),
		Country:     utils.NormalizeSpace(in.Country),
		Category:    category,
		Amenities:   in.Amenities,
		Capacity:    capacity,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		IsAvailable: available,
	}

	l.AvailableFrom = time.Now()
	if t, err := time.Parse("2006-01-02", in.AvailableFrom); err == nil {
		l.AvailableFrom = t
	}
	l.AvailableTo = l.AvailableFrom.AddDate(1, 0, 0)
	if t, err := time.Parse("2006-01-02", in.AvailableTo); err == nil {
		l.AvailableTo = t
	}
	return l
}

// POST /api/listings
func CreateListing(c *gin.Context) {
	var req listingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Listing.Title == "" || req.Listing.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "title and a positive price are required", nil)
		return
	}

	listing := listingFromInput(req.Listing, middleware.CurrentUserID(c))
	id, err := repositories.ListingRepository{}.Create(listing)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save listing", err)
		return
	}
	listing.ID = id
	c.JSON(http.StatusCreated, gin.H{"message": "Listing created!", "listing": listing})
}

// PUT /api/listings/:id
func UpdateListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req listingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ListingRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if existing.OwnerID != middleware.CurrentUserID(c) {
		respondError(c, http.StatusForbidden, "forbidden", "you can only edit your own listings", nil)
		return
	}

	listing := listingFromInput(req.Listing, existing.OwnerID)
	listing.ID = id
	if err := repo.Update(listing); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing updated!"})
}

// DELETE /api/listings/:id
func DeleteListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.ListingRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if existing.OwnerID != middleware.CurrentUserID(c) {
		respondError(c, http.StatusForbidden, "forbidden", "you can only delete your own listings", nil)
		return
	}

	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete listing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted!"})
}
