package handlers

import (
	"net/http"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	Review struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	} `json:"review"`
}

// POST /api/listings/:id/reviews
func CreateReview(c *gin.Context) {
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Review.Rating < 1 || req.Review.Rating > 5 {
		RespondError(c, http.StatusBadRequest, "rating must be between 1 and 5", nil)
		return
	}

	listings := repositories.ListingRepository{}
	if _, err := listings.GetByID(listingID); err != nil {
		RespondDomainError(c, err)
		return
	}

	review := models.Review{
		ListingID: listingID,
		AuthorID:  middleware.CurrentUserID(c),
		Rating:    req.Review.Rating,
		Comment:   req.Review.Comment,
	}
	id, err := repositories.ReviewRepository{}.Create(review)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save review", err)
		return
	}
	review.ID = id

	if err := listings.RefreshRatingStats(listingID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update listing rating", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added!", "review": review})
}

// DELETE /api/listings/:id/reviews/:reviewId
func DeleteReview(c *gin.Context) {
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "reviewId")
	if !ok {
		return
	}

	reviews := repositories.ReviewRepository{}
	review, err := reviews.GetByID(reviewID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if review.AuthorID != middleware.CurrentUserID(c) {
		respondError(c, http.StatusForbidden, "forbidden", "you can only delete your own reviews", nil)
		return
	}

	if err := reviews.Delete(reviewID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete review", err)
		return
	}
	if err := (repositories.ListingRepository{}).RefreshRatingStats(listingID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update listing rating", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted!"})
}
