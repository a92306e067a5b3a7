package handlers

import (
	"net/http"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/payouts
func GetUserPayouts(c *gin.Context) {
	payouts, err := payoutService(c).ListForOwner(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if payouts == nil {
		payouts = []models.Payout{}
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// GET /api/payouts/stats
func GetPayoutStats(c *gin.Context) {
	stats, err := payoutService(c).StatsForOwner(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /api/payouts/process-pending
func ProcessPendingPayouts(c *gin.Context) {
	result, err := payoutService(c).ProcessPending()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"results": result.Results,
	})
}

// GET /api/payouts/statement
func GetPayoutStatementPDF(c *gin.Context) {
	data, filename, err := docsService(c).GeneratePayoutStatement(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/payouts/:payoutId
func ShowPayout(c *gin.Context) {
	id, ok := idParam(c, "payoutId")
	if !ok {
		return
	}
	payout, err := payoutService(c).Get(middleware.CurrentUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout": payout})
}
