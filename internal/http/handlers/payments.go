package handlers

import (
	"net/http"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

type createIntentRequest struct {
	BookingID     int64  `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod"`
}

// POST /api/payments/create-intent
func CreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	guest, err := repositories.UserRepository{}.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result, err := paymentService(c).CreateIntent(guest, req.BookingID, req.PaymentMethod)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"paymentId": result.PaymentID,
		"amount":    result.Amount,
	}
	if result.ClientSecret != "" {
		resp["clientSecret"] = result.ClientSecret
	}
	c.JSON(http.StatusOK, resp)
}

type processPaymentRequest struct {
	PaymentID      int64                 `json:"paymentId"`
	PaymentMethod  string                `json:"paymentMethod"`
	PaymentDetails models.PaymentDetails `json:"paymentDetails"`
}

// POST /api/payments/process
func ProcessPayment(c *gin.Context) {
	var req processPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	txid, err := paymentService(c).Process(req.PaymentID, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Payment completed successfully",
		"transactionId": txid,
	})
}

type upiPaymentRequest struct {
	PaymentID int64  `json:"paymentId"`
	UPIID     string `json:"upiId"`
}

// POST /api/payments/process-upi
func ProcessUPIPayment(c *gin.Context) {
	var req upiPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	txid, err := paymentService(c).ProcessUPI(req.PaymentID, req.UPIID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "UPI payment completed successfully",
		"transactionId": txid,
	})
}

// GET /api/payments/status/:paymentId
func GetPaymentStatus(c *gin.Context) {
	id, ok := idParam(c, "paymentId")
	if !ok {
		return
	}

	status, err := paymentService(c).Status(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GET /api/payments/history
func GetPaymentHistory(c *gin.Context) {
	payments, err := paymentService(c).History(50)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}
