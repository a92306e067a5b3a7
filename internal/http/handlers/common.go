package handlers

import (
	"net/http"
	"strconv"

	intconfig "wanderstay/internal/config"
	"wanderstay/internal/gateway"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/repositories"
	"wanderstay/internal/services"

	"github.com/gin-gonic/gin"
)

var env intconfig.Env

// Configure hands the loaded environment to the handlers package.
func Configure(e intconfig.Env) {
	env = e
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// idParam parses a positive int64 path parameter, responding 400 on failure.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}

// Service wiring. Each request builds its services fresh with the request id
// attached, against the shared DB handle.

func payoutService(c *gin.Context) services.PayoutService {
	return services.PayoutService{
		PaymentRepo:     repositories.PaymentRepository{},
		BookingRepo:     repositories.BookingRepository{},
		ListingRepo:     repositories.ListingRepository{},
		BankAccountRepo: repositories.BankAccountRepository{},
		PayoutRepo:      repositories.PayoutRepository{},
		OutboxRepo:      repositories.OutboxRepository{},
		TransferDelay:   env.GatewayDelay,
		RequestID:       middleware.GetRequestID(c),
	}
}

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepository{},
		BookingRepo: repositories.BookingRepository{},
		ListingRepo: repositories.ListingRepository{},
		PayoutSvc:   payoutService(c),
		Gateway:     gateway.Client{Delay: env.GatewayDelay},
		UPIDelay:    env.GatewayDelay,
		RequestID:   middleware.GetRequestID(c),
	}
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		ListingRepo: repositories.ListingRepository{},
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

func bankAccountService(c *gin.Context) services.BankAccountService {
	return services.BankAccountService{
		Repo:      repositories.BankAccountRepository{},
		PayoutSvc: payoutService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		ListingRepo: repositories.ListingRepository{},
		PayoutRepo:  repositories.PayoutRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}
