package api

import (
	"log"
	stdhttp "net/http"

	intconfig "wanderstay/internal/config"
	h "wanderstay/internal/http/handlers"
	"wanderstay/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authed := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Listings: browsing is public, mutations need a login
		listings := api.Group("/listings")
		listings.GET("", h.GetListings)
		listings.GET("/:id", h.ShowListing)
		listings.POST("", authed, h.CreateListing)
		listings.PUT("/:id", authed, h.UpdateListing)
		listings.DELETE("/:id", authed, h.DeleteListing)

		// Reviews
		listings.POST("/:id/reviews", authed, h.CreateReview)
		listings.DELETE("/:id/reviews/:reviewId", authed, h.DeleteReview)

		// Bookings
		listings.POST("/:id/bookings", authed, h.CreateBooking)
		bookings := api.Group("/bookings", authed)
		bookings.GET("", h.GetUserBookings)
		bookings.GET("/:bookingId", h.ShowBooking)
		bookings.POST("/:bookingId/cancel", h.CancelBooking)
		bookings.GET("/:bookingId/invoice", h.GetBookingInvoicePDF)

		// Payments
		payments := api.Group("/payments", authed)
		payments.POST("/create-intent", h.CreatePaymentIntent)
		payments.POST("/process", h.ProcessPayment)
		payments.POST("/process-upi", h.ProcessUPIPayment)
		payments.GET("/status/:paymentId", h.GetPaymentStatus)
		payments.GET("/history", h.GetPaymentHistory)

		// Payouts
		payouts := api.Group("/payouts", authed)
		payouts.GET("", h.GetUserPayouts)
		payouts.GET("/stats", h.GetPayoutStats)
		payouts.GET("/statement", h.GetPayoutStatementPDF)
		payouts.GET("/:payoutId", h.ShowPayout)
		payouts.POST("/process-pending", middleware.RequireRoles("admin"), h.ProcessPendingPayouts)

		// Bank accounts
		bank := api.Group("/bank-accounts", authed)
		bank.GET("", h.GetBankAccounts)
		bank.POST("", h.AddBankAccount)
		bank.GET("/:accountId", h.ShowBankAccount)
		bank.PUT("/:accountId", h.UpdateBankAccount)
		bank.PATCH("/:accountId/activate", h.ActivateBankAccount)
		bank.DELETE("/:accountId", h.DeleteBankAccount)
	}

	h.SetRouter(r)
	return r
}
