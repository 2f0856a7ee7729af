package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "navetteclub/internal/config"
	h "navetteclub/internal/http/handlers"
	"navetteclub/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route introuvable",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)

		// Storefront catalog
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)

		tours := api.Group("/tours")
		tours.GET("", h.GetTours)
		tours.GET("/:slug", h.GetTourBySlug)

		// Storefront bookings
		bookings := api.Group("/bookings")
		bookings.POST("/transfers", h.CreateTransferBooking)
		bookings.GET("/transfers/ref/:reference", h.GetTransferBookingByReference)
		bookings.POST("/disposals", h.CreateDisposalBooking)
		bookings.GET("/disposals/ref/:reference", h.GetDisposalBookingByReference)
		bookings.POST("/tours", h.CreateTourBooking)
		bookings.GET("/tours/ref/:reference", h.GetTourBookingByReference)

		// Pricing helpers for the booking forms
		pricing := api.Group("/pricing")
		pricing.GET("/distance", h.GetDistance)
		pricing.GET("/auto-transfer", h.GetAutoTransferQuote)
		pricing.GET("/transfer", h.QuoteTransferPrice)
		pricing.GET("/disposal", h.QuoteDisposalPrice)

		// Payments (Konnect)
		payments := api.Group("/payments")
		payments.POST("/init", h.InitPayment)
		payments.GET("/status/:ref", h.GetPaymentStatus)
		payments.POST("/webhook", h.PaymentWebhook)
		payments.GET("/webhook", h.PaymentWebhook)

		// Public content
		content := api.Group("/content")
		content.GET("/homepage", h.GetHomepageContent)
		content.GET("/contact", h.GetContactInfo)
		content.GET("/social", h.GetSocialLinks)

		api.POST("/contact", h.SubmitContactForm)

		// Flat paths kept for the original storefront client.
		api.POST("/customers", h.CreateCustomer)
		api.POST("/transfer-bookings", h.CreateTransferBooking)
		api.POST("/disposal-bookings", h.CreateDisposalBooking)
		api.POST("/tour-bookings", h.CreateTourBooking)
		api.GET("/contact-info", h.GetContactInfo)
		api.GET("/payments/:ref/status", h.GetPaymentStatus)

		// Back office
		admin := api.Group("/admin")
		admin.POST("/login", h.AdminLogin)
		admin.POST("/logout", h.AdminLogout)

		secured := admin.Group("")
		secured.Use(middleware.AdminRequired(env.JWTSecret))
		{
			secured.GET("/status", h.AdminStatus)

			secured.GET("/customers", h.GetCustomers)
			secured.GET("/customers/:id", h.GetCustomerByID)

			secured.GET("/vehicles", h.GetAllVehicles)
			secured.POST("/vehicles", h.CreateVehicle)
			secured.PATCH("/vehicles/:id", h.UpdateVehicle)
			secured.DELETE("/vehicles/:id", h.DeleteVehicle)
			secured.GET("/vehicles/:id/seasonal-prices", h.GetVehicleSeasonalPrices)
			secured.POST("/vehicles/:id/seasonal-prices", h.CreateVehicleSeasonalPrice)
			secured.DELETE("/seasonal-prices/:id", h.DeleteVehicleSeasonalPrice)
			secured.GET("/vehicles/:id/hourly-prices", h.GetVehicleHourlyPrices)
			secured.POST("/vehicles/:id/hourly-prices", h.CreateVehicleHourlyPrice)
			secured.DELETE("/hourly-prices/:id", h.DeleteVehicleHourlyPrice)

			secured.GET("/tours", h.GetAllTours)
			secured.POST("/tours", h.CreateTour)
			secured.PATCH("/tours/:id", h.UpdateTour)
			secured.DELETE("/tours/:id", h.DeleteTour)
			secured.GET("/tours/:id/stops", h.GetTourStops)
			secured.PUT("/tours/:id/stops", h.ReplaceTourStops)

			secured.GET("/providers", h.GetProviders)
			secured.GET("/providers/for-zone", h.GetProvidersForZone)
			secured.GET("/providers/:id", h.GetProviderByID)
			secured.POST("/providers", h.CreateProvider)
			secured.PATCH("/providers/:id", h.UpdateProvider)
			secured.DELETE("/providers/:id", h.DeleteProvider)

			adminBookings := secured.Group("/bookings")
			adminBookings.GET("/transfers", h.GetTransferBookings)
			adminBookings.GET("/transfers/:id", h.GetTransferBookingByID)
			adminBookings.PATCH("/transfers/:id", h.UpdateTransferBooking)
			adminBookings.DELETE("/transfers/:id", h.DeleteTransferBooking)
			adminBookings.GET("/disposals", h.GetDisposalBookings)
			adminBookings.GET("/disposals/:id", h.GetDisposalBookingByID)
			adminBookings.PATCH("/disposals/:id", h.UpdateDisposalBooking)
			adminBookings.DELETE("/disposals/:id", h.DeleteDisposalBooking)
			adminBookings.GET("/tours", h.GetTourBookings)
			adminBookings.GET("/tours/:id", h.GetTourBookingByID)
			adminBookings.PATCH("/tours/:id", h.UpdateTourBooking)
			adminBookings.DELETE("/tours/:id", h.DeleteTourBooking)

			secured.GET("/docs/voucher/:type/:id", h.GetVoucher)
			secured.GET("/docs/mission-order/:type/:id", h.GetMissionOrder)

			secured.GET("/content/homepage", h.GetAllHomepageContent)
			secured.PUT("/content/homepage", h.UpsertHomepageContent)
			secured.DELETE("/content/homepage/:id", h.DeleteHomepageContent)
			secured.PATCH("/content/contact", h.UpdateContactInfo)
			secured.GET("/content/social", h.GetAllSocialLinks)
			secured.POST("/content/social", h.CreateSocialLink)
			secured.PUT("/content/social/:id", h.UpdateSocialLink)
			secured.DELETE("/content/social/:id", h.DeleteSocialLink)

			secured.GET("/views/badges", h.GetAdminBadges)
			secured.POST("/views", h.MarkSectionViewed)
			secured.POST("/views/:section", h.MarkSectionViewed)
		}

		// Flat admin paths kept for the original back-office client.
		legacy := api.Group("")
		legacy.Use(middleware.AdminRequired(env.JWTSecret))
		{
			legacy.GET("/transfer-bookings", h.GetTransferBookings)
			legacy.GET("/transfer-bookings/:id", h.GetTransferBookingByID)
			legacy.PATCH("/transfer-bookings/:id", h.UpdateTransferBooking)
			legacy.GET("/disposal-bookings", h.GetDisposalBookings)
			legacy.GET("/disposal-bookings/:id", h.GetDisposalBookingByID)
			legacy.PATCH("/disposal-bookings/:id", h.UpdateDisposalBooking)
			legacy.GET("/tour-bookings", h.GetTourBookings)
			legacy.GET("/tour-bookings/:id", h.GetTourBookingByID)
			legacy.PATCH("/tour-bookings/:id", h.UpdateTourBooking)
			legacy.PATCH("/contact-info/:id", h.UpdateContactInfo)
		}
	}

	return r
}
