package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/filters"
	"navetteclub/internal/http/middleware"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
	"navetteclub/internal/utils"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		CustomerRepo: repositories.CustomerRepo{},
		VehicleRepo:  repositories.VehicleRepo{},
		TourRepo:     repositories.TourRepo{},
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		RequestID:    middleware.GetRequestID(c),
	}
}

// POST /api/bookings/transfers
func CreateTransferBooking(c *gin.Context) {
	var in services.TransferBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	booking, customer, err := bookingService(c).CreateTransferBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	go sendBookingVoucherEmail(c.Copy(), "transfer", booking.ID)

	c.JSON(http.StatusCreated, gin.H{
		"booking":    booking,
		"customer":   customer,
		"totalPrice": utils.FormatEuro(booking.TotalPriceCents),
	})
}

// GET /api/admin/bookings/transfers?status=pending&date=upcoming
func GetTransferBookings(c *gin.Context) {
	list, err := repositories.TransferBookingRepo{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := c.Query("status")
	bucket := filters.ParseDateBucket(c.Query("date"))
	now := time.Now()
	list = filters.Apply(list, func(b models.TransferBooking) bool {
		return filters.MatchStatus(status, b.Status) && filters.MatchDate(bucket, b.PickupDate, now)
	})

	c.JSON(http.StatusOK, list)
}

// GET /api/admin/bookings/transfers/:id
func GetTransferBookingByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := repositories.TransferBookingRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/transfers/ref/:reference
// Storefront status page lookup.
func GetTransferBookingByReference(c *gin.Context) {
	b, err := repositories.TransferBookingRepo{}.GetByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/admin/bookings/transfers/:id
// Key presence drives the update: providerId assigns a provider, status and
// paymentStatus move the workflow. Assigning a provider emails its mission
// order.
func UpdateTransferBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd models.TransferBookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if err := validateBookingPatch(upd.Status, upd.PaymentStatus); err != nil {
		RespondDomainError(c, err)
		return
	}

	if upd.ProviderID != nil && *upd.ProviderID > 0 {
		exists, err := repositories.ProviderRepo{}.Exists(*upd.ProviderID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if !exists {
			RespondDomainError(c, domain.NotFoundError{Resource: "fournisseur"})
			return
		}
	}

	b, err := repositories.TransferBookingRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if upd.ProviderID != nil && b.ProviderID != nil {
		go notifyProviderAssignment(c.Copy(), "transfer", b.ID, b.Reference, *b.ProviderID)
	}

	c.JSON(http.StatusOK, b)
}

// DELETE /api/admin/bookings/transfers/:id
func DeleteTransferBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.TransferBookingRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "réservation supprimée"})
}

func validateBookingPatch(status, paymentStatus *string) error {
	if status != nil && !validBookingStatus(*status) {
		return domain.ValidationError{Field: "status", Msg: "statut inconnu"}
	}
	if paymentStatus != nil && !validPaymentStatus(*paymentStatus) {
		return domain.ValidationError{Field: "paymentStatus", Msg: "statut de paiement inconnu"}
	}
	return nil
}

func validBookingStatus(s string) bool {
	switch s {
	case "pending", "confirmed", "completed", "cancelled":
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case "pending", "paid", "refunded":
		return true
	}
	return false
}

// notifyProviderAssignment emails the mission order after an assignment.
// Best effort: a mail failure never fails the PATCH.
func notifyProviderAssignment(c *gin.Context, bookingType string, bookingID int64, reference string, providerID int64) {
	provider, err := repositories.ProviderRepo{}.GetByID(providerID)
	if err != nil || provider.Email == "" {
		return
	}

	svc := services.DocsService{
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		CustomerRepo: repositories.CustomerRepo{},
		VehicleRepo:  repositories.VehicleRepo{},
		TourRepo:     repositories.TourRepo{},
		ProviderRepo: repositories.ProviderRepo{},
		RequestID:    middleware.GetRequestID(c),
	}
	pdf, name, err := svc.GenerateMissionOrder(bookingType, bookingID)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "mail", "mission_order_skipped", err.Error())
		return
	}

	if err := mailer(c).SendMissionOrder(provider.Email, provider.Name, reference, pdf, name); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "mail", "mission_order_failed", err.Error())
	}
}
