package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/filters"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
	"navetteclub/internal/utils"
)

// POST /api/bookings/disposals
func CreateDisposalBooking(c *gin.Context) {
	var in services.DisposalBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	booking, customer, err := bookingService(c).CreateDisposalBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	go sendBookingVoucherEmail(c.Copy(), "disposal", booking.ID)

	c.JSON(http.StatusCreated, gin.H{
		"booking":    booking,
		"customer":   customer,
		"totalPrice": utils.FormatEuro(booking.TotalPriceCents),
	})
}

// GET /api/admin/bookings/disposals?status=&date=
func GetDisposalBookings(c *gin.Context) {
	list, err := repositories.DisposalBookingRepo{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := c.Query("status")
	bucket := filters.ParseDateBucket(c.Query("date"))
	now := time.Now()
	list = filters.Apply(list, func(b models.DisposalBooking) bool {
		return filters.MatchStatus(status, b.Status) && filters.MatchDate(bucket, b.Date, now)
	})

	c.JSON(http.StatusOK, list)
}

// GET /api/admin/bookings/disposals/:id
func GetDisposalBookingByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := repositories.DisposalBookingRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/disposals/ref/:reference
func GetDisposalBookingByReference(c *gin.Context) {
	b, err := repositories.DisposalBookingRepo{}.GetByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/admin/bookings/disposals/:id
func UpdateDisposalBooking(c *gin.Context) {
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

	b, err := repositories.DisposalBookingRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if upd.ProviderID != nil && b.ProviderID != nil {
		go notifyProviderAssignment(c.Copy(), "disposal", b.ID, b.Reference, *b.ProviderID)
	}

	c.JSON(http.StatusOK, b)
}

// DELETE /api/admin/bookings/disposals/:id
func DeleteDisposalBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.DisposalBookingRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "réservation supprimée"})
}
