package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain/models"
	"navetteclub/internal/filters"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
	"navetteclub/internal/utils"
)

// POST /api/bookings/tours
func CreateTourBooking(c *gin.Context) {
	var in services.TourBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	booking, customer, err := bookingService(c).CreateTourBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	go sendBookingVoucherEmail(c.Copy(), "tour", booking.ID)

	c.JSON(http.StatusCreated, gin.H{
		"booking":    booking,
		"customer":   customer,
		"totalPrice": utils.FormatEuro(booking.TotalPriceCents),
	})
}

// GET /api/admin/bookings/tours?status=&date=
func GetTourBookings(c *gin.Context) {
	list, err := repositories.TourBookingRepo{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := c.Query("status")
	bucket := filters.ParseDateBucket(c.Query("date"))
	now := time.Now()
	list = filters.Apply(list, func(b models.TourBooking) bool {
		return filters.MatchStatus(status, b.Status) && filters.MatchDate(bucket, b.TourDate, now)
	})

	c.JSON(http.StatusOK, list)
}

// GET /api/admin/bookings/tours/:id
func GetTourBookingByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := repositories.TourBookingRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/tours/ref/:reference
func GetTourBookingByReference(c *gin.Context) {
	b, err := repositories.TourBookingRepo{}.GetByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/admin/bookings/tours/:id
// Tour bookings have no provider assignment, only workflow statuses.
func UpdateTourBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd models.TourBookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if err := validateBookingPatch(upd.Status, upd.PaymentStatus); err != nil {
		RespondDomainError(c, err)
		return
	}

	b, err := repositories.TourBookingRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/admin/bookings/tours/:id
func DeleteTourBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.TourBookingRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "réservation supprimée"})
}
