package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

// POST /api/customers
// Creates the customer, or returns the existing row for the email.
func CreateCustomer(c *gin.Context) {
	var in models.CustomerInput
	if !BindJSONOrError(c, &in) {
		return
	}

	customer, err := bookingService(c).ResolveCustomer(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GET /api/admin/customers
func GetCustomers(c *gin.Context) {
	list, err := repositories.CustomerRepo{}.GetAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/customers/:id
// Detail view joins the customer with their transfer history.
func GetCustomerByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := repositories.CustomerRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	transfers, err := repositories.TransferBookingRepo{}.ListByCustomer(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "transferBookings": transfers})
}
