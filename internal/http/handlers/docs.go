package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/http/middleware"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		CustomerRepo: repositories.CustomerRepo{},
		VehicleRepo:  repositories.VehicleRepo{},
		TourRepo:     repositories.TourRepo{},
		ProviderRepo: repositories.ProviderRepo{},
		RequestID:    middleware.GetRequestID(c),
	}
}

func validBookingType(t string) bool {
	switch t {
	case "transfer", "disposal", "tour":
		return true
	}
	return false
}

func servePDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/admin/docs/voucher/:type/:id
func GetVoucher(c *gin.Context) {
	bookingType := c.Param("type")
	if !validBookingType(bookingType) {
		RespondError(c, http.StatusBadRequest, "type de réservation invalide", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	pdf, name, err := docsService(c).GenerateVoucher(bookingType, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, name)
}

// GET /api/admin/docs/mission-order/:type/:id
// 400 when no provider is assigned yet.
func GetMissionOrder(c *gin.Context) {
	bookingType := c.Param("type")
	if !validBookingType(bookingType) {
		RespondError(c, http.StatusBadRequest, "type de réservation invalide", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	pdf, name, err := docsService(c).GenerateMissionOrder(bookingType, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, name)
}
