package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

var monthDayRe = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

func validSeasonWindow(start, end string) bool {
	return monthDayRe.MatchString(start) && monthDayRe.MatchString(end)
}

// GET /api/admin/vehicles/:id/seasonal-prices
func GetVehicleSeasonalPrices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := repositories.VehicleRepo{}.SeasonalPrices(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/vehicles/:id/seasonal-prices
func CreateVehicleSeasonalPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p models.VehicleSeasonalPrice
	if !BindJSONOrError(c, &p) {
		return
	}
	p.VehicleID = id

	var errs domain.FieldErrors
	if p.SeasonName == "" {
		errs.Add("seasonName", "le nom de saison est requis")
	}
	if !validSeasonWindow(p.StartDate, p.EndDate) {
		errs.Add("startDate", "fenêtre saisonnière invalide, format attendu MM-JJ")
	}
	if p.PricePerKmCents <= 0 {
		errs.Add("pricePerKmCents", "le tarif au kilomètre doit être positif")
	}
	if !errs.Empty() {
		RespondDomainError(c, errs)
		return
	}

	if _, err := (repositories.VehicleRepo{}).GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.VehicleRepo{}.CreateSeasonalPrice(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/admin/seasonal-prices/:id
func DeleteVehicleSeasonalPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.VehicleRepo{}).DeleteSeasonalPrice(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tarif saisonnier supprimé"})
}

// GET /api/admin/vehicles/:id/hourly-prices
func GetVehicleHourlyPrices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := repositories.VehicleRepo{}.HourlyPrices(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/vehicles/:id/hourly-prices
func CreateVehicleHourlyPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p models.VehicleHourlyPrice
	if !BindJSONOrError(c, &p) {
		return
	}
	p.VehicleID = id

	var errs domain.FieldErrors
	if p.SeasonName == "" {
		errs.Add("seasonName", "le nom de saison est requis")
	}
	if !validSeasonWindow(p.StartDate, p.EndDate) {
		errs.Add("startDate", "fenêtre saisonnière invalide, format attendu MM-JJ")
	}
	if p.PricePerHourCents <= 0 {
		errs.Add("pricePerHourCents", "le tarif horaire doit être positif")
	}
	if !errs.Empty() {
		RespondDomainError(c, errs)
		return
	}

	if _, err := (repositories.VehicleRepo{}).GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.VehicleRepo{}.CreateHourlyPrice(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/admin/hourly-prices/:id
func DeleteVehicleHourlyPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.VehicleRepo{}).DeleteHourlyPrice(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tarif horaire supprimé"})
}
