package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

// GET /api/vehicles?passengers=4
// Storefront listing: available vehicles only, optionally filtered by
// capacity, cheapest first.
func GetVehicles(c *gin.Context) {
	filter := repositories.VehicleFilter{OnlyAvailable: true}
	if v := strings.TrimSpace(c.Query("passengers")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.MinCapacity = n
		}
	}

	list, err := repositories.VehicleRepo{}.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/vehicles
func GetAllVehicles(c *gin.Context) {
	list, err := repositories.VehicleRepo{}.List(repositories.VehicleFilter{})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := repositories.VehicleRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func validateVehicle(v models.Vehicle) error {
	var errs domain.FieldErrors
	if strings.TrimSpace(v.Name) == "" {
		errs.Add("name", "le nom est requis")
	}
	if !validVehicleType(v.Type) {
		errs.Add("type", "type de véhicule inconnu")
	}
	if v.Capacity <= 0 {
		errs.Add("capacity", "la capacité doit être positive")
	}
	if v.BasePriceCents < 0 {
		errs.Add("basePriceCents", "le prix de base ne peut pas être négatif")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func validVehicleType(t string) bool {
	for _, vt := range models.VehicleTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// POST /api/admin/vehicles
func CreateVehicle(c *gin.Context) {
	var v models.Vehicle
	if !BindJSONOrError(c, &v) {
		return
	}
	if err := validateVehicle(v); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.VehicleRepo{}.Create(v)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/admin/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd models.VehicleUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if upd.Type != nil && !validVehicleType(*upd.Type) {
		RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "type de véhicule inconnu"})
		return
	}

	v, err := repositories.VehicleRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/admin/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.VehicleRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "véhicule supprimé"})
}
