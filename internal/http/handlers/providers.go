package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
	"navetteclub/internal/zones"
)

// GET /api/admin/providers
func GetProviders(c *gin.Context) {
	list, err := repositories.ProviderRepo{}.GetAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/providers/:id
func GetProviderByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := repositories.ProviderRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/admin/providers
func CreateProvider(c *gin.Context) {
	var p models.Provider
	if !BindJSONOrError(c, &p) {
		return
	}

	var errs domain.FieldErrors
	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "le nom est requis")
	}
	for _, z := range p.ServiceZones {
		if !zones.Known(z) {
			errs.Add("serviceZones", "zone inconnue: "+z)
		}
	}
	if !errs.Empty() {
		RespondDomainError(c, errs)
		return
	}

	created, err := repositories.ProviderRepo{}.Create(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/admin/providers/:id
func UpdateProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd models.ProviderUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}

	if upd.ServiceZones != nil {
		for _, z := range *upd.ServiceZones {
			if !zones.Known(z) {
				RespondDomainError(c, domain.ValidationError{Field: "serviceZones", Msg: "zone inconnue: " + z})
				return
			}
		}
	}

	p, err := repositories.ProviderRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/admin/providers/:id
func DeleteProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.ProviderRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fournisseur supprimé"})
}

// GET /api/admin/providers/for-zone?address=...
// Suggests providers serving the geographic zone of an address. Used by the
// assignment screen.
func GetProvidersForZone(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		RespondError(c, http.StatusBadRequest, "le paramètre address est requis", nil)
		return
	}

	zone := zones.Detect(address)
	all, err := repositories.ProviderRepo{}.GetAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	matches := []models.Provider{}
	for _, p := range all {
		if !p.IsActive {
			continue
		}
		if zone == "" || zones.ServesZone(p.ServiceZones, zone) {
			matches = append(matches, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"zone": zone, "providers": matches})
}
