package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
	"navetteclub/internal/utils"
	"navetteclub/internal/zones"
)

// GET /api/pricing/distance?origin=...&destination=...
// Resolves road distance for the storefront booking form.
func GetDistance(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		RespondError(c, http.StatusBadRequest, "les paramètres origin et destination sont requis", nil)
		return
	}

	result, err := distanceAPI.Distance(c.Request.Context(), origin, destination)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "impossible de calculer la distance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"distance":   result,
		"originZone": zones.Detect(origin),
	})
}

// GET /api/pricing/auto-transfer?pickup=&dropoff=&date=&passengers=&roundTrip=1
// One call for the booking form: road distance, pickup zone, and a priced
// vehicle list. Vehicles whose provider serves the pickup zone come first,
// cheapest first within each group.
func GetAutoTransferQuote(c *gin.Context) {
	pickup := strings.TrimSpace(c.Query("pickup"))
	dropoff := strings.TrimSpace(c.Query("dropoff"))
	if pickup == "" || dropoff == "" {
		RespondError(c, http.StatusBadRequest, "les paramètres pickup et dropoff sont requis", nil)
		return
	}
	passengers, _ := strconv.Atoi(c.Query("passengers"))
	if passengers <= 0 {
		passengers = 1
	}
	roundTrip := c.Query("roundTrip") == "1" || c.Query("roundTrip") == "true"

	result, err := distanceAPI.Distance(c.Request.Context(), pickup, dropoff)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "impossible de calculer la distance", err)
		return
	}

	quotes, err := bookingService(c).QuoteVehicles(c.Query("date"), result.DistanceKm, passengers, roundTrip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	zone := zones.Detect(pickup)
	inZone := map[int64]bool{}
	if zone != "" {
		providers, err := repositories.ProviderRepo{}.GetAll()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		for _, p := range providers {
			if p.IsActive && zones.ServesZone(p.ServiceZones, zone) {
				inZone[p.ID] = true
			}
		}
	}
	preferred := func(q services.VehicleQuote) bool {
		return q.Vehicle.ProviderID != nil && inZone[*q.Vehicle.ProviderID]
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		pi, pj := preferred(quotes[i]), preferred(quotes[j])
		if pi != pj {
			return pi
		}
		return quotes[i].TotalPriceCents < quotes[j].TotalPriceCents
	})

	c.JSON(http.StatusOK, gin.H{
		"distance":   result,
		"pickupZone": zone,
		"vehicles":   quotes,
	})
}

// GET /api/pricing/transfer?vehicleId=&pickupDate=&distanceKm=&roundTrip=1
func QuoteTransferPrice(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Query("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		RespondError(c, http.StatusBadRequest, "le paramètre vehicleId est requis", nil)
		return
	}
	distanceKm, err := strconv.ParseFloat(c.Query("distanceKm"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "le paramètre distanceKm est requis", nil)
		return
	}
	roundTrip := c.Query("roundTrip") == "1" || c.Query("roundTrip") == "true"

	total, err := bookingService(c).QuoteTransfer(vehicleID, c.Query("pickupDate"), distanceKm, roundTrip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPriceCents": total,
		"totalPrice":      utils.FormatEuro(total),
	})
}

// GET /api/pricing/disposal?vehicleId=&date=&hours=
func QuoteDisposalPrice(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Query("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		RespondError(c, http.StatusBadRequest, "le paramètre vehicleId est requis", nil)
		return
	}
	hours, err := strconv.Atoi(c.Query("hours"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "le paramètre hours est requis", nil)
		return
	}

	total, err := bookingService(c).QuoteDisposal(vehicleID, c.Query("date"), hours)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPriceCents": total,
		"totalPrice":      utils.FormatEuro(total),
	})
}
