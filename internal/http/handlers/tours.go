package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

// GET /api/tours?category=cultural&featured=1&active=0
// Storefront listing: active tours unless the caller asks for everything.
func GetTours(c *gin.Context) {
	onlyActive := true
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		onlyActive = v == "1" || v == "true"
	}
	filter := repositories.TourFilter{
		OnlyActive:   onlyActive,
		OnlyFeatured: c.Query("featured") == "1" || c.Query("featured") == "true",
		Category:     strings.TrimSpace(c.Query("category")),
	}
	list, err := repositories.TourRepo{}.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/tours
func GetAllTours(c *gin.Context) {
	list, err := repositories.TourRepo{}.List(repositories.TourFilter{})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/tours/:slug
// The storefront links tours by slug; a tour detail includes its itinerary.
func GetTourBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		RespondError(c, http.StatusBadRequest, "slug invalide", nil)
		return
	}

	repo := repositories.TourRepo{}
	tour, err := repo.GetBySlug(slug)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	stops, err := repo.Stops(tour.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	payload := gin.H{"tour": tour, "stops": stops}
	// Remaining seats are informational only; bookings are never rejected on
	// capacity.
	if date := strings.TrimSpace(c.Query("date")); date != "" && tour.MaxCapacity > 0 {
		booked, err := repositories.TourBookingRepo{}.BookedSeats(tour.ID, date)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		payload["remainingSeats"] = tour.MaxCapacity - booked
	}
	c.JSON(http.StatusOK, payload)
}

func validateTour(t models.CityTour) error {
	var errs domain.FieldErrors
	if strings.TrimSpace(t.Name) == "" {
		errs.Add("name", "le nom est requis")
	}
	if strings.TrimSpace(t.Description) == "" {
		errs.Add("description", "la description est requise")
	}
	if strings.TrimSpace(t.MeetingPoint) == "" {
		errs.Add("meetingPoint", "le point de rendez-vous est requis")
	}
	if t.PriceCents <= 0 {
		errs.Add("priceCents", "le prix adulte doit être positif")
	}
	if t.PriceChildCents != nil && *t.PriceChildCents < 0 {
		errs.Add("priceChildCents", "le prix enfant ne peut pas être négatif")
	}
	if t.Duration <= 0 {
		errs.Add("duration", "la durée doit être positive")
	}
	if !validDifficulty(t.Difficulty) {
		errs.Add("difficulty", "difficulté inconnue")
	}
	if t.MaxCapacity <= 0 {
		errs.Add("maxCapacity", "la capacité maximale doit être positive")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func validDifficulty(d string) bool {
	for _, v := range models.TourDifficulties {
		if v == d {
			return true
		}
	}
	return false
}

// POST /api/admin/tours
func CreateTour(c *gin.Context) {
	var t models.CityTour
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTour(t); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.TourRepo{}.Create(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/admin/tours/:id
func UpdateTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd models.CityTourUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if upd.Difficulty != nil && !validDifficulty(*upd.Difficulty) {
		RespondDomainError(c, domain.ValidationError{Field: "difficulty", Msg: "difficulté inconnue"})
		return
	}

	t, err := repositories.TourRepo{}.Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/admin/tours/:id
func DeleteTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.TourRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "excursion supprimée"})
}

// GET /api/admin/tours/:id/stops
func GetTourStops(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stops, err := repositories.TourRepo{}.Stops(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

// PUT /api/admin/tours/:id/stops
// Replaces the whole itinerary; positions follow the payload order.
func ReplaceTourStops(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var stops []models.TourStop
	if !BindJSONOrError(c, &stops) {
		return
	}
	for _, s := range stops {
		if strings.TrimSpace(s.Name) == "" {
			RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "chaque étape doit avoir un nom"})
			return
		}
	}

	repo := repositories.TourRepo{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.ReplaceStops(id, stops); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repo.Stops(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
