package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/adminview"
	intconfig "navetteclub/internal/config"
	"navetteclub/internal/domain"
)

var sectionTables = map[string]string{
	adminview.SectionTransfers: "transfer_bookings",
	adminview.SectionDisposals: "disposal_bookings",
	adminview.SectionTours:     "tour_bookings",
	adminview.SectionCustomers: "customers",
}

func countCreatedSince(table string, since time.Time) (int, error) {
	var n int
	err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE created_at > ?`, since).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// GET /api/admin/views/badges
// Rows created since each section was last opened. Zero time counts
// everything.
func GetAdminBadges(c *gin.Context) {
	ctx := c.Request.Context()

	lastViewed, err := viewTracker.All(ctx)
	if err != nil {
		RespondError(c, http.StatusServiceUnavailable, "suivi des vues indisponible", err)
		return
	}

	badges := gin.H{}
	for section, table := range sectionTables {
		n, err := countCreatedSince(table, lastViewed[section])
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		badges[section] = n
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges, "lastViewed": lastViewed})
}

// POST /api/admin/views/:section, or POST /api/admin/views with {"section"}.
func MarkSectionViewed(c *gin.Context) {
	section := c.Param("section")
	if section == "" {
		var req struct {
			Section string `json:"section"`
		}
		if !BindJSONOrError(c, &req) {
			return
		}
		section = req.Section
	}
	if !adminview.ValidSection(section) {
		RespondError(c, http.StatusBadRequest, "section inconnue", nil)
		return
	}

	if err := viewTracker.MarkViewed(c.Request.Context(), section); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "suivi des vues indisponible", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "viewedAt": time.Now().UTC()})
}
