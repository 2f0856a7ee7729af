package api

import (
	"testing"

	"github.com/gin-gonic/gin"

	intconfig "navetteclub/internal/config"
)

// The flat paths consumed by the original storefront and back-office clients
// must stay mounted alongside the grouped ones.
func TestRouterMountsFlatClientPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{JWTSecret: "test-secret"})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/customers",
		"POST /api/tour-bookings",
		"POST /api/transfer-bookings",
		"POST /api/disposal-bookings",
		"GET /api/transfer-bookings",
		"GET /api/transfer-bookings/:id",
		"PATCH /api/transfer-bookings/:id",
		"GET /api/contact-info",
		"PATCH /api/contact-info/:id",
		"GET /api/payments/:ref/status",
		"POST /api/admin/views",
		"POST /api/auth/logout",
		"GET /api/tours",
	}
	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %q is not mounted", route)
		}
	}
}
