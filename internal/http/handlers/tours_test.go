package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "navetteclub/internal/config"
)

func emptyTourRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "provider_id", "name", "slug", "description", "full_description",
		"category", "duration", "difficulty", "max_capacity", "min_participants",
		"price_cents", "price_child_cents", "included", "excluded", "highlights",
		"meeting_point", "meeting_time", "image_url", "is_active", "featured",
		"created_at", "updated_at",
	})
}

func withMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	return mock, func() {
		intconfig.DB = prev
		db.Close()
	}
}

func TestGetToursDefaultsToActiveOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, done := withMockDB(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM city_tours WHERE is_active=1 ORDER BY").
		WillReturnRows(emptyTourRows())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tours", nil)
	GetTours(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetToursActiveFalseListsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, done := withMockDB(t)
	defer done()

	// No is_active clause when the caller asks for inactive tours too.
	mock.ExpectQuery("SELECT (.+) FROM city_tours ORDER BY").
		WillReturnRows(emptyTourRows())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tours?active=false", nil)
	GetTours(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
