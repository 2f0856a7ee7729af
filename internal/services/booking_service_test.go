package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		CustomerRepo: repositories.CustomerRepo{DB: db},
		VehicleRepo:  repositories.VehicleRepo{DB: db},
		TourRepo:     repositories.TourRepo{DB: db},
		TransferRepo: repositories.TransferBookingRepo{DB: db},
		DisposalRepo: repositories.DisposalBookingRepo{DB: db},
		TourBookings: repositories.TourBookingRepo{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateTransferBookingValidationStopsBeforeAnyWrite(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// No expectations registered: a single query or exec fails the test.
	_, _, err := svc.CreateTransferBooking(TransferBookingInput{
		Customer:     models.CustomerInput{FirstName: "Amira"},
		TransferType: "one-way",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %T %v", err, err)
	}

	var fe domain.FieldErrors
	if !asFieldErrors(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	for _, field := range []string{"lastName", "email", "phone", "vehicleId", "pickupLocation", "pickupDate", "distanceKm"} {
		if _, ok := fe.Fields[field]; !ok {
			t.Errorf("missing field error for %q", field)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("SQL ran during a failed validation: %v", err)
	}
}

func TestCreateTourBookingRejectsMalformedCustomer(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// Single-letter name, 3-digit phone and a double-@ address all fail the
	// form rules; nothing may reach the database.
	_, _, err := svc.CreateTourBooking(TourBookingInput{
		Customer: models.CustomerInput{
			FirstName: "A", LastName: "Ben Salah",
			Email: "a@@b", Phone: "123",
		},
		TourID:   3,
		TourDate: "2026-10-01",
		Adults:   2,
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var fe domain.FieldErrors
	if !asFieldErrors(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T %v", err, err)
	}
	for _, field := range []string{"firstName", "email", "phone"} {
		if _, ok := fe.Fields[field]; !ok {
			t.Errorf("missing field error for %q", field)
		}
	}
	if _, ok := fe.Fields["lastName"]; ok {
		t.Errorf("lastName is valid, should not be flagged")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("SQL ran during a failed validation: %v", err)
	}
}

func asFieldErrors(err error, out *domain.FieldErrors) bool {
	fe, ok := err.(domain.FieldErrors)
	if ok {
		*out = fe
	}
	return ok
}

func tourRowFull(id int64, priceCents int64, childCents any, maxCapacity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "provider_id", "name", "slug", "description", "full_description",
		"category", "duration", "difficulty", "max_capacity", "min_participants",
		"price_cents", "price_child_cents", "included", "excluded", "highlights",
		"meeting_point", "meeting_time", "image_url", "is_active", "featured",
		"created_at", "updated_at",
	}).AddRow(id, nil, "Tunis Classique", "tunis-classique", "desc", "",
		"cultural", 8, "easy", maxCapacity, 2,
		priceCents, childCents, "", "", "",
		"Porte de France", "08:30", "", true, true,
		time.Now(), time.Now())
}

func tourBookingRow(id int64, total int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "customer_id", "tour_id", "tour_date", "adults", "children",
		"total_price_cents", "special_requests", "status", "payment_status",
		"created_at", "updated_at",
	}).AddRow(id, "CT-20260901-654321", 7, 3, "2026-10-01", 2, 1,
		total, "", "pending", "pending", time.Now(), time.Now())
}

func TestCreateTourBookingPricesServerSide(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	childPrice := int64(2000)
	mock.ExpectQuery("SELECT (.+) FROM city_tours WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(tourRowFull(3, 5000, childPrice, 12))
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone", "country", "created_at",
		}).AddRow(7, "Amira", "Ben Salah", "amira@example.com", "+216", "Tunisie", time.Now()))
	mock.ExpectExec("INSERT INTO tour_bookings").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectQuery("SELECT (.+) FROM tour_bookings WHERE id=").
		WithArgs(int64(21)).
		WillReturnRows(tourBookingRow(21, 12000))

	booking, _, err := svc.CreateTourBooking(TourBookingInput{
		Customer: models.CustomerInput{
			FirstName: "Amira", LastName: "Ben Salah",
			Email: "amira@example.com", Phone: "+21620123456",
		},
		TourID:   3,
		TourDate: "2026-10-01",
		Adults:   2,
		Children: 1,
	})
	if err != nil {
		t.Fatalf("tour booking error: %v", err)
	}
	// 2 adults * 50.00 + 1 child * 20.00 = 120.00
	if booking.TotalPriceCents != 12000 {
		t.Fatalf("total = %d cents, want 12000", booking.TotalPriceCents)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTourBookingCapacityIsAdvisoryOnly(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// 3 participants against maxCapacity 2: the booking is still created,
	// capacity is informational and an administrator arbitrates.
	mock.ExpectQuery("SELECT (.+) FROM city_tours WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(tourRowFull(3, 5000, int64(2000), 2))
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE email=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone", "country", "created_at",
		}).AddRow(7, "Amira", "Ben Salah", "amira@example.com", "+21620123456", "Tunisie", time.Now()))
	mock.ExpectExec("INSERT INTO tour_bookings").
		WillReturnResult(sqlmock.NewResult(22, 1))
	mock.ExpectQuery("SELECT (.+) FROM tour_bookings WHERE id=").
		WithArgs(int64(22)).
		WillReturnRows(tourBookingRow(22, 12000))

	_, _, err := svc.CreateTourBooking(TourBookingInput{
		Customer: models.CustomerInput{
			FirstName: "Amira", LastName: "Ben Salah",
			Email: "amira@example.com", Phone: "+21620123456",
		},
		TourID:   3,
		TourDate: "2026-10-01",
		Adults:   2,
		Children: 1,
	})
	if err != nil {
		t.Fatalf("over-capacity booking should still be accepted: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
