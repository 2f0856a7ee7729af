package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
)

func transferRowsFull(id int64, providerID any, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "customer_id", "vehicle_id", "provider_id", "transfer_type",
		"pickup_location", "dropoff_location", "pickup_date", "pickup_time",
		"return_date", "return_time", "passengers", "luggage", "flight_number",
		"special_requests", "total_price_cents", "status", "payment_status",
		"created_at", "updated_at",
	}).AddRow(id, "TR-20260901-123456", 7, 2, providerID, "one-way",
		"Aéroport Tunis-Carthage", "Hammamet", "2026-09-15", "10:30",
		"", "", 3, 2, "TU123", "", int64(8500), status, "pending",
		time.Now(), time.Now())
}

func TestTransferCreateRetriesOnceOnReferenceCollision(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO transfer_bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry for uniq_transfer_reference"})
	mock.ExpectExec("INSERT INTO transfer_bookings").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("SELECT (.+) FROM transfer_bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(transferRowsFull(9, nil, "pending"))

	repo := TransferBookingRepo{DB: db}
	b, err := repo.Create(models.TransferBooking{
		CustomerID:      7,
		VehicleID:       2,
		TransferType:    "one-way",
		PickupLocation:  "Aéroport Tunis-Carthage",
		DropoffLocation: "Hammamet",
		PickupDate:      "2026-09-15",
		PickupTime:      "10:30",
		Passengers:      3,
		Luggage:         2,
		TotalPriceCents: 8500,
	})
	if err != nil {
		t.Fatalf("create with one collision should succeed: %v", err)
	}
	if b.ID != 9 {
		t.Fatalf("booking id = %d, want 9", b.ID)
	}
	if b.Status != "pending" {
		t.Fatalf("new booking must be pending, got %q", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransferCreateGivesUpAfterSecondCollision(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	mock.ExpectExec("INSERT INTO transfer_bookings").WillReturnError(dup)
	mock.ExpectExec("INSERT INTO transfer_bookings").WillReturnError(dup)

	repo := TransferBookingRepo{DB: db}
	_, err = repo.Create(models.TransferBooking{CustomerID: 1, VehicleID: 1})
	if err == nil {
		t.Fatalf("expected error after two reference collisions")
	}
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %T %v", err, err)
	}
}

func TestTransferUpdateAssignsProviderOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	providerID := int64(4)
	mock.ExpectExec("UPDATE transfer_bookings SET provider_id=").
		WithArgs(providerID, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM transfer_bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(transferRowsFull(9, providerID, "pending"))

	repo := TransferBookingRepo{DB: db}
	b, err := repo.Update(9, models.TransferBookingUpdate{ProviderID: &providerID})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if b.ProviderID == nil || *b.ProviderID != 4 {
		t.Fatalf("provider not assigned, got %v", b.ProviderID)
	}
	if b.Status != "pending" {
		t.Fatalf("status must not change on provider assignment, got %q", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransferUpdateEmptyPatchTouchesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM transfer_bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(transferRowsFull(9, nil, "confirmed"))

	repo := TransferBookingRepo{DB: db}
	b, err := repo.Update(9, models.TransferBookingUpdate{})
	if err != nil {
		t.Fatalf("empty patch error: %v", err)
	}
	if b.Status != "confirmed" {
		t.Fatalf("status = %q", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("an UPDATE ran for an empty patch: %v", err)
	}
}
