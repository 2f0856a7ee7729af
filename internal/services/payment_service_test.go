package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"navetteclub/internal/konnect"
	"navetteclub/internal/repositories"
)

type fakeGateway struct {
	initResp   konnect.PaymentResponse
	initErr    error
	status     string
	statusErr  error
	initCalls  int
	pollCalls  int
	lastAmount int64
}

func (g *fakeGateway) InitPayment(ctx context.Context, req konnect.PaymentRequest) (konnect.PaymentResponse, error) {
	g.initCalls++
	g.lastAmount = req.AmountCents
	return g.initResp, g.initErr
}

func (g *fakeGateway) PaymentStatus(ctx context.Context, ref string) (konnect.PaymentDetails, string, error) {
	g.pollCalls++
	return konnect.PaymentDetails{Status: g.status}, g.status, g.statusErr
}

func intentRow(id int64, ref, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "order_id", "payment_ref", "booking_type", "booking_id", "amount_cents",
		"currency", "status", "pay_url", "expires_at", "created_at", "updated_at",
	}).AddRow(id, "order-1", ref, "transfer", int64(9), int64(8500),
		"EUR", status, "https://gateway/pay", time.Now().Add(30*time.Minute), time.Now(), time.Now())
}

func TestResolveStatusCompletedMarksBookingPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM payment_intents WHERE payment_ref=").
		WithArgs("ref-1").
		WillReturnRows(intentRow(5, "ref-1", "pending"))
	mock.ExpectExec("UPDATE payment_intents SET status=").
		WithArgs("completed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE transfer_bookings SET").
		WithArgs("confirmed", "paid", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM transfer_bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(transferRowForPayment(9, "confirmed", "paid"))

	gw := &fakeGateway{status: konnect.StatusCompleted}
	svc := PaymentService{
		IntentRepo:   repositories.PaymentIntentRepo{DB: db},
		TransferRepo: repositories.TransferBookingRepo{DB: db},
		Gateway:      gw,
	}

	_, status, err := svc.ResolveStatus(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if status != konnect.StatusCompleted {
		t.Fatalf("status = %q", status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolveStatusUnknownLeavesIntentUntouched(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM payment_intents WHERE payment_ref=").
		WithArgs("ref-1").
		WillReturnRows(intentRow(5, "ref-1", "pending"))

	gw := &fakeGateway{status: konnect.StatusUnknown, statusErr: context.DeadlineExceeded}
	svc := PaymentService{
		IntentRepo: repositories.PaymentIntentRepo{DB: db},
		Gateway:    gw,
	}

	intent, status, err := svc.ResolveStatus(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("unknown status must not surface as an error to the caller: %v", err)
	}
	if status != konnect.StatusUnknown {
		t.Fatalf("status = %q, want unknown", status)
	}
	if intent.Status != "pending" {
		t.Fatalf("intent status changed to %q on unreachable gateway", intent.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("a write ran for an unknown status: %v", err)
	}
}

func TestResolveStatusTerminalSkipsGateway(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM payment_intents WHERE payment_ref=").
		WithArgs("ref-1").
		WillReturnRows(intentRow(5, "ref-1", "completed"))

	gw := &fakeGateway{status: konnect.StatusCompleted}
	svc := PaymentService{
		IntentRepo: repositories.PaymentIntentRepo{DB: db},
		Gateway:    gw,
	}

	_, status, err := svc.ResolveStatus(context.Background(), "ref-1")
	if err != nil || status != konnect.StatusCompleted {
		t.Fatalf("status = %q err = %v", status, err)
	}
	if gw.pollCalls != 0 {
		t.Fatalf("gateway polled %d times for a settled intent", gw.pollCalls)
	}
}

func transferRowForPayment(id int64, status, payStatus string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "customer_id", "vehicle_id", "provider_id", "transfer_type",
		"pickup_location", "dropoff_location", "pickup_date", "pickup_time",
		"return_date", "return_time", "passengers", "luggage", "flight_number",
		"special_requests", "total_price_cents", "status", "payment_status",
		"created_at", "updated_at",
	}).AddRow(id, "TR-20260901-123456", 7, 2, nil, "one-way",
		"Tunis", "Hammamet", "2026-09-15", "10:30", "", "", 3, 2, "", "",
		int64(8500), status, payStatus, time.Now(), time.Now())
}
