package konnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		APIKey:           "key",
		ReceiverWalletID: "wallet",
		BaseURL:          baseURL,
		AppBaseURL:       "https://navetteclub.example",
		EURToTNDRate:     3.5,
		HTTPClient:       http.DefaultClient,
	}
}

func TestInitPaymentConvertsToMillimes(t *testing.T) {
	var gotAmount float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "key" {
			t.Errorf("missing api key header")
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		gotAmount = payload["amount"].(float64)
		json.NewEncoder(w).Encode(map[string]string{
			"payUrl":     "https://gateway/pay/abc",
			"paymentRef": "ref-abc",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	resp, err := c.InitPayment(context.Background(), PaymentRequest{
		AmountCents:   12000, // 120.00 EUR
		OrderID:       "order-1",
		Description:   "Tour Tunis Classique",
		CustomerEmail: "client@example.com",
	})
	if err != nil {
		t.Fatalf("InitPayment error: %v", err)
	}
	// 120 EUR * 3.5 = 420 TND = 420000 millimes
	if gotAmount != 420000 {
		t.Fatalf("amount sent = %v millimes, want 420000", gotAmount)
	}
	if resp.PaymentRef != "ref-abc" {
		t.Fatalf("paymentRef = %q", resp.PaymentRef)
	}
}

func TestInitPaymentUnconfigured(t *testing.T) {
	c := &Client{}
	if _, err := c.InitPayment(context.Background(), PaymentRequest{}); err == nil {
		t.Fatalf("expected error when gateway credentials are missing")
	}
}

func TestPaymentStatusMapsExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"payment": map[string]any{
				"id":      "p1",
				"status":  "expired",
				"amount":  420000,
				"orderId": "order-1",
			},
		})
	}))
	defer srv.Close()

	_, status, err := newTestClient(srv.URL).PaymentStatus(context.Background(), "ref-abc")
	if err != nil {
		t.Fatalf("PaymentStatus error: %v", err)
	}
	if status != StatusExpired {
		t.Fatalf("status = %q, want %q (not failed, not completed)", status, StatusExpired)
	}
}

func TestPaymentStatusCompleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"payment": map[string]any{"id": "p1", "status": "completed", "amount": 1000, "orderId": "o"},
		})
	}))
	defer srv.Close()

	details, status, err := newTestClient(srv.URL).PaymentStatus(context.Background(), "ref")
	if err != nil || status != StatusCompleted {
		t.Fatalf("status = %q err = %v, want completed", status, err)
	}
	if details.AmountMillimes != 1000 {
		t.Fatalf("amount = %d", details.AmountMillimes)
	}
}

func TestPaymentStatusUnreachableGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, status, err := newTestClient(srv.URL).PaymentStatus(context.Background(), "ref")
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if status != StatusUnknown {
		t.Fatalf("status = %q, want %q on network error", status, StatusUnknown)
	}
}

func TestPaymentStatusWeirdValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"payment": map[string]any{"id": "p1", "status": "on-fire"},
		})
	}))
	defer srv.Close()

	_, status, err := newTestClient(srv.URL).PaymentStatus(context.Background(), "ref")
	if err == nil || status != StatusUnknown {
		t.Fatalf("unexpected gateway status must map to unknown, got %q err=%v", status, err)
	}
}
