package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDistanceParsesMatrixResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("origins"); got != "Tunis" {
			t.Errorf("origins = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{
				"status": "OK",
				"distance": {"text": "142 km", "value": 141950},
				"duration": {"text": "1 h 50 min", "value": 6590}
			}]}]
		}`))
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	res, err := c.Distance(context.Background(), "Tunis", "Sousse")
	if err != nil {
		t.Fatalf("Distance returned error: %v", err)
	}
	if res.DistanceKm != 141.95 {
		t.Fatalf("DistanceKm = %v, want 141.95", res.DistanceKm)
	}
	if res.DurationMinutes != 110 {
		t.Fatalf("DurationMinutes = %d, want 110", res.DurationMinutes)
	}
}

func TestDistanceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "rows": []}`))
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := c.Distance(context.Background(), "A", "B"); err == nil {
		t.Fatalf("expected error on non-OK API status")
	}
}

func TestDistanceNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`))
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := c.Distance(context.Background(), "A", "B"); err == nil {
		t.Fatalf("expected error when the element has no route")
	}
}

func TestDistanceMissingKey(t *testing.T) {
	c := &Client{}
	if _, err := c.Distance(context.Background(), "A", "B"); err == nil {
		t.Fatalf("expected error without API key")
	}
}
