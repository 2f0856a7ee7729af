package pricing

import (
	"testing"
	"time"

	"navetteclub/internal/utils"
)

func TestTourTotalExactCents(t *testing.T) {
	// 50€ adult / 20€ child, 2 adults + 1 child → 120.00
	child := int64(2000)
	total := TourTotalCents(5000, &child, 2, 1)
	if total != 12000 {
		t.Fatalf("total = %d cents, want 12000", total)
	}
	if got := utils.FormatEuro(total); got != "120.00" {
		t.Fatalf("formatted total = %q, want %q", got, "120.00")
	}
}

func TestTourTotalMissingChildPrice(t *testing.T) {
	// No child price: children contribute zero regardless of count.
	if total := TourTotalCents(5000, nil, 1, 5); total != 5000 {
		t.Fatalf("total = %d, want 5000", total)
	}
}

func TestTourTotalNoDrift(t *testing.T) {
	// 19.99€ * 3 must be exactly 59.97, a classic float trap.
	if total := TourTotalCents(1999, nil, 3, 0); total != 5997 {
		t.Fatalf("total = %d, want 5997", total)
	}
}

func TestTransferTotalRounding(t *testing.T) {
	// 1.235€/km over 10.5 km = 12.9675€ → 12.97, plus base 30.00
	total := TransferTotalCents(3000, 123, 10.5)
	// 123 * 10.5 = 1291.5 → 1292
	if total != 4292 {
		t.Fatalf("total = %d, want 4292", total)
	}
}

func TestDisposalTotal(t *testing.T) {
	if total := DisposalTotalCents(4500, 4); total != 18000 {
		t.Fatalf("total = %d, want 18000", total)
	}
}

func TestRoundTripDoubles(t *testing.T) {
	if total := RoundTripTotalCents(4292); total != 8584 {
		t.Fatalf("total = %d, want 8584", total)
	}
}

func TestSeasonWindowNormal(t *testing.T) {
	w := SeasonWindow{Name: "Été", StartDate: "06-01", EndDate: "08-31"}
	if !w.Contains(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("July should be inside the summer window")
	}
	if w.Contains(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("September should be outside the summer window")
	}
	if !w.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window start day is inclusive")
	}
	if !w.Contains(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window end day is inclusive")
	}
}

func TestSeasonWindowWrapsYearEnd(t *testing.T) {
	w := SeasonWindow{Name: "Hiver", StartDate: "12-01", EndDate: "02-28"}
	if !w.Contains(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("December should be inside the wrapping window")
	}
	if !w.Contains(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("January should be inside the wrapping window")
	}
	if w.Contains(time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("May should be outside the wrapping window")
	}
}

func TestSeasonalRate(t *testing.T) {
	windows := []SeasonWindow{
		{Name: "Été", StartDate: "06-01", EndDate: "08-31"},
		{Name: "Hiver", StartDate: "12-01", EndDate: "02-28"},
	}
	rates := []int64{150, 110}

	rate, season, ok := SeasonalRate(windows, rates, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 100)
	if !ok || rate != 150 || season != "Été" {
		t.Fatalf("summer rate = (%d,%q,%v), want (150,Été,true)", rate, season, ok)
	}

	rate, season, ok = SeasonalRate(windows, rates, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 100)
	if !ok || rate != 110 || season != "Hiver" {
		t.Fatalf("winter rate = (%d,%q,%v), want (110,Hiver,true)", rate, season, ok)
	}

	rate, _, ok = SeasonalRate(windows, rates, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 100)
	if ok || rate != 100 {
		t.Fatalf("off-season should fall back, got (%d,%v)", rate, ok)
	}
}
