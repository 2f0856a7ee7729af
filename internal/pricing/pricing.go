// Package pricing computes booking totals. All arithmetic is integer cents;
// callers format to two decimals only when rendering.
package pricing

import (
	"fmt"
	"time"
)

// TourTotalCents computes adults*price + children*childPrice. A tour without
// a child price contributes nothing per child, whatever the count.
func TourTotalCents(priceCents int64, priceChildCents *int64, adults, children int) int64 {
	total := priceCents * int64(adults)
	if priceChildCents != nil {
		total += *priceChildCents * int64(children)
	}
	return total
}

// TransferTotalCents computes base + perKm*distance. The km component is
// rounded half-up to the cent so 1.235€/km over 10.5 km stays exact.
func TransferTotalCents(basePriceCents, pricePerKmCents int64, distanceKm float64) int64 {
	km := float64(pricePerKmCents) * distanceKm
	return basePriceCents + roundHalfUp(km)
}

// DisposalTotalCents computes perHour*hours.
func DisposalTotalCents(pricePerHourCents int64, hours int) int64 {
	return pricePerHourCents * int64(hours)
}

// RoundTripTotalCents doubles a one-way transfer total.
func RoundTripTotalCents(oneWayCents int64) int64 {
	return oneWayCents * 2
}

func roundHalfUp(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// SeasonWindow is an MM-DD interval that may wrap the year end
// (e.g. 12-01 → 02-28).
type SeasonWindow struct {
	Name      string
	StartDate string // MM-DD
	EndDate   string // MM-DD
}

// Contains reports whether date falls inside the window, resolving the
// window's year against the date's year (and the neighbouring year for
// wrapping seasons).
func (w SeasonWindow) Contains(date time.Time) bool {
	year := date.Year()
	start, err1 := parseMonthDay(w.StartDate, year)
	end, err2 := parseMonthDay(w.EndDate, year)
	if err1 != nil || err2 != nil {
		return false
	}

	day := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		// Wrapping season: in the late part (>= start) or the early part (<= end).
		return !day.Before(start) || !day.After(end)
	}
	return !day.Before(start) && !day.After(end)
}

func parseMonthDay(md string, year int) (time.Time, error) {
	return time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", year, md))
}

// SeasonalRate picks the rate of the first window containing date.
// Returns (rate, seasonName, true) or (fallback, "", false) when no season is
// active.
func SeasonalRate(windows []SeasonWindow, rates []int64, date time.Time, fallback int64) (int64, string, bool) {
	for i, w := range windows {
		if i < len(rates) && w.Contains(date) {
			return rates[i], w.Name, true
		}
	}
	return fallback, "", false
}
