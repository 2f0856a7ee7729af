// Package filters implements the admin list filters: by workflow status and
// by date bucket relative to the start of the current local day. Filters are
// pure; list handlers apply them after fetching.
package filters

import (
	"time"

	"navetteclub/internal/utils"
)

type DateBucket string

const (
	DateAll      DateBucket = "all"
	DateToday    DateBucket = "today"
	DateUpcoming DateBucket = "upcoming"
	DatePast     DateBucket = "past"
)

// ParseDateBucket falls back to "all" on unknown input rather than erroring,
// so stale query params never blank an admin list.
func ParseDateBucket(s string) DateBucket {
	switch DateBucket(s) {
	case DateToday, DateUpcoming, DatePast:
		return DateBucket(s)
	default:
		return DateAll
	}
}

// MatchStatus reports whether a booking status passes the filter.
// An empty or "all" filter passes everything.
func MatchStatus(filter, status string) bool {
	return filter == "" || filter == "all" || filter == status
}

// MatchDate reports whether a booking date (YYYY-MM-DD) falls in the bucket,
// compared against the start of "now"'s local day. Upcoming includes today;
// past is strictly before today. Unparseable dates only pass "all".
func MatchDate(bucket DateBucket, bookingDate string, now time.Time) bool {
	if bucket == DateAll {
		return true
	}
	d, err := utils.ParseDate(bookingDate)
	if err != nil {
		return false
	}
	day := utils.StartOfDay(d)
	today := utils.StartOfDay(now)

	switch bucket {
	case DateToday:
		return day.Equal(today)
	case DateUpcoming:
		return !day.Before(today)
	case DatePast:
		return day.Before(today)
	default:
		return true
	}
}

// Apply keeps the items matching keep, preserving order.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
