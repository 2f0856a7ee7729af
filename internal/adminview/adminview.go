// Package adminview keeps track of when an administrator last opened each
// back-office section, so the dashboard can badge new bookings since then.
// State lives in Redis and survives API restarts.
package adminview

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sections the back office badges.
const (
	SectionTransfers = "transfers"
	SectionDisposals = "disposals"
	SectionTours     = "tours"
	SectionCustomers = "customers"
)

var validSections = map[string]bool{
	SectionTransfers: true,
	SectionDisposals: true,
	SectionTours:     true,
	SectionCustomers: true,
}

func ValidSection(s string) bool { return validSections[s] }

type Tracker struct {
	RDB *redis.Client
}

func key(section string) string { return "adminview:last:" + section }

// MarkViewed records now as the last time section was opened.
func (t Tracker) MarkViewed(ctx context.Context, section string) error {
	if t.RDB == nil {
		return nil
	}
	return t.RDB.Set(ctx, key(section), time.Now().UTC().Format(time.RFC3339), 0).Err()
}

// LastViewed returns the stored timestamp, or the zero time when the section
// was never opened (everything counts as new then).
func (t Tracker) LastViewed(ctx context.Context, section string) (time.Time, error) {
	if t.RDB == nil {
		return time.Time{}, nil
	}
	raw, err := t.RDB.Get(ctx, key(section)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return ts, nil
}

// All returns the last-viewed timestamp per known section.
func (t Tracker) All(ctx context.Context) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(validSections))
	for section := range validSections {
		ts, err := t.LastViewed(ctx, section)
		if err != nil {
			return nil, err
		}
		out[section] = ts
	}
	return out, nil
}
