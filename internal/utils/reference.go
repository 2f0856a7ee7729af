package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// Booking reference prefixes per product.
const (
	RefPrefixTransfer = "TR"
	RefPrefixTour     = "CT"
	RefPrefixDisposal = "DP"
)

// GenerateReference builds a human-readable booking reference such as
// TR-20251101-034567. The 6-digit sequence mixes the millisecond clock with
// two random digits; the bookings table keeps a unique index on the column
// and callers retry once on collision.
func GenerateReference(prefix string, now time.Time) string {
	ms := now.UnixMilli()
	base := ms % 10000
	seq := base*100 + int64(rand.Intn(100))
	return fmt.Sprintf("%s-%s-%06d", prefix, now.Format("20060102"), seq)
}
