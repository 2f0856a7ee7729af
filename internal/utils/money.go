package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Amounts are carried as integer cents everywhere; formatting to two decimals
// happens only at the presentation boundary.

// FormatEuro renders cents as "120.00".
func FormatEuro(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseEuroToCents parses "120", "120.5" or "120.50" into cents.
func ParseEuroToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("montant vide")
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("montant invalide: %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %q", s)
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}

// CentsToMillimes converts euro cents to Tunisian millimes for the payment
// gateway (1 TND = 1000 millimes), rounding half-up.
func CentsToMillimes(cents int64, eurToTND float64) int64 {
	millimes := float64(cents) / 100.0 * eurToTND * 1000.0
	if millimes >= 0 {
		return int64(millimes + 0.5)
	}
	return int64(millimes - 0.5)
}
