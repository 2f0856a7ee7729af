package utils

import (
	"strings"
	"unicode"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify turns "Tunis Classique" into "tunis-classique" for tour URLs.
func Slugify(s string) string {
	s = RemoveAccents(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// RemoveAccents strips combining marks so "Gabès" matches "gabes".
func RemoveAccents(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'à' && r <= 'å':
			b.WriteByte('a')
		case r == 'ç':
			b.WriteByte('c')
		case r >= 'è' && r <= 'ë':
			b.WriteByte('e')
		case r >= 'ì' && r <= 'ï':
			b.WriteByte('i')
		case r >= 'ò' && r <= 'ö':
			b.WriteByte('o')
		case r >= 'ù' && r <= 'ü':
			b.WriteByte('u')
		case unicode.Is(unicode.Mn, r):
			// drop combining marks from pre-decomposed input
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitCSV splits comma/semicolon separated values into cleaned slices.
func SplitCSV(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinCSV is the storage-side inverse of SplitCSV.
func JoinCSV(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			clean = append(clean, it)
		}
	}
	return strings.Join(clean, ",")
}
