package filters

import (
	"testing"
	"time"

	"navetteclub/internal/utils"
)

func TestMatchStatus(t *testing.T) {
	if !MatchStatus("all", "pending") || !MatchStatus("", "cancelled") {
		t.Fatalf("all/empty filter must pass every status")
	}
	if !MatchStatus("confirmed", "confirmed") {
		t.Fatalf("matching status must pass")
	}
	if MatchStatus("confirmed", "pending") {
		t.Fatalf("non-matching status must not pass")
	}
}

func TestMatchDateBuckets(t *testing.T) {
	now := time.Date(2025, 11, 10, 15, 30, 0, 0, time.Local)

	yesterday := "2025-11-09"
	today := "2025-11-10"
	tomorrow := "2025-11-11"

	if !MatchDate(DateUpcoming, today, now) {
		t.Fatalf("upcoming must include today")
	}
	if !MatchDate(DateUpcoming, tomorrow, now) {
		t.Fatalf("upcoming must include tomorrow")
	}
	if MatchDate(DateUpcoming, yesterday, now) {
		t.Fatalf("upcoming must exclude yesterday")
	}

	if !MatchDate(DatePast, yesterday, now) {
		t.Fatalf("past must include yesterday")
	}
	if MatchDate(DatePast, today, now) {
		t.Fatalf("past must exclude today")
	}

	if !MatchDate(DateToday, today, now) || MatchDate(DateToday, tomorrow, now) {
		t.Fatalf("today bucket must match only today")
	}

	for _, d := range []string{yesterday, today, tomorrow} {
		if !MatchDate(DateAll, d, now) {
			t.Fatalf("all bucket must pass %s", d)
		}
	}
}

func TestMatchDatePartition(t *testing.T) {
	// upcoming and past partition any valid date set exactly.
	now := time.Now()
	dates := []string{
		utils.FormatDate(now.AddDate(0, 0, -10)),
		utils.FormatDate(now.AddDate(0, 0, -1)),
		utils.FormatDate(now),
		utils.FormatDate(now.AddDate(0, 0, 1)),
		utils.FormatDate(now.AddDate(0, 1, 0)),
	}
	for _, d := range dates {
		up := MatchDate(DateUpcoming, d, now)
		past := MatchDate(DatePast, d, now)
		if up == past {
			t.Fatalf("date %s must be in exactly one of upcoming/past", d)
		}
	}
}

func TestMatchDateInvalid(t *testing.T) {
	now := time.Now()
	if MatchDate(DateUpcoming, "pas-une-date", now) {
		t.Fatalf("invalid date must not match a concrete bucket")
	}
	if !MatchDate(DateAll, "pas-une-date", now) {
		t.Fatalf("all bucket passes everything")
	}
}

func TestParseDateBucket(t *testing.T) {
	if ParseDateBucket("upcoming") != DateUpcoming {
		t.Fatalf("known bucket should parse")
	}
	if ParseDateBucket("n-importe-quoi") != DateAll {
		t.Fatalf("unknown bucket should fall back to all")
	}
	if ParseDateBucket("") != DateAll {
		t.Fatalf("empty bucket should fall back to all")
	}
}

func TestApply(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	even := Apply(nums, func(n int) bool { return n%2 == 0 })
	if len(even) != 2 || even[0] != 2 || even[1] != 4 {
		t.Fatalf("Apply returned %v", even)
	}
}
