package dashboard

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2024-03-01", "2024-03-01"},                // already canonical, unchanged
		{"2024-03-01T09:00:00Z", "2024-03-01"},      // timestamp, time dropped
		{"2024-03-01T23:59:59+05:30", "2024-03-01"}, // zone dropped too
		{"2024-03-01 09:00:00", "2024-03-01"},       // space separator
	}
	for _, c := range cases {
		if got := NormalizeDate(c.in); got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	once := NormalizeDate("2024-03-01T09:00:00Z")
	if twice := NormalizeDate(once); twice != once {
		t.Errorf("not idempotent: %q -> %q", once, twice)
	}
}

func TestTodayUsesLocalDay(t *testing.T) {
	// 11 PM on Jan 5 in a UTC-5 zone is already Jan 6 in UTC. Today must
	// still say Jan 5.
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, 1, 5, 23, 0, 0, 0, loc)

	if got := Today(now); got != "2024-01-05" {
		t.Errorf("Today = %q, want 2024-01-05", got)
	}
	if now.UTC().Day() != 6 {
		t.Fatal("test setup wrong: UTC day should have rolled over")
	}
}

func TestTodayZeroPads(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	if got := Today(now); got != "2024-03-07" {
		t.Errorf("Today = %q, want 2024-03-07", got)
	}
}
