package dashboard

import (
	"fmt"
	"strings"
	"time"
)

/*
	Dates arrive in whatever shape the writing client used: empty, a plain
	"2006-01-02", or a full timestamp like "2006-01-02T15:04:05Z". We only
	ever care about the calendar day, so everything funnels through
	NormalizeDate before any comparison.
*/

// NormalizeDate reduces any date-bearing string to its YYYY-MM-DD portion.
// Empty in, empty out. Never fails; junk that doesn't contain a separator
// comes back as-is and simply won't match any canonical date.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	if i := strings.IndexAny(raw, "T "); i >= 0 {
		return raw[:i]
	}
	return raw
}

// Today formats now's *local* calendar day. Don't use now.UTC() here: at
// 11 PM local the UTC day may have already rolled over, and follow-ups
// would show up a day early.
func Today(now time.Time) string {
	y, m, d := now.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}
