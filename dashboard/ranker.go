package dashboard

import (
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Priority tiers for overdue follow-ups, most to least urgent.
const (
	TierCritical = "critical"
	TierElevated = "elevated"
	TierStandard = "standard"
)

var tierRank = map[string]int{
	TierCritical: 0,
	TierElevated: 1,
	TierStandard: 2,
}

// RankedLead pairs an overdue lead with how late it is.
type RankedLead struct {
	*Lead
	DaysOverdue int    `json:"days_overdue"`
	Tier        string `json:"tier"`
}

// DaysOverdue returns how many whole calendar days the follow-up has been
// pending, always at least 1 for a lead Overdue() already matched. Both
// sides are normalized to calendar days first, so a follow-up stamped
// yesterday 11:59 PM still counts as exactly one day.
func DaysOverdue(followUpDate, today string) int {
	from, err := time.Parse(dateLayout, NormalizeDate(followUpDate))
	if err != nil {
		return 1
	}
	to, err := time.Parse(dateLayout, today)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TierFor maps a days-overdue count to its priority tier.
func TierFor(days int) string {
	switch {
	case days >= 7:
		return TierCritical
	case days >= 3:
		return TierElevated
	default:
		return TierStandard
	}
}

// RankOverdue orders overdue leads critical first. Leads in the same tier
// keep their input order. Input is not modified.
func RankOverdue(leads []*Lead, today string) []RankedLead {
	ranked := make([]RankedLead, 0, len(leads))
	for _, l := range leads {
		days := DaysOverdue(l.FollowUpDate, today)
		ranked = append(ranked, RankedLead{
			Lead:        l,
			DaysOverdue: days,
			Tier:        TierFor(days),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return tierRank[ranked[i].Tier] < tierRank[ranked[j].Tier]
	})
	return ranked
}
