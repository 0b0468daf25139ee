package dashboard

/*
	The three classifier views. All of them are pure: they take the full
	lead snapshot, a user and a precomputed "today", and return matching
	leads in input order. The caller computes today *once* per evaluation
	pass and hands the same value to every call, otherwise a pass that
	straddles midnight could have DueToday and Overdue disagreeing about
	what day it is.
*/

// needsFollowUp is the status gate shared by DueToday and Overdue.
func needsFollowUp(status string) bool {
	return status == StatusFollowUp || status == StatusSpecialFollowUp
}

// DueToday returns the user's own leads whose follow-up lands on today.
func DueToday(leads []*Lead, userID, today string) []*Lead {
	out := []*Lead{}
	for _, l := range leads {
		if !CanSeeFollowUp(l, userID) || !needsFollowUp(l.Status) {
			continue
		}
		if d := NormalizeDate(l.FollowUpDate); d != "" && d == today {
			out = append(out, l)
		}
	}
	return out
}

// Overdue returns the user's own leads whose follow-up date has passed.
// Canonical dates are zero-padded YYYY-MM-DD, so the string comparison
// below is exactly chronological order.
func Overdue(leads []*Lead, userID, today string) []*Lead {
	out := []*Lead{}
	for _, l := range leads {
		if !CanSeeFollowUp(l, userID) || !needsFollowUp(l.Status) {
			continue
		}
		if d := NormalizeDate(l.FollowUpDate); d != "" && d < today {
			out = append(out, l)
		}
	}
	return out
}

// MeetingsToday returns leads with a meeting scheduled today that the user
// may see. Status is not constrained here: a lead can carry a meeting date
// in any status. A Meeting-status lead without a meeting date falls back to
// its follow-up date; a lead with neither is simply skipped.
func MeetingsToday(leads []*Lead, userID, today string) []*Lead {
	out := []*Lead{}
	for _, l := range leads {
		if !CanSeeMeeting(l, userID) {
			continue
		}
		if d := NormalizeDate(l.EffectiveMeetingDate()); d != "" && d == today {
			out = append(out, l)
		}
	}
	return out
}
