package dashboard

/*
	Two visibility rules, and they are NOT the same thing:

	- follow-up views check only the lead's owner
	- meeting views also check who the meeting was delegated to

	A meeting is routinely staffed by someone other than the lead's owner,
	so the meeting bell has to show the lead to both. The follow-up bell
	must not. Callers pick the predicate that matches their view; do not
	"unify" these two.
*/

// CanSeeFollowUp reports whether userID owns the lead. Use for follow-up
// lists and reminder dedup.
func CanSeeFollowUp(l *Lead, userID string) bool {
	return l.AssignedUserID == userID
}

// CanSeeMeeting reports whether userID owns the lead or the meeting
// scheduled on it. Use for meeting lists only.
func CanSeeMeeting(l *Lead, userID string) bool {
	return l.AssignedUserID == userID || l.MeetingAssignedUserID == userID
}
