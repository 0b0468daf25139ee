package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2024-01-05"

func ids(leads []*Lead) []string {
	out := []string{}
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

func TestDueToday(t *testing.T) {
	leads := []*Lead{
		{ID: "1", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-05"},
		{ID: "2", AssignedUserID: "u1", Status: StatusSpecialFollowUp, FollowUpDate: "2024-01-05T09:00:00Z"},
		{ID: "3", AssignedUserID: "u2", Status: StatusFollowUp, FollowUpDate: "2024-01-05"}, // other owner
		{ID: "4", AssignedUserID: "u1", Status: StatusConfirmed, FollowUpDate: "2024-01-05"}, // wrong status
		{ID: "5", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-06"},  // tomorrow
		{ID: "6", AssignedUserID: "u1", Status: StatusFollowUp},                              // no date
	}

	assert.Equal(t, []string{"1", "2"}, ids(DueToday(leads, "u1", today)))
}

func TestOverdue(t *testing.T) {
	leads := []*Lead{
		{ID: "1", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-01"},
		{ID: "2", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-05"}, // due, not overdue
		{ID: "3", AssignedUserID: "u1", Status: StatusSpecialFollowUp, FollowUpDate: "2023-12-29T18:30:00Z"},
		{ID: "4", AssignedUserID: "u1", Status: StatusFollowUp},                              // no date
		{ID: "5", AssignedUserID: "u2", Status: StatusFollowUp, FollowUpDate: "2024-01-01"}, // other owner
	}

	assert.Equal(t, []string{"1", "3"}, ids(Overdue(leads, "u1", today)))
}

func TestDueTodayAndOverdueAreDisjoint(t *testing.T) {
	l := &Lead{ID: "1", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-05"}

	assert.Len(t, DueToday([]*Lead{l}, "u1", today), 1)
	assert.Empty(t, Overdue([]*Lead{l}, "u1", today))

	l.FollowUpDate = "2024-01-04" // one day back
	assert.Empty(t, DueToday([]*Lead{l}, "u1", today))
	require.Len(t, Overdue([]*Lead{l}, "u1", today), 1)
	assert.Equal(t, 1, DaysOverdue(l.FollowUpDate, today))
}

func TestMeetingsToday(t *testing.T) {
	leads := []*Lead{
		// plain meeting on an owned lead
		{ID: "1", AssignedUserID: "u1", Status: StatusMeeting, MeetingDate: "2024-01-05"},
		// delegated meeting: visible through meetingAssignedUserId only
		{ID: "2", AssignedUserID: "u2", MeetingAssignedUserID: "u1", Status: StatusInterested, MeetingDate: "2024-01-05T10:00:00Z"},
		// Meeting status, no meeting date: falls back to follow-up date
		{ID: "3", AssignedUserID: "u1", Status: StatusMeeting, FollowUpDate: "2024-01-05"},
		// non-Meeting status must NOT fall back to follow-up date
		{ID: "4", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-05"},
		// Meeting status with neither date: skipped, not a crash
		{ID: "5", AssignedUserID: "u1", Status: StatusMeeting},
		// meeting on another day
		{ID: "6", AssignedUserID: "u1", Status: StatusMeeting, MeetingDate: "2024-01-07"},
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(MeetingsToday(leads, "u1", today)))
}

func TestVisibilityAsymmetry(t *testing.T) {
	// Delegated meeting lead: the delegate sees it in meeting views but it
	// must never leak into their follow-up views.
	l := &Lead{ID: "1", AssignedUserID: "owner", MeetingAssignedUserID: "delegate",
		Status: StatusFollowUp, FollowUpDate: "2024-01-05", MeetingDate: "2024-01-05"}

	assert.True(t, CanSeeMeeting(l, "delegate"))
	assert.False(t, CanSeeFollowUp(l, "delegate"))
	assert.True(t, CanSeeFollowUp(l, "owner"))

	assert.Empty(t, DueToday([]*Lead{l}, "delegate", today))
	assert.Len(t, MeetingsToday([]*Lead{l}, "delegate", today), 1)
}

func TestClassifiersPreserveInputOrder(t *testing.T) {
	leads := []*Lead{
		{ID: "b", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-02"},
		{ID: "a", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-01"},
		{ID: "c", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "2024-01-03"},
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids(Overdue(leads, "u1", today)))
}

func TestClassifiersToleratesMalformedDates(t *testing.T) {
	leads := []*Lead{
		{ID: "1", AssignedUserID: "u1", Status: StatusFollowUp, FollowUpDate: "not a date"},
		{ID: "2", AssignedUserID: "u1", Status: StatusMeeting, MeetingDate: "???"},
	}
	assert.Empty(t, DueToday(leads, "u1", today))
	assert.Empty(t, MeetingsToday(leads, "u1", today))
}
