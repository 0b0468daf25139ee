package dashboard

import "time"

// Lead statuses. These mirror the values stored in the leads table; don't
// rename them without a data migration.
const (
	StatusPending         = "Pending"
	StatusFollowUp        = "Follow-up"
	StatusSpecialFollowUp = "Special Follow-up"
	StatusConfirmed       = "Confirmed"
	StatusNotConnected    = "Not Connected"
	StatusInterested      = "Interested"
	StatusNotInterested   = "Not-Interested"
	StatusMeeting         = "Meeting"
)

// Meeting statuses.
const (
	MeetingPending      = "pending"
	MeetingConducted    = "conducted"
	MeetingNotConducted = "not_conducted"
)

// Lead is a read-only snapshot of a row from the lead store. The dashboard
// classifies leads but never mutates them; all writes go through the store.
type Lead struct {
	ID       string `json:"lead_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`

	// AssignedUserID owns the lead. MeetingAssignedUserID owns a scheduled
	// meeting and may be a different person (meetings get delegated).
	AssignedUserID        string `json:"assigned_user_id"`
	MeetingAssignedUserID string `json:"meeting_assigned_user_id,omitempty"`

	// FollowUpDate may be a plain date or a full date-time string depending
	// on which client wrote it. Always run it through NormalizeDate.
	FollowUpDate string `json:"follow_up_date,omitempty"`
	FollowUpTime string `json:"follow_up_time,omitempty"`
	Notes        string `json:"notes,omitempty"`

	MeetingDate        string `json:"meeting_date,omitempty"`
	MeetingTime        string `json:"meeting_time,omitempty"`
	MeetingLocation    string `json:"meeting_location,omitempty"`
	MeetingDescription string `json:"meeting_description,omitempty"`
	MeetingStatus      string `json:"meeting_status,omitempty"`

	Requirement string `json:"requirement,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EffectiveMeetingDate returns the raw date a meeting view should use for
// this lead: the meeting date if one is set, otherwise the follow-up date
// when the lead itself is in Meeting status. Empty means no meeting.
func (l *Lead) EffectiveMeetingDate() string {
	if l.MeetingDate != "" {
		return l.MeetingDate
	}
	if l.Status == StatusMeeting {
		return l.FollowUpDate
	}
	return ""
}
