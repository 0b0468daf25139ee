package store

import "fmt"

/*
	Declarative query registry for the leads table. Cache keys use the same
	shape as the rest of the alliance services: service:table|field:value.
	NOTE: use %v for the dynamic part and make sure every write query ends
	with RETURNING * so the cache can be refreshed from the row that
	actually landed.
*/

const (
	// 7 days
	defaultTTL = 3600 * 24 * 7
)

const (
	leadKeyTemplate      = "dashboard:leads|lead_id:%v"
	userLeadsKeyTemplate = "dashboard:leads|user_id:%v"
)

func leadKey(id string) string {
	return fmt.Sprintf(leadKeyTemplate, id)
}

func userLeadsKey(userID string) string {
	return fmt.Sprintf(userLeadsKeyTemplate, userID)
}

const leadSelectByID = `select * from leads where lead_id=:lead_id`

// Both assignment relations feed the per-user list: a user must see leads
// they own and leads whose meeting was delegated to them.
const leadsSelectByUser = `select * from leads
where assigned_user_id=:user_id or meeting_assigned_user_id=:user_id
order by created_at`

const leadInsert = `INSERT INTO leads
(lead_id, full_name, phone, status, assigned_user_id, meeting_assigned_user_id,
 follow_up_date, follow_up_time, notes,
 meeting_date, meeting_time, meeting_location, meeting_description, meeting_status,
 requirement)
VALUES
(:lead_id, :full_name, :phone, :status, :assigned_user_id, :meeting_assigned_user_id,
 :follow_up_date, :follow_up_time, :notes,
 :meeting_date, :meeting_time, :meeting_location, :meeting_description, :meeting_status,
 :requirement) RETURNING *`

const leadUpdateStatus = `update leads set status=:status
where lead_id=:lead_id RETURNING *`

const leadUpdateNotes = `update leads set notes=:notes
where lead_id=:lead_id RETURNING *`

const leadUpdateRequirement = `update leads set requirement=:requirement
where lead_id=:lead_id RETURNING *`

const leadUpdateFollowUp = `update leads
set follow_up_date=:follow_up_date, follow_up_time=:follow_up_time
where lead_id=:lead_id RETURNING *`

const leadUpdateMeeting = `update leads
set meeting_assigned_user_id=:meeting_assigned_user_id, meeting_date=:meeting_date,
    meeting_time=:meeting_time, meeting_location=:meeting_location,
    meeting_description=:meeting_description, meeting_status=:meeting_status
where lead_id=:lead_id RETURNING *`
