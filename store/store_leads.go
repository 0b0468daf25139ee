package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
)

// ErrLeadNotFound comes back from any read or write against an id that
// isn't in the leads table.
var ErrLeadNotFound = errors.New("lead not found")

func (s *store) CreateLead(ctx context.Context, lead *dashboard.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Status == "" {
		lead.Status = dashboard.StatusPending
	}

	inserted, err := s.queryOne(ctx, s.writeConn, leadInsert, lead)
	if err != nil {
		return err
	}
	*lead = *inserted

	s.cache.set(ctx, leadKey(lead.ID), lead, defaultTTL)
	s.invalidateUserLists(ctx, lead)
	return nil
}

func (s *store) GetLeadByID(ctx context.Context, id string) (*dashboard.Lead, error) {
	lead := &dashboard.Lead{}

	err := s.cache.get(ctx, leadKey(id), lead)
	if err == nil {
		// we found the value in the cache
		return lead, nil
	}
	if err != redis.Nil {
		return nil, err
	}

	// cache miss; hit the database and backfill
	lead, err = s.queryOne(ctx, s.readConn, leadSelectByID, map[string]interface{}{"lead_id": id})
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, leadKey(id), lead, defaultTTL)
	return lead, nil
}

func (s *store) ListLeadsForUser(ctx context.Context, userID string) ([]*dashboard.Lead, error) {
	leads := []*dashboard.Lead{}

	err := s.cache.get(ctx, userLeadsKey(userID), &leads)
	if err == nil {
		return leads, nil
	}
	if err != redis.Nil {
		return nil, err
	}

	leads, err = s.queryAll(ctx, s.readConn, leadsSelectByUser, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, userLeadsKey(userID), leads, defaultTTL)
	return leads, nil
}

func (s *store) UpdateStatus(ctx context.Context, id, status string) (*dashboard.Lead, error) {
	return s.updateOne(ctx, id, leadUpdateStatus, map[string]interface{}{
		"lead_id": id,
		"status":  status,
	})
}

func (s *store) UpdateNotes(ctx context.Context, id, notes string) (*dashboard.Lead, error) {
	return s.updateOne(ctx, id, leadUpdateNotes, map[string]interface{}{
		"lead_id": id,
		"notes":   notes,
	})
}

func (s *store) UpdateRequirement(ctx context.Context, id, requirement string) (*dashboard.Lead, error) {
	return s.updateOne(ctx, id, leadUpdateRequirement, map[string]interface{}{
		"lead_id":     id,
		"requirement": requirement,
	})
}

func (s *store) UpdateFollowUp(ctx context.Context, id, date, timeOfDay string) (*dashboard.Lead, error) {
	return s.updateOne(ctx, id, leadUpdateFollowUp, map[string]interface{}{
		"lead_id":        id,
		"follow_up_date": date,
		"follow_up_time": timeOfDay,
	})
}

func (s *store) UpdateMeeting(ctx context.Context, id string, m MeetingUpdate) (*dashboard.Lead, error) {
	return s.updateOne(ctx, id, leadUpdateMeeting, map[string]interface{}{
		"lead_id":                  id,
		"meeting_assigned_user_id": m.MeetingAssignedUserID,
		"meeting_date":             m.MeetingDate,
		"meeting_time":             m.MeetingTime,
		"meeting_location":         m.MeetingLocation,
		"meeting_description":      m.MeetingDescription,
		"meeting_status":           m.MeetingStatus,
	})
}

// updateOne writes the row, refreshes the per-lead key and drops every
// per-user list the change could have touched. We grab the prior row
// first so a reassignment also clears the previous assignee's list.
func (s *store) updateOne(ctx context.Context, id, query string, arg map[string]interface{}) (*dashboard.Lead, error) {
	prior, err := s.GetLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead, err := s.queryOne(ctx, s.writeConn, query, arg)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, leadKey(id), lead, defaultTTL)
	s.invalidateUserLists(ctx, prior, lead)
	return lead, nil
}

func (s *store) invalidateUserLists(ctx context.Context, leads ...*dashboard.Lead) {
	seen := map[string]bool{}
	keys := []string{}
	for _, l := range leads {
		for _, uid := range []string{l.AssignedUserID, l.MeetingAssignedUserID} {
			if uid == "" || seen[uid] {
				continue
			}
			seen[uid] = true
			keys = append(keys, userLeadsKey(uid))
		}
	}
	if err := s.cache.invalidate(ctx, keys...); err != nil {
		d("error invalidating user lists: %+v", err)
	}
}
