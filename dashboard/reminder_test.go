package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	sent []Reminder
	err  error
}

func (f *fakeDispatcher) Dispatch(r Reminder) error {
	f.sent = append(f.sent, r)
	return f.err
}

func dueLeads() []*Lead {
	return []*Lead{
		{ID: "1", FullName: "Asha Rao", Phone: "555-0101", AssignedUserID: "u1",
			Status: StatusFollowUp, FollowUpDate: "2024-01-05"},
		{ID: "2", FullName: "Ben Ortiz", Phone: "555-0102", AssignedUserID: "u1",
			Status: StatusSpecialFollowUp, FollowUpDate: "2024-01-05"},
	}
}

func TestGateEmitsOncePerLead(t *testing.T) {
	d := &fakeDispatcher{}
	g := NewReminderGate(true, PermissionGranted, d)

	first := g.CheckTodaysFollowUps(dueLeads(), "u1", today)
	require.Len(t, first, 2)
	assert.Equal(t, "followup-1", first[0].DedupKey)
	assert.True(t, first[0].RequireInteraction)
	assert.Equal(t, ReminderExpiry, first[0].Expiry)

	// same session, same set: nothing new goes out
	second := g.CheckTodaysFollowUps(dueLeads(), "u1", today)
	assert.Empty(t, second)
	assert.Len(t, d.sent, 2)
}

func TestGateResetClearsDedup(t *testing.T) {
	g := NewReminderGate(true, PermissionGranted, &fakeDispatcher{})

	require.Len(t, g.CheckTodaysFollowUps(dueLeads(), "u1", today), 2)
	g.Reset()
	assert.Len(t, g.CheckTodaysFollowUps(dueLeads(), "u1", today), 2)
}

func TestGateGuardMatrix(t *testing.T) {
	cases := []struct {
		name       string
		support    bool
		permission Permission
		wantEmit   bool
	}{
		{"no support", false, PermissionGranted, false},
		{"denied", true, PermissionDenied, false},
		{"unrequested", true, PermissionUnrequested, false},
		{"granted", true, PermissionGranted, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := &fakeDispatcher{}
			g := NewReminderGate(c.support, c.permission, d)
			got := g.CheckTodaysFollowUps(dueLeads(), "u1", today)
			if c.wantEmit {
				assert.NotEmpty(t, got)
			} else {
				assert.Empty(t, got)
				assert.Empty(t, d.sent)
			}
		})
	}
}

func TestGatePermissionPinnedWithoutSupport(t *testing.T) {
	g := NewReminderGate(false, PermissionUnrequested, nil)
	assert.Equal(t, PermissionDenied, g.Permission())

	// requesting must stay a no-op; there is nothing to grant here
	g.RequestPermission(func() Permission { return PermissionGranted })
	assert.Equal(t, PermissionDenied, g.Permission())
}

func TestGateRequestPermissionResolvesOnce(t *testing.T) {
	g := NewReminderGate(true, PermissionUnrequested, nil)

	calls := 0
	decide := func() Permission {
		calls++
		return PermissionGranted
	}
	g.RequestPermission(decide)
	g.RequestPermission(decide) // already resolved, idempotent

	assert.Equal(t, PermissionGranted, g.Permission())
	assert.Equal(t, 1, calls)
}

func TestGateRequestPermissionRefusal(t *testing.T) {
	g := NewReminderGate(true, PermissionUnrequested, nil)
	g.RequestPermission(func() Permission { return PermissionDenied })
	assert.Equal(t, PermissionDenied, g.Permission())
}

func TestGateSurvivesDispatchFailure(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("notification backend down")}
	g := NewReminderGate(true, PermissionGranted, d)

	// failures are logged, not returned; the classified set is unaffected
	got := g.CheckTodaysFollowUps(dueLeads(), "u1", today)
	assert.Len(t, got, 2)
}
