package dashboard

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Permission is the user-facing reminder permission state.
type Permission string

const (
	PermissionUnrequested Permission = "unrequested"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
)

// ReminderExpiry is how long a reminder stays up before it auto-dismisses
// when the user ignores it.
const ReminderExpiry = 10 * time.Second

// Reminder is what we hand to the dispatcher. Delivery itself is somebody
// else's problem; the current deployment just logs them.
type Reminder struct {
	Title              string        `json:"title"`
	Body               string        `json:"body"`
	DedupKey           string        `json:"dedup_key"`
	RequireInteraction bool          `json:"require_interaction"`
	Expiry             time.Duration `json:"expiry"`
}

// Dispatcher delivers reminders. Implementations must not assume delivery
// succeeds; the gate logs failures and moves on.
type Dispatcher interface {
	Dispatch(r Reminder) error
}

// LogDispatcher is the default Dispatcher: it only logs. Used where the
// hosting environment has real notifications disabled.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(r Reminder) error {
	logrus.WithFields(logrus.Fields{
		"dedup_key": r.DedupKey,
		"title":     r.Title,
	}).Info("reminder")
	return nil
}

/*
	ReminderGate decides whether reminders may go out at all. Two axes:

	- supportAvailable: can this environment emit reminders, period
	- permission: unrequested / granted / denied

	Both are injected so the granted path stays reachable in tests even
	though the current deployment runs with support switched off. Dedup
	state lives for one session; call Reset on session start so a reload
	doesn't silently swallow that day's reminders.
*/
type ReminderGate struct {
	supportAvailable bool
	permission       Permission
	dispatcher       Dispatcher
	dispatched       map[string]bool
}

// NewReminderGate builds a gate. When support is unavailable the permission
// is pinned to denied no matter what was passed in; there is nothing to
// request on such a host. A nil dispatcher falls back to LogDispatcher.
func NewReminderGate(supportAvailable bool, permission Permission, d Dispatcher) *ReminderGate {
	if !supportAvailable {
		permission = PermissionDenied
	}
	if permission == "" {
		permission = PermissionUnrequested
	}
	if d == nil {
		d = LogDispatcher{}
	}
	return &ReminderGate{
		supportAvailable: supportAvailable,
		permission:       permission,
		dispatcher:       d,
		dispatched:       map[string]bool{},
	}
}

// SupportAvailable reports whether the host can emit reminders at all.
func (g *ReminderGate) SupportAvailable() bool { return g.supportAvailable }

// Permission returns the current permission state.
func (g *ReminderGate) Permission() Permission { return g.permission }

// RequestPermission resolves an unrequested permission using decide, which
// stands in for the environment's prompt. No-op without support (denied is
// final there) and no-op once already resolved, so calling it on every page
// load is fine.
func (g *ReminderGate) RequestPermission(decide func() Permission) {
	if !g.supportAvailable || g.permission != PermissionUnrequested {
		return
	}
	p := decide()
	if p != PermissionGranted {
		p = PermissionDenied
	}
	g.permission = p
}

// Reset clears the per-session dedup state. Call on session start.
func (g *ReminderGate) Reset() {
	g.dispatched = map[string]bool{}
}

// CheckTodaysFollowUps emits at most one reminder per due-today lead for
// the lifetime of the session and returns the reminders that went out this
// call. It does no work at all unless support is available and permission
// was granted. Dispatch failures are logged and never bubble up; the
// dashboard must keep rendering even if delivery is completely broken.
func (g *ReminderGate) CheckTodaysFollowUps(leads []*Lead, userID, today string) []Reminder {
	if !g.supportAvailable || g.permission != PermissionGranted {
		return nil
	}

	emitted := []Reminder{}
	for _, l := range DueToday(leads, userID, today) {
		key := "followup-" + l.ID
		if g.dispatched[key] {
			continue
		}
		g.dispatched[key] = true

		r := Reminder{
			Title:              "Follow-up due: " + l.FullName,
			Body:               l.FullName + " (" + l.Phone + ") is due for follow-up today",
			DedupKey:           key,
			RequireInteraction: true,
			Expiry:             ReminderExpiry,
		}
		if err := g.dispatcher.Dispatch(r); err != nil {
			logrus.WithError(err).WithField("dedup_key", key).Warn("reminder dispatch failed")
		}
		emitted = append(emitted, r)
	}
	return emitted
}
