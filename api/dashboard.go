package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
	"github.com/osr-alliance/backend-svc-dashboard/todo"
)

// DashboardResponse is one evaluation tick for one user.
type DashboardResponse struct {
	Today         string                 `json:"today"`
	DueToday      []*dashboard.Lead      `json:"due_today"`
	Overdue       []dashboard.RankedLead `json:"overdue"`
	MeetingsToday []*dashboard.Lead      `json:"meetings_today"`
	TodoSummary   todo.Summary           `json:"todo_summary"`
	Reminders     []dashboard.Reminder   `json:"reminders"`
}

// Dashboard runs the evaluation tick: loads the user's leads and todo
// summary, classifies against a single "today", ranks the overdue set and
// lets the reminder gate decide what to emit. Reminder trouble never takes
// the classification results down with it.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["userId"]

	var (
		leads   []*dashboard.Lead
		summary todo.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = h.store.ListLeadsForUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.todos.Summarize(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(w, err)
		return
	}

	// one "today" for the whole pass so the views can't straddle midnight
	today := dashboard.Today(h.now())

	resp := &DashboardResponse{
		Today:         today,
		DueToday:      dashboard.DueToday(leads, userID, today),
		MeetingsToday: dashboard.MeetingsToday(leads, userID, today),
		TodoSummary:   summary,
	}
	resp.Overdue = dashboard.RankOverdue(dashboard.Overdue(leads, userID, today), today)
	resp.Reminders = h.gate.CheckTodaysFollowUps(leads, userID, today)

	writeJSON(w, http.StatusOK, resp)
}
