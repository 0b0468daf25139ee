// Package api exposes the dashboard over HTTP. Handlers hold interfaces,
// decode JSON, and leave all classification rules to the dashboard package.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
	"github.com/osr-alliance/backend-svc-dashboard/store"
	"github.com/osr-alliance/backend-svc-dashboard/todo"
)

type Handler struct {
	store store.Store
	todos *todo.Store
	gate  *dashboard.ReminderGate
	now   func() time.Time
}

type Config struct {
	Store store.Store
	Todos *todo.Store
	Gate  *dashboard.ReminderGate

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func New(conf *Config) *Handler {
	now := conf.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store: conf.Store,
		todos: conf.Todos,
		gate:  conf.Gate,
		now:   now,
	}
}

// Register wires every route onto the router.
func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/dashboard/{userId}", h.Dashboard).Methods(http.MethodGet)

	router.HandleFunc("/leads", h.CreateLead).Methods(http.MethodPost)
	router.HandleFunc("/leads/{id}", h.GetLead).Methods(http.MethodGet)
	router.HandleFunc("/leads/{id}/status", h.UpdateLeadStatus).Methods(http.MethodPut)
	router.HandleFunc("/leads/{id}/notes", h.UpdateLeadNotes).Methods(http.MethodPut)
	router.HandleFunc("/leads/{id}/requirement", h.UpdateLeadRequirement).Methods(http.MethodPut)
	router.HandleFunc("/leads/{id}/followup", h.UpdateLeadFollowUp).Methods(http.MethodPut)
	router.HandleFunc("/leads/{id}/meeting", h.UpdateLeadMeeting).Methods(http.MethodPut)
	router.HandleFunc("/users/{userId}/leads", h.ListLeads).Methods(http.MethodGet)

	router.HandleFunc("/users/{userId}/todos", h.CreateTodo).Methods(http.MethodPost)
	router.HandleFunc("/users/{userId}/todos", h.ListTodos).Methods(http.MethodGet)
	router.HandleFunc("/users/{userId}/todos/{id}", h.UpdateTodo).Methods(http.MethodPut)
	router.HandleFunc("/users/{userId}/todos/{id}", h.DeleteTodo).Methods(http.MethodDelete)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logrus.WithError(err).Warn("writing response")
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	logrus.WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
