package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
	"github.com/osr-alliance/backend-svc-dashboard/store"
)

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	lead := &dashboard.Lead{}
	if err := json.NewDecoder(r.Body).Decode(lead); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad lead payload"})
		return
	}
	if lead.FullName == "" || lead.Phone == "" || lead.AssignedUserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "full_name, phone and assigned_user_id are required"})
		return
	}

	if err := h.store.CreateLead(r.Context(), lead); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.store.GetLeadByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.store.ListLeadsForUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *Handler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	lead, err := h.store.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) UpdateLeadNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	lead, err := h.store.UpdateNotes(r.Context(), mux.Vars(r)["id"], body.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) UpdateLeadRequirement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Requirement string `json:"requirement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	lead, err := h.store.UpdateRequirement(r.Context(), mux.Vars(r)["id"], body.Requirement)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) UpdateLeadFollowUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FollowUpDate string `json:"follow_up_date"`
		FollowUpTime string `json:"follow_up_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	lead, err := h.store.UpdateFollowUp(r.Context(), mux.Vars(r)["id"], body.FollowUpDate, body.FollowUpTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) UpdateLeadMeeting(w http.ResponseWriter, r *http.Request) {
	var body store.MeetingUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	lead, err := h.store.UpdateMeeting(r.Context(), mux.Vars(r)["id"], body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
