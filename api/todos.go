package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/osr-alliance/backend-svc-dashboard/todo"
)

func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var body struct {
		Text      string `json:"text"`
		Frequency string `json:"frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	if err := h.todos.Add(r.Context(), userID, body.Text, body.Frequency); err != nil {
		writeError(w, err)
		return
	}

	// blank text is silently dropped, so just return the current list
	todos, err := h.todos.List(r.Context(), userID, "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	frequency := r.URL.Query().Get("frequency")

	todos, err := h.todos.List(r.Context(), userID, frequency)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.todos.Summarize(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"todos":   todos,
		"summary": summary,
	})
}

func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var changes todo.Changes
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad payload"})
		return
	}

	if err := h.todos.Update(r.Context(), vars["userId"], vars["id"], changes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.todos.Delete(r.Context(), vars["userId"], vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
