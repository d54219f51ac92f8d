// Package api exposes HTTP handlers for the signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signup/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", root)
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the static landing page. The "/" pattern
// also catches every otherwise-unmatched path, which gets a JSON 404.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// The roster changes between requests; clients must not cache it.
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, activities)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The name segment arrives percent-decoded
// and may contain spaces, so everything up to the final slash is the name.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		h.unregister(w, r, name)
	default:
		writeDetail(w, http.StatusNotFound, "Not Found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.service.SignUp(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			writeDetail(w, http.StatusBadRequest, "Student already signed up")
		default:
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrNotSignedUp):
			writeDetail(w, http.StatusBadRequest, "Student not signed up for this activity")
		default:
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// MessageResponse confirms a successful signup or unregistration.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
