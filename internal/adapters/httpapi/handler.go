// Package httpapi exposes a read-only JSON view of hostings for dashboards
// and health checks.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"hostbot/internal/domain"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/input"
)

type Handler struct {
	hostingUseCase input.HostingUseCase
	requestUseCase input.HostingRequestUseCase
}

func NewHandler(hostingUseCase input.HostingUseCase, requestUseCase input.HostingRequestUseCase) *Handler {
	return &Handler{hostingUseCase: hostingUseCase, requestUseCase: requestUseCase}
}

// Router mounts the handlers with the usual chi middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	r.Get("/health", h.Health)
	r.Get("/events/{eventID}/hostings", h.ListHostings)
	r.Get("/events/{eventID}/eligibility", h.Eligibility)
	r.Get("/hostings/{hostingID}", h.GetHosting)
	r.Get("/hostings/{hostingID}/places", h.Places)
	return r
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// EligibilityResponse is the verdict map of one user on one event.
type EligibilityResponse struct {
	EventID            uint                         `json:"event_id"`
	UserID             string                       `json:"user_id"`
	AcceptedHostingIDs []uint                       `json:"accepted_hosting_ids"`
	Verdicts           map[uint]eligibility.Verdict `json:"verdicts"`
	Divergence         *eligibility.Divergence      `json:"divergence,omitempty"`
}

// HostingView is the public JSON shape of a hosting.
type HostingView struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"event_id"`
	HostID        string    `json:"host_id"`
	HostName      string    `json:"host_name,omitempty"`
	AvailableBeds int       `json:"available_beds"`
	CustomRules   string    `json:"custom_rules,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toHostingView(hosting *entities.Hosting) HostingView {
	return HostingView{
		ID:            hosting.ID,
		EventID:       hosting.EventID,
		HostID:        hosting.HostID,
		HostName:      hosting.HostName,
		AvailableBeds: hosting.AvailableBeds,
		CustomRules:   hosting.CustomRules,
		Address:       hosting.Address(),
		CreatedAt:     hosting.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := domain.Code(err)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotAvailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrHostingNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		status = http.StatusNotFound
	}
	if code == "" {
		code = "internal"
		log.Printf("❌ http: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: code, Message: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: msg})
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// parseIDList parses "1,2,3". An empty string is an empty list.
func parseIDList(s string) ([]uint, bool) {
	ids := []uint{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, ok := parseID(part)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListHostings handles GET /events/{eventID}/hostings
// Returns the active hostings of the event, oldest first.
func (h *Handler) ListHostings(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseID(chi.URLParam(r, "eventID"))
	if !ok {
		badRequest(w, "invalid event id")
		return
	}
	hostings, err := h.hostingUseCase.ListForEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]HostingView, 0, len(hostings))
	for i := range hostings {
		views = append(views, toHostingView(&hostings[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetHosting handles GET /hostings/{hostingID}
func (h *Handler) GetHosting(w http.ResponseWriter, r *http.Request) {
	hostingID, ok := parseID(chi.URLParam(r, "hostingID"))
	if !ok {
		badRequest(w, "invalid hosting id")
		return
	}
	hosting, err := h.hostingUseCase.GetHosting(r.Context(), hostingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHostingView(hosting))
}

// Eligibility handles GET /events/{eventID}/eligibility?user=<id>&accepted=1,2
// Without the accepted parameter the accepted hostings are read from the
// ledger; with it they are taken as given and checked against the ledger.
func (h *Handler) Eligibility(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseID(chi.URLParam(r, "eventID"))
	if !ok {
		badRequest(w, "invalid event id")
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("user"))
	if userID == "" {
		badRequest(w, "user is required")
		return
	}

	ctx := r.Context()
	if _, err := h.hostingUseCase.GetEvent(ctx, eventID); err != nil {
		writeError(w, err)
		return
	}

	var accepted []uint
	if raw, given := r.URL.Query()["accepted"]; given {
		accepted, ok = parseIDList(strings.Join(raw, ","))
		if !ok {
			badRequest(w, "accepted must be a comma separated list of ids")
			return
		}
	} else {
		var err error
		accepted, err = h.requestUseCase.AcceptedHostingIDs(ctx, eventID, userID)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	ov, err := h.requestUseCase.Overview(ctx, eventID, userID, accepted)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := EligibilityResponse{
		EventID:            eventID,
		UserID:             userID,
		AcceptedHostingIDs: accepted,
		Verdicts:           ov.Verdicts,
	}
	if resp.AcceptedHostingIDs == nil {
		resp.AcceptedHostingIDs = []uint{}
	}
	if d := eligibility.Reconcile(eventID, ov.MyRequests, accepted); !d.Empty() {
		resp.Divergence = &d
	}
	writeJSON(w, http.StatusOK, resp)
}

// Places handles GET /hostings/{hostingID}/places
func (h *Handler) Places(w http.ResponseWriter, r *http.Request) {
	hostingID, ok := parseID(chi.URLParam(r, "hostingID"))
	if !ok {
		badRequest(w, "invalid hosting id")
		return
	}
	places, err := h.hostingUseCase.AvailablePlaces(r.Context(), hostingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, places)
}
