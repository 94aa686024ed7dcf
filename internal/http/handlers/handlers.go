package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"draft-board-service/internal/app/board"
	"draft-board-service/internal/app/profile"
	"draft-board-service/internal/app/reports"
	"draft-board-service/internal/loader"
	"draft-board-service/internal/logging"
	"draft-board-service/internal/metrics"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	board    *board.Service
	profiles *profile.Service
	reports  *reports.Service
	logger   *slog.Logger
	metrics  *metrics.Recorder
	statusFn func() loader.Status
}

// NewHandler constructs a Handler.
func NewHandler(boardSvc *board.Service, profileSvc *profile.Service, reportSvc *reports.Service, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() loader.Status) *Handler {
	return &Handler{
		board:    boardSvc,
		profiles: profileSvc,
		reports:  reportSvc,
		logger:   logger,
		metrics:  recorder,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches by path; player routes carry the id as a path segment.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/board" || r.URL.Path == "/players":
		h.Board(w, r)
	case r.URL.Path == "/players/lookup":
		h.Lookup(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.playerSubtree(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic; the dataset loads once at startup, so
// a failed load keeps this at 503 for the life of the process.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Board serves the combined, filtered, sorted big board.
func (h *Handler) Board(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := board.Query{
		Search:    r.URL.Query().Get("search"),
		SortKey:   r.URL.Query().Get("sort"),
		Direction: board.Direction(r.URL.Query().Get("dir")),
	}
	resp, err := h.board.Board(query)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served board",
			slog.Int(logging.FieldCount, resp.Count),
			slog.String("sort", query.SortKey),
			slog.String("search", query.Search),
		)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Lookup resolves a player by (possibly misspelled) name.
func (h *Handler) Lookup(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing name parameter", h.logger)
		return
	}

	bio, err := h.profiles.LookupByName(name)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, bio, h.logger)
}

// playerSubtree routes /players/{id} and /players/{id}/reports.
func (h *Handler) playerSubtree(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	segments := strings.Split(strings.Trim(rest, "/"), "/")

	id, err := strconv.Atoi(segments[0])
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	switch {
	case len(segments) == 1:
		h.Profile(w, r, id)
	case len(segments) == 2 && segments[1] == "reports":
		h.Reports(w, r, id)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Profile serves the single-player payload, optionally filtered to a season.
func (h *Handler) Profile(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
			return
		}
		season = parsed
	}

	p, err := h.profiles.Profile(id, season)
	if errors.Is(err, profile.ErrPlayerNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served profile", slog.Int(logging.FieldPlayerID, id))
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// Reports serves GET (current ledger) and POST (add a report).
func (h *Handler) Reports(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	switch r.Method {
	case nethttp.MethodGet:
		h.listReports(w, r, id)
	case nethttp.MethodPost:
		h.addReport(w, r, id)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) listReports(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	ledger, err := h.reports.Ledger(id)
	if errors.Is(err, reports.ErrPlayerNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"count": len(ledger), "reports": ledger}, h.logger)
}

type addReportRequest struct {
	Scout  string `json:"scout"`
	Report string `json:"report"`
}

func (h *Handler) addReport(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	var req addReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.reports.Add(id, req.Scout, req.Report)
	switch {
	case errors.Is(err, reports.ErrPlayerNotFound):
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	case errors.Is(err, reports.ErrEmptyReport):
		writeError(w, r, nethttp.StatusBadRequest, "report body must not be empty", h.logger)
		return
	case err != nil:
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordReportAdded()
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("report added", slog.Int(logging.FieldPlayerID, id))
	}
	writeJSON(w, nethttp.StatusCreated, created, h.logger)
}
