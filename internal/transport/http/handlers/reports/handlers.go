// Package reportshandler exposes report generation and the reference
// catalogs over HTTP.
package reportshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pmreport/internal/domain/refcache"
	"pmreport/internal/domain/report"
	"pmreport/internal/platform/metrics"
	"pmreport/internal/transport/http/api"
	"pmreport/internal/transport/http/middleware"
)

type Handler struct {
	Service  *report.Service
	Provider report.Provider
	Metrics  *metrics.Collector
}

func NewHandler(service *report.Service, provider report.Provider, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Provider: provider, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/", h.handleGenerate)
		r.Get("/reference", h.handleReference)
		r.Post("/selection", h.handleSelection)
		r.Get("/roles", h.handleRoles)
		r.Get("/statuses", h.handleStatuses)
		r.Get("/managers", h.handleManagers)
	})
}

type criteriaPayload struct {
	Status    string   `json:"status"`
	ManagerID *int     `json:"managerId"`
	Overdue   string   `json:"overdue"`
	MinRate   *float64 `json:"minRate"`
	MaxRate   *float64 `json:"maxRate"`
}

func (p criteriaPayload) toCriteria() (report.Criteria, error) {
	overdue, err := report.ParseOverdueFilter(p.Overdue)
	if err != nil {
		return report.Criteria{}, err
	}
	return report.Criteria{
		Status:    p.Status,
		ManagerID: p.ManagerID,
		Overdue:   overdue,
		MinRate:   p.MinRate,
		MaxRate:   p.MaxRate,
	}, nil
}

type generatePayload struct {
	Kind      string          `json:"kind"`
	EntityIDs []int           `json:"entityIds"`
	Criteria  criteriaPayload `json:"criteria"`
	FileName  string          `json:"fileName"`
	Directory string          `json:"directory"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", reqID)
		return
	}

	kind, err := report.ParseKind(payload.Kind)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
		return
	}
	criteria, err := payload.Criteria.toCriteria()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
		return
	}

	path, err := h.Service.Generate(r.Context(), report.Request{
		Kind:      kind,
		EntityIDs: payload.EntityIDs,
		Criteria:  criteria,
		FileName:  payload.FileName,
		Directory: payload.Directory,
	})
	if h.Metrics != nil {
		h.Metrics.RecordReport(err != nil)
	}
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}

	api.Created(w, map[string]any{"path": path}, reqID)
}

type entryPayload struct {
	refcache.Entry
	Label string `json:"label"`
}

func entryPayloads(entries []refcache.Entry) []entryPayload {
	out := make([]entryPayload, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryPayload{Entry: entry, Label: entry.Label()})
	}
	return out
}

func (h *Handler) handleReference(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	kind, err := report.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
		return
	}

	cache, err := refcache.Build(r.Context(), h.Provider, kind)
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}
	api.Success(w, entryPayloads(cache.Entries()), reqID)
}

type selectionPayload struct {
	Kind      string          `json:"kind"`
	Search    string          `json:"search"`
	Status    string          `json:"status"`
	ManagerID *int            `json:"managerId"`
	Overdue   string          `json:"overdue"`
	MinRate   *float64        `json:"minRate"`
	MaxRate   *float64        `json:"maxRate"`
	Roles     map[string]bool `json:"roles"`
}

func (h *Handler) handleSelection(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload selectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", reqID)
		return
	}

	kind, err := report.ParseKind(payload.Kind)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
		return
	}
	overdue, err := report.ParseOverdueFilter(payload.Overdue)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
		return
	}

	cache, err := refcache.Build(r.Context(), h.Provider, kind)
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}

	entries := cache.Filter(refcache.Selection{
		Search:    payload.Search,
		Status:    payload.Status,
		ManagerID: payload.ManagerID,
		Overdue:   overdue,
		MinRate:   payload.MinRate,
		MaxRate:   payload.MaxRate,
		Roles:     payload.Roles,
	})
	api.Success(w, entryPayloads(entries), reqID)
}

type rolePayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	roles, err := h.Provider.Roles(r.Context())
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}

	out := make([]rolePayload, 0, len(roles))
	for _, role := range roles {
		out = append(out, rolePayload{ID: role.ID, Name: role.Name, Label: report.RoleLabel(role.Name)})
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleStatuses(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	statuses, err := h.Provider.Statuses(r.Context())
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}
	api.Success(w, statuses, reqID)
}

func (h *Handler) handleManagers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	managers, err := h.Provider.Managers(r.Context())
	if err != nil {
		h.failFromError(w, err, reqID)
		return
	}
	api.Success(w, managers, reqID)
}

func (h *Handler) failFromError(w http.ResponseWriter, err error, reqID string) {
	var validationErr *report.ValidationError
	var storageErr *report.StorageError
	var renderErr *report.RenderingError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, report.ErrUnknownKind),
		errors.Is(err, report.ErrNoEntities):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
	case errors.As(err, &storageErr):
		slog.Error("report storage failure", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "storage_error", "report data could not be loaded", reqID)
	case errors.As(err, &renderErr):
		slog.Error("report rendering failure", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "render_error", "report file could not be written", reqID)
	default:
		slog.Error("report request failure", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", reqID)
	}
}
