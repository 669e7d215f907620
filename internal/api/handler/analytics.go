package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/advisor"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/api/response"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// AnalyticsHandler handles chart refresh and dashboard summary endpoints
type AnalyticsHandler struct {
	service *advisor.Service
	devMode bool
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *advisor.Service, devMode bool) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, devMode: devMode}
}

// GenerateChart regenerates the data for one dashboard slot
func (h *AnalyticsHandler) GenerateChart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChartType string `json:"chartType" validate:"required"`
		UserQuery string `json:"userQuery"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	charts, err := h.service.GenerateChart(r.Context(), req.ChartType, req.UserQuery)
	if err != nil {
		writeServiceError(w, err, "failed to generate chart data", h.devMode)
		return
	}

	if len(charts) == 0 {
		response.NotFound(w, "no chart data generated")
		return
	}

	response.OK(w, map[string]any{
		"chartType": req.ChartType,
		"data":      charts,
		"timestamp": time.Now().UTC(),
	})
}

// DashboardSummary returns an LLM-generated territory overview
func (h *AnalyticsHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.DashboardSummary(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to generate dashboard summary", h.devMode)
		return
	}

	response.OK(w, summary)
}

// ListSlots returns the fixed chart slots and the kind bound to each
func (h *AnalyticsHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots := make([]map[string]string, 0, 4)
	for _, slot := range domain.ChartSlots() {
		kind, _ := domain.KindForSlot(slot)
		slots = append(slots, map[string]string{
			"slot": slot,
			"type": string(kind),
		})
	}
	response.OK(w, map[string]any{"availableCharts": slots})
}
