package domain

import (
	"context"
	"encoding/json"
)

// ChartKind is the type tag carried by chart objects embedded in model replies
type ChartKind string

const (
	// KindTerritoryTrend is a weekly revenue/occupancy/ADR trend line
	KindTerritoryTrend ChartKind = "line_chart"
	// KindRevenueOpportunity ranks hotels by revenue potential
	KindRevenueOpportunity ChartKind = "bar_chart"
	// KindMarketSnapshot is a point-in-time competitive snapshot
	KindMarketSnapshot ChartKind = "market_data"
	// KindCoachingMetrics scores the manager's territory performance
	KindCoachingMetrics ChartKind = "coaching_metrics"
)

// chartSlots binds each kind to its fixed dashboard slot
var chartSlots = map[ChartKind]string{
	KindTerritoryTrend:     "territory-performance",
	KindRevenueOpportunity: "revenue-opportunities",
	KindMarketSnapshot:     "market-intelligence",
	KindCoachingMetrics:    "performance-coach",
}

// Valid reports whether k is one of the recognized chart kinds
func (k ChartKind) Valid() bool {
	_, ok := chartSlots[k]
	return ok
}

// Slot returns the dashboard slot name bound to this kind, or "" if unknown
func (k ChartKind) Slot() string {
	return chartSlots[k]
}

// ChartSlots returns all slot names in display order
func ChartSlots() []string {
	return []string{
		KindTerritoryTrend.Slot(),
		KindRevenueOpportunity.Slot(),
		KindMarketSnapshot.Slot(),
		KindCoachingMetrics.Slot(),
	}
}

// KindForSlot returns the chart kind bound to a slot name
func KindForSlot(slot string) (ChartKind, bool) {
	for kind, s := range chartSlots {
		if s == slot {
			return kind, true
		}
	}
	return "", false
}

// ChartUpdate is one extracted chart payload. Payload is the kind-specific
// data object, kept raw; the rendering layer owns its interpretation.
type ChartUpdate struct {
	Kind    ChartKind       `json:"type"`
	Payload json.RawMessage `json:"data"`
}

// TerritoryTrendPayload is the expected shape for line_chart data
type TerritoryTrendPayload struct {
	Labels    []string  `json:"labels"`
	Revenue   []float64 `json:"revenue"`
	Occupancy []float64 `json:"occupancy"`
	ADR       []float64 `json:"adr"`
}

// RevenueOpportunityPayload is the expected shape for bar_chart data
type RevenueOpportunityPayload struct {
	Hotels     []string  `json:"hotels"`
	Potential  []float64 `json:"potential"`
	Confidence []float64 `json:"confidence"`
}

// MarketSnapshotPayload is the expected shape for market_data
type MarketSnapshotPayload struct {
	CompetitorOccupancy float64 `json:"competitor_occupancy"`
	MarketADR           float64 `json:"market_adr"`
	FlightSearches      string  `json:"flight_searches"`
	BookingPace         string  `json:"booking_pace"`
}

// CoachingMetricsPayload is the expected shape for coaching_metrics
type CoachingMetricsPayload struct {
	TerritoryGrowth   string  `json:"territory_growth"`
	VsPeerAvg         string  `json:"vs_peer_avg"`
	OptimizationScore float64 `json:"optimization_score"`
	WeeklyCalls       float64 `json:"weekly_calls"`
}

// ChartPublisher receives extracted chart-update batches for delivery to
// connected dashboards. Publishing is best-effort enrichment; failures must
// not abort the chat turn.
type ChartPublisher interface {
	Publish(ctx context.Context, updates []ChartUpdate) error
}
