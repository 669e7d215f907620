package advisor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

func TestExtractCharts_ProseOnly(t *testing.T) {
	text := "Occupancy is trending up across the territory. Keep rates steady."

	display, charts := ExtractCharts(text)

	if display != text {
		t.Errorf("expected display text unchanged, got %q", display)
	}
	if len(charts) != 0 {
		t.Errorf("expected no charts, got %d", len(charts))
	}
}

func TestExtractCharts_SingleLineChart(t *testing.T) {
	text := `Revenue is strong.

{"type": "line_chart", "data": {"labels": ["Week 1", "Week 2"], "revenue": [442000, 520000], "occupancy": [78, 82], "adr": [245, 260]}}

Keep optimizing.`

	display, charts := ExtractCharts(text)

	if !strings.Contains(display, "Revenue is strong.") || !strings.Contains(display, "Keep optimizing.") {
		t.Errorf("expected surrounding prose preserved, got %q", display)
	}
	if strings.Contains(display, "{") {
		t.Errorf("expected chart object removed from display, got %q", display)
	}
	if len(charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(charts))
	}
	if charts[0].Kind != domain.KindTerritoryTrend {
		t.Errorf("expected kind %q, got %q", domain.KindTerritoryTrend, charts[0].Kind)
	}

	var payload domain.TerritoryTrendPayload
	if err := json.Unmarshal(charts[0].Payload, &payload); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	if len(payload.Labels) != 2 || payload.Revenue[1] != 520000 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestExtractCharts_WholeReplyIsObject(t *testing.T) {
	text := `{"type": "market_data", "data": {"competitor_occupancy": 76, "market_adr": 248, "flight_searches": "+12%", "booking_pace": "ahead 8%"}}`

	display, charts := ExtractCharts(text)

	if display != "" {
		t.Errorf("expected empty display text, got %q", display)
	}
	if len(charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(charts))
	}
	if charts[0].Kind != domain.KindMarketSnapshot {
		t.Errorf("expected kind %q, got %q", domain.KindMarketSnapshot, charts[0].Kind)
	}
}

func TestExtractCharts_NestedBraces(t *testing.T) {
	text := `Summary first. {"type": "bar_chart", "data": {"hotels": ["A"], "potential": [1], "confidence": [90], "extra": {"nested": {"deep": true}}}} Done.`

	display, charts := ExtractCharts(text)

	if len(charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(charts))
	}
	if strings.Contains(display, "nested") {
		t.Errorf("expected nested object removed with its parent, got %q", display)
	}
}

func TestExtractCharts_BracesInsideStrings(t *testing.T) {
	text := `Note: {"type": "coaching_metrics", "data": {"territory_growth": "+8.5%", "vs_peer_avg": "{braces} and \"quotes\"", "optimization_score": 87, "weekly_calls": 15}} end.`

	display, charts := ExtractCharts(text)

	if len(charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(charts))
	}
	if charts[0].Kind != domain.KindCoachingMetrics {
		t.Errorf("expected kind %q, got %q", domain.KindCoachingMetrics, charts[0].Kind)
	}
	if strings.Contains(display, "braces") {
		t.Errorf("expected object with braces in string values removed, got %q", display)
	}
	if !strings.Contains(display, "Note:") || !strings.Contains(display, "end.") {
		t.Errorf("expected surrounding prose preserved, got %q", display)
	}
}

func TestExtractCharts_MalformedCandidateLeftInPlace(t *testing.T) {
	text := `Before {"type": "line_chart", "data": } after.`

	display, charts := ExtractCharts(text)

	if len(charts) != 0 {
		t.Fatalf("expected no charts from malformed object, got %d", len(charts))
	}
	if !strings.Contains(display, `"line_chart"`) {
		t.Errorf("expected malformed object left in display text, got %q", display)
	}
}

func TestExtractCharts_UnrecognizedTypeLeftInPlace(t *testing.T) {
	text := `Here: {"type": "pie_chart", "data": {"a": 1}} there.`

	display, charts := ExtractCharts(text)

	if len(charts) != 0 {
		t.Fatalf("expected no charts for unrecognized type, got %d", len(charts))
	}
	if !strings.Contains(display, "pie_chart") {
		t.Errorf("expected unrecognized object left in display text, got %q", display)
	}
}

func TestExtractCharts_MissingDataObject(t *testing.T) {
	text := `{"type": "line_chart", "data": "not an object"}`

	display, charts := ExtractCharts(text)

	if len(charts) != 0 {
		t.Fatalf("expected no charts when data is not an object, got %d", len(charts))
	}
	if display == "" {
		t.Error("expected rejected object left in display text")
	}
}

func TestExtractCharts_UnbalancedBrace(t *testing.T) {
	text := `Set rates {aggressively for the weekend.`

	display, charts := ExtractCharts(text)

	if display != text {
		t.Errorf("expected text unchanged, got %q", display)
	}
	if len(charts) != 0 {
		t.Errorf("expected no charts, got %d", len(charts))
	}
}

func TestExtractCharts_MultipleKindsInOrder(t *testing.T) {
	text := `Trends: {"type": "line_chart", "data": {"labels": ["W1"], "revenue": [1], "occupancy": [70], "adr": [200]}}
Opportunities: {"type": "bar_chart", "data": {"hotels": ["B"], "potential": [2], "confidence": [80]}}
Market: {"type": "market_data", "data": {"competitor_occupancy": 75, "market_adr": 240, "flight_searches": "+5%", "booking_pace": "flat"}}`

	display, charts := ExtractCharts(text)

	want := []domain.ChartKind{
		domain.KindTerritoryTrend,
		domain.KindRevenueOpportunity,
		domain.KindMarketSnapshot,
	}
	if len(charts) != len(want) {
		t.Fatalf("expected %d charts, got %d", len(want), len(charts))
	}
	for i, kind := range want {
		if charts[i].Kind != kind {
			t.Errorf("chart %d: expected kind %q, got %q", i, kind, charts[i].Kind)
		}
	}
	if strings.Contains(display, "{") {
		t.Errorf("expected all chart objects removed, got %q", display)
	}
}

func TestExtractCharts_DuplicateKindBothKept(t *testing.T) {
	text := `Last month: {"type": "line_chart", "data": {"labels": ["W1"], "revenue": [100], "occupancy": [70], "adr": [200]}}
This month: {"type": "line_chart", "data": {"labels": ["W1"], "revenue": [300], "occupancy": [80], "adr": [250]}}`

	display, charts := ExtractCharts(text)

	if len(charts) != 2 {
		t.Fatalf("expected both duplicate-kind charts kept, got %d", len(charts))
	}
	for i, chart := range charts {
		if chart.Kind != domain.KindTerritoryTrend {
			t.Errorf("chart %d: expected kind %q, got %q", i, domain.KindTerritoryTrend, chart.Kind)
		}
	}

	var first, second domain.TerritoryTrendPayload
	if err := json.Unmarshal(charts[0].Payload, &first); err != nil {
		t.Fatalf("failed to unmarshal first payload: %v", err)
	}
	if err := json.Unmarshal(charts[1].Payload, &second); err != nil {
		t.Fatalf("failed to unmarshal second payload: %v", err)
	}
	if first.Revenue[0] != 100 || second.Revenue[0] != 300 {
		t.Errorf("expected payloads in occurrence order, got %v then %v", first.Revenue, second.Revenue)
	}

	if strings.Contains(display, "{") {
		t.Errorf("expected both objects stripped, got %q", display)
	}
	if !strings.Contains(display, "Last month:") || !strings.Contains(display, "This month:") {
		t.Errorf("expected surrounding prose preserved, got %q", display)
	}
}

func TestExtractCharts_MalformedThenValid(t *testing.T) {
	text := `{"type": "line_chart", broken} {"type": "bar_chart", "data": {"hotels": ["C"], "potential": [3], "confidence": [70]}}`

	_, charts := ExtractCharts(text)

	if len(charts) != 1 {
		t.Fatalf("expected the valid object still extracted, got %d charts", len(charts))
	}
	if charts[0].Kind != domain.KindRevenueOpportunity {
		t.Errorf("expected kind %q, got %q", domain.KindRevenueOpportunity, charts[0].Kind)
	}
}
