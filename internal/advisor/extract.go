package advisor

import (
	"encoding/json"
	"strings"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
	"github.com/rs/zerolog/log"
)

// ExtractCharts scans reply text for embedded chart objects and returns the
// text with recognized objects removed plus the parsed updates in order of
// first occurrence. It never fails: malformed candidates are logged and left
// in place, so the worst case is a full prose reply with zero charts.
func ExtractCharts(text string) (string, []domain.ChartUpdate) {
	var (
		display strings.Builder
		updates []domain.ChartUpdate
	)

	i := 0
	for i < len(text) {
		if text[i] != '{' {
			display.WriteByte(text[i])
			i++
			continue
		}

		end, balanced := matchBrace(text, i)
		if !balanced {
			display.WriteByte(text[i])
			i++
			continue
		}

		candidate := text[i : end+1]
		update, ok := parseChart(candidate)
		if !ok {
			display.WriteByte(text[i])
			i++
			continue
		}

		updates = append(updates, update)
		i = end + 1
	}

	return strings.TrimSpace(display.String()), updates
}

// parseChart attempts a strict parse of one brace-balanced candidate into a
// chart update. Candidates carrying a recognized kind tag that fail strict
// parsing are logged and rejected.
func parseChart(candidate string) (domain.ChartUpdate, bool) {
	var probe struct {
		Type domain.ChartKind `json:"type"`
		Data json.RawMessage  `json:"data"`
	}

	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		if hasRecognizedTag(candidate) {
			log.Warn().Err(err).Str("candidate", candidate).Msg("failed to parse chart data")
		}
		return domain.ChartUpdate{}, false
	}

	if !probe.Type.Valid() {
		return domain.ChartUpdate{}, false
	}

	// The payload must at least be an object; its fields stay unvalidated.
	data := strings.TrimSpace(string(probe.Data))
	if !strings.HasPrefix(data, "{") {
		log.Warn().Str("type", string(probe.Type)).Msg("chart object has no data object")
		return domain.ChartUpdate{}, false
	}

	return domain.ChartUpdate{Kind: probe.Type, Payload: probe.Data}, true
}

func hasRecognizedTag(candidate string) bool {
	if !strings.Contains(candidate, `"type"`) {
		return false
	}
	for _, kind := range []domain.ChartKind{
		domain.KindTerritoryTrend,
		domain.KindRevenueOpportunity,
		domain.KindMarketSnapshot,
		domain.KindCoachingMetrics,
	} {
		if strings.Contains(candidate, string(kind)) {
			return true
		}
	}
	return false
}

// matchBrace returns the index of the brace closing the object opened at
// start. It counts braces outside JSON string literals, honoring backslash
// escapes, so nested objects and braces inside string values do not break
// the match.
func matchBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
