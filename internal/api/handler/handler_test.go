package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/advisor"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/api/handler"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/repository/memory"
)

func newTestRouter() chi.Router {
	// No providers registered: any turn that reaches the completion step
	// fails with a configuration error.
	svc := advisor.NewService(
		memory.NewConversationStore(),
		llm.NewRouter("anthropic"),
		memory.NewBroadcaster(),
		20, 2000, 0.3,
	)

	chatHandler := handler.NewChatHandler(svc, false)
	analyticsHandler := handler.NewAnalyticsHandler(svc, false)

	r := chi.NewRouter()
	r.Get("/api/v1/health", handler.HealthCheck)
	r.Post("/api/v1/chat/message", chatHandler.Message)
	r.Post("/api/v1/chat/quick-query", chatHandler.QuickQuery)
	r.Get("/api/v1/chat/history/{conversationID}", chatHandler.GetHistory)
	r.Delete("/api/v1/chat/history/{conversationID}", chatHandler.ClearHistory)
	r.Get("/api/v1/analytics/charts", analyticsHandler.ListSlots)
	return r
}

func makeJSONRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}

	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func TestChatMessage_Validation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing message", map[string]string{}, http.StatusBadRequest},
		{"whitespace message", map[string]string{"message": "   "}, http.StatusBadRequest},
		{"invalid provider", map[string]string{"message": "hi", "provider": "mystery"}, http.StatusBadRequest},
		{"no provider configured", map[string]string{"message": "hi"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, makeJSONRequest(http.MethodPost, "/api/v1/chat/message", tt.body))

			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestChatMessage_MalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestQuickQuery_UnknownType(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, makeJSONRequest(http.MethodPost, "/api/v1/chat/quick-query", map[string]string{
		"queryType": "nonsense",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetHistory_EmptyConversation(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history/c1?userId=u1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response struct {
		Data struct {
			ConversationID string `json:"conversationId"`
			MessageCount   int    `json:"messageCount"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.ConversationID != "c1" {
		t.Errorf("expected conversationId c1, got %q", response.Data.ConversationID)
	}
	if response.Data.MessageCount != 0 {
		t.Errorf("expected empty history, got %d messages", response.Data.MessageCount)
	}
}

func TestClearHistory(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/chat/history/c1", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestListSlots(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/charts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response struct {
		Data struct {
			AvailableCharts []struct {
				Slot string `json:"slot"`
				Type string `json:"type"`
			} `json:"availableCharts"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data.AvailableCharts) != 4 {
		t.Fatalf("expected 4 chart slots, got %d", len(response.Data.AvailableCharts))
	}
	if response.Data.AvailableCharts[0].Slot != "territory-performance" || response.Data.AvailableCharts[0].Type != "line_chart" {
		t.Errorf("unexpected first slot: %+v", response.Data.AvailableCharts[0])
	}
}
