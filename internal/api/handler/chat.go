package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/advisor"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/api/response"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// ChatHandler handles chat endpoints
type ChatHandler struct {
	service *advisor.Service
	devMode bool
}

// NewChatHandler creates a new chat handler. devMode exposes error detail
// in responses and must stay off in production.
func NewChatHandler(service *advisor.Service, devMode bool) *ChatHandler {
	return &ChatHandler{service: service, devMode: devMode}
}

// Message handles one chat turn
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.Send(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "failed to process message", h.devMode)
		return
	}

	response.OK(w, result)
}

// QuickQuery runs one of the canned suggested queries
func (h *ChatHandler) QuickQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QueryType string `json:"queryType" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.QuickQuery(r.Context(), req.QueryType)
	if err != nil {
		writeServiceError(w, err, "failed to process quick query", h.devMode)
		return
	}

	response.OK(w, result)
}

// GetHistory returns the stored turns for a conversation
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := r.URL.Query().Get("userId")

	history, err := h.service.History(r.Context(), userID, conversationID)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve conversation history", h.devMode)
		return
	}

	response.OK(w, history)
}

// ClearHistory drops the stored turns for a conversation
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := r.URL.Query().Get("userId")

	if err := h.service.ClearHistory(r.Context(), userID, conversationID); err != nil {
		writeServiceError(w, err, "failed to clear conversation history", h.devMode)
		return
	}

	response.OK(w, map[string]string{"message": "conversation history cleared"})
}

// writeServiceError maps the service error taxonomy to HTTP statuses. The
// default message never leaks internals; detail is attached only in dev mode.
func writeServiceError(w http.ResponseWriter, err error, fallback string, devMode bool) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.BadRequest(w, validationErr.Error())
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		log.Error().Err(err).Msg("service misconfigured")
		response.InternalError(w, detail("service not configured", err, devMode))
		return
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Error().
			Str("provider", upstreamErr.Provider).
			Int("status", upstreamErr.Status).
			Str("body", upstreamErr.Body).
			Msg("completion provider rejected request")
		response.BadGateway(w, detail("completion provider error", err, devMode))
		return
	}

	log.Error().Err(err).Msg(fallback)
	response.InternalError(w, detail(fallback, err, devMode))
}

func detail(message string, err error, devMode bool) any {
	if !devMode {
		return message
	}
	return map[string]string{
		"message": message,
		"details": err.Error(),
	}
}
