package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/assistant"
	"github.com/forfeolab/forfeo-be/internal/http/respond"
	"github.com/forfeolab/forfeo-be/internal/models/dto"
)

// ChatHandler exposes the assistant over a single JSON endpoint.
type ChatHandler struct {
	builder *assistant.Builder
	logger  *zap.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(builder *assistant.Builder, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{builder: builder, logger: logger}
}

// Register attaches the chat route to the router.
func (h *ChatHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/chat", h.handleChat).Methods(http.MethodPost)
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.builder.Reply(r.Context(), req.Message, req.Context)
	if err != nil {
		// The reply already carries the user-presentable fallback; the raw
		// error stays in the logs.
		h.logger.Warn("assistant reply degraded", zap.Error(err))
	}
	respond.JSON(w, http.StatusOK, "reply", dto.ChatResponse{Reply: reply})
}
