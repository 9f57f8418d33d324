package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/http/respond"
	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/models/dto"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// MissionsHandler lets an authenticated account request and list missions.
type MissionsHandler struct {
	gate   *Gate
	store  storage.AccountStore
	logger *zap.Logger
}

// NewMissionsHandler constructs the handler.
func NewMissionsHandler(gate *Gate, store storage.AccountStore, logger *zap.Logger) *MissionsHandler {
	return &MissionsHandler{gate: gate, store: store, logger: logger}
}

// Register attaches mission routes to the router.
func (h *MissionsHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/missions", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/missions", h.handleList).Methods(http.MethodGet)
}

func (h *MissionsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	account, err := h.gate.Account(r)
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.MissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.MissionType) == "" {
		respond.Error(w, http.StatusBadRequest, "mission_type is required")
		return
	}
	mission, err := h.store.CreateMission(r.Context(), models.Mission{
		AccountID:     account.ID,
		MissionType:   strings.TrimSpace(req.MissionType),
		Details:       strings.TrimSpace(req.Details),
		RequestedDate: strings.TrimSpace(req.RequestedDate),
	})
	if err != nil {
		h.logger.Error("create mission failed", zap.Int64("account_id", account.ID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to create mission")
		return
	}
	respond.JSON(w, http.StatusCreated, "mission created", mission)
}

func (h *MissionsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	account, err := h.gate.Account(r)
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	missions, err := h.store.ListMissionsByAccount(r.Context(), account.ID)
	if err != nil {
		h.logger.Error("list missions failed", zap.Int64("account_id", account.ID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to list missions")
		return
	}
	respond.JSON(w, http.StatusOK, "missions", missions)
}
