package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/http/respond"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// DashboardHandler serves the account-scoped dashboard view behind the gate.
type DashboardHandler struct {
	gate   *Gate
	logger *zap.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(gate *Gate, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{gate: gate, logger: logger}
}

// Register attaches the dashboard route to the router.
func (h *DashboardHandler) Register(r *mux.Router) {
	r.HandleFunc("/dashboard", h.handleDashboard).Methods(http.MethodGet)
}

// handleDashboard re-fetches the account referenced by the session token and
// renders exactly that account's fields. A missing reference redirects to
// the login entry point; a reference that resolves to no account redirects
// silently.
func (h *DashboardHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	account, err := h.gate.Account(r)
	if err != nil {
		if !errors.Is(err, errNoIdentity) && !errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn("dashboard gate rejected request", zap.Error(err))
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	respond.JSON(w, http.StatusOK, "dashboard", account)
}
