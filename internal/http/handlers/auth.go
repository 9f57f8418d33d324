package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/http/respond"
	"github.com/forfeolab/forfeo-be/internal/models/dto"
	"github.com/forfeolab/forfeo-be/internal/session"
)

// Messages shown at the re-authentication entry point. The unknown-account
// one suggests the demo credential pair, matching the historical behavior.
const (
	msgUnknownAccount    = `Compte inconnu. Essayez l'identifiant "test" avec le mot de passe "1234".`
	msgInvalidCredential = "Mot de passe incorrect. Veuillez réessayer."
	msgLoginRequired     = "Veuillez vous connecter pour accéder à votre tableau de bord."
	msgLoginUnavailable  = "Connexion momentanément indisponible. Veuillez réessayer."
)

// AuthHandler owns the login entry point and credential submission.
type AuthHandler struct {
	resolver     *session.Resolver
	tokens       *auth.TokenManager
	cookieSecure bool
	logger       *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(resolver *session.Resolver, tokens *auth.TokenManager, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{resolver: resolver, tokens: tokens, cookieSecure: cookieSecure, logger: logger}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r *mux.Router) {
	r.HandleFunc("/login", h.loginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", h.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.handleLogout).Methods(http.MethodPost)
}

// loginPage is the re-authentication entry point. The reason query value
// selects the inline error indication.
func (h *AuthHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("reason") {
	case "unknown_account":
		respond.Error(w, http.StatusUnauthorized, msgUnknownAccount)
	case "invalid_credential":
		respond.Error(w, http.StatusUnauthorized, msgInvalidCredential)
	case "unavailable":
		respond.Error(w, http.StatusServiceUnavailable, msgLoginUnavailable)
	default:
		respond.JSON(w, http.StatusOK, msgLoginRequired, nil)
	}
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, wantsJSON, err := decodeLogin(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid login payload")
		return
	}
	if req.LoginKey == "" || req.Credential == "" {
		h.reject(w, r, wantsJSON, http.StatusBadRequest, "invalid_credential", "login key and credential are required")
		return
	}

	account, err := h.resolver.Resolve(r.Context(), req.LoginKey, req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownAccount):
			h.reject(w, r, wantsJSON, http.StatusUnauthorized, "unknown_account", msgUnknownAccount)
		case errors.Is(err, session.ErrInvalidCredential):
			h.reject(w, r, wantsJSON, http.StatusUnauthorized, "invalid_credential", msgInvalidCredential)
		default:
			h.logger.Error("resolve identity failed", zap.Error(err))
			h.reject(w, r, wantsJSON, http.StatusInternalServerError, "unavailable", msgLoginUnavailable)
		}
		return
	}

	token, err := h.tokens.Generate(account)
	if err != nil {
		h.logger.Error("issue session token failed", zap.Error(err))
		h.reject(w, r, wantsJSON, http.StatusInternalServerError, "unavailable", msgLoginUnavailable)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	if wantsJSON {
		respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, Account: account})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// reject converts an authentication failure into either a structured error
// (JSON clients) or a redirect back to the login entry point (browsers).
func (h *AuthHandler) reject(w http.ResponseWriter, r *http.Request, wantsJSON bool, status int, reason, message string) {
	if wantsJSON {
		respond.Error(w, status, message)
		return
	}
	http.Redirect(w, r, "/login?reason="+reason, http.StatusSeeOther)
}

// decodeLogin accepts both JSON bodies and HTML form submissions.
func decodeLogin(r *http.Request) (dto.LoginRequest, bool, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return dto.LoginRequest{}, true, err
		}
		req.LoginKey = strings.TrimSpace(req.LoginKey)
		return req, true, nil
	}
	if err := r.ParseForm(); err != nil {
		return dto.LoginRequest{}, false, err
	}
	return dto.LoginRequest{
		LoginKey:   strings.TrimSpace(r.FormValue("login_key")),
		Credential: r.FormValue("credential"),
	}, false, nil
}
