package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// SessionCookie is the cookie carrying the signed identity reference.
const SessionCookie = "forfeo_session"

// errNoIdentity indicates the request carried no identity reference at all.
var errNoIdentity = errors.New("missing identity reference")

// Gate resolves the identity reference on a request back to an account.
// It never trusts prior-request state: every call is a token verification
// followed by exactly one store read.
type Gate struct {
	store  storage.AccountStore
	tokens *auth.TokenManager
}

// NewGate constructs a gate over the given store and token manager.
func NewGate(store storage.AccountStore, tokens *auth.TokenManager) *Gate {
	return &Gate{store: store, tokens: tokens}
}

// Account returns the account referenced by the request's session token.
// Errors: errNoIdentity (nothing supplied), auth.ErrInvalidToken, or
// storage.ErrNotFound when the reference resolves to no account.
func (g *Gate) Account(r *http.Request) (models.Account, error) {
	token := tokenFromRequest(r)
	if token == "" {
		return models.Account{}, errNoIdentity
	}
	id, err := g.tokens.Verify(token)
	if err != nil {
		return models.Account{}, err
	}
	return g.store.FindByID(r.Context(), id)
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
