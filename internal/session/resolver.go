package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// ErrUnknownAccount indicates no account carries the presented login key.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInvalidCredential indicates the account exists but the credential
// does not match.
var ErrInvalidCredential = errors.New("invalid credential")

// Resolver validates credentials and establishes the caller's identity.
// It holds no state between calls; every resolution is one store read plus
// a bcrypt comparison.
type Resolver struct {
	store storage.AccountStore
}

// NewResolver constructs a resolver over the given store.
func NewResolver(store storage.AccountStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up the account by login key and verifies the credential.
// On success it returns the matching account; the account identifier is
// the identity reference subsequent requests carry.
func (r *Resolver) Resolve(ctx context.Context, loginKey, credential string) (models.Account, error) {
	account, err := r.store.FindByLoginKey(ctx, loginKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Account{}, ErrUnknownAccount
		}
		return models.Account{}, fmt.Errorf("resolve identity: %w", err)
	}
	if !auth.CompareCredential(account.CredentialHash, credential) {
		return models.Account{}, ErrInvalidCredential
	}
	return account, nil
}
