package storage

import (
	"context"
	"errors"

	"github.com/forfeolab/forfeo-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on login_key.
var ErrAlreadyExists = errors.New("record already exists")

// SeedLoginKey is the reserved login key of the demo account.
const SeedLoginKey = "test"

// AccountStore captures persistence operations needed by the resolver,
// the dashboard gate, and the mission endpoint.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindByLoginKey(ctx context.Context, loginKey string) (models.Account, error)
	FindByID(ctx context.Context, id int64) (models.Account, error)
	CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error)
	ListMissionsByAccount(ctx context.Context, accountID int64) ([]models.Mission, error)
}

// Seed returns the demo account inserted at bootstrap when no account with
// SeedLoginKey exists. The credential hash is computed by the caller so the
// raw demo credential stays out of this package.
func Seed(credentialHash string) models.Account {
	return models.Account{
		LoginKey:          SeedLoginKey,
		CredentialHash:    credentialHash,
		Name:              "Hôtel Le Prestige",
		Plan:              models.PlanPro,
		Score:             8.4,
		AvailableMissions: 5,
		Initials:          "HP",
	}
}
