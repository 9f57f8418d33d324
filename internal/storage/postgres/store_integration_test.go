package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

// TestBootstrapIntegration exercises schema bootstrap and seed idempotence
// against a live Postgres.
func TestBootstrapIntegration(t *testing.T) {
	if os.Getenv("RUN_STORE_INTEGRATION") != "true" {
		t.Skip("set RUN_STORE_INTEGRATION=true to run this integration test")
	}

	_ = godotenv.Load("../../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	seedHash, err := auth.HashCredential("1234")
	require.NoError(t, err)

	// Bootstrapping twice must leave exactly one seed account.
	first, err := NewAccountStore(ctx, dbURL, seedHash)
	require.NoError(t, err)
	first.Close()

	store, err := NewAccountStore(ctx, dbURL, seedHash)
	require.NoError(t, err)
	defer store.Close()

	seed, err := store.FindByLoginKey(ctx, storage.SeedLoginKey)
	require.NoError(t, err)
	assert.Equal(t, "Hôtel Le Prestige", seed.Name)
	assert.Equal(t, models.PlanPro, seed.Plan)
	assert.InDelta(t, 8.4, seed.Score, 0.001)
	assert.Equal(t, 5, seed.AvailableMissions)
	assert.Equal(t, "HP", seed.Initials)

	byID, err := store.FindByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.LoginKey, byID.LoginKey)

	_, err = store.FindByLoginKey(ctx, "no-such-login-key")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	mission, err := store.CreateMission(ctx, models.Mission{
		AccountID:   seed.ID,
		MissionType: "Audit mystère",
		Details:     "integration test mission",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MissionPending, mission.Status)

	missions, err := store.ListMissionsByAccount(ctx, seed.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, missions)
}
