package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/storage"
)

var _ storage.AccountStore = (*Store)(nil)

// Store is an in-memory AccountStore used for demo mode (no DATABASE_URL)
// and in tests. Identifiers are monotonic and never reused.
type Store struct {
	mu            sync.RWMutex
	accounts      map[int64]models.Account
	byLoginKey    map[string]int64
	missions      map[int64]models.Mission
	nextAccountID int64
	nextMissionID int64
}

// NewAccountStore creates an empty in-memory store.
func NewAccountStore() *Store {
	return &Store{
		accounts:      make(map[int64]models.Account),
		byLoginKey:    make(map[string]int64),
		missions:      make(map[int64]models.Mission),
		nextAccountID: 1,
		nextMissionID: 1,
	}
}

// SeedDemo inserts the demo account if no account carries the reserved
// login key. Safe to call repeatedly.
func (s *Store) SeedDemo(ctx context.Context, credentialHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byLoginKey[storage.SeedLoginKey]; ok {
		return nil
	}
	s.insertLocked(storage.Seed(credentialHash))
	return nil
}

func (s *Store) insertLocked(account models.Account) models.Account {
	account.ID = s.nextAccountID
	s.nextAccountID++
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	if account.Plan == "" {
		account.Plan = models.PlanFree
	}
	s.accounts[account.ID] = account
	s.byLoginKey[account.LoginKey] = account.ID
	return account
}

// CreateAccount inserts a new account, enforcing login key uniqueness.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byLoginKey[account.LoginKey]; ok {
		return models.Account{}, storage.ErrAlreadyExists
	}
	return s.insertLocked(account), nil
}

// FindByLoginKey fetches an account by its unique login key.
func (s *Store) FindByLoginKey(ctx context.Context, loginKey string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byLoginKey[loginKey]
	if !ok {
		return models.Account{}, storage.ErrNotFound
	}
	return s.accounts[id], nil
}

// FindByID fetches an account by identifier.
func (s *Store) FindByID(ctx context.Context, id int64) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return models.Account{}, storage.ErrNotFound
	}
	return acc, nil
}

// CreateMission inserts a mission for an existing account.
func (s *Store) CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[mission.AccountID]; !ok {
		return models.Mission{}, storage.ErrNotFound
	}
	mission.ID = s.nextMissionID
	s.nextMissionID++
	if mission.Status == "" {
		mission.Status = models.MissionPending
	}
	if mission.CreatedAt.IsZero() {
		mission.CreatedAt = time.Now()
	}
	s.missions[mission.ID] = mission
	return mission, nil
}

// ListMissionsByAccount returns missions belonging to one account, newest first.
func (s *Store) ListMissionsByAccount(ctx context.Context, accountID int64) ([]models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var missions []models.Mission
	for _, m := range s.missions {
		if m.AccountID == accountID {
			missions = append(missions, m)
		}
	}
	sort.Slice(missions, func(i, j int) bool {
		if missions[i].CreatedAt.Equal(missions[j].CreatedAt) {
			return missions[i].ID > missions[j].ID
		}
		return missions[i].CreatedAt.After(missions[j].CreatedAt)
	})
	return missions, nil
}
