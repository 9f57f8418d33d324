package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/forfeolab/forfeo-be/internal/models"
	"github.com/forfeolab/forfeo-be/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.AccountStore interface at compile time.
var _ storage.AccountStore = (*Store)(nil)

// Store provides Postgres-backed persistence for accounts and missions.
type Store struct {
	pool *pgxpool.Pool
}

// NewAccountStore connects to Postgres, ensures the schema exists, and
// inserts the seed account if absent. seedHash is the bcrypt hash of the
// demo credential.
func NewAccountStore(ctx context.Context, databaseURL, seedHash string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.seed(ctx, seedHash); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			login_key TEXT UNIQUE NOT NULL,
			credential_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			plan TEXT NOT NULL DEFAULT 'Free',
			score NUMERIC(4,1) NOT NULL DEFAULT 0.0,
			available_mission_count INTEGER NOT NULL DEFAULT 0,
			initials TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_login_key_unique_idx ON accounts (login_key);`,
		`CREATE TABLE IF NOT EXISTS missions (
			id BIGSERIAL PRIMARY KEY,
			account_id BIGINT NOT NULL REFERENCES accounts(id),
			mission_type TEXT NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			requested_date TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS missions_account_id_idx ON missions (account_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// seed inserts the demo account only if no account carries the reserved
// login key, so repeated startups leave exactly one seed row.
func (s *Store) seed(ctx context.Context, seedHash string) error {
	acc := storage.Seed(seedHash)
	const query = `
	INSERT INTO accounts (login_key, credential_hash, name, plan, score, available_mission_count, initials)
	SELECT $1, $2, $3, $4, $5, $6, $7
	WHERE NOT EXISTS (SELECT 1 FROM accounts WHERE login_key = $1);
	`
	_, err := s.pool.Exec(ctx, query,
		acc.LoginKey, acc.CredentialHash, acc.Name, acc.Plan, acc.Score, acc.AvailableMissions, acc.Initials)
	if err != nil {
		return fmt.Errorf("seed demo account: %w", err)
	}
	return nil
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	const query = `
	INSERT INTO accounts (login_key, credential_hash, name, plan, score, available_mission_count, initials)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, login_key, credential_hash, name, plan, score, available_mission_count, initials, created_at;
	`
	row := s.pool.QueryRow(ctx, query,
		account.LoginKey, account.CredentialHash, account.Name, account.Plan,
		account.Score, account.AvailableMissions, account.Initials)
	created, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Account{}, storage.ErrAlreadyExists
		}
		return models.Account{}, err
	}
	return created, nil
}

// FindByLoginKey fetches an account by its unique login key.
func (s *Store) FindByLoginKey(ctx context.Context, loginKey string) (models.Account, error) {
	const query = `
	SELECT id, login_key, credential_hash, name, plan, score, available_mission_count, initials, created_at
	FROM accounts
	WHERE login_key = $1;
	`
	row := s.pool.QueryRow(ctx, query, loginKey)
	return scanAccount(row)
}

// FindByID fetches an account by identifier.
func (s *Store) FindByID(ctx context.Context, id int64) (models.Account, error) {
	const query = `
	SELECT id, login_key, credential_hash, name, plan, score, available_mission_count, initials, created_at
	FROM accounts
	WHERE id = $1;
	`
	row := s.pool.QueryRow(ctx, query, id)
	return scanAccount(row)
}

// CreateMission inserts a mission for an account.
func (s *Store) CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error) {
	const query = `
	INSERT INTO missions (account_id, mission_type, details, requested_date, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, account_id, mission_type, details, requested_date, status, created_at;
	`
	status := mission.Status
	if status == "" {
		status = models.MissionPending
	}
	row := s.pool.QueryRow(ctx, query,
		mission.AccountID, mission.MissionType, mission.Details, mission.RequestedDate, status)
	var created models.Mission
	err := row.Scan(&created.ID, &created.AccountID, &created.MissionType,
		&created.Details, &created.RequestedDate, &created.Status, &created.CreatedAt)
	if err != nil {
		return models.Mission{}, err
	}
	return created, nil
}

// ListMissionsByAccount returns missions belonging to one account, newest first.
func (s *Store) ListMissionsByAccount(ctx context.Context, accountID int64) ([]models.Mission, error) {
	const query = `
	SELECT id, account_id, mission_type, details, requested_date, status, created_at
	FROM missions
	WHERE account_id = $1
	ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []models.Mission
	for rows.Next() {
		var m models.Mission
		if err := rows.Scan(&m.ID, &m.AccountID, &m.MissionType, &m.Details,
			&m.RequestedDate, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var acc models.Account
	if err := row.Scan(&acc.ID, &acc.LoginKey, &acc.CredentialHash, &acc.Name,
		&acc.Plan, &acc.Score, &acc.AvailableMissions, &acc.Initials, &acc.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrNotFound
		}
		return models.Account{}, err
	}
	return acc, nil
}
