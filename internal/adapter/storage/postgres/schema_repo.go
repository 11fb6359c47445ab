package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ddl creates every table the ledger owns. Amount columns are TEXT holding
// decimal u256 strings; arithmetic casts them to NUMERIC in-statement so the
// database never rounds.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS schema_info (
		id BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (id),
		version INTEGER NOT NULL DEFAULT 0
	)`,
	`INSERT INTO schema_info (id, version) VALUES (TRUE, 0) ON CONFLICT (id) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS partitions (
		namespace TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		storage_key TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS balances (
		address TEXT PRIMARY KEY,
		balance TEXT NOT NULL DEFAULT '0',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS supply (
		storage_key TEXT PRIMARY KEY,
		total_supply TEXT NOT NULL,
		max_supply TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		storage_key TEXT PRIMARY KEY,
		administrator TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS minters (
		address TEXT PRIMARY KEY,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staking_state (
		storage_key TEXT PRIMARY KEY,
		reward_rate_bps BIGINT NOT NULL,
		min_staking_duration_secs BIGINT NOT NULL,
		total_staked TEXT NOT NULL DEFAULT '0',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stake_positions (
		address TEXT PRIMARY KEY,
		staked_amount TEXT NOT NULL DEFAULT '0',
		stake_started_at BIGINT NOT NULL DEFAULT 0,
		banked_reward TEXT NOT NULL DEFAULT '0',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		kind TEXT NOT NULL,
		account TEXT,
		fields JSONB,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS events_kind_idx ON events (kind, created_at)`,
}

// SchemaRepo implements ports.SchemaRepository.
type SchemaRepo struct {
	pool Pool
}

// NewSchemaRepo creates a new SchemaRepo.
func NewSchemaRepo(pool Pool) *SchemaRepo {
	return &SchemaRepo{pool: pool}
}

// EnsureSchema creates all ledger tables if absent. Safe on every boot.
func (r *SchemaRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range ddl {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Version returns the active schema version.
func (r *SchemaRepo) Version(ctx context.Context) (uint32, error) {
	var v uint32
	err := r.pool.QueryRow(ctx, `SELECT version FROM schema_info WHERE id`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return v, nil
}

// VersionForUpdate locks the version row for the duration of the transaction
// so a setup run's check and write form one atomic step.
func (r *SchemaRepo) VersionForUpdate(ctx context.Context, tx pgx.Tx) (uint32, error) {
	var v uint32
	err := tx.QueryRow(ctx, `SELECT version FROM schema_info WHERE id FOR UPDATE`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("lock schema version: %w", err)
	}
	return v, nil
}

// SetVersion advances the schema version. The guard never regresses; callers
// check the locked current version first.
func (r *SchemaRepo) SetVersion(ctx context.Context, tx pgx.Tx, version uint32) error {
	tag, err := tx.Exec(ctx, `UPDATE schema_info SET version = $1 WHERE id`, version)
	if err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schema_info row missing")
	}
	return nil
}

// RegisterPartition records a namespace and its derived storage key. The
// UNIQUE constraint on storage_key turns a namespace collision into a failed
// setup transaction.
func (r *SchemaRepo) RegisterPartition(ctx context.Context, tx pgx.Tx, version uint32, namespace, key string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO partitions (namespace, version, storage_key) VALUES ($1, $2, $3)`,
		namespace, version, key,
	)
	if err != nil {
		return fmt.Errorf("register partition %s: %w", namespace, err)
	}
	return nil
}
