package postgres

import (
	"context"
	"errors"
	"fmt"

	"stakeledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository. The administrator lives in a
// single row keyed by the roles partition's storage key; minters are a plain
// membership table.
type RoleRepo struct {
	pool Pool
	key  string
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{
		pool: pool,
		key:  domain.PartitionHex(domain.NamespaceRolesV1),
	}
}

// Administrator returns the current administrator, ZeroAddress before setup.
func (r *RoleRepo) Administrator(ctx context.Context) (domain.Address, error) {
	var admin string
	err := r.pool.QueryRow(ctx,
		`SELECT administrator FROM roles WHERE storage_key = $1`, r.key).Scan(&admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ZeroAddress, nil
		}
		return domain.ZeroAddress, fmt.Errorf("get administrator: %w", err)
	}
	return domain.Address(admin), nil
}

// SetAdministrator upserts the administrator row within a transaction.
func (r *RoleRepo) SetAdministrator(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO roles (storage_key, administrator) VALUES ($1, $2)
		ON CONFLICT (storage_key) DO UPDATE SET administrator = EXCLUDED.administrator`,
		r.key, string(addr),
	)
	if err != nil {
		return fmt.Errorf("set administrator: %w", err)
	}
	return nil
}

// IsMinter reports whether addr is in the minter set.
func (r *RoleRepo) IsMinter(ctx context.Context, addr domain.Address) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM minters WHERE address = $1)`, string(addr)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check minter: %w", err)
	}
	return exists, nil
}

// AddMinter inserts addr into the minter set. Adding an existing minter is a
// no-op.
func (r *RoleRepo) AddMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO minters (address) VALUES ($1) ON CONFLICT (address) DO NOTHING`, string(addr))
	if err != nil {
		return fmt.Errorf("add minter: %w", err)
	}
	return nil
}

// RemoveMinter deletes addr from the minter set.
func (r *RoleRepo) RemoveMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	_, err := tx.Exec(ctx, `DELETE FROM minters WHERE address = $1`, string(addr))
	if err != nil {
		return fmt.Errorf("remove minter: %w", err)
	}
	return nil
}

// ListMinters returns the minter set ordered by address.
func (r *RoleRepo) ListMinters(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.pool.Query(ctx, `SELECT address FROM minters ORDER BY address`)
	if err != nil {
		return nil, fmt.Errorf("list minters: %w", err)
	}
	defer rows.Close()

	var minters []domain.Address
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan minter: %w", err)
		}
		minters = append(minters, domain.Address(addr))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate minters: %w", err)
	}
	return minters, nil
}
