package postgres

import (
	"context"
	"fmt"

	"stakeledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SupplyRepo implements ports.SupplyRepository. The supply state lives in a
// single row keyed by the core partition's derived storage key; locking that
// row serializes every mutating ledger operation.
type SupplyRepo struct {
	pool Pool
	key  string
}

// NewSupplyRepo creates a new SupplyRepo.
func NewSupplyRepo(pool Pool) *SupplyRepo {
	return &SupplyRepo{
		pool: pool,
		key:  domain.PartitionHex(domain.NamespaceCoreV1),
	}
}

func (r *SupplyRepo) scan(row pgx.Row) (*domain.SupplyState, error) {
	var total, max string
	if err := row.Scan(&total, &max); err != nil {
		return nil, err
	}
	totalSupply, err := parseAmount(total)
	if err != nil {
		return nil, err
	}
	maxSupply, err := parseAmount(max)
	if err != nil {
		return nil, err
	}
	return &domain.SupplyState{TotalSupply: totalSupply, MaxSupply: maxSupply}, nil
}

// Get returns the supply state without locking.
func (r *SupplyRepo) Get(ctx context.Context) (*domain.SupplyState, error) {
	state, err := r.scan(r.pool.QueryRow(ctx,
		`SELECT total_supply, max_supply FROM supply WHERE storage_key = $1`, r.key))
	if err != nil {
		return nil, fmt.Errorf("get supply state: %w", err)
	}
	return state, nil
}

// GetForUpdate locks and returns the supply state row.
func (r *SupplyRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.SupplyState, error) {
	state, err := r.scan(tx.QueryRow(ctx,
		`SELECT total_supply, max_supply FROM supply WHERE storage_key = $1 FOR UPDATE`, r.key))
	if err != nil {
		return nil, fmt.Errorf("lock supply state: %w", err)
	}
	return state, nil
}

// Save writes the supply state within a transaction.
func (r *SupplyRepo) Save(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error {
	tag, err := tx.Exec(ctx, `
		UPDATE supply SET total_supply = $2, max_supply = $3, updated_at = NOW()
		WHERE storage_key = $1`,
		r.key, state.TotalSupply.Dec(), state.MaxSupply.Dec(),
	)
	if err != nil {
		return fmt.Errorf("save supply state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supply row missing for partition %s", r.key)
	}
	return nil
}

// Init inserts the initial supply row. Run once by the version-1 setup.
func (r *SupplyRepo) Init(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO supply (storage_key, total_supply, max_supply) VALUES ($1, $2, $3)`,
		r.key, state.TotalSupply.Dec(), state.MaxSupply.Dec(),
	)
	if err != nil {
		return fmt.Errorf("init supply state: %w", err)
	}
	return nil
}
