package postgres

import (
	"context"
	"errors"
	"fmt"

	"stakeledger/internal/core/domain"
	"stakeledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository, the fungible-balance
// primitive. Mutations run inside the caller's transaction; the supply ledger
// updates totalSupply in the same transaction, preserving conservation.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// BalanceOf returns addr's balance, zero when no row exists.
func (r *BalanceRepo) BalanceOf(ctx context.Context, addr domain.Address) (*uint256.Int, error) {
	var s string
	err := r.pool.QueryRow(ctx, `SELECT balance FROM balances WHERE address = $1`, string(addr)).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uint256.NewInt(0), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return parseAmount(s)
}

// BalanceOfForUpdate locks and returns addr's balance row. A missing row
// reads as zero without locking; callers that are about to credit it rely on
// the upsert in Credit instead.
func (r *BalanceRepo) BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*uint256.Int, error) {
	var s string
	err := tx.QueryRow(ctx, `SELECT balance FROM balances WHERE address = $1 FOR UPDATE`, string(addr)).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uint256.NewInt(0), nil
		}
		return nil, fmt.Errorf("lock balance: %w", err)
	}
	return parseAmount(s)
}

// Credit adds amount to addr's balance, creating the row lazily.
func (r *BalanceRepo) Credit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO balances (address, balance) VALUES ($1, $2)
		ON CONFLICT (address) DO UPDATE
		SET balance = (balances.balance::NUMERIC + EXCLUDED.balance::NUMERIC)::TEXT,
		    updated_at = NOW()`,
		string(addr), amount.Dec(),
	)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	return nil
}

// Debit subtracts amount from addr's balance. The WHERE clause makes the
// sufficiency check and the subtraction one atomic statement.
func (r *BalanceRepo) Debit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error {
	tag, err := tx.Exec(ctx, `
		UPDATE balances
		SET balance = (balance::NUMERIC - $2::NUMERIC)::TEXT, updated_at = NOW()
		WHERE address = $1 AND balance::NUMERIC >= $2::NUMERIC`,
		string(addr), amount.Dec(),
	)
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrInsufficientBalance()
	}
	return nil
}

// Transfer moves amount from one account to another.
func (r *BalanceRepo) Transfer(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount *uint256.Int) error {
	if err := r.Debit(ctx, tx, from, amount); err != nil {
		return err
	}
	return r.Credit(ctx, tx, to, amount)
}

// SumBalances returns the sum of all account balances.
func (r *BalanceRepo) SumBalances(ctx context.Context) (*uint256.Int, error) {
	var s string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(balance::NUMERIC), 0)::TEXT FROM balances`,
	).Scan(&s)
	if err != nil {
		return nil, fmt.Errorf("sum balances: %w", err)
	}
	return parseAmount(s)
}

// parseAmount converts a stored decimal string back to u256.
func parseAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("corrupt amount %q: %w", s, err)
	}
	return v, nil
}
