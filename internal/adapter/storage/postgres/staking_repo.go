package postgres

import (
	"context"
	"errors"
	"fmt"

	"stakeledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// StakingRepo implements ports.StakingRepository: the staking partition's
// global row plus per-account stake positions.
type StakingRepo struct {
	pool Pool
	key  string
}

// NewStakingRepo creates a new StakingRepo.
func NewStakingRepo(pool Pool) *StakingRepo {
	return &StakingRepo{
		pool: pool,
		key:  domain.PartitionHex(domain.NamespaceStakingV2),
	}
}

func (r *StakingRepo) scanState(row pgx.Row) (*domain.StakingState, error) {
	var (
		rate, minDur uint64
		staked       string
	)
	if err := row.Scan(&rate, &minDur, &staked); err != nil {
		return nil, err
	}
	totalStaked, err := parseAmount(staked)
	if err != nil {
		return nil, err
	}
	return &domain.StakingState{
		RewardRatePerYearBps:      rate,
		MinStakingDurationSeconds: minDur,
		TotalStaked:               totalStaked,
	}, nil
}

// State returns the global staking state without locking.
func (r *StakingRepo) State(ctx context.Context) (*domain.StakingState, error) {
	state, err := r.scanState(r.pool.QueryRow(ctx, `
		SELECT reward_rate_bps, min_staking_duration_secs, total_staked
		FROM staking_state WHERE storage_key = $1`, r.key))
	if err != nil {
		return nil, fmt.Errorf("get staking state: %w", err)
	}
	return state, nil
}

// StateForUpdate locks and returns the global staking state row.
func (r *StakingRepo) StateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.StakingState, error) {
	state, err := r.scanState(tx.QueryRow(ctx, `
		SELECT reward_rate_bps, min_staking_duration_secs, total_staked
		FROM staking_state WHERE storage_key = $1 FOR UPDATE`, r.key))
	if err != nil {
		return nil, fmt.Errorf("lock staking state: %w", err)
	}
	return state, nil
}

// SaveState writes the global staking state within a transaction.
func (r *StakingRepo) SaveState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error {
	tag, err := tx.Exec(ctx, `
		UPDATE staking_state
		SET reward_rate_bps = $2, min_staking_duration_secs = $3, total_staked = $4, updated_at = NOW()
		WHERE storage_key = $1`,
		r.key, state.RewardRatePerYearBps, state.MinStakingDurationSeconds, state.TotalStaked.Dec(),
	)
	if err != nil {
		return fmt.Errorf("save staking state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staking_state row missing for partition %s", r.key)
	}
	return nil
}

// InitState inserts the initial staking row. Run once by the version-2 setup.
func (r *StakingRepo) InitState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO staking_state (storage_key, reward_rate_bps, min_staking_duration_secs, total_staked)
		VALUES ($1, $2, $3, $4)`,
		r.key, state.RewardRatePerYearBps, state.MinStakingDurationSeconds, state.TotalStaked.Dec(),
	)
	if err != nil {
		return fmt.Errorf("init staking state: %w", err)
	}
	return nil
}

func scanPosition(row pgx.Row, addr domain.Address) (*domain.StakePosition, error) {
	var (
		staked, banked string
		startedAt      int64
	)
	if err := row.Scan(&staked, &startedAt, &banked); err != nil {
		return nil, err
	}
	stakedAmount, err := parseAmount(staked)
	if err != nil {
		return nil, err
	}
	bankedReward, err := parseAmount(banked)
	if err != nil {
		return nil, err
	}
	return &domain.StakePosition{
		Address:        addr,
		StakedAmount:   stakedAmount,
		StakeStartedAt: startedAt,
		BankedReward:   bankedReward,
	}, nil
}

// Position returns addr's stake position; a missing row reads as an idle
// zero-valued position.
func (r *StakingRepo) Position(ctx context.Context, addr domain.Address) (*domain.StakePosition, error) {
	pos, err := scanPosition(r.pool.QueryRow(ctx, `
		SELECT staked_amount, stake_started_at, banked_reward
		FROM stake_positions WHERE address = $1`, string(addr)), addr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewStakePosition(addr), nil
		}
		return nil, fmt.Errorf("get stake position: %w", err)
	}
	return pos, nil
}

// PositionForUpdate locks and returns addr's stake position. A missing row
// reads as idle; SavePosition creates it lazily.
func (r *StakingRepo) PositionForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.StakePosition, error) {
	pos, err := scanPosition(tx.QueryRow(ctx, `
		SELECT staked_amount, stake_started_at, banked_reward
		FROM stake_positions WHERE address = $1 FOR UPDATE`, string(addr)), addr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewStakePosition(addr), nil
		}
		return nil, fmt.Errorf("lock stake position: %w", err)
	}
	return pos, nil
}

// SavePosition upserts addr's stake position within a transaction.
func (r *StakingRepo) SavePosition(ctx context.Context, tx pgx.Tx, pos *domain.StakePosition) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO stake_positions (address, staked_amount, stake_started_at, banked_reward)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE
		SET staked_amount = EXCLUDED.staked_amount,
		    stake_started_at = EXCLUDED.stake_started_at,
		    banked_reward = EXCLUDED.banked_reward,
		    updated_at = NOW()`,
		string(pos.Address), pos.StakedAmount.Dec(), pos.StakeStartedAt, pos.BankedReward.Dec(),
	)
	if err != nil {
		return fmt.Errorf("save stake position: %w", err)
	}
	return nil
}

// SumStaked returns the sum of every position's staked amount.
func (r *StakingRepo) SumStaked(ctx context.Context) (*uint256.Int, error) {
	var s string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(staked_amount::NUMERIC), 0)::TEXT FROM stake_positions`,
	).Scan(&s)
	if err != nil {
		return nil, fmt.Errorf("sum staked: %w", err)
	}
	return parseAmount(s)
}
