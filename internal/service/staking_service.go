package service

import (
	"context"
	"fmt"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// StakingServiceImpl implements ports.StakingService: the stake lifecycle and
// reward settlement engine. Every mutating operation runs in one database
// transaction that locks the supply row first, which serializes all ledger
// mutations and makes each operation all-or-nothing.
type StakingServiceImpl struct {
	stakingRepo ports.StakingRepository
	supplyRepo  ports.SupplyRepository
	balanceRepo ports.BalanceRepository
	eventRepo   ports.EventRepository
	transactor  ports.DBTransactor
	pauseGate   ports.PauseGate
	clock       ports.Clock
	notifier    ports.EventNotifier // nil = notifications disabled
	log         zerolog.Logger
}

// NewStakingService creates a new StakingServiceImpl.
func NewStakingService(
	stakingRepo ports.StakingRepository,
	supplyRepo ports.SupplyRepository,
	balanceRepo ports.BalanceRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	pauseGate ports.PauseGate,
	clock ports.Clock,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) *StakingServiceImpl {
	return &StakingServiceImpl{
		stakingRepo: stakingRepo,
		supplyRepo:  supplyRepo,
		balanceRepo: balanceRepo,
		eventRepo:   eventRepo,
		transactor:  transactor,
		pauseGate:   pauseGate,
		clock:       clock,
		notifier:    notifier,
		log:         log,
	}
}

// Stake locks amount of the caller's balance in custody, settling any
// accrued reward first.
func (s *StakingServiceImpl) Stake(ctx context.Context, caller domain.Address, amount *uint256.Int) (*ports.StakeReceipt, error) {
	if caller.IsZero() {
		return nil, apperror.ErrInvalidIdentity()
	}
	if amount == nil || amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.checkPaused(ctx); err != nil {
		return nil, err
	}
	now := s.clock.Now().Unix()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	supply, staking, pos, err := s.lockState(ctx, dbTx, caller)
	if err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.BalanceOfForUpdate(ctx, dbTx, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance.Lt(amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	var events []*domain.Event

	// Settle the accrued reward against the pre-stake position.
	pending, ok := pos.Pending(staking.RewardRatePerYearBps, now)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("reward overflows u256"))
	}
	rewardMinted := false
	if !pending.IsZero() {
		pos.BankedReward = uint256.NewInt(0)
		rewardMinted, err = s.mintUnderCap(ctx, dbTx, supply, caller, pending)
		if err != nil {
			return nil, err
		}
		events = append(events, rewardEvent(caller, pending, rewardMinted))
	}

	// Move the stake into custody and open/extend the position.
	if err := s.balanceRepo.Transfer(ctx, dbTx, caller, domain.CustodyAccount, amount); err != nil {
		return nil, err
	}
	pos.StakedAmount = new(uint256.Int).Add(pos.StakedAmount, amount)
	pos.StakeStartedAt = now
	staking.TotalStaked = new(uint256.Int).Add(staking.TotalStaked, amount)

	events = append(events, domain.NewEvent(domain.EventStake, caller, map[string]string{
		"amount":       amount.Dec(),
		"staked_total": pos.StakedAmount.Dec(),
	}))

	if err := s.persist(ctx, dbTx, supply, staking, pos, events); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.afterCommit(ctx, events)

	s.log.Info().
		Str("account", caller.String()).
		Str("amount", amount.Dec()).
		Str("reward", pending.Dec()).
		Msg("stake opened")

	return &ports.StakeReceipt{
		Account:        caller,
		Amount:         amount,
		StakedAmount:   pos.StakedAmount,
		RewardComputed: pending,
		RewardMinted:   rewardMinted,
	}, nil
}

// Unstake releases amount from custody back to the caller after the minimum
// staking duration, settling the reward over the whole remaining stake.
func (s *StakingServiceImpl) Unstake(ctx context.Context, caller domain.Address, amount *uint256.Int) (*ports.StakeReceipt, error) {
	if caller.IsZero() {
		return nil, apperror.ErrInvalidIdentity()
	}
	if amount == nil || amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.checkPaused(ctx); err != nil {
		return nil, err
	}
	now := s.clock.Now().Unix()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	supply, staking, pos, err := s.lockState(ctx, dbTx, caller)
	if err != nil {
		return nil, err
	}

	if amount.Gt(pos.StakedAmount) {
		return nil, apperror.ErrInsufficientBalance()
	}
	// The duration check uses the whole-stake clock: a partial unstake will
	// reset it for the remainder below.
	if now-pos.StakeStartedAt < int64(staking.MinStakingDurationSeconds) {
		return nil, apperror.ErrDurationNotMet()
	}

	// Settle over the full remaining stake regardless of the amount leaving.
	pending, ok := pos.Pending(staking.RewardRatePerYearBps, now)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("reward overflows u256"))
	}

	pos.StakedAmount = new(uint256.Int).Sub(pos.StakedAmount, amount)
	staking.TotalStaked = new(uint256.Int).Sub(staking.TotalStaked, amount)
	pos.BankedReward = uint256.NewInt(0)
	if !pos.StakedAmount.IsZero() {
		pos.StakeStartedAt = now
	}

	if err := s.balanceRepo.Transfer(ctx, dbTx, domain.CustodyAccount, caller, amount); err != nil {
		return nil, err
	}

	rewardMinted := false
	if !pending.IsZero() {
		rewardMinted, err = s.mintUnderCap(ctx, dbTx, supply, caller, pending)
		if err != nil {
			return nil, err
		}
	}

	// The event reports the computed reward even when the mint was skipped by
	// the cap check.
	events := []*domain.Event{domain.NewEvent(domain.EventUnstake, caller, map[string]string{
		"amount":        amount.Dec(),
		"reward":        pending.Dec(),
		"reward_minted": fmt.Sprintf("%t", rewardMinted),
		"staked_total":  pos.StakedAmount.Dec(),
	})}

	if err := s.persist(ctx, dbTx, supply, staking, pos, events); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.afterCommit(ctx, events)

	s.log.Info().
		Str("account", caller.String()).
		Str("amount", amount.Dec()).
		Str("reward", pending.Dec()).
		Bool("reward_minted", rewardMinted).
		Msg("stake released")

	return &ports.StakeReceipt{
		Account:        caller,
		Amount:         amount,
		StakedAmount:   pos.StakedAmount,
		RewardComputed: pending,
		RewardMinted:   rewardMinted,
	}, nil
}

// ClaimRewards settles and pays out the pending reward without touching the
// stake. Valid with nothing staked while a banked residual remains.
func (s *StakingServiceImpl) ClaimRewards(ctx context.Context, caller domain.Address) (*ports.StakeReceipt, error) {
	if caller.IsZero() {
		return nil, apperror.ErrInvalidIdentity()
	}
	if err := s.checkPaused(ctx); err != nil {
		return nil, err
	}
	now := s.clock.Now().Unix()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	supply, staking, pos, err := s.lockState(ctx, dbTx, caller)
	if err != nil {
		return nil, err
	}

	pending, ok := pos.Pending(staking.RewardRatePerYearBps, now)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("reward overflows u256"))
	}
	if pending.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}

	pos.BankedReward = uint256.NewInt(0)
	pos.StakeStartedAt = now

	rewardMinted, err := s.mintUnderCap(ctx, dbTx, supply, caller, pending)
	if err != nil {
		return nil, err
	}

	events := []*domain.Event{rewardEvent(caller, pending, rewardMinted)}

	if err := s.persist(ctx, dbTx, supply, staking, pos, events); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.afterCommit(ctx, events)

	s.log.Info().
		Str("account", caller.String()).
		Str("reward", pending.Dec()).
		Bool("reward_minted", rewardMinted).
		Msg("rewards claimed")

	return &ports.StakeReceipt{
		Account:        caller,
		Amount:         uint256.NewInt(0),
		StakedAmount:   pos.StakedAmount,
		RewardComputed: pending,
		RewardMinted:   rewardMinted,
	}, nil
}

// Position returns a read-model snapshot of addr's balance and stake.
func (s *StakingServiceImpl) Position(ctx context.Context, addr domain.Address) (*ports.PositionInfo, error) {
	if addr.IsZero() {
		return nil, apperror.ErrInvalidIdentity()
	}

	pos, err := s.stakingRepo.Position(ctx, addr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get position: %w", err))
	}
	staking, err := s.stakingRepo.State(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get staking state: %w", err))
	}
	balance, err := s.balanceRepo.BalanceOf(ctx, addr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}

	pending, ok := pos.Pending(staking.RewardRatePerYearBps, s.clock.Now().Unix())
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("reward overflows u256"))
	}

	return &ports.PositionInfo{
		Address:        addr,
		Balance:        balance,
		StakedAmount:   pos.StakedAmount,
		StakeStartedAt: pos.StakeStartedAt,
		BankedReward:   pos.BankedReward,
		PendingReward:  pending,
	}, nil
}

// lockState locks the mutating working set in a fixed order: supply first
// (the global serialization point), then the staking state, then the caller's
// position.
func (s *StakingServiceImpl) lockState(ctx context.Context, tx pgx.Tx, caller domain.Address) (*domain.SupplyState, *domain.StakingState, *domain.StakePosition, error) {
	supply, err := s.supplyRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("lock supply: %w", err))
	}
	staking, err := s.stakingRepo.StateForUpdate(ctx, tx)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("lock staking state: %w", err))
	}
	pos, err := s.stakingRepo.PositionForUpdate(ctx, tx, caller)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("lock position: %w", err))
	}
	return supply, staking, pos, nil
}

// mintUnderCap credits a settled reward only when it fits under maxSupply.
// When it does not fit, the mint is skipped silently and the operation still
// succeeds: the computed reward is forfeited. This mirrors the historical
// settlement behavior downstream accounting relies on.
// TODO: confirm with the protocol owners whether the forfeiture on cap
// overflow is intended; a revert here would change observable behavior.
func (s *StakingServiceImpl) mintUnderCap(ctx context.Context, tx pgx.Tx, supply *domain.SupplyState, to domain.Address, amount *uint256.Int) (bool, error) {
	if !supply.CanMint(amount) {
		s.log.Warn().
			Str("account", to.String()).
			Str("amount", amount.Dec()).
			Str("total_supply", supply.TotalSupply.Dec()).
			Str("max_supply", supply.MaxSupply.Dec()).
			Msg("reward mint skipped: supply cap reached, reward forfeited")
		return false, nil
	}
	if err := s.balanceRepo.Credit(ctx, tx, to, amount); err != nil {
		return false, err
	}
	supply.ApplyMint(amount)
	return true, nil
}

func (s *StakingServiceImpl) persist(ctx context.Context, tx pgx.Tx, supply *domain.SupplyState, staking *domain.StakingState, pos *domain.StakePosition, events []*domain.Event) error {
	if err := s.stakingRepo.SavePosition(ctx, tx, pos); err != nil {
		return apperror.InternalError(fmt.Errorf("save position: %w", err))
	}
	if err := s.stakingRepo.SaveState(ctx, tx, staking); err != nil {
		return apperror.InternalError(fmt.Errorf("save staking state: %w", err))
	}
	if err := s.supplyRepo.Save(ctx, tx, supply); err != nil {
		return apperror.InternalError(fmt.Errorf("save supply: %w", err))
	}
	for _, ev := range events {
		if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
			return apperror.InternalError(fmt.Errorf("append event: %w", err))
		}
	}
	return nil
}

func (s *StakingServiceImpl) checkPaused(ctx context.Context) error {
	allowed, err := s.pauseGate.Allowed(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("pause gate: %w", err))
	}
	if !allowed {
		return apperror.ErrOperationsPaused()
	}
	return nil
}

func (s *StakingServiceImpl) afterCommit(ctx context.Context, events []*domain.Event) {
	if s.notifier == nil {
		return
	}
	for _, ev := range events {
		s.notifier.Notify(ctx, ev)
	}
}

func rewardEvent(account domain.Address, pending *uint256.Int, minted bool) *domain.Event {
	return domain.NewEvent(domain.EventRewardClaimed, account, map[string]string{
		"amount": pending.Dec(),
		"minted": fmt.Sprintf("%t", minted),
	})
}
