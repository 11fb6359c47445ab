package service

import (
	"context"
	"fmt"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// SupplyServiceImpl implements ports.SupplyService: minter-gated issuance and
// the supply-cap bookkeeping around it.
type SupplyServiceImpl struct {
	supplyRepo  ports.SupplyRepository
	stakingRepo ports.StakingRepository
	balanceRepo ports.BalanceRepository
	roleRepo    ports.RoleRepository
	eventRepo   ports.EventRepository
	schemaRepo  ports.SchemaRepository
	transactor  ports.DBTransactor
	pauseGate   ports.PauseGate
	notifier    ports.EventNotifier // nil = notifications disabled
	log         zerolog.Logger
}

// NewSupplyService creates a new SupplyServiceImpl.
func NewSupplyService(
	supplyRepo ports.SupplyRepository,
	stakingRepo ports.StakingRepository,
	balanceRepo ports.BalanceRepository,
	roleRepo ports.RoleRepository,
	eventRepo ports.EventRepository,
	schemaRepo ports.SchemaRepository,
	transactor ports.DBTransactor,
	pauseGate ports.PauseGate,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) *SupplyServiceImpl {
	return &SupplyServiceImpl{
		supplyRepo:  supplyRepo,
		stakingRepo: stakingRepo,
		balanceRepo: balanceRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		schemaRepo:  schemaRepo,
		transactor:  transactor,
		pauseGate:   pauseGate,
		notifier:    notifier,
		log:         log,
	}
}

// Mint issues amount to the target account. Unlike reward settlement, a mint
// that would breach the cap is rejected outright.
func (s *SupplyServiceImpl) Mint(ctx context.Context, caller, to domain.Address, amount *uint256.Int) error {
	if caller.IsZero() || to.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if amount == nil || amount.IsZero() {
		return apperror.ErrInvalidAmount()
	}
	allowed, err := s.pauseGate.Allowed(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("pause gate: %w", err))
	}
	if !allowed {
		return apperror.ErrOperationsPaused()
	}

	// Role check hits storage on every call; a freshly revoked minter is
	// rejected regardless of token age.
	isMinter, err := s.roleRepo.IsMinter(ctx, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check minter: %w", err))
	}
	if !isMinter {
		return apperror.ErrUnauthorized()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	supply, err := s.supplyRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock supply: %w", err))
	}
	if !supply.CanMint(amount) {
		return apperror.ErrSupplyCapExceeded()
	}

	if err := s.balanceRepo.Credit(ctx, dbTx, to, amount); err != nil {
		return err
	}
	supply.ApplyMint(amount)
	if err := s.supplyRepo.Save(ctx, dbTx, supply); err != nil {
		return apperror.InternalError(fmt.Errorf("save supply: %w", err))
	}

	ev := domain.NewEvent(domain.EventMint, to, map[string]string{
		"minter": caller.String(),
		"amount": amount.Dec(),
	})
	if err := s.eventRepo.Append(ctx, dbTx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, ev)
	}

	s.log.Info().
		Str("minter", caller.String()).
		Str("account", to.String()).
		Str("amount", amount.Dec()).
		Str("total_supply", supply.TotalSupply.Dec()).
		Msg("tokens minted")
	return nil
}

// UpdateMaxSupply overwrites the supply cap. Administrator only; the new cap
// may not undercut what is already in circulation.
func (s *SupplyServiceImpl) UpdateMaxSupply(ctx context.Context, caller domain.Address, newMax *uint256.Int) error {
	if caller.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if newMax == nil || newMax.IsZero() {
		return apperror.ErrInvalidAmount()
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	supply, err := s.supplyRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock supply: %w", err))
	}
	if newMax.Lt(supply.TotalSupply) {
		return apperror.ErrInvalidAmount()
	}

	oldMax := supply.MaxSupply.Clone()
	supply.MaxSupply = newMax.Clone()
	if err := s.supplyRepo.Save(ctx, dbTx, supply); err != nil {
		return apperror.InternalError(fmt.Errorf("save supply: %w", err))
	}

	ev := domain.NewEvent(domain.EventMaxSupplyChanged, caller, map[string]string{
		"old": oldMax.Dec(),
		"new": newMax.Dec(),
	})
	if err := s.eventRepo.Append(ctx, dbTx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, ev)
	}

	s.log.Info().
		Str("admin", caller.String()).
		Str("old_max", oldMax.Dec()).
		Str("new_max", newMax.Dec()).
		Msg("max supply updated")
	return nil
}

// Overview returns the global ledger snapshot.
func (s *SupplyServiceImpl) Overview(ctx context.Context) (*ports.SupplyOverview, error) {
	supply, err := s.supplyRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get supply: %w", err))
	}
	staking, err := s.stakingRepo.State(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get staking state: %w", err))
	}
	version, err := s.schemaRepo.Version(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get schema version: %w", err))
	}
	return &ports.SupplyOverview{
		TotalSupply:   supply.TotalSupply,
		MaxSupply:     supply.MaxSupply,
		TotalStaked:   staking.TotalStaked,
		SchemaVersion: version,
	}, nil
}

func (s *SupplyServiceImpl) requireAdmin(ctx context.Context, caller domain.Address) error {
	admin, err := s.roleRepo.Administrator(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get administrator: %w", err))
	}
	if admin != caller {
		return apperror.ErrUnauthorized()
	}
	return nil
}
