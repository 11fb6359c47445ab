package service

import (
	"context"
	"fmt"
	"strconv"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService: the administrator-only
// parameter and role mutators. Admin operations stay available while the
// pause gate is closed, otherwise a pause could never be lifted.
type AdminServiceImpl struct {
	stakingRepo ports.StakingRepository
	roleRepo    ports.RoleRepository
	eventRepo   ports.EventRepository
	transactor  ports.DBTransactor
	pauseGate   ports.PauseGate
	notifier    ports.EventNotifier // nil = notifications disabled
	log         zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	stakingRepo ports.StakingRepository,
	roleRepo ports.RoleRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	pauseGate ports.PauseGate,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		stakingRepo: stakingRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		transactor:  transactor,
		pauseGate:   pauseGate,
		notifier:    notifier,
		log:         log,
	}
}

// SetRewardRate overwrites the annual reward rate. The new rate applies to
// the whole elapsed interval of every open position at its next settlement;
// there is no per-interval blending.
func (s *AdminServiceImpl) SetRewardRate(ctx context.Context, caller domain.Address, rateBps uint64) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.updateStakingState(ctx, caller, domain.EventRewardRateChanged,
		func(st *domain.StakingState) (old, new string) {
			old = strconv.FormatUint(st.RewardRatePerYearBps, 10)
			st.RewardRatePerYearBps = rateBps
			return old, strconv.FormatUint(rateBps, 10)
		})
}

// SetMinStakingDuration overwrites the minimum staking duration in seconds.
func (s *AdminServiceImpl) SetMinStakingDuration(ctx context.Context, caller domain.Address, seconds uint64) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.updateStakingState(ctx, caller, domain.EventMinDurationSet,
		func(st *domain.StakingState) (old, new string) {
			old = strconv.FormatUint(st.MinStakingDurationSeconds, 10)
			st.MinStakingDurationSeconds = seconds
			return old, strconv.FormatUint(seconds, 10)
		})
}

// AddMinter grants the minter role. Idempotent: re-adding an existing minter
// succeeds without a duplicate entry.
func (s *AdminServiceImpl) AddMinter(ctx context.Context, caller, minter domain.Address) error {
	if minter.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Event, error) {
		if err := s.roleRepo.AddMinter(ctx, tx, minter); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("add minter: %w", err))
		}
		return domain.NewEvent(domain.EventMinterAdded, minter, map[string]string{
			"by": caller.String(),
		}), nil
	})
}

// RemoveMinter revokes the minter role. Removing a non-minter is a no-op.
func (s *AdminServiceImpl) RemoveMinter(ctx context.Context, caller, minter domain.Address) error {
	if minter.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Event, error) {
		if err := s.roleRepo.RemoveMinter(ctx, tx, minter); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("remove minter: %w", err))
		}
		return domain.NewEvent(domain.EventMinterRemoved, minter, map[string]string{
			"by": caller.String(),
		}), nil
	})
}

// TransferAdministrator hands the administrator role to newAdmin. The old
// administrator keeps any minter role it holds separately.
func (s *AdminServiceImpl) TransferAdministrator(ctx context.Context, caller, newAdmin domain.Address) error {
	if newAdmin.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Event, error) {
		if err := s.roleRepo.SetAdministrator(ctx, tx, newAdmin); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("set administrator: %w", err))
		}
		return domain.NewEvent(domain.EventAdminChanged, newAdmin, map[string]string{
			"old": caller.String(),
			"new": newAdmin.String(),
		}), nil
	})
}

// SetPaused flips the external operations gate.
func (s *AdminServiceImpl) SetPaused(ctx context.Context, caller domain.Address, allowed bool) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if err := s.pauseGate.SetAllowed(ctx, allowed); err != nil {
		return apperror.InternalError(fmt.Errorf("set pause gate: %w", err))
	}
	err := s.inTx(ctx, func(tx pgx.Tx) (*domain.Event, error) {
		return domain.NewEvent(domain.EventPauseToggled, caller, map[string]string{
			"operations_allowed": strconv.FormatBool(allowed),
		}), nil
	})
	if err != nil {
		return err
	}
	s.log.Info().
		Str("admin", caller.String()).
		Bool("operations_allowed", allowed).
		Msg("pause gate toggled")
	return nil
}

// ListMinters returns the current minter set.
func (s *AdminServiceImpl) ListMinters(ctx context.Context) ([]domain.Address, error) {
	minters, err := s.roleRepo.ListMinters(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list minters: %w", err))
	}
	return minters, nil
}

func (s *AdminServiceImpl) requireAdmin(ctx context.Context, caller domain.Address) error {
	if caller.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	admin, err := s.roleRepo.Administrator(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get administrator: %w", err))
	}
	if admin != caller {
		return apperror.ErrUnauthorized()
	}
	return nil
}

func (s *AdminServiceImpl) updateStakingState(ctx context.Context, caller domain.Address, kind domain.EventKind, mutate func(*domain.StakingState) (old, new string)) error {
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Event, error) {
		st, err := s.stakingRepo.StateForUpdate(ctx, tx)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock staking state: %w", err))
		}
		oldVal, newVal := mutate(st)
		if err := s.stakingRepo.SaveState(ctx, tx, st); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save staking state: %w", err))
		}
		s.log.Info().
			Str("admin", caller.String()).
			Str("kind", string(kind)).
			Str("old", oldVal).
			Str("new", newVal).
			Msg("staking parameter updated")
		return domain.NewEvent(kind, caller, map[string]string{
			"old": oldVal,
			"new": newVal,
		}), nil
	})
}

func (s *AdminServiceImpl) inTx(ctx context.Context, fn func(pgx.Tx) (*domain.Event, error)) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ev, err := fn(dbTx)
	if err != nil {
		return err
	}
	if ev != nil {
		if err := s.eventRepo.Append(ctx, dbTx, ev); err != nil {
			return apperror.InternalError(fmt.Errorf("append event: %w", err))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	if ev != nil && s.notifier != nil {
		s.notifier.Notify(ctx, ev)
	}
	return nil
}
