package service

import (
	"context"
	"fmt"
	"strconv"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SetupParams carries the deployment-time initial values consumed by the
// version-specific setup runs. After a setup has run once, the persisted
// state is authoritative and these values are never consulted again.
type SetupParams struct {
	Administrator          domain.Address
	InitialMaxSupply       *uint256.Int
	RewardRateBps          uint64
	MinStakingDurationSecs uint64
}

// UpgradeServiceImpl implements ports.UpgradeService: the initialization
// guard around one-time setup runs plus the upgrade authorization hook.
//
// Each Setup(k) runs in one transaction that locks the schema version row,
// so concurrent boots of the same build race on the row lock and exactly one
// of them populates.
type UpgradeServiceImpl struct {
	schemaRepo  ports.SchemaRepository
	supplyRepo  ports.SupplyRepository
	stakingRepo ports.StakingRepository
	roleRepo    ports.RoleRepository
	eventRepo   ports.EventRepository
	transactor  ports.DBTransactor
	host        ports.UpgradeHost
	params      SetupParams
	log         zerolog.Logger
}

// NewUpgradeService creates a new UpgradeServiceImpl.
func NewUpgradeService(
	schemaRepo ports.SchemaRepository,
	supplyRepo ports.SupplyRepository,
	stakingRepo ports.StakingRepository,
	roleRepo ports.RoleRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	host ports.UpgradeHost,
	params SetupParams,
	log zerolog.Logger,
) *UpgradeServiceImpl {
	return &UpgradeServiceImpl{
		schemaRepo:  schemaRepo,
		supplyRepo:  supplyRepo,
		stakingRepo: stakingRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		transactor:  transactor,
		host:        host,
		params:      params,
		log:         log,
	}
}

// Setup runs the one-time population for schema version k. The guard never
// regresses: INIT_001 when k already ran, INIT_002 when a later version is
// already active.
func (s *UpgradeServiceImpl) Setup(ctx context.Context, version uint32) error {
	switch version {
	case 1, 2:
	default:
		return apperror.Validation(fmt.Sprintf("unknown schema version %d", version))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.schemaRepo.VersionForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock schema version: %w", err))
	}
	if current == version {
		return apperror.ErrAlreadyInitialized(version)
	}
	if current > version {
		return apperror.ErrVersionTooLow(version, current)
	}

	switch version {
	case 1:
		err = s.populateV1(ctx, dbTx)
	case 2:
		err = s.populateV2(ctx, dbTx)
	}
	if err != nil {
		return err
	}

	if err := s.schemaRepo.SetVersion(ctx, dbTx, version); err != nil {
		return apperror.InternalError(fmt.Errorf("set schema version: %w", err))
	}
	ev := domain.NewEvent(domain.EventSchemaUpgraded, domain.ZeroAddress, map[string]string{
		"old_version": strconv.FormatUint(uint64(current), 10),
		"new_version": strconv.FormatUint(uint64(version), 10),
	})
	if err := s.eventRepo.Append(ctx, dbTx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Uint32("from", current).
		Uint32("to", version).
		Msg("schema setup completed")
	return nil
}

// populateV1 seeds the core and roles partitions: supply state at zero under
// the configured cap, the configured administrator, and that administrator as
// the first minter.
func (s *UpgradeServiceImpl) populateV1(ctx context.Context, tx pgx.Tx) error {
	admin := s.params.Administrator
	if admin.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if s.params.InitialMaxSupply == nil || s.params.InitialMaxSupply.IsZero() {
		return apperror.ErrInvalidAmount()
	}

	if err := s.supplyRepo.Init(ctx, tx, domain.NewSupplyState(s.params.InitialMaxSupply)); err != nil {
		return apperror.InternalError(fmt.Errorf("init supply: %w", err))
	}
	if err := s.roleRepo.SetAdministrator(ctx, tx, admin); err != nil {
		return apperror.InternalError(fmt.Errorf("set administrator: %w", err))
	}
	if err := s.roleRepo.AddMinter(ctx, tx, admin); err != nil {
		return apperror.InternalError(fmt.Errorf("add initial minter: %w", err))
	}

	for _, ns := range []string{domain.NamespaceCoreV1, domain.NamespaceRolesV1} {
		if err := s.schemaRepo.RegisterPartition(ctx, tx, 1, ns, domain.PartitionHex(ns)); err != nil {
			return apperror.InternalError(fmt.Errorf("register partition %s: %w", ns, err))
		}
	}
	return nil
}

// populateV2 seeds the staking partition. Version-1 rows are read by the new
// logic as-is; nothing is migrated or reinterpreted.
func (s *UpgradeServiceImpl) populateV2(ctx context.Context, tx pgx.Tx) error {
	state := &domain.StakingState{
		RewardRatePerYearBps:      s.params.RewardRateBps,
		MinStakingDurationSeconds: s.params.MinStakingDurationSecs,
		TotalStaked:               uint256.NewInt(0),
	}
	if err := s.stakingRepo.InitState(ctx, tx, state); err != nil {
		return apperror.InternalError(fmt.Errorf("init staking state: %w", err))
	}
	if err := s.schemaRepo.RegisterPartition(ctx, tx, 2, domain.NamespaceStakingV2, domain.PartitionHex(domain.NamespaceStakingV2)); err != nil {
		return apperror.InternalError(fmt.Errorf("register partition %s: %w", domain.NamespaceStakingV2, err))
	}
	return nil
}

// CurrentVersion returns the active schema version, 0 before any setup.
func (s *UpgradeServiceImpl) CurrentVersion(ctx context.Context) (uint32, error) {
	version, err := s.schemaRepo.Version(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get schema version: %w", err))
	}
	return version, nil
}

// AuthorizeAndSwap verifies the caller holds the administrator role, records
// the authorization, then hands the new logic handle to the upgrade host.
// Storage partitions survive the swap untouched.
func (s *UpgradeServiceImpl) AuthorizeAndSwap(ctx context.Context, caller domain.Address, newLogicHandle string) error {
	if caller.IsZero() {
		return apperror.ErrInvalidIdentity()
	}
	if newLogicHandle == "" {
		return apperror.Validation("new logic handle must not be empty")
	}
	admin, err := s.roleRepo.Administrator(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get administrator: %w", err))
	}
	if admin != caller {
		return apperror.ErrUnauthorized()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ev := domain.NewEvent(domain.EventUpgradeAuthorized, caller, map[string]string{
		"new_logic_handle": newLogicHandle,
	})
	if err := s.eventRepo.Append(ctx, dbTx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.host.Swap(ctx, newLogicHandle); err != nil {
		return apperror.InternalError(fmt.Errorf("swap logic: %w", err))
	}

	s.log.Info().
		Str("admin", caller.String()).
		Str("handle", newLogicHandle).
		Msg("logic upgrade authorized")
	return nil
}
