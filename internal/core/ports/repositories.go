package ports

import (
	"context"

	"stakeledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// BalanceRepository is the external fungible-balance primitive. It guarantees
// conservation: within any committed transaction, the sum of all balances
// moves in lockstep with the supply ledger's totalSupply.
// Methods accepting pgx.Tx are used inside transaction blocks with row locks.
type BalanceRepository interface {
	BalanceOf(ctx context.Context, addr domain.Address) (*uint256.Int, error)
	BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*uint256.Int, error)
	// Credit adds amount to addr's balance, creating the row lazily.
	Credit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error
	// Debit subtracts amount from addr's balance; fails when the balance is
	// below amount.
	Debit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error
	// Transfer moves amount between accounts; fails when from's balance is
	// below amount.
	Transfer(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount *uint256.Int) error
	// SumBalances returns the sum of every account balance (conservation audits).
	SumBalances(ctx context.Context) (*uint256.Int, error)
}

// SupplyRepository persists the core partition's supply state as a single row
// keyed by the partition key.
type SupplyRepository interface {
	Get(ctx context.Context) (*domain.SupplyState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.SupplyState, error)
	Save(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error
	// Init inserts the initial supply row. Run once by the version-1 setup.
	Init(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error
}

// StakingRepository persists the staking partition: global staking state plus
// per-account positions.
type StakingRepository interface {
	State(ctx context.Context) (*domain.StakingState, error)
	StateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.StakingState, error)
	SaveState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error
	// InitState inserts the initial staking row. Run once by the version-2 setup.
	InitState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error

	// Position returns addr's stake position, or an idle zero-valued position
	// when no row exists yet.
	Position(ctx context.Context, addr domain.Address) (*domain.StakePosition, error)
	PositionForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.StakePosition, error)
	SavePosition(ctx context.Context, tx pgx.Tx, pos *domain.StakePosition) error
	// SumStaked returns the sum of every position's staked amount
	// (staking-accounting audits).
	SumStaked(ctx context.Context) (*uint256.Int, error)
}

// RoleRepository persists the access-control roles: one administrator and a
// set of minters.
type RoleRepository interface {
	Administrator(ctx context.Context) (domain.Address, error)
	SetAdministrator(ctx context.Context, tx pgx.Tx, addr domain.Address) error
	IsMinter(ctx context.Context, addr domain.Address) (bool, error)
	AddMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error
	RemoveMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error
	ListMinters(ctx context.Context) ([]domain.Address, error)
}

// SchemaRepository persists the monotonic schema version and the partition
// registry.
type SchemaRepository interface {
	// EnsureSchema creates all tables if absent. Safe to run on every boot.
	EnsureSchema(ctx context.Context) error
	Version(ctx context.Context) (uint32, error)
	// VersionForUpdate locks the version row so the check-then-set of a setup
	// run is a single atomic step.
	VersionForUpdate(ctx context.Context, tx pgx.Tx) (uint32, error)
	SetVersion(ctx context.Context, tx pgx.Tx, version uint32) error
	// RegisterPartition records a namespace and its derived key for a schema
	// version. The key column carries a UNIQUE constraint: a collision aborts
	// the setup transaction.
	RegisterPartition(ctx context.Context, tx pgx.Tx, version uint32, namespace, key string) error
}

// EventListParams holds pagination for the event log.
type EventListParams struct {
	Kind     *domain.EventKind
	Account  *domain.Address
	Page     int
	PageSize int
}

// EventRepository appends and lists structured operation events. Append runs
// inside the operation's transaction so emission happens at commit time.
type EventRepository interface {
	Append(ctx context.Context, tx pgx.Tx, event *domain.Event) error
	List(ctx context.Context, params EventListParams) ([]domain.Event, int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
