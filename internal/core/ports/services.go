package ports

import (
	"context"
	"time"

	"stakeledger/internal/core/domain"

	"github.com/holiman/uint256"
)

// Clock supplies the operation timestamp. Time advances only as an external
// input, read once at the start of each operation.
type Clock interface {
	Now() time.Time
}

// PauseGate is the external operations switch. Every mutating staking or
// minting operation checks it first.
type PauseGate interface {
	Allowed(ctx context.Context) (bool, error)
	SetAllowed(ctx context.Context, allowed bool) error
}

// UpgradeHost atomically replaces executable logic while leaving all storage
// partitions untouched. The ledger only supplies the authorization hook; the
// swap mechanism itself is external.
type UpgradeHost interface {
	Swap(ctx context.Context, newLogicHandle string) error
}

// TokenService handles caller-identity token operations. Tokens authenticate
// an address only; roles are re-checked against storage on every call.
type TokenService interface {
	Generate(addr domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	Address domain.Address
}

// --- Service Ports (Business Logic) ---

// SupplyService wraps the balance primitive with supply-cap bookkeeping.
type SupplyService interface {
	Mint(ctx context.Context, caller, to domain.Address, amount *uint256.Int) error
	UpdateMaxSupply(ctx context.Context, caller domain.Address, newMax *uint256.Int) error
	Overview(ctx context.Context) (*SupplyOverview, error)
}

// SupplyOverview is a read-model snapshot of the global ledger state.
type SupplyOverview struct {
	TotalSupply   *uint256.Int
	MaxSupply     *uint256.Int
	TotalStaked   *uint256.Int
	SchemaVersion uint32
}

// StakeReceipt reports the outcome of a staking operation. RewardComputed is
// the full settled reward, whether or not it was actually minted.
type StakeReceipt struct {
	Account        domain.Address
	Amount         *uint256.Int
	StakedAmount   *uint256.Int
	RewardComputed *uint256.Int
	RewardMinted   bool
}

// StakingService is the stake lifecycle and reward settlement engine.
type StakingService interface {
	Stake(ctx context.Context, caller domain.Address, amount *uint256.Int) (*StakeReceipt, error)
	Unstake(ctx context.Context, caller domain.Address, amount *uint256.Int) (*StakeReceipt, error)
	ClaimRewards(ctx context.Context, caller domain.Address) (*StakeReceipt, error)
	Position(ctx context.Context, addr domain.Address) (*PositionInfo, error)
}

// PositionInfo is a read-model snapshot of one account's stake.
type PositionInfo struct {
	Address        domain.Address
	Balance        *uint256.Int
	StakedAmount   *uint256.Int
	StakeStartedAt int64
	BankedReward   *uint256.Int
	PendingReward  *uint256.Int
}

// AdminService covers the administrator-only mutators.
type AdminService interface {
	SetRewardRate(ctx context.Context, caller domain.Address, rateBps uint64) error
	SetMinStakingDuration(ctx context.Context, caller domain.Address, seconds uint64) error
	AddMinter(ctx context.Context, caller, minter domain.Address) error
	RemoveMinter(ctx context.Context, caller, minter domain.Address) error
	TransferAdministrator(ctx context.Context, caller, newAdmin domain.Address) error
	SetPaused(ctx context.Context, caller domain.Address, allowed bool) error
	ListMinters(ctx context.Context) ([]domain.Address, error)
}

// UpgradeService is the initialization guard plus the upgrade authorization
// hook.
type UpgradeService interface {
	// Setup runs the one-time population for schema version k. It fails when
	// the current version is >= k and never regresses.
	Setup(ctx context.Context, version uint32) error
	CurrentVersion(ctx context.Context) (uint32, error)
	// AuthorizeAndSwap verifies the caller is the administrator and hands the
	// new logic handle to the upgrade host.
	AuthorizeAndSwap(ctx context.Context, caller domain.Address, newLogicHandle string) error
}

// EventNotifier forwards committed events to an external subscriber
// (best-effort, after commit).
type EventNotifier interface {
	Notify(ctx context.Context, event *domain.Event)
}
