package domain

import "github.com/holiman/uint256"

// StakePosition is the per-account staking record. A zero-valued position is
// indistinguishable from an absent one; records are created lazily on first
// stake and never destroyed.
type StakePosition struct {
	Address Address
	// StakedAmount is the number of tokens locked in custody for this account.
	StakedAmount *uint256.Int
	// StakeStartedAt is the unix time the stake was last opened or settled.
	StakeStartedAt int64
	// BankedReward is reward computed but not yet minted, carried across
	// settlements.
	BankedReward *uint256.Int
}

// NewStakePosition returns an idle position for addr.
func NewStakePosition(addr Address) *StakePosition {
	return &StakePosition{
		Address:      addr,
		StakedAmount: uint256.NewInt(0),
		BankedReward: uint256.NewInt(0),
	}
}

// IsStaking reports whether the account currently has tokens locked.
func (p *StakePosition) IsStaking() bool {
	return p.StakedAmount != nil && !p.StakedAmount.IsZero()
}

// Pending evaluates the reward function for this position at time now.
// ok is false on 256-bit overflow.
func (p *StakePosition) Pending(rateBps uint64, now int64) (*uint256.Int, bool) {
	var elapsed uint64
	if p.IsStaking() && now > p.StakeStartedAt {
		elapsed = uint64(now - p.StakeStartedAt)
	}
	return PendingReward(p.StakedAmount, rateBps, elapsed, p.BankedReward)
}

// StakingState holds the staking partition's global fields.
type StakingState struct {
	// RewardRatePerYearBps is the constant annual reward rate in basis points.
	RewardRatePerYearBps uint64
	// MinStakingDurationSeconds must elapse since StakeStartedAt before an
	// unstake is allowed.
	MinStakingDurationSeconds uint64
	// TotalStaked equals the sum of all StakedAmount, and equals the balance
	// of the custody account.
	TotalStaked *uint256.Int
}
