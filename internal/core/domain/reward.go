package domain

import (
	"math/big"

	"github.com/holiman/uint256"
)

const (
	// BasisPointsDenominator scales rewardRatePerYearBps to a fraction.
	BasisPointsDenominator = 10_000
	// SecondsPerYear is the accrual year (365 days, no leap handling).
	SecondsPerYear = 365 * 24 * 60 * 60
)

// AccruedReward computes the linear reward accrued by a stake of `staked`
// tokens over `elapsed` seconds at `rateBps` basis points per year:
//
//	floor(staked * rateBps * elapsed / (10000 * secondsPerYear))
//
// Integer division truncates; the fractional remainder is lost permanently.
// The intermediate product needs up to 384 bits, so it is carried in big.Int.
// ok is false when the quotient does not fit in 256 bits.
func AccruedReward(staked *uint256.Int, rateBps uint64, elapsed uint64) (*uint256.Int, bool) {
	if staked == nil || staked.IsZero() || rateBps == 0 || elapsed == 0 {
		return uint256.NewInt(0), true
	}

	num := staked.ToBig()
	num.Mul(num, new(big.Int).SetUint64(rateBps))
	num.Mul(num, new(big.Int).SetUint64(elapsed))

	den := new(big.Int).SetUint64(BasisPointsDenominator)
	den.Mul(den, big.NewInt(SecondsPerYear))

	num.Quo(num, den)

	accrued, overflow := uint256.FromBig(num)
	if overflow {
		return nil, false
	}
	return accrued, true
}

// PendingReward is the accrued reward plus the banked residual carried from
// earlier settlements. ok is false on 256-bit overflow.
func PendingReward(staked *uint256.Int, rateBps uint64, elapsed uint64, banked *uint256.Int) (*uint256.Int, bool) {
	accrued, ok := AccruedReward(staked, rateBps, elapsed)
	if !ok {
		return nil, false
	}
	if banked == nil || banked.IsZero() {
		return accrued, true
	}
	pending, carry := new(uint256.Int).AddOverflow(accrued, banked)
	if carry {
		return nil, false
	}
	return pending, true
}
