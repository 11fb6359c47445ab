package domain

import "github.com/holiman/uint256"

// SupplyState holds the core partition's supply bookkeeping.
type SupplyState struct {
	TotalSupply *uint256.Int
	MaxSupply   *uint256.Int
}

// NewSupplyState returns a supply state with zero total supply and the given
// ceiling.
func NewSupplyState(maxSupply *uint256.Int) *SupplyState {
	return &SupplyState{
		TotalSupply: uint256.NewInt(0),
		MaxSupply:   maxSupply.Clone(),
	}
}

// CanMint reports whether minting amount keeps TotalSupply within MaxSupply.
func (s *SupplyState) CanMint(amount *uint256.Int) bool {
	next, overflow := new(uint256.Int).AddOverflow(s.TotalSupply, amount)
	if overflow {
		return false
	}
	return !next.Gt(s.MaxSupply)
}

// ApplyMint increases TotalSupply by amount. Callers must have checked
// CanMint first.
func (s *SupplyState) ApplyMint(amount *uint256.Int) {
	s.TotalSupply = new(uint256.Int).Add(s.TotalSupply, amount)
}
