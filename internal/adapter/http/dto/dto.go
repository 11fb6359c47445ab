package dto

// TokenRequest is the request body for exchanging the bootstrap API key for a
// caller token.
type TokenRequest struct {
	APIKey  string `json:"api_key" binding:"required"`
	Address string `json:"address" binding:"required,safe_addr,max=128"`
}

// TokenResponse is the response body for a successful token exchange.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AmountRequest is the request body for stake and unstake. Amounts travel as
// decimal strings to cover the full 256-bit range.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,u256"`
}

// MintRequest is the request body for minting.
type MintRequest struct {
	To     string `json:"to" binding:"required,safe_addr,max=128"`
	Amount string `json:"amount" binding:"required,u256"`
}

// MaxSupplyRequest is the request body for updating the supply cap.
type MaxSupplyRequest struct {
	MaxSupply string `json:"max_supply" binding:"required,u256"`
}

// RewardRateRequest is the request body for setting the annual reward rate.
// A pointer so an explicit zero survives binding.
type RewardRateRequest struct {
	RateBps *uint64 `json:"rate_bps" binding:"required"`
}

// MinDurationRequest is the request body for setting the minimum staking
// duration.
type MinDurationRequest struct {
	Seconds *uint64 `json:"seconds" binding:"required"`
}

// MinterRequest is the request body for granting or revoking the minter role.
type MinterRequest struct {
	Address string `json:"address" binding:"required,safe_addr,max=128"`
}

// AdminTransferRequest is the request body for handing over the
// administrator role.
type AdminTransferRequest struct {
	NewAdministrator string `json:"new_administrator" binding:"required,safe_addr,max=128"`
}

// PauseRequest is the request body for toggling the operations gate.
type PauseRequest struct {
	OperationsAllowed *bool `json:"operations_allowed" binding:"required"`
}

// UpgradeRequest is the request body for authorizing a logic swap.
type UpgradeRequest struct {
	NewLogicHandle string `json:"new_logic_handle" binding:"required,max=256"`
}

// StakeReceiptResponse reports the outcome of a staking operation.
type StakeReceiptResponse struct {
	Account        string `json:"account"`
	Amount         string `json:"amount"`
	StakedAmount   string `json:"staked_amount"`
	RewardComputed string `json:"reward_computed"`
	RewardMinted   bool   `json:"reward_minted"`
}

// PositionResponse is the read model of one account's balance and stake.
type PositionResponse struct {
	Address        string `json:"address"`
	Balance        string `json:"balance"`
	StakedAmount   string `json:"staked_amount"`
	StakeStartedAt int64  `json:"stake_started_at"`
	BankedReward   string `json:"banked_reward"`
	PendingReward  string `json:"pending_reward"`
}

// OverviewResponse is the global ledger snapshot.
type OverviewResponse struct {
	TotalSupply   string `json:"total_supply"`
	MaxSupply     string `json:"max_supply"`
	TotalStaked   string `json:"total_staked"`
	SchemaVersion uint32 `json:"schema_version"`
}

// MintersResponse lists the current minter set.
type MintersResponse struct {
	Minters []string `json:"minters"`
}

// SchemaVersionResponse reports the active schema version.
type SchemaVersionResponse struct {
	Version uint32 `json:"version"`
}

// EventResponse is one entry of the operation event log.
type EventResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Account   string            `json:"account,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt string            `json:"created_at"`
}

// EventListResponse wraps a paginated event list.
type EventListResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
