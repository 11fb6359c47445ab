package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// EventKind identifies a state-changing operation for external indexing.
type EventKind string

const (
	EventMint              EventKind = "mint"
	EventStake             EventKind = "stake"
	EventUnstake           EventKind = "unstake"
	EventRewardClaimed     EventKind = "reward_claimed"
	EventMaxSupplyChanged  EventKind = "max_supply_changed"
	EventRewardRateChanged EventKind = "reward_rate_changed"
	EventMinDurationSet    EventKind = "min_staking_duration_changed"
	EventMinterAdded       EventKind = "minter_added"
	EventMinterRemoved     EventKind = "minter_removed"
	EventAdminChanged      EventKind = "administrator_changed"
	EventPauseToggled      EventKind = "pause_toggled"
	EventSchemaUpgraded    EventKind = "schema_upgraded"
	EventUpgradeAuthorized EventKind = "upgrade_authorized"
)

// Event is an immutable record appended at commit time for every
// state-changing operation. No ledger logic depends on events being read.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	Kind      EventKind         `json:"kind"`
	Account   Address           `json:"account,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewEvent creates an event for the given subject account. Amount-valued
// fields travel as decimal strings.
func NewEvent(kind EventKind, account Address, fields map[string]string) *Event {
	return &Event{
		ID:        uuid.New(),
		Kind:      kind,
		Account:   account,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

// Dec renders a possibly-nil amount as a decimal string for event fields.
func Dec(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}
