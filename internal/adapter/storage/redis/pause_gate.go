package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const pauseGateKey = "stakeledger:operations_allowed"

// PauseGate implements ports.PauseGate backed by a Redis boolean. A missing
// key reads as allowed; the gate only blocks when explicitly set to false.
type PauseGate struct {
	client *goredis.Client
}

// NewPauseGate creates a Redis-backed pause gate.
func NewPauseGate(client *goredis.Client) *PauseGate {
	return &PauseGate{client: client}
}

// Allowed reports whether mutating ledger operations may proceed.
func (g *PauseGate) Allowed(ctx context.Context) (bool, error) {
	val, err := g.client.Get(ctx, pauseGateKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return true, nil
		}
		return false, fmt.Errorf("read pause gate: %w", err)
	}
	return val != "0", nil
}

// SetAllowed flips the gate. The value has no TTL; a pause outlives restarts.
func (g *PauseGate) SetAllowed(ctx context.Context, allowed bool) error {
	val := "1"
	if !allowed {
		val = "0"
	}
	if err := g.client.Set(ctx, pauseGateKey, val, 0).Err(); err != nil {
		return fmt.Errorf("set pause gate: %w", err)
	}
	return nil
}
