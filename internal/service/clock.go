package service

import (
	"time"

	"stakeledger/internal/core/ports"
)

// systemClock implements ports.Clock with wall-clock time. Operations read it
// once at entry; tests substitute a fixed clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock returns the wall-clock implementation of ports.Clock.
func NewSystemClock() ports.Clock { return systemClock{} }
