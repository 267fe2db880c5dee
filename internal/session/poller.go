package session

import (
	"context"
	"time"
)

// DefaultPollInterval is the liveness sweep interval.
const DefaultPollInterval = 2 * time.Second

// Poller runs the periodic liveness sweep over all live sessions.
//
// Probes are cheap (one signal/ps round-trip per session), so the sweep is
// serial; it completes well within the interval for any realistic session
// count and never blocks user-initiated actions — those serialize with the
// sweep only per project, inside the registry.
type Poller struct {
	manager  *Manager
	interval time.Duration

	// OnChange, when set, is called with each session the sweep
	// transitioned to Ended.
	OnChange func(Session)
}

// NewPoller creates a poller. A non-positive interval uses the default.
func NewPoller(manager *Manager, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{manager: manager, interval: interval}
}

// Run sweeps until ctx is cancelled. The first sweep happens immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.sweep()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) sweep() {
	for _, sess := range p.manager.CheckLiveness() {
		if p.OnChange != nil {
			p.OnChange(sess)
		}
	}
}
