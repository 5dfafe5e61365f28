package tracking

import (
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule is the live-tracking refresh cadence
const DefaultSchedule = "@every 30s"

// Poller drives the live-tracking view's refresh loop: one immediate fetch
// on Start, then a repeating fetch on a fixed schedule until Stop. Stop
// disposes the schedule deterministically, no fetch fires after it returns
// and the running cron has drained.
type Poller struct {
	fetch    func()
	schedule string

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

// NewPoller creates a poller with the default 30-second schedule
func NewPoller(fetch func()) *Poller {
	return NewPollerWithSchedule(fetch, DefaultSchedule)
}

// NewPollerWithSchedule creates a poller with a custom cron schedule,
// used by tests to tighten the interval
func NewPollerWithSchedule(fetch func(), schedule string) *Poller {
	return &Poller{fetch: fetch, schedule: schedule}
}

// Start performs the immediate fetch and begins the repeating schedule.
// Starting an already started poller is a no-op. The immediate fetch runs
// after the lock is released so a slow fetch never blocks Stop or Running.
func (p *Poller) Start() error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(p.schedule, p.fetch); err != nil {
		p.mu.Unlock()
		return err
	}

	c.Start()
	p.cron = c
	p.started = true
	p.mu.Unlock()

	zap.S().Debugw("live-tracking poller started", "schedule", p.schedule)
	p.fetch()
	return nil
}

// Stop cancels the repeating schedule and waits for any in-flight run to
// finish. Safe to call on a poller that never started.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.cron = nil
	p.started = false
	zap.S().Debugw("live-tracking poller stopped")
}

// Running reports whether the poller is currently scheduled
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}
