package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Probe polls the primary service on a cron schedule and remembers the last answer.
// Until the first check completes the primary is assumed healthy.
type Probe struct {
	primary Primary
	cron    *cron.Cron
	spec    string
	timeout time.Duration
	healthy atomic.Bool
}

func NewProbe(primary Primary, spec string, timeout time.Duration) *Probe {
	p := &Probe{
		primary: primary,
		cron:    cron.New(),
		spec:    spec,
		timeout: timeout,
	}
	p.healthy.Store(true)
	return p
}

// Healthy returns the result of the last check.
func (p *Probe) Healthy() bool { return p.healthy.Load() }

// Check runs one probe synchronously.
func (p *Probe) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	ok := p.primary.Healthy(ctx)
	if prev := p.healthy.Swap(ok); prev != ok {
		slog.Info("gai service health changed", "healthy", ok)
	}
	return ok
}

// Every schedules an extra job on the probe's cron, e.g. cache cleanup.
func (p *Probe) Every(spec string, fn func()) error {
	if _, err := p.cron.AddFunc(spec, fn); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	return nil
}

// Start registers the probe, starts the scheduler and runs one check in the background.
func (p *Probe) Start(ctx context.Context) error {
	if _, err := p.cron.AddFunc(p.spec, func() { p.Check(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	p.cron.Start()
	go p.Check(ctx)
	return nil
}

// Stop halts the scheduler and waits for running jobs.
func (p *Probe) Stop() {
	<-p.cron.Stop().Done()
}
