// Package scheduler wires up the cron job that periodically sweeps order
// deadlines, auto-closing active orders whose deadline has passed.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"jobmate/recruit-service/internal/dashboard"
)

// Scheduler wraps robfig/cron and manages the deadline sweep loop.
type Scheduler struct {
	cron   *cron.Cron
	engine *dashboard.Engine
	spec   string // cron spec, e.g. "@every 1m"
}

// New creates a Scheduler that sweeps every intervalMinutes minutes.
func New(engine *dashboard.Engine, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		engine: engine,
		spec:   fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the sweep and starts the scheduler. Also runs one sweep
// immediately so already-expired orders close without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runSweep(ctx context.Context) {
	if n := s.engine.SweepDeadlines(ctx); n > 0 {
		log.Printf("[scheduler] Deadline sweep closed %d order(s)", n)
	}
}
