// Package scheduler wires up the cron job that periodically re-hunts every
// watched identifier and announces newly discovered accounts.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/robfig/cron/v3"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/hunt"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/store"
)

// Scheduler wraps robfig/cron and manages the monitor loop.
type Scheduler struct {
	cron  *cron.Cron
	hunts *store.HuntStore
	seen  *store.SeenCache
	coord *hunt.Coordinator
	spec  string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(hunts *store.HuntStore, seen *store.SeenCache, coord *hunt.Coordinator, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		hunts: hunts,
		seen:  seen,
		coord: coord,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so fresh watch entries are hunted without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runCycle(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runCycle loads the watch list and hunts each identifier in turn.
func (s *Scheduler) runCycle(ctx context.Context) {
	log.Println("[scheduler] Hunt cycle started")

	watched, err := s.hunts.LoadWatched(ctx)
	if err != nil {
		log.Printf("[scheduler] LoadWatched error: %v", err)
		return
	}
	if len(watched) == 0 {
		log.Println("[scheduler] Watch list empty — nothing to hunt")
		return
	}

	log.Printf("[scheduler] Hunting %d watched identifier(s)", len(watched))
	for _, w := range watched {
		if err := s.huntOne(ctx, w); err != nil {
			log.Printf("[scheduler] Hunt error for %q: %v — continuing", w.Identifier, err)
		}
	}

	log.Println("[scheduler] Hunt cycle complete")
}

func (s *Scheduler) huntOne(ctx context.Context, w store.WatchedIdentifier) error {
	report, err := s.coord.HuntAll(ctx, w.Identifier, false)
	if err != nil {
		return fmt.Errorf("hunt: %w", err)
	}

	raw, err := sonic.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	huntID, err := s.hunts.SaveHunt(ctx, w.Kind, report, raw)
	if err != nil {
		return err
	}

	var newFinds int
	for _, results := range report.Categories {
		for _, r := range results {
			isNew, err := s.seen.MarkFound(ctx, r.Identifier, r.Platform)
			if err != nil {
				log.Printf("[scheduler] Seen-cache error for %s/%s: %v", r.Identifier, r.Platform, err)
				continue
			}
			if isNew {
				newFinds++
				log.Printf("[scheduler] NEW account for %q on %s: %s", r.Identifier, r.Platform, r.ProfileURL)
			}
		}
	}

	log.Printf("[scheduler] Hunt %s for %q done — found=%d new=%d",
		huntID, w.Identifier, report.TotalFound(), newFinds)
	return nil
}
