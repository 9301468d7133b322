// Package sched drives the three timing mechanisms: the daily cron trigger,
// the fixed-interval poller, and the self-rescheduling powerup timer. A
// Scheduler goes from unstarted to running once, at successful login, and
// only process exit stops it.
package sched

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(time.UTC))}
}

// StartDaily fires job once per day at the given wall-clock time, UTC.
func (s *Scheduler) StartDaily(hhmm string, job func()) error {
	spec, err := cronSpec(hhmm)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("sched: daily: %w", err)
	}
	s.cron.Start()
	log.Info().Str("at", hhmm).Msg("daily trigger armed")
	return nil
}

// StartPoller runs job every interval, forever. The job owns its own error
// handling; the ticker never stops.
func (s *Scheduler) StartPoller(interval time.Duration, job func()) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for range t.C {
			job()
		}
	}()
	log.Info().Dur("interval", interval).Msg("poller started")
}

// ArmPowerup starts the self-rescheduling timer: wait the initial delay,
// fire, and rearm with whatever delay fire returns. Never a repeating timer
// with captured state — each delay is computed from freshly persisted state
// by the owner.
func (s *Scheduler) ArmPowerup(initial time.Duration, fire func() time.Duration) {
	go func() {
		d := initial
		for {
			time.Sleep(d)
			d = fire()
		}
	}()
	log.Info().Dur("initial", initial).Msg("powerup timer armed")
}

// cronSpec converts "HH:MM" into a five-field cron spec.
func cronSpec(hhmm string) (string, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("sched: bad daily time %q, want HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return "", fmt.Errorf("sched: bad hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("sched: bad minute in %q", hhmm)
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}
