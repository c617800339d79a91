package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultIdleDelay is reported by TimeTillNextJob when the scheduler holds no
// jobs.
const DefaultIdleDelay = 500 * time.Millisecond

// Scheduler holds an append-only, insertion-ordered collection of jobs and
// ticks them on demand. It performs no internal locking: callers driving a
// Scheduler from multiple goroutines must serialize access themselves.
type Scheduler struct {
	jobs []*Job
	now  func() time.Time

	idleDelay time.Duration
	logger    zerolog.Logger
	stop      chan struct{}
}

// New is the constructor for Scheduler.
func New(opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		now:       time.Now,
		idleDelay: DefaultIdleDelay,
		logger:    zerolog.Nop(),
		stop:      make(chan struct{}, 1),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a job to the collection. The scheduler takes ownership: jobs
// are ticked in insertion order and are never removed.
func (s *Scheduler) Add(job *Job) {
	s.jobs = append(s.jobs, job)
}

// Tick ticks every job in insertion order. See TickContext.
func (s *Scheduler) Tick() error {
	return s.TickContext(context.Background())
}

// TickContext ticks every job in insertion order, each completing all of its
// due runs before the next job starts. The first error aborts the remainder
// of the call, unticked jobs included.
func (s *Scheduler) TickContext(ctx context.Context) error {
	for _, job := range s.jobs {
		if err := job.TickContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TimeTillNextJob returns how long a driver should sleep before ticking
// again: the gap from now to the earliest upcoming occurrence across all
// jobs, never negative. An empty scheduler, or one whose schedules have no
// further occurrences, reports the idle delay.
func (s *Scheduler) TimeTillNextJob() time.Duration {
	if len(s.jobs) == 0 {
		return s.idleDelay
	}

	now := s.now()
	var wait time.Duration
	found := false
	for _, job := range s.jobs {
		event := job.schedule.Next(now)
		if event.IsZero() {
			continue
		}
		if d := event.Sub(now); !found || d < wait {
			wait = d
			found = true
		}
	}

	if !found {
		return s.idleDelay
	}
	if wait < 0 {
		wait = 0
	}
	return wait
}

// Run drives the scheduler: sleep until the next job is due, tick, repeat.
// It returns the first tick error, ctx.Err() when the context is cancelled,
// or nil after Stop.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info().Msg("scheduler started")

	for {
		wait := s.TimeTillNextJob()
		s.logger.Debug().Dur("wait", wait).Msg("sleeping till next job")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info().Msg("scheduler stopped: context done")
			return ctx.Err()
		case <-s.stop:
			timer.Stop()
			s.logger.Info().Msg("scheduler stopped")
			return nil
		case <-timer.C:
		}

		if err := s.TickContext(ctx); err != nil {
			s.logger.Error().Err(err).Msg("tick failed, scheduler stopping")
			return err
		}
	}
}

// Stop ends a running Run loop once its current tick completes. Stopping a
// scheduler that is not running makes the next Run return immediately.
func (s *Scheduler) Stop() {
	select {
	case s.stop <- struct{}{}:
	default:
	}
}
