package sched

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Option is a Scheduler constructor function.
type Option func(*Scheduler) error

// WithClock sets the clock used by TimeTillNextJob and inherited by jobs
// added through AddTab.
//
// The clock defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) error {
		if now == nil {
			return errors.New("nil clock")
		}
		s.now = now
		return nil
	}
}

// WithLogger sets the logger used by the Run loop.
//
// Logging defaults to off.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) error {
		s.logger = logger
		return nil
	}
}

// WithIdleDelay sets the wait TimeTillNextJob reports while no job has an
// upcoming occurrence.
//
// The delay defaults to DefaultIdleDelay.
func WithIdleDelay(delay time.Duration) Option {
	return func(s *Scheduler) error {
		if delay <= 0 {
			return errors.Errorf("non-positive idle delay %s", delay)
		}
		s.idleDelay = delay
		return nil
	}
}
