package sched

import (
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

// Entry is a single crontab line binding a cron expression to a registered
// routine.
type Entry struct {
	// Name identifies the entry in errors.
	Name string `yaml:"name"`

	// Expression is a cron expression or descriptor, see Parse.
	Expression string `yaml:"expression"`

	// Routine is the registry name of the routine to run.
	Routine string `yaml:"routine"`

	// MissedRunLimit caps replayed occurrences per tick. Zero replays all
	// of them; omitted means DefaultMissedRunLimit.
	MissedRunLimit *int `yaml:"missed_run_limit"`
}

// Tab (crontab is short for cron table) is a declarative set of entries, the
// crontab equivalent of constructing jobs by hand. A Tab declares jobs only;
// it carries no runtime state and nothing in it survives a restart.
type Tab struct {
	Entries []Entry `yaml:"jobs"`
}

// ParseTab reads a YAML crontab and validates every entry's expression.
func ParseTab(data []byte) (Tab, error) {
	var tab Tab
	if err := yaml.Unmarshal(data, &tab); err != nil {
		return Tab{}, errors.Wrap(err, "parsing crontab")
	}

	for _, entry := range tab.Entries {
		if _, err := Parse(entry.Expression); err != nil {
			return Tab{}, errors.Wrapf(err, "entry %q", entry.Name)
		}
	}
	return tab, nil
}

// AddTab resolves every entry against the registry and appends the resulting
// jobs in entry order. Jobs built this way read the scheduler's clock. If any
// entry fails to parse or resolve, nothing is added.
func (s *Scheduler) AddTab(tab Tab, registry *Registry) error {
	jobs := make([]*Job, 0, len(tab.Entries))
	for _, entry := range tab.Entries {
		schedule, err := Parse(entry.Expression)
		if err != nil {
			return errors.Wrapf(err, "entry %q", entry.Name)
		}

		routine, err := registry.Resolve(entry.Routine)
		if err != nil {
			return errors.Wrapf(err, "entry %q", entry.Name)
		}

		opts := []JobOption{WithJobClock(s.now)}
		if entry.MissedRunLimit != nil {
			opts = append(opts, WithMissedRunLimit(*entry.MissedRunLimit))
		}
		jobs = append(jobs, NewJob(schedule, routine, opts...))
	}

	s.jobs = append(s.jobs, jobs...)
	return nil
}
