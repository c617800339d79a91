package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crontab = `
jobs:
  - name: backup
    expression: "30 3 * * *"
    routine: db-backup
    missed_run_limit: 0
  - name: heartbeat
    expression: "@every 30s"
    routine: heartbeat
`

func TestParseTab(t *testing.T) {
	tab, err := ParseTab([]byte(crontab))
	require.NoError(t, err)
	require.Len(t, tab.Entries, 2)

	backup := tab.Entries[0]
	assert.Equal(t, "backup", backup.Name)
	assert.Equal(t, "30 3 * * *", backup.Expression)
	assert.Equal(t, "db-backup", backup.Routine)
	require.NotNil(t, backup.MissedRunLimit)
	assert.Equal(t, 0, *backup.MissedRunLimit)

	heartbeat := tab.Entries[1]
	assert.Equal(t, "heartbeat", heartbeat.Name)
	assert.Nil(t, heartbeat.MissedRunLimit, "omitted limit keeps the default")
}

func TestParseTab_InvalidExpression(t *testing.T) {
	_, err := ParseTab([]byte("jobs:\n  - name: broken\n    expression: \"61 * * * *\"\n    routine: rt\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entry "broken"`)
}

func TestParseTab_InvalidYAML(t *testing.T) {
	_, err := ParseTab([]byte("jobs: ["))
	assert.Error(t, err)
}

func TestScheduler_AddTab(t *testing.T) {
	now := at("2024-05-01T10:00:00Z")
	scheduler, err := New(WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	registry := NewRegistry()
	var backups, heartbeats int
	require.NoError(t, registry.Register("db-backup", Func(func() { backups++ })))
	require.NoError(t, registry.Register("heartbeat", Func(func() { heartbeats++ })))

	tab, err := ParseTab([]byte(crontab))
	require.NoError(t, err)
	require.NoError(t, scheduler.AddTab(tab, registry))
	require.Len(t, scheduler.jobs, 2)

	// Jobs built from a tab read the scheduler's clock.
	require.NoError(t, scheduler.Tick())
	now = at("2024-05-01T10:01:30Z")
	require.NoError(t, scheduler.Tick())

	assert.Zero(t, backups, "03:30 is hours away")
	assert.Equal(t, 1, heartbeats, "default limit replays one of the three missed half-minutes")
}

func TestScheduler_AddTab_UnknownRoutine(t *testing.T) {
	scheduler, err := New()
	require.NoError(t, err)

	tab, err := ParseTab([]byte(crontab))
	require.NoError(t, err)

	registry := NewRegistry()
	require.NoError(t, registry.Register("db-backup", Func(func() {})))

	err = scheduler.AddTab(tab, registry)
	require.ErrorIs(t, err, ErrRoutineNotExists)
	assert.Empty(t, scheduler.jobs, "a failing entry adds nothing")
}
