package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskScheduler_RunsInFireOrder(t *testing.T) {
	s := NewTaskScheduler()
	var order []string

	s.After(0, 500, TaskRespawn, func() { order = append(order, "respawn") })
	s.After(0, 120, TaskRevealCue, func() { order = append(order, "cue") })
	s.After(0, 120, TaskHideToast, func() { order = append(order, "toast") })

	assert.Equal(t, 0, s.RunDue(119))
	assert.Equal(t, 2, s.RunDue(120))
	assert.Equal(t, []string{"cue", "toast"}, order, "same fire time keeps insertion order")

	assert.Equal(t, 1, s.RunDue(10_000))
	assert.Equal(t, []string{"cue", "toast", "respawn"}, order)
	assert.Equal(t, 0, s.Len())
}

func TestTaskScheduler_TasksAddedWhileRunningWait(t *testing.T) {
	s := NewTaskScheduler()
	ran := 0
	s.After(0, 10, TaskRespawn, func() {
		ran++
		s.After(10, 0, TaskRespawn, func() { ran++ })
	})

	require.Equal(t, 1, s.RunDue(100))
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, s.Pending(TaskRespawn))

	require.Equal(t, 1, s.RunDue(100))
	assert.Equal(t, 2, ran)
}

func TestTaskScheduler_CancelKind(t *testing.T) {
	s := NewTaskScheduler()
	respawns := 0
	cues := 0
	for i := 0; i < 3; i++ {
		s.After(float64(i), 500, TaskRespawn, func() { respawns++ })
		s.After(float64(i), 120, TaskRevealCue, func() { cues++ })
	}

	assert.Equal(t, 3, s.CancelKind(TaskRespawn))
	assert.Equal(t, 0, s.Pending(TaskRespawn))
	assert.Equal(t, 3, s.Pending(TaskRevealCue))

	s.RunDue(1000)
	assert.Equal(t, 0, respawns)
	assert.Equal(t, 3, cues)
}

func TestTaskKindString(t *testing.T) {
	assert.Equal(t, "respawn", TaskRespawn.String())
	assert.Equal(t, "reveal-cue", TaskRevealCue.String())
	assert.Equal(t, "hide-toast", TaskHideToast.String())
	assert.Equal(t, "unknown", TaskKind(99).String())
}
