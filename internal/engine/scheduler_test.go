package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresAfterFrames(t *testing.T) {
	s := NewScheduler()
	fired := 0
	task := s.After(3, func() { fired++ })

	s.Advance()
	s.Advance()
	assert.Equal(t, 0, fired)
	assert.True(t, task.Pending())

	s.Advance()
	assert.Equal(t, 1, fired)
	assert.False(t, task.Pending())

	s.Advance()
	assert.Equal(t, 1, fired, "tasks fire once")
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerOrderAndZeroDelay(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(2, func() { order = append(order, "b") })
	s.After(0, func() { order = append(order, "a") })
	s.After(2, func() { order = append(order, "c") })

	s.Advance()
	assert.Equal(t, []string{"a"}, order)
	s.Advance()
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	task := s.After(1, func() { fired = true })
	task.Cancel()
	task.Cancel()

	s.Advance()
	assert.False(t, fired)

	var nilTask *Task
	assert.NotPanics(t, nilTask.Cancel)
}

func TestSchedulerCancelAllDropsStaleTimers(t *testing.T) {
	s := NewScheduler()
	reloaded := false
	s.After(5, func() { reloaded = true })
	s.Advance()

	s.CancelAll()
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.False(t, reloaded, "a cancelled reload must not complete after reset")
}

func TestSchedulerCancelAllFromTask(t *testing.T) {
	s := NewScheduler()
	var fired []int
	s.After(1, func() {
		fired = append(fired, 1)
		s.CancelAll()
		s.After(1, func() { fired = append(fired, 3) })
	})
	s.After(1, func() { fired = append(fired, 2) })

	s.Advance()
	assert.Equal(t, []int{1}, fired)
	s.Advance()
	assert.Equal(t, []int{1, 3}, fired, "tasks scheduled after CancelAll survive")
}

func TestSchedulerChainedTaskWaits(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.After(1, func() {
		n++
		s.After(0, func() { n++ })
	})
	s.Advance()
	assert.Equal(t, 1, n)
	s.Advance()
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(2), s.Frame())
}
