package engine

// Task is a deferred action created by Scheduler.After.
type Task struct {
	due       uint64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel prevents the task from firing. Safe to call more than once.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Scheduler runs deferred actions after a number of simulation frames.
// Time only moves when Advance is called, so timers freeze while the
// session is paused or ended and replay identically from recorded input.
type Scheduler struct {
	frame uint64
	epoch uint64 // bumped by CancelAll
	tasks []*Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once, frames steps from now. Values below one
// fire on the next Advance.
func (s *Scheduler) After(frames int, fn func()) *Task {
	if frames < 1 {
		frames = 1
	}
	t := &Task{due: s.frame + uint64(frames), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves time forward one frame and fires due tasks in the order
// they were scheduled. Tasks scheduled by a firing task wait at least one
// frame.
func (s *Scheduler) Advance() {
	s.frame++

	due := s.tasks
	s.tasks = nil
	epoch := s.epoch
	for i, t := range due {
		if s.epoch != epoch {
			// A task cancelled everything; the rest of this batch goes too.
			for _, rest := range due[i:] {
				rest.cancelled = true
			}
			return
		}
		switch {
		case t.cancelled:
		case t.due <= s.frame:
			t.done = true
			t.fn()
		default:
			s.tasks = append(s.tasks, t)
		}
	}
}

// CancelAll cancels every pending task. Called on reset so timers from a
// previous run cannot fire into the next one.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
	s.epoch++
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Frame returns the number of frames advanced so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}
