// Package scheduler runs delayed and repeating callbacks on an external tick.
//
// The scheduler owns no clock and no goroutine: the host calls Update(dt)
// once per frame and every due action fires synchronously inside that call.
// Repeating tasks re-arm by adding their interval back, so periods drift with
// the frame step instead of tracking wall-clock time. That is fine for sonar
// pings and respawns, which are cosmetic.
package scheduler

import (
	"log/slog"
)

// TaskID identifies a scheduled task. Zero is never issued.
type TaskID uint64

// task is one scheduled action.
type task struct {
	id        TaskID
	action    func()
	remaining float64 // seconds until the next fire; may go negative
	interval  float64
	repeat    bool
	removed   bool
}

// Scheduler is a flat collection of independent timers.
// Not safe for concurrent use.
type Scheduler struct {
	tasks  []*task
	nextID TaskID
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Schedule enqueues action to fire after delay seconds. With repeat it fires
// again every delay seconds until cancelled.
func (s *Scheduler) Schedule(action func(), delay float64, repeat bool) TaskID {
	s.nextID++
	t := &task{
		id:        s.nextID,
		action:    action,
		remaining: delay,
		interval:  delay,
		repeat:    repeat,
	}
	s.tasks = append(s.tasks, t)

	slog.Debug("task scheduled", "taskID", t.id, "delay", delay, "repeat", repeat)
	return t.id
}

// Cancel removes the task. Unknown or already fired ids are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	for i, t := range s.tasks {
		if t.id != id {
			continue
		}
		t.removed = true
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		slog.Debug("task cancelled", "taskID", id)
		return
	}
}

// Update advances every task by dt and fires those that are due, in list
// order. Actions may schedule or cancel tasks: new tasks wait for the next
// Update, cancelled ones are skipped.
func (s *Scheduler) Update(dt float64) {
	if len(s.tasks) == 0 {
		return
	}

	// Обходим снимок: actions могут менять s.tasks во время обхода.
	snapshot := make([]*task, len(s.tasks))
	copy(snapshot, s.tasks)

	fired := false
	for _, t := range snapshot {
		if t.removed {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			continue
		}

		t.action()

		if t.removed {
			continue
		}
		if t.repeat {
			t.remaining += t.interval
			continue
		}
		t.removed = true
		fired = true
	}

	if fired {
		s.compact()
	}
}

// compact drops fired one-shot tasks, keeping order.
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.removed {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Pending reports whether the task is still scheduled.
func (s *Scheduler) Pending(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}
