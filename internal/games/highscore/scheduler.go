package highscore

import "sort"

// Scheduler runs zero-argument callbacks a fixed number of ticks later on
// the game's own loop. Callbacks never run concurrently with Step.
type Scheduler struct {
	now   uint64
	seq   uint64
	tasks []task
}

type task struct {
	at  uint64
	seq uint64
	fn  func()
}

// After schedules fn to run on the ticks-th following call to Advance.
// Values below one run on the next Advance.
func (s *Scheduler) After(ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	s.seq++
	s.tasks = append(s.tasks, task{at: s.now + uint64(ticks), seq: s.seq, fn: fn})
}

// Advance moves time forward one tick and runs every callback that is due,
// earliest deadline first and in scheduling order among equals. Callbacks
// scheduled while running are not run before their own deadline.
func (s *Scheduler) Advance() {
	s.now++

	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.at <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of callbacks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Reset drops every pending callback.
func (s *Scheduler) Reset() {
	s.tasks = nil
}
