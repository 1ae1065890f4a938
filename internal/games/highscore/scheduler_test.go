package highscore

import (
	"reflect"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestSchedulerRunsAfterTicks(t *testing.T) {
	var s Scheduler
	ran := 0
	s.After(3, func() { ran++ })

	s.Advance()
	s.Advance()
	testutil.AssertEqual(t, "ran before deadline", ran, 0)
	testutil.AssertEqual(t, "pending", s.Pending(), 1)

	s.Advance()
	testutil.AssertEqual(t, "ran at deadline", ran, 1)
	testutil.AssertEqual(t, "pending after run", s.Pending(), 0)

	s.Advance()
	testutil.AssertEqual(t, "ran once", ran, 1)
}

func TestSchedulerClampsToNextTick(t *testing.T) {
	var s Scheduler
	ran := false
	s.After(0, func() { ran = true })
	s.Advance()
	testutil.AssertEqual(t, "zero ticks runs on next advance", ran, true)
}

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	var order []string
	s.After(2, func() { order = append(order, "b1") })
	s.After(1, func() { order = append(order, "a") })
	s.After(2, func() { order = append(order, "b2") })

	s.Advance()
	s.Advance()

	if want := []string{"a", "b1", "b2"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedulerNestedWaitsForOwnDeadline(t *testing.T) {
	var s Scheduler
	var order []string
	s.After(1, func() {
		order = append(order, "outer")
		s.After(1, func() { order = append(order, "inner") })
	})

	s.Advance()
	if want := []string{"outer"}; !reflect.DeepEqual(order, want) {
		t.Errorf("after first advance = %v, want %v", order, want)
	}
	s.Advance()
	if want := []string{"outer", "inner"}; !reflect.DeepEqual(order, want) {
		t.Errorf("after second advance = %v, want %v", order, want)
	}
}

func TestSchedulerReset(t *testing.T) {
	var s Scheduler
	ran := false
	s.After(1, func() { ran = true })
	s.Reset()
	s.Advance()

	testutil.AssertEqual(t, "dropped callback ran", ran, false)
	testutil.AssertEqual(t, "pending", s.Pending(), 0)
}
