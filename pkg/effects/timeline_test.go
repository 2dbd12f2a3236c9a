package effects

import (
	"testing"
	"time"
)

const ms = time.Millisecond

// TestTimeline_Order 测试按到期时间执行，同时到期按预约顺序
func TestTimeline_Order(t *testing.T) {
	tl := NewTimeline()
	var got []string
	tl.After(30*ms, func() { got = append(got, "c") })
	tl.After(10*ms, func() { got = append(got, "a") })
	tl.After(10*ms, func() { got = append(got, "b") })

	if n := tl.Advance(5 * ms); n != 0 {
		t.Fatalf("Advance(5ms) ran %d tasks, want 0", n)
	}
	if n := tl.Advance(30 * ms); n != 3 {
		t.Fatalf("Advance(30ms) ran %d tasks, want 3", n)
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// TestTimeline_Cancel 测试取消尚未执行的任务
func TestTimeline_Cancel(t *testing.T) {
	tl := NewTimeline()
	fired := false
	id := tl.After(10*ms, func() { fired = true })

	if !tl.Cancel(id) {
		t.Fatal("Cancel() = false for pending task")
	}
	if tl.Cancel(id) {
		t.Error("second Cancel() should return false")
	}
	tl.Advance(time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", tl.Pending())
	}
}

// TestTimeline_NestedSchedule 测试任务内部预约的延迟相对其到期时间
func TestTimeline_NestedSchedule(t *testing.T) {
	tl := NewTimeline()
	var at time.Duration
	tl.After(100*ms, func() {
		tl.After(50*ms, func() { at = tl.Now() })
	})

	tl.Advance(time.Second)
	if at != 150*ms {
		t.Errorf("nested task ran at %v, want 150ms", at)
	}
	if tl.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", tl.Now())
	}
}

// TestTimeline_NoRewind 测试时钟不倒退
func TestTimeline_NoRewind(t *testing.T) {
	tl := NewTimeline()
	tl.Advance(time.Second)
	tl.Advance(500 * ms)
	if tl.Now() != time.Second {
		t.Errorf("Now() = %v after rewind attempt, want 1s", tl.Now())
	}
}
