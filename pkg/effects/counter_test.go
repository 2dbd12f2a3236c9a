package effects

import (
	"testing"
	"time"
)

// TestCounter_Value 测试计数器各时刻的显示值
func TestCounter_Value(t *testing.T) {
	c := NewCounter(1000, DefaultCounterDuration)
	start := 5 * time.Second

	if c.Value(start) != 0 {
		t.Errorf("Value before Start = %d, want 0", c.Value(start))
	}
	if !c.Start(start) {
		t.Fatal("first Start() = false")
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"起点", 0, 0},
		{"一半", time.Second, 875}, // 1 - 0.5³ = 0.875
		{"结束", 2 * time.Second, 1000},
		{"结束之后", 10 * time.Second, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Value(start + tt.elapsed); got != tt.want {
				t.Errorf("Value(+%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}

	if !c.Done(start + 2*time.Second) {
		t.Error("Done() = false at end")
	}
	if c.Done(start + time.Second) {
		t.Error("Done() = true halfway")
	}
}

// TestCounter_Monotonic 测试滚动过程单调不减且不超过目标值
func TestCounter_Monotonic(t *testing.T) {
	c := NewCounter(137, DefaultCounterDuration)
	c.Start(0)

	prev := 0
	for at := time.Duration(0); at <= 2100*ms; at += 16 * ms {
		v := c.Value(at)
		if v < prev || v > 137 {
			t.Fatalf("Value(%v) = %d after %d", at, v, prev)
		}
		prev = v
	}
	if prev != 137 {
		t.Errorf("final value = %d, want 137", prev)
	}
}

// TestCounter_StartOnce 测试只能启动一次
func TestCounter_StartOnce(t *testing.T) {
	c := NewCounter(10, time.Second)
	c.Start(0)
	if c.Start(500 * ms) {
		t.Error("second Start() = true")
	}
	// 1 - 0.5³ = 0.875，重新计时则为 0
	if got := c.Value(500 * ms); got != 8 {
		t.Errorf("Value(500ms) = %d, want 8; second Start() must not reset the start time", got)
	}
}

