package effects

import (
	"testing"
	"time"
)

// TestCategory_EnterStaggersLinks 测试进入时链接依次推移
func TestCategory_EnterStaggersLinks(t *testing.T) {
	tl := NewTimeline()
	cfg := DefaultHoverConfig()
	c := NewCategory(tl, 3, cfg)

	c.Enter()
	if c.Ripples() != 1 {
		t.Fatalf("Ripples() = %d, want 1", c.Ripples())
	}

	tests := []struct {
		at   time.Duration
		want []float64
	}{
		{0, []float64{4, 0, 0}},
		{50 * ms, []float64{4, 4, 0}},
		{100 * ms, []float64{4, 4, 4}},
	}

	for _, tt := range tests {
		tl.Advance(tt.at)
		for i, want := range tt.want {
			if got := c.LinkOffset(i); got != want {
				t.Errorf("at %v: LinkOffset(%d) = %v, want %v", tt.at, i, got, want)
			}
		}
	}
}

// TestCategory_RippleExpires 测试涟漪在存在时长之后移除
func TestCategory_RippleExpires(t *testing.T) {
	tl := NewTimeline()
	c := NewCategory(tl, 0, DefaultHoverConfig())

	c.Enter()
	tl.Advance(300 * ms)
	c.Enter()
	if c.Ripples() != 2 {
		t.Fatalf("Ripples() = %d, want 2", c.Ripples())
	}

	tl.Advance(600 * ms)
	if c.Ripples() != 1 {
		t.Errorf("after first expiry Ripples() = %d, want 1", c.Ripples())
	}
	tl.Advance(900 * ms)
	if c.Ripples() != 0 {
		t.Errorf("after second expiry Ripples() = %d, want 0", c.Ripples())
	}
}

// TestCategory_LeaveCancelsPending 测试离开时取消未执行的推移并复位
func TestCategory_LeaveCancelsPending(t *testing.T) {
	tl := NewTimeline()
	c := NewCategory(tl, 4, DefaultHoverConfig())

	c.Enter()
	tl.Advance(60 * ms) // 前两个链接已推移
	c.Leave()

	for i := 0; i < 4; i++ {
		if c.LinkOffset(i) != 0 {
			t.Errorf("LinkOffset(%d) = %v after Leave, want 0", i, c.LinkOffset(i))
		}
	}

	tl.Advance(time.Second)
	for i := 0; i < 4; i++ {
		if c.LinkOffset(i) != 0 {
			t.Errorf("LinkOffset(%d) = %v, cancelled nudge fired", i, c.LinkOffset(i))
		}
	}
	if c.Ripples() != 0 {
		t.Errorf("ripple should still expire after Leave, Ripples() = %d", c.Ripples())
	}
}

// TestCategory_RepeatedEnter 测试连续进入不累积推移任务
func TestCategory_RepeatedEnter(t *testing.T) {
	tl := NewTimeline()
	c := NewCategory(tl, 3, DefaultHoverConfig())

	for i := 0; i < 10; i++ {
		c.Enter()
		tl.Advance(time.Duration(i) * 10 * ms)
	}
	if len(c.nudges) != 3 {
		t.Errorf("tracked nudges = %d after repeated Enter, want 3", len(c.nudges))
	}
	// 只剩最后一轮的任务：旧轮次的已全部取消
	if got := tl.Pending(); got > 3+c.Ripples() {
		t.Errorf("Pending() = %d, want at most %d", got, 3+c.Ripples())
	}

	tl.Advance(time.Second)
	for i := 0; i < 3; i++ {
		if c.LinkOffset(i) != 4 {
			t.Errorf("LinkOffset(%d) = %v, want 4", i, c.LinkOffset(i))
		}
	}
}

// TestCardGlow_SetRect 测试卡片移动后光晕仍相对当前矩形
func TestCardGlow_SetRect(t *testing.T) {
	g := NewCardGlow(Rect{X: 24, Y: 24, W: 320, H: 200})
	g.Enter()

	g.SetRect(Rect{X: -100, Y: 24, W: 320, H: 200})
	g.Move(-80, 44)
	if x, y, _ := g.Position(); x != 20 || y != 20 {
		t.Errorf("Position() = (%v, %v), want (20, 20)", x, y)
	}
}

// TestCardGlow 测试光晕跟随指针，位置相对卡片
func TestCardGlow(t *testing.T) {
	g := NewCardGlow(Rect{X: 100, Y: 200, W: 300, H: 150})

	g.Move(150, 250)
	if _, _, ok := g.Position(); ok {
		t.Fatal("glow present before Enter")
	}

	g.Enter()
	g.Move(150, 260)
	x, y, ok := g.Position()
	if !ok || x != 50 || y != 60 {
		t.Errorf("Position() = (%v, %v, %v), want (50, 60, true)", x, y, ok)
	}

	// 重复进入不重建光晕
	g.Enter()
	if x, y, _ := g.Position(); x != 50 || y != 60 {
		t.Errorf("second Enter reset glow to (%v, %v)", x, y)
	}

	g.Leave()
	if _, _, ok := g.Position(); ok {
		t.Error("glow present after Leave")
	}
}
