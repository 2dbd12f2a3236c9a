package effects

import (
	"testing"
	"time"
)

// TestPageLoader_Staggered 测试延迟后依次入场
func TestPageLoader_Staggered(t *testing.T) {
	tl := NewTimeline()
	p := NewPageLoader(tl, 100*ms, 100*ms, "hero", "features", "contact")

	tl.Advance(time.Second)
	if _, ok := p.Entered("hero"); ok {
		t.Fatal("section entered before Load")
	}

	p.Load()
	p.Load()
	if !p.Loaded() {
		t.Fatal("Loaded() = false")
	}

	tl.Advance(5 * time.Second)

	base := time.Second + 100*ms
	want := map[string]time.Duration{
		"hero":     base,
		"features": base + 100*ms,
		"contact":  base + 200*ms,
	}
	for id, at := range want {
		got, ok := p.Entered(id)
		if !ok || got != at {
			t.Errorf("Entered(%s) = %v, %v; want %v", id, got, ok, at)
		}
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending() = %d, repeated Load scheduled extra tasks", tl.Pending())
	}
}
