package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/particlefield/internal/particle"
	"github.com/gonewx/particlefield/pkg/effects"
	"github.com/gonewx/particlefield/pkg/render"
)

func TestParseFieldConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *FieldConfig)
	}{
		{
			name:        "空文件使用默认值",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *FieldConfig) {
				if cfg.Particles.Count != 100 {
					t.Errorf("expected count = 100, got %d", cfg.Particles.Count)
				}
				if cfg.Effects.CounterDurationMs != 2000 {
					t.Errorf("expected counter duration = 2000, got %d", cfg.Effects.CounterDurationMs)
				}
			},
		},
		{
			name: "部分覆盖",
			yamlContent: `
particles:
  count: 250
  connectionDistance: 90
style:
  showConnections: false
`,
			validate: func(t *testing.T, cfg *FieldConfig) {
				if cfg.Particles.Count != 250 {
					t.Errorf("expected count = 250, got %d", cfg.Particles.Count)
				}
				if cfg.Particles.ConnectionDistance != 90 {
					t.Errorf("expected connectionDistance = 90, got %f", cfg.Particles.ConnectionDistance)
				}
				if cfg.Particles.Damping != 0.99 {
					t.Errorf("expected damping default 0.99, got %f", cfg.Particles.Damping)
				}
				if cfg.Style.ShowConnections {
					t.Error("expected showConnections = false")
				}
			},
		},
		{
			name:        "负粒子数",
			yamlContent: "particles:\n  count: -1\n",
			wantErr:     true,
			errContains: "particles.count",
		},
		{
			name:        "阻尼超出范围",
			yamlContent: "particles:\n  damping: 1.5\n",
			wantErr:     true,
			errContains: "damping",
		},
		{
			name:        "连线距离为零",
			yamlContent: "particles:\n  connectionDistance: 0\n",
			wantErr:     true,
			errContains: "connectionDistance",
		},
		{
			name:        "透明度超出范围",
			yamlContent: "style:\n  lineAlpha: 3\n",
			wantErr:     true,
			errContains: "style.lineAlpha",
		},
		{
			name:        "可见阈值超出范围",
			yamlContent: "effects:\n  visibilityThreshold: -0.5\n",
			wantErr:     true,
			errContains: "visibilityThreshold",
		},
		{
			name:        "YAML 语法错误",
			yamlContent: "particles: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFieldConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadFieldConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: 12\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFieldConfig(path)
	if err != nil {
		t.Fatalf("LoadFieldConfig() error: %v", err)
	}
	if cfg.Particles.Count != 12 {
		t.Errorf("expected count = 12, got %d", cfg.Particles.Count)
	}

	if _, err := LoadFieldConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadFieldConfig_Shipped 测试随程序发布的默认配置与内置默认值一致
func TestLoadFieldConfig_Shipped(t *testing.T) {
	cfg, err := LoadFieldConfig("../../data/field.yaml")
	if err != nil {
		t.Fatalf("failed to load data/field.yaml: %v", err)
	}
	def := DefaultFieldConfig()
	if cfg.Particles != def.Particles {
		t.Errorf("shipped particles = %+v, want %+v", cfg.Particles, def.Particles)
	}
	if cfg.Style != def.Style {
		t.Errorf("shipped style = %+v, want %+v", cfg.Style, def.Style)
	}
	if cfg.Effects != def.Effects {
		t.Errorf("shipped effects = %+v, want %+v", cfg.Effects, def.Effects)
	}
}

func TestFieldConfig_Conversions(t *testing.T) {
	cfg := DefaultFieldConfig()

	if got := cfg.Params(); got != particle.DefaultParams() {
		t.Errorf("Params() = %+v, want %+v", got, particle.DefaultParams())
	}
	if got := cfg.RenderStyle(); got != render.DefaultStyle() {
		t.Errorf("RenderStyle() = %+v, want %+v", got, render.DefaultStyle())
	}
	if got := Ms(cfg.Effects.RippleLifetimeMs); got != 600*time.Millisecond {
		t.Errorf("Ms(600) = %v", got)
	}
	if got := cfg.HoverConfig(); got != effects.DefaultHoverConfig() {
		t.Errorf("HoverConfig() = %+v, want %+v", got, effects.DefaultHoverConfig())
	}
}

// TestFieldConfig_EffectsKeys 测试 YAML 中的效果参数传递到悬停与可见性组件
func TestFieldConfig_EffectsKeys(t *testing.T) {
	cfg, err := ParseFieldConfig([]byte(`
effects:
  counterDurationMs: 1000
  rippleLifetimeMs: 200
  linkStaggerMs: 20
  linkNudge: 8
  visibilityThreshold: 0.5
  bottomMargin: 100
`))
	if err != nil {
		t.Fatalf("ParseFieldConfig() error: %v", err)
	}

	hover := cfg.HoverConfig()
	want := effects.HoverConfig{RippleLifetime: 200 * time.Millisecond, LinkStagger: 20 * time.Millisecond, LinkNudge: 8}
	if hover != want {
		t.Errorf("HoverConfig() = %+v, want %+v", hover, want)
	}

	obs := cfg.NewVisibilityObserver()
	viewport := effects.Rect{W: 400, H: 300}
	// 视口底部收缩 100 后只剩 y < 200；该元素只有 40% 在内，低于阈值 0.5
	half := obs.ObserveCounter("low", effects.Rect{X: 0, Y: 170, W: 100, H: 75}, 10)
	full := obs.ObserveCounter("high", effects.Rect{X: 0, Y: 0, W: 100, H: 50}, 10)

	obs.Check(viewport, 0)
	if half.Visible {
		t.Error("element under bottom margin counted as visible")
	}
	if !full.Visible || !full.Counter.Started() {
		t.Fatal("fully visible element not started")
	}
	if got := full.Counter.Value(time.Second); got != 10 {
		t.Errorf("counter after configured 1000ms = %d, want 10", got)
	}
}
