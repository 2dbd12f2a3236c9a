// Package config 加载粒子场与页面效果的 YAML 配置。
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/particlefield/internal/particle"
	"github.com/gonewx/particlefield/pkg/effects"
	"github.com/gonewx/particlefield/pkg/render"
)

// FieldConfig 粒子场配置
//
// 配置文件位置: data/field.yaml（默认配置同时嵌入二进制）
// 文件中缺省的字段保留 DefaultFieldConfig() 的值。
type FieldConfig struct {
	Particles ParticlesConfig `yaml:"particles"`
	Style     StyleConfig     `yaml:"style"`
	Effects   EffectsConfig   `yaml:"effects"`
}

// ParticlesConfig 模拟参数
type ParticlesConfig struct {
	Count              int     `yaml:"count"`
	ConnectionDistance float64 `yaml:"connectionDistance"`
	PointerRadius      float64 `yaml:"pointerRadius"`
	PointerStrength    float64 `yaml:"pointerStrength"`
	Damping            float64 `yaml:"damping"`
	InitialSpeed       float64 `yaml:"initialSpeed"`
	RadiusMin          float64 `yaml:"radiusMin"`
	RadiusSpread       float64 `yaml:"radiusSpread"`
}

// RGBA 颜色，A 为 0~1 的不透明度
type RGBA struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// Color 转换为 color.NRGBA
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// StyleConfig 绘制样式
type StyleConfig struct {
	Background      RGBA    `yaml:"background"`
	Particle        RGBA    `yaml:"particle"`
	Line            RGBA    `yaml:"line"`
	LineAlpha       float64 `yaml:"lineAlpha"`
	LineWidth       float64 `yaml:"lineWidth"`
	ShowConnections bool    `yaml:"showConnections"`
}

// EffectsConfig 页面效果参数（时间单位：毫秒）
type EffectsConfig struct {
	CounterDurationMs   int     `yaml:"counterDurationMs"`
	RippleLifetimeMs    int     `yaml:"rippleLifetimeMs"`
	LinkStaggerMs       int     `yaml:"linkStaggerMs"`
	LinkNudge           float64 `yaml:"linkNudge"`
	LoadDelayMs         int     `yaml:"loadDelayMs"`
	EntranceStaggerMs   int     `yaml:"entranceStaggerMs"`
	VisibilityThreshold float64 `yaml:"visibilityThreshold"`
	BottomMargin        float64 `yaml:"bottomMargin"`
	ScrollFrequency     float64 `yaml:"scrollFrequency"`
	ScrollDamping       float64 `yaml:"scrollDamping"`
}

// DefaultFieldConfig 返回默认配置
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Particles: ParticlesConfig{
			Count:              particle.DefaultCount,
			ConnectionDistance: particle.DefaultConnectionDistance,
			PointerRadius:      particle.DefaultPointerRadius,
			PointerStrength:    particle.DefaultPointerStrength,
			Damping:            particle.DefaultDamping,
			InitialSpeed:       particle.DefaultInitialSpeed,
			RadiusMin:          particle.DefaultRadiusMin,
			RadiusSpread:       particle.DefaultRadiusSpread,
		},
		Style: StyleConfig{
			Background:      RGBA{R: 15, G: 15, B: 35, A: 1},
			Particle:        RGBA{R: 102, G: 126, B: 234, A: 0.8},
			Line:            RGBA{R: 102, G: 126, B: 234, A: 1},
			LineAlpha:       0.3,
			LineWidth:       1,
			ShowConnections: true,
		},
		Effects: EffectsConfig{
			CounterDurationMs:   2000,
			RippleLifetimeMs:    600,
			LinkStaggerMs:       50,
			LinkNudge:           4,
			LoadDelayMs:         100,
			EntranceStaggerMs:   100,
			VisibilityThreshold: 0.1,
			BottomMargin:        50,
			ScrollFrequency:     6,
			ScrollDamping:       1,
		},
	}
}

// LoadFieldConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/field.yaml"）
//
// 返回:
//   - *FieldConfig: 与默认值合并后的配置
//   - error: 读取、解析或验证失败
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ParseFieldConfig 解析 YAML 配置数据
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	cfg := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse field config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *FieldConfig) Validate() error {
	p := c.Particles
	if p.Count < 0 {
		return fmt.Errorf("particles.count must be >= 0, got %d", p.Count)
	}
	if p.ConnectionDistance <= 0 {
		return fmt.Errorf("particles.connectionDistance must be > 0, got %.2f", p.ConnectionDistance)
	}
	if p.PointerRadius <= 0 {
		return fmt.Errorf("particles.pointerRadius must be > 0, got %.2f", p.PointerRadius)
	}
	if p.PointerStrength < 0 {
		return fmt.Errorf("particles.pointerStrength must be >= 0, got %.2f", p.PointerStrength)
	}
	if p.Damping <= 0 || p.Damping > 1 {
		return fmt.Errorf("particles.damping must be in (0, 1], got %.3f", p.Damping)
	}
	if p.InitialSpeed < 0 {
		return fmt.Errorf("particles.initialSpeed must be >= 0, got %.2f", p.InitialSpeed)
	}
	if p.RadiusMin < 0 || p.RadiusSpread < 0 {
		return fmt.Errorf("particle radius range invalid: min %.2f spread %.2f", p.RadiusMin, p.RadiusSpread)
	}

	s := c.Style
	for name, a := range map[string]float64{
		"style.background.a": s.Background.A,
		"style.particle.a":   s.Particle.A,
		"style.line.a":       s.Line.A,
		"style.lineAlpha":    s.LineAlpha,
	} {
		if a < 0 || a > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %.2f", name, a)
		}
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("style.lineWidth must be > 0, got %.2f", s.LineWidth)
	}

	e := c.Effects
	if e.CounterDurationMs < 0 || e.RippleLifetimeMs < 0 || e.LinkStaggerMs < 0 ||
		e.LoadDelayMs < 0 || e.EntranceStaggerMs < 0 {
		return fmt.Errorf("effect durations must be >= 0")
	}
	if e.VisibilityThreshold < 0 || e.VisibilityThreshold > 1 {
		return fmt.Errorf("effects.visibilityThreshold must be in [0, 1], got %.2f", e.VisibilityThreshold)
	}
	if e.ScrollFrequency <= 0 {
		return fmt.Errorf("effects.scrollFrequency must be > 0, got %.2f", e.ScrollFrequency)
	}
	return nil
}

// Params 转换为粒子场参数
func (c *FieldConfig) Params() particle.Params {
	p := c.Particles
	return particle.Params{
		Count:              p.Count,
		ConnectionDistance: p.ConnectionDistance,
		PointerRadius:      p.PointerRadius,
		PointerStrength:    p.PointerStrength,
		Damping:            p.Damping,
		InitialSpeed:       p.InitialSpeed,
		RadiusMin:          p.RadiusMin,
		RadiusSpread:       p.RadiusSpread,
	}
}

// RenderStyle 转换为绘制样式
func (c *FieldConfig) RenderStyle() render.Style {
	return render.Style{
		Particle:        c.Style.Particle.Color(),
		Line:            c.Style.Line.Color(),
		LineAlpha:       c.Style.LineAlpha,
		LineWidth:       c.Style.LineWidth,
		ShowConnections: c.Style.ShowConnections,
	}
}

// HoverConfig 转换为悬停效果参数
func (c *FieldConfig) HoverConfig() effects.HoverConfig {
	e := c.Effects
	return effects.HoverConfig{
		RippleLifetime: Ms(e.RippleLifetimeMs),
		LinkStagger:    Ms(e.LinkStaggerMs),
		LinkNudge:      e.LinkNudge,
	}
}

// NewVisibilityObserver 按配置创建可见性观察器
func (c *FieldConfig) NewVisibilityObserver() *effects.VisibilityObserver {
	e := c.Effects
	return effects.NewVisibilityObserver(e.VisibilityThreshold, e.BottomMargin, Ms(e.CounterDurationMs))
}

// Background 背景色
func (c *FieldConfig) Background() color.NRGBA {
	return c.Style.Background.Color()
}

// Ms 把毫秒数转换为 time.Duration
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
