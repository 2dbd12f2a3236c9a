package render

import (
	"image/color"
	"math"

	"github.com/gonewx/particlefield/internal/particle"
)

// Style 粒子场的绘制样式
type Style struct {
	Particle        color.NRGBA // 粒子填充色
	Line            color.NRGBA // 连线颜色（A 被忽略，由 LineAlpha 与连线不透明度决定）
	LineAlpha       float64     // 连线最大透明度，连线实际 alpha = opacity * LineAlpha
	LineWidth       float64
	ShowConnections bool
}

// DefaultStyle 返回默认样式 rgba(102, 126, 234, 0.8)
func DefaultStyle() Style {
	return Style{
		Particle:        color.NRGBA{R: 102, G: 126, B: 234, A: 204},
		Line:            color.NRGBA{R: 102, G: 126, B: 234, A: 255},
		LineAlpha:       0.3,
		LineWidth:       1,
		ShowConnections: true,
	}
}

// Painter 把一帧快照画到 Surface 上
//
// 绘制顺序固定：清屏 → 连线 → 粒子。
type Painter struct {
	style Style
}

// NewPainter 创建 Painter
func NewPainter(style Style) *Painter {
	return &Painter{style: style}
}

// Style 返回当前样式
func (p *Painter) Style() Style { return p.style }

// SetShowConnections 开关连线绘制
func (p *Painter) SetShowConnections(show bool) {
	p.style.ShowConnections = show
}

// Draw 绘制一帧
func (p *Painter) Draw(s Surface, frame particle.Frame) {
	s.Clear()

	if p.style.ShowConnections {
		for _, e := range frame.Edges {
			s.StrokeLine(e.A.X, e.A.Y, e.B.X, e.B.Y, p.style.LineWidth, p.lineColor(e.Opacity))
		}
	}

	for _, d := range frame.Particles {
		s.FillCircle(d.Pos.X, d.Pos.Y, d.Radius, p.style.Particle)
	}
}

func (p *Painter) lineColor(opacity float64) color.NRGBA {
	c := p.style.Line
	a := math.Round(opacity * p.style.LineAlpha * 255)
	c.A = uint8(math.Max(0, math.Min(255, a)))
	return c
}
