package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 基于 ebiten 屏幕图像的绘制表面
//
// ebiten 每次 Draw 都会传入新的 screen，
// 因此每帧绘制前需要调用 Bind 绑定目标图像。
type EbitenSurface struct {
	target        *ebiten.Image
	width, height int
	background    color.Color
}

// NewEbitenSurface 创建 EbitenSurface
func NewEbitenSurface(width, height int, background color.Color) *EbitenSurface {
	return &EbitenSurface{width: width, height: height, background: background}
}

// Bind 绑定本帧的目标图像
func (s *EbitenSurface) Bind(target *ebiten.Image) {
	s.target = target
}

// Size 返回逻辑尺寸
func (s *EbitenSurface) Size() (int, int) { return s.width, s.height }

// SetSize 设置逻辑尺寸（由 App.Layout 返回给 ebiten）
func (s *EbitenSurface) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Clear 用背景色填充整个目标
func (s *EbitenSurface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.background)
}

// FillCircle 绘制实心圆
func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine 绘制线段
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
