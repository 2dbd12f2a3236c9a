package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// 每个字符单元格对应的模拟坐标单位
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// TerminalSurface 基于 tcell 屏幕的字符画绘制表面
//
// 模拟坐标按 CellWidth×CellHeight 映射到字符单元格；
// 半透明颜色按背景色做 alpha 合成后写入前景色。
// 终端大小由终端决定，SetSize 只记录逻辑尺寸。
type TerminalSurface struct {
	screen     tcell.Screen
	cellW      float64
	cellH      float64
	width      int
	height     int
	background color.Color
}

// NewTerminalSurface 创建 TerminalSurface，逻辑尺寸取自当前终端大小
func NewTerminalSurface(screen tcell.Screen, cellW, cellH float64, background color.Color) *TerminalSurface {
	s := &TerminalSurface{
		screen:     screen,
		cellW:      cellW,
		cellH:      cellH,
		background: background,
	}
	cols, rows := screen.Size()
	s.width, s.height = s.UnitsFor(cols, rows)
	return s
}

// UnitsFor 把终端行列数换算为模拟坐标尺寸
func (s *TerminalSurface) UnitsFor(cols, rows int) (int, int) {
	return int(float64(cols) * s.cellW), int(float64(rows) * s.cellH)
}

// CellToUnits 把单元格坐标换算为该单元格中心的模拟坐标
func (s *TerminalSurface) CellToUnits(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// Size 返回逻辑尺寸（模拟坐标单位）
func (s *TerminalSurface) Size() (int, int) { return s.width, s.height }

// SetSize 记录逻辑尺寸
func (s *TerminalSurface) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Clear 清空屏幕
func (s *TerminalSurface) Clear() {
	s.screen.SetStyle(tcell.StyleDefault.Background(s.tcellColor(s.background)))
	s.screen.Clear()
}

// FillCircle 在圆心所在单元格绘制粒子符号
func (s *TerminalSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	ch := '•'
	if r >= 2 {
		ch = '●'
	}
	col, row := s.cell(cx, cy)
	s.put(col, row, ch, clr)
}

// StrokeLine 用 Bresenham 算法在单元格网格上画线
//
// 线宽在字符画中没有意义，被忽略。
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	c0, r0 := s.cell(x0, y0)
	c1, r1 := s.cell(x1, y1)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.put(c0, r0, '·', clr)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c0 += sx
		}
		if e2 <= dx {
			e += dx
			r0 += sy
		}
	}
}

// cell 把模拟坐标映射到单元格，落在右/下边界上的点归入最后一格
func (s *TerminalSurface) cell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	col := int(x / s.cellW)
	row := int(y / s.cellH)
	if col >= cols {
		col = cols - 1
	}
	if row >= rows {
		row = rows - 1
	}
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return col, row
}

func (s *TerminalSurface) put(col, row int, ch rune, clr color.Color) {
	style := tcell.StyleDefault.
		Foreground(s.blend(clr)).
		Background(s.tcellColor(s.background))
	s.screen.SetContent(col, row, ch, nil, style)
}

// blend 源色（预乘 alpha）叠加到背景色上
func (s *TerminalSurface) blend(clr color.Color) tcell.Color {
	r, g, b, a := clr.RGBA()
	br, bg, bb, _ := s.background.RGBA()
	inv := 0xffff - a
	mix := func(src, dst uint32) int32 {
		return int32((src + dst*inv/0xffff) >> 8)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}

func (s *TerminalSurface) tcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
