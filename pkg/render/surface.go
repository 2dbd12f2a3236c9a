// Package render 定义绘制表面抽象，以及把粒子场快照画到表面上的 Painter。
//
// 提供两种后端：
//   - EbitenSurface: 桌面窗口（ebiten/v2 vector 绘制）
//   - TerminalSurface: 终端字符画（tcell/v2）
package render

import "image/color"

// Surface 绘制表面
//
// 坐标单位与粒子场一致。SetSize 必须在粒子场 Resize 之前调用，
// 否则绘制边界与模拟边界不一致。
type Surface interface {
	Size() (width, height int)
	SetSize(width, height int)
	Clear()
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}
