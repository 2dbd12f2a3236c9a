// Package utils 提供宿主层通用工具：缓动函数、指针采样、平台与存储探测。
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
//
// 统一处理鼠标和触摸：触摸优先；移动端只有在触摸时才有指针。
type PointerState struct {
	X, Y        int
	Present     bool // 指针在视口内
	JustPressed bool // 本帧刚刚点击/触摸
}

// SamplePointer 采样当前帧的指针状态
//
// 参数：
//   - width, height: 视口逻辑尺寸，光标在此范围之外视为离开
func SamplePointer(width, height int) PointerState {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{
			X:           x,
			Y:           y,
			Present:     true,
			JustPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		}
	}

	if IsMobile() {
		return PointerState{}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:           x,
		Y:           y,
		Present:     ebiten.IsFocused() && InViewport(x, y, width, height),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// InViewport 判断坐标是否在 [0,width)×[0,height) 内
func InViewport(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}
