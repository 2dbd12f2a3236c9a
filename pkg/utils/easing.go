package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，输出缓动后的进度
//
// 超出 [0, 1] 的输入先被钳制。

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseLinear 匀速
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOutCubic 三次方缓出，f(t) = 1 - (1-t)³
//
// 计数器滚动使用此曲线：开始快，结束慢。
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出，f(t) = 1 - (1-t)²
//
// 页面入场动画使用此曲线。
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 计算已用时长占总时长的比例，结果钳制在 [0, 1]
//
// total <= 0 时视为瞬间完成。
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}
