package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.875},
		{"终点", 1.0, 1.0},
		{"负数钳制", -1, 0},
		{"超出钳制", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}

	// 缓出：前半段快于线性
	for p := 0.1; p < 0.5; p += 0.1 {
		if EaseOutCubic(p) <= EaseLinear(p) {
			t.Errorf("EaseOutCubic(%v) 应该大于线性值", p)
		}
	}
}

// TestEaseOutQuad 测试二次方缓出
func TestEaseOutQuad(t *testing.T) {
	if got := EaseOutQuad(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("EaseOutQuad(0.5) = %v, 期望 0.75", got)
	}
	if EaseOutQuad(0) != 0 || EaseOutQuad(1) != 1 {
		t.Error("EaseOutQuad 端点错误")
	}
}

// TestProgress 测试进度计算
func TestProgress(t *testing.T) {
	tests := []struct {
		name           string
		elapsed, total float64
		expected       float64
	}{
		{"未开始", 0, 2000, 0},
		{"一半", 1000, 2000, 0.5},
		{"已超时", 5000, 2000, 1},
		{"零时长", 10, 0, 1},
		{"时钟回退", -5, 2000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.total); got != tt.expected {
				t.Errorf("Progress(%v, %v) = %v, 期望 %v", tt.elapsed, tt.total, got, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
}
