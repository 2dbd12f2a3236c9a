// Package particle 实现鼠标响应的粒子场模拟（Particle Field Simulator）。
//
// 粒子场持有固定数量的粒子，每帧推进一次运动学状态：
// 欧拉积分、指针排斥、边界反弹、阻尼、边界钳制。
// 绘制所需的邻近连线（proximity edges）每帧从当前位置重新计算，不做缓存。
//
// 本包不依赖任何绘制后端，只产出 Frame 快照供调用方渲染。
package particle

import "math"

// 默认参数
const (
	DefaultCount              = 100
	DefaultConnectionDistance = 150.0
	DefaultPointerRadius      = 150.0
	DefaultPointerStrength    = 0.5
	DefaultDamping            = 0.99
	DefaultInitialSpeed       = 0.5 // 每轴初速度 = (rand-0.5) * 0.5，即 [-0.25, 0.25]
	DefaultRadiusMin          = 1.0
	DefaultRadiusSpread       = 2.0 // 半径 = rand*2 + 1，即 [1, 3)
)

// Vec2 二维浮点向量
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len 返回向量长度
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist 返回两点间的欧氏距离
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Size 画布尺寸
type Size struct {
	Width, Height float64
}

// Particle 单个粒子（值类型，仅以数组下标区分）
//
// Radius 在创建时确定，之后不再修改。
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Params 粒子场参数
//
// 零值不可用，请从 DefaultParams() 开始修改。
type Params struct {
	Count              int     // 粒子数量，负数按 0 处理
	ConnectionDistance float64 // 两粒子连线的最大距离
	PointerRadius      float64 // 指针影响半径
	PointerStrength    float64 // 排斥冲量系数
	Damping            float64 // 每帧速度衰减系数
	InitialSpeed       float64 // 初速度分布宽度
	RadiusMin          float64
	RadiusSpread       float64
}

// DefaultParams 返回默认参数
func DefaultParams() Params {
	return Params{
		Count:              DefaultCount,
		ConnectionDistance: DefaultConnectionDistance,
		PointerRadius:      DefaultPointerRadius,
		PointerStrength:    DefaultPointerStrength,
		Damping:            DefaultDamping,
		InitialSpeed:       DefaultInitialSpeed,
		RadiusMin:          DefaultRadiusMin,
		RadiusSpread:       DefaultRadiusSpread,
	}
}

// Edge 两粒子之间的连线（无向，I < J，只报告一次）
type Edge struct {
	I, J    int
	A, B    Vec2
	Opacity float64 // 1 - distance/ConnectionDistance，范围 (0, 1]
}

// Dot 绘制用的粒子信息
type Dot struct {
	Pos    Vec2
	Radius float64
}

// Frame 当前帧的绘制快照
type Frame struct {
	Size      Size
	Particles []Dot
	Edges     []Edge
}

// RandSource 随机数来源
//
// *math/rand.Rand 与 *math/rand/v2.Rand 都满足该接口；
// 测试中注入固定种子以获得可复现的粒子集合。
type RandSource interface {
	Float64() float64
}
