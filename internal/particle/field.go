package particle

import "math"

// Field 粒子场的全部状态：粒子集合、画布边界、指针位置
//
// Field 不加锁：所有调用都应在同一个帧回调链上串行发生。
type Field struct {
	params    Params
	rng       RandSource
	bounds    Size
	particles []Particle

	pointer    Vec2
	hasPointer bool
}

// NewField 创建粒子场并按初始化规则生成粒子
//
// 参数：
//   - size: 当前视口尺寸
//   - params: 粒子场参数（Count < 0 时按 0 处理，得到空场）
//   - rng: 随机数来源
func NewField(size Size, params Params, rng RandSource) *Field {
	if params.Count < 0 {
		params.Count = 0
	}
	f := &Field{
		params: params,
		rng:    rng,
		bounds: size,
	}
	f.spawn()
	return f
}

// spawn 丢弃旧粒子并整体重新采样
func (f *Field) spawn() {
	ps := make([]Particle, f.params.Count)
	for i := range ps {
		ps[i] = Particle{
			Pos: Vec2{
				X: f.rng.Float64() * f.bounds.Width,
				Y: f.rng.Float64() * f.bounds.Height,
			},
			Vel: Vec2{
				X: (f.rng.Float64() - 0.5) * f.params.InitialSpeed,
				Y: (f.rng.Float64() - 0.5) * f.params.InitialSpeed,
			},
			Radius: f.rng.Float64()*f.params.RadiusSpread + f.params.RadiusMin,
		}
	}
	f.particles = ps
}

// Resize 替换边界并重新生成全部粒子
//
// 旧的位置与速度全部丢弃，不做等比映射。
// 调用前宿主应先把绘制表面的像素尺寸设置为 size。
func (f *Field) Resize(size Size) {
	f.bounds = size
	f.spawn()
}

// SetPointer 设置指针位置（坐标可以在边界之外）
func (f *Field) SetPointer(x, y float64) {
	f.pointer = Vec2{X: x, Y: y}
	f.hasPointer = true
}

// ClearPointer 指针离开视口
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Pointer 返回指针位置；ok 为 false 表示当前没有指针
func (f *Field) Pointer() (p Vec2, ok bool) {
	return f.pointer, f.hasPointer
}

// Bounds 返回当前边界
func (f *Field) Bounds() Size { return f.bounds }

// Params 返回粒子场参数
func (f *Field) Params() Params { return f.params }

// Len 返回粒子数量
func (f *Field) Len() int { return len(f.particles) }

// Particles 返回粒子集合的副本
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Place 用给定粒子替换当前集合（不经过随机采样）
//
// 主要供场景测试和回放使用；粒子数量随之改变。
func (f *Field) Place(ps []Particle) {
	f.particles = make([]Particle, len(ps))
	copy(f.particles, ps)
}

// Advance 推进一帧
//
// 每个粒子依次执行：
//  1. 位置积分 pos += vel
//  2. 指针排斥（仅当指针存在且距离小于影响半径）
//  3. 边界反弹：越界则对应速度分量取反
//  4. 阻尼：速度乘以 Damping
//  5. 钳制：位置限制在 [0,width]×[0,height]
//
// 粒子之间互不读取更新后的状态，顺序无关。
func (f *Field) Advance() {
	w, h := f.bounds.Width, f.bounds.Height
	for i := range f.particles {
		p := &f.particles[i]

		p.Pos = p.Pos.Add(p.Vel)

		if f.hasPointer {
			f.repel(p)
		}

		if p.Pos.X < 0 || p.Pos.X > w {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 || p.Pos.Y > h {
			p.Vel.Y = -p.Vel.Y
		}

		p.Vel = p.Vel.Scale(f.params.Damping)

		p.Pos.X = clamp(p.Pos.X, 0, w)
		p.Pos.Y = clamp(p.Pos.Y, 0, h)
	}
}

// repel 对单个粒子施加指针排斥冲量
//
// 力度在指针处为 1，线性衰减到影响半径处为 0。
// 粒子恰好位于指针上时方向无定义，本帧不施加冲量。
func (f *Field) repel(p *Particle) {
	r := f.params.PointerRadius
	dx := f.pointer.X - p.Pos.X
	dy := f.pointer.Y - p.Pos.Y
	d := math.Hypot(dx, dy)
	if d >= r || d == 0 {
		return
	}

	force := (r - d) / r
	angle := math.Atan2(dy, dx)
	p.Vel.X -= math.Cos(angle) * force * f.params.PointerStrength
	p.Vel.Y -= math.Sin(angle) * force * f.params.PointerStrength
}

// GridThreshold 粒子数超过该值时 Frame 改用空间网格计算连线
const GridThreshold = 300

// Frame 返回当前状态的绘制快照（粒子 + 连线）
func (f *Field) Frame() Frame {
	dots := make([]Dot, len(f.particles))
	for i, p := range f.particles {
		dots[i] = Dot{Pos: p.Pos, Radius: p.Radius}
	}
	edges := f.Edges
	if len(f.particles) > GridThreshold {
		edges = f.EdgesGrid
	}
	return Frame{
		Size:      f.bounds,
		Particles: dots,
		Edges:     edges(),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
