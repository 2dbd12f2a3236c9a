package loop

import (
	"errors"
	"log"

	"github.com/gonewx/particlefield/internal/particle"
	"github.com/gonewx/particlefield/pkg/render"
)

// Animator 把粒子场、绘制表面和调度器串成动画循环
//
// 所有方法都应在宿主的同一个事件循环中调用，Animator 不加锁。
type Animator struct {
	field     *particle.Field
	surface   render.Surface
	painter   *render.Painter
	scheduler Scheduler

	started bool
	halted  bool
	frames  uint64
	last    particle.Frame
}

// NewAnimator 创建 Animator
//
// 缺少绘制表面或调度器时返回错误，此时不应创建粒子场动画。
func NewAnimator(field *particle.Field, surface render.Surface, painter *render.Painter, scheduler Scheduler) (*Animator, error) {
	if field == nil {
		return nil, errors.New("animator: nil particle field")
	}
	if surface == nil {
		return nil, errors.New("animator: nil drawing surface")
	}
	if scheduler == nil {
		return nil, errors.New("animator: nil scheduler")
	}
	if painter == nil {
		painter = render.NewPainter(render.DefaultStyle())
	}
	return &Animator{
		field:     field,
		surface:   surface,
		painter:   painter,
		scheduler: scheduler,
	}, nil
}

// Start 预约第一帧；重复调用或 Halt 之后调用无效
func (a *Animator) Start() {
	if a.started || a.halted {
		return
	}
	a.started = true
	log.Printf("[Animator] Started with %d particles", a.field.Len())
	a.scheduler.RequestFrame(a.tick)
}

// Halt 停止预约后续帧
//
// 幂等；在 Start 之前调用会使后续 Start 无效。
func (a *Animator) Halt() {
	if a.halted {
		return
	}
	a.halted = true
	log.Printf("[Animator] Halted after %d frames", a.frames)
}

// Halted 是否已停止
func (a *Animator) Halted() bool { return a.halted }

func (a *Animator) tick() {
	if a.halted {
		return
	}
	a.Frame()
	if !a.halted {
		a.scheduler.RequestFrame(a.tick)
	}
}

// Frame 渲染当前状态并推进一帧
//
// 先画后推进：画面反映的是采样时刻的位置与指针状态，
// 下一帧的运动学在绘制之后计算。
func (a *Animator) Frame() {
	frame := a.field.Frame()
	a.painter.Draw(a.surface, frame)
	a.field.Advance()
	a.last = frame
	a.frames++
}

// Resized 视口尺寸变化：先设置表面尺寸，再重建粒子
//
// 每次调用都会重新生成粒子，去重由宿主负责。
func (a *Animator) Resized(width, height int) {
	a.surface.SetSize(width, height)
	a.field.Resize(particle.Size{Width: float64(width), Height: float64(height)})
	log.Printf("[Animator] Resized to %dx%d, particles regenerated", width, height)
}

// PointerMoved 指针移动
func (a *Animator) PointerMoved(x, y float64) {
	a.field.SetPointer(x, y)
}

// PointerLeft 指针离开视口
func (a *Animator) PointerLeft() {
	a.field.ClearPointer()
}

// Field 返回粒子场
func (a *Animator) Field() *particle.Field { return a.field }

// Painter 返回 Painter
func (a *Animator) Painter() *render.Painter { return a.painter }

// Frames 已渲染的帧数
func (a *Animator) Frames() uint64 { return a.frames }

// LastFrame 最近一次绘制的快照
func (a *Animator) LastFrame() particle.Frame { return a.last }
