// Package termhost 在终端里运行粒子场：tcell 屏幕作为绘制表面，鼠标移动作为指针。
package termhost

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/particlefield/internal/particle"
	"github.com/gonewx/particlefield/pkg/config"
	"github.com/gonewx/particlefield/pkg/loop"
	"github.com/gonewx/particlefield/pkg/render"
)

// DefaultInterval 帧间隔（约 60 FPS）
const DefaultInterval = 16 * time.Millisecond

// Config 终端宿主配置
type Config struct {
	Count         int           // > 0 时覆盖配置中的粒子数量
	Seed          int64         // 0 表示使用当前时间
	Interval      time.Duration // 0 使用 DefaultInterval
	ReducedMotion bool          // 为 true 时只画静态背景
	CellWidth     float64       // 0 使用 render.DefaultCellWidth
	CellHeight    float64       // 0 使用 render.DefaultCellHeight
}

// Terminal 终端宿主
//
// 事件与帧都在 Run 的 select 循环里串行处理，粒子场不需要加锁。
type Terminal struct {
	screen   tcell.Screen
	surface  *render.TerminalSurface
	queue    *loop.FrameQueue
	animator *loop.Animator
	interval time.Duration
	reduced  bool

	cols, rows int
}

// New 创建终端宿主，screen 必须已经 Init
func New(screen tcell.Screen, fieldConfig *config.FieldConfig, cfg Config) (*Terminal, error) {
	if screen == nil {
		return nil, fmt.Errorf("termhost: nil screen")
	}

	cellW, cellH := cfg.CellWidth, cfg.CellHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = render.DefaultCellWidth, render.DefaultCellHeight
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surface := render.NewTerminalSurface(screen, cellW, cellH, fieldConfig.Background())
	width, height := surface.Size()

	params := fieldConfig.Params()
	if cfg.Count > 0 {
		params.Count = cfg.Count
	}
	field := particle.NewField(particle.Size{Width: float64(width), Height: float64(height)}, params, rand.New(rand.NewSource(seed)))

	queue := loop.NewFrameQueue()
	animator, err := loop.NewAnimator(field, surface, render.NewPainter(fieldConfig.RenderStyle()), queue)
	if err != nil {
		return nil, fmt.Errorf("failed to create animator: %w", err)
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	t := &Terminal{
		screen:   screen,
		surface:  surface,
		queue:    queue,
		animator: animator,
		interval: interval,
		reduced:  cfg.ReducedMotion,
	}
	t.cols, t.rows = screen.Size()
	log.Printf("[Terminal] %dx%d cells, %d particles (seed %d)", t.cols, t.rows, params.Count, seed)

	if t.reduced {
		log.Printf("[Terminal] Reduced motion requested, particle field not started")
		surface.Clear()
		screen.Show()
	} else {
		animator.Start()
	}
	return t, nil
}

// Run 运行事件循环，直到 ctx 取消、用户退出或屏幕关闭
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	defer t.animator.Halt()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				log.Printf("[Terminal] Quit requested")
				return nil
			}

		case <-ticker.C:
			t.Tick()
		}
	}
}

// HandleEvent 处理一个 tcell 事件；返回 false 表示退出
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'c', 'C':
				painter := t.animator.Painter()
				painter.SetShowConnections(!painter.Style().ShowConnections)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
			t.animator.PointerLeft()
			break
		}
		t.animator.PointerMoved(t.surface.CellToUnits(col, row))

	case *tcell.EventFocus:
		if !ev.Focused {
			t.animator.PointerLeft()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols == t.cols && rows == t.rows {
			break
		}
		t.cols, t.rows = cols, rows
		t.animator.Resized(t.surface.UnitsFor(cols, rows))
		if t.reduced {
			t.surface.Clear()
		}
		t.screen.Sync()
	}
	return true
}

// Tick 执行一帧并刷新屏幕
func (t *Terminal) Tick() bool {
	if t.reduced || !t.queue.Pump() {
		return false
	}
	t.screen.Show()
	return true
}

// Animator 返回动画循环
func (t *Terminal) Animator() *loop.Animator { return t.animator }
