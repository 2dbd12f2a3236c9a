// Package app 提供粒子场应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/particlefield/internal/particle"
	"github.com/gonewx/particlefield/pkg/config"
	"github.com/gonewx/particlefield/pkg/effects"
	"github.com/gonewx/particlefield/pkg/embedded"
	"github.com/gonewx/particlefield/pkg/loop"
	"github.com/gonewx/particlefield/pkg/render"
	"github.com/gonewx/particlefield/pkg/settings"
	"github.com/gonewx/particlefield/pkg/utils"
)

// 默认窗口尺寸
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// ebiten 默认 TPS 下每次 Update 的时长
const tickDuration = time.Second / 60

// 浮层与入场区块 ID
const (
	overlayHelp  = "help"
	sectionTitle = "title"
	sectionHint  = "hint"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 粒子场配置文件，为空则使用内嵌的 data/field.yaml
	ConfigPath string
	// Count 覆盖粒子数量（> 0 时生效，优先于偏好设置和配置文件）
	Count int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Width, Height 初始视口尺寸，0 使用默认值
	Width, Height int
	// Settings 用户偏好，nil 时使用仅内存的默认偏好
	Settings *settings.Manager
}

// Input 一次 Update 采集到的输入
type Input struct {
	Pointer utils.PointerState
	Keys    []ebiten.Key // 本帧刚按下的按键
}

// App 是粒子场应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	fieldConfig *config.FieldConfig
	settings    *settings.Manager

	surface  *render.EbitenSurface
	queue    *loop.FrameQueue
	animator *loop.Animator

	timeline  *effects.Timeline
	overlays  *effects.OverlayManager
	loader    *effects.PageLoader
	helpPos   *effects.SmoothScroller
	helpGlow  *effects.CardGlow
	helpLinks *effects.Category

	statsPos      *effects.SmoothScroller
	statsObserver *effects.VisibilityObserver
	stats         []*effects.Element

	width, height int
	clock         time.Duration
	pointerInside bool
	helpHovered   bool
	reducedMotion bool
	showStats     bool
	verbose       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 加载粒子场配置
//
// path 为空时读取内嵌的默认配置（需先调用 embedded.Init）。
func LoadConfig(path string) (*config.FieldConfig, error) {
	if path != "" {
		return config.LoadFieldConfig(path)
	}
	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseFieldConfig(data)
}

// NewApp 创建并初始化粒子场应用
//
// 调用此函数前，如果 ConfigPath 为空，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fieldConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("粒子场配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded field config (count=%d, connectionDistance=%.0f)",
		fieldConfig.Particles.Count, fieldConfig.Particles.ConnectionDistance)

	return newApp(cfg, fieldConfig)
}

func newApp(cfg Config, fieldConfig *config.FieldConfig) (*App, error) {
	prefs := cfg.Settings
	if prefs == nil {
		prefs = settings.NewManager(nil)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := fieldConfig.Params()
	params.Count = prefs.ParticleCount(params.Count)
	if cfg.Count > 0 {
		params.Count = cfg.Count
	}
	log.Printf("[App] Creating field %dx%d with %d particles (seed %d)", width, height, params.Count, seed)

	field := particle.NewField(particle.Size{Width: float64(width), Height: float64(height)}, params, rand.New(rand.NewSource(seed)))

	style := fieldConfig.RenderStyle()
	style.ShowConnections = style.ShowConnections && prefs.Get().ShowConnections
	painter := render.NewPainter(style)

	surface := render.NewEbitenSurface(width, height, fieldConfig.Background())
	queue := loop.NewFrameQueue()
	animator, err := loop.NewAnimator(field, surface, painter, queue)
	if err != nil {
		return nil, fmt.Errorf("动画初始化失败: %w", err)
	}

	effectsConfig := fieldConfig.Effects
	timeline := effects.NewTimeline()

	a := &App{
		fieldConfig: fieldConfig,
		settings:    prefs,
		surface:     surface,
		queue:       queue,
		animator:    animator,
		timeline:    timeline,
		overlays:    effects.NewOverlayManager(overlayHelp),
		loader: effects.NewPageLoader(timeline,
			config.Ms(effectsConfig.LoadDelayMs), config.Ms(effectsConfig.EntranceStaggerMs),
			sectionTitle, sectionHint),
		helpPos:       effects.NewSmoothScroller(60, effectsConfig.ScrollFrequency, effectsConfig.ScrollDamping),
		helpGlow:      effects.NewCardGlow(effects.Rect{}),
		helpLinks:     effects.NewCategory(timeline, len(helpLines), fieldConfig.HoverConfig()),
		statsPos:      effects.NewSmoothScroller(60, effectsConfig.ScrollFrequency, effectsConfig.ScrollDamping),
		width:         width,
		height:        height,
		verbose:       cfg.Verbose,
		reducedMotion: effects.DetectReducedMotion(prefs.Get().ReducedMotion, os.Getenv),
	}
	a.layoutHUD()
	a.helpPos.JumpTo(a.helpClosedX())
	a.statsPos.JumpTo(a.statsClosedX())

	if a.reducedMotion {
		log.Printf("[App] Reduced motion requested, particle field not started")
	} else {
		animator.Start()
	}
	a.loader.Load()

	return a, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", DefaultWidth, DefaultHeight)
			a.pendingWindowSizeReset = false
		}
	}

	return a.Step(Input{
		Pointer: utils.SamplePointer(a.width, a.height),
		Keys:    inpututil.AppendJustPressedKeys(nil),
	})
}

// Step 用给定输入推进一个 tick（不含绘制）
func (a *App) Step(in Input) error {
	a.clock += tickDuration
	a.timeline.Advance(a.clock)

	for _, key := range in.Keys {
		a.handleKey(key)
	}

	a.helpPos.Step()
	a.statsPos.Step()
	a.handlePointer(in.Pointer)
	a.observeStats()
	return nil
}

func (a *App) handleKey(key ebiten.Key) {
	switch key {
	case ebiten.KeyH:
		a.overlays.Toggle(overlayHelp)
		a.syncHelp()
	case ebiten.KeyEscape:
		a.overlays.HandleKey(effects.KeyEscape)
		a.syncHelp()
	case ebiten.KeyS:
		a.toggleStats()
	case ebiten.KeyC:
		show := !a.settings.Get().ShowConnections
		a.settings.SetShowConnections(show)
		a.animator.Painter().SetShowConnections(show)
		a.saveSettings()
	case ebiten.KeyM:
		a.settings.SetReducedMotion(!a.settings.Get().ReducedMotion)
		a.reducedMotion = effects.DetectReducedMotion(a.settings.Get().ReducedMotion, os.Getenv)
		if !a.reducedMotion {
			a.animator.Start()
		}
		log.Printf("[App] Reduced motion: %v", a.reducedMotion)
		a.saveSettings()
	case ebiten.KeyF11:
		a.toggleFullscreen()
	}
}

func (a *App) handlePointer(p utils.PointerState) {
	if p.Present {
		a.animator.PointerMoved(float64(p.X), float64(p.Y))
		a.pointerInside = true
	} else if a.pointerInside {
		a.animator.PointerLeft()
		a.pointerInside = false
	}

	// 面板随弹簧滑动，光晕按当前位置换算
	panel := a.helpRect()
	a.helpGlow.SetRect(panel)
	onPanel := p.Present && a.overlays.IsOpen(overlayHelp) && panel.Contains(float64(p.X), float64(p.Y))
	if onPanel != a.helpHovered {
		a.helpHovered = onPanel
		if onPanel {
			a.helpGlow.Enter()
			a.helpLinks.Enter()
		} else {
			a.helpGlow.Leave()
			a.helpLinks.Leave()
		}
	}
	if onPanel {
		a.helpGlow.Move(float64(p.X), float64(p.Y))
	}

	// 点在帮助面板之外视为点击背景
	if p.JustPressed && a.overlays.IsOpen(overlayHelp) {
		hit := overlayHelp
		if onPanel {
			hit = "help-body"
		}
		a.overlays.BackdropClick(overlayHelp, hit)
		a.syncHelp()
	}
}

// syncHelp 让帮助面板滑向当前浮层状态对应的位置
func (a *App) syncHelp() {
	anchor := "#help-closed"
	if a.overlays.IsOpen(overlayHelp) {
		anchor = "#help-open"
	}
	if a.reducedMotion {
		x := a.helpClosedX()
		if a.overlays.IsOpen(overlayHelp) {
			x = helpMargin
		}
		a.helpPos.JumpTo(x)
		return
	}
	a.helpPos.ScrollTo(anchor)
}

func (a *App) toggleStats() {
	a.showStats = !a.showStats
	if a.showStats {
		// 每次打开面板都重新观察，各行滑入视口后才从 0 开始滚动
		targets := []int{
			a.animator.Field().Len(),
			len(a.animator.LastFrame().Edges),
			int(a.animator.Frames()),
		}
		a.statsObserver = a.fieldConfig.NewVisibilityObserver()
		a.stats = make([]*effects.Element, len(targets))
		for i, target := range targets {
			a.stats[i] = a.statsObserver.ObserveCounter(statsLabels[i], a.statsRowRect(i), target)
		}
	}
	a.syncStats()
}

// syncStats 让统计面板滑向当前开关状态对应的位置
func (a *App) syncStats() {
	x, anchor := a.statsClosedX(), "#stats-closed"
	if a.showStats {
		x, anchor = a.statsOpenX(), "#stats-open"
	}
	if a.reducedMotion {
		a.statsPos.JumpTo(x)
		return
	}
	a.statsPos.ScrollTo(anchor)
}

// observeStats 统计行跟随面板移动，进入视口的行启动计数器
func (a *App) observeStats() {
	if !a.showStats || a.statsObserver == nil {
		return
	}
	for i, el := range a.stats {
		el.Rect = a.statsRowRect(i)
	}
	for _, el := range a.statsObserver.Check(a.viewport(), a.clock) {
		log.Printf("[App] Stats row %q visible, counting to %d", el.ID, el.Counter.Target())
	}
}

func (a *App) viewport() effects.Rect {
	return effects.Rect{W: float64(a.width), H: float64(a.height)}
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次：驱动粒子场的帧回调，再叠加 HUD
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	if a.reducedMotion || !a.Pump() {
		a.surface.Clear()
	}
	a.drawHUD(screen)
}

// Pump 执行一次待执行的帧回调；减少动态效果时不执行
func (a *App) Pump() bool {
	if a.reducedMotion {
		return false
	}
	return a.queue.Pump()
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸始终等于窗口尺寸，尺寸变化时重建粒子场
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.resize(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.animator.Resized(width, height)
	a.layoutHUD()
	a.syncHelp()
	a.syncStats()
}

// Close 停止动画并保存偏好
func (a *App) Close() {
	a.animator.Halt()
	a.saveSettings()
}

// Animator 返回动画循环
func (a *App) Animator() *loop.Animator {
	return a.animator
}

// Overlays 返回浮层管理器
func (a *App) Overlays() *effects.OverlayManager {
	return a.overlays
}

// ReducedMotion 是否处于减少动态效果模式
func (a *App) ReducedMotion() bool {
	return a.reducedMotion
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
