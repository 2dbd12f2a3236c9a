package app

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/particlefield/pkg/effects"
	"github.com/gonewx/particlefield/pkg/utils"
)

// 帮助面板布局
const (
	helpMargin    = 24.0
	helpWidth     = 320.0
	helpMaxHeight = 200.0
	lineHeight    = 18
)

// 统计面板布局
const (
	statsWidth  = 180.0
	statsMargin = 12.0
)

// 入场动画时长与位移
const (
	entranceDuration = 300 * time.Millisecond
	entranceOffset   = 20.0
)

var (
	helpPanelColor = color.NRGBA{R: 20, G: 20, B: 48, A: 220}
	helpGlowColor   = color.NRGBA{R: 102, G: 126, B: 234, A: 48}
	helpRippleColor = color.NRGBA{R: 102, G: 126, B: 234, A: 160}
)

var statsLabels = []string{"Particles", "Connections", "Frames"}

var helpLines = []string{
	"Particle Field",
	"",
	"H      toggle this help",
	"Esc    close",
	"S      statistics",
	"C      toggle connections",
	"M      reduced motion",
	"F11    fullscreen",
}

func (a *App) helpClosedX() float64 {
	return -helpWidth - helpMargin
}

func (a *App) helpHeight() float64 {
	return math.Max(0, math.Min(helpMaxHeight, float64(a.height)-2*helpMargin))
}

func (a *App) statsOpenX() float64 {
	return float64(a.width) - statsWidth - statsMargin
}

func (a *App) statsClosedX() float64 {
	return float64(a.width)
}

// layoutHUD 按当前视口重新计算帮助面板与统计面板的锚点
func (a *App) layoutHUD() {
	a.helpPos.SetAnchor("help-open", helpMargin)
	a.helpPos.SetAnchor("help-closed", a.helpClosedX())
	a.statsPos.SetAnchor("stats-open", a.statsOpenX())
	a.statsPos.SetAnchor("stats-closed", a.statsClosedX())
}

// helpRect 帮助面板当前所在的矩形（随滑动变化）
func (a *App) helpRect() effects.Rect {
	return effects.Rect{X: a.helpPos.Position(), Y: helpMargin, W: helpWidth, H: a.helpHeight()}
}

// statsRowRect 第 i 行统计数字当前所在的矩形
func (a *App) statsRowRect(i int) effects.Rect {
	return effects.Rect{X: a.statsPos.Position(), Y: statsMargin + float64(i*lineHeight), W: statsWidth, H: lineHeight}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	a.drawHelp(screen)
	a.drawStats(screen)
	a.drawHints(screen)
}

func (a *App) drawHelp(screen *ebiten.Image) {
	r := a.helpRect()
	if r.X+r.W <= 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), helpPanelColor, false)
	if a.helpLinks.Ripples() > 0 {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, helpRippleColor, false)
	}
	if gx, gy, ok := a.helpGlow.Position(); ok {
		vector.DrawFilledCircle(screen, float32(r.X+gx), float32(r.Y+gy), 60, helpGlowColor, true)
	}
	for i, line := range helpLines {
		y := int(r.Y) + 12 + i*lineHeight
		if float64(y+lineHeight) > r.Y+r.H {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, int(r.X+16+a.helpLinks.LinkOffset(i)), y)
	}
}

func (a *App) drawStats(screen *ebiten.Image) {
	if a.statsPos.Position() >= a.statsClosedX() || len(a.stats) == 0 {
		return
	}
	for i, el := range a.stats {
		r := a.statsRowRect(i)
		text := fmt.Sprintf("%-12s %d", el.ID, el.Counter.Value(a.clock))
		ebitenutil.DebugPrintAt(screen, text, int(r.X), int(r.Y))
	}
	r := a.statsRowRect(len(a.stats))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-12s %.0f", "FPS", ebiten.ActualFPS()), int(r.X), int(r.Y))
}

// drawHints 左下角的标题与按键提示，页面加载后依次滑入
func (a *App) drawHints(screen *ebiten.Image) {
	rows := []struct {
		section string
		text    string
	}{
		{sectionTitle, "particlefield"},
		{sectionHint, "H: help   S: stats"},
	}

	base := a.height - 12 - len(rows)*lineHeight
	for i, row := range rows {
		offset, ok := a.entranceOffset(row.section)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(screen, row.text, 12, base+i*lineHeight+int(offset))
	}
}

// entranceOffset 区块入场动画的纵向偏移；尚未入场时 ok 为 false
func (a *App) entranceOffset(section string) (float64, bool) {
	at, ok := a.loader.Entered(section)
	if !ok {
		return 0, false
	}
	if a.reducedMotion {
		return 0, true
	}
	p := utils.Progress(float64(a.clock-at), float64(entranceDuration))
	return utils.Lerp(entranceOffset, 0, utils.EaseOutQuad(p)), true
}
