package effects

import "time"

// HoverConfig 分类卡片悬停参数
type HoverConfig struct {
	RippleLifetime time.Duration // 涟漪存在时长（默认 600ms）
	LinkStagger    time.Duration // 相邻链接的推移间隔（默认 50ms）
	LinkNudge      float64       // 链接水平推移量（默认 4）
}

// DefaultHoverConfig 返回默认悬停参数
func DefaultHoverConfig() HoverConfig {
	return HoverConfig{
		RippleLifetime: 600 * time.Millisecond,
		LinkStagger:    50 * time.Millisecond,
		LinkNudge:      4,
	}
}

// Ripple 一次悬停产生的涟漪
type Ripple struct {
	ID   TaskID // 对应的过期任务
	Born time.Duration
}

// Category 分类卡片：进入时产生涟漪并依次推移链接，离开时复位
type Category struct {
	timeline *Timeline
	cfg      HoverConfig
	offsets  []float64
	ripples  map[TaskID]Ripple
	nudges   []TaskID
}

// NewCategory 创建分类卡片
func NewCategory(tl *Timeline, linkCount int, cfg HoverConfig) *Category {
	return &Category{
		timeline: tl,
		cfg:      cfg,
		offsets:  make([]float64, linkCount),
		ripples:  make(map[TaskID]Ripple),
	}
}

// Enter 指针进入
//
// 重复进入会先取消上一轮尚未执行的推移。
func (c *Category) Enter() {
	c.cancelNudges()

	var id TaskID
	id = c.timeline.After(c.cfg.RippleLifetime, func() {
		delete(c.ripples, id)
	})
	c.ripples[id] = Ripple{ID: id, Born: c.timeline.Now()}

	for i := range c.offsets {
		c.nudges = append(c.nudges, c.timeline.After(time.Duration(i)*c.cfg.LinkStagger, func() {
			c.offsets[i] = c.cfg.LinkNudge
		}))
	}
}

// Leave 指针离开：取消尚未执行的推移，所有链接复位
//
// 已产生的涟漪照常过期。
func (c *Category) Leave() {
	c.cancelNudges()
	for i := range c.offsets {
		c.offsets[i] = 0
	}
}

func (c *Category) cancelNudges() {
	for _, id := range c.nudges {
		c.timeline.Cancel(id)
	}
	c.nudges = c.nudges[:0]
}

// Ripples 当前存在的涟漪数
func (c *Category) Ripples() int { return len(c.ripples) }

// LinkOffset 第 i 个链接的水平推移量
func (c *Category) LinkOffset(i int) float64 { return c.offsets[i] }

// CardGlow 链接卡片上跟随指针的光晕
type CardGlow struct {
	rect   Rect
	active bool
	x, y   float64
}

// NewCardGlow 创建光晕
func NewCardGlow(rect Rect) *CardGlow {
	return &CardGlow{rect: rect}
}

// SetRect 更新卡片矩形（卡片本身在移动时每帧调用）
func (g *CardGlow) SetRect(rect Rect) {
	g.rect = rect
}

// Enter 指针进入卡片时创建光晕（已存在则不重复创建）
func (g *CardGlow) Enter() {
	if g.active {
		return
	}
	g.active = true
	g.x, g.y = 0, 0
}

// Move 指针在卡片上移动，光晕位置相对卡片左上角
func (g *CardGlow) Move(px, py float64) {
	if !g.active {
		return
	}
	g.x = px - g.rect.X
	g.y = py - g.rect.Y
}

// Leave 移除光晕
func (g *CardGlow) Leave() {
	g.active = false
}

// Position 返回光晕位置；ok 为 false 表示没有光晕
func (g *CardGlow) Position() (x, y float64, ok bool) {
	return g.x, g.y, g.active
}
