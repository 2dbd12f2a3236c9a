package effects

import (
	"math"
	"time"
)

// Rect 轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// Area 面积，宽高为负时视为 0
func (r Rect) Area() float64 {
	return math.Max(0, r.W) * math.Max(0, r.H)
}

// Intersect 两矩形的交集，不相交时宽或高为 0
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: math.Max(0, x1-x0), H: math.Max(0, y1-y0)}
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.W && y <= r.Y+r.H
}

// Element 被观察的元素
type Element struct {
	ID      string
	Rect    Rect
	Visible bool     // 一旦可见就保持可见
	Counter *Counter // 可选：首次可见时启动
}

// VisibilityObserver 滚动可见性观察器
//
// 元素与视口（底部收缩 bottomMargin）的交集面积占元素面积的比例
// 达到 threshold 时视为可见。
type VisibilityObserver struct {
	threshold       float64
	bottomMargin    float64
	counterDuration time.Duration
	elements        []*Element
}

// NewVisibilityObserver 创建观察器（默认 threshold 0.1，bottomMargin 50）
func NewVisibilityObserver(threshold, bottomMargin float64, counterDuration time.Duration) *VisibilityObserver {
	return &VisibilityObserver{
		threshold:       threshold,
		bottomMargin:    bottomMargin,
		counterDuration: counterDuration,
	}
}

// Observe 观察普通元素
func (o *VisibilityObserver) Observe(id string, rect Rect) *Element {
	el := &Element{ID: id, Rect: rect}
	o.elements = append(o.elements, el)
	return el
}

// ObserveCounter 观察带计数器的统计数字元素
func (o *VisibilityObserver) ObserveCounter(id string, rect Rect, target int) *Element {
	el := o.Observe(id, rect)
	el.Counter = NewCounter(target, o.counterDuration)
	return el
}

// Elements 所有被观察元素
func (o *VisibilityObserver) Elements() []*Element { return o.elements }

// Check 按当前视口检查所有元素，返回本次新变为可见的元素
//
// 新可见且带计数器的元素在 now 时刻启动计数器。
func (o *VisibilityObserver) Check(viewport Rect, now time.Duration) []*Element {
	root := viewport
	root.H = math.Max(0, root.H-o.bottomMargin)

	var newly []*Element
	for _, el := range o.elements {
		if el.Visible || !o.intersecting(el.Rect, root) {
			continue
		}
		el.Visible = true
		if el.Counter != nil {
			el.Counter.Start(now)
		}
		newly = append(newly, el)
	}
	return newly
}

func (o *VisibilityObserver) intersecting(r, root Rect) bool {
	area := r.Area()
	if area == 0 {
		return root.Contains(r.X, r.Y)
	}
	inter := r.Intersect(root).Area()
	if inter == 0 {
		return false
	}
	return inter/area >= o.threshold
}
