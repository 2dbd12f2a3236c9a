package effects

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// 滚动到位的判定阈值
const settleEpsilon = 0.5

// SmoothScroller 锚点平滑滚动
//
// 用临界阻尼弹簧把滚动位置拉向目标锚点的偏移量，每帧调用一次 Step。
type SmoothScroller struct {
	spring  harmonica.Spring
	anchors map[string]float64

	pos, vel float64
	target   float64
	active   bool
}

// NewSmoothScroller 创建平滑滚动器
//
// 参数：
//   - fps: 宿主帧率
//   - frequency: 弹簧角频率，越大越快
//   - damping: 阻尼比，1 为临界阻尼（无回弹）
func NewSmoothScroller(fps int, frequency, damping float64) *SmoothScroller {
	return &SmoothScroller{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		anchors: make(map[string]float64),
	}
}

// SetAnchor 注册锚点及其滚动偏移量
func (s *SmoothScroller) SetAnchor(id string, offset float64) {
	s.anchors[strings.TrimPrefix(id, "#")] = offset
}

// ScrollTo 开始滚动到 href 指向的锚点（"#section" 或 "section"）
//
// 锚点不存在时不滚动并返回 false。
func (s *SmoothScroller) ScrollTo(href string) bool {
	offset, ok := s.anchors[strings.TrimPrefix(href, "#")]
	if !ok {
		return false
	}
	s.target = offset
	s.active = true
	return true
}

// JumpTo 立即跳到偏移量（减少动态效果时使用）
func (s *SmoothScroller) JumpTo(offset float64) {
	s.pos, s.vel, s.target = offset, 0, offset
	s.active = false
}

// Step 推进一帧并返回新的滚动位置
func (s *SmoothScroller) Step() float64 {
	if !s.active {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return s.pos
}

// Position 当前滚动位置
func (s *SmoothScroller) Position() float64 { return s.pos }

// Scrolling 是否正在滚动
func (s *SmoothScroller) Scrolling() bool { return s.active }
