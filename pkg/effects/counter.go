package effects

import (
	"math"
	"time"

	"github.com/gonewx/particlefield/pkg/utils"
)

// DefaultCounterDuration 计数器默认滚动时长
const DefaultCounterDuration = 2000 * time.Millisecond

// Counter 从 0 滚动到目标值的数字计数器（三次方缓出）
//
// 只能启动一次，重复 Start 无效。
type Counter struct {
	target   int
	duration time.Duration
	started  bool
	start    time.Duration
}

// NewCounter 创建计数器
func NewCounter(target int, duration time.Duration) *Counter {
	return &Counter{target: target, duration: duration}
}

// Start 在 now 时刻开始滚动；已启动过则返回 false
func (c *Counter) Start(now time.Duration) bool {
	if c.started {
		return false
	}
	c.started = true
	c.start = now
	return true
}

// Started 是否已启动
func (c *Counter) Started() bool { return c.started }

// Target 目标值
func (c *Counter) Target() int { return c.target }

// Value 返回 now 时刻应显示的数值
//
// 未启动时为 0；滚动中为 floor(target * easeOutCubic(progress))；结束后精确等于目标值。
func (c *Counter) Value(now time.Duration) int {
	if !c.started {
		return 0
	}
	p := c.progress(now)
	if p >= 1 {
		return c.target
	}
	return int(math.Floor(float64(c.target) * utils.EaseOutCubic(p)))
}

// Done 滚动是否已结束
func (c *Counter) Done(now time.Duration) bool {
	return c.started && c.progress(now) >= 1
}

func (c *Counter) progress(now time.Duration) float64 {
	return utils.Progress(float64(now-c.start), float64(c.duration))
}
