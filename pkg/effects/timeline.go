// Package effects 实现粒子场之外的页面装饰效果：
// 计数器滚动、可见性观察、悬停涟漪与光晕、平滑滚动、浮层管理、
// 减少动态效果探测和页面入场动画。
//
// 所有效果都以显式时钟驱动（宿主传入自启动以来的时长），便于测试。
package effects

import (
	"container/heap"
	"time"
)

// TaskID 定时任务标识，可用于取消
type TaskID uint64

type task struct {
	id    TaskID
	due   time.Duration
	fn    func()
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].id < h[j].id
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Timeline 可取消的定时任务队列
//
// 到期时间相同的任务按预约顺序执行。任务执行期间 Now() 等于该任务的到期时间，
// 因此任务内部再预约的延迟是相对于它自己的到期时间计算的。
type Timeline struct {
	now    time.Duration
	nextID TaskID
	tasks  taskHeap
	byID   map[TaskID]*task
}

// NewTimeline 创建 Timeline，时钟从 0 开始
func NewTimeline() *Timeline {
	return &Timeline{byID: make(map[TaskID]*task)}
}

// Now 当前时钟
func (tl *Timeline) Now() time.Duration { return tl.now }

// After 预约 delay 之后执行 fn，delay <= 0 时在下一次 Advance 执行
func (tl *Timeline) After(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	tl.nextID++
	t := &task{id: tl.nextID, due: tl.now + delay, fn: fn}
	heap.Push(&tl.tasks, t)
	tl.byID[t.id] = t
	return t.id
}

// Cancel 取消尚未执行的任务；任务不存在或已执行时返回 false
func (tl *Timeline) Cancel(id TaskID) bool {
	t, ok := tl.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&tl.tasks, t.index)
	delete(tl.byID, id)
	return true
}

// Pending 尚未执行的任务数
func (tl *Timeline) Pending() int { return len(tl.tasks) }

// Advance 把时钟推进到 now 并执行所有到期任务，返回执行的任务数
//
// 时钟不会倒退：now 小于当前时钟时只执行已到期的任务。
func (tl *Timeline) Advance(now time.Duration) int {
	if now < tl.now {
		now = tl.now
	}
	ran := 0
	for len(tl.tasks) > 0 && tl.tasks[0].due <= now {
		t := heap.Pop(&tl.tasks).(*task)
		delete(tl.byID, t.id)
		tl.now = t.due
		t.fn()
		ran++
	}
	tl.now = now
	return ran
}
