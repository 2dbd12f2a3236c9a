// Package loop 驱动粒子场的逐帧循环：清屏 → 画连线 → 画粒子 → 推进 → 预约下一帧。
package loop

// Scheduler 每次显示刷新调用一次回调，不提供可靠的帧间隔时间
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue 由宿主手动驱动的 Scheduler
//
// 桌面宿主在 ebiten 的 Draw 中调用 Pump，终端宿主在 ticker 到期时调用 Pump。
// 同一时刻最多只有一个待执行回调，重复预约以最后一次为准。
type FrameQueue struct {
	pending func()
}

// NewFrameQueue 创建 FrameQueue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame 预约下一帧
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = fn
}

// Pending 是否有待执行的帧
func (q *FrameQueue) Pending() bool {
	return q.pending != nil
}

// Pump 执行待执行的帧回调；没有预约时返回 false
//
// 回调在执行前先出队，回调内部可以再次预约。
func (q *FrameQueue) Pump() bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn()
	return true
}
