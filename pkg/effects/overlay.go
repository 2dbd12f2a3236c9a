package effects

import "log"

// KeyEscape 关闭所有浮层的按键名
const KeyEscape = "Escape"

// OverlayManager 浮层管理
//
// 同一时刻最多一个浮层打开；任一浮层打开时锁定页面滚动。
type OverlayManager struct {
	order []string
	open  map[string]bool
}

// NewOverlayManager 创建浮层管理器并注册浮层
func NewOverlayManager(ids ...string) *OverlayManager {
	m := &OverlayManager{open: make(map[string]bool)}
	for _, id := range ids {
		m.Register(id)
	}
	return m
}

// Register 注册浮层，重复注册忽略
func (m *OverlayManager) Register(id string) {
	if _, ok := m.open[id]; ok {
		return
	}
	m.order = append(m.order, id)
	m.open[id] = false
}

// Open 关闭其他浮层后打开 id；未注册的 id 返回 false
func (m *OverlayManager) Open(id string) bool {
	if _, ok := m.open[id]; !ok {
		log.Printf("[Overlay] Unknown overlay %q", id)
		return false
	}
	m.CloseAll()
	m.open[id] = true
	return true
}

// Close 关闭 id
func (m *OverlayManager) Close(id string) {
	if _, ok := m.open[id]; ok {
		m.open[id] = false
	}
}

// CloseAll 关闭所有浮层
func (m *OverlayManager) CloseAll() {
	for _, id := range m.order {
		m.open[id] = false
	}
}

// Toggle 打开或关闭 id
func (m *OverlayManager) Toggle(id string) {
	if m.IsOpen(id) {
		m.Close(id)
		return
	}
	m.Open(id)
}

// BackdropClick 点击浮层区域；只有点在浮层背景本身（而不是内容）上才关闭
func (m *OverlayManager) BackdropClick(overlayID, hitID string) {
	if hitID == overlayID {
		m.Close(overlayID)
	}
}

// HandleKey 处理按键，Escape 关闭所有浮层；返回按键是否被处理
func (m *OverlayManager) HandleKey(key string) bool {
	if key != KeyEscape {
		return false
	}
	m.CloseAll()
	return true
}

// IsOpen 浮层是否打开
func (m *OverlayManager) IsOpen(id string) bool { return m.open[id] }

// Active 返回当前打开的浮层
func (m *OverlayManager) Active() (string, bool) {
	for _, id := range m.order {
		if m.open[id] {
			return id, true
		}
	}
	return "", false
}

// ScrollLocked 是否锁定页面滚动
func (m *OverlayManager) ScrollLocked() bool {
	_, ok := m.Active()
	return ok
}
