// Package settings 持久化用户偏好（减少动态效果、粒子数量、连线开关、全屏）。
//
// 只保存偏好，不保存粒子状态：每次启动粒子都重新随机生成。
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好
type Settings struct {
	// ReducedMotion 用户主动要求减少动态效果（与环境探测结果取或）
	ReducedMotion bool `yaml:"reducedMotion"`
	// ParticleCount 覆盖配置文件中的粒子数量，0 表示使用配置值
	ParticleCount int `yaml:"particleCount"`
	// ShowConnections 是否绘制粒子连线
	ShowConnections bool `yaml:"showConnections"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认偏好
func DefaultSettings() *Settings {
	return &Settings{
		ReducedMotion:   false,
		ParticleCount:   0,
		ShowConnections: true,
		Fullscreen:      false,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// Manager 偏好管理器
type Manager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	settings     *Settings
}

// Open 打开应用的 gdata 存储并创建偏好管理器
//
// 存储不可用时降级为仅内存模式，不返回错误。
func Open(appName string) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (settings will not persist)", err)
		gm = nil
	}
	return NewManager(gm)
}

// NewManager 创建偏好管理器并尝试加载已保存的偏好
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load 从 gdata 加载偏好；未保存过时使用默认值
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.settings = DefaultSettings()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.ParticleCount < 0 {
		loaded.ParticleCount = 0
	}

	m.settings = loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存偏好；降级模式下直接返回 nil
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// Persistent 是否能持久化
func (m *Manager) Persistent() bool {
	return m.gdataManager != nil
}

// Get 返回当前偏好
func (m *Manager) Get() *Settings {
	return m.settings
}

// SetReducedMotion 设置减少动态效果（需调用 Save 持久化）
func (m *Manager) SetReducedMotion(enabled bool) {
	m.settings.ReducedMotion = enabled
}

// SetParticleCount 设置粒子数量覆盖值，负数按 0 处理
func (m *Manager) SetParticleCount(count int) {
	if count < 0 {
		count = 0
	}
	m.settings.ParticleCount = count
}

// SetShowConnections 设置连线开关
func (m *Manager) SetShowConnections(show bool) {
	m.settings.ShowConnections = show
}

// SetFullscreen 设置全屏
func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// ParticleCount 返回生效的粒子数量
//
// 偏好中设置了覆盖值时使用覆盖值，否则使用配置值。
func (m *Manager) ParticleCount(configured int) int {
	if m.settings.ParticleCount > 0 {
		return m.settings.ParticleCount
	}
	return configured
}
