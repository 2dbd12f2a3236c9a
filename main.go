// Package main 是粒子场的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   粒子场配置文件（默认使用内嵌的 data/field.yaml）
//	--count <n>       覆盖粒子数量
//	--seed <n>        随机种子（默认使用当前时间）
//	--verbose         启用详细日志
//
// Controls:
//
//	H    帮助面板
//	Esc  关闭面板
//	S    统计面板
//	C    切换连线
//	M    减少动态效果
//	F11  全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/particlefield/pkg/app"
	"github.com/gonewx/particlefield/pkg/embedded"
	"github.com/gonewx/particlefield/pkg/settings"
	"github.com/gonewx/particlefield/pkg/utils"
)

// gdata 存储使用的应用名
const appName = "particlefield"

var (
	configFlag  = flag.String("config", "", "Field config YAML (default: embedded data/field.yaml)")
	countFlag   = flag.Int("count", 0, "Override particle count")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	prefs := settings.Open(appName)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Count:      *countFlag,
		Seed:       *seedFlag,
		Settings:   prefs,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	// 设置窗口属性
	ebiten.SetWindowSize(app.DefaultWidth, app.DefaultHeight)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(prefs.Get().Fullscreen)

	// 开始主循环
	// RunGame 会反复调用 Update() 和 Draw()，直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
