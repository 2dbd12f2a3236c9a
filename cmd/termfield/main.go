// Package main 在终端里运行粒子场
//
// Usage:
//
//	go run ./cmd/termfield [flags]
//
// Flags:
//
//	--config <path>   粒子场配置文件（默认使用内置默认值）
//	--count <n>       覆盖粒子数量
//	--seed <n>        随机种子（默认使用当前时间）
//	--log <path>      日志文件（终端被 tcell 占用，默认不输出日志）
//
// Controls:
//
//	鼠标移动   排斥粒子
//	c         切换连线
//	q/Esc     退出
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/particlefield/pkg/config"
	"github.com/gonewx/particlefield/pkg/effects"
	"github.com/gonewx/particlefield/pkg/termhost"
)

var (
	configFlag = flag.String("config", "", "Field config YAML (default: built-in defaults)")
	countFlag  = flag.Int("count", 0, "Override particle count")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	logFlag    = flag.String("log", "", "Write logs to this file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termfield: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	fieldConfig := config.DefaultFieldConfig()
	if *configFlag != "" {
		loaded, err := config.LoadFieldConfig(*configFlag)
		if err != nil {
			return err
		}
		fieldConfig = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	term, err := termhost.New(screen, fieldConfig, termhost.Config{
		Count:         *countFlag,
		Seed:          *seedFlag,
		ReducedMotion: effects.DetectReducedMotion(false, os.Getenv),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.Run(ctx)
}
