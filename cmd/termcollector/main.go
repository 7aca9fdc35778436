// termcollector 在终端中运行收集游戏
//
// 使用方法：
//
//	go run ./cmd/termcollector
//	go run ./cmd/termcollector -seed 42 -log term.log -verbose
//
// WASD 或方向键移动，R 在胜利后重新开始，Esc / Ctrl-C 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/collector/internal/term"
	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/game"
	"github.com/gdamore/tcell/v2"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "环境变量加载失败: %v\n", err)
		os.Exit(1)
	}

	var (
		verbose      = flag.Bool("verbose", env.Verbose, "写入详细日志（需配合 -log）")
		configPath   = flag.String("config", env.ConfigPath, "游戏配置文件路径（默认 data/game.yaml）")
		seed         = flag.Int64("seed", env.Seed, "随机种子（0 表示使用配置文件或当前时间）")
		logPath      = flag.String("log", "", "日志文件路径（终端被游戏占用，默认丢弃日志）")
		repeatDelay  = flag.Duration("repeat", term.DefaultRepeatDelay, "首次按下后等待自动重复的时间")
		releaseAfter = flag.Duration("release", term.DefaultReleaseAfter, "自动重复中断多久后视为松开")
		frame        = flag.Duration("frame", term.DefaultFrameInterval, "帧间隔")
	)
	flag.Parse()

	// 终端被游戏占用，日志只能写入文件
	log.SetOutput(io.Discard)
	if *verbose && *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.Ltime | log.Lmicroseconds)
	}

	// 终端版从磁盘读取配置
	if *configPath == "" {
		*configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏配置加载失败: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[Config] 加载游戏配置: %s (seed=%d)", *configPath, gameConfig.ApplySeed(*seed))

	state, err := game.NewGameState(gameConfig, game.NewRand(gameConfig.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, state, term.Options{
		FrameInterval: *frame,
		RepeatDelay:   *repeatDelay,
		ReleaseAfter:  *releaseAfter,
	})

	start := time.Now()
	if err := host.Run(ctx); err != nil {
		log.Printf("[Term] %v", err)
	}
	log.Printf("[Term] 运行 %v，得分 %d/%d", time.Since(start).Round(time.Second), state.Score, state.TotalCollectibles())
}
