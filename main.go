package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/collector/pkg/app"
	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/embedded"
)

func main() {
	// .env 与环境变量作为命令行参数的默认值
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "环境变量加载失败: %v\n", err)
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", env.Verbose, "显示详细调试信息")
	configPath := flag.String("config", env.ConfigPath, "游戏配置文件路径（默认使用内嵌的 data/game.yaml）")
	seed := flag.Int64("seed", env.Seed, "随机种子（0 表示使用配置文件或当前时间）")
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	if err := gameApp.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
