// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和资源、创建 GameState，
// 并实现 ebiten.Game 接口作为宿主调度器和键盘输入来源。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置路径，为空时使用 data/game.yaml
	ConfigPath string
	// Seed 随机种子，非 0 时覆盖配置文件中的 seed
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	state     *game.GameState
	driver    *game.FrameDriver
	resources *ResourceManager
	keys      keyPump
	start     time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath, cfg.Seed)
	if err != nil {
		return nil, err
	}

	// 创建资源管理器并加载图集
	resourceManager := NewResourceManager()
	if err := resourceManager.LoadResourceConfig(config.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("init"); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}
	if err := resourceManager.CheckSheets(gameConfig); err != nil {
		return nil, err
	}

	state, err := game.NewGameState(gameConfig, game.NewRand(gameConfig.Seed))
	if err != nil {
		return nil, fmt.Errorf("游戏状态初始化失败: %w", err)
	}

	log.Printf("[App] 竞技场 %.0fx%.0f, %d 个收集物, seed=%d",
		gameConfig.Arena.Width, gameConfig.Arena.Height, gameConfig.Collectible.Count, gameConfig.Seed)

	return &App{
		state:     state,
		driver:    game.NewFrameDriver(state),
		resources: resourceManager,
		start:     time.Now(),
	}, nil
}

// LoadGameConfig 加载游戏配置，seed 非 0 时覆盖配置中的种子
func LoadGameConfig(path string, seed int64) (*config.GameConfig, error) {
	if path == "" {
		path = config.DefaultGameConfigPath
	}

	gameConfig, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	gameConfig.ApplySeed(seed)

	log.Printf("[Config] 加载游戏配置: %s (seed=%d)", path, gameConfig.Seed)
	return gameConfig, nil
}

// Update 处理宿主事件：全屏切换、退出、把按键投递到游戏的输入队列
// 模拟本身在 Draw 中由 FrameDriver 驱动（每个显示帧一次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	a.keys.pump(a.state.Input())
	return nil
}

// Draw 每个显示帧调用一次，交给 FrameDriver 先绘制再更新
func (a *App) Draw(screen *ebiten.Image) {
	surface := NewEbitenSurface(screen, a.resources, a.resources)
	a.driver.OnFrame(a.elapsedMillis(), surface)
}

// elapsedMillis 自启动以来的毫秒数，作为帧时间戳
func (a *App) elapsedMillis() float64 {
	return float64(time.Since(a.start)) / float64(time.Millisecond)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即竞技场尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.state.Config()
	return int(cfg.Arena.Width), int(cfg.Arena.Height)
}

// Run 打开窗口并运行游戏，直到窗口关闭或按下 Esc
func (a *App) Run() error {
	cfg := a.state.Config()
	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
