// verify_collect 无界面验证整局流程
//
// 用固定种子创建游戏，自动操控玩家依次走到每个收集物，
// 确认计分、胜利判定和重新开始，然后打印报告。
//
// 使用方法：
//
//	go run ./cmd/verify_collect
//	go run ./cmd/verify_collect -seed 7 -verbose
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/entities"
	"github.com/decker502/collector/pkg/game"
	"github.com/decker502/collector/pkg/render"
	"github.com/decker502/collector/pkg/systems"
	"github.com/decker502/collector/pkg/types"
)

const frameMs = 16.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
	seed       = flag.Int64("seed", 1, "随机种子")
	maxFrames  = flag.Int("frames", 20000, "最多模拟的帧数")
)

// countingSurface 统计每帧的绘制调用
type countingSurface struct {
	fills   int
	sprites map[string]int
	texts   []string
}

func newCountingSurface() *countingSurface {
	return &countingSurface{sprites: make(map[string]int)}
}

func (s *countingSurface) reset() {
	s.fills = 0
	clear(s.sprites)
	s.texts = s.texts[:0]
}

func (s *countingSurface) FillRect(x, y, w, h float64, c color.Color) { s.fills++ }

func (s *countingSurface) DrawSprite(id string, src image.Rectangle, dst types.Rect) {
	s.sprites[id]++
}

func (s *countingSurface) DrawText(text string, x, y float64, font render.Font, c color.Color, align render.Align) {
	s.texts = append(s.texts, text)
}

// steering 把玩家引向目标，只在需要换方向时投递按键
type steering struct {
	queue *systems.KeyQueue
	held  string
}

func (s *steering) press(key string) {
	if key == s.held {
		return
	}
	if s.held != "" {
		s.queue.Push(systems.KeyEvent{Key: s.held, Down: false})
	}
	if key != "" {
		s.queue.Push(systems.KeyEvent{Key: key, Down: true})
	}
	s.held = key
}

// keyToward 先水平对齐再垂直靠近
func keyToward(player *entities.Player, target *entities.Collectible) string {
	pb, tb := player.Bounds(), target.Bounds()
	dx := (tb.X + tb.W/2) - (pb.X + pb.W/2)
	dy := (tb.Y + tb.H/2) - (pb.Y + pb.H/2)
	reachX := (pb.W+tb.W)/2 - 2
	reachY := (pb.H+tb.H)/2 - 2

	switch {
	case dx > reachX:
		return "d"
	case dx < -reachX:
		return "a"
	case dy > reachY:
		return "s"
	case dy < -reachY:
		return "w"
	}
	// 已经足够接近，保持最后的方向让重叠发生
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return "d"
		}
		return "a"
	}
	if dy > 0 {
		return "s"
	}
	return "w"
}

func nearest(player *entities.Player, items []*entities.Collectible) *entities.Collectible {
	var (
		best     *entities.Collectible
		bestDist = math.MaxFloat64
	)
	for _, c := range items {
		if c.Collected {
			continue
		}
		d := math.Hypot(c.Position.X-player.Position.X, c.Position.Y-player.Position.Y)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplySeed(*seed)

	state, err := game.NewGameState(cfg, game.NewRand(cfg.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	driver := game.NewFrameDriver(state)
	surface := newCountingSurface()
	steer := &steering{queue: state.Input()}

	fmt.Printf("=== verify_collect (seed=%d, %d 个收集物) ===\n", cfg.Seed, state.TotalCollectibles())

	failures := 0
	check := func(ok bool, format string, args ...any) {
		mark := "✅"
		if !ok {
			mark = "❌"
			failures++
		}
		fmt.Printf("%s %s\n", mark, fmt.Sprintf(format, args...))
	}

	ts := 0.0
	driver.OnFrame(ts, surface)

	lastScore := 0
	for !state.Won && driver.Frames() < *maxFrames {
		if target := nearest(state.Player, state.Collectibles); target != nil {
			steer.press(keyToward(state.Player, target))
		}

		ts += frameMs
		surface.reset()
		driver.OnFrame(ts, surface)

		if state.Score != lastScore {
			fmt.Printf("   帧 %5d: 得分 %d/%d\n", driver.Frames(), state.Score, state.TotalCollectibles())
			lastScore = state.Score
		}
	}
	steer.press("")

	check(state.Won, "全部收集 (%d 帧, 得分 %d/%d)", driver.Frames(), state.Score, state.TotalCollectibles())
	check(len(state.VisibleCollectibles()) == 0, "胜利后没有可见的收集物")

	// 下一帧应绘制胜利提示
	ts += frameMs
	surface.reset()
	driver.OnFrame(ts, surface)
	check(surface.sprites[cfg.Collectible.Sheet] == 0, "胜利画面不绘制收集物")
	check(len(surface.texts) >= 3, "胜利画面绘制分数、祝贺语和提示 (%v)", surface.texts)

	// 重新开始
	state.Input().Push(systems.KeyEvent{Key: cfg.RestartKey, Down: true})
	state.Input().Push(systems.KeyEvent{Key: cfg.RestartKey, Down: false})
	ts += frameMs
	surface.reset()
	driver.OnFrame(ts, surface)

	center := types.Vector{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}
	check(!state.Won && state.Score == 0, "重新开始后分数归零 (score=%d, won=%v)", state.Score, state.Won)
	check(len(state.VisibleCollectibles()) == cfg.Collectible.Count, "重新生成 %d 个收集物", len(state.VisibleCollectibles()))
	check(state.Player.Position == center, "玩家回到中心 %+v", state.Player.Position)

	if failures > 0 {
		fmt.Printf("\n%d 项检查失败\n", failures)
		os.Exit(1)
	}
	fmt.Println("\n全部检查通过")
}
