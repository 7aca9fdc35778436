package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/entities"
	"github.com/decker502/collector/pkg/render"
	"github.com/decker502/collector/pkg/systems"
)

// GameState 一局游戏的全部状态，并负责每帧的更新与绘制
//
// 不变式：
//   - Score 等于 Collected == true 的收集物数量
//   - Won == (Score == TotalCollectibles())，并且在 Reset 之前不会变回 false
//
// 所有修改都发生在帧循环内（Update / HandleKey），不需要加锁；
// 其他线程产生的按键应通过 Input() 返回的队列投递。
type GameState struct {
	Score        int
	Player       *entities.Player
	Collectibles []*entities.Collectible
	Won          bool

	cfg    *config.GameConfig
	rng    *rand.Rand
	input  *systems.InputSystem
	render *systems.RenderSystem
	queue  *systems.KeyQueue
}

// NewRand 创建确定性的随机源，相同种子生成相同的收集物布局
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewGameState 校验配置并创建一局新游戏
//
// 参数:
//   - cfg: 游戏配置（非法配置在此被拒绝）
//   - rng: 随机源，决定收集物位置；注入固定种子可复现
//
// 返回:
//   - *GameState: 初始状态（分数 0，玩家位于竞技场中心）
//   - error: 配置非法时返回错误
func NewGameState(cfg *config.GameConfig, rng *rand.Rand) (*GameState, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	input, err := systems.NewInputSystem(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build input bindings: %w", err)
	}

	gs := &GameState{
		cfg:    cfg,
		rng:    rng,
		input:  input,
		render: systems.NewRenderSystem(cfg),
		queue:  systems.NewKeyQueue(systems.DefaultKeyQueueSize),
	}

	if err := gs.Reset(); err != nil {
		return nil, err
	}
	return gs, nil
}

// Reset 重新构建整局：玩家回到中心并停止，重新随机生成收集物，分数和胜利标记清零
func (gs *GameState) Reset() error {
	if err := gs.cfg.Validate(); err != nil {
		return err
	}

	player, err := entities.NewPlayer(gs.cfg)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	collectibles, err := entities.SpawnCollectibles(gs.cfg, gs.rng)
	if err != nil {
		return fmt.Errorf("failed to spawn collectibles: %w", err)
	}

	gs.Player = player
	gs.Collectibles = collectibles
	gs.Score = 0
	gs.Won = false

	log.Printf("[GameState] 新的一局：%d 个收集物", len(collectibles))
	return nil
}

// Input 返回按键事件队列
// 宿主（可能在其他 goroutine）向队列投递事件，Update 在每帧开始时统一处理
func (gs *GameState) Input() *systems.KeyQueue {
	return gs.queue
}

// HandleKey 立即处理一个按键事件（必须在帧循环所在的线程调用）
//
// 重新开始键只在胜利后按下时生效，其他时候是空操作；方向键交给 InputSystem。
func (gs *GameState) HandleKey(ev systems.KeyEvent) {
	if ev.Key == gs.cfg.RestartKey {
		if ev.Down && gs.Won {
			log.Printf("[GameState] 重新开始")
			if err := gs.Reset(); err != nil {
				log.Printf("[GameState] 重新开始失败: %v", err)
			}
		}
		return
	}

	if ev.Down {
		gs.input.KeyDown(gs.Player, ev.Key)
	} else {
		gs.input.KeyUp(gs.Player, ev.Key)
	}
}

// Update 推进一帧模拟
//
// 1. 处理排队的按键
// 2. 更新玩家（速度积分 + 边界限制 + 动画）
// 3. 依次更新收集物，未收集且与玩家重叠的被收集并计分
//
// 参数:
//   - deltaTime: 距上一帧的时间（毫秒）
func (gs *GameState) Update(deltaTime float64) {
	gs.queue.Drain(gs.HandleKey)

	gs.Player.Update(deltaTime)

	for i, c := range gs.Collectibles {
		c.Update(deltaTime)

		if c.Collected || !systems.EntitiesOverlap(gs.Player, c) {
			continue
		}

		c.Collect()
		gs.Score++
		log.Printf("[GameState] 收集物 #%d 已收集 (%d/%d)", i, gs.Score, gs.TotalCollectibles())

		if gs.Score == gs.TotalCollectibles() {
			gs.Won = true
			log.Printf("[GameState] 全部收集完成")
		}
	}
}

// Draw 绘制当前状态（不修改任何模拟状态）
func (gs *GameState) Draw(surface render.Surface) {
	gs.render.Draw(surface, gs.Player, gs.Collectibles, gs.Score, gs.TotalCollectibles(), gs.Won)
}

// TotalCollectibles 本局收集物总数
func (gs *GameState) TotalCollectibles() int {
	return len(gs.Collectibles)
}

// VisibleCollectibles 返回尚未收集（会被绘制）的收集物
func (gs *GameState) VisibleCollectibles() []*entities.Collectible {
	visible := make([]*entities.Collectible, 0, len(gs.Collectibles))
	for _, c := range gs.Collectibles {
		if !c.Collected {
			visible = append(visible, c)
		}
	}
	return visible
}

// Config 返回当前配置
func (gs *GameState) Config() *config.GameConfig {
	return gs.cfg
}
