package entities

import (
	"fmt"
	"log"

	"github.com/decker502/collector/pkg/components"
	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/types"
)

// NewPlayer 创建玩家实体
//
// 玩家左上角位于竞技场中心，速度为零，播放初始朝向的 idle 帧。
//
// 参数:
//   - cfg: 已校验的游戏配置
//
// 返回:
//   - *Player: 玩家实体
//   - error: 图集未配置或动画参数非法时返回错误
func NewPlayer(cfg *config.GameConfig) (*Player, error) {
	sheet, ok := cfg.Sheet(cfg.Player.Sheet)
	if !ok {
		return nil, fmt.Errorf("player sheet %q not configured", cfg.Player.Sheet)
	}

	facing := cfg.StartDirection()
	idle := cfg.Direction(facing).Idle

	p := &Player{
		Entity: Entity{
			Position: types.Vector{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2},
			Width:    cfg.Player.Width,
			Height:   cfg.Player.Height,
			Sprite: components.SpriteComponent{
				Image:       cfg.Player.Sheet,
				FrameWidth:  sheet.FrameWidth,
				FrameHeight: sheet.FrameHeight,
			},
			Animation: components.AnimationComponent{Columns: sheet.Columns},
		},
		Facing:      facing,
		PressedKeys: make(map[string]bool),
		ArenaWidth:  cfg.Arena.Width,
		ArenaHeight: cfg.Arena.Height,
	}

	if err := p.Animation.Configure(idle, idle, false, cfg.FrameDelayMs); err != nil {
		return nil, fmt.Errorf("player idle animation: %w", err)
	}

	log.Printf("[EntityFactory] 创建玩家 (%.0f, %.0f) 尺寸 %.0fx%.0f", p.Position.X, p.Position.Y, p.Width, p.Height)
	return p, nil
}
