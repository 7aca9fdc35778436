package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/collector/pkg/components"
	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/types"
)

// NewCollectible 在指定位置创建一个收集物，播放循环动画
func NewCollectible(cfg *config.GameConfig, pos types.Vector) (*Collectible, error) {
	sheet, ok := cfg.Sheet(cfg.Collectible.Sheet)
	if !ok {
		return nil, fmt.Errorf("collectible sheet %q not configured", cfg.Collectible.Sheet)
	}

	c := &Collectible{
		Entity: Entity{
			Position: pos,
			Width:    cfg.Collectible.Width,
			Height:   cfg.Collectible.Height,
			Sprite: components.SpriteComponent{
				Image:       cfg.Collectible.Sheet,
				FrameWidth:  sheet.FrameWidth,
				FrameHeight: sheet.FrameHeight,
			},
			Animation: components.AnimationComponent{Columns: sheet.Columns},
		},
	}

	if err := c.Animation.Configure(cfg.Collectible.StartFrame, cfg.Collectible.EndFrame, true, cfg.FrameDelayMs); err != nil {
		return nil, fmt.Errorf("collectible animation: %w", err)
	}

	return c, nil
}

// SpawnCollectibles 在竞技场内随机生成 cfg.Collectible.Count 个收集物
// 收集物之间允许重叠，唯一约束是完全位于竞技场内
func SpawnCollectibles(cfg *config.GameConfig, rng *rand.Rand) ([]*Collectible, error) {
	arena := types.Rect{W: cfg.Arena.Width, H: cfg.Arena.Height}

	result := make([]*Collectible, 0, cfg.Collectible.Count)
	for i := 0; i < cfg.Collectible.Count; i++ {
		pos := RandomPosition(rng, arena, cfg.Collectible.Width, cfg.Collectible.Height)
		c, err := NewCollectible(cfg, pos)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	log.Printf("[EntityFactory] 生成 %d 个收集物", len(result))
	return result, nil
}

// RandomPosition 在 bounds 内为 w×h 的精灵均匀选取左上角位置
//
// 结果只取决于 rng 的状态，注入固定种子即可复现
// 精灵大于 bounds 时该轴固定在 bounds 起点
func RandomPosition(rng *rand.Rand, bounds types.Rect, w, h float64) types.Vector {
	spanX := bounds.W - w
	spanY := bounds.H - h
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}

	return types.Vector{
		X: bounds.X + rng.Float64()*spanX,
		Y: bounds.Y + rng.Float64()*spanY,
	}
}
