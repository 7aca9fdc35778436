package entities

import (
	"github.com/decker502/collector/pkg/types"
)

// Player 玩家控制的精灵
//
// 不变式：每次 Update 之后 Position 都被限制在
// [0, ArenaWidth-Width] × [0, ArenaHeight-Height] 之内。
type Player struct {
	Entity

	Velocity    types.Vector    // 速度（单位/毫秒）
	CurrentKey  string          // 驱动当前移动的按键（最后按下者），空串表示无
	Facing      types.Direction // 当前朝向，决定 idle 帧
	PressedKeys map[string]bool // 当前按住的按键

	ArenaWidth  float64
	ArenaHeight float64
}

// Update 积分速度、限制在竞技场内并推进动画
// 负的 deltaTime 按 0 处理
func (p *Player) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	p.Position = p.Position.Plus(p.Velocity.Times(deltaTime))
	p.clamp()
	p.Animation.Advance(deltaTime)
}

// clamp 将位置限制在竞技场范围内
func (p *Player) clamp() {
	maxX := p.ArenaWidth - p.Width
	maxY := p.ArenaHeight - p.Height
	p.Position.X = clampFloat(p.Position.X, 0, maxX)
	p.Position.Y = clampFloat(p.Position.Y, 0, maxY)
}

// StartMoving 由按键 key 驱动朝 dir 移动，并从头播放该方向的行走动画（不循环）
func (p *Player) StartMoving(key string, dir types.Direction, velocity types.Vector, startFrame, endFrame int, delayMs float64) error {
	if err := p.Animation.Configure(startFrame, endFrame, false, delayMs); err != nil {
		return err
	}
	p.Velocity = velocity
	p.CurrentKey = key
	p.Facing = dir
	return nil
}

// StopMoving 速度归零并切换到单帧 idle 动画
// Facing 保持不变，记录玩家最后的朝向
func (p *Player) StopMoving(idleFrame int, delayMs float64) error {
	if err := p.Animation.Configure(idleFrame, idleFrame, false, delayMs); err != nil {
		return err
	}
	p.Velocity = types.Zero
	p.CurrentKey = ""
	return nil
}

// IsKeyPressed 判断按键是否处于按下状态
func (p *Player) IsKeyPressed(key string) bool {
	return p.PressedKeys[key]
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
