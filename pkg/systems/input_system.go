package systems

import (
	"fmt"
	"log"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/entities"
	"github.com/decker502/collector/pkg/types"
)

// DirectionBinding 一个方向对应的速度与动画
type DirectionBinding struct {
	Direction  types.Direction
	Velocity   types.Vector // 单位/毫秒
	StartFrame int
	EndFrame   int
	IdleFrame  int
}

// InputSystem 将方向键映射为玩家的速度和动画
//
// 规则（后按者优先）：
//   - 按下已按住的键：忽略
//   - 按下新方向键：记录按键，速度设为该方向，从头播放该方向的行走动画（不循环）
//   - 松开驱动当前移动的键：速度归零，切换到该方向的单帧 idle 动画
//   - 松开其他按住的键：只从按下集合中移除，不恢复之前方向的移动
//
// 同时按住多个方向键不会合成斜向移动。未绑定的按键被静默忽略。
type InputSystem struct {
	keys       map[string]types.Direction
	bindings   map[types.Direction]DirectionBinding
	frameDelay float64
}

// NewInputSystem 根据配置构建按键映射表
func NewInputSystem(cfg *config.GameConfig) (*InputSystem, error) {
	s := &InputSystem{
		keys:       make(map[string]types.Direction, len(cfg.Keys)),
		bindings:   make(map[types.Direction]DirectionBinding, 4),
		frameDelay: cfg.FrameDelayMs,
	}

	for key, name := range cfg.Keys {
		dir, ok := types.ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("key %q bound to unknown direction %q", key, name)
		}
		s.keys[key] = dir
	}

	for _, dir := range []types.Direction{types.DirectionUp, types.DirectionLeft, types.DirectionDown, types.DirectionRight} {
		dc := cfg.Direction(dir)
		s.bindings[dir] = DirectionBinding{
			Direction:  dir,
			Velocity:   dir.Unit().Times(cfg.Player.Speed),
			StartFrame: dc.Start,
			EndFrame:   dc.End,
			IdleFrame:  dc.Idle,
		}
	}

	return s, nil
}

// Binding 返回按键对应的方向绑定，未绑定时返回 false
func (s *InputSystem) Binding(key string) (DirectionBinding, bool) {
	dir, ok := s.keys[key]
	if !ok {
		return DirectionBinding{}, false
	}
	b, ok := s.bindings[dir]
	return b, ok
}

// KeyDown 处理方向键按下
// 返回 true 表示按键已绑定（无论是否因重复按下而被忽略）
func (s *InputSystem) KeyDown(p *entities.Player, key string) bool {
	b, ok := s.Binding(key)
	if !ok {
		log.Printf("[InputSystem] 忽略未绑定的按键 %q", key)
		return false
	}

	if p.IsKeyPressed(key) {
		return true
	}
	p.PressedKeys[key] = true

	if err := p.StartMoving(key, b.Direction, b.Velocity, b.StartFrame, b.EndFrame, s.frameDelay); err != nil {
		log.Printf("[InputSystem] 无法切换到 %s 动画: %v", b.Direction, err)
	}
	return true
}

// KeyUp 处理方向键松开
// 返回 true 表示按键已绑定
func (s *InputSystem) KeyUp(p *entities.Player, key string) bool {
	b, ok := s.Binding(key)
	if !ok {
		return false
	}

	delete(p.PressedKeys, key)

	if key != p.CurrentKey {
		return true
	}

	if err := p.StopMoving(b.IdleFrame, s.frameDelay); err != nil {
		log.Printf("[InputSystem] 无法切换到 %s idle 帧: %v", b.Direction, err)
	}
	return true
}
