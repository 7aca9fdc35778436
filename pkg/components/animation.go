package components

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidAnimation 动画参数非法（帧间隔非正、帧范围颠倒等）
var ErrInvalidAnimation = errors.New("invalid animation")

// AnimationComponent 管理基于 spritesheet 的帧动画
// 帧按行优先排列在图集网格中，CurrentFrame 是图集内的全局帧索引
type AnimationComponent struct {
	CurrentFrame int     // 当前显示的帧索引
	StartFrame   int     // 帧范围起点（含）
	EndFrame     int     // 帧范围终点（含）
	Loop         bool    // 是否循环播放
	FrameDelay   float64 // 每帧持续时间（毫秒）
	Elapsed      float64 // 当前帧已累计的时间（毫秒）
	Columns      int     // 图集列数
	Finished     bool    // 非循环动画是否已停在最后一帧
}

// NewAnimationComponent 创建并配置动画
func NewAnimationComponent(columns, start, end int, loop bool, delayMs float64) (*AnimationComponent, error) {
	a := &AnimationComponent{Columns: columns}
	if err := a.Configure(start, end, loop, delayMs); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure 切换到新的帧范围并从起点重新播放
//
// 参数非法时返回 ErrInvalidAnimation，且不修改当前状态
func (a *AnimationComponent) Configure(start, end int, loop bool, delayMs float64) error {
	if delayMs <= 0 {
		return fmt.Errorf("%w: frame delay must be > 0, got %.2f", ErrInvalidAnimation, delayMs)
	}
	if start < 0 || end < start {
		return fmt.Errorf("%w: frame range [%d, %d]", ErrInvalidAnimation, start, end)
	}

	a.StartFrame = start
	a.EndFrame = end
	a.Loop = loop
	a.FrameDelay = delayMs
	a.CurrentFrame = start
	a.Elapsed = 0
	a.Finished = false
	return nil
}

// Advance 推进动画时间
//
// 每累计满一个 FrameDelay 前进一帧；越过 EndFrame 时循环动画回到 StartFrame，
// 非循环动画停在 EndFrame 并标记完成。未配置（FrameDelay <= 0）的动画不会推进。
func (a *AnimationComponent) Advance(deltaMs float64) {
	if a.Finished || a.FrameDelay <= 0 || deltaMs <= 0 {
		return
	}

	a.Elapsed += deltaMs
	for a.Elapsed >= a.FrameDelay {
		a.Elapsed -= a.FrameDelay
		a.CurrentFrame++

		if a.CurrentFrame > a.EndFrame {
			if a.Loop {
				a.CurrentFrame = a.StartFrame
				continue
			}
			a.CurrentFrame = a.EndFrame
			a.Elapsed = 0
			a.Finished = true
			return
		}
	}
}

// SourceRect 返回当前帧在图集中的源矩形
//
// row = CurrentFrame / Columns, col = CurrentFrame % Columns
func (a *AnimationComponent) SourceRect(frameW, frameH int) image.Rectangle {
	columns := a.Columns
	if columns <= 0 {
		columns = 1
	}

	row := a.CurrentFrame / columns
	col := a.CurrentFrame % columns
	x := col * frameW
	y := row * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}
