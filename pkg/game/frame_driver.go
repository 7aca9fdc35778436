package game

import (
	"github.com/decker502/collector/pkg/render"
)

// Frame 每帧被驱动的对象
type Frame interface {
	Draw(surface render.Surface)
	Update(deltaTime float64)
}

// FrameDriver 把宿主的逐帧回调转换为 Draw + Update(deltaTime)
//
// 第一次回调只记录时间基准，不绘制也不模拟（避免首帧出现未定义或巨大的 deltaTime）。
// 之后每次回调先绘制再更新，deltaTime 不做上限裁剪：长时间暂停会产生一次大步长。
// 重新调度由宿主负责（Ebitengine 每帧调用 Draw，终端宿主使用 ticker）。
type FrameDriver struct {
	target    Frame
	last      float64
	hasLast   bool
	frames    int
	lastDelta float64
}

// NewFrameDriver 创建驱动器
func NewFrameDriver(target Frame) *FrameDriver {
	return &FrameDriver{target: target}
}

// OnFrame 处理一次宿主回调
//
// 参数:
//   - timestampMs: 宿主提供的时间戳（毫秒）
//   - surface: 本帧的渲染表面
//
// 返回:
//   - bool: 本次是否执行了模拟（首帧返回 false）
func (d *FrameDriver) OnFrame(timestampMs float64, surface render.Surface) bool {
	if !d.hasLast {
		d.last = timestampMs
		d.hasLast = true
		return false
	}

	deltaTime := timestampMs - d.last
	d.target.Draw(surface)
	d.target.Update(deltaTime)

	d.last = timestampMs
	d.lastDelta = deltaTime
	d.frames++
	return true
}

// Frames 已模拟的帧数
func (d *FrameDriver) Frames() int {
	return d.frames
}

// LastDelta 最近一次模拟使用的 deltaTime（毫秒）
func (d *FrameDriver) LastDelta() float64 {
	return d.lastDelta
}
