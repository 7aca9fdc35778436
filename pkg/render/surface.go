// Package render 定义渲染表面接口及其实现
//
// 游戏核心只依赖 Surface 接口；桌面端使用 Ebitengine 实现，终端使用 tcell 实现。
package render

import (
	"image"
	"image/color"

	"github.com/decker502/collector/pkg/types"
)

// Align 文字水平对齐方式
type Align int

const (
	// AlignLeft 以 x 为左边界
	AlignLeft Align = iota
	// AlignCenter 以 x 为中心
	AlignCenter
	// AlignRight 以 x 为右边界
	AlignRight
)

// Font 文字样式（字号，单位像素）
type Font struct {
	Size float64
}

// Surface 渲染表面
//
// 所有坐标都是竞技场坐标（逻辑像素），由实现负责映射到实际输出设备。
type Surface interface {
	// FillRect 填充纯色矩形
	FillRect(x, y, w, h float64, c color.Color)

	// DrawSprite 将图集 image 中的 src 区域绘制到 dst 矩形（按需缩放）
	DrawSprite(image string, src image.Rectangle, dst types.Rect)

	// DrawText 绘制一行文字，y 为文字顶部
	DrawText(text string, x, y float64, font Font, c color.Color, align Align)
}
