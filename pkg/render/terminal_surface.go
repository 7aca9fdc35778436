package render

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/collector/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// Glyph 终端中代表一个图集的字符和颜色
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

// DefaultGlyphs 默认图集字符表
var DefaultGlyphs = map[string]Glyph{
	"player": {Rune: '@', Color: tcell.ColorYellow},
	"gem":    {Rune: '*', Color: tcell.ColorAqua},
}

// fallbackGlyph 未配置的图集
var fallbackGlyph = Glyph{Rune: '#', Color: tcell.ColorWhite}

// TerminalSurface 在 tcell.Screen 上实现 Surface
//
// 竞技场坐标按 (竞技场尺寸 / 终端尺寸) 缩放到字符格；
// 精灵画成字符块，字号被忽略（一格一个字符）。
type TerminalSurface struct {
	screen tcell.Screen
	arenaW float64
	arenaH float64
	glyphs map[string]Glyph

	cols, rows     int
	scaleX, scaleY float64
}

// NewTerminalSurface 创建终端表面
// glyphs 为 nil 时使用 DefaultGlyphs
func NewTerminalSurface(screen tcell.Screen, arenaW, arenaH float64, glyphs map[string]Glyph) *TerminalSurface {
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}
	s := &TerminalSurface{
		screen: screen,
		arenaW: arenaW,
		arenaH: arenaH,
		glyphs: glyphs,
	}
	s.Resize()
	return s
}

// Resize 根据当前终端尺寸重新计算缩放比例（终端大小变化后调用）
func (s *TerminalSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
	if s.cols < 1 {
		s.cols = 1
	}
	if s.rows < 1 {
		s.rows = 1
	}
	s.scaleX = s.arenaW / float64(s.cols)
	s.scaleY = s.arenaH / float64(s.rows)
}

// Cell 返回竞技场坐标所在的字符格
func (s *TerminalSurface) Cell(x, y float64) (int, int) {
	return clampInt(int(math.Floor(x/s.scaleX)), 0, s.cols-1),
		clampInt(int(math.Floor(y/s.scaleY)), 0, s.rows-1)
}

// span 返回 [pos, pos+size) 覆盖的格子区间 [from, to)
func span(pos, size, scale float64, limit int) (int, int) {
	from := int(math.Floor(pos / scale))
	to := int(math.Ceil((pos + size) / scale))
	if from < 0 {
		from = 0
	}
	if to > limit {
		to = limit
	}
	return from, to
}

// FillRect 填充矩形：不透明颜色清空格子，半透明颜色与原背景混合并保留字符
func (s *TerminalSurface) FillRect(x, y, w, h float64, c color.Color) {
	_, _, _, a := c.RGBA()
	if a == 0 || w <= 0 || h <= 0 {
		return
	}

	x0, x1 := span(x, w, s.scaleX, s.cols)
	y0, y1 := span(y, h, s.scaleY, s.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if a == 0xffff {
				s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toTcellColor(c)))
				continue
			}

			mainc, combc, style, _ := s.screen.GetContent(cx, cy)
			fg, bg, _ := style.Decompose()
			style = style.Background(blend(bg, c)).Foreground(blend(fg, c))
			s.screen.SetContent(cx, cy, mainc, combc, style)
		}
	}
}

// DrawSprite 用图集对应的字符填充目标矩形覆盖的所有格子，忽略源帧区域
func (s *TerminalSurface) DrawSprite(id string, src image.Rectangle, dst types.Rect) {
	if dst.Empty() {
		return
	}

	g, ok := s.glyphs[id]
	if !ok {
		g = fallbackGlyph
	}

	x0, x1 := span(dst.X, dst.W, s.scaleX, s.cols)
	y0, y1 := span(dst.Y, dst.H, s.scaleY, s.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.setRune(cx, cy, g.Rune, g.Color)
		}
	}
}

// DrawText 写一行文字，保留所在格子的背景色
func (s *TerminalSurface) DrawText(str string, x, y float64, font Font, c color.Color, align Align) {
	runes := []rune(str)
	col, row := s.Cell(x, y)

	switch align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}

	fg := toTcellColor(c)
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= s.cols {
			continue
		}
		s.setRune(cx, row, r, fg)
	}
}

// setRune 写入字符和前景色，保留原背景色
func (s *TerminalSurface) setRune(x, y int, r rune, fg tcell.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, style.Foreground(fg))
}

// Show 把本帧内容刷新到终端
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

// toTcellColor 转换为 24 位 tcell 颜色（忽略 alpha）
func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// blend 把半透明颜色 c 叠加到 base 上；base 为默认色时按黑色处理
func blend(base tcell.Color, c color.Color) tcell.Color {
	br, bg, bb := base.RGB()
	if br < 0 {
		br, bg, bb = 0, 0, 0
	}

	// RGBA 返回预乘 alpha 的 16 位分量
	r, g, b, a := c.RGBA()
	inv := 1 - float64(a)/0xffff
	mix := func(dst int32, src uint32) int32 {
		return int32(float64(src>>8) + float64(dst)*inv)
	}
	return tcell.NewRGBColor(mix(br, r), mix(bg, g), mix(bb, b))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
