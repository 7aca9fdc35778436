package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/decker502/collector/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSimSurface 80x30 的模拟终端，对应 800x600 竞技场时每格 10x20
func newSimSurface(t *testing.T) (tcell.SimulationScreen, *TerminalSurface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	return screen, NewTerminalSurface(screen, 800, 600, nil)
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminalSurfaceCell(t *testing.T) {
	_, s := newSimSurface(t)

	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{400, 300, 40, 15},
		{799, 599, 79, 29},
		{-50, -50, 0, 0},
		{5000, 5000, 79, 29},
	}
	for _, tt := range tests {
		cx, cy := s.Cell(tt.x, tt.y)
		assert.Equal(t, tt.wantX, cx, "x for (%v,%v)", tt.x, tt.y)
		assert.Equal(t, tt.wantY, cy, "y for (%v,%v)", tt.x, tt.y)
	}
}

func TestTerminalSurfaceDrawSprite(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawSprite("player", image.Rect(0, 0, 32, 32), types.Rect{X: 400, Y: 300, W: 48, H: 48})

	// 400..448 → 列 40..44，300..348 → 行 15..17
	assert.Equal(t, '@', runeAt(screen, 40, 15))
	assert.Equal(t, '@', runeAt(screen, 44, 17))
	assert.NotEqual(t, '@', runeAt(screen, 45, 15))
	assert.NotEqual(t, '@', runeAt(screen, 40, 18))
	assert.NotEqual(t, '@', runeAt(screen, 39, 15))
}

func TestTerminalSurfaceUnknownSheetUsesFallback(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawSprite("mystery", image.Rect(0, 0, 8, 8), types.Rect{X: 0, Y: 0, W: 10, H: 20})
	assert.Equal(t, '#', runeAt(screen, 0, 0))
}

func TestTerminalSurfaceEmptySpriteDrawsNothing(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawSprite("player", image.Rect(0, 0, 8, 8), types.Rect{X: 100, Y: 100, W: 0, H: 20})
	assert.NotEqual(t, '@', runeAt(screen, 10, 5))
}

func TestTerminalSurfaceFillRectOpaque(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawSprite("gem", image.Rect(0, 0, 16, 16), types.Rect{X: 0, Y: 0, W: 10, H: 20})
	s.FillRect(0, 0, 800, 600, color.RGBA{R: 0x3a, G: 0x7d, B: 0x44, A: 0xff})

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, ' ', r, "opaque fill clears glyphs")
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x3a, 0x7d, 0x44), bg)

	_, _, style, _ = screen.GetContent(79, 29)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x3a, 0x7d, 0x44), bg)
}

func TestTerminalSurfaceTranslucentFillKeepsGlyphs(t *testing.T) {
	screen, s := newSimSurface(t)

	s.FillRect(0, 0, 800, 600, color.RGBA{R: 200, G: 200, B: 200, A: 0xff})
	s.DrawSprite("gem", image.Rect(0, 0, 16, 16), types.Rect{X: 0, Y: 0, W: 10, H: 20})
	s.FillRect(0, 0, 800, 600, color.RGBA{A: 0x80})

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '*', r)

	_, bg, _ := style.Decompose()
	red, _, _ := bg.RGB()
	assert.Less(t, red, int32(200), "overlay darkens the background")
	assert.Greater(t, red, int32(0))
}

func TestTerminalSurfaceTransparentFillIsNoop(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawSprite("gem", image.Rect(0, 0, 16, 16), types.Rect{X: 0, Y: 0, W: 10, H: 20})
	s.FillRect(0, 0, 800, 600, color.RGBA{})
	assert.Equal(t, '*', runeAt(screen, 0, 0))
}

func TestTerminalSurfaceDrawText(t *testing.T) {
	screen, s := newSimSurface(t)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	s.DrawText("Score: 1/10", 0, 0, Font{Size: 24}, white, AlignLeft)
	assert.Equal(t, 'S', runeAt(screen, 0, 0))
	assert.Equal(t, '0', runeAt(screen, 10, 0))

	s.DrawText("WIN", 400, 300, Font{Size: 40}, white, AlignCenter)
	assert.Equal(t, 'W', runeAt(screen, 39, 15))
	assert.Equal(t, 'I', runeAt(screen, 40, 15))
	assert.Equal(t, 'N', runeAt(screen, 41, 15))

	s.DrawText("end", 800, 580, Font{Size: 24}, white, AlignRight)
	assert.Equal(t, 'e', runeAt(screen, 76, 29))
	assert.Equal(t, 'd', runeAt(screen, 78, 29))
}

func TestTerminalSurfaceTextClipsAtEdges(t *testing.T) {
	screen, s := newSimSurface(t)

	s.DrawText("abcdef", 0, 0, Font{}, color.White, AlignRight)
	assert.NotEqual(t, 'f', runeAt(screen, 0, 0))

	s.DrawText("xyz", 790, 0, Font{}, color.White, AlignLeft)
	assert.Equal(t, 'x', runeAt(screen, 79, 0))
}

func TestTerminalSurfaceResize(t *testing.T) {
	screen, s := newSimSurface(t)

	screen.SetSize(40, 15)
	s.Resize()

	cx, cy := s.Cell(400, 300)
	assert.Equal(t, 20, cx)
	assert.Equal(t, 7, cy)
}

func TestTerminalSurfaceCustomGlyphs(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 10)

	s := NewTerminalSurface(screen, 100, 100, map[string]Glyph{
		"player": {Rune: 'P', Color: tcell.ColorRed},
	})
	s.DrawSprite("player", image.Rect(0, 0, 1, 1), types.Rect{X: 50, Y: 50, W: 10, H: 10})

	r, _, style, _ := screen.GetContent(5, 5)
	assert.Equal(t, 'P', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
}
