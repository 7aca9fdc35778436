package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/entities"
	"github.com/decker502/collector/pkg/render"
	"github.com/decker502/collector/pkg/types"
)

type drawOp struct {
	kind  string // fill / sprite / text
	image string
	text  string
	align render.Align
	dst   types.Rect
}

// recordingSurface 记录所有绘制调用
type recordingSurface struct {
	ops []drawOp
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", dst: types.Rect{X: x, Y: y, W: w, H: h}})
}

func (r *recordingSurface) DrawSprite(img string, src image.Rectangle, dst types.Rect) {
	r.ops = append(r.ops, drawOp{kind: "sprite", image: img, dst: dst})
}

func (r *recordingSurface) DrawText(text string, x, y float64, font render.Font, c color.Color, align render.Align) {
	r.ops = append(r.ops, drawOp{kind: "text", text: text, align: align, dst: types.Rect{X: x, Y: y}})
}

func renderFixture(t *testing.T) (*RenderSystem, *entities.Player, []*entities.Collectible) {
	t.Helper()

	cfg := config.DefaultGameConfig()
	p, err := entities.NewPlayer(cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	var items []*entities.Collectible
	for i := 0; i < 3; i++ {
		c, err := entities.NewCollectible(cfg, types.Vector{X: float64(i * 100), Y: 10})
		if err != nil {
			t.Fatalf("NewCollectible failed: %v", err)
		}
		items = append(items, c)
	}

	return NewRenderSystem(cfg), p, items
}

func TestRenderSystemDrawOrder(t *testing.T) {
	rs, p, items := renderFixture(t)
	items[1].Collect()

	surface := &recordingSurface{}
	rs.Draw(surface, p, items, 1, 3, false)

	kinds := make([]string, 0, len(surface.ops))
	for _, op := range surface.ops {
		kinds = append(kinds, op.kind+":"+op.image)
	}

	want := []string{"fill:", "sprite:gem", "sprite:gem", "sprite:player", "text:"}
	if len(kinds) != len(want) {
		t.Fatalf("Expected ops %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("op %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}

	// 已收集的 items[1] 不应被绘制
	for _, op := range surface.ops {
		if op.kind == "sprite" && op.dst.X == 100 && op.image == "gem" {
			t.Error("Collected item should not be drawn")
		}
	}

	last := surface.ops[len(surface.ops)-1]
	if last.text != "Score: 1/3" || last.align != render.AlignLeft {
		t.Errorf("Unexpected HUD op %+v", last)
	}
}

func TestRenderSystemWinOverlay(t *testing.T) {
	rs, p, items := renderFixture(t)
	for _, c := range items {
		c.Collect()
	}

	surface := &recordingSurface{}
	rs.Draw(surface, p, items, 3, 3, true)

	var texts []drawOp
	fills := 0
	for _, op := range surface.ops {
		switch op.kind {
		case "text":
			texts = append(texts, op)
		case "fill":
			fills++
		}
	}

	if fills != 2 {
		t.Errorf("Expected background and overlay fills, got %d", fills)
	}
	if len(texts) != 3 {
		t.Fatalf("Expected score, win message and restart hint, got %d texts", len(texts))
	}
	if texts[1].text != WinText(3) || texts[1].align != render.AlignCenter || texts[1].dst.X != 400 {
		t.Errorf("Unexpected win message op %+v", texts[1])
	}
	if texts[2].text != "Press R to restart" || texts[2].align != render.AlignCenter {
		t.Errorf("Unexpected restart hint op %+v", texts[2])
	}
}
