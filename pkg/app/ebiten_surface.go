package app

import (
	"image"
	"image/color"
	"log"

	"github.com/decker502/collector/pkg/render"
	"github.com/decker502/collector/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSource 按图集名称提供图像
type ImageSource interface {
	Image(id string) *ebiten.Image
}

// FaceSource 按字号提供字体
type FaceSource interface {
	Face(size float64) (*text.GoTextFace, error)
}

// EbitenSurface 在 ebiten.Image 上实现 render.Surface
// 竞技场坐标与逻辑屏幕坐标一致（Layout 返回竞技场尺寸）
type EbitenSurface struct {
	screen *ebiten.Image
	images ImageSource
	faces  FaceSource
}

// NewEbitenSurface 包装当前帧的屏幕
func NewEbitenSurface(screen *ebiten.Image, images ImageSource, faces FaceSource) *EbitenSurface {
	return &EbitenSurface{screen: screen, images: images, faces: faces}
}

// FillRect 填充纯色矩形（支持半透明）
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawSprite 绘制图集子区域并缩放到目标矩形
func (s *EbitenSurface) DrawSprite(id string, src image.Rectangle, dst types.Rect) {
	sheet := s.images.Image(id)
	if sheet == nil || src.Empty() {
		return
	}

	sub, ok := sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	s.screen.DrawImage(sub, op)
}

// DrawText 绘制一行文字
func (s *EbitenSurface) DrawText(str string, x, y float64, font render.Font, c color.Color, align render.Align) {
	face, err := s.faces.Face(font.Size)
	if err != nil {
		log.Printf("[EbitenSurface] 字体不可用: %v", err)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = textAlign(align)
	text.Draw(s.screen, str, face, op)
}

func textAlign(align render.Align) text.Align {
	switch align {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
