package entities

import (
	"image"

	"github.com/decker502/collector/pkg/components"
	"github.com/decker502/collector/pkg/render"
	"github.com/decker502/collector/pkg/types"
)

// Entity 玩家与收集物共享的数据：位置、尺寸、图集绑定和动画状态
// Position 由实体独占，不与其他实体共享存储
type Entity struct {
	Position  types.Vector
	Width     float64
	Height    float64
	Sprite    components.SpriteComponent
	Animation components.AnimationComponent
}

// Bounds 返回实体的轴对齐包围盒
func (e *Entity) Bounds() types.Rect {
	return types.RectAt(e.Position, e.Width, e.Height)
}

// SourceRect 返回当前动画帧在图集中的区域
func (e *Entity) SourceRect() image.Rectangle {
	return e.Animation.SourceRect(e.Sprite.FrameWidth, e.Sprite.FrameHeight)
}

// Draw 将当前帧绘制到实体的目标矩形
func (e *Entity) Draw(surface render.Surface) {
	surface.DrawSprite(e.Sprite.Image, e.SourceRect(), e.Bounds())
}
