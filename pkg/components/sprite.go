package components

// SpriteComponent 绑定实体与图集
// Image 为资源清单中的图集名称，渲染时由 Surface 解析为实际图像
type SpriteComponent struct {
	Image       string
	FrameWidth  int
	FrameHeight int
}
