package config

// 布局配置常量
// 本文件定义窗口尺寸等与配置文件无关的固定参数

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Sprite Collector"
)

// HUD 布局
const (
	// HUDMarginX 分数文字距左边缘的距离
	HUDMarginX = 16.0
	// HUDMarginY 分数文字距上边缘的距离
	HUDMarginY = 12.0
	// WinMessageOffsetY 胜利提示相对屏幕中心的纵向偏移
	WinMessageOffsetY = -30.0
	// RestartHintOffsetY 重新开始提示相对屏幕中心的纵向偏移
	RestartHintOffsetY = 30.0
)
