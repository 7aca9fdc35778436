package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/entities"
	"github.com/decker502/collector/pkg/render"
)

// RenderSystem 负责每帧的绘制顺序：
// 背景 → 未收集的收集物 → 玩家 → 分数 → 胜利遮罩（仅胜利时）
type RenderSystem struct {
	arenaWidth  float64
	arenaHeight float64
	background  color.RGBA
	textColor   color.RGBA
	overlay     color.RGBA
	hudFont     render.Font
	messageFont render.Font
	restartKey  string
}

// NewRenderSystem 从配置创建渲染系统
func NewRenderSystem(cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{
		arenaWidth:  cfg.Arena.Width,
		arenaHeight: cfg.Arena.Height,
		background:  cfg.BackgroundColor(),
		textColor:   cfg.TextColor(),
		overlay:     cfg.OverlayColor(),
		hudFont:     render.Font{Size: cfg.HUD.FontSize},
		messageFont: render.Font{Size: cfg.HUD.MessageFontSize},
		restartKey:  cfg.RestartKey,
	}
}

// Draw 绘制一帧
//
// 参数:
//   - surface: 渲染表面
//   - player: 玩家
//   - collectibles: 所有收集物（已收集的会被跳过）
//   - score, total: 当前分数与收集物总数
//   - won: 是否已胜利
func (s *RenderSystem) Draw(surface render.Surface, player *entities.Player, collectibles []*entities.Collectible, score, total int, won bool) {
	surface.FillRect(0, 0, s.arenaWidth, s.arenaHeight, s.background)

	for _, c := range collectibles {
		if c.Collected {
			continue
		}
		c.Draw(surface)
	}

	player.Draw(surface)

	surface.DrawText(ScoreText(score, total), config.HUDMarginX, config.HUDMarginY, s.hudFont, s.textColor, render.AlignLeft)

	if won {
		s.drawWinOverlay(surface, total)
	}
}

// drawWinOverlay 半透明遮罩 + 居中的胜利提示和重新开始提示
func (s *RenderSystem) drawWinOverlay(surface render.Surface, total int) {
	surface.FillRect(0, 0, s.arenaWidth, s.arenaHeight, s.overlay)

	cx := s.arenaWidth / 2
	cy := s.arenaHeight / 2
	surface.DrawText(WinText(total), cx, cy+config.WinMessageOffsetY-s.messageFont.Size/2, s.messageFont, s.textColor, render.AlignCenter)
	surface.DrawText(RestartHint(s.restartKey), cx, cy+config.RestartHintOffsetY, s.hudFont, s.textColor, render.AlignCenter)
}

// ScoreText 分数文字
func ScoreText(score, total int) string {
	return fmt.Sprintf("Score: %d/%d", score, total)
}

// WinText 胜利提示
func WinText(total int) string {
	return fmt.Sprintf("You collected all %d!", total)
}

// RestartHint 重新开始提示
func RestartHint(key string) string {
	return fmt.Sprintf("Press %s to restart", strings.ToUpper(key))
}
