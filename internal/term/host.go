// Package term 在终端中运行游戏
//
// Host 用 time.Ticker 作为帧调度器，把 tcell 事件转换为游戏按键并投递到
// GameState 的输入队列；渲染使用 render.TerminalSurface。
package term

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/decker502/collector/pkg/game"
	"github.com/decker502/collector/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// DefaultFrameInterval 约 60 FPS
const DefaultFrameInterval = 16 * time.Millisecond

// Options 终端宿主参数
type Options struct {
	FrameInterval time.Duration
	RepeatDelay   time.Duration           // 首次按下后的松开超时
	ReleaseAfter  time.Duration           // 自动重复期间的松开超时
	Glyphs        map[string]render.Glyph // nil 时使用 render.DefaultGlyphs
}

// Host 终端游戏宿主
type Host struct {
	screen   tcell.Screen
	state    *game.GameState
	driver   *game.FrameDriver
	surface  *render.TerminalSurface
	releaser *Releaser
	interval time.Duration
	start    time.Time

	now func() time.Time
}

// NewHost 创建终端宿主，screen 必须已经 Init
func NewHost(screen tcell.Screen, state *game.GameState, opts Options) *Host {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	cfg := state.Config()
	return &Host{
		screen:   screen,
		state:    state,
		driver:   game.NewFrameDriver(state),
		surface:  render.NewTerminalSurface(screen, cfg.Arena.Width, cfg.Arena.Height, opts.Glyphs),
		releaser: NewReleaser(state.Input(), opts.RepeatDelay, opts.ReleaseAfter),
		interval: opts.FrameInterval,
		now:      time.Now,
	}
}

// KeyID 将 tcell 按键转换为游戏按键标识
// 方向键映射为 "ArrowUp" 等名称，字符键转为小写；其他按键返回 false
func KeyID(key tcell.Key, r rune) (string, bool) {
	switch key {
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyRune:
		return strings.ToLower(string(r)), true
	}
	return "", false
}

// Run 运行帧循环，直到 ctx 结束或按下 Esc / Ctrl-C
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go h.poll(ctx, events)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.start = h.now()
	log.Printf("[Term] 帧循环启动，间隔 %v", h.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Term] 帧循环结束 (%d 帧)", h.driver.Frames())
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				log.Printf("[Term] 退出 (%d 帧)", h.driver.Frames())
				return nil
			}

		case <-ticker.C:
			h.tick()
		}
	}
}

// poll 在独立 goroutine 中读取终端事件；screen.Fini 之后 PollEvent 返回 nil
func (h *Host) poll(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if id, ok := KeyID(ev.Key(), ev.Rune()); ok {
			h.releaser.Press(id, h.now())
		}

	case *tcell.EventResize:
		h.surface.Resize()
		h.screen.Sync()
	}
	return true
}

// tick 一个调度周期：合成松开事件，然后驱动一帧并刷新终端
func (h *Host) tick() {
	now := h.now()
	h.releaser.Expire(now)

	elapsed := float64(now.Sub(h.start)) / float64(time.Millisecond)
	if h.driver.OnFrame(elapsed, h.surface) {
		h.surface.Show()
	}
}

// Frames 已模拟的帧数
func (h *Host) Frames() int {
	return h.driver.Frames()
}
