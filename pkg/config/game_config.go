package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/collector/pkg/embedded"
	"github.com/decker502/collector/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败时返回（通过 errors.Is 判断）
var ErrInvalidConfig = errors.New("invalid game config")

// DefaultGameConfigPath 默认配置文件路径（嵌入资源）
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏配置
//
// 包含竞技场尺寸、玩家与收集物参数、精灵图集布局、方向动画帧范围和按键绑定。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// FrameDelayMs 默认动画帧间隔（毫秒）
	FrameDelayMs float64 `yaml:"frameDelayMs"`

	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Collectible CollectibleConfig `yaml:"collectible"`
	HUD         HUDConfig         `yaml:"hud"`

	// Sheets 精灵图集布局，key 为图集名称
	Sheets map[string]SheetConfig `yaml:"sheets"`

	// Directions 方向动画配置，key 为 up/left/down/right
	Directions map[string]DirectionConfig `yaml:"directions"`

	// Keys 按键绑定，key 为按键标识（如 "w", "ArrowUp"），value 为方向
	Keys map[string]string `yaml:"keys"`

	// RestartKey 胜利后重新开始的按键
	RestartKey string `yaml:"restartKey"`
}

// ArenaConfig 竞技场配置
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // 背景色，#rrggbb 或 #rrggbbaa
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Speed 移动速度（单位/毫秒）
	Speed float64 `yaml:"speed"`
	Sheet string  `yaml:"sheet"`
	// StartDirection 初始/重置时的朝向（决定初始 idle 帧）
	StartDirection string `yaml:"startDirection"`
}

// CollectibleConfig 收集物配置
type CollectibleConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sheet  string  `yaml:"sheet"`
	// StartFrame/EndFrame 循环播放的帧范围
	StartFrame int `yaml:"startFrame"`
	EndFrame   int `yaml:"endFrame"`
}

// HUDConfig 界面文字配置
type HUDConfig struct {
	FontSize        float64 `yaml:"fontSize"`
	MessageFontSize float64 `yaml:"messageFontSize"`
	TextColor       string  `yaml:"textColor"`
	OverlayColor    string  `yaml:"overlayColor"`
}

// SheetConfig 精灵图集布局
type SheetConfig struct {
	Columns     int `yaml:"columns"`
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
}

// DirectionConfig 单个方向的行走动画帧范围和停止时的 idle 帧
type DirectionConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Idle  int `yaml:"idle"`
}

// DefaultGameConfig 返回内置默认配置
// 800x600 竞技场，10 个收集物
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Seed:         0,
		FrameDelayMs: 100,
		Arena: ArenaConfig{
			Width:      GameWindowWidth,
			Height:     GameWindowHeight,
			Background: "#3a7d44",
		},
		Player: PlayerConfig{
			Width:          48,
			Height:         48,
			Speed:          0.2,
			Sheet:          "player",
			StartDirection: "down",
		},
		Collectible: CollectibleConfig{
			Count:      10,
			Width:      32,
			Height:     32,
			Sheet:      "gem",
			StartFrame: 0,
			EndFrame:   5,
		},
		HUD: HUDConfig{
			FontSize:        24,
			MessageFontSize: 40,
			TextColor:       "#ffffff",
			OverlayColor:    "#000000b4",
		},
		Sheets: map[string]SheetConfig{
			"player": {Columns: 4, FrameWidth: 32, FrameHeight: 32},
			"gem":    {Columns: 6, FrameWidth: 16, FrameHeight: 16},
		},
		Directions: map[string]DirectionConfig{
			"down":  {Start: 0, End: 3, Idle: 0},
			"left":  {Start: 4, End: 7, Idle: 4},
			"right": {Start: 8, End: 11, Idle: 8},
			"up":    {Start: 12, End: 15, Idle: 12},
		},
		Keys: map[string]string{
			"w":          "up",
			"a":          "left",
			"s":          "down",
			"d":          "right",
			"ArrowUp":    "up",
			"ArrowLeft":  "left",
			"ArrowDown":  "down",
			"ArrowRight": "right",
		},
		RestartKey: "r",
	}
}

// LoadGameConfig 加载游戏配置
//
// 嵌入资源已初始化且文件存在时从嵌入资源读取，否则从磁盘读取。
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并校验成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	return ParseGameConfig(data)
}

// mapOverrides 配置文件中出现的映射表
// yaml.v3 会把文件内容合并进已有 map，这里单独解码一次用于整体替换默认值
type mapOverrides struct {
	Sheets     map[string]SheetConfig     `yaml:"sheets"`
	Directions map[string]DirectionConfig `yaml:"directions"`
	Keys       map[string]string          `yaml:"keys"`
}

// ParseGameConfig 解析 YAML 配置并校验
//
// 标量字段逐项覆盖默认值；sheets、directions、keys 出现时整体替换默认表。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	var maps mapOverrides
	if err := yaml.Unmarshal(data, &maps); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if maps.Sheets != nil {
		cfg.Sheets = maps.Sheets
	}
	if maps.Directions != nil {
		cfg.Directions = maps.Directions
	}
	if maps.Keys != nil {
		cfg.Keys = maps.Keys
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 拒绝会导致动画死循环或无法放置收集物的配置：
//   - 非正的帧间隔
//   - 非正的收集物数量
//   - 竞技场小于精灵尺寸
//   - 引用不存在的图集、帧范围越界、按键绑定到未知方向
func (c *GameConfig) Validate() error {
	if c.FrameDelayMs <= 0 {
		return invalid("frameDelayMs must be > 0, got %.1f", c.FrameDelayMs)
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return invalid("arena size must be positive, got %.0fx%.0f", c.Arena.Width, c.Arena.Height)
	}

	// 玩家
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive, got %.0fx%.0f", c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		return invalid("player (%.0fx%.0f) does not fit arena (%.0fx%.0f)",
			c.Player.Width, c.Player.Height, c.Arena.Width, c.Arena.Height)
	}
	if c.Player.Speed < 0 {
		return invalid("player speed must be >= 0, got %f", c.Player.Speed)
	}
	if _, ok := types.ParseDirection(c.Player.StartDirection); !ok {
		return invalid("unknown player startDirection %q", c.Player.StartDirection)
	}

	// 收集物
	if c.Collectible.Count <= 0 {
		return invalid("collectible count must be > 0, got %d", c.Collectible.Count)
	}
	if c.Collectible.Width <= 0 || c.Collectible.Height <= 0 {
		return invalid("collectible size must be positive, got %.0fx%.0f", c.Collectible.Width, c.Collectible.Height)
	}
	if c.Collectible.Width > c.Arena.Width || c.Collectible.Height > c.Arena.Height {
		return invalid("collectible (%.0fx%.0f) does not fit arena (%.0fx%.0f)",
			c.Collectible.Width, c.Collectible.Height, c.Arena.Width, c.Arena.Height)
	}
	if err := c.checkFrameRange("collectible", c.Collectible.Sheet, c.Collectible.StartFrame, c.Collectible.EndFrame); err != nil {
		return err
	}

	// 图集
	for name, sheet := range c.Sheets {
		if sheet.Columns <= 0 || sheet.FrameWidth <= 0 || sheet.FrameHeight <= 0 {
			return invalid("sheet %q: columns and frame size must be positive", name)
		}
	}

	// 方向动画（四个方向必须齐全）
	for _, d := range []types.Direction{types.DirectionUp, types.DirectionLeft, types.DirectionDown, types.DirectionRight} {
		dc, ok := c.Directions[d.String()]
		if !ok {
			return invalid("missing animation for direction %q", d.String())
		}
		if err := c.checkFrameRange("direction "+d.String(), c.Player.Sheet, dc.Start, dc.End); err != nil {
			return err
		}
		if dc.Idle < 0 {
			return invalid("direction %s: idle frame must be >= 0, got %d", d.String(), dc.Idle)
		}
	}

	// 按键绑定
	for key, dir := range c.Keys {
		if _, ok := types.ParseDirection(dir); !ok {
			return invalid("key %q bound to unknown direction %q", key, dir)
		}
	}
	if c.RestartKey == "" {
		return invalid("restartKey must not be empty")
	}
	if _, bound := c.Keys[c.RestartKey]; bound {
		return invalid("restartKey %q is also bound to a direction", c.RestartKey)
	}

	// 颜色
	for field, value := range map[string]string{
		"arena.background": c.Arena.Background,
		"hud.textColor":    c.HUD.TextColor,
		"hud.overlayColor": c.HUD.OverlayColor,
	} {
		if _, err := ParseHexColor(value); err != nil {
			return invalid("%s: %v", field, err)
		}
	}

	return nil
}

func (c *GameConfig) checkFrameRange(what, sheet string, start, end int) error {
	if _, ok := c.Sheets[sheet]; !ok {
		return invalid("%s: unknown sheet %q", what, sheet)
	}
	if start < 0 || end < start {
		return invalid("%s: invalid frame range [%d, %d]", what, start, end)
	}
	return nil
}

// MaxFrame 返回图集被引用的最大帧号，未被引用时返回 -1
func (c *GameConfig) MaxFrame(sheet string) int {
	frame := -1
	if sheet == c.Player.Sheet {
		for _, dc := range c.Directions {
			frame = maxInt(frame, dc.End, dc.Idle)
		}
	}
	if sheet == c.Collectible.Sheet {
		frame = maxInt(frame, c.Collectible.EndFrame)
	}
	return frame
}

// CheckSheetImage 检查图片尺寸能否容纳配置引用的所有帧
//
// 参数:
//   - sheet: 图集名称
//   - width, height: 图片像素尺寸
//
// 返回:
//   - error: 图集未配置或图片过小时返回 ErrInvalidConfig
func (c *GameConfig) CheckSheetImage(sheet string, width, height int) error {
	sc, ok := c.Sheets[sheet]
	if !ok {
		return invalid("unknown sheet %q", sheet)
	}

	maxFrame := c.MaxFrame(sheet)
	if maxFrame < 0 {
		return nil
	}

	cols := sc.Columns
	if maxFrame+1 < cols {
		cols = maxFrame + 1
	}
	rows := maxFrame/sc.Columns + 1
	needW, needH := cols*sc.FrameWidth, rows*sc.FrameHeight
	if width < needW || height < needH {
		return invalid("sheet %q: image %dx%d too small for frame %d (need %dx%d)",
			sheet, width, height, maxFrame, needW, needH)
	}
	return nil
}

func maxInt(first int, rest ...int) int {
	for _, v := range rest {
		if v > first {
			first = v
		}
	}
	return first
}

// ApplySeed 用命令行或环境变量给出的种子覆盖配置中的 seed
// 两者都为 0 时使用当前时间，返回最终使用的种子
func (c *GameConfig) ApplySeed(seed int64) int64 {
	if seed != 0 {
		c.Seed = seed
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// Sheet 返回指定图集的布局，未配置时返回 false
func (c *GameConfig) Sheet(name string) (SheetConfig, bool) {
	s, ok := c.Sheets[name]
	return s, ok
}

// Direction 返回方向动画配置
func (c *GameConfig) Direction(d types.Direction) DirectionConfig {
	return c.Directions[d.String()]
}

// StartDirection 返回解析后的初始朝向
func (c *GameConfig) StartDirection() types.Direction {
	d, ok := types.ParseDirection(c.Player.StartDirection)
	if !ok {
		return types.DirectionDown
	}
	return d
}

// BackgroundColor 返回背景色（已校验，解析失败时返回黑色）
func (c *GameConfig) BackgroundColor() color.RGBA {
	return mustColor(c.Arena.Background)
}

// TextColor 返回 HUD 文字颜色
func (c *GameConfig) TextColor() color.RGBA {
	return mustColor(c.HUD.TextColor)
}

// OverlayColor 返回胜利遮罩颜色
func (c *GameConfig) OverlayColor() color.RGBA {
	return mustColor(c.HUD.OverlayColor)
}

// ParseHexColor 解析 #rrggbb 或 #rrggbbaa 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func mustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
