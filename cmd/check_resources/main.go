// check_resources 检查资源清单中的图集
//
// 读取 assets/config/resources.yaml 和 data/game.yaml，对每张图片输出 MD5、
// 文件大小和像素尺寸，并确认图片能容纳游戏配置引用的所有帧；
// 图片目录中未列入清单的 png 会给出提示。
// 需要在仓库根目录运行：
//
//	go run ./cmd/check_resources
package main

import (
	"bytes"
	"crypto/md5"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/embedded"
)

var (
	resourcesPath = flag.String("resources", config.DefaultResourceConfigPath, "资源清单路径")
	gamePath      = flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
)

func main() {
	flag.Parse()

	// 以仓库根目录代替嵌入资源，路径规则与游戏一致
	root := os.DirFS(".")
	embedded.Init(root, root)

	cfg, err := config.LoadGameConfig(*gamePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*resourcesPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	rc, err := config.ParseResourceConfig(data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	seen := make(map[string]bool)
	listed := make(map[string]bool)
	for groupName, group := range rc.Groups {
		fmt.Printf("=== group %s ===\n", groupName)
		for _, img := range group.Images {
			seen[img.ID] = true
			listed[rc.ImagePath(img)] = true
			if err := checkImage(cfg, rc.ImagePath(img), img); err != nil {
				fmt.Printf("❌ %s: %v\n", img.ID, err)
				failed++
			}
		}
	}

	for _, sheet := range []string{cfg.Player.Sheet, cfg.Collectible.Sheet} {
		if !seen[sheet] {
			fmt.Printf("❌ %s: referenced by game config but missing from manifest\n", sheet)
			failed++
		}
	}

	pattern := path.Join(rc.BasePath, "images", "*.png")
	files, err := embedded.Glob(pattern)
	if err != nil {
		fmt.Printf("⚠️  cannot list %s: %v\n", pattern, err)
	}
	for _, f := range files {
		if !listed[f] {
			fmt.Printf("⚠️  %s is not listed in %s\n", f, *resourcesPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("All sheets OK")
}

func checkImage(cfg *config.GameConfig, path string, img config.ImageResource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoded, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	fmt.Printf("%s (%s)\n", img.ID, path)
	fmt.Printf("  MD5: %x\n", md5.Sum(data))
	fmt.Printf("  File size: %d bytes\n", len(data))
	fmt.Printf("  Pixels: %dx%d (%d cols x %d rows)\n", decoded.Width, decoded.Height, img.Cols, img.Rows)

	if _, ok := cfg.Sheet(img.ID); !ok {
		fmt.Printf("  (not used by game config)\n")
		return nil
	}
	return cfg.CheckSheetImage(img.ID, decoded.Width, decoded.Height)
}
