package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/decker502/collector/pkg/config"
	"github.com/decker502/collector/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrImageNotFound is returned when a sheet name has no entry in the resource manifest.
var ErrImageNotFound = errors.New("image not found")

// ResourceManager is responsible for centralized management of game resources.
// It loads sprite sheets listed in assets/config/resources.yaml and caches them
// by sheet name, and it caches HUD font faces by size.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded before the
// game loop starts and only read afterwards from the loop goroutine.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // Sheet name -> Image
	fontFaceCache map[float64]*text.GoTextFace // Font size -> face
	fontSource    *text.GoTextFaceSource

	config      *config.ResourceConfig
	resourceMap map[string]string // Sheet name -> file path
	missing     map[string]bool   // Sheet names already reported as missing
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		missing:       make(map[string]bool),
	}
}

// readResource reads from the embedded filesystem when available, falling back
// to the working directory (useful for tools run from the repository root).
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadResourceConfig loads and parses the YAML resource manifest.
//
// Example:
//
//	rm := NewResourceManager()
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	rc, err := config.ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	rm.config = rc
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from sheet names to full file paths.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = rm.config.ImagePath(img)
		}
	}
}

// ResourcePath returns the file path registered for a sheet name.
func (rm *ResourceManager) ResourcePath(id string) (string, bool) {
	p, ok := rm.resourceMap[id]
	return p, ok
}

// LoadResourceGroup loads every image of a manifest group (e.g. "init").
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] 资源组 %s 加载完成 (%d 张图片)", groupName, len(group.Images))
	return nil
}

// LoadImageByID loads (or returns the cached) image for a sheet name.
func (rm *ResourceManager) LoadImageByID(id string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[id]; ok {
		return img, nil
	}

	filePath, ok := rm.resourceMap[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, id)
	}

	decoded, err := decodeImage(filePath)
	if err != nil {
		return nil, err
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[id] = img
	return img, nil
}

// CheckSheets verifies that every sheet used by the game config is loaded and
// large enough for the frames the config references.
func (rm *ResourceManager) CheckSheets(cfg *config.GameConfig) error {
	for _, id := range []string{cfg.Player.Sheet, cfg.Collectible.Sheet} {
		img, ok := rm.imageCache[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrImageNotFound, id)
		}
		b := img.Bounds()
		if err := cfg.CheckSheetImage(id, b.Dx(), b.Dy()); err != nil {
			return err
		}
	}
	return nil
}

// decodeImage reads and decodes a PNG resource.
// openResource opens a file the same way readResource reads one.
func openResource(path string) (io.ReadCloser, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

func decodeImage(path string) (image.Image, error) {
	f, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()
	return decodeImageData(path, f)
}

func decodeImageData(path string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Image implements ImageSource. Missing sheets are reported once and return nil.
func (rm *ResourceManager) Image(id string) *ebiten.Image {
	if img, ok := rm.imageCache[id]; ok {
		return img
	}
	if !rm.missing[id] {
		rm.missing[id] = true
		log.Printf("[ResourceManager] 图集未加载: %s", id)
	}
	return nil
}

// Face returns a cached Go Regular face of the given size.
func (rm *ResourceManager) Face(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
