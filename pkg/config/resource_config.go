package config

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath 资源清单路径
const DefaultResourceConfigPath = "assets/config/resources.yaml"

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  init:
//	    images:
//	      - id: player
//	        path: images/player.png
//	        cols: 4
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of images that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource is a single image or sprite sheet definition.
// Cols/Rows are informational; frame layout is owned by the game config.
type ImageResource struct {
	ID   string `yaml:"id"`             // Sheet name referenced by entities
	Path string `yaml:"path"`           // Path relative to base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns
	Rows int    `yaml:"rows,omitempty"` // Sprite sheet rows
}

// ParseResourceConfig decodes a resource manifest.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var rc ResourceConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	return &rc, nil
}

// ImagePath returns the full path of an image entry (base_path applied).
func (rc *ResourceConfig) ImagePath(img ImageResource) string {
	return BuildFullPath(rc.BasePath, img.Path)
}

// BuildFullPath joins the base path and a resource path using forward slashes,
// which is what embed.FS expects.
func BuildFullPath(basePath, relativePath string) string {
	relativePath = strings.TrimPrefix(relativePath, "./")
	if basePath == "" || strings.HasPrefix(relativePath, basePath+"/") {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}
