package config

import (
	"os"
	"testing"
)

// TestRepositoryResourceConfig 加载仓库内的资源清单并与默认游戏配置交叉检查
func TestRepositoryResourceConfig(t *testing.T) {
	configPath := "../../" + DefaultResourceConfigPath
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		t.Skip("Skipping test - resource config file not found:", configPath)
	}
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	rc, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	if rc.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", rc.BasePath)
	}

	group, ok := rc.Groups["init"]
	if !ok {
		t.Fatal("Expected group 'init' not found in config")
	}

	cfg := DefaultGameConfig()
	ids := make(map[string]ImageResource)
	for _, img := range group.Images {
		ids[img.ID] = img
	}
	for _, sheet := range []string{cfg.Player.Sheet, cfg.Collectible.Sheet} {
		img, ok := ids[sheet]
		if !ok {
			t.Errorf("Sheet '%s' not listed in group init", sheet)
			continue
		}
		if img.Cols != cfg.Sheets[sheet].Columns {
			t.Errorf("Sheet '%s': expected %d columns, got %d", sheet, cfg.Sheets[sheet].Columns, img.Cols)
		}
		if _, err := os.Stat("../../" + rc.ImagePath(img)); err != nil {
			t.Errorf("Sheet '%s': image missing: %v", sheet, err)
		}
	}
}

func TestParseResourceConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseResourceConfig([]byte("groups: [")); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"assets", "images/player.png", "assets/images/player.png"},
		{"assets", "./images/player.png", "assets/images/player.png"},
		{"assets", "assets/images/player.png", "assets/images/player.png"},
		{"", "images/player.png", "images/player.png"},
	}

	for _, tt := range tests {
		if got := BuildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("BuildFullPath(%q, %q): Expected %q, got %q", tt.base, tt.rel, tt.want, got)
		}
	}
}
