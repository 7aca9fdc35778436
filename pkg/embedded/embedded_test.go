package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/images/player.png": {Data: []byte("png")},
		"assets/images/gem.png":    {Data: []byte("png")},
	}
	data := fstest.MapFS{
		"data/game.yaml": {Data: []byte("seed: 1\n")},
	}
	return assets, data
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	assets, data := testFS()
	Init(assets, data)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Reset()
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("assets/test.txt")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFileRoutesByPrefix(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer Reset()

	got, err := ReadFile("./data/game.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "seed: 1\n" {
		t.Errorf("Expected data file content, got %q", got)
	}

	if !Exists("assets/images/player.png") {
		t.Error("Expected asset to exist")
	}
	if Exists("assets/images/missing.png") {
		t.Error("Missing asset should not exist")
	}

	if _, err := ReadFile("other/file.txt"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

func TestGlob(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer Reset()

	matches, err := Glob("assets/images/*.png")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %d (%v)", len(matches), matches)
	}
}
