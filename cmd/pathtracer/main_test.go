package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSceneKnownName(t *testing.T) {
	cfg := config{sceneName: "default", samples: 4}
	sceneConfig, err := loadScene(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sceneConfig.SamplesPerPixel != 4 {
		t.Errorf("expected the -samples override to apply, got %d", sceneConfig.SamplesPerPixel)
	}
}

func TestLoadSceneUnknownName(t *testing.T) {
	cfg := config{sceneName: "nonexistent"}
	_, err := loadScene(cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown scene name")
	}
}

func TestLoadSceneAppliesOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("samples_per_pixel: 777\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg := config{sceneName: "default", override: path}
	sceneConfig, err := loadScene(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sceneConfig.SamplesPerPixel != 777 {
		t.Errorf("expected override file to set samples_per_pixel to 777, got %d", sceneConfig.SamplesPerPixel)
	}
}

func TestRenderAndSaveProducesPNG(t *testing.T) {
	sceneConfig, err := loadScene(config{sceneName: "default", samples: 1})
	if err != nil {
		t.Fatalf("unexpected error loading scene: %v", err)
	}

	frame, stats, err := render(sceneConfig, 8, 8)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if stats.TotalPixels != 64 {
		t.Errorf("expected 64 total pixels, got %d", stats.TotalPixels)
	}

	out := filepath.Join(t.TempDir(), "nested", "render.png")
	if err := save(frame, out); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestAspectRatioOrDefault(t *testing.T) {
	if got := aspectRatioOrDefault(0); got != 16.0/9.0 {
		t.Errorf("expected default 16:9, got %v", got)
	}
	if got := aspectRatioOrDefault(1.0); got != 1.0 {
		t.Errorf("expected passthrough of a set ratio, got %v", got)
	}
}
