// Command pathtracer renders a built-in scene to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/pathtracer/engine/pkg/integrator"
	"github.com/pathtracer/engine/pkg/renderer"
	"github.com/pathtracer/engine/pkg/scene"
)

type config struct {
	sceneName  string
	override   string
	width      int
	samples    int
	maxDepth   int
	tileSize   int
	numWorkers int
	output     string
	cpuProfile string
	help       bool
}

func main() {
	cfg := parseFlags()
	if cfg.help {
		showHelp()
		return
	}

	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			fmt.Printf("could not create cpu profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start cpu profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	sceneConfig, err := loadScene(cfg)
	if err != nil {
		fmt.Printf("error loading scene %q: %v\n", cfg.sceneName, err)
		os.Exit(1)
	}

	height := int(float64(cfg.width) / aspectRatioOrDefault(sceneConfig.AspectRatio))

	start := time.Now()
	frame, stats, err := render(sceneConfig, cfg.width, height)
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if err := save(frame, cfg.output); err != nil {
		fmt.Printf("error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rendered %s in %v (%d samples, %d pixels)\n", cfg.sceneName, elapsed, stats.TotalSamples, stats.TotalPixels)
	fmt.Printf("saved to %s\n", cfg.output)
}

func aspectRatioOrDefault(ratio float64) float64 {
	if ratio <= 0 {
		return 16.0 / 9.0
	}
	return ratio
}

func loadScene(cfg config) (*scene.SceneConfig, error) {
	build, ok := scene.Catalog[cfg.sceneName]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", cfg.sceneName)
	}
	sceneConfig := build()

	if cfg.samples > 0 {
		sceneConfig.SamplesPerPixel = cfg.samples
	}
	if cfg.maxDepth > 0 {
		sceneConfig.MaxDepth = cfg.maxDepth
	}
	if cfg.numWorkers > 0 {
		sceneConfig.NumWorkers = cfg.numWorkers
	}
	if cfg.tileSize > 0 {
		sceneConfig.TileSize = cfg.tileSize
	}

	if cfg.override != "" {
		if err := scene.LoadOverride(cfg.override, &sceneConfig); err != nil {
			return nil, err
		}
	}
	return &sceneConfig, nil
}

// render builds the camera and world from sceneConfig, then runs the tile
// scheduler for width x height pixels at sceneConfig.SamplesPerPixel,
// returning the accumulated frame and final statistics.
func render(sceneConfig *scene.SceneConfig, width, height int) (*renderer.Frame, renderer.RenderStats, error) {
	cam, world, err := sceneConfig.Build()
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	tracer := integrator.New(integrator.Config{
		MaxDepth:   defaultIfZero(sceneConfig.MaxDepth, 50),
		Background: sceneConfig.BackgroundFunc(),
	})

	r := renderer.New(cam, world, tracer, renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: sceneConfig.SamplesPerPixel,
		TileSize:        sceneConfig.TileSize,
		NumWorkers:      sceneConfig.NumWorkers,
	}, renderer.NewDefaultLogger())

	return r.Render(context.Background())
}

// save encodes frame as a gamma-corrected PNG at path, creating any missing
// parent directories.
func save(frame *renderer.Frame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	img := frame.ToImage()
	return png.Encode(file, img)
}

func defaultIfZero(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.sceneName, "scene", "default", "scene name (default, cornell)")
	flag.StringVar(&cfg.override, "override", "", "optional YAML file overriding scene parameters")
	flag.IntVar(&cfg.width, "width", 400, "output image width in pixels")
	flag.IntVar(&cfg.samples, "samples", 0, "samples per pixel (0 = use scene default)")
	flag.IntVar(&cfg.maxDepth, "max-depth", 0, "maximum ray bounce depth (0 = use scene default)")
	flag.IntVar(&cfg.tileSize, "tile-size", 0, "render tile size in pixels (0 = use scene default)")
	flag.IntVar(&cfg.numWorkers, "workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&cfg.output, "output", "", "output PNG path (default: output/<scene>.png)")
	flag.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	flag.BoolVar(&cfg.help, "help", false, "show help information")
	flag.Parse()

	if cfg.output == "" {
		cfg.output = filepath.Join("output", cfg.sceneName+".png")
	}
	return cfg
}

func showHelp() {
	fmt.Println("pathtracer - offline physically based path tracer")
	fmt.Println()
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	flag.PrintDefaults()
}
