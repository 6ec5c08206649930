package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clipraster/internal/batch"
	"clipraster/internal/config"
	"clipraster/internal/scene"
	"clipraster/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", "Scene to render: cube, disc, ribbon, glow")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	assetDir := flag.String("assets", "", "Texture asset directory (default: none, untextured)")
	texName := flag.String("texture", "", "Texture name to resolve from the asset directory")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90); recorded in the config, not passed to the WebP encoder")
	crop := flag.Bool("crop", false, "Crop frames to content and recenter")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetDir:  *assetDir,
		OutputDir: *outputDir,
		Size:      *size,
		Frames:    *frames,
		Scene:     *sceneName,
		Quality:   *quality,
		Workers:   *workers,
	})

	meshes, err := scene.Build(cfg.Scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build texture index when an asset directory is configured
	var resolver texture.Resolver
	if cfg.AssetDir != "" {
		texIndex := texture.BuildIndex(cfg.AssetDir)
		resolver = texture.NewCache(texIndex)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	}

	frameList := batch.Turntable(cfg.Frames)

	fmt.Printf("Software rasterizer demo → WebP (%s)\n", cfg.Scene)
	fmt.Printf("Frames: %d, Size: %d, Workers: %d\n", len(frameList), cfg.RenderSize, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Meshes:      meshes,
		TexResolver: resolver,
		TexName:     *texName,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		WebPQuality: cfg.WebPQuality,
		Workers:     cfg.Workers,
		Elevation:   cfg.Elevation,
		Distance:    cfg.Distance,
		FOV:         cfg.FOV,
		Crop:        *crop,
	}

	results := batch.Run(batchCfg, frameList)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frameList))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
