// Package batch renders turntable frame sequences with a worker pool.
// The pipeline core is single-threaded per state; parallelism lives
// here, across independent states, one per in-flight frame.
package batch

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"clipraster/internal/camera"
	"clipraster/internal/mathutil"
	"clipraster/internal/pipeline"
	"clipraster/internal/post"
	"clipraster/internal/scene"
	"clipraster/internal/shading"
	"clipraster/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Meshes      []scene.Mesh
	TexResolver texture.Resolver
	TexName     string
	RenderSize  int
	Supersample int
	WebPQuality int
	Workers     int
	Elevation   float64
	Distance    float64
	FOV         float64
	Crop        bool
	FillRatio   float64
}

// Frame identifies one turntable position.
type Frame struct {
	Index int
	Angle float64 // degrees
}

// Turntable returns n frames evenly spaced over a full revolution.
func Turntable(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Index: i, Angle: 360 * float64(i) / float64(n)}
	}
	return frames
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64
	Image   string // output path relative to OutputDir
	Millis  int64
	Success bool
	Error   string
}

// Run renders all frames using a worker pool.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, frame Frame) Result {
	start := time.Now()
	fail := func(err error) Result {
		return Result{Frame: frame.Index, Angle: frame.Angle, Error: err.Error()}
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	size := cfg.RenderSize * ss

	uniforms := frameUniforms(cfg, frame.Angle, resolveTexture(cfg))

	lit, err := renderPass(cfg, size, uniforms, false)
	if err != nil {
		return fail(err)
	}
	img := post.FromFramebuffer(lit)

	if hasEmissive(cfg.Meshes) {
		glow, glowErr := renderPass(cfg, size, uniforms, true)
		if glowErr != nil {
			return fail(glowErr)
		}
		post.BlendAdditive(img, post.FromFramebuffer(glow))
	}

	if ss > 1 {
		img = post.Downsample(img, cfg.RenderSize)
	}
	if cfg.Crop {
		fill := cfg.FillRatio
		if fill <= 0 {
			fill = 0.9
		}
		img = post.CropAndCenter(img, cfg.RenderSize, fill)
	}

	relPath := fmt.Sprintf("frame_%03d.webp", frame.Index)
	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := writeWebP(outPath, img); err != nil {
		return fail(err)
	}

	return Result{
		Frame:   frame.Index,
		Angle:   frame.Angle,
		Image:   relPath,
		Millis:  time.Since(start).Milliseconds(),
		Success: true,
	}
}

// renderPass runs every lit (or every emissive) mesh through one fresh
// pipeline state and returns its framebuffer.
func renderPass(cfg Config, size int, uniforms *shading.Uniforms, emissive bool) (*pipeline.Framebuffer, error) {
	state := pipeline.NewState()
	if err := state.InitializeRender(size, size); err != nil {
		return nil, err
	}
	state.FloatsPerVertex = shading.Stride
	state.InterpRules = shading.Rules()
	state.VertexShader = shading.TransformVertex
	state.UniformData = uniforms

	for i := range cfg.Meshes {
		m := &cfg.Meshes[i]
		if m.Emissive != emissive {
			continue
		}
		state.VertexData = m.Vertices
		state.NumVertices = m.NumVertices()
		state.IndexData = m.Indices
		state.NumTriangles = m.NumTriangles()
		if emissive {
			state.FragmentShader = shading.EmissiveFragment
		} else if uniforms.Tex != nil {
			state.FragmentShader = shading.TexturedFragment
		} else {
			state.FragmentShader = shading.LitFragment
		}
		if err := state.Render(m.Type); err != nil {
			return nil, fmt.Errorf("mesh %s: %w", m.Name, err)
		}
	}
	return state.Framebuffer, nil
}

func frameUniforms(cfg Config, angle float64, tex *image.NRGBA) *shading.Uniforms {
	model := camera.ModelRotation(angle, 0)
	vp := camera.ViewProjection(camera.Options{
		Elevation: cfg.Elevation,
		Distance:  cfg.Distance,
		FOV:       cfg.FOV,
		Aspect:    1,
	})
	mvp := mathutil.Mat4Mul(vp, mathutil.FromMat3Translation(model, mathutil.Vec3{}))

	return &shading.Uniforms{
		MVP:          mvp,
		NormalMatrix: camera.NormalMatrix(model),
		Light:        shading.DefaultRig(),
		Tex:          tex,
	}
}

func resolveTexture(cfg Config) *image.NRGBA {
	if cfg.TexResolver == nil || cfg.TexName == "" {
		return nil
	}
	tex := cfg.TexResolver.Resolve(cfg.TexName)
	if tex == nil {
		// Missing asset: fall back to a visible placeholder rather
		// than silently rendering untextured.
		tex = texture.Checker(64, 8,
			color.NRGBA{R: 230, G: 230, B: 230, A: 255},
			color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	}
	return tex
}

func hasEmissive(meshes []scene.Mesh) bool {
	for i := range meshes {
		if meshes[i].Emissive {
			return true
		}
	}
	return false
}

func writeWebP(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}
