package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stderr.
// Stdout is left free for the image stream.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int   // Size of each tile (64x64 recommended)
	InitialSamples     int   // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int   // Maximum total samples per pixel (0 = SamplingConfig.SamplesPerPixel)
	MaxPasses          int   // Maximum number of passes
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base seed; tile i samples from Seed+i
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 0, // Take the sampling config's samples per pixel
		MaxPasses:          7,
		NumWorkers:         0, // Auto-detect CPU count
		Seed:               42,
	}
}

// ProgressiveRaytracer manages progressive rendering with multiple passes
type ProgressiveRaytracer struct {
	scene         Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile        // Tile management
	currentPass   int            // Progressive state
	pixelStats    [][]PixelStats // Shared pixel statistics array (global image coordinates)
	workerPool    *WorkerPool    // Worker pool for parallel processing
	logger        core.Logger    // Logger for rendering output
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(scene Scene, sampling SamplingConfig, config ProgressiveConfig, logger core.Logger) (*ProgressiveRaytracer, error) {
	if scene == nil {
		return nil, fmt.Errorf("progressive raytracer: nil scene")
	}
	if err := sampling.Validate(); err != nil {
		return nil, fmt.Errorf("progressive raytracer: %w", err)
	}
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("progressive raytracer: invalid tile size %d", config.TileSize)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	if config.MaxSamplesPerPixel <= 0 {
		config.MaxSamplesPerPixel = sampling.SamplesPerPixel
	}
	config.InitialSamples = max(1, min(config.InitialSamples, config.MaxSamplesPerPixel))
	config.MaxPasses = max(1, config.MaxPasses)

	width, height := sampling.Width, sampling.Height
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	// Initialize shared pixel statistics array (global image coordinates)
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tileRenderer := NewTileRenderer(scene, integrator.NewPathTracingIntegrator(sampling.MaxDepth), width, height)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), config.NumWorkers)

	return &ProgressiveRaytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		tiles:      tiles,
		pixelStats: pixelStats,
		workerPool: workerPool,
		logger:     logger,
	}, nil
}

// Config returns the normalized configuration in use
func (pr *ProgressiveRaytracer) Config() ProgressiveConfig {
	return pr.config
}

// samplesForPass calculates the target total samples for a given pass
func samplesForPass(config ProgressiveConfig, passNumber int) int {
	// Special case: if only 1 pass, use all samples
	if config.MaxPasses == 1 {
		return config.MaxSamplesPerPixel
	}

	// For multiple passes: first pass is quick preview
	if passNumber == 1 {
		return config.InitialSamples
	}

	// For the final pass, use all remaining samples
	if passNumber >= config.MaxPasses {
		return config.MaxSamplesPerPixel
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := config.MaxSamplesPerPixel - config.InitialSamples
	remainingPasses := config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	return config.InitialSamples + (passNumber-1)*samplesPerPass
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	return samplesForPass(pr.config, passNumber)
}

// RenderPass renders a single progressive pass using parallel processing
func (pr *ProgressiveRaytracer) RenderPass(passNumber int) (*image.RGBA, RenderStats, error) {
	pr.currentPass = passNumber

	// Calculate target samples for this pass
	targetSamples := pr.getSamplesForPass(passNumber)

	pr.logger.Printf("Pass %d: Target %d samples per pixel (using %d workers)...\n",
		passNumber, targetSamples, pr.workerPool.GetNumWorkers())

	pr.workerPool.Start()

	// Submit all tiles as tasks
	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	// Wait for all tiles to complete
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
		}
		pr.tiles[result.TaskID].PassesCompleted++
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// Close stops the worker pool. It is safe to call more than once.
func (pr *ProgressiveRaytracer) Close() {
	pr.workerPool.Stop()
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive renders pass after pass on a background goroutine.
// Both channels are closed when rendering ends; the error channel carries at most
// one error (ctx.Err() on cancellation). Cancellation is checked between passes.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.Close()

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			// Check for cancellation before starting this pass
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			img, stats, err := pr.RenderPass(pass)
			if err != nil {
				errChan <- err
				return
			}

			actualSamples := int(stats.AverageSamples)
			pr.logger.Printf("Pass %d completed in %v (actual: %d samples/pixel)\n",
				pass, time.Since(startTime), actualSamples)

			isLast := pass == pr.config.MaxPasses || actualSamples >= pr.config.MaxSamplesPerPixel
			result := PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     isLast,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if isLast {
				if pass < pr.config.MaxPasses {
					pr.logger.Printf("Reached maximum samples per pixel (%d), stopping.\n", pr.config.MaxSamplesPerPixel)
				}
				return
			}
		}
	}()

	return passChan, errChan
}

// assembleCurrentImage creates an image from the current state of the shared pixel stats
// and calculates render statistics in a single pass
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))

	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  math.MaxInt, // Start high, will be reduced
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, ColorToRGBA(pixel.GetColor()))

			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	return img, stats
}
