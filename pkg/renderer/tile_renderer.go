package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene         Scene
	integrator    integrator.Integrator
	width, height int
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderTileBounds brings every pixel within bounds up to targetSamples
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	stats := tr.initRenderStatsForBounds(bounds, targetSamples)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samplesUsed := tr.samplePixel(x, y, &pixelStats[y][x], sampler, targetSamples)
			tr.updateStats(&stats, samplesUsed)
		}
	}

	tr.finalizeStats(&stats)
	return stats
}

// samplePixel takes samples until the pixel reaches targetSamples
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler, targetSamples int) int {
	camera := tr.scene.GetCamera()
	world := tr.scene.GetWorld()
	background := tr.scene.GetBackground()

	// Image rows run top-down, camera t runs bottom-up
	i := float64(x)
	j := float64(tr.height - 1 - y)
	sDenom := float64(max(tr.width-1, 1))
	tDenom := float64(max(tr.height-1, 1))

	initialSampleCount := ps.SampleCount
	for ps.SampleCount < targetSamples {
		s := (i + sampler.Get1D()) / sDenom
		t := (j + sampler.Get1D()) / tDenom
		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, world, background, sampler))
	}

	return ps.SampleCount - initialSampleCount
}

// initRenderStatsForBounds initializes the render statistics tracking for specific bounds
func (tr *TileRenderer) initRenderStatsForBounds(bounds image.Rectangle, maxSamples int) RenderStats {
	return RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  maxSamples,
		MinSamples:  maxSamples, // Start with max, will be reduced
	}
}

// updateStats updates the render statistics with data from a single pixel
func (tr *TileRenderer) updateStats(stats *RenderStats, samplesUsed int) {
	stats.TotalSamples += samplesUsed
	stats.MinSamples = min(stats.MinSamples, samplesUsed)
	stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
}

// finalizeStats calculates final statistics after all pixels are rendered
func (tr *TileRenderer) finalizeStats(stats *RenderStats) {
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
}
