package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int
	samples   int
	depth     int
	passes    int
	workers   int
	tileSize  int
	seed      int64
	out       string
	format    string
	texture   string
	help      bool
	list      bool
}

func parseFlags(args []string, output io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneName, "scene", "random-spheres", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the scene aspect ratio (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&opts.passes, "passes", 7, "Number of progressive passes")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.tileSize, "tile", 64, "Tile size in pixels")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for scene construction and sampling")
	fs.StringVar(&opts.out, "out", "", "Output file (default stdout)")
	fs.StringVar(&opts.format, "format", "ppm", "Output format: ppm or png")
	fs.StringVar(&opts.texture, "texture", "earthmap.jpg", "Earth texture image for the earth and final scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	return opts, fs, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Monte Carlo Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description)
	}
}

// createScene builds the named scene and applies command line overrides
func createScene(opts options, logger core.Logger) (*scene.Scene, error) {
	s, err := scene.New(opts.sceneName, scene.Options{
		TexturePath: opts.texture,
		Seed:        opts.seed,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	if opts.width > 0 {
		s.SetWidth(opts.width)
	}
	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
	return s, nil
}

func progressiveConfig(opts options) renderer.ProgressiveConfig {
	config := renderer.DefaultProgressiveConfig()
	config.TileSize = opts.tileSize
	config.MaxPasses = opts.passes
	config.NumWorkers = opts.workers
	config.Seed = opts.seed
	return config
}

// run renders according to args and writes the image to stdout or -out
func run(ctx context.Context, args []string, stdout io.Writer, logger core.Logger) error {
	opts, fs, err := parseFlags(args, io.Discard)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	if opts.help || err != nil {
		printHelp(stdout, fs)
		return nil
	}
	if opts.list {
		printScenes(stdout)
		return nil
	}
	if opts.format != "ppm" && opts.format != "png" {
		return fmt.Errorf("unknown output format %q (want ppm or png)", opts.format)
	}

	s, err := createScene(opts, logger)
	if err != nil {
		return err
	}

	stats := s.Stats()
	logger.Printf("Scene %s: %d objects, %d BVH nodes (%d leaves, depth %d)\n",
		s.Name, stats.Objects, stats.Nodes, stats.Leaves, stats.MaxDepth)
	logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d\n",
		s.SamplingConfig.Width, s.SamplingConfig.Height, s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)

	startTime := time.Now()
	img, renderStats, err := renderer.Render(ctx, s, s.SamplingConfig, progressiveConfig(opts), logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v\n", time.Since(startTime))
	logger.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		renderStats.AverageSamples, renderStats.MinSamples, renderStats.MaxSamplesUsed)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img))

	if opts.out == "" {
		return renderer.WriteImage(stdout, img, opts.format)
	}

	if err := writeImageFile(opts.out, img, opts.format); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.out)
	return nil
}

// writeImageFile writes img to path, reporting write and close failures
func writeImageFile(path string, img image.Image, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	return writeAndClose(file, img, format)
}

// writeAndClose encodes img to w and closes it; a failed close is an error
func writeAndClose(w io.WriteCloser, img image.Image, format string) error {
	if err := renderer.WriteImage(w, img, format); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
