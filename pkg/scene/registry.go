package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Options configures scene construction
type Options struct {
	TexturePath string      // Equirectangular earth map (PNG or JPEG)
	Seed        int64       // Seed for object placement, noise tables and BVH axes
	Logger      core.Logger // Receives warnings; nil discards them
}

// DefaultOptions returns the options used by the CLI when no flags are given
func DefaultOptions() Options {
	return Options{
		TexturePath: "earthmap.jpg",
		Seed:        42,
	}
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Registry key, e.g. "cornell-smoke"
	DisplayName string // Human readable name
	Description string
}

type builder func(opts Options, sampler core.Sampler) (*Scene, error)

type registration struct {
	info  SceneInfo
	build builder
}

var registry = map[string]registration{}

func register(id, description string, build builder) {
	registry[id] = registration{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
		},
		build: build,
	}
}

func init() {
	register("random-spheres", "Checkered ground with hundreds of small moving, metal and glass spheres", newRandomSpheresScene)
	register("two-spheres", "Two large checker-textured spheres", newTwoSpheresScene)
	register("two-perlin-spheres", "Ground and sphere with Perlin marble noise", newTwoPerlinSpheresScene)
	register("earth", "Globe with an image texture", newEarthScene)
	register("simple-light", "Noise-textured spheres lit by a sphere and a rectangle light", newSimpleLightScene)
	register("cornell", "Cornell box with two rotated blocks", newCornellScene)
	register("cornell-smoke", "Cornell box with blocks of black and white smoke", newCornellSmokeScene)
	register("final", "Every feature at once: boxes, motion blur, glass, mist, textures and a rotated sphere cluster", newFinalScene)
}

// Names returns the IDs of every built-in scene in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every built-in scene sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}

	s, err := reg.build(opts, core.NewSeededSampler(opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}

// titleCase converts a registry ID to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
