package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by New for an unregistered scene name
var ErrUnknownScene = errors.New("scene: unknown scene")

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	build       Builder
}

var registry = map[string]SceneInfo{}

func register(name, description string, build Builder) {
	registry[name] = SceneInfo{Name: name, Description: description, build: build}
}

func init() {
	register("random-spheres", "Checkered ground with a grid of small random spheres and three large ones", NewRandomSpheresScene)
	register("two-checkered-spheres", "Two large spheres sharing a solid checker texture", NewTwoCheckeredSpheresScene)
	register("perlin-spheres", "Marble-textured ground and sphere driven by Perlin turbulence", NewPerlinSpheresScene)
	register("earth", "A globe textured from an image file", NewEarthScene)
	register("simple-light", "Marble spheres lit by a rectangular area light", NewSimpleLightScene)
	register("cornell-box", "Cornell box with two diffuse boxes and a ceiling light", NewCornellScene)
	register("default", "Alias for random-spheres", NewRandomSpheresScene)
}

// New builds the scene registered under name
func New(name string, opts Options) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.build(opts)
}

// List returns every registered scene sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, info := range registry {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}
