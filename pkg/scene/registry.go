package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-photon-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned for scene names that are not built in
var ErrUnknownScene = errors.New("unknown scene")

// RandomBoxCount is the number of boxes in the random-boxes scene
const RandomBoxCount = 50

var builtinScenes = map[string]func(...geometry.CameraConfig) *Scene{
	"default":       NewDefaultScene,
	"caustic-glass": NewCausticGlassScene,
	"motion-blur":   NewMotionBlurScene,
	"glossy":        NewGlossyScene,
	"primitives":    NewPrimitivesScene,
	"random-boxes": func(overrides ...geometry.CameraConfig) *Scene {
		return NewRandomBoxesScene(42, RandomBoxCount, overrides...)
	},
}

// SceneNames returns the built-in scene names in sorted order
func SceneNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSceneByName creates a built-in scene
func NewSceneByName(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	create, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, SceneNames())
	}
	return create(cameraOverrides...), nil
}
