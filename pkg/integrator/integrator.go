package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for traced rays; it keeps a
// scattered ray from re-hitting the surface it left
const ShadowAcneEpsilon = 0.001

// ErrUnknownIntegrator is returned by New for an unrecognized name
var ErrUnknownIntegrator = errors.New("integrator: unknown integrator")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray, following at most
	// maxDepth bounces. Rays that escape the world see the background color.
	RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, maxDepth int, sampler core.Sampler) core.Vec3
}

// New returns the integrator registered under name ("recursive" or "iterative")
func New(name string) (Integrator, error) {
	switch name {
	case "", "recursive":
		return NewRecursiveIntegrator(), nil
	case "iterative":
		return NewIterativeIntegrator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
}

// Names lists the integrators accepted by New
func Names() []string {
	return []string{"recursive", "iterative"}
}

// tMax for primary and scattered rays
var infinity = math.Inf(1)
