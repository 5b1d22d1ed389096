package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// defaultCheckerFrequency is the spatial frequency of the checker sine product
const defaultCheckerFrequency = 10.0

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Even      Texture
	Odd       Texture
	Frequency float64
}

// NewCheckerTexture creates a solid checker pattern from two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Frequency: defaultCheckerFrequency}
}

// NewCheckerTextureFromColors creates a solid checker pattern from two colors
func NewCheckerTextureFromColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the odd or even texture from the sign of the sine product at point
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*point.X) *
		math.Sin(c.Frequency*point.Y) *
		math.Sin(c.Frequency*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// NoiseTexture is a marble-like texture driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
	Color core.Vec3
}

// NewNoiseTexture creates a white marble texture with the given frequency scale
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{
		Noise: NewPerlin(sampler),
		Scale: scale,
		Color: core.NewVec3(1, 1, 1),
	}
}

// Value phase-shifts a sine along Z by the turbulence at point
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point, defaultTurbulenceDepth)
	return n.Color.Multiply(0.5 * (1 + math.Sin(phase)))
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := 1.0 - float64(y)/float64(height-1) // row 0 is the top of the image
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
