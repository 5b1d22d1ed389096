package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// MissingTextureColor is returned by an ImageTexture without pixel data.
// Cyan makes a failed image load obvious in the render.
var MissingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return MissingTextureColor
	}

	// Clamp to [0,1] and flip V: V=0 is the bottom of the image
	u = clampUnit(u)
	v = 1.0 - clampUnit(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1 maps one past the last pixel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clampUnit(x float64) float64 {
	return max(0.0, min(1.0, x))
}
