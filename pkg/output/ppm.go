package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// WritePPM writes frame as a plain-text PPM (P3) image, top row first
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}

	for _, c := range frame.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
