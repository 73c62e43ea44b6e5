// render/software/software.go

// Package software renders slicing documents without a window, compositing
// into an *image.RGBA. It backs the headless render command and the
// pixel-level tests.
package software

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"

	"github.com/jetrotal/sliced-image/render"
	"github.com/jetrotal/sliced-image/slicedoc"
)

// Raster wraps a decoded image as the opaque handle the editor core works
// with.
type Raster struct {
	Img image.Image
}

func (r Raster) Width() int  { return r.Img.Bounds().Dx() }
func (r Raster) Height() int { return r.Img.Bounds().Dy() }

// LoadImageFile decodes a PNG/JPEG/GIF image from disk.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("software: open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("software: decode image %q: %w", path, err)
	}
	return img, nil
}

// Render composites the document's grid into a fresh width x height RGBA
// image. Stretch cells are resampled with a bilinear scaler; Fixed and
// Repeat cells are native-size copies. Hidden cells leave the target
// transparent.
func Render(src image.Image, doc *slicedoc.Document, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}
	b := src.Bounds()
	ops := render.BuildPlan(doc,
		float64(b.Dx()), float64(b.Dy()),
		float64(width), float64(height))

	for _, op := range ops {
		for _, p := range op.Placements() {
			sr := pixelRect(p.Src).Add(b.Min)
			dr := pixelRect(p.Dst)
			if sr.Empty() || dr.Empty() {
				continue
			}
			if op.Mode == slicedoc.ModeStretch {
				xdraw.ApproxBiLinear.Scale(dst, dr, src, sr, xdraw.Src, nil)
			} else {
				draw.Draw(dst, dr, src, sr.Min, draw.Src)
			}
		}
	}
	return dst
}

// pixelRect snaps a continuous rectangle to pixels by rounding its edges
// independently, so adjacent cells stay gap-free.
func pixelRect(r render.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
}

// WritePNG encodes an image to disk.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("software: create %q: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("software: encode %q: %w", path, err)
	}
	return nil
}
