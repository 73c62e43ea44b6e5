// render/compose.go

package render

import (
	"math"

	"github.com/jetrotal/sliced-image/slicedoc"
)

// Rect is an axis-aligned rectangle in continuous pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// CellOp is one cell of the slicing grid to composite: a source rectangle on
// the image, a destination rectangle on the render target, and the fill mode
// that relates them.
type CellOp struct {
	Row, Col int
	Mode     slicedoc.TileMode
	Src      Rect
	Dst      Rect
}

// Placement is a single rectangular image copy, already clipped to its
// cell. Src and Dst have equal sizes except for Stretch placements, which
// backends resample.
type Placement struct {
	Src Rect
	Dst Rect
}

// BuildPlan derives the full compositing plan for drawing the document's
// grid at dstW x dstH from a srcW x srcH image. Hidden cells and cells with
// degenerate source or destination extent produce no op.
//
// Cells are addressed by their position in the sorted segment arrays, top to
// bottom and left to right. The addressing is purely geometric: dragging one
// axis past another reassigns tile modes to whatever cells now occupy those
// positions.
func BuildPlan(doc *slicedoc.Document, srcW, srcH, dstW, dstH float64) []CellOp {
	xSrc := Partition(doc.XAxes, srcW, doc.ColScaling)
	ySrc := Partition(doc.YAxes, srcH, doc.RowScaling)
	xDst := LayoutSegments(xSrc, dstW)
	yDst := LayoutSegments(ySrc, dstH)

	ops := make([]CellOp, 0, len(xSrc)*len(ySrc))
	for row := range ySrc {
		for col := range xSrc {
			mode := doc.Tiles.EffectiveMode(row, col)
			if mode == slicedoc.ModeHidden {
				continue
			}
			src := Rect{X: xSrc[col].Start, Y: ySrc[row].Start, W: xSrc[col].Length, H: ySrc[row].Length}
			dst := Rect{X: xDst[col].Start, Y: yDst[row].Start, W: xDst[col].Length, H: yDst[row].Length}
			if src.W <= 0 || src.H <= 0 || dst.W <= 0 || dst.H <= 0 {
				continue
			}
			ops = append(ops, CellOp{Row: row, Col: col, Mode: mode, Src: src, Dst: dst})
		}
	}
	return ops
}

// Placements expands the op into the individual image copies a backend has
// to perform.
//
//   - Stretch: one copy, the whole source resampled into the whole cell.
//   - Fixed: one native-size copy centered in the cell; when the cell is
//     smaller than the source the overhang is cropped symmetrically.
//   - Repeat: a row-major grid of native-size copies from the cell's
//     top-left corner, ceil(dstW/srcW) by ceil(dstH/srcH) of them, with
//     partial copies at the far edges cut off cleanly.
func (op CellOp) Placements() []Placement {
	if op.Src.W <= 0 || op.Src.H <= 0 || op.Dst.W <= 0 || op.Dst.H <= 0 {
		return nil
	}
	switch op.Mode {
	case slicedoc.ModeStretch:
		return []Placement{{Src: op.Src, Dst: op.Dst}}

	case slicedoc.ModeFixed:
		dst := Rect{
			X: op.Dst.X + (op.Dst.W-op.Src.W)/2,
			Y: op.Dst.Y + (op.Dst.H-op.Src.H)/2,
			W: op.Src.W,
			H: op.Src.H,
		}
		if p, ok := clipNative(op.Src, dst, op.Dst); ok {
			return []Placement{p}
		}
		return nil

	case slicedoc.ModeRepeat:
		cols := int(math.Ceil(op.Dst.W / op.Src.W))
		rows := int(math.Ceil(op.Dst.H / op.Src.H))
		out := make([]Placement, 0, rows*cols)
		for ry := 0; ry < rows; ry++ {
			for rx := 0; rx < cols; rx++ {
				dst := Rect{
					X: op.Dst.X + float64(rx)*op.Src.W,
					Y: op.Dst.Y + float64(ry)*op.Src.H,
					W: op.Src.W,
					H: op.Src.H,
				}
				if p, ok := clipNative(op.Src, dst, op.Dst); ok {
					out = append(out, p)
				}
			}
		}
		return out
	}
	return nil
}

// clipNative trims a 1:1 placement to the clip rectangle, shifting the
// source origin in lockstep with the destination trim so the copy stays
// aligned.
func clipNative(src, dst, clip Rect) (Placement, bool) {
	x0 := math.Max(dst.X, clip.X)
	y0 := math.Max(dst.Y, clip.Y)
	x1 := math.Min(dst.X+dst.W, clip.X+clip.W)
	y1 := math.Min(dst.Y+dst.H, clip.Y+clip.H)
	if x1 <= x0 || y1 <= y0 {
		return Placement{}, false
	}
	return Placement{
		Src: Rect{X: src.X + (x0 - dst.X), Y: src.Y + (y0 - dst.Y), W: x1 - x0, H: y1 - y0},
		Dst: Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0},
	}, true
}
