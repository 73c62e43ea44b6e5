// render/segment.go

package render

import (
	"sort"

	"github.com/jetrotal/sliced-image/slicedoc"
)

// Segment is one source-pixel span between consecutive axis boundaries.
// Segments come out of Partition ascending in Start and contiguous; Index is
// the position of the segment's boundary in the sorted axis walk, which is
// what the scaling flags are keyed by.
type Segment struct {
	Start  float64
	Length float64
	Fixed  bool
	Index  int
}

// DestSegment is a segment's span in the destination dimension. SrcIndex
// refers back to the originating Segment's Index.
type DestSegment struct {
	Start    float64
	Length   float64
	SrcIndex int
}

// Partition converts an axis list into the ordered source segments of one
// dimension. Axes are consumed sorted ascending by value; boundary pixels
// are value/100 * totalSize with totalSize appended as the final boundary.
// Zero-length spans (coincident axes) are dropped rather than emitted, and
// the fixed/scalable flag for span i falls back to fixed when the scaling
// array does not cover i. Total over any input; never panics and never
// reports an error.
func Partition(axes []slicedoc.Axis, totalSize float64, scaling []bool) []Segment {
	sorted := make([]slicedoc.Axis, len(axes))
	copy(sorted, axes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	boundaries := make([]float64, 0, len(sorted)+1)
	for _, ax := range sorted {
		boundaries = append(boundaries, ax.Value/100*totalSize)
	}
	boundaries = append(boundaries, totalSize)

	segments := make([]Segment, 0, len(boundaries))
	cursor := 0.0
	for i, b := range boundaries {
		if length := b - cursor; length > 0 {
			segments = append(segments, Segment{
				Start:  cursor,
				Length: length,
				Fixed:  !slicedoc.BoolAt(scaling, i),
				Index:  i,
			})
		}
		cursor = b
	}
	return segments
}

// LayoutSegments redistributes targetSize across the source segments of one
// dimension. Fixed segments keep their source length while the target has
// room for all of them; when it does not, every fixed segment shrinks by the
// same target/totalFixed factor. The space left after fixed segments is
// shared among scalable segments proportionally to their source lengths.
// Output is contiguous from 0 and parallel to src.
func LayoutSegments(src []Segment, targetSize float64) []DestSegment {
	var totalFixed, totalScaleSource float64
	for _, s := range src {
		if s.Fixed {
			totalFixed += s.Length
		} else {
			totalScaleSource += s.Length
		}
	}

	availableScaleSpace := targetSize - totalFixed
	if availableScaleSpace < 0 {
		availableScaleSpace = 0
	}
	scaleFixedFactor := 1.0
	if targetSize < totalFixed && totalFixed > 0 {
		scaleFixedFactor = targetSize / totalFixed
	}

	dst := make([]DestSegment, 0, len(src))
	cursor := 0.0
	for _, s := range src {
		var length float64
		switch {
		case s.Fixed:
			length = s.Length * scaleFixedFactor
		case totalScaleSource == 0:
			length = 0
		default:
			length = s.Length / totalScaleSource * availableScaleSpace
		}
		dst = append(dst, DestSegment{Start: cursor, Length: length, SrcIndex: s.Index})
		cursor += length
	}
	return dst
}
