// render/editor.go

package render

import (
	"math"
	"strconv"

	"github.com/jetrotal/sliced-image/slicedoc"
)

// Dimension selects which axis family an editor operation targets: DimX for
// vertical cut lines, DimY for horizontal ones.
type Dimension int

const (
	DimX Dimension = iota
	DimY
)

// AxisDrag identifies the axis currently being dragged.
type AxisDrag struct {
	Dim Dimension
	ID  string
}

// ImageView maps between source-image pixel coordinates and the screen
// rectangle a pane shows the image in.
type ImageView struct {
	X, Y  float64 // screen position of the image's top-left corner
	Scale float64 // screen pixels per source pixel
}

// FitView computes the view that centers an imgW x imgH image inside the
// given pane, downscaling to fit but never upscaling.
func FitView(paneX, paneY, paneW, paneH float64, imgW, imgH int) ImageView {
	if imgW <= 0 || imgH <= 0 {
		return ImageView{X: paneX, Y: paneY, Scale: 1}
	}
	scale := math.Min(paneW/float64(imgW), paneH/float64(imgH))
	if scale > 1 {
		scale = 1
	}
	if scale <= 0 {
		scale = 1
	}
	return ImageView{
		X:     paneX + (paneW-float64(imgW)*scale)/2,
		Y:     paneY + (paneH-float64(imgH)*scale)/2,
		Scale: scale,
	}
}

func (v ImageView) ScreenX(src float64) float64 { return v.X + src*v.Scale }
func (v ImageView) ScreenY(src float64) float64 { return v.Y + src*v.Scale }

func (v ImageView) SourceX(screen float64) float64 {
	if v.Scale == 0 {
		return 0
	}
	return (screen - v.X) / v.Scale
}

func (v ImageView) SourceY(screen float64) float64 {
	if v.Scale == 0 {
		return 0
	}
	return (screen - v.Y) / v.Scale
}

// EditorState is the whole editing session: the document being edited, the
// loaded source image and the preview target size, plus transient
// interaction state. The document is plain data; every render pass derives
// segments and the compositing plan from scratch, so there is no cached
// geometry to invalidate.
type EditorState struct {
	Doc   *slicedoc.Document
	Image Raster

	TargetW int
	TargetH int

	DocPath       string
	Dirty         bool
	SaveRequested bool
	ShowGrid      bool
	Status        string

	Drag            *AxisDrag
	ResizingPreview bool
}

// NewEditorState starts a session over the given document and image. The
// preview target defaults to the source size.
func NewEditorState(doc *slicedoc.Document, img Raster, docPath string) *EditorState {
	st := &EditorState{
		Doc:      doc,
		Image:    img,
		DocPath:  docPath,
		ShowGrid: true,
	}
	if img != nil {
		st.TargetW = img.Width()
		st.TargetH = img.Height()
	}
	if st.TargetW < 1 {
		st.TargetW = 1
	}
	if st.TargetH < 1 {
		st.TargetH = 1
	}
	return st
}

// HitAxis finds the axis handle within tol screen pixels of the cursor, if
// any. Vertical (x) lines win ties over horizontal ones.
func (st *EditorState) HitAxis(view ImageView, mx, my, tol float64) (AxisDrag, bool) {
	imgW, imgH := float64(st.Image.Width()), float64(st.Image.Height())

	top, bottom := view.ScreenY(0), view.ScreenY(imgH)
	if my >= top-tol && my <= bottom+tol {
		for _, ax := range st.Doc.XAxes {
			lineX := view.ScreenX(ax.Value / 100 * imgW)
			if math.Abs(mx-lineX) <= tol {
				return AxisDrag{Dim: DimX, ID: ax.ID}, true
			}
		}
	}

	left, right := view.ScreenX(0), view.ScreenX(imgW)
	if mx >= left-tol && mx <= right+tol {
		for _, ax := range st.Doc.YAxes {
			lineY := view.ScreenY(ax.Value / 100 * imgH)
			if math.Abs(my-lineY) <= tol {
				return AxisDrag{Dim: DimY, ID: ax.ID}, true
			}
		}
	}
	return AxisDrag{}, false
}

// StartDrag begins moving an axis.
func (st *EditorState) StartDrag(drag AxisDrag) {
	st.Drag = &drag
}

// DragTo moves the dragged axis to the cursor position, converted to a
// percentage of the source dimension and clamped to [0,100]. No-op when no
// drag is active.
func (st *EditorState) DragTo(view ImageView, mx, my float64) {
	if st.Drag == nil {
		return
	}
	switch st.Drag.Dim {
	case DimX:
		pct := view.SourceX(mx) / float64(st.Image.Width()) * 100
		st.Doc.MoveXAxis(st.Drag.ID, pct)
	case DimY:
		pct := view.SourceY(my) / float64(st.Image.Height()) * 100
		st.Doc.MoveYAxis(st.Drag.ID, pct)
	}
	st.Dirty = true
}

// EndDrag finishes an axis drag.
func (st *EditorState) EndDrag() {
	st.Drag = nil
}

// AddAxisAt inserts a new axis of the given dimension at the cursor
// position.
func (st *EditorState) AddAxisAt(view ImageView, dim Dimension, mx, my float64) {
	switch dim {
	case DimX:
		st.Doc.AddXAxis(view.SourceX(mx) / float64(st.Image.Width()) * 100)
	case DimY:
		st.Doc.AddYAxis(view.SourceY(my) / float64(st.Image.Height()) * 100)
	}
	st.Dirty = true
}

// DeleteAxis removes the given axis.
func (st *EditorState) DeleteAxis(target AxisDrag) {
	switch target.Dim {
	case DimX:
		st.Doc.RemoveXAxis(target.ID)
	case DimY:
		st.Doc.RemoveYAxis(target.ID)
	}
	if st.Drag != nil && st.Drag.ID == target.ID {
		st.Drag = nil
	}
	st.Dirty = true
}

// SetAxisValueText applies a numeric text entry to an axis. Text that does
// not parse as a number is ignored; parsed values are clamped by the
// document mutator.
func (st *EditorState) SetAxisValueText(dim Dimension, id, text string) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return
	}
	switch dim {
	case DimX:
		st.Doc.MoveXAxis(id, v)
	case DimY:
		st.Doc.MoveYAxis(id, v)
	}
	st.Dirty = true
}

// ColSegmentAt returns the scaling-flag index of the column segment under
// the cursor's x position, or -1 when the cursor is outside the image.
func (st *EditorState) ColSegmentAt(view ImageView, mx float64) int {
	return segmentIndexAt(
		Partition(st.Doc.XAxes, float64(st.Image.Width()), st.Doc.ColScaling),
		view.SourceX(mx),
	)
}

// RowSegmentAt returns the scaling-flag index of the row segment under the
// cursor's y position, or -1.
func (st *EditorState) RowSegmentAt(view ImageView, my float64) int {
	return segmentIndexAt(
		Partition(st.Doc.YAxes, float64(st.Image.Height()), st.Doc.RowScaling),
		view.SourceY(my),
	)
}

func segmentIndexAt(segs []Segment, pos float64) int {
	for _, s := range segs {
		if pos >= s.Start && pos < s.Start+s.Length {
			return s.Index
		}
	}
	return -1
}

// CellAt locates the grid cell under the cursor as positions in the sorted
// segment arrays, the same addressing the tile map uses.
func (st *EditorState) CellAt(view ImageView, mx, my float64) (row, col int, ok bool) {
	xSegs := Partition(st.Doc.XAxes, float64(st.Image.Width()), st.Doc.ColScaling)
	ySegs := Partition(st.Doc.YAxes, float64(st.Image.Height()), st.Doc.RowScaling)
	col = segmentPositionAt(xSegs, view.SourceX(mx))
	row = segmentPositionAt(ySegs, view.SourceY(my))
	if row < 0 || col < 0 {
		return 0, 0, false
	}
	return row, col, true
}

func segmentPositionAt(segs []Segment, pos float64) int {
	for i, s := range segs {
		if pos >= s.Start && pos < s.Start+s.Length {
			return i
		}
	}
	return -1
}

// CycleTileAt advances the cell under the cursor to the next fill mode.
func (st *EditorState) CycleTileAt(row, col int) {
	st.Doc.SetTile(row, col, slicedoc.CycleMode(st.Doc.Tiles.EffectiveMode(row, col)))
	st.Dirty = true
}

// ToggleColScalingAt flips the scalable flag of column segment i. Negative
// indices (cursor outside the image) are ignored.
func (st *EditorState) ToggleColScalingAt(i int) {
	if i < 0 {
		return
	}
	st.Doc.ToggleColScaling(i)
	st.Dirty = true
}

// ToggleRowScalingAt flips the scalable flag of row segment i.
func (st *EditorState) ToggleRowScalingAt(i int) {
	if i < 0 {
		return
	}
	st.Doc.ToggleRowScaling(i)
	st.Dirty = true
}

// SetTarget resizes the preview target, keeping both dimensions at least one
// pixel.
func (st *EditorState) SetTarget(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	st.TargetW, st.TargetH = w, h
}

// LoadDocument replaces the whole session document, e.g. after importing a
// file. Interaction state is reset; the previous document is returned so a
// caller can keep it for undo.
func (st *EditorState) LoadDocument(doc *slicedoc.Document) *slicedoc.Document {
	prev := st.Doc
	st.Doc = doc
	st.Drag = nil
	st.Dirty = false
	return prev
}

// Plan builds the compositing plan for the current document, image and
// preview target.
func (st *EditorState) Plan() []CellOp {
	return BuildPlan(st.Doc,
		float64(st.Image.Width()), float64(st.Image.Height()),
		float64(st.TargetW), float64(st.TargetH))
}
