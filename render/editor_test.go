// render/editor_test.go
package render

import (
	"testing"

	"github.com/jetrotal/sliced-image/slicedoc"
)

type fakeRaster struct{ w, h int }

func (r fakeRaster) Width() int  { return r.w }
func (r fakeRaster) Height() int { return r.h }

func newSession(t *testing.T) *EditorState {
	t.Helper()
	d := slicedoc.NewDocument()
	d.AddXAxis(50)
	d.AddYAxis(50)
	return NewEditorState(d, fakeRaster{w: 100, h: 100}, "test.json")
}

func TestFitView(t *testing.T) {
	v := FitView(0, 0, 200, 100, 100, 100)
	if v.Scale != 1 {
		t.Errorf("scale = %v, want 1 (no upscaling)", v.Scale)
	}
	if v.X != 50 || v.Y != 0 {
		t.Errorf("origin = (%v,%v), want (50,0)", v.X, v.Y)
	}

	v = FitView(10, 10, 50, 100, 100, 100)
	if v.Scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", v.Scale)
	}
	if v.X != 10 || v.Y != 35 {
		t.Errorf("origin = (%v,%v), want (10,35)", v.X, v.Y)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := ImageView{X: 10, Y: 20, Scale: 2}
	if got := v.SourceX(v.ScreenX(33)); got != 33 {
		t.Errorf("x round trip = %v", got)
	}
	if got := v.SourceY(v.ScreenY(7)); got != 7 {
		t.Errorf("y round trip = %v", got)
	}
}

func TestHitAxis(t *testing.T) {
	st := newSession(t)
	view := ImageView{X: 10, Y: 10, Scale: 2}

	// The vertical cut at 50% of a 100px image sits at screen x 110.
	drag, ok := st.HitAxis(view, 112, 100, 4)
	if !ok {
		t.Fatal("no hit near the vertical axis line")
	}
	if drag.Dim != DimX || drag.ID != st.Doc.XAxes[0].ID {
		t.Errorf("hit = %+v", drag)
	}

	// The horizontal cut sits at screen y 110.
	drag, ok = st.HitAxis(view, 50, 109, 4)
	if !ok {
		t.Fatal("no hit near the horizontal axis line")
	}
	if drag.Dim != DimY {
		t.Errorf("hit dim = %v, want DimY", drag.Dim)
	}

	if _, ok := st.HitAxis(view, 150, 100, 4); ok {
		t.Error("hit reported far from any axis")
	}
}

func TestDragMovesAxis(t *testing.T) {
	st := newSession(t)
	view := ImageView{X: 10, Y: 10, Scale: 2}
	id := st.Doc.XAxes[0].ID

	st.StartDrag(AxisDrag{Dim: DimX, ID: id})
	st.DragTo(view, view.ScreenX(80), 50) // 80px into a 100px image
	st.EndDrag()

	if got := st.Doc.XAxes[0].Value; got != 80 {
		t.Errorf("axis value = %v, want 80", got)
	}
	if !st.Dirty {
		t.Error("drag did not mark the session dirty")
	}
	if st.Drag != nil {
		t.Error("drag still active after EndDrag")
	}

	// Dragging past the image edge clamps.
	st.StartDrag(AxisDrag{Dim: DimX, ID: id})
	st.DragTo(view, view.ScreenX(250), 50)
	if got := st.Doc.XAxes[0].Value; got != 100 {
		t.Errorf("clamped value = %v, want 100", got)
	}
}

func TestDragToWithoutActiveDrag(t *testing.T) {
	st := newSession(t)
	before := st.Doc.XAxes[0].Value
	st.DragTo(ImageView{Scale: 1}, 10, 10)
	if st.Doc.XAxes[0].Value != before {
		t.Error("DragTo without an active drag moved an axis")
	}
}

func TestSetAxisValueText(t *testing.T) {
	st := newSession(t)
	id := st.Doc.XAxes[0].ID

	st.SetAxisValueText(DimX, id, "33.5")
	if got := st.Doc.XAxes[0].Value; got != 33.5 {
		t.Errorf("value = %v, want 33.5", got)
	}

	st.SetAxisValueText(DimX, id, "not a number")
	if got := st.Doc.XAxes[0].Value; got != 33.5 {
		t.Errorf("malformed entry changed the value to %v", got)
	}

	st.SetAxisValueText(DimX, id, "400")
	if got := st.Doc.XAxes[0].Value; got != 100 {
		t.Errorf("out-of-range entry = %v, want clamped 100", got)
	}
}

func TestAddAndDeleteAxis(t *testing.T) {
	st := newSession(t)
	view := ImageView{X: 0, Y: 0, Scale: 1}

	st.AddAxisAt(view, DimX, 25, 0)
	if len(st.Doc.XAxes) != 2 || len(st.Doc.ColScaling) != 3 {
		t.Fatalf("after add: axes=%d scaling=%d", len(st.Doc.XAxes), len(st.Doc.ColScaling))
	}
	if got := st.Doc.XAxes[1].Value; got != 25 {
		t.Errorf("new axis value = %v, want 25", got)
	}

	st.DeleteAxis(AxisDrag{Dim: DimX, ID: st.Doc.XAxes[1].ID})
	if len(st.Doc.XAxes) != 1 || len(st.Doc.ColScaling) != 2 {
		t.Errorf("after delete: axes=%d scaling=%d", len(st.Doc.XAxes), len(st.Doc.ColScaling))
	}
}

func TestCellAndSegmentLookup(t *testing.T) {
	st := newSession(t)
	view := ImageView{X: 0, Y: 0, Scale: 1}

	row, col, ok := st.CellAt(view, 75, 75)
	if !ok || row != 1 || col != 1 {
		t.Errorf("CellAt(75,75) = %d,%d,%t, want 1,1,true", row, col, ok)
	}
	if _, _, ok := st.CellAt(view, 150, 50); ok {
		t.Error("CellAt outside the image reported a cell")
	}

	if got := st.ColSegmentAt(view, 25); got != 0 {
		t.Errorf("ColSegmentAt(25) = %d, want 0", got)
	}
	if got := st.ColSegmentAt(view, 75); got != 1 {
		t.Errorf("ColSegmentAt(75) = %d, want 1", got)
	}
	if got := st.RowSegmentAt(view, 300); got != -1 {
		t.Errorf("RowSegmentAt outside = %d, want -1", got)
	}
}

func TestCycleTileAt(t *testing.T) {
	st := newSession(t)
	st.CycleTileAt(0, 0)
	if got := st.Doc.Tiles.EffectiveMode(0, 0); got != slicedoc.ModeFixed {
		t.Errorf("after one cycle: %q, want Fixed", got)
	}
	st.CycleTileAt(0, 0)
	st.CycleTileAt(0, 0)
	if got := st.Doc.Tiles.EffectiveMode(0, 0); got != slicedoc.ModeHidden {
		t.Errorf("after three cycles: %q, want Hidden", got)
	}
}

func TestToggleScalingIgnoresOutsideCursor(t *testing.T) {
	st := newSession(t)
	st.ToggleColScalingAt(-1)
	st.ToggleRowScalingAt(-1)
	if st.Dirty {
		t.Error("out-of-image toggle marked the session dirty")
	}
}

func TestSetTargetFloor(t *testing.T) {
	st := newSession(t)
	st.SetTarget(0, -5)
	if st.TargetW != 1 || st.TargetH != 1 {
		t.Errorf("target = %dx%d, want 1x1", st.TargetW, st.TargetH)
	}
}

func TestLoadDocumentResetsSession(t *testing.T) {
	st := newSession(t)
	st.Dirty = true
	st.StartDrag(AxisDrag{Dim: DimX, ID: st.Doc.XAxes[0].ID})

	replacement := slicedoc.NewDocument()
	prev := st.LoadDocument(replacement)
	if st.Doc != replacement {
		t.Error("document not replaced")
	}
	if prev == replacement || prev == nil {
		t.Error("previous document not returned")
	}
	if st.Dirty || st.Drag != nil {
		t.Error("session state not reset")
	}
}

func TestPlanUsesSessionGeometry(t *testing.T) {
	st := newSession(t)
	st.SetTarget(200, 200)
	ops := st.Plan()
	if len(ops) != 4 {
		t.Fatalf("got %d ops, want 4", len(ops))
	}
}
