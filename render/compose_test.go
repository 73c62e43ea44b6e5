// render/compose_test.go
package render

import (
	"testing"

	"github.com/jetrotal/sliced-image/slicedoc"
)

func quadrantDoc() *slicedoc.Document {
	d := slicedoc.NewDocument()
	d.AddXAxis(50)
	d.AddYAxis(50)
	d.ColScaling = []bool{false, true}
	d.RowScaling = []bool{false, true}
	return d
}

func findOp(ops []CellOp, row, col int) (CellOp, bool) {
	for _, op := range ops {
		if op.Row == row && op.Col == col {
			return op, true
		}
	}
	return CellOp{}, false
}

func TestBuildPlanCrossProduct(t *testing.T) {
	d := quadrantDoc()
	ops := BuildPlan(d, 100, 100, 200, 200)
	if len(ops) != 4 {
		t.Fatalf("got %d ops, want 4", len(ops))
	}

	// Fixed halves keep 50px, scalable halves absorb the remaining 150px.
	op, ok := findOp(ops, 1, 1)
	if !ok {
		t.Fatal("cell 1-1 missing")
	}
	if op.Src != (Rect{X: 50, Y: 50, W: 50, H: 50}) {
		t.Errorf("cell 1-1 src = %+v", op.Src)
	}
	if op.Dst != (Rect{X: 50, Y: 50, W: 150, H: 150}) {
		t.Errorf("cell 1-1 dst = %+v", op.Dst)
	}
	if op.Mode != slicedoc.ModeStretch {
		t.Errorf("cell 1-1 mode = %q, want default Stretch", op.Mode)
	}
}

func TestBuildPlanSkipsHiddenCells(t *testing.T) {
	d := quadrantDoc()
	d.SetTile(0, 0, slicedoc.ModeHidden)
	ops := BuildPlan(d, 100, 100, 200, 200)
	if len(ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(ops))
	}
	if _, ok := findOp(ops, 0, 0); ok {
		t.Error("hidden cell emitted an op")
	}
}

func TestBuildPlanSkipsDegenerateCells(t *testing.T) {
	// Squeezing the target to the fixed half's size leaves the scalable
	// column with zero destination width; its cells are skipped.
	d := slicedoc.NewDocument()
	d.AddXAxis(50)
	d.ColScaling = []bool{false, true}
	ops := BuildPlan(d, 200, 100, 100, 100)
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	if ops[0].Col != 0 {
		t.Errorf("surviving op is col %d, want 0", ops[0].Col)
	}
}

func TestBuildPlanModeLookupIsPositional(t *testing.T) {
	d := quadrantDoc()
	d.SetTile(0, 1, slicedoc.ModeRepeat)
	ops := BuildPlan(d, 100, 100, 300, 300)
	op, ok := findOp(ops, 0, 1)
	if !ok {
		t.Fatal("cell 0-1 missing")
	}
	if op.Mode != slicedoc.ModeRepeat {
		t.Errorf("cell 0-1 mode = %q, want Repeat", op.Mode)
	}

	// Moving the axis does not move the tile entry: addressing stays
	// geometric, so position 0-1 keeps its Repeat mode wherever the cut is.
	d.MoveXAxis(d.XAxes[0].ID, 10)
	ops = BuildPlan(d, 100, 100, 300, 300)
	op, ok = findOp(ops, 0, 1)
	if !ok {
		t.Fatal("cell 0-1 missing after move")
	}
	if op.Mode != slicedoc.ModeRepeat {
		t.Errorf("cell 0-1 mode after move = %q, want Repeat", op.Mode)
	}
	if op.Src.X != 10 {
		t.Errorf("cell 0-1 src.X = %v, want 10", op.Src.X)
	}
}

func TestBuildPlanEmptyDocument(t *testing.T) {
	d := slicedoc.NewDocument()
	ops := BuildPlan(d, 64, 64, 128, 32)
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	op := ops[0]
	if op.Src != (Rect{X: 0, Y: 0, W: 64, H: 64}) {
		t.Errorf("src = %+v", op.Src)
	}
	// The single segment is fixed, and the target is smaller in y: the
	// uniform shrink applies per dimension.
	if op.Dst.W != 64 || op.Dst.H != 32 {
		t.Errorf("dst = %+v, want 64x32", op.Dst)
	}
}

func TestPlacementsStretch(t *testing.T) {
	op := CellOp{
		Mode: slicedoc.ModeStretch,
		Src:  Rect{X: 10, Y: 20, W: 30, H: 40},
		Dst:  Rect{X: 0, Y: 0, W: 90, H: 10},
	}
	ps := op.Placements()
	if len(ps) != 1 {
		t.Fatalf("got %d placements, want 1", len(ps))
	}
	if ps[0].Src != op.Src || ps[0].Dst != op.Dst {
		t.Errorf("placement = %+v", ps[0])
	}
}

func TestPlacementsFixedCentered(t *testing.T) {
	op := CellOp{
		Mode: slicedoc.ModeFixed,
		Src:  Rect{X: 0, Y: 0, W: 20, H: 20},
		Dst:  Rect{X: 10, Y: 10, W: 40, H: 30},
	}
	ps := op.Placements()
	if len(ps) != 1 {
		t.Fatalf("got %d placements, want 1", len(ps))
	}
	want := Placement{
		Src: Rect{X: 0, Y: 0, W: 20, H: 20},
		Dst: Rect{X: 20, Y: 15, W: 20, H: 20},
	}
	if ps[0] != want {
		t.Errorf("placement = %+v, want %+v", ps[0], want)
	}
}

func TestPlacementsFixedCroppedWhenCellSmaller(t *testing.T) {
	// Destination smaller than the source: the centered copy overhangs and
	// is cropped symmetrically, trimming the source in lockstep.
	op := CellOp{
		Mode: slicedoc.ModeFixed,
		Src:  Rect{X: 100, Y: 100, W: 40, H: 40},
		Dst:  Rect{X: 0, Y: 0, W: 20, H: 20},
	}
	ps := op.Placements()
	if len(ps) != 1 {
		t.Fatalf("got %d placements, want 1", len(ps))
	}
	want := Placement{
		Src: Rect{X: 110, Y: 110, W: 20, H: 20},
		Dst: Rect{X: 0, Y: 0, W: 20, H: 20},
	}
	if ps[0] != want {
		t.Errorf("placement = %+v, want %+v", ps[0], want)
	}
}

func TestPlacementsRepeatGrid(t *testing.T) {
	// 20x20 source into a 45x30 cell: a 3x2 grid, with the right column and
	// bottom row cut off cleanly.
	op := CellOp{
		Mode: slicedoc.ModeRepeat,
		Src:  Rect{X: 0, Y: 0, W: 20, H: 20},
		Dst:  Rect{X: 0, Y: 0, W: 45, H: 30},
	}
	ps := op.Placements()
	if len(ps) != 6 {
		t.Fatalf("got %d placements, want 6", len(ps))
	}
	for _, p := range ps {
		if p.Dst.X < 0 || p.Dst.Y < 0 || p.Dst.X+p.Dst.W > 45+epsilon || p.Dst.Y+p.Dst.H > 30+epsilon {
			t.Errorf("placement escapes the cell: %+v", p)
		}
		if p.Src.W != p.Dst.W || p.Src.H != p.Dst.H {
			t.Errorf("repeat placement is not native size: %+v", p)
		}
	}
	last := ps[len(ps)-1]
	want := Placement{
		Src: Rect{X: 0, Y: 0, W: 5, H: 10},
		Dst: Rect{X: 40, Y: 20, W: 5, H: 10},
	}
	if last != want {
		t.Errorf("far-corner placement = %+v, want %+v", last, want)
	}
}

func TestPlacementsDegenerateOp(t *testing.T) {
	op := CellOp{Mode: slicedoc.ModeRepeat, Src: Rect{W: 0, H: 20}, Dst: Rect{W: 45, H: 30}}
	if ps := op.Placements(); ps != nil {
		t.Errorf("degenerate op produced placements: %+v", ps)
	}
}
