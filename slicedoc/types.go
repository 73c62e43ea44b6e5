// slicedoc/types.go

// Package slicedoc defines the slicing document: axis positions, per-segment
// scaling flags and per-cell tile modes, plus the JSON codec used to exchange
// documents with the surrounding application.
package slicedoc

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
)

// TileMode selects how a cell's source region is drawn into its destination
// rectangle.
type TileMode string

const (
	// ModeFixed draws the source region at native size, centered in the
	// destination rectangle and clipped to it.
	ModeFixed TileMode = "Fixed"
	// ModeStretch resamples the source region to fill the destination
	// rectangle. This is the default for cells with no explicit entry.
	ModeStretch TileMode = "Stretch"
	// ModeRepeat tiles the source region at native size from the
	// destination's top-left corner, clipped at the far edges.
	ModeRepeat TileMode = "Repeat"
	// ModeHidden skips the cell entirely.
	ModeHidden TileMode = "Hidden"
)

// NormalizeMode maps unknown mode strings to ModeStretch.
func NormalizeMode(m TileMode) TileMode {
	switch m {
	case ModeFixed, ModeStretch, ModeRepeat, ModeHidden:
		return m
	}
	return ModeStretch
}

// CycleMode returns the next mode in the editor's cycle order.
func CycleMode(m TileMode) TileMode {
	switch NormalizeMode(m) {
	case ModeStretch:
		return ModeFixed
	case ModeFixed:
		return ModeRepeat
	case ModeRepeat:
		return ModeHidden
	default:
		return ModeStretch
	}
}

// Axis is one cut line, positioned as a percentage of the source dimension.
// Axes are unordered in storage and sorted by Value wherever geometry is
// derived from them.
type Axis struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// Tile holds the explicit fill mode of one grid cell.
type Tile struct {
	Mode TileMode `json:"mode"`
}

// TileMap stores explicitly-set cells keyed by "row-col". It is sparse while
// editing; the codec densifies it on export.
type TileMap map[string]Tile

// TileKey builds the map key for a grid cell.
func TileKey(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// EffectiveMode returns the stored mode for a cell, or ModeStretch when the
// cell has no entry.
func (t TileMap) EffectiveMode(row, col int) TileMode {
	if tile, ok := t[TileKey(row, col)]; ok {
		return NormalizeMode(tile.Mode)
	}
	return ModeStretch
}

// Document is the complete, round-trippable slicing configuration.
type Document struct {
	Filename   string  `json:"filename,omitempty"`
	XAxes      []Axis  `json:"xAxes"`
	YAxes      []Axis  `json:"yAxes"`
	Tiles      TileMap `json:"tiles"`
	RowScaling []bool  `json:"rowScaling"`
	ColScaling []bool  `json:"colScaling"`
}

// NewDocument returns an empty document: no axes, one fixed row segment and
// one fixed column segment.
func NewDocument() *Document {
	return &Document{
		Tiles:      TileMap{},
		RowScaling: DefaultScaling(1),
		ColScaling: DefaultScaling(1),
	}
}

// Rows is the number of row segments (y-axis count + 1).
func (d *Document) Rows() int { return len(d.YAxes) + 1 }

// Cols is the number of column segments (x-axis count + 1).
func (d *Document) Cols() int { return len(d.XAxes) + 1 }

// SortedXAxes returns a copy of the x axes sorted ascending by value.
// Storage order is untouched.
func (d *Document) SortedXAxes() []Axis { return sortedAxes(d.XAxes) }

// SortedYAxes returns a copy of the y axes sorted ascending by value.
func (d *Document) SortedYAxes() []Axis { return sortedAxes(d.YAxes) }

func sortedAxes(axes []Axis) []Axis {
	out := make([]Axis, len(axes))
	copy(out, axes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Filename:   d.Filename,
		XAxes:      append([]Axis(nil), d.XAxes...),
		YAxes:      append([]Axis(nil), d.YAxes...),
		Tiles:      make(TileMap, len(d.Tiles)),
		RowScaling: append([]bool(nil), d.RowScaling...),
		ColScaling: append([]bool(nil), d.ColScaling...),
	}
	for k, v := range d.Tiles {
		out.Tiles[k] = v
	}
	return out
}

// NewAxisID generates a short random identifier for a freshly added axis.
// IDs are handles for the UI only; geometry never depends on them.
func NewAxisID() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "axis0000"
	}
	return hex.EncodeToString(buf[:])
}

// AddXAxis appends a new x axis at the given percentage (clamped) and grows
// the column scaling array to keep one flag per segment. Returns the new
// axis's ID.
func (d *Document) AddXAxis(value float64) string {
	id := NewAxisID()
	d.XAxes = append(d.XAxes, Axis{ID: id, Value: ClampPercent(value)})
	d.ColScaling = resyncScaling(d.ColScaling, len(d.XAxes)+1)
	return id
}

// AddYAxis appends a new y axis at the given percentage (clamped) and grows
// the row scaling array. Returns the new axis's ID.
func (d *Document) AddYAxis(value float64) string {
	id := NewAxisID()
	d.YAxes = append(d.YAxes, Axis{ID: id, Value: ClampPercent(value)})
	d.RowScaling = resyncScaling(d.RowScaling, len(d.YAxes)+1)
	return id
}

// RemoveXAxis deletes the x axis with the given ID, shrinking the column
// scaling array. Unknown IDs are a no-op.
func (d *Document) RemoveXAxis(id string) {
	d.XAxes = removeAxis(d.XAxes, id)
	d.ColScaling = resyncScaling(d.ColScaling, len(d.XAxes)+1)
}

// RemoveYAxis deletes the y axis with the given ID, shrinking the row
// scaling array. Unknown IDs are a no-op.
func (d *Document) RemoveYAxis(id string) {
	d.YAxes = removeAxis(d.YAxes, id)
	d.RowScaling = resyncScaling(d.RowScaling, len(d.YAxes)+1)
}

func removeAxis(axes []Axis, id string) []Axis {
	for i, ax := range axes {
		if ax.ID == id {
			return append(axes[:i], axes[i+1:]...)
		}
	}
	return axes
}

// SetXAxes replaces the whole x axis list, resyncing the column scaling
// array length.
func (d *Document) SetXAxes(axes []Axis) {
	d.XAxes = append([]Axis(nil), axes...)
	d.ColScaling = resyncScaling(d.ColScaling, len(d.XAxes)+1)
}

// SetYAxes replaces the whole y axis list, resyncing the row scaling array
// length.
func (d *Document) SetYAxes(axes []Axis) {
	d.YAxes = append([]Axis(nil), axes...)
	d.RowScaling = resyncScaling(d.RowScaling, len(d.YAxes)+1)
}

// resyncScaling pads (fixed) or truncates a scaling array to length n.
func resyncScaling(scaling []bool, n int) []bool {
	if n < 0 {
		n = 0
	}
	if len(scaling) > n {
		return scaling[:n]
	}
	for len(scaling) < n {
		scaling = append(scaling, false)
	}
	return scaling
}

// MoveXAxis sets the value of the x axis with the given ID, clamped to
// [0,100]. NaN values and unknown IDs are a no-op.
func (d *Document) MoveXAxis(id string, value float64) {
	moveAxis(d.XAxes, id, value)
}

// MoveYAxis sets the value of the y axis with the given ID, clamped to
// [0,100]. NaN values and unknown IDs are a no-op.
func (d *Document) MoveYAxis(id string, value float64) {
	moveAxis(d.YAxes, id, value)
}

func moveAxis(axes []Axis, id string, value float64) {
	if math.IsNaN(value) { // live numeric entry mid-edit: ignore the update
		return
	}
	for i := range axes {
		if axes[i].ID == id {
			axes[i].Value = ClampPercent(value)
			return
		}
	}
}

// ToggleRowScaling flips the scalable flag of row segment i. Out-of-range
// indices are a no-op.
func (d *Document) ToggleRowScaling(i int) {
	if i >= 0 && i < len(d.RowScaling) {
		d.RowScaling[i] = !d.RowScaling[i]
	}
}

// ToggleColScaling flips the scalable flag of column segment i.
func (d *Document) ToggleColScaling(i int) {
	if i >= 0 && i < len(d.ColScaling) {
		d.ColScaling[i] = !d.ColScaling[i]
	}
}

// SetTile records an explicit mode for a cell.
func (d *Document) SetTile(row, col int, mode TileMode) {
	if d.Tiles == nil {
		d.Tiles = TileMap{}
	}
	d.Tiles[TileKey(row, col)] = Tile{Mode: NormalizeMode(mode)}
}

// ClearTile removes a cell's explicit entry, restoring the Stretch default.
func (d *Document) ClearTile(row, col int) {
	delete(d.Tiles, TileKey(row, col))
}

// Densify returns a tile map with an explicit entry for every cell in the
// current grid, resolving defaults. Used on export.
func (d *Document) Densify() TileMap {
	dense := make(TileMap, d.Rows()*d.Cols())
	for row := 0; row < d.Rows(); row++ {
		for col := 0; col < d.Cols(); col++ {
			dense[TileKey(row, col)] = Tile{Mode: d.Tiles.EffectiveMode(row, col)}
		}
	}
	return dense
}
