// slicedoc/codec.go

package slicedoc

import (
	"encoding/json"
	"fmt"
	"io"
)

// rawDocument defers axis decoding so that a document whose xAxes/yAxes are
// not arrays can be rejected with a useful message instead of a generic
// unmarshal error from deep inside the struct.
type rawDocument struct {
	Filename   string          `json:"filename"`
	XAxes      json.RawMessage `json:"xAxes"`
	YAxes      json.RawMessage `json:"yAxes"`
	Tiles      json.RawMessage `json:"tiles"`
	RowScaling json.RawMessage `json:"rowScaling"`
	ColScaling json.RawMessage `json:"colScaling"`
}

// ReadDocument parses a slicing document from the given reader.
//
// It is deliberately forgiving: a sparse or missing tiles map is accepted
// (cells default to Stretch), missing scaling arrays are regenerated with the
// legacy alternating pattern, present-but-short scaling arrays are kept as-is
// (lookups default to fixed), and axis values are clamped to [0,100]. The
// only hard failures are unparseable JSON and xAxes/yAxes that are missing or
// not arrays; on error the caller's current state is untouched.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("slicedoc read: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("slicedoc read: invalid JSON: %w", err)
	}

	xAxes, err := decodeAxes("xAxes", raw.XAxes)
	if err != nil {
		return nil, err
	}
	yAxes, err := decodeAxes("yAxes", raw.YAxes)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Filename: raw.Filename,
		XAxes:    xAxes,
		YAxes:    yAxes,
		Tiles:    decodeTiles(raw.Tiles),
	}

	// A missing or unusable array is treated as a legacy document and the
	// default pattern is regenerated. A present array of any length
	// (including empty) is trusted; BoolAt covers indices it does not reach.
	doc.RowScaling = decodeScaling(raw.RowScaling)
	if doc.RowScaling == nil {
		doc.RowScaling = DefaultScaling(doc.Rows())
	}
	doc.ColScaling = decodeScaling(raw.ColScaling)
	if doc.ColScaling == nil {
		doc.ColScaling = DefaultScaling(doc.Cols())
	}

	return doc, nil
}

// decodeTiles accepts any tiles value; anything that is not a cell map
// collapses to the empty (all-Stretch) map.
func decodeTiles(raw json.RawMessage) TileMap {
	var tiles TileMap
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tiles)
	}
	if tiles == nil {
		return TileMap{}
	}
	for key, tile := range tiles {
		tiles[key] = Tile{Mode: NormalizeMode(tile.Mode)}
	}
	return tiles
}

func decodeScaling(raw json.RawMessage) []bool {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var scaling []bool
	if err := json.Unmarshal(raw, &scaling); err != nil {
		return nil
	}
	if scaling == nil {
		scaling = []bool{}
	}
	return scaling
}

func decodeAxes(field string, raw json.RawMessage) ([]Axis, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("slicedoc read: %q is missing; not a slicing document", field)
	}
	var axes []Axis
	if err := json.Unmarshal(raw, &axes); err != nil {
		return nil, fmt.Errorf("slicedoc read: %q is not an axis array: %w", field, err)
	}
	for i := range axes {
		axes[i].Value = ClampPercent(axes[i].Value)
	}
	return axes, nil
}

// Marshal serializes the document with a dense tile map: every cell of the
// current grid gets an explicit entry with its effective mode, so implicit
// Stretch defaults survive as concrete values.
func Marshal(d *Document) ([]byte, error) {
	out := *d
	out.Tiles = d.Densify()
	if out.RowScaling == nil {
		out.RowScaling = DefaultScaling(out.Rows())
	}
	if out.ColScaling == nil {
		out.ColScaling = DefaultScaling(out.Cols())
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("slicedoc write: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteDocument writes the dense serialized form of the document to w.
func WriteDocument(w io.Writer, d *Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("slicedoc write: %w", err)
	}
	return nil
}
