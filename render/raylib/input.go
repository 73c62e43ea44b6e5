// render/raylib/input.go
package raylib

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jetrotal/sliced-image/render"
)

// PollEvents translates mouse and keyboard input into editor state
// mutations. All geometry decisions (hit testing, clamping, cell lookup)
// live in the core; this only maps Raylib events onto them.
func (r *Renderer) PollEvents(st *render.EditorState) {
	if !rl.IsWindowReady() {
		return
	}

	l := r.layout(st)
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)

	cursor := rl.MouseCursorDefault
	if hit, ok := st.HitAxis(l.view, mx, my, axisHitTol); ok {
		if hit.Dim == render.DimX {
			cursor = rl.MouseCursorResizeEW
		} else {
			cursor = rl.MouseCursorResizeNS
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case rl.CheckCollisionPointRec(mouse, l.resizeKnobRect(st)):
			st.ResizingPreview = true
		default:
			if hit, ok := st.HitAxis(l.view, mx, my, axisHitTol); ok {
				st.StartDrag(hit)
			}
		}
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if st.ResizingPreview {
			w := int(math.Round(l.preView.SourceX(mx)))
			h := int(math.Round(l.preView.SourceY(my)))
			st.SetTarget(w, h)
		} else if st.Drag != nil {
			st.DragTo(l.view, mx, my)
			cursor = rl.MouseCursorResizeAll
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		st.EndDrag()
		st.ResizingPreview = false
	}

	rl.SetMouseCursor(cursor)

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	switch {
	case rl.IsKeyPressed(rl.KeyX):
		st.AddAxisAt(l.view, render.DimX, mx, my)
	case rl.IsKeyPressed(rl.KeyY):
		st.AddAxisAt(l.view, render.DimY, mx, my)
	case rl.IsKeyPressed(rl.KeyD) || rl.IsKeyPressed(rl.KeyDelete):
		if hit, ok := st.HitAxis(l.view, mx, my, axisHitTol*2); ok {
			st.DeleteAxis(hit)
		}
	case rl.IsKeyPressed(rl.KeyC):
		st.ToggleColScalingAt(st.ColSegmentAt(l.view, mx))
	case rl.IsKeyPressed(rl.KeyR):
		st.ToggleRowScalingAt(st.RowSegmentAt(l.view, my))
	case rl.IsKeyPressed(rl.KeyM):
		if row, col, ok := st.CellAt(l.view, mx, my); ok {
			st.CycleTileAt(row, col)
		}
	case rl.IsKeyPressed(rl.KeyG):
		st.ShowGrid = !st.ShowGrid
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		st.SaveRequested = true
	}
}
