// render/raylib/editor_draw.go
package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jetrotal/sliced-image/render"
)

var (
	colorFixed    = rl.NewColor(214, 93, 93, 255)
	colorScalable = rl.NewColor(104, 183, 104, 255)
	colorAxis     = rl.NewColor(255, 255, 255, 200)
	colorHandle   = rl.NewColor(255, 200, 60, 255)
	colorPaneEdge = rl.NewColor(70, 70, 70, 255)
	colorText     = rl.RayWhite
	colorDim      = rl.NewColor(170, 170, 170, 255)
)

// RenderFrame draws the whole editor: source pane with axis overlays,
// preview pane with the live scaled composite, and the status bar.
func (r *Renderer) RenderFrame(st *render.EditorState) {
	if !r.textureLoaded {
		rl.DrawText("no image loaded", 20, 20, 20, colorText)
		return
	}

	l := r.layout(st)
	r.drawSourcePane(st, l)
	r.drawPreviewPane(st, l)
	r.drawStatusBar(st)
}

func (r *Renderer) drawSourcePane(st *render.EditorState, l paneLayout) {
	rl.DrawRectangleLinesEx(l.source, 1, colorPaneEdge)

	imgW := float64(st.Image.Width())
	imgH := float64(st.Image.Height())
	view := l.view
	left := float32(view.ScreenX(0))
	top := float32(view.ScreenY(0))
	shownW := float32(imgW * view.Scale)
	shownH := float32(imgH * view.Scale)

	rl.DrawTexturePro(r.texture,
		rl.NewRectangle(0, 0, float32(r.imgW), float32(r.imgH)),
		rl.NewRectangle(left, top, shownW, shownH),
		rl.NewVector2(0, 0), 0, rl.White)

	// Scaling strips: one colored bar per segment, columns along the top
	// edge, rows along the left edge.
	xSegs := render.Partition(st.Doc.XAxes, imgW, st.Doc.ColScaling)
	ySegs := render.Partition(st.Doc.YAxes, imgH, st.Doc.RowScaling)
	for _, s := range xSegs {
		c := colorFixed
		if !s.Fixed {
			c = colorScalable
		}
		rl.DrawRectangleRec(rl.NewRectangle(
			float32(view.ScreenX(s.Start)), top-stripThick-2,
			float32(s.Length*view.Scale), stripThick), c)
	}
	for _, s := range ySegs {
		c := colorFixed
		if !s.Fixed {
			c = colorScalable
		}
		rl.DrawRectangleRec(rl.NewRectangle(
			left-stripThick-2, float32(view.ScreenY(s.Start)),
			stripThick, float32(s.Length*view.Scale)), c)
	}

	// Axis lines with drag handles.
	for _, ax := range st.Doc.XAxes {
		x := float32(view.ScreenX(ax.Value / 100 * imgW))
		rl.DrawLineEx(rl.NewVector2(x, top), rl.NewVector2(x, top+shownH), 1, colorAxis)
		rl.DrawRectangleRec(rl.NewRectangle(x-handleSize/2, top-handleSize/2, handleSize, handleSize), colorHandle)
	}
	for _, ax := range st.Doc.YAxes {
		y := float32(view.ScreenY(ax.Value / 100 * imgH))
		rl.DrawLineEx(rl.NewVector2(left, y), rl.NewVector2(left+shownW, y), 1, colorAxis)
		rl.DrawRectangleRec(rl.NewRectangle(left-handleSize/2, y-handleSize/2, handleSize, handleSize), colorHandle)
	}

	if st.ShowGrid {
		r.drawModeLabels(st, view, xSegs, ySegs)
	}
}

// drawModeLabels writes each cell's effective fill mode initial at the cell
// center of the source pane.
func (r *Renderer) drawModeLabels(st *render.EditorState, view render.ImageView, xSegs, ySegs []render.Segment) {
	for row, ys := range ySegs {
		for col, xs := range xSegs {
			mode := st.Doc.Tiles.EffectiveMode(row, col)
			label := string(mode[0])
			cx := int32(view.ScreenX(xs.Start + xs.Length/2))
			cy := int32(view.ScreenY(ys.Start + ys.Length/2))
			w := rl.MeasureText(label, 14)
			rl.DrawText(label, cx-w/2, cy-7, 14, colorDim)
		}
	}
}

func (r *Renderer) drawPreviewPane(st *render.EditorState, l paneLayout) {
	rl.DrawRectangleLinesEx(l.preview, 1, colorPaneEdge)

	pv := l.preView
	px := int32(pv.ScreenX(0))
	py := int32(pv.ScreenY(0))
	pw := int32(float64(st.TargetW) * pv.Scale)
	ph := int32(float64(st.TargetH) * pv.Scale)

	rl.BeginScissorMode(px, py, pw, ph)
	for _, op := range st.Plan() {
		for _, p := range op.Placements() {
			src := rl.NewRectangle(float32(p.Src.X), float32(p.Src.Y), float32(p.Src.W), float32(p.Src.H))
			dst := rl.NewRectangle(
				float32(pv.ScreenX(p.Dst.X)), float32(pv.ScreenY(p.Dst.Y)),
				float32(p.Dst.W*pv.Scale), float32(p.Dst.H*pv.Scale))
			rl.DrawTexturePro(r.texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		}
	}
	rl.EndScissorMode()

	rl.DrawRectangleLines(px, py, pw, ph, colorDim)
	knob := l.resizeKnobRect(st)
	rl.DrawRectangleRec(knob, colorHandle)

	caption := fmt.Sprintf("%d x %d", st.TargetW, st.TargetH)
	rl.DrawText(caption, px, py+ph+6, 14, colorDim)
}

func (r *Renderer) drawStatusBar(st *render.EditorState) {
	screenH := int32(rl.GetScreenHeight())
	y := screenH - int32(statusBarH) + 8

	help := "X/Y add axis  D delete  drag to move  C/R toggle scaling  M cycle mode  G grid  Ctrl+S save"
	rl.DrawText(help, int32(paneMargin), y, 12, colorDim)

	status := st.Status
	if st.Dirty {
		status += " *"
	}
	if status != "" {
		rl.DrawText(status, int32(paneMargin), y+16, 12, colorText)
	}
}
