// render/render.go

// Package render holds the geometry core of the slicing editor - segment
// partitioning, destination layout and the per-cell compositing plan - plus
// the backend-agnostic Renderer interface and editor state that the
// interactive frontends drive.
package render

// Color is a plain RGBA color, kept backend-neutral so the core does not
// depend on any graphics library.
type Color struct {
	R, G, B, A uint8
}

// WindowConfig describes the editor window a backend should open.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	DefaultBg Color
}

// DefaultWindowConfig returns the editor's standard window setup.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "sliced-image",
		Resizable: true,
		DefaultBg: Color{R: 30, G: 30, B: 30, A: 255},
	}
}

// Raster is an opaque handle to a loaded source image. The core only ever
// needs its pixel dimensions; backends keep the pixels (texture, *image.RGBA)
// on their side.
type Raster interface {
	Width() int
	Height() int
}

// Renderer is the interface every editor backend implements. The loop in
// internal/app drives it: PollEvents translates input into EditorState
// mutations, RenderFrame draws the source pane and the live preview.
type Renderer interface {
	Init(config WindowConfig) error
	LoadImage(path string) (Raster, error)
	PollEvents(st *EditorState)
	BeginFrame()
	RenderFrame(st *EditorState)
	EndFrame()
	ShouldClose() bool
	Cleanup()
}
