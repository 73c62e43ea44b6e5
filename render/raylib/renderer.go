// render/raylib/renderer.go

// Package raylib implements the interactive editor backend on top of the
// Raylib graphics library: window lifecycle, texture upload, input polling
// and per-frame drawing of the source pane and the live scaled preview.
package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-hclog"

	"github.com/jetrotal/sliced-image/render"
)

const (
	paneMargin    = float32(16)
	statusBarH    = float32(40)
	axisHitTol    = 5.0
	handleSize    = float32(10)
	stripThick    = float32(6)
	resizeKnob    = float32(12)
	previewFPS    = 60
	minWindowSide = 320
)

// Renderer is the Raylib implementation of render.Renderer.
type Renderer struct {
	config render.WindowConfig
	log    hclog.Logger

	texture       rl.Texture2D
	textureLoaded bool
	imgW, imgH    int
}

// New creates a Raylib editor backend.
func New(logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Renderer{log: logger}
}

// Init opens the editor window.
func (r *Renderer) Init(config render.WindowConfig) error {
	if config.Width < minWindowSide {
		config.Width = minWindowSide
	}
	if config.Height < minWindowSide {
		config.Height = minWindowSide
	}
	r.config = config

	r.log.Info("initializing window", "width", config.Width, "height", config.Height, "title", config.Title)
	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	} else {
		rl.ClearWindowState(rl.FlagWindowResizable)
		rl.SetWindowSize(config.Width, config.Height)
	}
	rl.SetTargetFPS(previewFPS)

	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib: window failed to initialize")
	}
	return nil
}

// LoadImage uploads the source image as a GPU texture and returns its
// dimensions as the opaque raster handle the core works with. The window
// must be open first.
func (r *Renderer) LoadImage(path string) (render.Raster, error) {
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("raylib: cannot load textures before Init")
	}

	img := rl.LoadImage(path)
	if img.Data == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("raylib: failed to load image %q", path)
	}
	defer rl.UnloadImage(img)

	texture := rl.LoadTextureFromImage(img)
	if texture.ID == 0 {
		return nil, fmt.Errorf("raylib: failed to upload texture for %q", path)
	}

	if r.textureLoaded {
		rl.UnloadTexture(r.texture)
	}
	r.texture = texture
	r.textureLoaded = true
	r.imgW = int(img.Width)
	r.imgH = int(img.Height)
	r.log.Debug("image loaded", "path", path, "width", r.imgW, "height", r.imgH)

	return raster{w: r.imgW, h: r.imgH}, nil
}

type raster struct{ w, h int }

func (r raster) Width() int  { return r.w }
func (r raster) Height() int { return r.h }

// ShouldClose reports whether the window was asked to close.
func (r *Renderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

// BeginFrame starts drawing and clears the background.
func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	bg := r.config.DefaultBg
	rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, bg.A))
}

// EndFrame finishes the current frame.
func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

// Cleanup releases the texture and closes the window.
func (r *Renderer) Cleanup() {
	if r.textureLoaded {
		rl.UnloadTexture(r.texture)
		r.textureLoaded = false
	}
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
}

// paneLayout is the per-frame screen arrangement: source pane on the left,
// preview pane on the right, status bar along the bottom.
type paneLayout struct {
	source  rl.Rectangle
	preview rl.Rectangle

	view    render.ImageView // source pane mapping
	preView render.ImageView // preview pane mapping (target pixels -> screen)
}

func (r *Renderer) layout(st *render.EditorState) paneLayout {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	usableH := screenH - statusBarH - 2*paneMargin
	halfW := (screenW - 3*paneMargin) / 2

	l := paneLayout{
		source:  rl.NewRectangle(paneMargin, paneMargin, halfW, usableH),
		preview: rl.NewRectangle(2*paneMargin+halfW, paneMargin, halfW, usableH),
	}
	l.view = render.FitView(
		float64(l.source.X), float64(l.source.Y),
		float64(l.source.Width), float64(l.source.Height),
		st.Image.Width(), st.Image.Height())
	l.preView = render.FitView(
		float64(l.preview.X), float64(l.preview.Y),
		float64(l.preview.Width), float64(l.preview.Height),
		st.TargetW, st.TargetH)
	return l
}

// resizeKnobRect is the draggable square at the preview's bottom-right
// corner used to change the target size.
func (l paneLayout) resizeKnobRect(st *render.EditorState) rl.Rectangle {
	x := float32(l.preView.ScreenX(float64(st.TargetW)))
	y := float32(l.preView.ScreenY(float64(st.TargetH)))
	return rl.NewRectangle(x-resizeKnob/2, y-resizeKnob/2, resizeKnob, resizeKnob)
}
