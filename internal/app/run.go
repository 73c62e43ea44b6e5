// internal/app/run.go
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jetrotal/sliced-image/render"
	"github.com/jetrotal/sliced-image/slicedoc"
)

// Options carries everything Run needs besides the renderer itself.
type Options struct {
	ImagePath string
	DocPath   string // slicing document; defaults to <image>.9s.json
	Log       hclog.Logger
}

// Run drives the editor: load the document and image, then loop polling
// input, saving on request and drawing frames until the window closes. The
// renderer decides how frames are actually produced.
func Run(renderer render.Renderer, opts Options) error {
	log := opts.Log
	if log == nil {
		log = hclog.NewNullLogger()
	}

	docPath := opts.DocPath
	if docPath == "" {
		ext := filepath.Ext(opts.ImagePath)
		docPath = opts.ImagePath[:len(opts.ImagePath)-len(ext)] + ".9s.json"
	}

	doc, err := loadOrCreateDocument(docPath, log)
	if err != nil {
		return err
	}
	if doc.Filename == "" {
		doc.Filename = filepath.Base(opts.ImagePath)
	}

	if err := renderer.Init(render.DefaultWindowConfig()); err != nil {
		renderer.Cleanup()
		return fmt.Errorf("init renderer: %w", err)
	}
	defer renderer.Cleanup()

	img, err := renderer.LoadImage(opts.ImagePath)
	if err != nil {
		return fmt.Errorf("load image %q: %w", opts.ImagePath, err)
	}

	st := render.NewEditorState(doc, img, docPath)
	log.Info("editor ready", "image", opts.ImagePath, "doc", docPath,
		"size", fmt.Sprintf("%dx%d", img.Width(), img.Height()))

	for !renderer.ShouldClose() {
		renderer.PollEvents(st)

		if st.SaveRequested {
			st.SaveRequested = false
			if err := saveDocument(st); err != nil {
				log.Error("save failed", "path", st.DocPath, "error", err)
				st.Status = "save failed: " + err.Error()
			} else {
				log.Debug("document saved", "path", st.DocPath)
				st.Status = "saved " + st.DocPath
				st.Dirty = false
			}
		}

		renderer.BeginFrame()
		renderer.RenderFrame(st)
		renderer.EndFrame()
	}

	log.Debug("window closed")
	return nil
}

// loadOrCreateDocument reads the slicing document at path, starting a fresh
// one when the file does not exist yet.
func loadOrCreateDocument(path string, log hclog.Logger) (*slicedoc.Document, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Info("no slicing document yet, starting fresh", "path", path)
		return slicedoc.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", path, err)
	}
	defer file.Close()

	doc, err := slicedoc.ReadDocument(file)
	if err != nil {
		return nil, fmt.Errorf("parse document %q: %w", path, err)
	}
	return doc, nil
}

func saveDocument(st *render.EditorState) error {
	file, err := os.Create(st.DocPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return slicedoc.WriteDocument(file, st.Doc)
}
