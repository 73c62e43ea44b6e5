package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jetrotal/sliced-image/internal/app"
	"github.com/jetrotal/sliced-image/internal/logging"
	"github.com/jetrotal/sliced-image/render/raylib"
	"github.com/jetrotal/sliced-image/render/software"
	"github.com/jetrotal/sliced-image/slicedoc"
)

const version = "0.2.0"

var (
	logLevel string
	logFile  string

	imagePath  string
	docPath    string
	outputPath string
	targetW    int
	targetH    int

	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "sliced-image",
		Short: "Edit and apply N-slice image scaling configurations",
		Long: `sliced-image partitions an image into a grid of segments, marks each
segment fixed or scalable, and resizes the image by stretching, repeating or
pinning the grid's cells. The edit command opens an interactive editor; the
render command applies a saved configuration headlessly.`,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this rotating file")

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive slicing editor",
		RunE:  runEdit,
	}
	editCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Image to slice (required)")
	editCmd.Flags().StringVarP(&docPath, "doc", "d", "", "Slicing document path (defaults to <image>.9s.json)")
	if err := editCmd.MarkFlagRequired("image"); err != nil {
		panic(err)
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Apply a slicing document to an image and write a PNG",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Source image (required)")
	renderCmd.Flags().StringVarP(&docPath, "doc", "d", "", "Slicing document (required)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PNG path (required)")
	renderCmd.Flags().IntVarP(&targetW, "width", "W", 0, "Target width in pixels (required)")
	renderCmd.Flags().IntVarP(&targetH, "height", "H", 0, "Target height in pixels (required)")
	for _, name := range []string{"image", "doc", "output", "width", "height"} {
		if err := renderCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt <doc>",
		Short: "Rewrite a slicing document in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  runFmt,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sliced-image %s\n", version)
		},
	}

	rootCmd.AddCommand(editCmd, renderCmd, fmtCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	log, cleanup := logging.New("sliced-image", logging.Options{Level: logLevel, File: logFile})
	defer cleanup()

	renderer := raylib.New(log.Named("raylib"))
	return app.Run(renderer, app.Options{
		ImagePath: imagePath,
		DocPath:   docPath,
		Log:       log,
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	log, cleanup := logging.New("sliced-image", logging.Options{Level: logLevel, File: logFile})
	defer cleanup()

	img, err := software.LoadImageFile(imagePath)
	if err != nil {
		return fmt.Errorf("load image %q: %w", imagePath, err)
	}

	f, err := os.Open(docPath)
	if err != nil {
		return fmt.Errorf("open document %q: %w", docPath, err)
	}
	doc, err := slicedoc.ReadDocument(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse document %q: %w", docPath, err)
	}

	log.Debug("rendering", "image", imagePath, "target", fmt.Sprintf("%dx%d", targetW, targetH))
	out := software.Render(img, doc, targetW, targetH)
	if err := software.WritePNG(outputPath, out); err != nil {
		return fmt.Errorf("write %q: %w", outputPath, err)
	}
	log.Info("rendered", "output", outputPath)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := slicedoc.ReadDocument(f)
	f.Close()
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return slicedoc.WriteDocument(out, doc)
}
