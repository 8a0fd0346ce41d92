package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glimt/pathtracer/pkg/renderer"
	"github.com/glimt/pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'random'")
	width := flag.Int("width", 400, "Image width in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Random seed")
	output := flag.String("output", "render.png", "Output file (.png or .ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Fixed scene with ground, feature spheres and hollow glass")
		fmt.Println("  random  - Randomized cover scene with depth of field")
		return
	}

	random := rand.New(rand.NewSource(*seed))
	aspectRatio := 16.0 / 9.0
	height := int(float64(*width) / aspectRatio)

	selectedScene, err := createScene(*sceneType, aspectRatio, random)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	r, err := renderer.NewRenderer(selectedScene, *width, height, renderer.Config{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Seed:            *seed,
	}, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	r.SetProgress(func(rowsRemaining int) {
		fmt.Fprintf(os.Stderr, "\rScanlines remaining: %4d", rowsRemaining)
	})

	startTime := time.Now()
	img, stats := r.Render()
	renderTime := time.Since(startTime)

	fmt.Fprintln(os.Stderr)
	fmt.Printf("Render completed in %v (%d samples)\n", renderTime, stats.TotalSamples)

	if err := saveImage(img, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}

// createScene builds the scene selected on the command line
func createScene(sceneType string, aspectRatio float64, random *rand.Rand) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio)
	case "random":
		return scene.NewRandomScene(aspectRatio, random)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// saveImage serializes the image to PNG or plain-text PPM based on the
// output file extension
func saveImage(img *image.RGBA, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ppm":
		return writePPM(file, img)
	default:
		return png.Encode(file, img)
	}
}

// writePPM writes the image in the P3 plain-text PPM format, one pixel
// per line in row-major order from the top row down
func writePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	return bw.Flush()
}
