package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/glimt/pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for the parallel renderer
type Config struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-row random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int // Total number of pixels rendered
	TotalSamples int // Total number of samples taken
}

// Renderer drives the raytracer over every pixel of the output image,
// distributing scanlines across a fixed pool of workers
type Renderer struct {
	scene     Scene
	raytracer *Raytracer
	width     int
	height    int
	config    Config
	logger    core.Logger
	progress  func(rowsRemaining int)
}

// NewRenderer creates a renderer for the given scene and image size. A nil
// logger falls back to stdout. It returns an error for non-positive
// dimensions, sample counts or depth.
func NewRenderer(scene Scene, width, height int, config Config, logger core.Logger) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", config.MaxDepth)
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:     scene,
		raytracer: NewRaytracer(scene),
		width:     width,
		height:    height,
		config:    config,
		logger:    logger,
	}, nil
}

// SetProgress registers a callback invoked once per completed scanline with
// the number of rows still outstanding. Callbacks arrive from worker
// goroutines with no ordering guarantee across rows.
func (r *Renderer) SetProgress(fn func(rowsRemaining int)) {
	r.progress = fn
}

// Render renders the full image and returns it together with render
// statistics. Rows are processed independently in parallel; the result is
// deterministic for a fixed seed regardless of worker count.
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	r.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		r.width, r.height, r.config.SamplesPerPixel, r.config.NumWorkers)

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	rows := make(chan int, r.height)
	for j := 0; j < r.height; j++ {
		rows <- j
	}
	close(rows)

	var remaining atomic.Int64
	remaining.Store(int64(r.height))

	var wg sync.WaitGroup
	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				// Each row owns an independent random stream derived from
				// the base seed, so scheduling cannot affect the output
				random := rand.New(rand.NewSource(r.config.Seed + int64(j)))
				r.renderRow(img, j, random)

				rowsLeft := remaining.Add(-1)
				if r.progress != nil {
					r.progress(int(rowsLeft))
				}
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  r.width * r.height,
		TotalSamples: r.width * r.height * r.config.SamplesPerPixel,
	}
	return img, stats
}

// renderRow renders a single scanline into the shared image. Rows are
// disjoint, so concurrent writers never touch the same pixel.
func (r *Renderer) renderRow(img *image.RGBA, j int, random *rand.Rand) {
	camera := r.scene.GetCamera()

	for i := 0; i < r.width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			// Jitter the sample position within the pixel
			s := (float64(i) + random.Float64()) / float64(r.width)
			t := (float64(j) + random.Float64()) / float64(r.height)

			ray := camera.GetRay(s, t, random)
			colorAccum = colorAccum.Add(r.raytracer.RayColor(ray, r.config.MaxDepth, random))
		}

		// Row 0 is the bottom of the viewport but the top row of the image
		img.SetRGBA(i, r.height-1-j, finalizePixel(colorAccum, r.config.SamplesPerPixel))
	}
}
