// Package water drives the animated water surface: it owns the wave
// parameters, the world-space grid and the clock the fragment shader samples.
package water

import (
	"time"

	"github.com/SiegeLord/Voidwind/internal/renderer"
	"github.com/SiegeLord/Voidwind/internal/shading"
	mgl32 "github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultResolution is the grid resolution of the water mesh. The waves
	// are computed per fragment, so the grid only needs enough cells to
	// follow the horizon.
	DefaultResolution = 64
)

// Surface handles the water plane of a scene. It implements the Behaviour
// interface so the engine ticks its clock with the rest of the scene.
type Surface struct {
	Params    shading.WaterParams
	OceanSize float32
	Cells     int
	Level     float32
	Glow      bool

	StartTime   time.Time
	CurrentTime float32

	grid *renderer.WaterGrid
}

// Config is an exportable config for saving/loading water settings
type Config struct {
	OceanSize float32             `json:"ocean_size"`
	Cells     int                 `json:"cells"`
	Level     float32             `json:"level"`
	Glow      bool                `json:"glow"`
	Params    shading.WaterParams `json:"params"`
}

// NewSurface creates a water surface of the given extent at the given level.
func NewSurface(size float32, level float32) *Surface {
	return &Surface{
		Params:    shading.DefaultWaterParams(),
		OceanSize: size,
		Cells:     DefaultResolution,
		Level:     level,
		StartTime: time.Now(),
	}
}

// EnsureGrid builds and uploads the grid on first use. Must run on the GL
// thread.
func (ws *Surface) EnsureGrid() *renderer.WaterGrid {
	if ws.grid == nil {
		ws.grid = renderer.NewWaterGrid(ws.Cells, ws.OceanSize, ws.Level)
	}
	return ws.grid
}

// Elapsed returns the animation clock in seconds.
func (ws *Surface) Elapsed() float32 {
	return float32(time.Since(ws.StartTime).Seconds())
}

// Start implements the Behaviour interface
func (ws *Surface) Start() {
	ws.StartTime = time.Now()
}

// Update implements the Behaviour interface - called every frame
func (ws *Surface) Update() {
	ws.CurrentTime = ws.Elapsed()
}

// UpdateFixed implements the Behaviour interface
func (ws *Surface) UpdateFixed() {}

// Draw renders the surface into the G-buffer through the pipeline's water
// pass. Call between BeginGeometry and BeginLights.
func (ws *Surface) Draw(pipeline *renderer.DeferredPipeline) {
	pipeline.DrawWater(ws.EnsureGrid(), ws.CurrentTime, ws.Glow)
}

// NormalAt evaluates the wave normal at a world-space point on the CPU, for
// gameplay queries like spray direction and floating-debris tilt.
func (ws *Surface) NormalAt(x, z float32) mgl32.Vec3 {
	normal, _ := ws.Params.WaterSurface(mgl32.Vec3{x, ws.Level, z}, ws.CurrentTime)
	return normal
}

// Destroy frees the GPU grid. Must run on the GL thread.
func (ws *Surface) Destroy() {
	if ws.grid != nil {
		ws.grid.Destroy()
		ws.grid = nil
	}
}

// GetConfig returns the current configuration for saving
func (ws *Surface) GetConfig() Config {
	return Config{
		OceanSize: ws.OceanSize,
		Cells:     ws.Cells,
		Level:     ws.Level,
		Glow:      ws.Glow,
		Params:    ws.Params,
	}
}

// ApplyConfig applies a saved configuration to the surface. The grid is
// rebuilt lazily if the extent changed.
func (ws *Surface) ApplyConfig(config Config) {
	if config.OceanSize != ws.OceanSize || config.Cells != ws.Cells || config.Level != ws.Level {
		ws.Destroy()
	}
	ws.OceanSize = config.OceanSize
	ws.Cells = config.Cells
	ws.Level = config.Level
	ws.Glow = config.Glow
	ws.Params = config.Params
}
