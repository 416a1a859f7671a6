package loader

import (
	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/SiegeLord/Voidwind/internal/renderer"
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// IslandParams controls procedural island generation.
type IslandParams struct {
	Size      float32 `json:"size"`      // World extent per side
	Cells     int     `json:"cells"`     // Grid resolution
	Amplitude float32 `json:"amplitude"` // Peak height
	Scale     float32 `json:"scale"`     // Noise feature size in world units
	Seed      int64   `json:"seed"`
}

func DefaultIslandParams() IslandParams {
	return IslandParams{
		Size:      200,
		Cells:     96,
		Amplitude: 18,
		Scale:     60,
		Seed:      1,
	}
}

// GenerateIsland builds an island mesh: perlin-noise heights shaped by a
// radial falloff so the terrain sinks below the waterline at the edges.
// Vertex colors grade from sand near the waterline to grass above it.
func GenerateIsland(name string, params IslandParams) *renderer.Model {
	noise := perlin.NewPerlin(2, 2, 3, params.Seed)

	cells := params.Cells
	step := params.Size / float32(cells)
	half := params.Size / 2

	heights := make([]float32, (cells+1)*(cells+1))
	heightAt := func(x, z int) float32 {
		return heights[z*(cells+1)+x]
	}

	for z := 0; z <= cells; z++ {
		for x := 0; x <= cells; x++ {
			wx := -half + float32(x)*step
			wz := -half + float32(z)*step

			n := float32(noise.Noise2D(float64(wx/params.Scale), float64(wz/params.Scale)))
			// Radial falloff pushes the rim underwater.
			r := math32.Sqrt(wx*wx+wz*wz) / half
			falloff := 1 - r*r
			if falloff < 0 {
				falloff = 0
			}
			heights[z*(cells+1)+x] = (0.5+0.5*n)*params.Amplitude*falloff - 2
		}
	}

	interleaved := make([]float32, 0, (cells+1)*(cells+1)*renderer.VertexStride)
	for z := 0; z <= cells; z++ {
		for x := 0; x <= cells; x++ {
			wx := -half + float32(x)*step
			wz := -half + float32(z)*step
			h := heightAt(x, z)

			normal := terrainNormal(heightAt, x, z, cells, step)
			color := terrainColor(h)

			interleaved = append(interleaved,
				wx, h, wz,
				color.X(), color.Y(), color.Z(), 1,
				float32(x)/float32(cells), float32(z)/float32(cells),
				normal.X(), normal.Y(), normal.Z())
		}
	}

	indices := make([]int32, 0, cells*cells*6)
	rowStride := int32(cells + 1)
	for z := 0; z < cells; z++ {
		for x := 0; x < cells; x++ {
			i := int32(z)*rowStride + int32(x)
			indices = append(indices,
				i, i+rowStride, i+1,
				i+1, i+rowStride, i+rowStride+1)
		}
	}

	logger.Log.Info("Island generated",
		zap.String("name", name),
		zap.Int("cells", cells),
		zap.Int64("seed", params.Seed))
	return renderer.NewModel(name, interleaved, indices)
}

// terrainNormal estimates the surface normal by central differences on the
// height grid, clamped at the borders.
func terrainNormal(heightAt func(int, int) float32, x, z, cells int, step float32) mgl32.Vec3 {
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = 0
	}
	if x1 > cells {
		x1 = cells
	}
	z0, z1 := z-1, z+1
	if z0 < 0 {
		z0 = 0
	}
	if z1 > cells {
		z1 = cells
	}

	dx := (heightAt(x1, z) - heightAt(x0, z)) / (float32(x1-x0) * step)
	dz := (heightAt(x, z1) - heightAt(x, z0)) / (float32(z1-z0) * step)
	return mgl32.Vec3{-dx, 1, -dz}.Normalize()
}

// terrainColor grades sand below two units over the waterline into grass.
func terrainColor(height float32) mgl32.Vec3 {
	sand := mgl32.Vec3{0.76, 0.7, 0.5}
	grass := mgl32.Vec3{0.25, 0.55, 0.2}
	t := (height - 0.5) / 2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return sand.Mul(1 - t).Add(grass.Mul(t))
}
