package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// NewCubeMesh builds a unit cube centered on the origin with per-face normals,
// a white vertex color and a full [0,1] texture tile per face.
func NewCubeMesh(name string) *Model {
	faces := [6]struct {
		normal mgl32.Vec3
		axisU  mgl32.Vec3
		axisV  mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	interleaved := make([]float32, 0, 6*4*VertexStride)
	indices := make([]int32, 0, 6*6)
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for f, face := range faces {
		for c, corner := range corners {
			p := face.normal.Mul(0.5).
				Add(face.axisU.Mul(0.5 * corner[0])).
				Add(face.axisV.Mul(0.5 * corner[1]))
			interleaved = append(interleaved,
				p.X(), p.Y(), p.Z(),
				1, 1, 1, 1,
				uvs[c][0], uvs[c][1],
				face.normal.X(), face.normal.Y(), face.normal.Z())
		}
		base := int32(f * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return NewModel(name, interleaved, indices)
}

// NewGridMesh builds a flat, upward-facing grid of cells x cells quads in the
// XZ plane spanning size units per side. Useful for terrain and ground planes.
func NewGridMesh(name string, cells int, size float32) *Model {
	step := size / float32(cells)
	half := size / 2

	interleaved := make([]float32, 0, (cells+1)*(cells+1)*VertexStride)
	for z := 0; z <= cells; z++ {
		for x := 0; x <= cells; x++ {
			px := -half + float32(x)*step
			pz := -half + float32(z)*step
			interleaved = append(interleaved,
				px, 0, pz,
				1, 1, 1, 1,
				float32(x)/float32(cells), float32(z)/float32(cells),
				0, 1, 0)
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
	return NewModel(name, interleaved, indices)
}

// NewQuadMesh builds a unit quad in the XY plane facing +Z, for billboards
// and HUD sprites on the immediate path.
func NewQuadMesh(name string) *Model {
	interleaved := []float32{
		-0.5, -0.5, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1,
		0.5, -0.5, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1,
		0.5, 0.5, 0, 1, 1, 1, 1, 1, 1, 0, 0, 1,
		-0.5, 0.5, 0, 1, 1, 1, 1, 0, 1, 0, 0, 1,
	}
	indices := []int32{0, 1, 2, 0, 2, 3}
	return NewModel(name, interleaved, indices)
}

// WaterGrid is the position-only mesh of the water pass. It lives in world
// space already, so the pass needs no model matrix.
type WaterGrid struct {
	vao       uint32
	vbo       uint32
	ebo       uint32
	faceCount int32
}

// NewWaterGrid builds and uploads a flat grid at the given water level,
// centered on the origin. Must run on the GL thread.
func NewWaterGrid(cells int, size float32, level float32) *WaterGrid {
	step := size / float32(cells)
	half := size / 2

	positions := make([]float32, 0, (cells+1)*(cells+1)*3)
	for z := 0; z <= cells; z++ {
		for x := 0; x <= cells; x++ {
			positions = append(positions, -half+float32(x)*step, level, -half+float32(z)*step)
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

	w := &WaterGrid{faceCount: int32(len(indices))}
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &w.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, w.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return w
}

func (w *WaterGrid) Draw() {
	gl.BindVertexArray(w.vao)
	gl.DrawElements(gl.TRIANGLES, w.faceCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (w *WaterGrid) Destroy() {
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteBuffers(1, &w.ebo)
	gl.DeleteVertexArrays(1, &w.vao)
}
