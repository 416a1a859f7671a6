package renderer

import (
	"math"
	"testing"

	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCubeMeshLayout(t *testing.T) {
	cube := NewCubeMesh("cube")

	if len(cube.InterleavedData) != 6*4*VertexStride {
		t.Fatalf("Expected %d floats, got %d", 6*4*VertexStride, len(cube.InterleavedData))
	}
	if len(cube.Faces) != 36 {
		t.Errorf("Expected 36 indices, got %d", len(cube.Faces))
	}

	// Every vertex should sit on the surface of the unit cube.
	for v := 0; v < len(cube.InterleavedData); v += VertexStride {
		x := cube.InterleavedData[v]
		y := cube.InterleavedData[v+1]
		z := cube.InterleavedData[v+2]
		max := float32(math.Max(math.Abs(float64(x)), math.Max(math.Abs(float64(y)), math.Abs(float64(z)))))
		if math.Abs(float64(max)-0.5) > 1e-6 {
			t.Fatalf("Vertex (%f,%f,%f) not on unit cube surface", x, y, z)
		}
	}
}

func TestNewCubeMeshNormalsUnit(t *testing.T) {
	cube := NewCubeMesh("cube")

	for v := 0; v < len(cube.InterleavedData); v += VertexStride {
		n := mgl32.Vec3{
			cube.InterleavedData[v+9],
			cube.InterleavedData[v+10],
			cube.InterleavedData[v+11],
		}
		if math.Abs(float64(n.Len())-1.0) > 1e-5 {
			t.Fatalf("Normal %v not unit length", n)
		}
	}
}

func TestNewGridMeshCounts(t *testing.T) {
	cells := 8
	grid := NewGridMesh("grid", cells, 16)

	wantVerts := (cells + 1) * (cells + 1)
	if len(grid.InterleavedData) != wantVerts*VertexStride {
		t.Errorf("Expected %d vertices, got %d", wantVerts, len(grid.InterleavedData)/VertexStride)
	}
	if len(grid.Faces) != cells*cells*6 {
		t.Errorf("Expected %d indices, got %d", cells*cells*6, len(grid.Faces))
	}

	// All grid vertices lie in the XZ plane with an up normal.
	for v := 0; v < len(grid.InterleavedData); v += VertexStride {
		if grid.InterleavedData[v+1] != 0 {
			t.Fatal("Grid vertex not at y=0")
		}
		if grid.InterleavedData[v+10] != 1 {
			t.Fatal("Grid normal not +Y")
		}
	}
}

func TestGridIndicesInRange(t *testing.T) {
	cells := 4
	grid := NewGridMesh("grid", cells, 8)

	vertCount := int32((cells + 1) * (cells + 1))
	for _, i := range grid.Faces {
		if i < 0 || i >= vertCount {
			t.Fatalf("Index %d out of range [0,%d)", i, vertCount)
		}
	}
}

func TestNewQuadMesh(t *testing.T) {
	quad := NewQuadMesh("quad")

	if len(quad.InterleavedData) != 4*VertexStride {
		t.Errorf("Expected 4 vertices, got %d", len(quad.InterleavedData)/VertexStride)
	}
	if len(quad.Faces) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(quad.Faces))
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel("m", nil, nil)

	if m.MaterialClass != shading.MaterialDefault {
		t.Errorf("Default material class should be %d, got %d", shading.MaterialDefault, m.MaterialClass)
	}
	if m.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Default scale should be identity, got %v", m.Scale)
	}
	if !m.IsDirty {
		t.Error("New model should start dirty")
	}
}

func TestModelMatrixRecalculation(t *testing.T) {
	m := NewModel("m", nil, nil)
	m.SetPosition(3, 4, 5)

	mat := m.CalculateModelMatrix()
	if mat.At(0, 3) != 3 || mat.At(1, 3) != 4 || mat.At(2, 3) != 5 {
		t.Errorf("Translation not applied: %v", mat)
	}
	if m.IsDirty {
		t.Error("Model should be clean after recalculation")
	}

	// Unchanged transform keeps the cached matrix.
	again := m.CalculateModelMatrix()
	if again != mat {
		t.Error("Matrix should be stable without transform changes")
	}

	m.SetScale(2, 2, 2)
	scaled := m.CalculateModelMatrix()
	if scaled.At(0, 0) != 2 {
		t.Errorf("Scale not applied: %v", scaled)
	}
}
