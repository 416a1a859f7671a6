package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SiegeLord/Voidwind/internal/renderer"
)

const triangleObj = `# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

const quadObj = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func writeObj(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadModelTriangle(t *testing.T) {
	model, err := LoadModel(writeObj(t, triangleObj), false)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	if len(model.Faces) != 3 {
		t.Errorf("Expected 3 indices, got %d", len(model.Faces))
	}
	if len(model.InterleavedData) != 3*renderer.VertexStride {
		t.Errorf("Expected 3 vertices, got %d", len(model.InterleavedData)/renderer.VertexStride)
	}

	// First vertex: position origin, white color, uv (0,0), normal +Z.
	v := model.InterleavedData[:renderer.VertexStride]
	if v[0] != 0 || v[1] != 0 || v[2] != 0 {
		t.Errorf("Wrong position: %v", v[:3])
	}
	if v[3] != 1 || v[6] != 1 {
		t.Errorf("Vertex color should be opaque white: %v", v[3:7])
	}
	if v[11] != 1 {
		t.Errorf("Normal should be +Z: %v", v[9:12])
	}
}

func TestLoadModelTriangulatesQuads(t *testing.T) {
	model, err := LoadModel(writeObj(t, quadObj), false)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if len(model.Faces) != 6 {
		t.Errorf("Quad should fan into 2 triangles, got %d indices", len(model.Faces))
	}
}

func TestLoadModelRecalculatesNormals(t *testing.T) {
	model, err := LoadModel(writeObj(t, quadObj), true)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	// The quad lies in the XY plane with CCW winding, so normals face +Z.
	for v := 0; v < len(model.InterleavedData); v += renderer.VertexStride {
		if model.InterleavedData[v+11] <= 0.99 {
			t.Fatalf("Recalculated normal not +Z at vertex %d: %v",
				v/renderer.VertexStride, model.InterleavedData[v+9:v+12])
		}
	}
}

func TestLoadModelNegativeIndices(t *testing.T) {
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	model, err := LoadModel(writeObj(t, obj), false)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if len(model.Faces) != 3 {
		t.Errorf("Expected 3 indices, got %d", len(model.Faces))
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel("does/not/exist.obj", false); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadModelRejectsEmpty(t *testing.T) {
	if _, err := LoadModel(writeObj(t, "# nothing\n"), false); err == nil {
		t.Error("Expected error for OBJ without faces")
	}
}

func TestLoadModelOutOfRangeIndex(t *testing.T) {
	obj := `v 0 0 0
f 1 2 3
`
	if _, err := LoadModel(writeObj(t, obj), false); err == nil {
		t.Error("Expected error for out-of-range face index")
	}
}
