package loader

import (
	"math"
	"testing"

	"github.com/SiegeLord/Voidwind/internal/renderer"
)

func TestGenerateIslandShape(t *testing.T) {
	params := DefaultIslandParams()
	params.Cells = 32
	island := GenerateIsland("island", params)

	wantVerts := (params.Cells + 1) * (params.Cells + 1)
	if len(island.InterleavedData) != wantVerts*renderer.VertexStride {
		t.Fatalf("Expected %d vertices, got %d", wantVerts, len(island.InterleavedData)/renderer.VertexStride)
	}

	// The rim must sink below the waterline, the interior must rise above it.
	var maxHeight float32 = -1e9
	for v := 0; v < len(island.InterleavedData); v += renderer.VertexStride {
		if island.InterleavedData[v+1] > maxHeight {
			maxHeight = island.InterleavedData[v+1]
		}
	}
	if maxHeight <= 0 {
		t.Errorf("Island peak should be above the waterline, got %f", maxHeight)
	}

	corner := island.InterleavedData[1]
	if corner >= 0 {
		t.Errorf("Island rim should be underwater, got %f", corner)
	}
}

func TestGenerateIslandNormalsUnit(t *testing.T) {
	params := DefaultIslandParams()
	params.Cells = 16
	island := GenerateIsland("island", params)

	for v := 0; v < len(island.InterleavedData); v += renderer.VertexStride {
		nx := island.InterleavedData[v+9]
		ny := island.InterleavedData[v+10]
		nz := island.InterleavedData[v+11]
		length := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
		if math.Abs(length-1.0) > 1e-4 {
			t.Fatalf("Normal at vertex %d not unit length: %f", v/renderer.VertexStride, length)
		}
		if ny <= 0 {
			t.Fatalf("Terrain normal should point upward, got y=%f", ny)
		}
	}
}

func TestGenerateIslandDeterministic(t *testing.T) {
	params := DefaultIslandParams()
	params.Cells = 8

	a := GenerateIsland("a", params)
	b := GenerateIsland("b", params)

	for i := range a.InterleavedData {
		if a.InterleavedData[i] != b.InterleavedData[i] {
			t.Fatal("Same seed should generate identical terrain")
		}
	}

	params.Seed = 99
	c := GenerateIsland("c", params)
	same := true
	for i := range a.InterleavedData {
		if a.InterleavedData[i] != c.InterleavedData[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should generate different terrain")
	}
}
