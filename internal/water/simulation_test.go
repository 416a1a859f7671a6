package water

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewSurfaceDefaults(t *testing.T) {
	ws := NewSurface(1000, 0)

	if ws.Cells != DefaultResolution {
		t.Errorf("Expected default resolution %d, got %d", DefaultResolution, ws.Cells)
	}
	if ws.OceanSize != 1000 {
		t.Errorf("Expected ocean size 1000, got %f", ws.OceanSize)
	}
	if ws.Glow {
		t.Error("Surface should default to the physical variant")
	}
}

func TestSurfaceNormalUnitLength(t *testing.T) {
	ws := NewSurface(100, 0)
	ws.CurrentTime = 3.7

	for _, p := range [][2]float32{{0, 0}, {12.5, -4}, {-80, 31}} {
		n := ws.NormalAt(p[0], p[1])
		if math.Abs(float64(n.Len())-1.0) > 1e-5 {
			t.Errorf("Normal at (%f,%f) not unit length: %v", p[0], p[1], n)
		}
		if n.Y() <= 0 {
			t.Errorf("Normal at (%f,%f) should point upward: %v", p[0], p[1], n)
		}
	}
}

func TestSurfaceConfigRoundTrip(t *testing.T) {
	ws := NewSurface(500, -2)
	ws.Glow = true
	ws.Params.K1 = 3.1

	data, err := json.Marshal(ws.GetConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	other := NewSurface(1, 0)
	other.ApplyConfig(config)

	if other.OceanSize != 500 || other.Level != -2 {
		t.Errorf("Extent lost in round trip: size=%f level=%f", other.OceanSize, other.Level)
	}
	if !other.Glow {
		t.Error("Glow flag lost in round trip")
	}
	if other.Params.K1 != 3.1 {
		t.Errorf("Wave params lost in round trip: %f", other.Params.K1)
	}
}
