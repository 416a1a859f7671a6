package renderer

import (
	"encoding/json"
	"testing"
)

func TestDefaultPipelineConfig(t *testing.T) {
	config := DefaultPipelineConfig()

	if !config.MaterialAware {
		t.Error("Default config should be material-aware")
	}
	if config.GlowWater {
		t.Error("Default config should use the physical water variant")
	}
	if config.LightCullBound <= 1 {
		t.Error("Cull bound should leave slack beyond the frame edge")
	}
}

func TestPerformancePipelineConfig(t *testing.T) {
	config := PerformancePipelineConfig()

	if config.MaterialAware {
		t.Error("Performance config should use the plain composite")
	}
	if !config.GlowWater {
		t.Error("Performance config should use glow water")
	}
}

func TestPipelineConfigRoundTrip(t *testing.T) {
	config := DefaultPipelineConfig()
	config.Water.K1 = 2.5

	data, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded PipelineConfig
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Water.K1 != 2.5 {
		t.Errorf("Water params lost in round trip: %f", decoded.Water.K1)
	}
	if decoded.MaterialAware != config.MaterialAware {
		t.Error("MaterialAware lost in round trip")
	}
}
