package renderer

import "github.com/SiegeLord/Voidwind/internal/shading"

// PipelineConfig holds the host-tunable switches of the deferred pipeline.
// Serialized alongside scene settings, so every field carries a JSON tag.
type PipelineConfig struct {
	// MaterialAware selects the compositor variant: fullbright override plus
	// unmodulated specular add. Off means the plain light-times-albedo blend.
	MaterialAware bool `json:"materialAware"`

	// GlowWater makes the engine switch installed water surfaces to the
	// decorative glow variant; the surface carries the flag into the pass.
	GlowWater bool `json:"glowWater"`

	// LightCullCutoff is the falloff value below which a light is considered
	// invisible when deciding whether to skip its accumulation draw.
	LightCullCutoff float32 `json:"lightCullCutoff"`

	// LightCullBound is the screen-space NDC bound for the light cull; lights
	// whose center projects beyond it are skipped.
	LightCullBound float32 `json:"lightCullBound"`

	Water shading.WaterParams `json:"water"`
}

// DefaultPipelineConfig mirrors the shipped game's settings.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		MaterialAware:   true,
		GlowWater:       false,
		LightCullCutoff: 0.01,
		LightCullBound:  1.5,
		Water:           shading.DefaultWaterParams(),
	}
}

// PerformancePipelineConfig trades the material-aware composite and physical
// water for the cheap variants.
func PerformancePipelineConfig() PipelineConfig {
	config := DefaultPipelineConfig()
	config.MaterialAware = false
	config.GlowWater = true
	config.LightCullCutoff = 0.05
	return config
}
