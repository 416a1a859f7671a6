package engine

import (
	"testing"

	"github.com/SiegeLord/Voidwind/internal/water"
)

func TestSetWaterAppliesGlowConfig(t *testing.T) {
	vw := NewVoidwind()
	cfg := vw.PipelineConfig()
	cfg.GlowWater = true
	vw.SetPipelineConfig(cfg)

	surface := water.NewSurface(100, 0)
	vw.SetWater(surface)

	if !surface.Glow {
		t.Error("GlowWater pipeline config should switch the surface to the glow variant")
	}
	if vw.Water() != surface {
		t.Error("SetWater should install the surface")
	}
}

func TestSetWaterKeepsSurfaceGlow(t *testing.T) {
	vw := NewVoidwind()

	surface := water.NewSurface(100, 0)
	surface.Glow = true
	vw.SetWater(surface)
	if !surface.Glow {
		t.Error("a surface that asked for glow keeps it under the default config")
	}

	plain := water.NewSurface(100, 0)
	vw.SetWater(plain)
	if plain.Glow {
		t.Error("the default config must not force glow on")
	}
}
