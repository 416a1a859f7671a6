package renderer

import (
	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights bounds one frame's accumulation draws.
const MaxLights = 64

// Light is one light source consumed by the accumulation pass, one draw per
// light. Ambient selects the non-directional glow/fog variant, which ignores
// Intensity in favor of the fixed shading.AmbientIntensity divisor.
type Light struct {
	Color     mgl32.Vec4
	Position  mgl32.Vec3
	Intensity float32
	Ambient   bool
}

// Descriptor returns the light as the shading package models it.
func (l Light) Descriptor() shading.Light {
	return shading.Light{Color: l.Color, Position: l.Position, Intensity: l.Intensity}
}

// NewPointLight creates a standard accumulated light. Intensity acts as a
// distance divisor: bigger means a wider pool of light.
func NewPointLight(position mgl32.Vec3, color mgl32.Vec4, intensity float32) Light {
	return Light{Color: color, Position: position, Intensity: intensity}
}

// NewAmbientLight creates a glow/fog light: no directionality, no specular.
func NewAmbientLight(position mgl32.Vec3, color mgl32.Vec4) Light {
	return Light{Color: color, Position: position, Intensity: shading.AmbientIntensity, Ambient: true}
}

// LightSet holds the lights submitted for one frame.
type LightSet struct {
	lights []Light
}

func NewLightSet() *LightSet {
	return &LightSet{lights: make([]Light, 0, MaxLights)}
}

// Add appends a light. Returns false when the set is full.
func (s *LightSet) Add(light Light) bool {
	if len(s.lights) >= MaxLights {
		return false
	}
	s.lights = append(s.lights, light)
	return true
}

// Clear empties the set for the next frame.
func (s *LightSet) Clear() {
	s.lights = s.lights[:0]
}

func (s *LightSet) Len() int {
	return len(s.lights)
}

func (s *LightSet) Lights() []Light {
	return s.lights
}

// Positions returns the light positions as a flat float32 slice,
// [x0 y0 z0 x1 y1 z1 ...], for debug overlays and bulk upload.
func (s *LightSet) Positions() []float32 {
	flat := make([]float32, 0, len(s.lights)*3)
	for _, l := range s.lights {
		flat = append(flat, l.Position.X(), l.Position.Y(), l.Position.Z())
	}
	return flat
}

// Colors returns the light colors as a flat float32 slice, RGBA per light.
func (s *LightSet) Colors() []float32 {
	flat := make([]float32, 0, len(s.lights)*4)
	for _, l := range s.lights {
		flat = append(flat, l.Color.X(), l.Color.Y(), l.Color.Z(), l.Color.W())
	}
	return flat
}
