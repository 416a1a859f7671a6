package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WaterParams are the wave constants of the procedural water surface. U and V
// are two directions in the horizontal plane; each drives one traveling sine.
// The defaults match the shipped water shader.
type WaterParams struct {
	UX float32 `json:"u_x"`
	UZ float32 `json:"u_z"`
	VX float32 `json:"v_x"`
	VZ float32 `json:"v_z"`
	K1 float32 `json:"k1"`
	K2 float32 `json:"k2"`
	W1 float32 `json:"w1"`
	W2 float32 `json:"w2"`

	Albedo mgl32.Vec4 `json:"albedo"`
}

func DefaultWaterParams() WaterParams {
	return WaterParams{
		UX: 1.0, UZ: 0.3,
		VX: 0.3, VZ: 1.0,
		K1: 1.17, K2: 0.93,
		W1: 2.0, W2: 1.7,
		Albedo: mgl32.Vec4{0.25, 0.35, 0.55, 1.0},
	}
}

// WaterSurface synthesizes the water G-buffer values at a world position for
// the given frame time. Two traveling sines are coupled (the first feeds the
// second's phase) and the horizontal slope is shaped by a signed square root,
// which sharpens the crests compared to a plain sinusoidal normal. Position
// passes through unchanged; the returned normal has unit length.
func (p WaterParams) WaterSurface(pos mgl32.Vec3, t float32) (normal mgl32.Vec3, albedo mgl32.Vec4) {
	u := p.UX*pos.X() + p.UZ*pos.Z()
	v := p.VX*pos.X() + p.VZ*pos.Z()

	phase2 := math32.Sin(u*p.K1 + t*p.W1)
	phase1 := math32.Sin(v*p.K2 + phase2 + t*p.W2)

	slope := sign(phase1) * math32.Sqrt(math32.Abs(phase1))

	normal = mgl32.Vec3{0.5 * slope, 1, phase2}.Normalize()
	return normal, p.Albedo
}

// GlowWater is the decorative variant: one combined wave argument mapped to a
// blue glow, flat upward normal. It carries MaterialFullbright so the
// compositor never lights it.
func (p WaterParams) GlowWater(pos mgl32.Vec3, t float32) (normal mgl32.Vec3, albedo mgl32.Vec4) {
	arg := (pos.X()+pos.Z())*p.K1 + t*p.W1
	glow := 0.5 + 0.5*math32.Sin(arg)
	albedo = mgl32.Vec4{
		0.1 * glow,
		0.2 + 0.2*glow,
		0.5 + 0.5*glow,
		1,
	}
	return mgl32.Vec3{0, 1, 0}, albedo
}

func sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
