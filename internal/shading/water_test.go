package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWaterNormalUnitLength(t *testing.T) {
	p := DefaultWaterParams()
	for x := float32(-20); x <= 20; x += 2.5 {
		for z := float32(-20); z <= 20; z += 2.5 {
			for tm := float32(0); tm < 12; tm += 0.7 {
				n, _ := p.WaterSurface(mgl32.Vec3{x, 0, z}, tm)
				assert.InDelta(t, 1.0, float64(n.Len()), 1e-4,
					"normal at (%v,%v) t=%v", x, z, tm)
			}
		}
	}
}

func TestWaterAlbedoConstant(t *testing.T) {
	p := DefaultWaterParams()
	_, a0 := p.WaterSurface(mgl32.Vec3{0, 0, 0}, 0)
	_, a1 := p.WaterSurface(mgl32.Vec3{15, 0, -4}, 9)
	assert.Equal(t, a0, a1, "physical water albedo does not vary")
	assert.Equal(t, p.Albedo, a0)
}

func TestWaterSurfaceAnimates(t *testing.T) {
	p := DefaultWaterParams()
	pos := mgl32.Vec3{3, 0, 7}
	n0, _ := p.WaterSurface(pos, 0)
	n1, _ := p.WaterSurface(pos, 1)
	assert.NotEqual(t, n0, n1, "time must drive the surface")
}

func TestGlowWaterFlatNormal(t *testing.T) {
	p := DefaultWaterParams()
	for tm := float32(0); tm < 6; tm += 0.3 {
		n, a := p.GlowWater(mgl32.Vec3{5, 0, -2}, tm)
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, n)
		assert.GreaterOrEqual(t, a.Z(), a.X(), "glow water stays blue")
		assert.Equal(t, float32(1), a.W())
	}
}

func TestGlowWaterPulses(t *testing.T) {
	p := DefaultWaterParams()
	pos := mgl32.Vec3{0, 0, 0}
	_, a0 := p.GlowWater(pos, 0)
	_, a1 := p.GlowWater(pos, 0.8)
	assert.NotEqual(t, a0, a1)
}

func TestImmediateShade(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	white := mgl32.Vec4{1, 1, 1, 1}

	got := ImmediateShade(up, white, white)
	want := float32(1) / mgl32.Vec3{1, 1, 1}.Len()
	assert.InDelta(t, want, got.X(), 1e-5)
	assert.Equal(t, float32(1), got.W(), "alpha is never darkened")

	// A normal facing the fixed light exactly gives full modulation.
	along := mgl32.Vec3{1, 1, 1}
	got = ImmediateShade(along, white, mgl32.Vec4{0.5, 0.25, 1, 0.5})
	assert.InDelta(t, 0.5, got.X(), 1e-5)
	assert.InDelta(t, 0.25, got.Y(), 1e-5)
	assert.InDelta(t, 0.5, got.W(), 1e-5)

	// Back-facing clamps to zero.
	got = ImmediateShade(mgl32.Vec3{-1, -1, -1}, white, white)
	assert.Equal(t, float32(0), got.X())
}
