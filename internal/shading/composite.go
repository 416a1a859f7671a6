package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Composite is the material-aware final combine: accumulated light times
// albedo, plus the separately accumulated specular scalar added unmodulated so
// highlights read as glare independent of surface color. MaterialFullbright
// replaces the accumulated light with full white, bypassing lighting entirely.
func Composite(lightAccum, albedo mgl32.Vec4, mat MaterialCode) mgl32.Vec3 {
	lr, lg, lb := lightAccum.X(), lightAccum.Y(), lightAccum.Z()
	if mat == MaterialFullbright {
		lr, lg, lb = 1, 1, 1
	}
	spec := lightAccum.W()
	return mgl32.Vec3{
		lr*albedo.X() + spec,
		lg*albedo.Y() + spec,
		lb*albedo.Z() + spec,
	}
}

// CompositeSimple is the plain combine: light times albedo, specular channel
// and material code ignored.
func CompositeSimple(lightAccum, albedo mgl32.Vec4) mgl32.Vec3 {
	return mgl32.Vec3{
		lightAccum.X() * albedo.X(),
		lightAccum.Y() * albedo.Y(),
		lightAccum.Z() * albedo.Z(),
	}
}

// ImmediateShade is the non-deferred path: a single fixed-direction Lambertian
// term computed at the vertex stage, then texture modulation. No G-buffer
// interaction.
func ImmediateShade(normal mgl32.Vec3, vertexColor, texel mgl32.Vec4) mgl32.Vec4 {
	lightDir := mgl32.Vec3{1, 1, 1}.Normalize()
	lit := math32.Max(normal.Normalize().Dot(lightDir), 0)
	return mgl32.Vec4{
		lit * vertexColor.X() * texel.X(),
		lit * vertexColor.Y() * texel.Y(),
		lit * vertexColor.Z() * texel.Z(),
		vertexColor.W() * texel.W(),
	}
}
