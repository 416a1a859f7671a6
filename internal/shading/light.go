package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SpecularPower is the exponent of the Phong highlight in the light pass.
const SpecularPower = 20

// AmbientIntensity is the fixed distance divisor of the ambient glow variant.
const AmbientIntensity = 5

// Light is one point light as consumed by the light accumulation pass.
// Intensity rescales distance before the quartic falloff is applied, so a
// larger intensity reads as a larger radius of influence. The color alpha is
// carried but unused by the lighting model.
type Light struct {
	Color     mgl32.Vec4
	Position  mgl32.Vec3
	Intensity float32
}

// Falloff is the attenuation at distance dist from a light of the given
// intensity: 1/(1+(dist/intensity)^4). It is 1 at dist 0 and strictly
// decreasing. Intensity must be positive; the host guards against zero.
func Falloff(dist, intensity float32) float32 {
	d := dist / intensity
	dd := d * d
	return 1 / (1 + dd*dd)
}

// Radius returns the distance at which Falloff drops to cutoff. The host uses
// it to skip lights whose influence cannot reach the screen.
func Radius(intensity, cutoff float32) float32 {
	if cutoff <= 0 || cutoff >= 1 {
		return 0
	}
	return intensity * math32.Sqrt(math32.Sqrt(1/cutoff-1))
}

// Diffuse is the Lambertian term. The outer Abs is redundant after the clamp
// and is kept to match the shipped shader output bit for bit.
func Diffuse(lightDir, normal mgl32.Vec3) float32 {
	return math32.Abs(math32.Max(lightDir.Dot(normal), 0))
}

// Specular is the Phong highlight, gated to zero for every material except
// MaterialSpecular.
func Specular(lightDir, normal, viewDir mgl32.Vec3, mat MaterialCode) float32 {
	if mat != MaterialSpecular {
		return 0
	}
	r := reflect(lightDir.Mul(-1), normal)
	return math32.Pow(math32.Max(r.Dot(viewDir), 0), SpecularPower)
}

// Accumulate computes one light's contribution at one G-buffer pixel: RGB is
// the attenuated diffuse color, W is the attenuated specular scalar, kept
// separate so the compositor can add it unmodulated by albedo. The caller adds
// the result into the accumulation buffer; addition is commutative, so light
// order never matters.
func Accumulate(tex GBufferTexel, light Light, cameraPos mgl32.Vec3) mgl32.Vec4 {
	if tex.Material == MaterialNone {
		return mgl32.Vec4{}
	}
	toLight := light.Position.Sub(tex.Position)
	dist := toLight.Len()
	if dist == 0 {
		// Light exactly on the surface: full falloff, undefined direction.
		// The GLSL pass has no guard here and normalize(vec3(0)) yields NaN;
		// this branch diverges from the shader on that degenerate input.
		return mgl32.Vec4{light.Color.X(), light.Color.Y(), light.Color.Z(), 0}
	}
	l := toLight.Mul(1 / dist)
	v := cameraPos.Sub(tex.Position).Normalize()

	falloff := Falloff(dist, light.Intensity)
	diff := Diffuse(l, tex.Normal)
	spec := Specular(l, tex.Normal, v, tex.Material)

	return mgl32.Vec4{
		falloff * light.Color.X() * diff,
		falloff * light.Color.Y() * diff,
		falloff * light.Color.Z() * diff,
		falloff * spec,
	}
}

// AccumulateAmbient is the degraded glow/fog variant: no normal, no specular,
// fixed distance divisor. Used for non-directional pools of light.
func AccumulateAmbient(tex GBufferTexel, light Light) mgl32.Vec4 {
	if tex.Material == MaterialNone {
		return mgl32.Vec4{}
	}
	dist := light.Position.Sub(tex.Position).Len()
	falloff := Falloff(dist, AmbientIntensity)
	return mgl32.Vec4{
		falloff * light.Color.X(),
		falloff * light.Color.Y(),
		falloff * light.Color.Z(),
		0,
	}
}

func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * i.Dot(n)))
}
