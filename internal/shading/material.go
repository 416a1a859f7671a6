// Package shading implements the per-pixel math of the deferred pipeline in
// plain Go. The GLSL programs in internal/renderer mirror these functions; the
// host uses them for light radius estimates and clear sentinels, and the tests
// run against them directly.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialCode selects the lighting behavior of a G-buffer pixel. It is stored
// in the fourth channel of the normal buffer and only ever compared by exact
// equality against these constants.
type MaterialCode int32

const (
	// MaterialNone is the clear sentinel: no geometry was written this frame.
	MaterialNone MaterialCode = -1
	// MaterialDefault is diffuse-only shading.
	MaterialDefault MaterialCode = 0
	// MaterialSpecular enables the specular term in the light pass.
	MaterialSpecular MaterialCode = 1
	// MaterialFullbright bypasses accumulated lighting in the compositor.
	MaterialFullbright MaterialCode = 2
)

// GBufferTexel is one pixel of the G-buffer as the geometry pass writes it.
type GBufferTexel struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Material MaterialCode
	Albedo   mgl32.Vec4
}

// ClearedTexel returns the state of a G-buffer pixel after the per-frame clear,
// before any geometry has been drawn.
func ClearedTexel() GBufferTexel {
	return GBufferTexel{Material: MaterialNone}
}

// EncodeFragment is the fragment stage of the geometry pass: modulate the
// sampled texel by the interpolated vertex color and pack it with world
// position, normalized normal and the per-draw material constant.
//
// A texel with alpha exactly zero is discarded: ok is false and none of the
// three buffers may be written for that pixel.
func EncodeFragment(worldPos, normal mgl32.Vec3, mat MaterialCode, texel, vertexColor mgl32.Vec4) (out GBufferTexel, ok bool) {
	albedo := mulVec4(texel, vertexColor)
	if albedo.W() == 0 {
		return GBufferTexel{}, false
	}
	return GBufferTexel{
		Position: worldPos,
		Normal:   normal.Normalize(),
		Material: mat,
		Albedo:   albedo,
	}, true
}

func mulVec4(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z(), a.W() * b.W()}
}
