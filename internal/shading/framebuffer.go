package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AccumClearColor is the per-frame clear of the light accumulation buffer: a
// faint grey base so unlit geometry is not pitch black, alpha (specular) zero.
var AccumClearColor = mgl32.Vec4{0.05, 0.05, 0.05, 0}

// Framebuffer is the CPU mirror of the GPU buffer set: a G-buffer, an HDR
// light accumulation buffer and a composited output, all W×H. It runs the same
// pass sequence as the GL pipeline over plain arrays and exists as the
// reference the GPU path is checked against.
type Framebuffer struct {
	Width, Height int

	GBuffer []GBufferTexel
	Accum   []mgl32.Vec4
	Output  []mgl32.Vec3
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:   width,
		Height:  height,
		GBuffer: make([]GBufferTexel, width*height),
		Accum:   make([]mgl32.Vec4, width*height),
		Output:  make([]mgl32.Vec3, width*height),
	}
	fb.ClearGBuffer()
	fb.ClearAccum()
	return fb
}

// ClearGBuffer resets every pixel to the no-geometry sentinel. Must run before
// the geometry pass each frame.
func (fb *Framebuffer) ClearGBuffer() {
	for i := range fb.GBuffer {
		fb.GBuffer[i] = ClearedTexel()
	}
}

// ClearAccum resets the accumulation buffer to AccumClearColor.
func (fb *Framebuffer) ClearAccum() {
	for i := range fb.Accum {
		fb.Accum[i] = AccumClearColor
	}
}

// WriteFragment stores one geometry-pass result. The caller runs
// EncodeFragment first; a discarded fragment must simply not be written.
func (fb *Framebuffer) WriteFragment(x, y int, tex GBufferTexel) {
	fb.GBuffer[y*fb.Width+x] = tex
}

func (fb *Framebuffer) At(x, y int) GBufferTexel {
	return fb.GBuffer[y*fb.Width+x]
}

// RenderLight adds one light's contribution at every pixel. Additive blending
// makes accumulation across lights order-independent.
func (fb *Framebuffer) RenderLight(light Light, cameraPos mgl32.Vec3) {
	for i, tex := range fb.GBuffer {
		fb.Accum[i] = fb.Accum[i].Add(Accumulate(tex, light, cameraPos))
	}
}

// RenderAmbient adds one glow/fog light at every pixel.
func (fb *Framebuffer) RenderAmbient(light Light) {
	for i, tex := range fb.GBuffer {
		fb.Accum[i] = fb.Accum[i].Add(AccumulateAmbient(tex, light))
	}
}

// CompositeAll produces the final color at every pixel from the accumulation
// and albedo buffers.
func (fb *Framebuffer) CompositeAll(materialAware bool) {
	for i, tex := range fb.GBuffer {
		if materialAware {
			fb.Output[i] = Composite(fb.Accum[i], tex.Albedo, tex.Material)
		} else {
			fb.Output[i] = CompositeSimple(fb.Accum[i], tex.Albedo)
		}
	}
}
