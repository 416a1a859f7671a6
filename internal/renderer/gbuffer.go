package renderer

import (
	"fmt"

	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// GBuffer is the per-frame intermediate buffer set of the deferred pipeline:
// world position (RGBA16F, attachment 0), normal + material code (RGBA16F,
// attachment 1), albedo (RGBA8, attachment 2) and a depth renderbuffer. All
// color attachments use NEAREST filtering; the lighting pass addresses exact
// pixels, never filtered footprints.
type GBuffer struct {
	frameBuffer       uint32
	positionTex       uint32
	normalTex         uint32
	albedoTex         uint32
	depthRenderBuffer uint32
	width             int32
	height            int32
}

func NewGBuffer(width, height int32) (*GBuffer, error) {
	g := &GBuffer{width: width, height: height}

	gl.GenFramebuffers(1, &g.frameBuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, g.frameBuffer)

	g.positionTex = newTargetTexture(gl.RGBA16F, width, height, gl.FLOAT)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, g.positionTex, 0)

	g.normalTex = newTargetTexture(gl.RGBA16F, width, height, gl.FLOAT)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.TEXTURE_2D, g.normalTex, 0)

	g.albedoTex = newTargetTexture(gl.RGBA, width, height, gl.UNSIGNED_BYTE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT2, gl.TEXTURE_2D, g.albedoTex, 0)

	attachments := []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2}
	gl.DrawBuffers(int32(len(attachments)), &attachments[0])

	gl.GenRenderbuffers(1, &g.depthRenderBuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, g.depthRenderBuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, g.depthRenderBuffer)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		g.Destroy()
		return nil, fmt.Errorf("g-buffer framebuffer not complete (%dx%d)", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	logger.Log.Info("G-buffer allocated", zap.Int32("width", width), zap.Int32("height", height))
	return g, nil
}

// Bind makes the G-buffer the draw target and re-issues the attachment list.
func (g *GBuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, g.frameBuffer)
	attachments := []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2}
	gl.DrawBuffers(int32(len(attachments)), &attachments[0])
}

// Clear resets the buffer set for a new frame: position and albedo to zero,
// the normal buffer to the no-geometry sentinel in its material channel, and
// depth to the far plane. Must run with the G-buffer bound, before any
// geometry draws.
func (g *GBuffer) Clear() {
	position := [4]float32{0, 0, 0, 0}
	normal := [4]float32{0, 0, 0, float32(shading.MaterialNone)}
	albedo := [4]float32{0, 0, 0, 0}
	depth := float32(1)
	gl.ClearBufferfv(gl.COLOR, 0, &position[0])
	gl.ClearBufferfv(gl.COLOR, 1, &normal[0])
	gl.ClearBufferfv(gl.COLOR, 2, &albedo[0])
	gl.ClearBufferfv(gl.DEPTH, 0, &depth)
}

// BindTextures attaches the position and normal buffers to texture units 0
// and 1 (the light pass inputs), and albedo to unit 2 for the compositor.
func (g *GBuffer) BindTextures() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.positionTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, g.normalTex)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, g.albedoTex)
}

func (g *GBuffer) Size() (int32, int32) {
	return g.width, g.height
}

func (g *GBuffer) Destroy() {
	gl.DeleteTextures(1, &g.positionTex)
	gl.DeleteTextures(1, &g.normalTex)
	gl.DeleteTextures(1, &g.albedoTex)
	gl.DeleteRenderbuffers(1, &g.depthRenderBuffer)
	gl.DeleteFramebuffers(1, &g.frameBuffer)
}

// LightBuffer is the HDR accumulation target of the light pass: a single
// RGBA16F attachment whose RGB holds summed diffuse light and whose alpha
// holds the summed specular scalar.
type LightBuffer struct {
	frameBuffer uint32
	colorTex    uint32
	width       int32
	height      int32
}

func NewLightBuffer(width, height int32) (*LightBuffer, error) {
	lb := &LightBuffer{width: width, height: height}

	gl.GenFramebuffers(1, &lb.frameBuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, lb.frameBuffer)

	lb.colorTex = newTargetTexture(gl.RGBA16F, width, height, gl.FLOAT)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, lb.colorTex, 0)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		lb.Destroy()
		return nil, fmt.Errorf("light buffer framebuffer not complete (%dx%d)", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return lb, nil
}

func (lb *LightBuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, lb.frameBuffer)
}

// Clear resets the accumulation to its faint grey base with zero specular.
func (lb *LightBuffer) Clear() {
	c := shading.AccumClearColor
	clear := [4]float32{c.X(), c.Y(), c.Z(), c.W()}
	gl.ClearBufferfv(gl.COLOR, 0, &clear[0])
}

// BindTexture attaches the accumulation texture to unit 3 for the compositor.
func (lb *LightBuffer) BindTexture() {
	gl.ActiveTexture(gl.TEXTURE3)
	gl.BindTexture(gl.TEXTURE_2D, lb.colorTex)
}

func (lb *LightBuffer) Destroy() {
	gl.DeleteTextures(1, &lb.colorTex)
	gl.DeleteFramebuffers(1, &lb.frameBuffer)
}

func newTargetTexture(internalFormat int32, width, height int32, pixelType uint32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, gl.RGBA, pixelType, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return tex
}
