package renderer

import (
	"fmt"

	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DeferredPipeline owns the pass sequence of a frame: geometry and water into
// the G-buffer, per-light accumulation into the HDR light buffer, the
// composite to screen, then the immediate path on top. One instance per
// window; all methods must run on the GL thread.
type DeferredPipeline struct {
	config PipelineConfig

	gbuffer     *GBuffer
	lightBuffer *LightBuffer

	geometryShader  Shader
	waterShader     Shader
	lightShader     Shader
	compositeShader Shader
	immediateShader Shader

	geometryUniforms  *UniformCache
	lightUniforms     *UniformCache
	immediateUniforms *UniformCache

	quadVAO uint32
	quadVBO uint32

	viewProjection mgl32.Mat4
	width          int32
	height         int32
}

// NewDeferredPipeline compiles every pass program, checks each against its
// declared bindings, and allocates the offscreen buffers. Any mismatch
// between a shader and its binding contract fails here.
func NewDeferredPipeline(width, height int32, config PipelineConfig) (*DeferredPipeline, error) {
	p := &DeferredPipeline{
		config:          config,
		geometryShader:  InitGeometryShader(),
		waterShader:     InitWaterShader(),
		lightShader:     InitLightShader(),
		compositeShader: InitCompositeShader(),
		immediateShader: InitImmediateShader(),
		width:           width,
		height:          height,
	}

	passes := []struct {
		shader   *Shader
		bindings PassBindings
	}{
		{&p.geometryShader, geometryBindings()},
		{&p.waterShader, waterBindings()},
		{&p.lightShader, lightBindings()},
		{&p.compositeShader, compositeBindings()},
		{&p.immediateShader, immediateBindings()},
	}
	for _, pass := range passes {
		if err := pass.shader.Compile(); err != nil {
			return nil, fmt.Errorf("pass %s: %w", pass.bindings.Name, err)
		}
		if err := pass.bindings.Validate(pass.shader.Program()); err != nil {
			return nil, err
		}
		pass.shader.Use()
		pass.bindings.BindSamplers(pass.shader)
	}

	p.geometryUniforms = NewUniformCache(p.geometryShader.Program())
	p.lightUniforms = NewUniformCache(p.lightShader.Program())
	p.immediateUniforms = NewUniformCache(p.immediateShader.Program())

	var err error
	if p.gbuffer, err = NewGBuffer(width, height); err != nil {
		return nil, err
	}
	if p.lightBuffer, err = NewLightBuffer(width, height); err != nil {
		p.gbuffer.Destroy()
		return nil, err
	}

	p.initQuad()

	logger.Log.Info("Deferred pipeline ready",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Bool("materialAware", config.MaterialAware))
	return p, nil
}

// initQuad uploads the fullscreen triangle pair shared by the light and
// composite passes, position-only vec2 in clip space.
func (p *DeferredPipeline) initQuad() {
	quad := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.GenVertexArrays(1, &p.quadVAO)
	gl.BindVertexArray(p.quadVAO)
	gl.GenBuffers(1, &p.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (p *DeferredPipeline) drawQuad() {
	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (p *DeferredPipeline) Config() PipelineConfig {
	return p.config
}

func (p *DeferredPipeline) SetConfig(config PipelineConfig) {
	p.config = config
}

// BeginGeometry opens the G-buffer pass: clears all attachments (material
// channel to the no-geometry sentinel), enables depth testing and disables
// blending. Draw calls until BeginLights rasterize into the G-buffer.
func (p *DeferredPipeline) BeginGeometry(camera *Camera) {
	p.viewProjection = camera.GetViewProjection()

	p.gbuffer.Bind()
	gl.Viewport(0, 0, p.width, p.height)
	p.gbuffer.Clear()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)

	p.geometryShader.Use()
	p.geometryUniforms.SetMat4("viewProjection", p.viewProjection)
}

// DrawModel encodes one mesh into the G-buffer. The material code rides the
// normal buffer's fourth channel; texels whose combined alpha is exactly
// zero are discarded in the shader, leaving the cleared sentinel behind.
func (p *DeferredPipeline) DrawModel(model *Model) {
	p.geometryShader.Use()
	p.geometryUniforms.SetMat4("model", model.CalculateModelMatrix())
	p.geometryUniforms.SetFloat("material", float32(model.MaterialClass))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, model.TextureID)
	model.Draw()
}

// DrawWater renders the animated water surface into the G-buffer. The grid
// carries positions only; normals, albedo and material come from the wave
// functions of the fragment shader, driven by elapsed time. glow selects the
// decorative variant; the surface owns the flag.
func (p *DeferredPipeline) DrawWater(grid *WaterGrid, elapsed float32, glow bool) {
	w := p.config.Water

	p.waterShader.Use()
	p.waterShader.SetMat4("viewProjection", p.viewProjection)
	p.waterShader.SetFloat("time", elapsed)
	if glow {
		p.waterShader.SetInt("glow", 1)
	} else {
		p.waterShader.SetInt("glow", 0)
	}
	p.waterShader.SetVec2("waveU", w.UX, w.UZ)
	p.waterShader.SetVec2("waveV", w.VX, w.VZ)
	p.waterShader.SetFloat("k1", w.K1)
	p.waterShader.SetFloat("k2", w.K2)
	p.waterShader.SetFloat("w1", w.W1)
	p.waterShader.SetFloat("w2", w.W2)
	p.waterShader.SetVec4("waterColor", w.Albedo)
	grid.Draw()
}

// BeginLights closes the G-buffer pass and opens accumulation: the light
// buffer is cleared to its faint base, depth testing goes off, and blending
// switches to pure addition so each light draw sums into the total.
func (p *DeferredPipeline) BeginLights(camera *Camera) {
	p.lightBuffer.Bind()
	gl.Viewport(0, 0, p.width, p.height)
	p.lightBuffer.Clear()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	p.gbuffer.BindTextures()

	p.lightShader.Use()
	p.lightUniforms.SetVec2("buffer_size", float32(p.width), float32(p.height))
	p.lightUniforms.SetVec3("camera_pos", camera.Position.X(), camera.Position.Y(), camera.Position.Z())
}

// DrawLight accumulates one light with a fullscreen draw. Lights with a
// non-positive intensity are rejected, and lights whose center projects
// outside the screen bound are skipped; both return false.
func (p *DeferredPipeline) DrawLight(light Light) bool {
	if !light.Ambient && light.Intensity <= 0 {
		logger.Log.Warn("Rejecting light with non-positive intensity",
			zap.Float32("intensity", light.Intensity))
		return false
	}
	radius := shading.Radius(light.Intensity, p.config.LightCullCutoff)
	if p.lightOffScreen(light.Position, radius) {
		return false
	}

	p.lightUniforms.SetVec4("light_color", light.Color)
	p.lightUniforms.SetVec3("light_pos", light.Position.X(), light.Position.Y(), light.Position.Z())
	p.lightUniforms.SetFloat("light_intensity", light.Intensity)
	if light.Ambient {
		p.lightUniforms.SetInt("ambient", 1)
	} else {
		p.lightUniforms.SetInt("ambient", 0)
	}
	p.drawQuad()
	return true
}

// DrawLights accumulates a whole set and reports how many draws ran.
func (p *DeferredPipeline) DrawLights(set *LightSet) int {
	drawn := 0
	for _, light := range set.Lights() {
		if p.DrawLight(light) {
			drawn++
		}
	}
	return drawn
}

// lightOffScreen projects the light center and checks it, padded by the
// light's falloff radius, against the NDC cull bound. Lights whose whole pool
// sits behind the camera or outside the frame contribute nothing worth a
// fullscreen draw.
func (p *DeferredPipeline) lightOffScreen(position mgl32.Vec3, radius float32) bool {
	clip := p.viewProjection.Mul4x1(position.Vec4(1))
	if clip.W() <= -radius {
		return true
	}
	if clip.W() < 0.001 {
		// Straddling the near plane; keep it.
		return false
	}
	bound := p.config.LightCullBound + radius/clip.W()
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return ndcX < -bound || ndcX > bound || ndcY < -bound || ndcY > bound
}

// Composite resolves the frame to the default framebuffer: accumulated light
// times albedo, plus the separately summed specular, with fullbright pixels
// forced to white light when the material-aware variant is on.
func (p *DeferredPipeline) Composite() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, p.width, p.height)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	p.gbuffer.BindTextures()
	p.lightBuffer.BindTexture()

	p.compositeShader.Use()
	p.compositeShader.SetVec2("buffer_size", float32(p.width), float32(p.height))
	if p.config.MaterialAware {
		p.compositeShader.SetInt("material_aware", 1)
	} else {
		p.compositeShader.SetInt("material_aware", 0)
	}
	p.drawQuad()
}

// BeginImmediate opens the forward path on top of the composited frame:
// standard alpha blending, depth off, drawing straight to the screen.
func (p *DeferredPipeline) BeginImmediate(camera *Camera) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	p.immediateShader.Use()
	p.immediateUniforms.SetMat4("viewProjection", camera.GetViewProjection())
}

// DrawImmediate draws one model on the forward path with fixed-direction
// vertex lighting.
func (p *DeferredPipeline) DrawImmediate(model *Model) {
	p.immediateUniforms.SetMat4("model", model.CalculateModelMatrix())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, model.TextureID)
	model.Draw()
}

// Resize throws away and reallocates the offscreen buffers at the new size.
func (p *DeferredPipeline) Resize(width, height int32) error {
	if width == p.width && height == p.height {
		return nil
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	p.gbuffer.Destroy()
	p.lightBuffer.Destroy()

	var err error
	if p.gbuffer, err = NewGBuffer(width, height); err != nil {
		return err
	}
	if p.lightBuffer, err = NewLightBuffer(width, height); err != nil {
		return err
	}
	p.width = width
	p.height = height
	return nil
}

func (p *DeferredPipeline) Destroy() {
	gl.DeleteBuffers(1, &p.quadVBO)
	gl.DeleteVertexArrays(1, &p.quadVAO)
	p.gbuffer.Destroy()
	p.lightBuffer.Destroy()
}
