package engine

import (
	behaviour "github.com/SiegeLord/Voidwind/internal/behaviour"
	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/SiegeLord/Voidwind/internal/renderer"
	"github.com/SiegeLord/Voidwind/internal/water"
	"runtime"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Initialize to the center of the window
var lastX, lastY float64
var firstMouse bool = true

// Voidwind owns the window, the deferred pipeline and the scene lists, and
// runs the frame loop. Models and lights submitted from behaviours go through
// the channels; the loop drains them on the GL thread.
type Voidwind struct {
	Width             int32
	Height            int32
	ModelChan         chan *renderer.Model
	Camera            *renderer.Camera
	EnableCameraInput bool // Control whether camera processes keyboard/mouse input

	pipeline *renderer.DeferredPipeline
	config   renderer.PipelineConfig
	window   *glfw.Window
	textures *renderer.TextureManager

	models          []*renderer.Model
	immediateModels []*renderer.Model
	lights          *renderer.LightSet
	waterSurface    *water.Surface

	frameTrackId     int
	onRenderCallback func(deltaTime float64) // Optional callback for overlays
}

func NewVoidwind() *Voidwind {
	logger.Init()
	logger.Log.Info("Voidwind initializing...")
	return &Voidwind{
		Width:             1024,
		Height:            768,
		ModelChan:         make(chan *renderer.Model, 1024),
		config:            renderer.DefaultPipelineConfig(),
		textures:          renderer.NewTextureManager(),
		lights:            renderer.NewLightSet(),
		frameTrackId:      0,
		EnableCameraInput: true, // Enabled by default
	}
}

// SetPipelineConfig replaces the pipeline settings. Takes effect next frame.
func (vw *Voidwind) SetPipelineConfig(config renderer.PipelineConfig) {
	vw.config = config
	if vw.pipeline != nil {
		vw.pipeline.SetConfig(config)
	}
}

func (vw *Voidwind) PipelineConfig() renderer.PipelineConfig {
	return vw.config
}

// Render opens the window at the given position and runs the frame loop until
// the window closes. Blocks; must be called from the main goroutine.
func (vw *Voidwind) Render(x, y int) {
	lastX, lastY = float64(vw.Width/2), float64(vw.Height/2)
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	vw.window, err = glfw.CreateWindow(int(vw.Width), int(vw.Height), "Voidwind", nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return
	}

	vw.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return
	}
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	vw.window.SetPos(x, y)
	SetDarkTitleBar(vw.window)

	vw.pipeline, err = renderer.NewDeferredPipeline(vw.Width, vw.Height, vw.config)
	if err != nil {
		logger.Log.Error("Could not assemble deferred pipeline", zap.Error(err))
		return
	}
	defer vw.pipeline.Destroy()

	// Fixed camera in each scene for now
	vw.Camera = renderer.NewDefaultCamera(vw.Height, vw.Width)

	vw.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	vw.window.SetCursorPosCallback(vw.mouseCallback)

	vw.RenderLoop()
}

func (vw *Voidwind) RenderLoop() {
	var lastTime = glfw.GetTime()
	var lastWidth, lastHeight int32 = vw.Width, vw.Height

	for !vw.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		// Check actual window size and update if it changed
		actualWidth, actualHeight := vw.window.GetSize()
		if int32(actualWidth) != vw.Width || int32(actualHeight) != vw.Height {
			vw.Width = int32(actualWidth)
			vw.Height = int32(actualHeight)
		}
		if vw.Width != lastWidth || vw.Height != lastHeight {
			if err := vw.pipeline.Resize(vw.Width, vw.Height); err != nil {
				logger.Log.Error("Pipeline resize failed", zap.Error(err))
			}
			vw.Camera.SetAspectRatio(float32(vw.Width) / float32(vw.Height))
			lastWidth, lastHeight = vw.Width, vw.Height
		}

		if vw.EnableCameraInput {
			vw.Camera.ProcessKeyboard(vw.window, float32(deltaTime))
		}

		if vw.frameTrackId >= 2 {
			behaviour.GlobalBehaviourManager.UpdateAllFixed()
			behaviour.GlobalComponentManager.FixedUpdateAll()
			vw.frameTrackId = 0
		}
		behaviour.GlobalBehaviourManager.UpdateAll()
		behaviour.GlobalComponentManager.UpdateAll()

		vw.drainModelChan()
		vw.renderFrame()

		if vw.onRenderCallback != nil {
			vw.onRenderCallback(deltaTime)
		}

		vw.window.SwapBuffers()
		vw.frameTrackId++
		glfw.PollEvents()
	}

	vw.cleanup()
}

// drainModelChan uploads models submitted from behaviours since last frame.
func (vw *Voidwind) drainModelChan() {
	for {
		select {
		case model := <-vw.ModelChan:
			vw.addModelNow(model)
		default:
			return
		}
	}
}

func (vw *Voidwind) addModelNow(model *renderer.Model) {
	if model.VAO == 0 {
		model.Upload()
	}
	if model.TextureID == 0 {
		white, err := vw.textures.WhiteTexture()
		if err != nil {
			logger.Log.Error("Could not create default texture", zap.Error(err))
		} else {
			model.TextureID = white
		}
	}
	vw.models = append(vw.models, model)
}

// renderFrame runs the full pass sequence: geometry and water into the
// G-buffer, one accumulation draw per light, the composite to screen, then
// the immediate path for overlays.
func (vw *Voidwind) renderFrame() {
	vw.pipeline.BeginGeometry(vw.Camera)
	if vw.waterSurface != nil {
		vw.waterSurface.Draw(vw.pipeline)
	}
	for _, model := range vw.models {
		vw.pipeline.DrawModel(model)
	}

	vw.pipeline.BeginLights(vw.Camera)
	vw.pipeline.DrawLights(vw.lights)

	vw.pipeline.Composite()

	if len(vw.immediateModels) > 0 {
		vw.pipeline.BeginImmediate(vw.Camera)
		for _, model := range vw.immediateModels {
			vw.pipeline.DrawImmediate(model)
		}
	}
}

func (vw *Voidwind) cleanup() {
	for _, model := range vw.models {
		model.Destroy()
	}
	for _, model := range vw.immediateModels {
		model.Destroy()
	}
	if vw.waterSurface != nil {
		vw.waterSurface.Destroy()
	}
	vw.textures.Clear()
}

// SetOnRenderCallback sets a callback that runs each frame after the scene
func (vw *Voidwind) SetOnRenderCallback(callback func(deltaTime float64)) {
	vw.onRenderCallback = callback
}

// SetWater installs the scene's water surface and registers its behaviour so
// the animation clock ticks with the frame loop. A GlowWater pipeline config
// turns the surface's glow variant on; a surface that already asked for glow
// keeps it either way.
func (vw *Voidwind) SetWater(surface *water.Surface) {
	if vw.config.GlowWater {
		surface.Glow = true
	}
	vw.waterSurface = surface
	behaviour.GlobalBehaviourManager.Add(surface)
}

func (vw *Voidwind) Water() *water.Surface {
	return vw.waterSurface
}

// AddModel registers a model for the deferred path. Safe on the GL thread
// only; behaviours should submit through ModelChan instead.
func (vw *Voidwind) AddModel(model *renderer.Model) {
	vw.addModelNow(model)
}

func (vw *Voidwind) RemoveModel(model *renderer.Model) {
	for i, m := range vw.models {
		if m == model {
			vw.models = append(vw.models[:i], vw.models[i+1:]...)
			model.Destroy()
			return
		}
	}
}

// AddImmediateModel registers a model for the forward path drawn after the
// composite, on top of the lit frame.
func (vw *Voidwind) AddImmediateModel(model *renderer.Model) {
	if model.VAO == 0 {
		model.Upload()
	}
	if model.TextureID == 0 {
		if white, err := vw.textures.WhiteTexture(); err == nil {
			model.TextureID = white
		}
	}
	vw.immediateModels = append(vw.immediateModels, model)
}

// Lights exposes the frame's light set. Behaviours add and clear lights here.
func (vw *Voidwind) Lights() *renderer.LightSet {
	return vw.lights
}

// LoadTexture loads (or fetches from cache) a texture for model albedo.
func (vw *Voidwind) LoadTexture(path string) (uint32, error) {
	return vw.textures.LoadTexture(path)
}

func (vw *Voidwind) GetMousePosition() mgl.Vec2 {
	x, y := vw.window.GetCursorPos()
	return mgl.Vec2{float32(x), float32(y)}
}

func (vw *Voidwind) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return vw.window.GetMouseButton(button) == glfw.Press
}

// GetWindow returns the GLFW window (for advanced use)
func (vw *Voidwind) GetWindow() *glfw.Window {
	return vw.window
}

// Mouse callback function
func (vw *Voidwind) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	// Only look around while the right mouse button is down and camera input
	// is enabled.
	if vw.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		vw.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
