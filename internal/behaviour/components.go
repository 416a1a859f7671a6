package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeMesh      ComponentType = "Mesh"
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypeBehaviour ComponentType = "Behaviour"
	ComponentTypeCollider  ComponentType = "Collider"
	ComponentTypeLight     ComponentType = "Light"
	ComponentTypeCamera    ComponentType = "Camera"
	ComponentTypeWater     ComponentType = "Water"
	ComponentTypeCustom    ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// MeshComponent holds a reference to a mesh/model
type MeshComponent struct {
	BaseComponent
	MeshPath    string `json:"mesh_path"`    // Path to the mesh file
	TexturePath string `json:"texture_path"` // Optional texture path

	// Shading properties
	MaterialClass int32      `json:"material_class"` // 0 default, 1 specular, 2 fullbright
	VertexColor   [4]float32 `json:"vertex_color"`

	// Runtime reference
	Model  interface{} `json:"-"` // The actual renderer.Model
	Loaded bool        `json:"-"` // Whether mesh has been loaded
}

func NewMeshComponent() *MeshComponent {
	return &MeshComponent{
		MaterialClass: 0,
		VertexColor:   [4]float32{1, 1, 1, 1},
		Loaded:        false,
	}
}

func (m *MeshComponent) GetComponentType() ComponentType {
	return ComponentTypeMesh
}

func (m *MeshComponent) GetTypeName() string {
	return "MeshComponent"
}

func (m *MeshComponent) SetMesh(mesh interface{}) {
	m.Model = mesh
	m.Loaded = true
	// Also set on GameObject if available
	if m.GetGameObject() != nil {
		m.GetGameObject().SetModel(mesh)
	}
}

func (m *MeshComponent) GetMesh() interface{} {
	return m.Model
}

// WaterComponent holds the water surface settings of a scene
type WaterComponent struct {
	BaseComponent
	OceanSize  float32    `json:"ocean_size"`
	GridCells  int32      `json:"grid_cells"`
	WaterLevel float32    `json:"water_level"`
	WaterColor [4]float32 `json:"water_color"`
	Glow       bool       `json:"glow"`

	// Wave shape: two crossed sine trains, directions and frequencies
	WaveDirU   [2]float32 `json:"wave_dir_u"`
	WaveDirV   [2]float32 `json:"wave_dir_v"`
	Frequency1 float32    `json:"frequency_1"`
	Frequency2 float32    `json:"frequency_2"`
	WaveSpeed1 float32    `json:"wave_speed_1"`
	WaveSpeed2 float32    `json:"wave_speed_2"`

	// Runtime references
	Surface   interface{} `json:"-"` // The water surface behaviour
	Generated bool        `json:"-"` // Whether the grid has been built
}

func NewWaterComponent() *WaterComponent {
	return &WaterComponent{
		OceanSize:  1000,
		GridCells:  64,
		WaterLevel: 0,
		WaterColor: [4]float32{0.25, 0.35, 0.55, 1},
		Glow:       false,
		WaveDirU:   [2]float32{1, 0.3},
		WaveDirV:   [2]float32{0.3, 1},
		Frequency1: 1.17,
		Frequency2: 0.93,
		WaveSpeed1: 2.0,
		WaveSpeed2: 1.7,
		Generated:  false,
	}
}

func (w *WaterComponent) GetComponentType() ComponentType {
	return ComponentTypeWater
}

func (w *WaterComponent) GetTypeName() string {
	return "WaterComponent"
}

// LightComponent holds light data
type LightComponent struct {
	BaseComponent
	Color     [4]float32 `json:"color"`
	Intensity float32    `json:"intensity"` // Distance divisor: bigger means wider pool
	Ambient   bool       `json:"ambient"`   // Glow/fog variant, ignores intensity
	Offset    mgl32.Vec3 `json:"-"`         // Offset from the owning object

	// Runtime reference
	LightData interface{} `json:"-"`
}

func NewLightComponent() *LightComponent {
	return &LightComponent{
		Color:     [4]float32{1, 1, 1, 1},
		Intensity: 10.0,
		Ambient:   false,
	}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return "LightComponent"
}

// CameraComponent holds camera data
type CameraComponent struct {
	BaseComponent
	FOV    float32
	Near   float32
	Far    float32
	IsMain bool // Is this the main game camera?

	// Runtime reference
	CameraData interface{}
}

func NewCameraComponent() *CameraComponent {
	return &CameraComponent{
		FOV:    45.0,
		Near:   0.1,
		Far:    10000.0,
		IsMain: false,
	}
}

func (c *CameraComponent) GetComponentType() ComponentType {
	return ComponentTypeCamera
}

func (c *CameraComponent) GetTypeName() string {
	return "CameraComponent"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// BuiltInComponents returns a list of built-in component types that can be added
func BuiltInComponents() []string {
	return []string{
		"MeshComponent",
		"WaterComponent",
		"LightComponent",
		"CameraComponent",
	}
}

// CreateBuiltInComponent creates a built-in component by name
func CreateBuiltInComponent(name string) Component {
	switch name {
	case "MeshComponent":
		return NewMeshComponent()
	case "WaterComponent":
		return NewWaterComponent()
	case "LightComponent":
		return NewLightComponent()
	case "CameraComponent":
		return NewCameraComponent()
	default:
		return nil
	}
}
