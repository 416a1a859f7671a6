package renderer

import (
	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the interleaved layout consumed by the geometry and
// immediate passes: position (3), color (4), texcoord (2), normal (3).
const VertexStride = 12

// Model is one drawable mesh instance. The transform fields feed the lazily
// recalculated model matrix; MaterialClass is written per draw into the
// G-buffer's material channel.
type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix   mgl32.Mat4
	Position      mgl32.Vec3
	Scale         mgl32.Vec3
	Rotation      mgl32.Quat
	MaterialClass shading.MaterialCode
	TextureID     uint32
	VAO           uint32
	VBO           uint32
	EBO           uint32
	IsDirty       bool

	// COLD DATA - Initialization only
	Id              int
	Name            string
	InterleavedData []float32
	Faces           []int32
}

// NewModel wraps interleaved vertex data and a face index list. Upload must
// run on the GL thread before the model is drawn.
func NewModel(name string, interleaved []float32, faces []int32) *Model {
	return &Model{
		Name:            name,
		Position:        mgl32.Vec3{0, 0, 0},
		Scale:           mgl32.Vec3{1, 1, 1},
		Rotation:        mgl32.QuatIdent(),
		ModelMatrix:     mgl32.Ident4(),
		MaterialClass:   shading.MaterialDefault,
		InterleavedData: interleaved,
		Faces:           faces,
		IsDirty:         true,
	}
}

func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) SetRotation(rotation mgl32.Quat) {
	m.Rotation = rotation
	m.IsDirty = true
}

// Accessors satisfying behaviour.ModelInterface, so a GameObject can drive
// this model's transform through the component manager.
func (m *Model) GetPosition() mgl32.Vec3 {
	return m.Position
}

func (m *Model) GetRotation() mgl32.Quat {
	return m.Rotation
}

func (m *Model) GetScale() mgl32.Vec3 {
	return m.Scale
}

func (m *Model) SetPositionVec(position mgl32.Vec3) {
	m.Position = position
	m.IsDirty = true
}

func (m *Model) SetRotationQuat(rotation mgl32.Quat) {
	m.Rotation = rotation
	m.IsDirty = true
}

func (m *Model) SetScaleVec(scale mgl32.Vec3) {
	m.Scale = scale
	m.IsDirty = true
}

func (m *Model) MarkDirty() {
	m.IsDirty = true
}

// CalculateModelMatrix rebuilds the cached matrix when a transform changed.
func (m *Model) CalculateModelMatrix() mgl32.Mat4 {
	if m.IsDirty {
		translation := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())
		rotation := m.Rotation.Mat4()
		scale := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
		m.ModelMatrix = translation.Mul4(rotation).Mul4(scale)
		m.IsDirty = false
	}
	return m.ModelMatrix
}

// Upload creates the VAO/VBO/EBO triplet and describes the interleaved
// layout. Attribute slots match the geometry and immediate pass bindings.
func (m *Model) Upload() {
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.InterleavedData)*4, gl.Ptr(m.InterleavedData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Faces)*4, gl.Ptr(m.Faces), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(7*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, gl.PtrOffset(9*4))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
}

// Draw issues the indexed draw. The caller binds the pass shader and uploads
// per-draw uniforms first.
func (m *Model) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(m.Faces)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *Model) Destroy() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteBuffers(1, &m.EBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}
