package renderer

import (
	"fmt"
	"strings"

	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) IsCompiled() bool {
	return shader.isCompiled
}

// Compile builds and links the program. Safe to call more than once.
func (shader *Shader) Compile() error {
	if shader.isCompiled {
		return nil
	}
	vertex, err := compileStage(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fragment, err := compileStage(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return err
	}
	program, err := linkProgram(vertex, fragment)
	if err != nil {
		gl.DeleteShader(vertex)
		gl.DeleteShader(fragment)
		return err
	}
	shader.program = program
	shader.isCompiled = true
	return nil
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetVec4(name string, value mgl32.Vec4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform4f(location, value.X(), value.Y(), value.Z(), value.W())
}

func (shader *Shader) SetVec2(name string, x, y float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform2f(location, x, y)
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

func compileStage(source string, shaderType uint32) (uint32, error) {
	stage := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(stage, 1, cSources, nil)
	free()
	gl.CompileShader(stage)

	var status int32
	gl.GetShaderiv(stage, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(stage, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(stage, logLength, nil, gl.Str(log))
		logger.Log.Error("Failed to compile shader stage", zap.Uint32("type", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("shader stage compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return stage, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		logger.Log.Error("Failed to link program", zap.String("log", log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link failed: %s", strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

// Geometry pass: rasterize scene meshes into the G-buffer. The per-draw
// `material` uniform carries the material code into the normal buffer's fourth
// channel; a texel with alpha exactly zero is discarded so the cleared
// sentinel survives at that pixel.
var geometryVertexSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec4 inColor;
layout(location = 2) in vec2 inTexCoord;
layout(location = 3) in vec3 inNormal;

uniform mat4 viewProjection;
uniform mat4 model;

out vec3 worldPos;
out vec4 vertexColor;
out vec2 fragTexCoord;
out vec3 worldNormal;

void main() {
    vec4 wp = model * vec4(inPosition, 1.0);
    worldPos = wp.xyz;
    worldNormal = mat3(model) * inNormal;
    vertexColor = inColor;
    fragTexCoord = inTexCoord;
    gl_Position = viewProjection * wp;
}
` + "\x00"

var geometryFragmentSource = `#version 330 core

in vec3 worldPos;
in vec4 vertexColor;
in vec2 fragTexCoord;
in vec3 worldNormal;

uniform sampler2D albedoSampler;
uniform float material;

layout(location = 0) out vec4 outPosition;
layout(location = 1) out vec4 outNormal;
layout(location = 2) out vec4 outAlbedo;

void main() {
    vec4 texel = texture(albedoSampler, fragTexCoord) * vertexColor;
    if (texel.a == 0.0)
        discard;
    outPosition = vec4(worldPos, 1.0);
    outNormal = vec4(normalize(worldNormal), material);
    outAlbedo = texel;
}
` + "\x00"

// Water pass: position-only vertices already in world space, everything else
// synthesized from the time uniform. glow = 1 selects the decorative variant,
// which writes a fullbright material so the compositor leaves it unlit.
var waterVertexSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;

out vec3 worldPos;

void main() {
    worldPos = inPosition;
    gl_Position = viewProjection * vec4(inPosition, 1.0);
}
` + "\x00"

var waterFragmentSource = `#version 330 core

in vec3 worldPos;

uniform float time;
uniform int glow;
uniform vec2 waveU;
uniform vec2 waveV;
uniform float k1;
uniform float k2;
uniform float w1;
uniform float w2;
uniform vec4 waterColor;

layout(location = 0) out vec4 outPosition;
layout(location = 1) out vec4 outNormal;
layout(location = 2) out vec4 outAlbedo;

void main() {
    outPosition = vec4(worldPos, 1.0);
    if (glow == 1) {
        float arg = (worldPos.x + worldPos.z) * k1 + time * w1;
        float g = 0.5 + 0.5 * sin(arg);
        outNormal = vec4(0.0, 1.0, 0.0, 2.0);
        outAlbedo = vec4(0.1 * g, 0.2 + 0.2 * g, 0.5 + 0.5 * g, 1.0);
        return;
    }
    float u = waveU.x * worldPos.x + waveU.y * worldPos.z;
    float v = waveV.x * worldPos.x + waveV.y * worldPos.z;
    float phase2 = sin(u * k1 + time * w1);
    float phase1 = sin(v * k2 + phase2 + time * w2);
    float slope = sign(phase1) * sqrt(abs(phase1));
    outNormal = vec4(normalize(vec3(0.5 * slope, 1.0, phase2)), 0.0);
    outAlbedo = waterColor;
}
` + "\x00"

// Light pass: one fullscreen draw per light, additively blended into the HDR
// buffer. RGB carries the attenuated diffuse color, alpha the attenuated
// specular scalar. ambient = 1 is the glow/fog variant with a fixed divisor.
var lightVertexSource = `#version 330 core

layout(location = 0) in vec2 inPosition;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

var lightFragmentSource = `#version 330 core

uniform sampler2D position_buffer;
uniform sampler2D normal_buffer;
uniform vec4 light_color;
uniform vec3 light_pos;
uniform float light_intensity;
uniform vec2 buffer_size;
uniform vec3 camera_pos;
uniform int ambient;

out vec4 outLight;

void main() {
    vec2 uv = gl_FragCoord.xy / buffer_size;
    vec3 pos = texture(position_buffer, uv).xyz;
    vec4 nm = texture(normal_buffer, uv);
    if (nm.w < 0.0)
        discard;
    if (ambient == 1) {
        vec3 da = (light_pos - pos) / 5.0;
        float dda = dot(da, da);
        outLight = vec4(light_color.rgb / (1.0 + dda * dda), 0.0);
        return;
    }
    vec3 norm = nm.xyz;
    float material = nm.w;
    vec3 l = normalize(light_pos - pos);
    vec3 v = normalize(camera_pos - pos);
    float diff = abs(max(dot(l, norm), 0.0));
    float spec = 0.0;
    if (material == 1.0)
        spec = pow(max(dot(reflect(-l, norm), v), 0.0), 20.0);
    vec3 d = (light_pos - pos) / light_intensity;
    float dd = dot(d, d);
    float falloff = 1.0 / (1.0 + dd * dd);
    outLight = vec4(falloff * light_color.rgb * diff, falloff * spec);
}
` + "\x00"

// Composite pass: accumulated light times albedo, the separately accumulated
// specular added unmodulated, fullbright pixels forced to white light.
// material_aware = 0 falls back to the plain multiply.
var compositeVertexSource = `#version 330 core

layout(location = 0) in vec2 inPosition;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

var compositeFragmentSource = `#version 330 core

uniform sampler2D normal_buffer;
uniform sampler2D albedo_buffer;
uniform sampler2D light_buffer;
uniform vec2 buffer_size;
uniform int material_aware;

out vec4 FragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / buffer_size;
    vec4 albedo = texture(albedo_buffer, uv);
    vec4 light = texture(light_buffer, uv);
    if (material_aware == 0) {
        FragColor = vec4(light.rgb * albedo.rgb, 1.0);
        return;
    }
    float material = texture(normal_buffer, uv).w;
    vec3 lc = light.rgb;
    if (material == 2.0)
        lc = vec3(1.0);
    FragColor = vec4(lc * albedo.rgb + vec3(light.a), 1.0);
}
` + "\x00"

// Immediate path: flat vertex lighting against a fixed direction, textured
// straight to the bound framebuffer. Shares nothing with the deferred buffers.
var immediateVertexSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec4 inColor;
layout(location = 2) in vec2 inTexCoord;
layout(location = 3) in vec3 inNormal;

uniform mat4 viewProjection;
uniform mat4 model;

out vec4 litColor;
out vec2 fragTexCoord;

void main() {
    float lit = max(dot(normalize(mat3(model) * inNormal), normalize(vec3(1.0))), 0.0);
    litColor = vec4(inColor.rgb * lit, inColor.a);
    fragTexCoord = inTexCoord;
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

var immediateFragmentSource = `#version 330 core

in vec4 litColor;
in vec2 fragTexCoord;

uniform sampler2D albedoSampler;

out vec4 FragColor;

void main() {
    FragColor = litColor * texture(albedoSampler, fragTexCoord);
}
` + "\x00"

func InitGeometryShader() Shader {
	return Shader{vertexSource: geometryVertexSource, fragmentSource: geometryFragmentSource}
}

func InitWaterShader() Shader {
	return Shader{vertexSource: waterVertexSource, fragmentSource: waterFragmentSource}
}

func InitLightShader() Shader {
	return Shader{vertexSource: lightVertexSource, fragmentSource: lightFragmentSource}
}

func InitCompositeShader() Shader {
	return Shader{vertexSource: compositeVertexSource, fragmentSource: compositeFragmentSource}
}

func InitImmediateShader() Shader {
	return Shader{vertexSource: immediateVertexSource, fragmentSource: immediateFragmentSource}
}
