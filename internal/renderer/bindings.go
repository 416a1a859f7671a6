package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UniformBinding names one uniform a pass requires. Optional bindings may be
// compiled out of the program without failing validation (the driver drops
// uniforms that do not contribute to the output).
type UniformBinding struct {
	Name     string
	Required bool
}

// PassBindings declares the interface of one pipeline pass: which attribute
// slots it reads, which uniforms it needs, and which texture units it samples.
// The pipeline validates every declaration against the linked program at
// assembly time so that a renamed or dropped binding fails loudly there
// instead of rendering garbage.
type PassBindings struct {
	Name       string
	Attributes map[string]uint32
	Uniforms   []UniformBinding
	Samplers   map[string]int32
}

// Validate checks the declared bindings against a linked program.
func (pb PassBindings) Validate(program uint32) error {
	for name, slot := range pb.Attributes {
		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			return fmt.Errorf("pass %s: attribute %q missing from program", pb.Name, name)
		}
		if uint32(loc) != slot {
			return fmt.Errorf("pass %s: attribute %q at slot %d, declared %d", pb.Name, name, loc, slot)
		}
	}
	for _, u := range pb.Uniforms {
		loc := gl.GetUniformLocation(program, gl.Str(u.Name+"\x00"))
		if loc < 0 && u.Required {
			return fmt.Errorf("pass %s: uniform %q missing from program", pb.Name, u.Name)
		}
	}
	for name := range pb.Samplers {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			return fmt.Errorf("pass %s: sampler %q missing from program", pb.Name, name)
		}
	}
	return nil
}

// BindSamplers assigns each declared sampler to its fixed texture unit. The
// program must be in use.
func (pb PassBindings) BindSamplers(shader *Shader) {
	for name, unit := range pb.Samplers {
		shader.SetInt(name, unit)
	}
}

func geometryBindings() PassBindings {
	return PassBindings{
		Name: "geometry",
		Attributes: map[string]uint32{
			"inPosition": 0,
			"inColor":    1,
			"inTexCoord": 2,
			"inNormal":   3,
		},
		Uniforms: []UniformBinding{
			{Name: "viewProjection", Required: true},
			{Name: "model", Required: true},
			{Name: "material", Required: true},
		},
		Samplers: map[string]int32{"albedoSampler": 0},
	}
}

func waterBindings() PassBindings {
	return PassBindings{
		Name:       "water",
		Attributes: map[string]uint32{"inPosition": 0},
		Uniforms: []UniformBinding{
			{Name: "viewProjection", Required: true},
			{Name: "time", Required: true},
			{Name: "glow", Required: true},
			{Name: "waveU", Required: true},
			{Name: "waveV", Required: true},
			{Name: "k1", Required: true},
			{Name: "k2", Required: true},
			{Name: "w1", Required: true},
			{Name: "w2", Required: true},
			{Name: "waterColor", Required: true},
		},
	}
}

func lightBindings() PassBindings {
	return PassBindings{
		Name:       "light",
		Attributes: map[string]uint32{"inPosition": 0},
		Uniforms: []UniformBinding{
			{Name: "light_color", Required: true},
			{Name: "light_pos", Required: true},
			{Name: "light_intensity", Required: true},
			{Name: "buffer_size", Required: true},
			{Name: "camera_pos", Required: true},
			{Name: "ambient", Required: true},
		},
		Samplers: map[string]int32{
			"position_buffer": 0,
			"normal_buffer":   1,
		},
	}
}

func compositeBindings() PassBindings {
	return PassBindings{
		Name:       "composite",
		Attributes: map[string]uint32{"inPosition": 0},
		Uniforms: []UniformBinding{
			{Name: "buffer_size", Required: true},
			{Name: "material_aware", Required: true},
		},
		Samplers: map[string]int32{
			"normal_buffer": 1,
			"albedo_buffer": 2,
			"light_buffer":  3,
		},
	}
}

func immediateBindings() PassBindings {
	return PassBindings{
		Name: "immediate",
		Attributes: map[string]uint32{
			"inPosition": 0,
			"inColor":    1,
			"inTexCoord": 2,
			"inNormal":   3,
		},
		Uniforms: []UniformBinding{
			{Name: "viewProjection", Required: true},
			{Name: "model", Required: true},
		},
		Samplers: map[string]int32{"albedoSampler": 0},
	}
}
