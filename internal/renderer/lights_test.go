package renderer

import (
	"testing"

	"github.com/SiegeLord/Voidwind/internal/shading"
	"github.com/go-gl/mathgl/mgl32"
)

func TestLightSetAddAndClear(t *testing.T) {
	set := NewLightSet()

	if set.Len() != 0 {
		t.Fatalf("New set should be empty, got %d", set.Len())
	}

	if !set.Add(NewPointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec4{1, 1, 1, 1}, 5)) {
		t.Error("Add should succeed on an empty set")
	}
	if set.Len() != 1 {
		t.Errorf("Expected 1 light, got %d", set.Len())
	}

	set.Clear()
	if set.Len() != 0 {
		t.Error("Clear should empty the set")
	}
}

func TestLightSetCapacity(t *testing.T) {
	set := NewLightSet()
	light := NewPointLight(mgl32.Vec3{}, mgl32.Vec4{1, 1, 1, 1}, 1)

	for i := 0; i < MaxLights; i++ {
		if !set.Add(light) {
			t.Fatalf("Add %d should succeed below capacity", i)
		}
	}
	if set.Add(light) {
		t.Error("Add should fail at capacity")
	}
	if set.Len() != MaxLights {
		t.Errorf("Expected %d lights, got %d", MaxLights, set.Len())
	}
}

func TestLightDescriptor(t *testing.T) {
	light := NewPointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec4{0.5, 0.6, 0.7, 1}, 12)
	d := light.Descriptor()

	if d.Position != light.Position {
		t.Errorf("Descriptor position %v != %v", d.Position, light.Position)
	}
	if d.Color != light.Color {
		t.Errorf("Descriptor color %v != %v", d.Color, light.Color)
	}
	if d.Intensity != 12 {
		t.Errorf("Descriptor intensity %f != 12", d.Intensity)
	}
}

func TestAmbientLightIntensity(t *testing.T) {
	light := NewAmbientLight(mgl32.Vec3{0, 5, 0}, mgl32.Vec4{0.2, 0.3, 0.4, 1})

	if !light.Ambient {
		t.Error("Ambient flag should be set")
	}
	if light.Intensity != shading.AmbientIntensity {
		t.Errorf("Ambient intensity should be the fixed divisor, got %f", light.Intensity)
	}
}

func TestLightSetFlatViews(t *testing.T) {
	set := NewLightSet()
	set.Add(NewPointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec4{0.1, 0.2, 0.3, 0.4}, 1))
	set.Add(NewPointLight(mgl32.Vec3{4, 5, 6}, mgl32.Vec4{0.5, 0.6, 0.7, 0.8}, 1))

	positions := set.Positions()
	if len(positions) != 6 {
		t.Fatalf("Expected 6 position floats, got %d", len(positions))
	}
	if positions[3] != 4 || positions[4] != 5 || positions[5] != 6 {
		t.Errorf("Second position wrong: %v", positions[3:])
	}

	colors := set.Colors()
	if len(colors) != 8 {
		t.Fatalf("Expected 8 color floats, got %d", len(colors))
	}
	if colors[4] != 0.5 || colors[7] != 0.8 {
		t.Errorf("Second color wrong: %v", colors[4:])
	}
}
