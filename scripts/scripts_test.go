package scripts

import (
	"math"
	"testing"

	"github.com/SiegeLord/Voidwind/internal/behaviour"
	"github.com/SiegeLord/Voidwind/internal/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitScriptCirclesAtRadius(t *testing.T) {
	cm := behaviour.NewComponentManager()
	obj := behaviour.NewGameObject("lantern")
	obj.Transform.SetPosition(mgl32.Vec3{10, 6, 0})
	obj.AddComponent(&OrbitScript{Radius: 10, Speed: 1})
	cm.RegisterGameObject(obj)

	for i := 0; i < 10; i++ {
		cm.UpdateAll()
	}

	pos := obj.Transform.Position
	r := math.Hypot(float64(pos.X()), float64(pos.Z()))
	if math.Abs(r-10) > 1e-3 {
		t.Errorf("Orbit should keep radius 10, got %f", r)
	}
	if pos.Y() != 6 {
		t.Errorf("Orbit must not change height, got %f", pos.Y())
	}
	if pos.Z() == 0 {
		t.Error("Object should have moved along its orbit")
	}
}

func TestOrbitScriptPhaseOffsetsObjects(t *testing.T) {
	cm := behaviour.NewComponentManager()
	positions := make([]*behaviour.GameObject, 2)
	for i := range positions {
		obj := behaviour.NewGameObject("carrier")
		obj.AddComponent(&OrbitScript{Radius: 5, Speed: 1, Phase: float32(i) * math.Pi})
		cm.RegisterGameObject(obj)
		positions[i] = obj
	}

	cm.UpdateAll()

	a := positions[0].Transform.Position
	b := positions[1].Transform.Position
	if a.Sub(b).Len() < 1 {
		t.Errorf("Opposite phases should keep carriers apart, got %v and %v", a, b)
	}
}

func TestFloatScriptBobsAroundStartHeight(t *testing.T) {
	cm := behaviour.NewComponentManager()
	obj := behaviour.NewGameObject("hull")
	obj.Transform.SetPosition(mgl32.Vec3{30, 3, 25})
	obj.AddComponent(&FloatScript{Height: 0.5, Speed: 2})
	cm.RegisterGameObject(obj)

	moved := false
	for i := 0; i < 50; i++ {
		cm.UpdateAll()
		y := obj.Transform.Position.Y()
		if y < 3-0.5-1e-4 || y > 3+0.5+1e-4 {
			t.Fatalf("Height %f left the bobbing band around 3", y)
		}
		if y != 3 {
			moved = true
		}
	}
	if !moved {
		t.Error("FloatScript should move the object vertically")
	}
	if obj.Transform.Position.X() != 30 || obj.Transform.Position.Z() != 25 {
		t.Error("FloatScript must only touch the vertical axis")
	}
}

func TestRotateScriptSpinsAroundVertical(t *testing.T) {
	cm := behaviour.NewComponentManager()
	obj := behaviour.NewGameObject("beacon")
	obj.AddComponent(&RotateScript{Speed: 90})
	cm.RegisterGameObject(obj)

	before := obj.Transform.Forward()
	for i := 0; i < 20; i++ {
		cm.UpdateAll()
	}
	after := obj.Transform.Forward()

	if before.Sub(after).Len() < 1e-3 {
		t.Error("RotateScript should change the forward direction")
	}
	if math.Abs(float64(after.Y())) > 1e-4 {
		t.Errorf("Vertical-axis spin must keep forward level, got y=%f", after.Y())
	}
}

func TestScriptsDriveAttachedModel(t *testing.T) {
	cm := behaviour.NewComponentManager()
	model := renderer.NewModel("lantern", nil, nil)
	model.SetPosition(10, 6, 0)

	obj := behaviour.NewGameObject("lantern")
	obj.SetModel(model)
	obj.Transform.SetPosition(model.Position)
	obj.AddComponent(&OrbitScript{Radius: 10, Speed: 1})
	cm.RegisterGameObject(obj)

	for i := 0; i < 10; i++ {
		cm.UpdateAll()
	}

	if model.Position.Sub(obj.Transform.Position).Len() > 1e-5 {
		t.Errorf("Model should follow the transform, model=%v transform=%v",
			model.Position, obj.Transform.Position)
	}
	if model.Position.Z() == 0 {
		t.Error("Model should have moved along the orbit")
	}
}

func TestScriptsRegistered(t *testing.T) {
	for _, name := range []string{"OrbitScript", "RotateScript", "FloatScript"} {
		if behaviour.CreateScript(name) == nil {
			t.Errorf("%s should be in the script registry", name)
		}
	}
}
