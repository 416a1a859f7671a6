package scripts

import (
	"math"

	"github.com/SiegeLord/Voidwind/internal/behaviour"
)

// OrbitScript circles its object around the scene origin at a fixed height.
// The demo attaches it to light carriers.
type OrbitScript struct {
	behaviour.BaseComponent
	Radius float32
	Speed  float32
	Phase  float32
	time   float32
}

func init() {
	behaviour.RegisterScript("OrbitScript", func() behaviour.Component {
		return &OrbitScript{Radius: 10.0, Speed: 1.0}
	})
}

func (o *OrbitScript) Start() {
	o.time = o.Phase
}

func (o *OrbitScript) Update() {
	deltaTime := float32(0.016)
	o.time += deltaTime * o.Speed

	x := float32(math.Cos(float64(o.time))) * o.Radius
	z := float32(math.Sin(float64(o.time))) * o.Radius

	o.GetGameObject().Transform.Position[0] = x
	o.GetGameObject().Transform.Position[2] = z
}

func (o *OrbitScript) FixedUpdate() {}
