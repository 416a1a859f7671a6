package scripts

import (
	"math"

	"github.com/SiegeLord/Voidwind/internal/behaviour"
)

// FloatScript bobs its object vertically, approximating a hull riding the
// waves without sampling the surface.
type FloatScript struct {
	behaviour.BaseComponent
	Height float32
	Speed  float32
	startY float32
	time   float32
}

func init() {
	behaviour.RegisterScript("FloatScript", func() behaviour.Component {
		return &FloatScript{Height: 0.5, Speed: 2.0}
	})
}

func (f *FloatScript) Start() {
	f.startY = f.GetGameObject().Transform.Position.Y()
}

func (f *FloatScript) Update() {
	deltaTime := float32(0.016)
	f.time += deltaTime * f.Speed
	offset := float32(math.Sin(float64(f.time))) * f.Height
	f.GetGameObject().Transform.Position[1] = f.startY + offset
}

func (f *FloatScript) FixedUpdate() {}
