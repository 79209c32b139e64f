package metrics

import (
	"math"

	"github.com/Saramando/263F/internal/dynamics"
)

// Impulse accumulates |F|*dt over the run, the total momentum delivered
// by the applied force profile.
type Impulse struct {
	name string
	dt   float64
	sum  float64
}

func NewImpulse(dt float64) *Impulse {
	return &Impulse{name: "impulse", dt: dt}
}

func (c *Impulse) Name() string {
	return c.name
}

func (c *Impulse) Observe(x dynamics.State, u dynamics.Control, t float64) {
	for _, val := range u {
		c.sum += math.Abs(val) * c.dt
	}
}

func (c *Impulse) Value() float64 {
	return c.sum
}

func (c *Impulse) Reset() {
	c.sum = 0
}
