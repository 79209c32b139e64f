package geometry

import "math"

// Assembly is the undeformed rod structure: a regular polygon of corner
// joints in the z=0 plane, each joined to the central hub by one rod.
// It is a pure function of side count and radius, recomputed on demand.
type Assembly struct {
	Sides  int
	Radius float64
}

func NewAssembly(sides int, radius float64) *Assembly {
	return &Assembly{Sides: sides, Radius: radius}
}

func (a *Assembly) Center() Vec3 {
	return Vec3{}
}

// Corner returns joint i, at angle i*2*pi/sides on the reference circle.
func (a *Assembly) Corner(i int) Vec3 {
	angle := float64(i) * 2 * math.Pi / float64(a.Sides)
	return Vec3{
		X: a.Radius * math.Cos(angle),
		Y: a.Radius * math.Sin(angle),
	}
}

// Corners returns all joints in the reference plane.
func (a *Assembly) Corners() []Vec3 {
	return a.CornersAt(0)
}

// CornersAt returns all joints lifted to the given z offset. The hub
// stays at the origin, so a nonzero offset tilts every rod uniformly.
func (a *Assembly) CornersAt(zOffset float64) []Vec3 {
	pts := make([]Vec3, a.Sides)
	for i := range pts {
		p := a.Corner(i)
		p.Z = zOffset
		pts[i] = p
	}
	return pts
}

// Edges returns index pairs of consecutive corners, wrapping around.
func (a *Assembly) Edges() [][2]int {
	edges := make([][2]int, a.Sides)
	for i := range edges {
		edges[i] = [2]int{i, (i + 1) % a.Sides}
	}
	return edges
}

// Spokes returns one rod per corner, running to the central hub.
func (a *Assembly) Spokes(corners []Vec3) [][2]Vec3 {
	spokes := make([][2]Vec3, len(corners))
	center := a.Center()
	for i, c := range corners {
		spokes[i] = [2]Vec3{c, center}
	}
	return spokes
}
