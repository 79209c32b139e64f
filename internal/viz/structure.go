package viz

import (
	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/render"
)

// StructureWireframe is the undeformed assembly: one marker per corner,
// the closing polygon, and one spoke per corner to the hub at z=0.
func StructureWireframe(asm *geometry.Assembly) *Wireframe {
	return assemblyWireframe(asm, asm.Corners())
}

// FrameWireframe is the assembly deformed per one snapshot. The z offset
// is normalized against the frame's axis limit so the tilt stays readable
// no matter how small the physical displacement is, mirroring the
// per-frame axis rescaling of the plot surfaces.
func FrameWireframe(asm *geometry.Assembly, f render.FrameSpec) *Wireframe {
	z := 0.0
	if f.ZLim != 0 {
		z = f.Offset / f.ZLim * asm.Radius
	}
	return assemblyWireframe(asm, asm.CornersAt(z))
}

func assemblyWireframe(asm *geometry.Assembly, corners []geometry.Vec3) *Wireframe {
	w := NewWireframe()
	for _, p := range corners {
		w.AddPoint(p)
	}
	for _, e := range asm.Edges() {
		w.AddEdge(corners[e[0]], corners[e[1]])
	}
	for _, s := range asm.Spokes(corners) {
		w.AddEdge(s[0], s[1])
	}
	return w
}
