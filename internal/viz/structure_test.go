package viz

import (
	"math"
	"testing"

	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/render"
)

func TestStructureWireframeShape(t *testing.T) {
	asm := geometry.NewAssembly(8, 1.0)
	wf := StructureWireframe(asm)

	if got, want := len(wf.Edges), 3*8; got != want {
		t.Fatalf("edge count = %d, want %d (markers + rim + spokes)", got, want)
	}
	markers := 0
	for _, e := range wf.Edges {
		if e.Start == e.End {
			markers++
		}
	}
	if markers != 8 {
		t.Errorf("marker count = %d, want one per corner", markers)
	}
	for _, e := range wf.Edges {
		if e.Start.Z != 0 || e.End.Z != 0 {
			t.Fatal("undeformed structure must lie in the z=0 plane")
		}
	}
}

func TestFrameWireframeNormalizesOffset(t *testing.T) {
	asm := geometry.NewAssembly(8, 1.0)
	f := render.FrameSpec{Step: 100, Time: 0.01, Offset: -0.05, ZLim: 0.2}
	wf := FrameWireframe(asm, f)

	want := f.Offset / f.ZLim * asm.Radius
	var corners, hubs int
	for _, e := range wf.Edges {
		for _, p := range []geometry.Vec3{e.Start, e.End} {
			if p.X == 0 && p.Y == 0 {
				if p.Z != 0 {
					t.Fatalf("hub lifted to z=%g, want 0", p.Z)
				}
				hubs++
				continue
			}
			if math.Abs(p.Z-want) > 1e-12 {
				t.Fatalf("corner at z=%g, want %g", p.Z, want)
			}
			corners++
		}
	}
	if corners == 0 || hubs == 0 {
		t.Fatalf("expected both corners and hub points, got %d corners, %d hubs", corners, hubs)
	}
}

func TestFrameWireframeZeroLimit(t *testing.T) {
	asm := geometry.NewAssembly(8, 1.0)
	wf := FrameWireframe(asm, render.FrameSpec{})
	for _, e := range wf.Edges {
		if e.Start.Z != 0 || e.End.Z != 0 {
			t.Fatal("zero axis limit must leave the assembly flat")
		}
	}
}
