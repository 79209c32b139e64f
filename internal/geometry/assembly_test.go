package geometry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Saramando/263F/internal/geometry"
)

var _ = Describe("Assembly", func() {
	var asm *geometry.Assembly

	BeforeEach(func() {
		asm = geometry.NewAssembly(8, 1.0)
	})

	It("places corner 0 on the positive x axis", func() {
		c := asm.Corner(0)
		Expect(c.X).To(Equal(1.0))
		Expect(c.Y).To(Equal(0.0))
		Expect(c.Z).To(Equal(0.0))
	})

	It("places corner 4 on the negative x axis", func() {
		c := asm.Corner(4)
		Expect(c.X).To(BeNumerically("~", -1.0, 1e-9))
		Expect(c.Y).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("keeps every corner on the reference circle", func() {
		for _, c := range asm.Corners() {
			Expect(c.Length()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(c.Z).To(Equal(0.0))
		}
	})

	It("wraps the final edge back to corner 0", func() {
		edges := asm.Edges()
		Expect(edges).To(HaveLen(8))
		Expect(edges[7]).To(Equal([2]int{7, 0}))
	})

	It("runs one spoke from each corner to the hub", func() {
		corners := asm.Corners()
		spokes := asm.Spokes(corners)
		Expect(spokes).To(HaveLen(8))
		for i, s := range spokes {
			Expect(s[0]).To(Equal(corners[i]))
			Expect(s[1]).To(Equal(asm.Center()))
		}
	})

	It("lifts corners but not the hub at a z offset", func() {
		lifted := asm.CornersAt(-0.5)
		for _, c := range lifted {
			Expect(c.Z).To(Equal(-0.5))
		}
		Expect(asm.Center().Z).To(Equal(0.0))
	})

	It("handles the minimum side count", func() {
		tri := geometry.NewAssembly(3, 2.0)
		Expect(tri.Corners()).To(HaveLen(3))
		Expect(tri.Edges()).To(Equal([][2]int{{0, 1}, {1, 2}, {2, 0}}))
	})
})

var _ = Describe("Vec3", func() {
	It("computes lengths and normalizes", func() {
		v := geometry.Vec3{X: 3, Y: 4}
		Expect(v.Length()).To(Equal(5.0))
		Expect(v.Normalize().Length()).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("normalizes the zero vector to zero", func() {
		Expect(geometry.Vec3{}.Normalize()).To(Equal(geometry.Vec3{}))
	})

	It("follows the right hand rule for cross products", func() {
		x := geometry.Vec3{X: 1}
		y := geometry.Vec3{Y: 1}
		Expect(x.Cross(y)).To(Equal(geometry.Vec3{Z: 1}))
	})
})
