package primitive

import "github.com/chewxy/math32"

// NewCylinder returns the circle x^2+y^2=1 extruded from z=0 to z=1.
//
// Each facet emits one triangle on each cap and two on the wall. Cap normals
// point along -Z/+Z; wall normals are the radial direction at each vertex so
// the side shades smoothly while the caps stay flat.
func NewCylinder(facets int) *Mesh {
	mesh := &Mesh{
		Positions: make([]float32, 0, facets*4*floatsPerTriangle),
		Normals:   make([]float32, 0, facets*4*floatsPerTriangle),
	}

	top := [3]float32{0, 0, 1}
	bottom := [3]float32{0, 0, -1}

	for i := 0; i < facets; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(facets)
		nextAngle := 2 * math32.Pi * float32(i+1) / float32(facets)
		if i == facets-1 {
			nextAngle = 0
		}
		s1, c1 := math32.Sincos(angle)
		s2, c2 := math32.Sincos(nextAngle)

		fv0 := [3]float32{0, 0, 1}
		fv1 := [3]float32{c1, s1, 1}
		fv2 := [3]float32{c2, s2, 1}
		bv0 := [3]float32{0, 0, 0}
		bv1 := [3]float32{c1, s1, 0}
		bv2 := [3]float32{c2, s2, 0}

		// caps
		mesh.push(fv0, top)
		mesh.push(fv1, top)
		mesh.push(fv2, top)
		mesh.push(bv0, bottom)
		mesh.push(bv2, bottom)
		mesh.push(bv1, bottom)

		// wall
		n1 := [3]float32{c1, s1, 0}
		n2 := [3]float32{c2, s2, 0}
		mesh.push(bv1, n1)
		mesh.push(bv2, n2)
		mesh.push(fv2, n2)
		mesh.push(bv1, n1)
		mesh.push(fv2, n2)
		mesh.push(fv1, n1)
	}
	return mesh
}
