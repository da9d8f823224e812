package primitive

import (
	"github.com/Faultbox/laneracer/pkg/math"
)

type triangle struct {
	v0, v1, v2 math.Vec3
}

// subdivide splits every triangle into four at its edge midpoints.
func subdivide(list []triangle) []triangle {
	out := make([]triangle, 0, 4*len(list))
	for _, t := range list {
		m01 := t.v0.Midpoint(t.v1)
		m12 := t.v1.Midpoint(t.v2)
		m02 := t.v0.Midpoint(t.v2)
		out = append(out,
			triangle{t.v0, m01, m02},
			triangle{t.v1, m12, m01},
			triangle{t.v2, m02, m12},
			triangle{m01, m12, m02},
		)
	}
	return out
}

// octantTransform maps the positive octant onto octant i (0..7).
func octantTransform(octant int) math.Mat4 {
	m := math.Identity()
	if angle := float32(90 * (octant % 4)); angle != 0 {
		m = m.Mul(math.Rotate(angle, 1, 0, 0))
	}
	if octant >= 4 {
		m = m.Mul(math.Rotate(180, 0, 0, 1))
	}
	return m
}

// NewSphere returns the unit sphere centered at the origin.
//
// The positive octant triangle (1,0,0),(0,1,0),(0,0,1) is split depth times
// with flat midpoints, copied into all eight octants, and every vertex is then
// pushed out to unit length. Normals equal positions. The result has
// 8 * 3 * 4^depth vertices.
func NewSphere(depth int) *Mesh {
	list := []triangle{{
		math.Vec3{X: 1}, math.Vec3{Y: 1}, math.Vec3{Z: 1},
	}}
	for i := 0; i < depth; i++ {
		list = subdivide(list)
	}

	mesh := &Mesh{
		Positions: make([]float32, 0, 8*len(list)*floatsPerTriangle),
		Normals:   make([]float32, 0, 8*len(list)*floatsPerTriangle),
	}
	for octant := 0; octant < 8; octant++ {
		m := octantTransform(octant)
		for _, t := range list {
			for _, v := range [3]math.Vec3{t.v0, t.v1, t.v2} {
				p := m.TransformVec3(v).Normalize().Array()
				mesh.push(p, p)
			}
		}
	}
	return mesh
}
