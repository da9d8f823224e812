// Package primitive generates the three base meshes (sphere, cylinder, cube)
// that every object in the scene is built from.
package primitive

import (
	"errors"
	"fmt"
)

// Kind identifies one of the fixed primitive meshes.
type Kind uint8

const (
	Sphere Kind = iota
	Cylinder
	Cube

	// Count is the number of primitive kinds.
	Count = 3
)

// Kinds lists every primitive in upload order.
var Kinds = [Count]Kind{Sphere, Cylinder, Cube}

// String returns the primitive name.
func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cube:
		return "cube"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Default generation parameters.
const (
	DefaultSphereDepth    = 5
	DefaultCylinderFacets = 30
)

// Errors returned by Mesh.Validate.
var (
	ErrLengthMismatch = errors.New("positions and normals differ in length")
	ErrNotTriangles   = errors.New("buffer length is not a whole number of triangles")
)

// floatsPerTriangle is 3 vertices of 3 floats each.
const floatsPerTriangle = 9

// Mesh is a non-indexed triangle soup: parallel xyz position and normal arrays.
type Mesh struct {
	Positions []float32
	Normals   []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / floatsPerTriangle
}

// Validate checks the buffer pair invariants.
func (m *Mesh) Validate() error {
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("%w: %d positions, %d normals", ErrLengthMismatch, len(m.Positions), len(m.Normals))
	}
	if len(m.Positions)%floatsPerTriangle != 0 {
		return fmt.Errorf("%w: %d floats", ErrNotTriangles, len(m.Positions))
	}
	return nil
}

// Indices returns sequential indices 0..VertexCount-1 for indexed drawing.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, m.VertexCount())
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

// Vertex returns the position and normal of vertex i.
func (m *Mesh) Vertex(i int) (pos, normal [3]float32) {
	copy(pos[:], m.Positions[i*3:i*3+3])
	copy(normal[:], m.Normals[i*3:i*3+3])
	return pos, normal
}

func (m *Mesh) push(pos, normal [3]float32) {
	m.Positions = append(m.Positions, pos[0], pos[1], pos[2])
	m.Normals = append(m.Normals, normal[0], normal[1], normal[2])
}

// Generate builds the mesh for a primitive kind with the given parameters.
func Generate(k Kind, sphereDepth, cylinderFacets int) (*Mesh, error) {
	switch k {
	case Sphere:
		return NewSphere(sphereDepth), nil
	case Cylinder:
		return NewCylinder(cylinderFacets), nil
	case Cube:
		return NewCube(), nil
	default:
		return nil, fmt.Errorf("unknown primitive %s", k)
	}
}
