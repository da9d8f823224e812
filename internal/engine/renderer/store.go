package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/internal/engine/shader"
	"github.com/Faultbox/laneracer/internal/logger"
)

// gpuMesh is one primitive's vertex array with its position, normal and
// index buffers.
type gpuMesh struct {
	vao        uint32
	positions  uint32
	normals    uint32
	indices    uint32
	indexCount int32
}

// GeometryStore owns the GPU copies of the primitive meshes. Buffers are
// uploaded once and never modified.
type GeometryStore struct {
	meshes [primitive.Count]gpuMesh
}

// NewGeometryStore generates every primitive and uploads it into its own VAO.
func NewGeometryStore(sphereDepth, cylinderFacets int) (*GeometryStore, error) {
	s := &GeometryStore{}
	for _, kind := range primitive.Kinds {
		mesh, err := primitive.Generate(kind, sphereDepth, cylinderFacets)
		if err != nil {
			s.Close()
			return nil, err
		}
		if err := mesh.Validate(); err != nil {
			s.Close()
			return nil, fmt.Errorf("%s mesh: %w", kind, err)
		}
		s.meshes[kind] = upload(mesh)

		logger.Debug("primitive uploaded",
			zap.Stringer("kind", kind),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Uint32("vao", s.meshes[kind].vao),
		)
	}
	return s, nil
}

func upload(mesh *primitive.Mesh) gpuMesh {
	indices := mesh.Indices()
	m := gpuMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, unsafe.Pointer(&mesh.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.AttribPosition, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(shader.AttribPosition)

	gl.GenBuffers(1, &m.normals)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.normals)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*4, unsafe.Pointer(&mesh.Normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.AttribNormal, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(shader.AttribNormal)

	// The element buffer binding is captured by the VAO.
	gl.GenBuffers(1, &m.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

// Draw binds the primitive's VAO and issues one indexed triangle draw.
// The VAO stays bound afterwards.
func (s *GeometryStore) Draw(kind primitive.Kind) {
	m := &s.meshes[kind]
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// Close releases all GPU buffers.
func (s *GeometryStore) Close() {
	for i := range s.meshes {
		m := &s.meshes[i]
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		for _, buf := range []*uint32{&m.positions, &m.normals, &m.indices} {
			if *buf != 0 {
				gl.DeleteBuffers(1, buf)
			}
		}
		*m = gpuMesh{}
	}
}
