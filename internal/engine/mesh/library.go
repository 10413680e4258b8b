package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glMesh is one shape uploaded to the GPU.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library owns the GPU buffers for the primitive shapes. It must be
// created and destroyed on the thread that owns the GL context.
type Library struct {
	meshes map[Shape]*glMesh
}

// NewLibrary returns an empty library. Call Load before drawing.
func NewLibrary() *Library {
	return &Library{meshes: make(map[Shape]*glMesh)}
}

// Load generates and uploads the given shapes. Shapes that are already
// loaded are skipped.
func (l *Library) Load(shapes ...Shape) error {
	for _, s := range shapes {
		if _, ok := l.meshes[s]; ok {
			continue
		}
		geo, err := Generate(s)
		if err != nil {
			return err
		}
		l.meshes[s] = upload(geo)
	}
	return nil
}

// Draw issues the draw call for a shape. Shapes that were never loaded
// draw nothing.
func (l *Library) Draw(s Shape) {
	m, ok := l.meshes[s]
	if !ok || m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU buffers.
func (l *Library) Destroy() {
	for _, m := range l.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
			m.vao = 0
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
			m.vbo = 0
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
			m.ebo = 0
		}
	}
	l.meshes = make(map[Shape]*glMesh)
}

func upload(geo Geometry) *glMesh {
	m := &glMesh{indexCount: int32(len(geo.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// VBO
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*vertexSize, unsafe.Pointer(&geo.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}
