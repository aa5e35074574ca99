package openglhelper

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Layout lists the float component counts of each vertex attribute, in
// attribute-location order. {3, 3, 2} is position, color, texture coords.
type Layout []int32

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	var floats int32
	for _, n := range l {
		floats += n
	}
	return floats * Float32Size
}

// Floats returns the number of floats in one vertex.
func (l Layout) Floats() int {
	return int(l.Stride() / Float32Size)
}

// apply sets up the attribute pointers on the currently bound VAO and VBO.
func (l Layout) apply(vao *VertexArrayObject) {
	stride := l.Stride()
	offset := 0
	for i, n := range l {
		vao.SetVertexAttribPointer(uint32(i), n, gl.FLOAT, false, stride, offset)
		offset += int(n) * Float32Size
	}
}

// Mesh represents vertex data on the GPU, optionally indexed
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	ebo         *BufferObject
	layout      Layout
	vertexCount int32
	indexCount  int32
}

// NewMesh uploads vertices laid out per layout. With nil indices the mesh
// draws its vertices in order.
func NewMesh(vertices []float32, indices []uint32, layout Layout, usage BufferUsage) *Mesh {
	// Create VAO, VBO, and EBO
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, usage)

	var ebo *BufferObject
	if len(indices) > 0 {
		ebo = NewEBO(indices, StaticDraw)
	}

	layout.apply(vao)

	// Unbind VAO
	vao.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		ebo:         ebo,
		layout:      layout,
		vertexCount: int32(len(vertices) / layout.Floats()),
		indexCount:  int32(len(indices)),
	}
}

// UpdateVertices re-uploads the vertex data. The slice must match the size
// the mesh was created with.
func (m *Mesh) UpdateVertices(vertices []float32) {
	m.vbo.Orphan(gl.Ptr(vertices))
}

// Draw renders the mesh as triangles with whatever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.ebo != nil {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	if m.ebo != nil {
		m.ebo.Delete()
	}
}
