// Package openglhelper wraps the OpenGL 3.3 core objects the demos use:
// window and context, shader programs, buffers, meshes and textures.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Float32Size is the size of a float32 in bytes.
const Float32Size = 4

// BufferObject is a vertex or element buffer of fixed size.
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER or GL_ELEMENT_ARRAY_BUFFER
	Size  int    // bytes
	Usage uint32
}

// BufferUsage is the usage hint a buffer is created with.
type BufferUsage uint32

const (
	// StaticDraw is for geometry uploaded once, like the quad and cubes.
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// StreamDraw is for geometry rewritten every frame, like the spinning square.
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// VertexArrayObject records the attribute layout of a mesh.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer of sizeInBytes on target bufferType and
// fills it from data.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates an array buffer holding vertices.
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*Float32Size, gl.Ptr(vertices), usage)
}

// NewEBO creates an element buffer holding indices.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), usage)
}

// Bind binds the buffer to its target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Orphan re-specifies the whole buffer store with new data, letting the
// driver hand back fresh memory instead of waiting on pending draws.
func (bo *BufferObject) Orphan(data unsafe.Pointer) {
	bo.Bind()
	gl.BufferData(bo.Type, bo.Size, data, bo.Usage)
}

// Delete releases the buffer.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO generates an empty vertex array.
func NewVAO() *VertexArrayObject {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArrayObject{ID: id}
}

func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes float attribute index at byte offset in
// the bound array buffer and enables it.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
