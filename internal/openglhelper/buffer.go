// Package openglhelper provides utilities for working with OpenGL buffers and
// other resources. It wraps the low-level OpenGL functions in a more
// Go-friendly API.
package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO, EBO, etc.)
// It provides a higher-level abstraction over raw OpenGL buffer IDs and operations.
type BufferObject struct {
	ID   uint32
	Type uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, etc.
	Size int    // Size of the buffer in bytes
}

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores
// vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewVBO creates a static vertex buffer object from float32 data.
func NewVBO(data []float32) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:   bufferID,
		Type: gl.ARRAY_BUFFER,
		Size: len(data) * 4,
	}

	buffer.Bind()
	gl.BufferData(buffer.Type, buffer.Size, gl.Ptr(data), gl.STATIC_DRAW)

	return buffer
}

// Bind binds the buffer object
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer object
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new vertex array object
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	return &VertexArrayObject{ID: vaoID}
}

// Bind binds the vertex array object
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer configures a vertex attribute for the currently
// bound VBO.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
	gl.EnableVertexAttribArray(index)
}
