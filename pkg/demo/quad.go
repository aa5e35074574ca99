package demo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// QuadStride is the number of floats per quad vertex: position (3),
// color (3) and texture coordinates (2).
const QuadStride = 8

// QuadLayout is the float count of each quad vertex attribute.
func QuadLayout() []int32 { return []int32{3, 3, 2} }

// QuadVertices returns a textured quad filling half the viewport.
func QuadVertices() []float32 {
	return []float32{
		// positions       // colors        // texture coords
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
	}
}

// QuadIndices returns the two triangles of the quad.
func QuadIndices() []uint32 {
	return []uint32{
		0, 1, 3,
		1, 2, 3,
	}
}

// MixStep is how far one frame of Up/Down moves the texture mix.
const MixStep = 0.01

// MixLevel is the blend factor between the quad's two textures, kept in
// [0, 1].
type MixLevel float32

// Raise increases the level by one step, saturating at 1.
func (m *MixLevel) Raise() {
	*m = MixLevel(mgl32.Clamp(float32(*m)+MixStep, 0, 1))
}

// Lower decreases the level by one step, saturating at 0.
func (m *MixLevel) Lower() {
	*m = MixLevel(mgl32.Clamp(float32(*m)-MixStep, 0, 1))
}
