// Package demo holds the CPU-side content of the demo scenes: vertex data,
// per-frame animation and procedural textures. Nothing here touches OpenGL.
package demo

import (
	"github.com/chewxy/math32"
)

// SquareStride is the number of floats per square vertex: position (3) and
// color (3).
const SquareStride = 6

// SquareLayout is the float count of each square vertex attribute.
func SquareLayout() []int32 { return []int32{3, 3} }

// SquareVertices returns the diamond the triangle demo spins: top, bottom,
// left and right corners, each with its own color.
func SquareVertices() []float32 {
	return []float32{
		// positions     // colors
		0.0, 0.5, 0.0, 1.0, 0.0, 0.0, // top
		0.0, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom
		-0.5, 0.0, 0.0, 0.0, 0.0, 1.0, // left
		0.5, 0.0, 0.0, 1.0, 1.0, 0.0, // right
	}
}

// SquareIndices returns the two triangles of the square.
func SquareIndices() []uint32 {
	return []uint32{
		0, 1, 3,
		0, 2, 1,
	}
}

// RotateSquare rewrites the corner positions of vertices in place so the
// square is rotated clockwise by radian, with corners radius away from the
// center. Colors are untouched.
func RotateSquare(vertices []float32, radian, radius float32) {
	x := math32.Sin(radian) * radius
	y := math32.Cos(radian) * radius

	corners := [4][2]float32{
		{x, y},   // top
		{-x, -y}, // bottom
		{-y, x},  // left
		{y, -x},  // right
	}
	for i, c := range corners {
		vertices[i*SquareStride] = c[0]
		vertices[i*SquareStride+1] = c[1]
	}
}

// Spinner advances a rotation angle by a fixed step per frame and wraps
// back to zero after a full turn.
type Spinner struct {
	Angle float32
	Step  float32
}

// Advance moves to the next frame's angle and returns it.
func (s *Spinner) Advance() float32 {
	if s.Angle >= 2*math32.Pi {
		s.Angle = 0
	} else {
		s.Angle += s.Step
	}
	return s.Angle
}
