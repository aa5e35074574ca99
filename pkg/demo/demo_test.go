package demo

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateSquareZeroIsIdentity(t *testing.T) {
	v := SquareVertices()
	RotateSquare(v, 0, 0.5)

	assert.Equal(t, SquareVertices(), v)
}

func TestRotateSquareQuarterTurn(t *testing.T) {
	v := SquareVertices()
	RotateSquare(v, math32.Pi/2, 0.5)

	// top corner moves to the right, right corner to the bottom
	assert.InDelta(t, 0.5, v[0], 1e-6)
	assert.InDelta(t, 0.0, v[1], 1e-6)
	assert.InDelta(t, 0.0, v[3*SquareStride], 1e-6)
	assert.InDelta(t, -0.5, v[3*SquareStride+1], 1e-6)

	// colors and z untouched
	orig := SquareVertices()
	for i := 0; i < 4; i++ {
		base := i * SquareStride
		assert.Equal(t, orig[base+2:base+6], v[base+2:base+6])
	}
}

func TestRotateSquareKeepsRadius(t *testing.T) {
	v := SquareVertices()
	for a := float32(0); a < 2*math32.Pi; a += 0.37 {
		RotateSquare(v, a, 0.5)
		for i := 0; i < 4; i++ {
			p := mgl32.Vec2{v[i*SquareStride], v[i*SquareStride+1]}
			require.InDelta(t, 0.5, p.Len(), 1e-6)
		}
	}
}

func TestSpinnerWraps(t *testing.T) {
	s := Spinner{Step: 1}
	for i := 0; i < 6; i++ {
		s.Advance()
	}
	assert.Equal(t, float32(6), s.Angle)

	s.Advance() // 7 > 2π
	assert.Equal(t, float32(7), s.Angle)
	assert.Zero(t, s.Advance())
}

func TestMixLevelSaturates(t *testing.T) {
	var m MixLevel
	m.Lower()
	assert.Zero(t, float32(m))

	for i := 0; i < 150; i++ {
		m.Raise()
	}
	assert.Equal(t, MixLevel(1), m)

	m.Lower()
	assert.InDelta(t, 0.99, float32(m), 1e-6)
}

func TestCubeModel(t *testing.T) {
	positions := CubePositions()
	require.Len(t, positions, 10)
	assert.Len(t, CubeVertices(), 36*CubeStride)

	for i, p := range positions {
		// Rotation leaves the center where the cube was placed.
		center := CubeModel(i, p, 3.7).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDelta(t, p.X(), center.X(), 1e-5)
		assert.InDelta(t, p.Y(), center.Y(), 1e-5)
		assert.InDelta(t, p.Z(), center.Z(), 1e-5)
	}

	assert.True(t, CubeModel(0, mgl32.Vec3{}, 0).ApproxEqual(mgl32.Ident4()))
}

func TestQuadGeometry(t *testing.T) {
	v := QuadVertices()
	assert.Len(t, v, 4*QuadStride)
	for _, idx := range QuadIndices() {
		assert.Less(t, int(idx), 4)
	}
}

func TestCheckerboard(t *testing.T) {
	a := color.RGBA{255, 0, 0, 255}
	b := color.RGBA{0, 0, 255, 255}
	img := Checkerboard(8, 2, a, b)

	assert.Equal(t, a, img.At(0, 0))
	assert.Equal(t, b, img.At(4, 0))
	assert.Equal(t, a, img.At(4, 4))
}

func TestGradient(t *testing.T) {
	from := color.RGBA{0, 0, 0, 255}
	to := color.RGBA{200, 100, 50, 255}
	img := Gradient(3, from, to)

	assert.Equal(t, from, img.At(0, 2))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, img.At(1, 0))
	assert.Equal(t, to, img.At(2, 1))
}

func TestLayoutsMatchStrides(t *testing.T) {
	sum := func(layout []int32) int {
		var n int
		for _, c := range layout {
			n += int(c)
		}
		return n
	}

	assert.Equal(t, SquareStride, sum(SquareLayout()))
	assert.Equal(t, QuadStride, sum(QuadLayout()))
	assert.Equal(t, CubeStride, sum(CubeLayout()))
}
