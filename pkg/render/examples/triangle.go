package examples

import (
	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
	"github.com/leterax/learngl/pkg/render"
)

// TriangleScene spins a four-colored square by rewriting its vertices on
// the CPU and re-uploading them every frame.
type TriangleScene struct {
	assets config.AssetsConfig

	shader   *openglhelper.Shader
	mesh     *openglhelper.Mesh
	vertices []float32
	spinner  demo.Spinner
}

// NewTriangleScene creates the scene; GPU resources are made in Init.
func NewTriangleScene(assets config.AssetsConfig) *TriangleScene {
	return &TriangleScene{
		assets:  assets,
		spinner: demo.Spinner{Step: 0.01},
	}
}

func (s *TriangleScene) Init(_ *render.Frame) error {
	shader, err := loadShader(s.assets, "triangle")
	if err != nil {
		return err
	}
	s.shader = shader

	s.vertices = demo.SquareVertices()
	s.mesh = openglhelper.NewMesh(s.vertices, demo.SquareIndices(), openglhelper.Layout(demo.SquareLayout()), openglhelper.StreamDraw)

	return nil
}

func (s *TriangleScene) Update(_ *render.Frame) {
	demo.RotateSquare(s.vertices, s.spinner.Advance(), 0.5)
	s.mesh.UpdateVertices(s.vertices)
}

func (s *TriangleScene) Draw(_ *render.Frame) {
	s.shader.Use()
	s.mesh.Draw()
}

func (s *TriangleScene) Delete() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
