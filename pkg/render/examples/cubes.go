package examples

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
	"github.com/leterax/learngl/pkg/render"
)

// CubesScene draws a field of spinning textured cubes seen through the fly
// camera.
type CubesScene struct {
	assets config.AssetsConfig

	shader    *openglhelper.Shader
	mesh      *openglhelper.Mesh
	textures  [2]*openglhelper.Texture
	positions []mgl32.Vec3
	mix       demo.MixLevel
}

// NewCubesScene creates the scene with the texture blend at mix.
func NewCubesScene(assets config.AssetsConfig, mix float32) *CubesScene {
	return &CubesScene{
		assets:    assets,
		positions: demo.CubePositions(),
		mix:       demo.MixLevel(mix),
	}
}

func (s *CubesScene) Init(_ *render.Frame) error {
	shader, err := loadShader(s.assets, "cube")
	if err != nil {
		return err
	}
	s.shader = shader

	s.textures, err = loadTextures(s.assets)
	if err != nil {
		return err
	}

	s.mesh = openglhelper.NewMesh(demo.CubeVertices(), nil, openglhelper.Layout(demo.CubeLayout()), openglhelper.StaticDraw)

	s.shader.Use()
	s.shader.SetInt("texture1", 0)
	s.shader.SetInt("texture2", 1)

	return nil
}

func (s *CubesScene) Update(f *render.Frame) {
	updateMix(f, &s.mix)
}

func (s *CubesScene) Draw(f *render.Frame) {
	for i, t := range s.textures {
		t.Bind(uint32(i))
	}

	s.shader.Use()
	s.shader.SetFloat("mixValue", float32(s.mix))
	s.shader.SetMat4("view", f.View)
	s.shader.SetMat4("projection", f.Projection)

	for i, pos := range s.positions {
		s.shader.SetMat4("model", demo.CubeModel(i, pos, f.Elapsed))
		s.mesh.Draw()
	}
}

func (s *CubesScene) Delete() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	deleteTextures(s.textures[:])
	if s.shader != nil {
		s.shader.Delete()
	}
}
