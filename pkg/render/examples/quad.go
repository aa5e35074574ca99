package examples

import (
	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
	"github.com/leterax/learngl/pkg/render"
)

// QuadScene draws a quad blending two textures. Up and Down change the
// blend.
type QuadScene struct {
	assets config.AssetsConfig

	shader   *openglhelper.Shader
	mesh     *openglhelper.Mesh
	textures [2]*openglhelper.Texture
	mix      demo.MixLevel
}

// NewQuadScene creates the scene with the blend at mix.
func NewQuadScene(assets config.AssetsConfig, mix float32) *QuadScene {
	return &QuadScene{assets: assets, mix: demo.MixLevel(mix)}
}

func (s *QuadScene) Init(_ *render.Frame) error {
	shader, err := loadShader(s.assets, "quad")
	if err != nil {
		return err
	}
	s.shader = shader

	s.textures, err = loadTextures(s.assets)
	if err != nil {
		return err
	}

	s.mesh = openglhelper.NewMesh(demo.QuadVertices(), demo.QuadIndices(), openglhelper.Layout(demo.QuadLayout()), openglhelper.StaticDraw)

	// Samplers read from fixed texture units.
	s.shader.Use()
	s.shader.SetInt("texture1", 0)
	s.shader.SetInt("texture2", 1)

	return nil
}

func (s *QuadScene) Update(f *render.Frame) {
	updateMix(f, &s.mix)
}

func (s *QuadScene) Draw(_ *render.Frame) {
	for i, t := range s.textures {
		t.Bind(uint32(i))
	}

	s.shader.Use()
	s.shader.SetFloat("mixValue", float32(s.mix))
	s.mesh.Draw()
}

func (s *QuadScene) Delete() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	deleteTextures(s.textures[:])
	if s.shader != nil {
		s.shader.Delete()
	}
}

// updateMix moves the texture blend while Up or Down is held.
func updateMix(f *render.Frame, mix *demo.MixLevel) {
	if f.KeyPressed(render.KeyUp) {
		mix.Raise()
	}
	if f.KeyPressed(render.KeyDown) {
		mix.Lower()
	}
}
