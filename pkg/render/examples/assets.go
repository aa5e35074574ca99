// Package examples contains the demo scenes run by the cmd/ programs.
package examples

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
)

//go:embed shaders/*.vert shaders/*.frag
var embeddedShaders embed.FS

// loadShader loads name.vert and name.frag from the configured shader
// directory, or from the shaders built into the binary when none is set.
func loadShader(assets config.AssetsConfig, name string) (*openglhelper.Shader, error) {
	vert, frag := name+".vert", name+".frag"
	if assets.ShaderDir != "" {
		return openglhelper.LoadShaderFromFiles(assets.ShaderDir, vert, frag)
	}

	fsys, err := fs.Sub(embeddedShaders, "shaders")
	if err != nil {
		return nil, err
	}
	return openglhelper.LoadShaderFromFS(fsys, vert, frag)
}

// loadTextures loads the two configured textures, substituting procedural
// images for empty paths.
func loadTextures(assets config.AssetsConfig) ([2]*openglhelper.Texture, error) {
	fallback := demo.DefaultTextures()

	opts := openglhelper.DefaultTextureOptions()
	opts.FlipY = assets.FlipTextures

	load := func(i int) (*openglhelper.Texture, error) {
		var path string
		if i < len(assets.Textures) {
			path = assets.Textures[i]
		}

		var (
			tex *openglhelper.Texture
			err error
		)
		if path == "" {
			tex, err = openglhelper.NewTexture(fallback[i], opts)
		} else {
			tex, err = openglhelper.LoadTexture(os.DirFS(filepath.Dir(path)), filepath.Base(path), opts)
		}
		if err != nil {
			return nil, fmt.Errorf("texture %d: %w", i+1, err)
		}
		return tex, nil
	}

	return loadPair(load, (*openglhelper.Texture).Delete)
}

// loadPair loads two resources in order. If either fails, the ones already
// loaded are released and the zero pair is returned.
func loadPair[T any](load func(i int) (T, error), release func(T)) ([2]T, error) {
	var out [2]T
	for i := range out {
		v, err := load(i)
		if err != nil {
			for _, loaded := range out[:i] {
				release(loaded)
			}
			return [2]T{}, err
		}
		out[i] = v
	}
	return out, nil
}

func deleteTextures(textures []*openglhelper.Texture) {
	for _, t := range textures {
		if t != nil {
			t.Delete()
		}
	}
}
