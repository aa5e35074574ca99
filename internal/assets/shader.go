// Package assets reads shader sources and decodes texture images. It does
// not touch OpenGL, so the loaders can be exercised without a context.
package assets

import (
	"fmt"
	"io/fs"
)

// ShaderSources holds the text of a vertex/fragment shader pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// ReadShaderSources reads a vertex and fragment shader from fsys.
func ReadShaderSources(fsys fs.FS, vertexPath, fragmentPath string) (ShaderSources, error) {
	// Read vertex shader
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to read vertex shader file: %w", err)
	}

	// Read fragment shader
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to read fragment shader file: %w", err)
	}

	return ShaderSources{
		Vertex:   string(vertexSource),
		Fragment: string(fragmentSource),
	}, nil
}
