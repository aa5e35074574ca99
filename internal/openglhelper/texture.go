package openglhelper

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/leterax/learngl/internal/assets"
)

// TextureOptions controls sampling and orientation of a 2D texture.
type TextureOptions struct {
	Wrap      int32 // GL_REPEAT, GL_CLAMP_TO_EDGE, ...
	MinFilter int32
	MagFilter int32
	FlipY     bool // flip rows so image top lands at v = 1
}

// DefaultTextureOptions repeats the texture and filters linearly, with
// mipmapped minification.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		Wrap:      gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		FlipY:     true,
	}
}

// Texture represents an OpenGL 2D texture
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// NewTexture uploads img as an RGBA texture and generates its mipmaps.
func NewTexture(img image.Image, opts TextureOptions) (*Texture, error) {
	rgba := assets.PrepareImage(img, opts.FlipY)
	width, height := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("texture has empty size %dx%d", width, height)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// set texture wrapping/filtering options
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: width, Height: height}, nil
}

// LoadTexture decodes an image file from fsys and uploads it.
func LoadTexture(fsys fs.FS, path string, opts TextureOptions) (*Texture, error) {
	img, err := assets.LoadImage(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture: %w", err)
	}

	tex, err := NewTexture(img, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("texture loaded", "path", path, "width", tex.Width, "height", tex.Height)

	return tex, nil
}

// Bind activates texture unit `unit` and binds the texture to it
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
