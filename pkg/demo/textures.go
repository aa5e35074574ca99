package demo

import (
	"image"
	"image/color"
)

// Checkerboard returns a size×size image of cells×cells alternating squares.
func Checkerboard(size, cells int, a, b color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// Gradient returns a size×size image blending from `from` on the left edge
// to `to` on the right edge.
func Gradient(size int, from, to color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		t := 0.0
		if size > 1 {
			t = float64(x) / float64(size-1)
		}
		c := color.RGBA{
			R: lerp8(from.R, to.R, t),
			G: lerp8(from.G, to.G, t),
			B: lerp8(from.B, to.B, t),
			A: lerp8(from.A, to.A, t),
		}
		for y := 0; y < size; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// DefaultTextures returns the procedural stand-ins used when no texture
// files are configured: a wooden-crate-colored checkerboard and a gradient.
func DefaultTextures() [2]image.Image {
	return [2]image.Image{
		Checkerboard(256, 8, color.RGBA{0x8b, 0x5a, 0x2b, 0xff}, color.RGBA{0xd2, 0xa6, 0x79, 0xff}),
		Gradient(256, color.RGBA{0x20, 0x40, 0xff, 0x80}, color.RGBA{0xff, 0xd0, 0x20, 0xff}),
	}
}
