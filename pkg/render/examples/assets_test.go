//go:build cgo

package examples

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPair(t *testing.T) {
	var released []int
	got, err := loadPair(func(i int) (int, error) { return i + 10, nil },
		func(v int) { released = append(released, v) })

	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 11}, got)
	assert.Empty(t, released)
}

func TestLoadPairReleasesOnFailure(t *testing.T) {
	errDecode := errors.New("decode failed")

	var released []int
	got, err := loadPair(func(i int) (int, error) {
		if i == 1 {
			return 0, errDecode
		}
		return i + 10, nil
	}, func(v int) { released = append(released, v) })

	assert.ErrorIs(t, err, errDecode)
	assert.Equal(t, [2]int{}, got, "no released value may leak to the caller")
	assert.Equal(t, []int{10}, released)
}

func TestEmbeddedShaders(t *testing.T) {
	for _, name := range []string{"triangle", "quad", "cube"} {
		for _, ext := range []string{".vert", ".frag"} {
			_, err := fs.ReadFile(embeddedShaders, "shaders/"+name+ext)
			assert.NoError(t, err, name+ext)
		}
	}
}
