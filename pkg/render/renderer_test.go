//go:build cgo

package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingScene struct {
	initErr error
	calls   []string
}

func (s *recordingScene) Init(*Frame) error {
	s.calls = append(s.calls, "init")
	return s.initErr
}

func (s *recordingScene) Update(*Frame) { s.calls = append(s.calls, "update") }
func (s *recordingScene) Draw(*Frame)   { s.calls = append(s.calls, "draw") }
func (s *recordingScene) Delete()       { s.calls = append(s.calls, "delete") }

func TestRunSceneLifecycle(t *testing.T) {
	scene := &recordingScene{}
	err := runScene(scene, &Frame{}, func(s Scene) {
		s.Update(&Frame{})
		s.Draw(&Frame{})
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"init", "update", "draw", "delete"}, scene.calls)
}

func TestRunSceneDeletesAfterFailedInit(t *testing.T) {
	errShader := errors.New("shader failed")
	scene := &recordingScene{initErr: errShader}

	looped := false
	err := runScene(scene, &Frame{}, func(Scene) { looped = true })

	assert.ErrorIs(t, err, errShader)
	assert.False(t, looped)
	assert.Equal(t, []string{"init", "delete"}, scene.calls)
}

func TestRunSceneNil(t *testing.T) {
	assert.ErrorIs(t, RunScene(nil, nil), ErrNoScene)
}
