package openglhelper

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/assets"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32

	// uniform locations by name, filled from the active uniforms at link
	// time; -1 marks names the program does not use
	locations map[string]int32
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// NewShader creates a new shader program from vertex and fragment shader source
func NewShader(vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	s := &Shader{ID: program}
	s.cacheUniformLocations()

	return s, nil
}

// newProgram creates a shader program from vertex and fragment shader sources
func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

// cacheUniformLocations records the location of every active uniform so the
// setters never query the driver by name.
func (s *Shader) cacheUniformLocations() {
	var count, maxLength int32
	gl.GetProgramiv(s.ID, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(s.ID, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)

	s.locations = make(map[string]int32, count)
	if count == 0 {
		return
	}

	buf := make([]uint8, maxLength+1)
	for i := range uint32(count) {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(s.ID, i, maxLength, &length, &size, &xtype, &buf[0])

		// Arrays report their first element, "lights[0]".
		name := strings.TrimSuffix(string(buf[:length]), "[0]")
		s.locations[name] = gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	}
}

// UniformLocation returns the cached location of a uniform, or -1 if the
// program has no active uniform by that name.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}

	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Debug("uniform not active in program", "program", s.ID, "uniform", name)
	}
	s.locations[name] = loc

	return loc
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.UniformLocation(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.UniformLocation(name), value)
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(s.UniformLocation(name), 1, false, &mat[0])
}

// LoadShaderFromFS loads a shader program from vertex and fragment shader files in fsys
func LoadShaderFromFS(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	src, err := assets.ReadShaderSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}

	shader, err := NewShader(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}

	slog.Debug("shader program linked", "vertex", vertexPath, "fragment", fragmentPath, "uniforms", len(shader.locations))

	return shader, nil
}

// LoadShaderFromFiles loads a shader program from vertex and fragment shader files
func LoadShaderFromFiles(dir, vertexPath, fragmentPath string) (*Shader, error) {
	return LoadShaderFromFS(os.DirFS(dir), vertexPath, fragmentPath)
}
