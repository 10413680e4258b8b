package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/studiolumen/deskscene/pkg/math"
)

// Program wraps a linked shader program with a uniform location cache
// so per-frame uniform updates skip the gl.GetUniformLocation round
// trip.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewProgram compiles vertex and fragment sources and links them.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	handle, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Destroy deletes the program object.
func (p *Program) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// location returns the cached uniform location, fetching it on first
// use. Inactive uniforms cache -1 and the setters skip them.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, value int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v [2]float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform2fv(loc, 1, &v[0])
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v [3]float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v [4]float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}
