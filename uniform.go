package ren

// UniformLocation identifies one active uniform in a linked Shader. Values
// are only meaningful for the shader that resolved them.
type UniformLocation int32

// UniformLocation resolves a uniform name in the linked program. The second
// result is false when the name is not active in the program. That is an
// expected outcome, not an error: the device compiler is free to eliminate a
// uniform nothing reads.
func (sh *Shader) UniformLocation(name string) (UniformLocation, bool) {
	sh.guard("uniform lookup")
	loc := sh.api.UniformLocation(sh.id, name)
	if loc < 0 {
		return 0, false
	}
	return UniformLocation(loc), true
}

// SetFloat stores v in the float uniform at loc.
func (sh *Shader) SetFloat(loc UniformLocation, v float32) {
	sh.guard("uniform set")
	sh.api.Uniform1f(sh.id, int32(loc), v)
}

// SetVec2 stores (x, y) in the vec2 uniform at loc.
func (sh *Shader) SetVec2(loc UniformLocation, x, y float32) {
	sh.guard("uniform set")
	sh.api.Uniform2f(sh.id, int32(loc), x, y)
}

// SetVec3 stores (x, y, z) in the vec3 uniform at loc.
func (sh *Shader) SetVec3(loc UniformLocation, x, y, z float32) {
	sh.guard("uniform set")
	sh.api.Uniform3f(sh.id, int32(loc), x, y, z)
}

// SetVec4 stores (x, y, z, w) in the vec4 uniform at loc.
func (sh *Shader) SetVec4(loc UniformLocation, x, y, z, w float32) {
	sh.guard("uniform set")
	sh.api.Uniform4f(sh.id, int32(loc), x, y, z, w)
}

// SetInt stores v in the int or sampler uniform at loc.
func (sh *Shader) SetInt(loc UniformLocation, v int32) {
	sh.guard("uniform set")
	sh.api.Uniform1i(sh.id, int32(loc), v)
}

// SetMat4 stores a column-major 4x4 matrix in the mat4 uniform at loc.
func (sh *Shader) SetMat4(loc UniformLocation, m *[16]float32) {
	sh.guard("uniform set")
	sh.api.UniformMatrix4(sh.id, int32(loc), m)
}
