// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for scene object rendering.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for scene object rendering.
//
//go:embed phong.frag
var PhongFragmentShader string
