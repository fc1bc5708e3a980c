package shader

import _ "embed"

// LitVertexShader transforms positions and normals for lit meshes.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades a flat base color with one directional light.
//
//go:embed lit.frag
var LitFragmentShader string
