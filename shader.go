// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

// VsIn is the input to a vertex shader closure: the draw's uniform
// data, a pointer into the user's vertex buffer for this vertex, and
// the vertex's identity within the stream.
type VsIn struct {
	Uniform  any
	PVertex  []byte
	VertexID uint64
}

// VsOut is a vertex shader's output: a clip-space position plus a
// slab of interpolated attributes whose layout is declared by the
// Program's Varyings.
type VsOut struct {
	Position [4]float64
	Varying  Varying
}

// VertexShader transforms one vertex from the user's vertex buffer
// into clip space, writing its varyings into out.Varying (already
// sized and owned by the pipeline; the shader must not reassign it).
type VertexShader func(in VsIn, out *VsOut)

// FsIn is the input to a fragment shader closure: the draw's uniform
// data, the primitive's interpolated attributes at this fragment, its
// window-space coordinate (x+0.5, y+0.5, depth, w), whether the
// originating primitive was front-facing, and the primitive's
// emission-order id within the draw call.
type FsIn struct {
	Uniform      any
	Interpolated Varying
	FragCoord    [4]float64
	FrontFacing  bool
	PrimitiveID  int
}

// FsOut is a fragment shader's output. Color channels are expected in
// [0,1] and are clamped when packed. FragDepth defaults to NaN,
// meaning "use FragCoord.z"; a shader that wants to override the
// fragment's depth sets it explicitly.
type FsOut struct {
	Color     [4]float64
	FragDepth float64
}

// FragmentShader shades one covered fragment.
type FragmentShader func(in FsIn, out *FsOut)

// Program bundles the shader closures, the uniform data passed
// unchanged to both of them, and the varying layout the vertex
// shader's output slab follows.
type Program struct {
	Vertex   VertexShader
	Fragment FragmentShader
	Uniform  any
	Varyings []VaryingInfo
}

func (p *Program) bytesPerVarying() int { return bytesPerVarying(p.Varyings) }
