// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

// Primitive selects the topology a draw call interprets its vertex
// stream as.
type Primitive int

// Primitive topologies.
const (
	Points Primitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case LineLoop:
		return "LineLoop"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return "Primitive(?)"
	}
}

// CullFace selects which winding of triangle is discarded before
// rasterization.
type CullFace int

// Cull policies.
const (
	CullNone CullFace = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// FrontFace selects which winding, in NDC, is considered
// front-facing.
type FrontFace int

// Winding conventions.
const (
	CCW FrontFace = iota
	CW
)

// InterpolationMode selects how triangle/line attributes are
// interpolated across a primitive.
type InterpolationMode int

// Interpolation modes.
const (
	Perspective InterpolationMode = iota
	Affine
)

// ElemType identifies the element type of a varying. Only VarF64 is
// implemented; the type is open for extension (see spec §9 design
// notes), and code that encounters an unrecognized value panics
// rather than silently misinterpreting bytes.
type ElemType int

// Varying element types.
const (
	VarF64 ElemType = iota
)

// VaryingInfo describes one varying declared by a vertex shader:
// count elements of elemType, contiguous in the varying slab.
type VaryingInfo struct {
	Count    int
	ElemType ElemType
}

func (v VaryingInfo) size() int {
	switch v.ElemType {
	case VarF64:
		return v.Count * 8
	default:
		panic("srp: unknown varying element type")
	}
}

// bytesPerVarying sums the byte size of a varying layout.
func bytesPerVarying(layout []VaryingInfo) int {
	n := 0
	for _, v := range layout {
		n += v.size()
	}
	return n
}
