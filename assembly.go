// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

// triangleCount returns the number of triangles a draw of v vertices
// produces under the given topology.
func triangleCount(prim Primitive, v int) int {
	switch prim {
	case Triangles:
		return v / 3
	case TriangleStrip, TriangleFan:
		if v < 2 {
			return 0
		}
		return v - 2
	default:
		panic("srp: not a triangle topology")
	}
}

// triangleIndices returns the three stream indices, relative to
// startIndex b, of the k'th triangle under the given topology.
func triangleIndices(prim Primitive, b, k int) (i0, i1, i2 int) {
	switch prim {
	case Triangles:
		return b + 3*k, b + 3*k + 1, b + 3*k + 2
	case TriangleStrip:
		if k%2 != 0 {
			return b + k + 1, b + k, b + k + 2
		}
		return b + k, b + k + 1, b + k + 2
	case TriangleFan:
		return b, b + k + 1, b + k + 2
	default:
		panic("srp: not a triangle topology")
	}
}

// lineCount returns the number of line segments a draw of v vertices
// produces under the given topology.
func lineCount(prim Primitive, v int) int {
	switch prim {
	case Lines:
		return v / 2
	case LineStrip:
		if v < 1 {
			return 0
		}
		return v - 1
	case LineLoop:
		if v > 1 {
			return v
		}
		return 0
	default:
		panic("srp: not a line topology")
	}
}

// lineIndices returns the two stream indices, relative to startIndex
// b, of the k'th line segment under the given topology. v is the
// total vertex count, needed by LineLoop's wraparound.
func lineIndices(prim Primitive, b, k, v int) (i0, i1 int) {
	switch prim {
	case Lines:
		return b + 2*k, b + 2*k + 1
	case LineStrip:
		return b + k, b + k + 1
	case LineLoop:
		return b + k, b + (k+1)%v
	default:
		panic("srp: not a line topology")
	}
}

// isTriangleTopology reports whether prim assembles into triangles.
func isTriangleTopology(prim Primitive) bool {
	switch prim {
	case Triangles, TriangleStrip, TriangleFan:
		return true
	default:
		return false
	}
}

// isLineTopology reports whether prim assembles into line segments.
func isLineTopology(prim Primitive) bool {
	switch prim {
	case Lines, LineStrip, LineLoop:
		return true
	default:
		return false
	}
}

// divisibilityWarning returns a non-empty diagnostic when the vertex
// count for prim leaves excess vertices that will be silently
// dropped, per spec.md §4.G.
func divisibilityWarning(prim Primitive, v int) string {
	switch prim {
	case Triangles:
		if extra := v % 3; extra != 0 {
			return "vertex count not a multiple of 3; excess vertices dropped"
		}
	case Lines:
		if extra := v % 2; extra != 0 {
			return "vertex count not a multiple of 2; excess vertex dropped"
		}
	}
	return ""
}
