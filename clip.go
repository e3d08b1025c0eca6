// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import "math"

// clipEpsilon guards the plane-crossing parameter computation against
// division by a near-zero difference of signed distances (spec.md
// §4.F: "guarded: when |da-db| <= ε treat as non-crossing").
const clipEpsilon = 1e-9

// clipVertex is a vertex in homogeneous clip space, with a varying
// slab owned by the clip workspace rather than the post-VS cache.
type clipVertex struct {
	pos     [4]float64
	varying Varying
}

// clip plane indices, in the fixed order spec.md §4.F requires:
// left, right, bottom, top, near, far.
const (
	planeLeft = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
	numPlanes
)

// planeDist returns the signed distance of p to the given clip plane.
// p is inside the plane when the result is positive.
func planeDist(plane int, p [4]float64) float64 {
	x, y, z, w := p[0], p[1], p[2], p[3]
	switch plane {
	case planeLeft:
		return x + w
	case planeRight:
		return w - x
	case planeBottom:
		return y + w
	case planeTop:
		return w - y
	case planeNear:
		return z + w
	case planeFar:
		return w - z
	default:
		panic("srp: unknown clip plane")
	}
}

// lerpClipVertex returns the affine combination of a and b at
// parameter t, allocating its varying slab from ar.
func lerpClipVertex(ar arenaAllocator, bpv int, a, b clipVertex, t float64) clipVertex {
	var out clipVertex
	s := 1 - t
	for i := range out.pos {
		out.pos[i] = s*a.pos[i] + t*b.pos[i]
	}
	if bpv > 0 {
		out.varying = Varying(ar.Alloc(bpv))
		lerpVarying(out.varying, a.varying, b.varying, t)
	}
	return out
}

// copyClipVertex deep-copies v's varyings into a new arena
// allocation, so the clip workspace never aliases the post-VS cache.
func copyClipVertex(ar arenaAllocator, bpv int, v clipVertex) clipVertex {
	out := v
	if bpv > 0 {
		out.varying = Varying(ar.Alloc(bpv))
		copy(out.varying, v.varying)
	}
	return out
}

// maxClipVertices bounds the Sutherland-Hodgman polygon buffer.
// Six half-space clips of a triangle produce at most 9 vertices; 16
// is the conservative bound spec.md §4.F permits.
const maxClipVertices = 16

// clipTriangle clips a triangle against the six canonical clip-space
// half-spaces using Sutherland-Hodgman, and fan-triangulates the
// resulting convex polygon. It returns nil if the triangle is fully
// clipped away.
func clipTriangle(ar arenaAllocator, bpv int, in [3]clipVertex) [][3]clipVertex {
	var poly [maxClipVertices]clipVertex
	n := 3
	for i := 0; i < 3; i++ {
		poly[i] = copyClipVertex(ar, bpv, in[i])
	}

	for plane := 0; plane < numPlanes; plane++ {
		if n == 0 {
			break
		}
		var next [maxClipVertices]clipVertex
		m := 0
		for i := 0; i < n; i++ {
			curr := poly[i]
			nxt := poly[(i+1)%n]
			dCurr := planeDist(plane, curr.pos)
			dNext := planeDist(plane, nxt.pos)
			currIn := dCurr > 0
			nextIn := dNext > 0
			crossing := currIn != nextIn && math.Abs(dCurr-dNext) > clipEpsilon

			switch {
			case currIn && nextIn:
				next[m] = nxt
				m++
			case crossing:
				t := dCurr / (dCurr - dNext)
				next[m] = lerpClipVertex(ar, bpv, curr, nxt, t)
				m++
				if nextIn {
					next[m] = nxt
					m++
				}
			}
		}
		n = m
		poly = next
	}

	if n == 0 {
		return nil
	}
	tris := make([][3]clipVertex, 0, n-2)
	for i := 1; i <= n-2; i++ {
		tris = append(tris, [3]clipVertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// clipLine clips a line segment against the six canonical clip-space
// half-spaces using Liang-Barsky. It returns ok=false if the segment
// is fully clipped away.
func clipLine(ar arenaAllocator, bpv int, a, b clipVertex) (outA, outB clipVertex, ok bool) {
	t0, t1 := 0.0, 1.0
	for plane := 0; plane < numPlanes; plane++ {
		dA := planeDist(plane, a.pos)
		dB := planeDist(plane, b.pos)
		switch {
		case dA < 0 && dB < 0:
			return clipVertex{}, clipVertex{}, false
		case (dA < 0) != (dB < 0) && math.Abs(dA-dB) > clipEpsilon:
			t := dA / (dA - dB)
			if dA < 0 {
				if t > t0 {
					t0 = t
				}
			} else if t < t1 {
				t1 = t
			}
		}
		if t0 > t1 {
			return clipVertex{}, clipVertex{}, false
		}
	}

	outA, outB = a, b
	if t0 > 0 {
		outA = lerpClipVertex(ar, bpv, a, b, t0)
	}
	if t1 < 1 {
		outB = lerpClipVertex(ar, bpv, a, b, t1)
	}
	return outA, outB, true
}
