// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"math"
	"unsafe"
)

// Varying is a contiguous byte slab viewed as a sequence of f64
// elements. It backs both the post-vertex-shader cache's per-vertex
// output and every per-fragment interpolated attribute buffer; both
// are allocated from a Context's arena, so Varying values must not be
// retained past the draw call that produced them.
type Varying []byte

// F64 reads the i'th f64 element.
func (v Varying) F64(i int) float64 {
	return *(*float64)(unsafe.Pointer(&v[i*8]))
}

// SetF64 writes the i'th f64 element.
func (v Varying) SetF64(i int, x float64) {
	*(*float64)(unsafe.Pointer(&v[i*8])) = x
}

// Len returns the number of f64 elements the slab holds.
func (v Varying) Len() int { return len(v) / 8 }

// lerpVarying writes (1-t)*a + t*b element-wise into dst.
func lerpVarying(dst, a, b Varying, t float64) {
	s := 1 - t
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.SetF64(i, s*a.F64(i)+t*b.F64(i))
	}
}

// nan64 is used to mean "no explicit fragment depth was written".
var nan64 = math.NaN()
