// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import "testing"

func TestVaryingF64RoundTrip(t *testing.T) {
	v := make(Varying, 24)
	v.SetF64(0, 1.5)
	v.SetF64(1, -2.25)
	v.SetF64(2, 0)
	if x := v.F64(0); x != 1.5 {
		t.Fatalf("F64(0):\nhave %v\nwant 1.5", x)
	}
	if x := v.F64(1); x != -2.25 {
		t.Fatalf("F64(1):\nhave %v\nwant -2.25", x)
	}
	if n := v.Len(); n != 3 {
		t.Fatalf("Len():\nhave %d\nwant 3", n)
	}
}

func TestLerpVarying(t *testing.T) {
	a := make(Varying, 8)
	b := make(Varying, 8)
	dst := make(Varying, 8)
	a.SetF64(0, 0)
	b.SetF64(0, 10)
	lerpVarying(dst, a, b, 0.25)
	if x := dst.F64(0); x != 2.5 {
		t.Fatalf("lerpVarying:\nhave %v\nwant 2.5", x)
	}
}
