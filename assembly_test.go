// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import "testing"

func TestTriangleCount(t *testing.T) {
	cases := []struct {
		prim Primitive
		v    int
		want int
	}{
		{Triangles, 9, 3},
		{Triangles, 10, 3},
		{TriangleStrip, 5, 3},
		{TriangleStrip, 1, 0},
		{TriangleFan, 6, 4},
	}
	for _, c := range cases {
		if n := triangleCount(c.prim, c.v); n != c.want {
			t.Fatalf("triangleCount(%v, %d):\nhave %d\nwant %d", c.prim, c.v, n, c.want)
		}
	}
}

func TestTriangleIndicesStripAlternates(t *testing.T) {
	i0, i1, i2 := triangleIndices(TriangleStrip, 0, 0)
	if i0 != 0 || i1 != 1 || i2 != 2 {
		t.Fatalf("triangleIndices(strip, 0):\nhave (%d,%d,%d)\nwant (0,1,2)", i0, i1, i2)
	}
	i0, i1, i2 = triangleIndices(TriangleStrip, 0, 1)
	if i0 != 2 || i1 != 1 || i2 != 3 {
		t.Fatalf("triangleIndices(strip, 1):\nhave (%d,%d,%d)\nwant (2,1,3)", i0, i1, i2)
	}
}

func TestTriangleIndicesFanSharesApex(t *testing.T) {
	i0, _, _ := triangleIndices(TriangleFan, 0, 0)
	i0b, _, _ := triangleIndices(TriangleFan, 0, 3)
	if i0 != 0 || i0b != 0 {
		t.Fatalf("triangleIndices(fan): apex index not stable across k")
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		prim Primitive
		v    int
		want int
	}{
		{Lines, 6, 3},
		{Lines, 7, 3},
		{LineStrip, 4, 3},
		{LineStrip, 0, 0},
		{LineLoop, 4, 4},
		{LineLoop, 1, 0},
	}
	for _, c := range cases {
		if n := lineCount(c.prim, c.v); n != c.want {
			t.Fatalf("lineCount(%v, %d):\nhave %d\nwant %d", c.prim, c.v, n, c.want)
		}
	}
}

func TestLineIndicesLoopWraps(t *testing.T) {
	i0, i1 := lineIndices(LineLoop, 0, 3, 4)
	if i0 != 3 || i1 != 0 {
		t.Fatalf("lineIndices(loop, k=3, v=4):\nhave (%d,%d)\nwant (3,0)", i0, i1)
	}
}

func TestTriangleIndicesPanicsOnNonTriangleTopology(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("triangleIndices: expected panic for Lines topology")
		}
	}()
	triangleIndices(Lines, 0, 0)
}

func TestDivisibilityWarning(t *testing.T) {
	if w := divisibilityWarning(Triangles, 9); w != "" {
		t.Fatalf("divisibilityWarning(Triangles, 9):\nhave %q\nwant \"\"", w)
	}
	if w := divisibilityWarning(Triangles, 10); w == "" {
		t.Fatalf("divisibilityWarning(Triangles, 10): expected a non-empty warning")
	}
	if w := divisibilityWarning(Lines, 5); w == "" {
		t.Fatalf("divisibilityWarning(Lines, 5): expected a non-empty warning")
	}
	if w := divisibilityWarning(LineStrip, 5); w != "" {
		t.Fatalf("divisibilityWarning(LineStrip, 5):\nhave %q\nwant \"\"", w)
	}
}
