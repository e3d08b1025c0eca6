// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package framebuffer

import "testing"

func TestClearInvariant(t *testing.T) {
	fb := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := fb.Color(x, y); c != 0 {
				t.Fatalf("Color(%d,%d):\nhave %#x\nwant 0", x, y, c)
			}
			if d := fb.Depth(x, y); d != -1 {
				t.Fatalf("Depth(%d,%d):\nhave %v\nwant -1", x, y, d)
			}
		}
	}
}

func TestClearAfterWrite(t *testing.T) {
	fb := New(2, 2)
	fb.DrawPixel(0, 0, 0.5, 0xff00ffff)
	fb.Clear()
	if c := fb.Color(0, 0); c != 0 {
		t.Fatalf("Color after Clear:\nhave %#x\nwant 0", c)
	}
	if d := fb.Depth(0, 0); d != -1 {
		t.Fatalf("Depth after Clear:\nhave %v\nwant -1", d)
	}
}

func TestNdcToScreenRoundTrip(t *testing.T) {
	fb := New(8, 6)
	pts := [][3]float64{
		{-1, -1, 0}, {1, 1, 0}, {0, 0, 0.5}, {-1, 1, -1}, {1, -1, 1},
	}
	for _, p := range pts {
		x, y, _ := fb.NdcToScreen(p[0], p[1], p[2])
		if x < 0 || x > float64(fb.Width()-1) {
			t.Fatalf("NdcToScreen(%v).x = %v out of [0,%d]", p, x, fb.Width()-1)
		}
		if y < 0 || y > float64(fb.Height()-1) {
			t.Fatalf("NdcToScreen(%v).y = %v out of [0,%d]", p, y, fb.Height()-1)
		}
	}
}

func TestDepthMonotonicity(t *testing.T) {
	fb := New(1, 1)
	depths := []float64{-0.5, 0, 0.2, 0.2, 0.9}
	last := -1.0
	for _, d := range depths {
		if fb.DepthTest(0, 0, d) {
			if d <= last {
				t.Fatalf("depth test passed for non-increasing depth %v after %v", d, last)
			}
			fb.DrawPixel(0, 0, d, 0)
			last = d
		}
	}
	if got := fb.Depth(0, 0); got != last {
		t.Fatalf("final depth:\nhave %v\nwant %v", got, last)
	}
}

func TestDepthTestStrict(t *testing.T) {
	fb := New(1, 1)
	fb.DrawPixel(0, 0, 0.3, 0)
	if fb.DepthTest(0, 0, 0.3) {
		t.Fatalf("DepthTest(equal depth):\nhave true\nwant false")
	}
	if !fb.DepthTest(0, 0, 0.30001) {
		t.Fatalf("DepthTest(greater depth):\nhave false\nwant true")
	}
}

func TestPackColorClamps(t *testing.T) {
	cases := []struct {
		r, g, b, a float64
		want       uint32
	}{
		{1, 0, 0, 1, 0xFF0000FF},
		{0, 1, 0, 1, 0x00FF00FF},
		{2, -1, 0.5, 1, 0xFF0080FF},
	}
	for _, c := range cases {
		if got := PackColor(c.r, c.g, c.b, c.a); got != c.want {
			t.Fatalf("PackColor(%v,%v,%v,%v):\nhave %#08x\nwant %#08x", c.r, c.g, c.b, c.a, got, c.want)
		}
	}
}
