// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import "testing"

// checker builds a 2x2 RGB image: red, green / blue, white.
func checker() *Texture {
	pix := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	tex, err := FromRGB(pix, 2, 2, Repeat, Repeat, Nearest, Nearest)
	if err != nil {
		panic(err)
	}
	return tex
}

func TestSampleCorners(t *testing.T) {
	tex := checker()
	var out [4]float64
	// V is flipped: v=1 maps to the top row (y=0).
	tex.Sample(0, 1, &out)
	if out != [4]float64{1, 0, 0, 1} {
		t.Fatalf("Sample(0,1):\nhave %v\nwant [1 0 0 1]", out)
	}
	tex.Sample(1, 1, &out)
	if out != [4]float64{0, 1, 0, 1} {
		t.Fatalf("Sample(1,1):\nhave %v\nwant [0 1 0 1]", out)
	}
	tex.Sample(0, 0, &out)
	if out != [4]float64{0, 0, 1, 1} {
		t.Fatalf("Sample(0,0):\nhave %v\nwant [0 0 1 1]", out)
	}
	tex.Sample(1, 0, &out)
	if out != [4]float64{1, 1, 1, 1} {
		t.Fatalf("Sample(1,0):\nhave %v\nwant [1 1 1 1]", out)
	}
}

func TestWrapRepeat(t *testing.T) {
	tex := checker()
	var a, b [4]float64
	tex.Sample(0, 1, &a)
	tex.Sample(1, 2, &b) // wraps v: 2 -> 0
	tex.Sample(1, 0, &a)
	tex.Sample(1, -1, &b) // -1 wraps to 0
	if a != b {
		t.Fatalf("Repeat wrap mismatch:\nhave %v\nwant %v", b, a)
	}
}

func TestWrapClampToEdge(t *testing.T) {
	pix := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255}
	tex, err := FromRGB(pix, 2, 2, ClampToEdge, ClampToEdge, Nearest, Nearest)
	if err != nil {
		t.Fatalf("FromRGB: %v", err)
	}
	var a, b [4]float64
	tex.Sample(0, 1, &a)
	tex.Sample(-5, 7, &b)
	if a != b {
		t.Fatalf("ClampToEdge wrap mismatch:\nhave %v\nwant %v", b, a)
	}
}

func TestFromRGBInvalidSize(t *testing.T) {
	_, err := FromRGB(make([]byte, 5), 2, 2, Repeat, Repeat, Nearest, Nearest)
	if err == nil {
		t.Fatalf("FromRGB with wrong pixel length: expected error")
	}
}
