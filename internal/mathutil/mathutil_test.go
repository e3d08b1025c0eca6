// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package mathutil

import "testing"

func TestClampFloat(t *testing.T) {
	if v := Clamp(-1.0, 0.0, 1.0); v != 0 {
		t.Fatalf("Clamp(-1,0,1):\nhave %v\nwant 0", v)
	}
	if v := Clamp(2.0, 0.0, 1.0); v != 1 {
		t.Fatalf("Clamp(2,0,1):\nhave %v\nwant 1", v)
	}
	if v := Clamp(0.5, 0.0, 1.0); v != 0.5 {
		t.Fatalf("Clamp(0.5,0,1):\nhave %v\nwant 0.5", v)
	}
}

func TestClampInt(t *testing.T) {
	if v := Clamp(-5, 0, 10); v != 0 {
		t.Fatalf("Clamp(-5,0,10):\nhave %v\nwant 0", v)
	}
	if v := Clamp(15, 0, 10); v != 10 {
		t.Fatalf("Clamp(15,0,10):\nhave %v\nwant 10", v)
	}
}
