// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDecodeRGBDropsAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	pix, w, h, err := DecodeRGB(path)
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if w != 2 || h != 1 {
		t.Fatalf("dimensions:\nhave %dx%d\nwant 2x1", w, h)
	}
	if len(pix) != 2*1*3 {
		t.Fatalf("len(pix):\nhave %d\nwant 6", len(pix))
	}
	if pix[0] != 255 || pix[1] != 0 || pix[2] != 0 {
		t.Fatalf("pixel 0:\nhave %v\nwant [255 0 0]", pix[0:3])
	}
	if pix[3] != 0 || pix[4] != 255 || pix[5] != 0 {
		t.Fatalf("pixel 1:\nhave %v\nwant [0 255 0]", pix[3:6])
	}
}

func TestDecodeRGBMissingFile(t *testing.T) {
	_, _, _, err := DecodeRGB(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatalf("DecodeRGB(missing): expected error")
	}
}
