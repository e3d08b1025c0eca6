// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package imageio decodes an image file into the tightly packed,
// top-down, row-major 3-channel RGB byte layout that package texture
// expects. It is the concrete adapter behind the "external image
// loader" collaborator spec.md's Texture component declares out of
// scope: texture.New calls it, but the decode step itself has no
// bearing on rasterization semantics.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// DecodeRGB loads and decodes the image at path, returning its pixels
// as width*height*3 bytes (no alpha), top-to-bottom, row-major.
func DecodeRGB(path string) (pix []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return toRGB(img)
}

// toRGB converts an arbitrary image.Image into packed, top-down RGB
// bytes, dropping any alpha channel.
func toRGB(img image.Image) (pix []byte, width, height int, err error) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			i += 3
		}
	}
	return pix, width, height, nil
}
