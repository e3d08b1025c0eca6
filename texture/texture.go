// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package texture implements the decoded RGBA image the fragment
// stage samples from: a 3-channel source, wrap/filter modes per
// axis, and nearest-neighbor UV sampling.
package texture

import (
	"errors"
	"math"

	"github.com/kitrofimov/srp/internal/imageio"
	"github.com/kitrofimov/srp/internal/mathutil"
)

// Wrap selects how out-of-range texture coordinates are handled.
type Wrap int

// Wrap modes.
const (
	Repeat Wrap = iota
	ClampToEdge
)

// Filter selects the sampling kernel. Only Nearest is implemented;
// the spec's Non-goals exclude bi/trilinear filtering and mipmaps.
type Filter int

// Filter modes.
const (
	Nearest Filter = iota
)

// Texture is a decoded, row-major, top-to-bottom RGB image plus its
// sampling parameters.
type Texture struct {
	pix           []byte // width*height*3
	width, height int
	wrapS, wrapT  Wrap
	filterMag     Filter
	filterMin     Filter
}

// New loads and decodes the image at imagePath and returns a Texture
// configured with the given wrap and filter modes.
// If the image cannot be loaded, New returns a nil Texture and a
// non-nil error; callers that drive a message callback should report
// it at High severity (see spec.md §7, "Resource failure").
func New(imagePath string, wrapS, wrapT Wrap, filterMag, filterMin Filter) (*Texture, error) {
	pix, w, h, err := imageio.DecodeRGB(imagePath)
	if err != nil {
		return nil, err
	}
	return FromRGB(pix, w, h, wrapS, wrapT, filterMag, filterMin)
}

// FromRGB builds a Texture directly from already-decoded, packed
// top-down RGB bytes (width*height*3 long), bypassing the image
// loader. This is the entry point tests and callers with their own
// decoded pixels use.
func FromRGB(pix []byte, width, height int, wrapS, wrapT Wrap, filterMag, filterMin Filter) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*3 {
		return nil, errors.New("texture: invalid pixel data")
	}
	return &Texture{
		pix: pix, width: width, height: height,
		wrapS: wrapS, wrapT: wrapT,
		filterMag: filterMag, filterMin: filterMin,
	}, nil
}

// Width returns the texture's width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture's height in texels.
func (t *Texture) Height() int { return t.height }

// Sample writes the color at (u,v) into out, as [r,g,b,a] in [0,1].
// Wrap is applied per spec.md §4.D: Repeat folds into [0,1) via
// u - floor(u); ClampToEdge saturates to [0,1]. The V axis is flipped
// when mapping to pixel rows. Only Nearest filtering is implemented.
func (t *Texture) Sample(u, v float64, out *[4]float64) {
	u = wrap(t.wrapS, u)
	v = wrap(t.wrapT, v)

	xi := int(math.Round(float64(t.width-1) * u))
	yi := int(math.Round(float64(t.height-1) * (1 - v)))
	xi = mathutil.Clamp(xi, 0, t.width-1)
	yi = mathutil.Clamp(yi, 0, t.height-1)

	i := (yi*t.width + xi) * 3
	out[0] = float64(t.pix[i]) / 255
	out[1] = float64(t.pix[i+1]) / 255
	out[2] = float64(t.pix[i+2]) / 255
	out[3] = 1
}

func wrap(w Wrap, c float64) float64 {
	if c >= 0 && c <= 1 {
		return c
	}
	switch w {
	case Repeat:
		return c - math.Floor(c)
	case ClampToEdge:
		return mathutil.Clamp(c, 0, 1)
	default:
		panic("texture: unknown wrap mode")
	}
}
