// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package framebuffer implements the color+depth target that the
// rasterizer writes into.
package framebuffer

import "github.com/kitrofimov/srp/internal/mathutil"

// Framebuffer is a fixed-size color+depth render target.
// Color is packed 32-bit RGBA (red in the most significant byte);
// depth is f64 in [-1, 1]. The zero value is not usable; use New.
type Framebuffer struct {
	width, height int
	color         []uint32
	depth         []float64
}

// New creates a cleared Framebuffer of the given dimensions.
// It panics if width or height is not positive.
func New(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("framebuffer: invalid dimensions")
	}
	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]uint32, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// Width returns the framebuffer's width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer's height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear sets every color word to 0x00000000 and every depth to -1.0.
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = 0
	}
	for i := range fb.depth {
		fb.depth[i] = -1
	}
}

// Color returns the color word at (x,y). It panics if (x,y) is out
// of range.
func (fb *Framebuffer) Color(x, y int) uint32 { return fb.color[fb.index(x, y)] }

// Depth returns the stored depth at (x,y). It panics if (x,y) is out
// of range.
func (fb *Framebuffer) Depth(x, y int) float64 { return fb.depth[fb.index(x, y)] }

// ColorPlane returns the row-major color plane. Callers must not
// retain the slice past the Framebuffer's lifetime in a way that
// assumes it is immutable.
func (fb *Framebuffer) ColorPlane() []uint32 { return fb.color }

// DepthPlane returns the row-major depth plane.
func (fb *Framebuffer) DepthPlane() []float64 { return fb.depth }

// NdcToScreen maps a normalized device coordinate to screen space.
// The returned z is passed through unchanged.
func (fb *Framebuffer) NdcToScreen(x, y, z float64) (sx, sy, sz float64) {
	sx = (float64(fb.width-1) / 2) * (x + 1)
	sy = -(float64(fb.height-1) / 2) * (y - 1)
	sz = z
	return
}

// DepthTest reports whether d passes the depth test at (x,y): it
// passes when d is strictly greater than the stored depth.
// It panics if (x,y) is out of range.
func (fb *Framebuffer) DepthTest(x, y int, d float64) bool {
	return d > fb.depth[fb.index(x, y)]
}

// DrawPixel unconditionally writes color and depth at (x,y).
// The caller must guarantee d is in [-1,1] and (x,y) is in range;
// DrawPixel performs no clamping; an out-of-range (x,y) panics.
func (fb *Framebuffer) DrawPixel(x, y int, d float64, color uint32) {
	i := fb.index(x, y)
	fb.color[i] = color
	fb.depth[i] = d
}

// InBounds reports whether (x,y) addresses a pixel of fb.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

func (fb *Framebuffer) index(x, y int) int {
	if !fb.InBounds(x, y) {
		panic("framebuffer: pixel out of range")
	}
	return y*fb.width + x
}

// PackColor clamps each channel to [0,255] after scaling by 255 and
// packs them into a 32-bit RGBA word with red in the most significant
// byte.
func PackColor(r, g, b, a float64) uint32 {
	return uint32(clampByte(r))<<24 | uint32(clampByte(g))<<16 | uint32(clampByte(b))<<8 | uint32(clampByte(a))
}

func clampByte(c float64) uint8 {
	v := mathutil.Clamp(c*255, 0, 255)
	return uint8(v + 0.5)
}
