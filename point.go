// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"math"

	"github.com/kitrofimov/srp/framebuffer"
)

// rasterizePoint viewport-maps v's NDC position and expands it into a
// pointSize x pointSize square of fragments, in row-major order. The
// vertex's own varying slab is reused verbatim for every fragment (no
// interpolation).
func rasterizePoint(ctx *Context, fb *framebuffer.Framebuffer, prog *Program, v *VsOut, pointSize float64, id int) {
	invW := 1 / v.Position[3]
	ndcX := v.Position[0] * invW
	ndcY := v.Position[1] * invW
	ndcZ := v.Position[2] * invW
	cx, cy, cz := fb.NdcToScreen(ndcX, ndcY, ndcZ)

	half := pointSize / 2
	minX := int(math.Ceil(cx - half - 0.5))
	maxX := int(math.Floor(cx+half-0.5)) + 1
	minY := int(math.Ceil(cy - half - 0.5))
	maxY := int(math.Floor(cy+half-0.5)) + 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width() {
		maxX = fb.Width()
	}
	if maxY > fb.Height() {
		maxY = fb.Height()
	}

	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		if py < cy-half || py >= cy+half {
			continue
		}
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5
			if px < cx-half || px >= cx+half {
				continue
			}
			fragCoord := [4]float64{px, py, cz, v.Position[3]}
			emitFragment(ctx, fb, prog, x, y, fragCoord, v.Varying, true, id)
		}
	}
}
