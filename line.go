// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"math"

	"github.com/kitrofimov/srp/framebuffer"
)

// line is a clipped, perspective-divided, screen-mapped line segment
// ready for DDA traversal.
type line struct {
	invW    [2]float64
	varying [2]Varying
	ss      [2][2]float64
	z       [2]float64
	id      int
}

// setupLine performs the line analogue of spec.md §4.H steps 1 and 3:
// perspective divide followed by viewport mapping. Lines are not
// culled or winding-normalized.
func setupLine(fb *framebuffer.Framebuffer, cv [2]clipVertex, id int) line {
	var l line
	l.id = id
	for i := 0; i < 2; i++ {
		w := cv[i].pos[3]
		l.invW[i] = 1 / w
		ndcX := cv[i].pos[0] * l.invW[i]
		ndcY := cv[i].pos[1] * l.invW[i]
		ndcZ := cv[i].pos[2] * l.invW[i]
		x, y, z := fb.NdcToScreen(ndcX, ndcY, ndcZ)
		l.ss[i] = [2]float64{x, y}
		l.z[i] = z
		l.varying[i] = cv[i].varying
	}
	return l
}

// rasterizeLine walks l with a DDA stepping from t=0 to t=1 in
// 1/steps increments, emitting a fragment at each rounded pixel
// center in parameter-increasing order.
func rasterizeLine(ctx *Context, fb *framebuffer.Framebuffer, prog *Program, l *line) {
	dx := l.ss[1][0] - l.ss[0][0]
	dy := l.ss[1][1] - l.ss[0][1]
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}

	bpv := prog.bytesPerVarying()
	nElems := bpv / 8

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		px := int(math.Round(l.ss[0][0] + t*dx))
		py := int(math.Round(l.ss[0][1] + t*dy))
		if !fb.InBounds(px, py) {
			continue
		}

		z := (1-t)*l.z[0] + t*l.z[1]
		var w float64
		var interpolated Varying
		if bpv > 0 {
			interpolated = Varying(ctx.arena.Alloc(bpv))
		}
		if ctx.interpMode == Affine {
			w = 1
			for e := 0; e < nElems; e++ {
				interpolated.SetF64(e, (1-t)*l.varying[0].F64(e)+t*l.varying[1].F64(e))
			}
		} else {
			invW := (1-t)*l.invW[0] + t*l.invW[1]
			w = 1 / invW
			for e := 0; e < nElems; e++ {
				v := l.varying[0].F64(e)*l.invW[0]*(1-t) + l.varying[1].F64(e)*l.invW[1]*t
				interpolated.SetF64(e, w*v)
			}
		}

		fragCoord := [4]float64{float64(px) + 0.5, float64(py) + 0.5, z, w}
		emitFragment(ctx, fb, prog, px, py, fragCoord, interpolated, true, l.id)
	}
}
