// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"math"

	"github.com/kitrofimov/srp/framebuffer"
)

// geomEpsilon guards the degenerate-triangle and flat-edge checks in
// triangle setup.
const geomEpsilon = 1e-9

// baryEpsilon is the tie-break tolerance for the top-left fill rule.
const baryEpsilon = 1e-9

// triangle is a clipped, perspective-divided, screen-mapped triangle
// ready for barycentric traversal. Its vertex order is always CCW:
// setup swaps vertices 1 and 2 when the input winding is CW.
type triangle struct {
	invW    [3]float64
	varying [3]Varying
	ss      [3][2]float64 // screen-space x,y
	z       [3]float64    // screen-space z (NDC z, unaffected by viewport mapping)
	edge    [3][2]float64
	edgeTL  [3]bool

	areaX2 float64

	minBP, maxBP [2]int

	lambda, lambdaRow [3]float64
	dldx, dldy        [3]float64

	isFrontFacing bool
	id            int
}

func cross2(a, b [2]float64) float64 { return a[0]*b[1] - a[1]*b[0] }

// setupTriangle performs spec.md §4.H step 1 through 6: perspective
// divide, culling, winding normalization, viewport mapping, and
// barycentric initialization. ok is false when the triangle was
// culled or is degenerate; callers must not rasterize it.
func setupTriangle(ctx *Context, fb *framebuffer.Framebuffer, cv [3]clipVertex, id int) (tri triangle, ok bool) {
	var ndc [3][3]float64
	var invW [3]float64
	for i := 0; i < 3; i++ {
		w := cv[i].pos[3]
		invW[i] = 1 / w
		ndc[i][0] = cv[i].pos[0] * invW[i]
		ndc[i][1] = cv[i].pos[1] * invW[i]
		ndc[i][2] = cv[i].pos[2] * invW[i]
	}

	signedArea := cross2(
		[2]float64{ndc[1][0] - ndc[0][0], ndc[1][1] - ndc[0][1]},
		[2]float64{ndc[2][0] - ndc[0][0], ndc[2][1] - ndc[0][1]},
	)
	isCCW := signedArea > 0
	isFrontFacing := isCCW == (ctx.frontFace == CCW)

	switch ctx.cullFace {
	case CullFront:
		if isFrontFacing {
			return tri, false
		}
	case CullBack:
		if !isFrontFacing {
			return tri, false
		}
	case CullFrontAndBack:
		return tri, false
	}

	varying := [3]Varying{cv[0].varying, cv[1].varying, cv[2].varying}
	if !isCCW {
		ndc[1], ndc[2] = ndc[2], ndc[1]
		invW[1], invW[2] = invW[2], invW[1]
		varying[1], varying[2] = varying[2], varying[1]
	}

	tri.invW = invW
	tri.varying = varying
	tri.isFrontFacing = isFrontFacing
	tri.id = id

	for i := 0; i < 3; i++ {
		x, y, z := fb.NdcToScreen(ndc[i][0], ndc[i][1], ndc[i][2])
		tri.ss[i] = [2]float64{x, y}
		tri.z[i] = z
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		tri.edge[i] = [2]float64{tri.ss[j][0] - tri.ss[i][0], tri.ss[j][1] - tri.ss[i][1]}
	}

	tri.areaX2 = math.Abs(cross2(tri.edge[0], tri.edge[2]))
	if tri.areaX2 <= geomEpsilon {
		return tri, false
	}

	minX, minY := tri.ss[0][0], tri.ss[0][1]
	maxX, maxY := minX, minY
	for i := 1; i < 3; i++ {
		minX, maxX = math.Min(minX, tri.ss[i][0]), math.Max(maxX, tri.ss[i][0])
		minY, maxY = math.Min(minY, tri.ss[i][1]), math.Max(maxY, tri.ss[i][1])
	}
	tri.minBP = [2]int{int(math.Floor(minX)), int(math.Floor(minY))}
	tri.maxBP = [2]int{int(math.Ceil(maxX)), int(math.Ceil(maxY))}

	// Clamp the AABB to the framebuffer so drawPixel's in-range
	// precondition holds (spec.md §9 open question; see SPEC_FULL.md).
	if tri.minBP[0] < 0 {
		tri.minBP[0] = 0
	}
	if tri.minBP[1] < 0 {
		tri.minBP[1] = 0
	}
	if tri.maxBP[0] > fb.Width() {
		tri.maxBP[0] = fb.Width()
	}
	if tri.maxBP[1] > fb.Height() {
		tri.maxBP[1] = fb.Height()
	}
	if tri.maxBP[0] <= tri.minBP[0] || tri.maxBP[1] <= tri.minBP[1] {
		return tri, false
	}

	point := [2]float64{float64(tri.minBP[0]) + 0.5, float64(tri.minBP[1]) + 0.5}
	ap := [2]float64{point[0] - tri.ss[0][0], point[1] - tri.ss[0][1]}
	bp := [2]float64{point[0] - tri.ss[1][0], point[1] - tri.ss[1][1]}
	cp := [2]float64{point[0] - tri.ss[2][0], point[1] - tri.ss[2][1]}

	tri.lambda[0] = cross2(bp, tri.edge[1]) / tri.areaX2
	tri.lambda[1] = cross2(cp, tri.edge[2]) / tri.areaX2
	tri.lambda[2] = cross2(ap, tri.edge[0]) / tri.areaX2
	tri.lambdaRow = tri.lambda

	tri.dldx[0] = tri.edge[1][1] / tri.areaX2
	tri.dldx[1] = tri.edge[2][1] / tri.areaX2
	tri.dldx[2] = tri.edge[0][1] / tri.areaX2
	tri.dldy[0] = -tri.edge[1][0] / tri.areaX2
	tri.dldy[1] = -tri.edge[2][0] / tri.areaX2
	tri.dldy[2] = -tri.edge[0][0] / tri.areaX2

	for i := 0; i < 3; i++ {
		e := tri.edge[i]
		tri.edgeTL[i] = (e[0] > 0 && math.Abs(e[1]) <= geomEpsilon) || e[1] < 0
	}

	return tri, true
}

// rasterizeTriangle walks tri's AABB in scanline order, applying the
// top-left fill rule and incremental barycentric interpolation, and
// emits a fragment for every covered pixel.
func rasterizeTriangle(ctx *Context, fb *framebuffer.Framebuffer, prog *Program, tri *triangle) {
	bpv := prog.bytesPerVarying()
	nElems := bpv / 8
	lambdaRow := tri.lambdaRow

	for y := tri.minBP[1]; y < tri.maxBP[1]; y++ {
		lambda := lambdaRow
		for x := tri.minBP[0]; x < tri.maxBP[0]; x++ {
			if covered(lambda, tri.edgeTL) {
				fragCoord, interpolated := interpolateTriangle(ctx, tri, lambda, nElems, bpv)
				fragCoord[0] = float64(x) + 0.5
				fragCoord[1] = float64(y) + 0.5
				emitFragment(ctx, fb, prog, x, y, fragCoord, interpolated, tri.isFrontFacing, tri.id)
			}
			lambda[0] += tri.dldx[0]
			lambda[1] += tri.dldx[1]
			lambda[2] += tri.dldx[2]
		}
		lambdaRow[0] += tri.dldy[0]
		lambdaRow[1] += tri.dldy[1]
		lambdaRow[2] += tri.dldy[2]
	}
}

// covered applies the top-left tie-break rule and reports whether the
// pixel at this barycentric position belongs to the triangle.
func covered(lambda [3]float64, edgeTL [3]bool) bool {
	for i := 0; i < 3; i++ {
		switch {
		case math.Abs(lambda[i]) <= baryEpsilon:
			if !edgeTL[i] {
				return false
			}
		case lambda[i] < 0:
			return false
		}
	}
	return true
}

// interpolateTriangle computes the perspective-correct or affine
// fragCoord.z/.w and interpolated varyings for the current
// barycentric weights. fragCoord.x/.y are filled in by the caller
// (they are simply the pixel center, per spec.md §4.H).
func interpolateTriangle(ctx *Context, tri *triangle, lambda [3]float64, nElems, bpv int) (fragCoord [4]float64, interpolated Varying) {
	if bpv > 0 {
		interpolated = Varying(ctx.arena.Alloc(bpv))
	}

	z := tri.z[0]*lambda[0] + tri.z[1]*lambda[1] + tri.z[2]*lambda[2]
	fragCoord[2] = z

	if ctx.interpMode == Affine {
		fragCoord[3] = 1
		for e := 0; e < nElems; e++ {
			v := tri.varying[0].F64(e)*lambda[0] + tri.varying[1].F64(e)*lambda[1] + tri.varying[2].F64(e)*lambda[2]
			interpolated.SetF64(e, v)
		}
		return
	}

	invWInterp := tri.invW[0]*lambda[0] + tri.invW[1]*lambda[1] + tri.invW[2]*lambda[2]
	w := 1 / invWInterp
	fragCoord[3] = w
	for e := 0; e < nElems; e++ {
		v := tri.varying[0].F64(e)*tri.invW[0]*lambda[0] +
			tri.varying[1].F64(e)*tri.invW[1]*lambda[1] +
			tri.varying[2].F64(e)*tri.invW[2]*lambda[2]
		interpolated.SetF64(e, w*v)
	}
	return
}
