// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"math"

	"github.com/kitrofimov/srp/framebuffer"
)

// emitFragment runs the fragment shader for one covered pixel,
// depth-tests its result, and writes the framebuffer on pass.
// fragCoord.z is used as the depth unless the shader writes an
// explicit, non-NaN FragDepth.
func emitFragment(ctx *Context, fb *framebuffer.Framebuffer, prog *Program, x, y int, fragCoord [4]float64, interpolated Varying, frontFacing bool, primID int) {
	ctx.stats.FragmentsEmitted++

	in := FsIn{
		Uniform:      prog.Uniform,
		Interpolated: interpolated,
		FragCoord:    fragCoord,
		FrontFacing:  frontFacing,
		PrimitiveID:  primID,
	}
	out := FsOut{FragDepth: nan64}
	prog.Fragment(in, &out)

	depth := out.FragDepth
	if math.IsNaN(depth) {
		depth = fragCoord[2]
	}
	if !fb.DepthTest(x, y, depth) {
		ctx.stats.FragmentsDepthFailed++
		return
	}
	color := framebuffer.PackColor(out.Color[0], out.Color[1], out.Color[2], out.Color[3])
	fb.DrawPixel(x, y, depth, color)
}
