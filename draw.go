// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"github.com/kitrofimov/srp/buffer"
	"github.com/kitrofimov/srp/framebuffer"
)

// resolvedStream abstracts over drawing directly from a VertexBuffer
// versus drawing through an IndexBuffer: both map a stream position,
// already offset by startIndex, to a vertex ID.
type resolvedStream struct {
	vid func(streamPos int) uint64
}

func identityStream(startIndex int) resolvedStream {
	return resolvedStream{
		vid: func(i int) uint64 { return uint64(startIndex + i) },
	}
}

func indexedStream(ib *buffer.IndexBuffer, startIndex int) resolvedStream {
	return resolvedStream{
		vid: func(i int) uint64 { return ib.IndexIndex(startIndex + i) },
	}
}

// minMaxVertexID scans the first count stream positions of s for the
// minimum and maximum vertex ID, which size the post-vertex-shader
// cache. ok is false for a zero count.
func minMaxVertexID(s resolvedStream, count int) (minVI, maxVI uint64, ok bool) {
	if count == 0 {
		return 0, 0, false
	}
	minVI, maxVI = s.vid(0), s.vid(0)
	for i := 1; i < count; i++ {
		vi := s.vid(i)
		if vi < minVI {
			minVI = vi
		}
		if vi > maxVI {
			maxVI = vi
		}
	}
	return minVI, maxVI, true
}

// DrawVertexBuffer draws prim from the count vertices of vb starting
// at startIndex, with vertex IDs assigned identically to stream
// position. See spec.md §6.
func (c *Context) DrawVertexBuffer(fb *framebuffer.Framebuffer, prog *Program, prim Primitive, vb *buffer.VertexBuffer, startIndex, count int) {
	c.draw(fb, prog, prim, vb, identityStream(startIndex), startIndex, count, vb.Len())
}

// DrawIndexBuffer draws prim from the count indices of ib starting at
// startIndex, with vertex IDs taken from ib and resolved against vb.
// See spec.md §6.
func (c *Context) DrawIndexBuffer(fb *framebuffer.Framebuffer, prog *Program, prim Primitive, vb *buffer.VertexBuffer, ib *buffer.IndexBuffer, startIndex, count int) {
	c.draw(fb, prog, prim, vb, indexedStream(ib, startIndex), startIndex, count, ib.Len())
}

// draw implements spec.md §4.L: range validation, cache construction,
// primitive assembly, clipping, setup, and rasterization for every
// primitive class, followed by an arena reset. sourceLen is the
// length of the buffer startIndex/count index into: vb for
// DrawVertexBuffer, ib for DrawIndexBuffer.
func (c *Context) draw(fb *framebuffer.Framebuffer, prog *Program, prim Primitive, vb *buffer.VertexBuffer, stream resolvedStream, startIndex, count, sourceLen int) {
	defer c.arena.Reset()
	c.stats = Stats{}

	if count == 0 {
		c.message(TypeWarning, SeverityLow, "Draw", "zero vertices; nothing drawn")
		return
	}
	if startIndex < 0 || count < 0 || startIndex+count > sourceLen {
		c.message(TypeError, SeverityHigh, "Draw", "[startIndex, startIndex+count-1] exceeds buffer length")
		return
	}
	if isTriangleTopology(prim) && c.cullFace == CullFrontAndBack {
		return
	}
	if w := divisibilityWarning(prim, count); w != "" {
		c.message(TypeWarning, SeverityLow, "Draw", w)
	}

	minVI, maxVI, ok := minMaxVertexID(stream, count)
	if !ok {
		return
	}
	if maxVI >= uint64(vb.Len()) {
		c.message(TypeError, SeverityHigh, "Draw", "vertex ID exceeds vertex buffer length")
		return
	}

	bpv := prog.bytesPerVarying()
	cache := newVsCache(c.arena, minVI, maxVI, prog.Vertex, prog.Uniform, bpv)

	fetch := func(streamPos int) *VsOut {
		vi := stream.vid(streamPos)
		return cache.fetch(vi, vb.IndexVertex(int(vi)))
	}

	switch {
	case isTriangleTopology(prim):
		c.drawTriangles(fb, prog, prim, startIndex, count, bpv, fetch)
	case isLineTopology(prim):
		c.drawLines(fb, prog, prim, startIndex, count, bpv, fetch)
	case prim == Points:
		c.drawPoints(fb, prog, count, fetch)
	default:
		c.message(TypeError, SeverityHigh, "Draw", "unknown primitive topology")
	}
}

// drawTriangles assembles triangles per triangleIndices, whose
// results are stream positions offset by startIndex; fetch expects
// positions relative to startIndex, so startIndex is subtracted back
// out before each fetch.
func (c *Context) drawTriangles(fb *framebuffer.Framebuffer, prog *Program, prim Primitive, startIndex, count, bpv int, fetch func(int) *VsOut) {
	n := triangleCount(prim, count)
	for k := 0; k < n; k++ {
		i0, i1, i2 := triangleIndices(prim, startIndex, k)
		v0, v1, v2 := fetch(i0-startIndex), fetch(i1-startIndex), fetch(i2-startIndex)
		c.stats.TrianglesSubmitted++

		cv := [3]clipVertex{
			{pos: v0.Position, varying: v0.Varying},
			{pos: v1.Position, varying: v1.Varying},
			{pos: v2.Position, varying: v2.Varying},
		}
		tris := clipTriangle(c.arena, bpv, cv)
		if tris == nil {
			c.stats.TrianglesClipped++
			continue
		}
		drawn := false
		for _, t := range tris {
			tri, ok := setupTriangle(c, fb, t, k)
			if !ok {
				continue
			}
			drawn = true
			rasterizeTriangle(c, fb, prog, &tri)
		}
		if !drawn {
			c.stats.TrianglesCulled++
		}
	}
}

func (c *Context) drawLines(fb *framebuffer.Framebuffer, prog *Program, prim Primitive, startIndex, count, bpv int, fetch func(int) *VsOut) {
	n := lineCount(prim, count)
	for k := 0; k < n; k++ {
		i0, i1 := lineIndices(prim, startIndex, k, count)
		v0, v1 := fetch(i0-startIndex), fetch(i1-startIndex)
		c.stats.LinesSubmitted++

		a := clipVertex{pos: v0.Position, varying: v0.Varying}
		b := clipVertex{pos: v1.Position, varying: v1.Varying}
		outA, outB, ok := clipLine(c.arena, bpv, a, b)
		if !ok {
			c.stats.LinesClipped++
			continue
		}
		l := setupLine(fb, [2]clipVertex{outA, outB}, k)
		rasterizeLine(c, fb, prog, &l)
	}
}

func (c *Context) drawPoints(fb *framebuffer.Framebuffer, prog *Program, count int, fetch func(int) *VsOut) {
	for k := 0; k < count; k++ {
		v := fetch(k)
		c.stats.PointsSubmitted++
		if v.Position[3] <= 0 {
			continue
		}
		rasterizePoint(c, fb, prog, v, c.pointSize, k)
	}
}
