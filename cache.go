// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package srp

import (
	"unsafe"

	"github.com/kitrofimov/srp/internal/bitm"
)

// vsCache memoizes vertex shader invocations within a single draw
// call, keyed by vertex ID. It is sized densely over [minVI, maxVI],
// trading space for O(1), hash-free lookups — the right trade-off
// when vertex IDs in a draw call are a contiguous (or near-contiguous)
// range, as they are for every topology spec.md defines. A bitm.Bitm
// tracks which slots have already been computed, separate from the
// VsOut array itself.
type vsCache struct {
	minVI   uint64
	vs      VertexShader
	uniform any
	entries []VsOut
	valid   bitm.Bitm[uint64]
	slab    Varying
	bpv     int
}

// newVsCache allocates the cache array and varying slab for the
// vertex ID range [minVI, maxVI] from ar, which must be reset by the
// caller once the draw call completes.
func newVsCache(ar arenaAllocator, minVI, maxVI uint64, vs VertexShader, uniform any, bpv int) *vsCache {
	if maxVI < minVI {
		panic("srp: empty vertex ID range")
	}
	span := maxVI - minVI + 1
	if span > (1<<31)/8 {
		oom("vsCache", "vertex ID range too large")
	}
	n := int(span)

	c := &vsCache{minVI: minVI, vs: vs, uniform: uniform, bpv: bpv}
	if n == 0 {
		return c
	}

	entrySize := int(unsafe.Sizeof(VsOut{}))
	entryBuf := ar.Calloc(n * entrySize)
	c.entries = unsafe.Slice((*VsOut)(unsafe.Pointer(&entryBuf[0])), n)
	c.valid.Grow((n + 63) / 64)

	if bpv > 0 {
		c.slab = Varying(ar.Calloc(n * bpv))
	}
	return c
}

// fetch returns the cached VsOut for vertex vi, invoking the vertex
// shader closure the first time vi is requested within this draw
// call and memoizing the result for every subsequent request.
func (c *vsCache) fetch(vi uint64, pVertex []byte) *VsOut {
	idx := int(vi - c.minVI)
	e := &c.entries[idx]
	if c.valid.IsSet(idx) {
		return e
	}
	if c.bpv > 0 {
		e.Varying = c.slab[idx*c.bpv : idx*c.bpv+c.bpv]
	}
	c.vs(VsIn{Uniform: c.uniform, PVertex: pVertex, VertexID: vi}, e)
	c.valid.Set(idx)
	return e
}

// arenaAllocator is the subset of *arena.Arena the pipeline's
// internals depend on, so package-internal helpers can be exercised
// in tests without constructing a full Context.
type arenaAllocator interface {
	Alloc(n int) []byte
	Calloc(n int) []byte
}
