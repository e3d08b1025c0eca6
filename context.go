// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package srp implements the core of a CPU-only, programmable
// software rendering pipeline modeled after fixed-function
// OpenGL/Vulkan semantics: vertex processing with a post-transform
// cache, primitive assembly, homogeneous-space clipping, perspective
// divide and viewport mapping, back-face culling, triangle/line/point
// rasterization with perspective-correct interpolation, and
// per-fragment shading with depth test.
package srp

import (
	"fmt"
	"os"

	"github.com/kitrofimov/srp/internal/arena"
)

const initialArenaSize = 1 << 16

// Context is a draw call's process-wide state: cull/front-face policy,
// interpolation mode, point size, the message callback, and the arena
// every per-draw allocation comes from. It is a flat record, not a
// state machine — there is no bind/unbind protocol, and a Context may
// be reconfigured freely between draw calls.
//
// A Context is not safe for concurrent use; concurrent DrawVertexBuffer
// or DrawIndexBuffer calls on the same Context are undefined behavior
// (see spec.md §5).
type Context struct {
	arena *arena.Arena

	messageCB MessageCallback
	userParam any

	interpMode InterpolationMode
	frontFace  FrontFace
	cullFace   CullFace
	pointSize  float64

	stats Stats
}

// Stats counts the outcome of the most recently completed draw call.
// It is reset at the start of every DrawVertexBuffer/DrawIndexBuffer
// call; the arena is reset when the call returns.
type Stats struct {
	TrianglesSubmitted   int
	TrianglesCulled      int // rejected by setup (culled, degenerate or off-screen), no clipped piece drawn
	TrianglesClipped     int // fully clipped away, zero output triangles
	LinesSubmitted       int
	LinesClipped         int
	PointsSubmitted      int
	FragmentsEmitted     int
	FragmentsDepthFailed int
}

// NewContext creates a Context with spec.md's documented defaults:
// Perspective interpolation, CCW front face, no culling, point size
// 1.0, and a message callback that discards everything until
// SetMessageCallback is called.
func NewContext() *Context {
	return &Context{
		arena:      arena.New(initialArenaSize),
		messageCB:  defaultMessageCallback,
		interpMode: Perspective,
		frontFace:  CCW,
		cullFace:   CullNone,
		pointSize:  1.0,
	}
}

// SetMessageCallback installs cb as the Context's diagnostic sink.
// userParam is passed back unchanged on every call. Passing a nil cb
// restores the default no-op callback.
func (c *Context) SetMessageCallback(cb MessageCallback, userParam any) {
	if cb == nil {
		cb = defaultMessageCallback
	}
	c.messageCB = cb
	c.userParam = userParam
}

// SetInterpolationMode selects affine or perspective-correct
// attribute interpolation for subsequent draw calls.
func (c *Context) SetInterpolationMode(m InterpolationMode) { c.interpMode = m }

// InterpolationMode returns the current interpolation mode.
func (c *Context) InterpolationMode() InterpolationMode { return c.interpMode }

// SetFrontFace selects which NDC winding is front-facing.
func (c *Context) SetFrontFace(f FrontFace) { c.frontFace = f }

// FrontFace returns the current front-face winding.
func (c *Context) FrontFace() FrontFace { return c.frontFace }

// SetCullFace selects the cull policy applied to triangles.
func (c *Context) SetCullFace(f CullFace) { c.cullFace = f }

// CullFace returns the current cull policy.
func (c *Context) CullFace() CullFace { return c.cullFace }

// SetPointSize sets the side length, in pixels, of the square each
// point primitive expands to. It invokes the message callback at High
// severity and leaves the point size unchanged if size is not
// positive.
func (c *Context) SetPointSize(size float64) {
	if size <= 0 {
		c.message(TypeError, SeverityHigh, "SetPointSize", "point size must be positive")
		return
	}
	c.pointSize = size
}

// PointSize returns the current point size.
func (c *Context) PointSize() float64 { return c.pointSize }

// Stats returns the statistics for the most recently completed draw
// call.
func (c *Context) Stats() Stats { return c.stats }

func (c *Context) message(typ MessageType, severity Severity, source, text string) {
	c.messageCB(typ, severity, source, text, c.userParam)
}

// oom reports an unrecoverable allocation failure and aborts the
// process, matching spec.md §7 ("Out-of-memory: print to stderr and
// abort the process").
func oom(source string, err any) {
	fmt.Fprintf(os.Stderr, "srp: %s: out of memory: %v\n", source, err)
	os.Exit(1)
}
